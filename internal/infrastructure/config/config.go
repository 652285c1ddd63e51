package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/adapter/telegram"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Bot         BotConfig      `mapstructure:"bot"`
	Admin       AdminConfig    `mapstructure:"admin"`
	Ledger      LedgerConfig   `mapstructure:"ledger"`
	Redis       RedisConfig    `mapstructure:"redis"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	// APIToken is the bearer secret for /api/v1; empty leaves only /health served
	APIToken string `mapstructure:"apiToken"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"`   // milliseconds
	LogLevel        string        `mapstructure:"logLevel"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`      // seconds
	MonitorInterval time.Duration `mapstructure:"monitorInterval"` // seconds, 0 disables
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// BotConfig contains Telegram settings
type BotConfig struct {
	Token          string        `mapstructure:"token"`
	PollTimeout    time.Duration `mapstructure:"pollTimeout"` // seconds
	SupportContact string        `mapstructure:"supportContact"`
}

// AdminConfig lists the administrators as comma separated Telegram ids
type AdminConfig struct {
	IDs string `mapstructure:"ids"`
}

// LedgerConfig contains the money rules; rates are decimal strings
type LedgerConfig struct {
	DailyRate        string `mapstructure:"dailyRate"`
	LockPeriodDays   int    `mapstructure:"lockPeriodDays"`
	HistoryLimit     int    `mapstructure:"historyLimit"`
	MaxHistoryLimit  int    `mapstructure:"maxHistoryLimit"`
	RecentUsersLimit int    `mapstructure:"recentUsersLimit"`
	Level1Rate       string `mapstructure:"level1Rate"`
	Level2Rate       string `mapstructure:"level2Rate"`
}

// RedisConfig contains the run lock backend settings
type RedisConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	Password       string        `mapstructure:"password"`
	DB             int           `mapstructure:"db"`
	AccrualLockTTL time.Duration `mapstructure:"accrualLockTtl"` // seconds
}

// DatabaseSettings converts the database section for the database manager
func (c *Config) DatabaseSettings() *database.Config {
	return &database.Config{
		Driver:          c.Database.Driver,
		Host:            c.Database.Host,
		Port:            c.Database.Port,
		Username:        c.Database.Username,
		Password:        c.Database.Password,
		Database:        c.Database.Database,
		SSLMode:         c.Database.SSLMode,
		MaxOpenConns:    c.Database.MaxOpenConns,
		MaxIdleConns:    c.Database.MaxIdleConns,
		ConnMaxLifetime: c.Database.ConnMaxLifetime,
		ConnMaxIdleTime: c.Database.ConnMaxIdleTime,
		QueryTimeout:    c.Database.QueryTimeout,
		SlowThreshold:   c.Database.SlowThreshold,
		LogLevel:        c.Database.LogLevel,
		RetryAttempts:   c.Database.RetryAttempts,
		RetryDelay:      c.Database.RetryDelay,
		MonitorInterval: c.Database.MonitorInterval,
	}
}

// RedisSettings converts the redis section for the cache adapter
func (c *Config) RedisSettings() cache.RedisConfig {
	return cache.RedisConfig{
		Host:     c.Redis.Host,
		Port:     c.Redis.Port,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	}
}

// AdminIDs parses the configured administrator ids
func (c *Config) AdminIDs() ([]int64, error) {
	return auth.ParseAdminIDs(c.Admin.IDs)
}

// LedgerPolicy converts the ledger section; unset numbers fall back to the ledger defaults
func (c *Config) LedgerPolicy() (ledger.Policy, error) {
	policy := ledger.DefaultPolicy()

	// A zero daily rate would make accrual a no-op, so only commissions may be switched off
	rates := []struct {
		key       string
		raw       string
		allowZero bool
		dst       *decimal.Decimal
	}{
		{"ledger.dailyRate", c.Ledger.DailyRate, false, &policy.DailyRate},
		{"ledger.level1Rate", c.Ledger.Level1Rate, true, &policy.Level1Rate},
		{"ledger.level2Rate", c.Ledger.Level2Rate, true, &policy.Level2Rate},
	}
	for _, r := range rates {
		if r.raw == "" {
			continue
		}
		rate, err := parseRate(r.key, r.raw, r.allowZero)
		if err != nil {
			return ledger.Policy{}, err
		}
		*r.dst = rate
	}

	if c.Ledger.LockPeriodDays > 0 {
		policy.LockPeriod = time.Duration(c.Ledger.LockPeriodDays) * 24 * time.Hour
	}
	if c.Ledger.HistoryLimit > 0 {
		policy.HistoryLimit = c.Ledger.HistoryLimit
	}
	if c.Ledger.MaxHistoryLimit > 0 {
		policy.MaxHistoryLimit = c.Ledger.MaxHistoryLimit
	}
	if policy.HistoryLimit > policy.MaxHistoryLimit {
		policy.HistoryLimit = policy.MaxHistoryLimit
	}
	if c.Ledger.RecentUsersLimit > 0 {
		policy.RecentUsersLimit = c.Ledger.RecentUsersLimit
	}
	if c.Redis.AccrualLockTTL > 0 {
		policy.AccrualLockTTL = c.Redis.AccrualLockTTL
	}
	return policy, nil
}

// BotSettings converts the bot section; the policy supplies the numbers shown to users
func (c *Config) BotSettings(policy ledger.Policy) telegram.Config {
	return telegram.Config{
		Token:          c.Bot.Token,
		PollTimeout:    c.Bot.PollTimeout,
		SupportContact: c.Bot.SupportContact,
		HistoryLimit:   policy.HistoryLimit,
		LockDays:       int(policy.LockPeriod / (24 * time.Hour)),
		Level1Rate:     policy.Level1Rate,
		Level2Rate:     policy.Level2Rate,
	}
}

func parseRate(key, raw string, allowZero bool) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("%s must be in [0, 1), got %s", key, raw)
	}
	if rate.IsZero() && !allowZero {
		return decimal.Zero, fmt.Errorf("%s must be greater than 0", key)
	}
	return rate, nil
}
