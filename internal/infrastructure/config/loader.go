package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "LEDGER"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

var errNoDotEnv = errors.New("no .env file found in search paths")

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Missing .env is normal outside local development
	if err := loadDotEnvFile(); err != nil && !errors.Is(err, errNoDotEnv) {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found; variables already set are kept
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return errNoDotEnv
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.enabled", true)
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 15)
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.slowThreshold", 200)
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)
	v.SetDefault("database.monitorInterval", 30)

	v.SetDefault("logger.level", "info")

	v.SetDefault("bot.pollTimeout", 30)

	v.SetDefault("admin.ids", "")

	v.SetDefault("ledger.dailyRate", "0.01")
	v.SetDefault("ledger.lockPeriodDays", 20)
	v.SetDefault("ledger.historyLimit", 10)
	v.SetDefault("ledger.maxHistoryLimit", 100)
	v.SetDefault("ledger.recentUsersLimit", 5)
	v.SetDefault("ledger.level1Rate", "0.10")
	v.SetDefault("ledger.level2Rate", "0.05")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.accrualLockTtl", 600)
}

// getEnvironment determines the environment from LEDGER_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides gives the documented environment variables priority over the config file
func processEnvOverrides(v *viper.Viper) {
	strOverrides := map[string]string{
		"DB_HOST":        "database.host",
		"DB_USERNAME":    "database.username",
		"DB_PASSWORD":    "database.password",
		"DB_NAME":        "database.database",
		"DB_SSL_MODE":    "database.sslMode",
		"DB_LOG_LEVEL":   "database.logLevel",
		"SERVER_HOST":    "server.host",
		"API_TOKEN":      "server.apiToken",
		"LOGGER_LEVEL":   "logger.level",
		"BOT_TOKEN":      "bot.token",
		"BOT_SUPPORT":    "bot.supportContact",
		"ADMIN_IDS":      "admin.ids",
		"DAILY_RATE":     "ledger.dailyRate",
		"LEVEL1_RATE":    "ledger.level1Rate",
		"LEVEL2_RATE":    "ledger.level2Rate",
		"REDIS_HOST":     "redis.host",
		"REDIS_PASSWORD": "redis.password",
	}
	for name, key := range strOverrides {
		if val := os.Getenv(EnvPrefix + "_" + name); val != "" {
			v.Set(key, val)
		}
	}

	// Numbers are stored as ints so processDurations sees the same units as the file
	intOverrides := map[string]string{
		"DB_PORT":                  "database.port",
		"DB_MAX_OPEN_CONNS":        "database.maxOpenConns",
		"DB_MAX_IDLE_CONNS":        "database.maxIdleConns",
		"DB_QUERY_TIMEOUT_SECONDS": "database.queryTimeout",
		"DB_RETRY_ATTEMPTS":        "database.retryAttempts",
		"SERVER_PORT":              "server.port",
		"BOT_POLL_TIMEOUT_SECONDS": "bot.pollTimeout",
		"LOCK_PERIOD_DAYS":         "ledger.lockPeriodDays",
		"REDIS_PORT":               "redis.port",
		"REDIS_DB":                 "redis.db",
		"ACCRUAL_LOCK_TTL_SECONDS": "redis.accrualLockTtl",
	}
	for name, key := range intOverrides {
		if val, ok := getEnvInt(EnvPrefix + "_" + name); ok {
			v.Set(key, val)
		}
	}

	boolOverrides := map[string]string{
		"SERVER_ENABLED": "server.enabled",
		"REDIS_ENABLED":  "redis.enabled",
	}
	for name, key := range boolOverrides {
		if val, err := strconv.ParseBool(os.Getenv(EnvPrefix + "_" + name)); err == nil {
			v.Set(key, val)
		}
	}
}

// getEnvInt reads an integer variable; ok is false when unset or malformed
func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.QueryTimeout *= time.Second
	config.Database.SlowThreshold *= time.Millisecond
	config.Database.RetryDelay *= time.Second
	config.Database.MonitorInterval *= time.Second

	config.Bot.PollTimeout *= time.Second
	config.Redis.AccrualLockTTL *= time.Second
}
