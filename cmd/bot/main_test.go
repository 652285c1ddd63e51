package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/infrastructure/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Environment: config.Test,
		Server: config.ServerConfig{
			Enabled:         true,
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: config.DatabaseConfig{
			Driver:        "postgres",
			Host:          "localhost",
			Port:          5432,
			Username:      "ledger",
			Database:      "ledger",
			SSLMode:       "disable",
			MaxOpenConns:  5,
			MaxIdleConns:  2,
			QueryTimeout:  5 * time.Second,
			LogLevel:      "warn",
			RetryAttempts: 1,
		},
		Logger: config.LoggerConfig{Level: "info"},
		Bot:    config.BotConfig{Token: "123:abc", PollTimeout: 30 * time.Second},
		Admin:  config.AdminConfig{IDs: "1,2"},
	}
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(validConfig()))

	testCases := []struct {
		name    string
		mutate  func(*config.Config)
		message string
	}{
		{"missing token", func(c *config.Config) { c.Bot.Token = "" }, "bot.token"},
		{"missing host", func(c *config.Config) { c.Database.Host = "" }, "database.host"},
		{"production needs a password", func(c *config.Config) { c.Environment = config.Production }, "database.password"},
		{"unknown environment", func(c *config.Config) { c.Environment = "staging" }, "invalid environment value"},
		{"bad admin ids", func(c *config.Config) { c.Admin.IDs = "1,x" }, "admin.ids"},
		{"bad rate", func(c *config.Config) { c.Ledger.DailyRate = "2" }, "ledger.dailyRate"},
		{"redis without host", func(c *config.Config) { c.Redis.Enabled = true }, "redis.host"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			assert.ErrorContains(t, validateConfig(cfg), tc.message)
		})
	}

	t.Run("disabled server skips server checks", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server = config.ServerConfig{ShutdownTimeout: time.Second}
		assert.NoError(t, validateConfig(cfg))
	})
}
