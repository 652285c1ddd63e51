package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Host = "localhost"
	cfg.Username = "ledger"
	cfg.Password = "secret"
	cfg.Database = "ledger"
	return cfg
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	testCases := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"missing host", func(c *Config) { c.Host = "" }, "database host is required"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "invalid port number: 70000"},
		{"missing user", func(c *Config) { c.Username = "" }, "database username is required"},
		{"missing name", func(c *Config) { c.Database = "" }, "database name is required"},
		{"unsupported driver", func(c *Config) { c.Driver = "mysql" }, "unsupported database driver: mysql"},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "maybe" }, "invalid SSL mode: maybe"},
		{"zero query timeout", func(c *Config) { c.QueryTimeout = 0 }, "query timeout must be positive"},
		{"no attempts", func(c *Config) { c.RetryAttempts = 0 }, "retry attempts must be at least 1, got: 0"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level: loud"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, tc.errMsg, err.Error())
		})
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Port = 6432
	assert.Equal(t, "host=localhost port=6432 user=ledger password=secret dbname=ledger sslmode=disable", cfg.DSN())
}

func TestConfigCopies(t *testing.T) {
	cfg := validConfig()

	withTimeout := cfg.WithQueryTimeout(2 * time.Second)
	assert.Equal(t, 2*time.Second, withTimeout.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.QueryTimeout)

	withLevel := cfg.WithLogLevel("silent")
	assert.Equal(t, "silent", withLevel.LogLevel)
	assert.Equal(t, "warn", cfg.LogLevel)
}
