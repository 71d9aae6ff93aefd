package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Env:                 "development",
		DBDriver:            DriverSQLite,
		DBPath:              "test.db",
		DBHost:              "localhost",
		DBName:              "social_media",
		DBPassword:          "password",
		LogLevel:            "info",
		LogFormat:           "text",
		TracingExporter:     "stdout",
		TracingSamplerRatio: 1,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"cgo sqlite driver", func(c *Config) { c.DBDriver = DriverSQLiteCGO }, false},
		{"unknown driver", func(c *Config) { c.DBDriver = "mysql" }, true},
		{"sqlite without path", func(c *Config) { c.DBPath = "" }, true},
		{"postgres in development with default password", func(c *Config) { c.DBDriver = DriverPostgres }, false},
		{"postgres in production with default password", func(c *Config) {
			c.DBDriver = DriverPostgres
			c.Env = "production"
		}, true},
		{"postgres in production with strong password", func(c *Config) {
			c.DBDriver = DriverPostgres
			c.Env = "prod"
			c.DBPassword = "a-much-stronger-password"
			c.DBSSLMode = "require"
		}, false},
		{"negative pool size", func(c *Config) { c.DBMaxOpenConns = -1 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"tracing with unknown exporter", func(c *Config) {
			c.TracingEnabled = true
			c.TracingExporter = "zipkin"
		}, true},
		{"tracing with zero sampler ratio", func(c *Config) {
			c.TracingEnabled = true
			c.TracingSamplerRatio = 0
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_EnvOverridesAndNormalization(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_DRIVER", "  SQLITE3 ")
	t.Setenv("DB_PATH", "override.db")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CACHE_TTL_SECONDS", "42")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "test", c.Env)
	assert.Equal(t, DriverSQLiteCGO, c.DBDriver)
	assert.True(t, c.IsSQLite())
	assert.Equal(t, "override.db", c.DBPath)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 42, c.CacheTTLSeconds)
	assert.False(t, c.IsProduction())
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadConfig()
	assert.Error(t, err)
}
