package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "rewards.db", cfg.Database.Path)
	assert.Equal(t, 5000, cfg.Database.BusyTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "rewards_session", cfg.Session.CookieName)
	assert.Equal(t, 60, cfg.Session.TTLMinutes)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/store.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("SESSION_TTL", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/store.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, 15, cfg.Session.TTLMinutes)
}

func TestLoad_MissingSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session secret")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Host: "localhost", Port: 8080},
			Database: DatabaseConfig{Path: "rewards.db", BusyTimeout: 5000},
			Logger:   LoggerConfig{Level: "info", Format: "json"},
			Session:  SessionConfig{Secret: "s", CookieName: "c", TTLMinutes: 60},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "invalid server port"},
		{"empty db path", func(c *Config) { c.Database.Path = "" }, "database path is required"},
		{"negative busy timeout", func(c *Config) { c.Database.BusyTimeout = -1 }, "busy timeout"},
		{"empty secret", func(c *Config) { c.Session.Secret = "" }, "session secret"},
		{"empty cookie name", func(c *Config) { c.Session.CookieName = "" }, "cookie name"},
		{"zero ttl", func(c *Config) { c.Session.TTLMinutes = 0 }, "session TTL"},
		{"bad log level", func(c *Config) { c.Logger.Level = "verbose" }, "invalid log level"},
		{"bad log format", func(c *Config) { c.Logger.Format = "xml" }, "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Path: "rewards.db", BusyTimeout: 5000}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "file:rewards.db")
	assert.Contains(t, dsn, "busy_timeout(5000)")
}
