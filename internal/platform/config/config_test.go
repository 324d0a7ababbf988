package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SNAPSHOT_STORE", "file")
	t.Setenv("PERSIST_DEBOUNCE", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, StoreFile, cfg.SnapshotStore)
	assert.Equal(t, 800*time.Millisecond, cfg.PersistDebounce)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, 6, cfg.InsightRatePerMin)
}

func TestLoadConfig_ParsesOverrides(t *testing.T) {
	t.Setenv("SNAPSHOT_STORE", "SQLITE")
	t.Setenv("SQLITE_PATH", "/tmp/coop.db")
	t.Setenv("PERSIST_DEBOUNCE", "2s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, StoreSqlite, cfg.SnapshotStore)
	assert.Equal(t, 2*time.Second, cfg.PersistDebounce)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			SnapshotStore:      StoreFile,
			BackupFilePath:     "data/x.json",
			PersistDebounce:    time.Second,
			PersistTimeout:     time.Second,
			JWTExpiryDuration:  time.Hour,
			InsightRatePerMin:  1,
			JWTSecret:          "secret",
			CORSAllowedOrigins: []string{"http://localhost:3000"},
			RateLimit:          "100-M",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "pgsql without url", mutate: func(c *Config) { c.SnapshotStore = StorePgsql }, wantErr: "PGSQL_URL"},
		{name: "unknown store", mutate: func(c *Config) { c.SnapshotStore = "redis" }, wantErr: "unknown SNAPSHOT_STORE"},
		{name: "zero debounce", mutate: func(c *Config) { c.PersistDebounce = 0 }, wantErr: "PERSIST_DEBOUNCE"},
		{name: "default secret in production", mutate: func(c *Config) {
			c.IsProduction = true
			c.JWTSecret = defaultJWTSecret
		}, wantErr: "JWT_SECRET"},
		{name: "no cors origins", mutate: func(c *Config) { c.CORSAllowedOrigins = nil }, wantErr: "CORS_ALLOWED_ORIGINS"},
		{name: "none store", mutate: func(c *Config) { c.SnapshotStore = StoreNone; c.BackupFilePath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
