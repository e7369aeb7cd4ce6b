package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "HTTP_ADDR", "STORAGE_DRIVER", "DATABASE_URL", "RUN_MIGRATIONS",
		"LOCALE", "TIMEZONE", "CORS_ORIGINS", "DISCORD_TOKEN", "DISCORD_GUILD_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, "postgres://localhost:5432/eduhack?sslmode=disable", cfg.DatabaseURL)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, "es", cfg.Locale)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		check   func(t *testing.T, cfg *Config)
		wantErr string
	}{
		{
			name: "memory ignores database url",
			env:  map[string]string{"STORAGE_DRIVER": "memory", "DATABASE_URL": "::bad"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, StorageMemory, cfg.StorageDriver)
			},
		},
		{
			name: "cors list",
			env:  map[string]string{"CORS_ORIGINS": "http://localhost:5173, ,https://eduhack.dev"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"http://localhost:5173", "https://eduhack.dev"}, cfg.CORSOrigins)
			},
		},
		{
			name: "migrations off",
			env:  map[string]string{"RUN_MIGRATIONS": "false", "LOCALE": "en"},
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.RunMigrations)
				assert.Equal(t, "en", cfg.Locale)
			},
		},
		{
			name:    "bad migrations flag",
			env:     map[string]string{"RUN_MIGRATIONS": "sometimes"},
			wantErr: "RUN_MIGRATIONS",
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"STORAGE_DRIVER": "sqlite"},
			wantErr: "STORAGE_DRIVER",
		},
		{
			name:    "url without host",
			env:     map[string]string{"DATABASE_URL": "eduhack"},
			wantErr: "missing scheme or host",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestRequireDiscord(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.RequireDiscord())

	cfg.DiscordToken = "token"
	assert.NoError(t, cfg.RequireDiscord())

	cfg.DiscordGuildID = "guild-1"
	assert.Error(t, cfg.RequireDiscord())

	cfg.DiscordGuildID = "123456789"
	assert.NoError(t, cfg.RequireDiscord())
}
