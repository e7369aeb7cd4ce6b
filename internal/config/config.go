package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Env            string
	HTTPAddr       string
	StorageDriver  string
	DatabaseURL    string
	RunMigrations  bool
	Locale         string
	Timezone       string
	CORSOrigins    []string
	DiscordToken   string
	DiscordGuildID string
}

// Load reads the configuration from the environment, with an optional .env
// file, and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	cfg := &Config{
		Env:            getenv("ENV", "development"),
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		StorageDriver:  getenv("STORAGE_DRIVER", StoragePostgres),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Locale:         getenv("LOCALE", "es"),
		Timezone:       os.Getenv("TIMEZONE"),
		CORSOrigins:    splitList(os.Getenv("CORS_ORIGINS")),
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),
	}

	migrations, err := strconv.ParseBool(getenv("RUN_MIGRATIONS", "true"))
	if err != nil {
		return nil, fmt.Errorf("config: RUN_MIGRATIONS must be a boolean: %w", err)
	}
	cfg.RunMigrations = migrations

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RequireDiscord checks the settings only the bot needs.
func (c *Config) RequireDiscord() error {
	if strings.TrimSpace(c.DiscordToken) == "" {
		return fmt.Errorf("config: DISCORD_TOKEN is required")
	}
	for _, r := range c.DiscordGuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_GUILD_ID must be a Discord guild id (digits only)")
		}
	}
	return nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageMemory:
		return nil
	case StoragePostgres:
	default:
		return fmt.Errorf("config: STORAGE_DRIVER must be %q or %q, got %q", StoragePostgres, StorageMemory, c.StorageDriver)
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// local default
		c.DatabaseURL = "postgres://localhost:5432/eduhack?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
