// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Path of the user data file (cookie + UID per user)
	DataFile string `env:"DATA_FILE" envDefault:"data/user_data.json"`

	// Cache (Redis). Optional: when empty, showcase responses are not cached.
	RedisURL string `env:"REDIS_URL" envDefault:""`

	// Argon2id hash of the bearer token the UI layer authenticates with.
	// When empty, the API accepts unauthenticated requests (development only).
	APITokenHash string `env:"API_TOKEN_HASH" envDefault:""`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Upstream HoYoLAB hosts. Overridable for tests.
	GameRecordBaseURL string `env:"GAME_RECORD_BASE_URL" envDefault:"https://bbs-api-os.hoyolab.com"`
	AccountBaseURL    string `env:"ACCOUNT_BASE_URL" envDefault:"https://api-account-os.hoyolab.com"`
	EventBaseURL      string `env:"EVENT_BASE_URL" envDefault:"https://sg-hk4e-api.hoyolab.com"`

	// Showcase API (public, keyed by game UID)
	EnkaBaseURL string `env:"ENKA_BASE_URL" envDefault:"https://enka.network"`
	EnkaAPIKey  string `env:"ENKA_API_KEY" envDefault:""`

	// Outbound API client timeout
	ClientTimeout time.Duration `env:"CLIENT_TIMEOUT" envDefault:"10s"`

	// Scheduled notes checks only alert at or above this resin count.
	ResinThreshold int `env:"RESIN_THRESHOLD" envDefault:"150"`

	// User records unused beyond this many days are swept.
	RetentionDays int `env:"RETENTION_DAYS" envDefault:"120"`

	// Background job intervals
	SweepInterval      time.Duration `env:"SWEEP_INTERVAL" envDefault:"24h"`
	NotesCheckInterval time.Duration `env:"NOTES_CHECK_INTERVAL" envDefault:"2h"`
	CheckInInterval    time.Duration `env:"CHECK_IN_INTERVAL" envDefault:"24h"`

	// Webhook the scheduled workers push alerts and check-in results to.
	// When empty, only the retention sweeper runs in the background.
	NotifyWebhookURL string `env:"NOTIFY_WEBHOOK_URL" envDefault:""`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Retention returns the sweep retention window as a duration.
func (c *Config) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// Load parses environment variables and returns a Config.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
