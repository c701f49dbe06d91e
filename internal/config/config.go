package config

import (
	"fmt"
	"strings"
	"time"

	"wordy/internal/database"
	"wordy/internal/domain"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string `env:"BOT_TOKEN"`
	BotPassword string `env:"BOT_PASSWORD"`
	Timezone    string `env:"TIMEZONE" envDefault:"UTC"`
	Database    DatabaseConfig
	Cache       CacheConfig
	Dictionary  DictionaryConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Type     string `env:"DB_TYPE" envDefault:"postgres"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"wordy"`
	User     string `env:"DB_USER" envDefault:"wordy"`
	Password string `env:"DB_PASSWORD"`
	Path     string `env:"DB_PATH" envDefault:"./wordy.sqlite3"`
}

// CacheConfig holds cache lifetimes
type CacheConfig struct {
	PuzzleTTL     time.Duration `env:"PUZZLE_CACHE_TTL" envDefault:"1h"`
	TargetTTL     time.Duration `env:"TARGET_CACHE_TTL" envDefault:"24h"`
	SweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL" envDefault:"10m"`
}

// DictionaryConfig holds seeding settings
type DictionaryConfig struct {
	Path  string `env:"DICTIONARY_PATH" envDefault:"./data/dictionary.csv"`
	Epoch string `env:"WORD_EPOCH"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Database.Type = strings.ToLower(cfg.Database.Type)
	switch cfg.Database.Type {
	case "postgres", "postgresql":
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required")
		}
	case "sqlite", "sqlite3":
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", cfg.Database.Type)
	}

	for name, d := range map[string]time.Duration{
		"PUZZLE_CACHE_TTL":     cfg.Cache.PuzzleTTL,
		"TARGET_CACHE_TTL":     cfg.Cache.TargetTTL,
		"CACHE_SWEEP_INTERVAL": cfg.Cache.SweepInterval,
	} {
		if d <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	if cfg.Dictionary.Epoch != "" {
		if _, err := domain.ParseDate(cfg.Dictionary.Epoch); err != nil {
			return nil, fmt.Errorf("WORD_EPOCH: %w", err)
		}
	}

	return cfg, nil
}

// RequireBot checks the settings only the Telegram bot needs
func (c *Config) RequireBot() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.BotPassword == "" {
		return fmt.Errorf("BOT_PASSWORD is required")
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// DialectConfig returns connection settings for the configured database
func (c *Config) DialectConfig() database.DialectConfig {
	return database.DialectConfig{URL: c.DSN(), Path: c.Database.Path}
}

// Location returns the time zone in which "today" is evaluated
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Epoch returns the first date of the word schedule, defaulting to today
func (c *Config) Epoch(today domain.Date) (domain.Date, error) {
	if c.Dictionary.Epoch == "" {
		return today, nil
	}
	return domain.ParseDate(c.Dictionary.Epoch)
}
