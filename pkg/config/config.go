package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL                string `mapstructure:"url"`
	MaxConnections     int32  `mapstructure:"max_connections"`
	AcquireTimeoutMs   int64  `mapstructure:"acquire_timeout_ms"`
	StatementTimeoutMs int64  `mapstructure:"statement_timeout_ms"`
}

// AcquireTimeout returns the connection-acquire bound as a duration
func (c *DatabaseConfig) AcquireTimeout() time.Duration {
	return time.Duration(c.AcquireTimeoutMs) * time.Millisecond
}

// StatementTimeout returns the per-statement bound as a duration
func (c *DatabaseConfig) StatementTimeout() time.Duration {
	return time.Duration(c.StatementTimeoutMs) * time.Millisecond
}

// Load reads configuration in three layers: built-in defaults, then an
// optional giftcards.yaml in the working directory, then environment
// overrides prefixed with GIFTCARDS (GIFTCARDS_DATABASE_URL and so on).
// A .env file is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("giftcards")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("GIFTCARDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// database.url has an empty default so viper knows the key and
	// AutomaticEnv can override it; Load still rejects the empty value.
	v.SetDefault("database.url", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.acquire_timeout_ms", 3000)
	v.SetDefault("database.statement_timeout_ms", 5000)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults and env cover everything.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database.url is required (set GIFTCARDS_DATABASE_URL or giftcards.yaml)")
	}

	return &cfg, nil
}
