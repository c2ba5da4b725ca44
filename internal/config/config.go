// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Database struct {
		Enabled    bool   `toml:"enabled"`
		Host       string `toml:"host" validate:"required_if=Enabled true"`
		Port       string `toml:"port" validate:"required_if=Enabled true"`
		User       string `toml:"user"`
		Password   string `toml:"password"`
		Name       string `toml:"name" validate:"required_if=Enabled true"`
		SSLMode    string `toml:"sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
		SearchPath string `toml:"schema"`
	} `toml:"database"`
	Server struct {
		Port         string   `toml:"port" validate:"required,numeric"`
		ReadTimeout  Duration `toml:"read_timeout"`
		WriteTimeout Duration `toml:"write_timeout"`
		// MaxSourceBytes caps the size of a definition posted to the API
		MaxSourceBytes int64 `toml:"max_source_bytes" validate:"gt=0"`
	} `toml:"server"`
	Log struct {
		Level  string `toml:"level" validate:"oneof=debug info warn error"`
		Format string `toml:"format" validate:"oneof=json text"`
	} `toml:"log"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	cfg := &Config{}

	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Name = "logsim"
	cfg.Database.SSLMode = "disable"
	cfg.Database.SearchPath = "public"

	cfg.Server.Port = "8080"
	cfg.Server.ReadTimeout.Duration = time.Second * 15
	cfg.Server.WriteTimeout.Duration = time.Second * 15
	cfg.Server.MaxSourceBytes = 1 << 20

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Load builds the configuration from the defaults, the TOML file at path
// and the environment, in that order. An empty path or a missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyEnv overrides settings from the environment
func (c *Config) applyEnv() error {
	// Database configuration
	enabled, err := strconv.ParseBool(getEnv("DB_ENABLED", strconv.FormatBool(c.Database.Enabled)))
	if err != nil {
		return fmt.Errorf("parsing DB_ENABLED: %w", err)
	}
	c.Database.Enabled = enabled
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnv("DB_PORT", c.Database.Port)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Name = getEnv("DB_NAME", c.Database.Name)
	c.Database.SSLMode = getEnv("DB_SSLMODE", c.Database.SSLMode)
	c.Database.SearchPath = getEnv("DB_SCHEMA", c.Database.SearchPath)

	// Server configuration
	c.Server.Port = getEnv("SERVER_PORT", c.Server.Port)

	// Logging
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)

	return nil
}

// DSN returns the postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
