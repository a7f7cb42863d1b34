// Package config loads service settings from an optional app.env file and the environment using Viper.
package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration of the application.
type Config struct {
	// ServerAddress is the address the HTTP server listens on.
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	// LogLevel is a zerolog level name (debug, info, warn, ...).
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// GinMode is passed to gin.SetMode.
	GinMode string `mapstructure:"GIN_MODE"`
	// DefaultRadius is the encoded UULEv2 radius used when a request has none.
	DefaultRadius int32 `mapstructure:"DEFAULT_RADIUS"`
	// DefaultProvenance is the UULEv2 provenance used when a request has none.
	DefaultProvenance int32 `mapstructure:"DEFAULT_PROVENANCE"`
}

// LoadConfig reads app.env from path if it exists. Environment variables override the file.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DEFAULT_RADIUS", -1)
	v.SetDefault("DEFAULT_PROVENANCE", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}

	if cfg.ServerAddress == "" {
		return Config{}, errors.New("config: SERVER_ADDRESS must be set")
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("config: invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// Level returns the parsed LogLevel, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
