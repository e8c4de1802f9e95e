package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables read by Load, e.g.
// WORDTRAIL_SERVER_PORT or WORDTRAIL_DATABASE_URL.
const envPrefix = "WORDTRAIL"

// Load reads configuration from environment variables and, when present, a
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file. Returns a populated Config
// struct or an error if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep a bare environment bootable for local development;
	// the database URL has no sensible default and must be provided.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("srs.min_interval_hours", 0)
	v.SetDefault("srs.upcoming_window_hours", 0)
	v.SetDefault("srs.learned_streak_threshold", 0)
	v.SetDefault("srs.queue_limit", 0)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; the environment carries everything.
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already tracks through a
	// default or config-file entry. database.url deliberately has no
	// default, so it needs an explicit binding to be read from
	// WORDTRAIL_DATABASE_URL.
	if err := v.BindEnv("database.url"); err != nil {
		return nil, fmt.Errorf("failed to bind database.url: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks a Config against its declared validation rules.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields = append(fields, fmt.Sprintf("%s (%s)",
					fieldErr.Namespace(), fieldErr.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
