// Package config loads and validates application configuration from
// environment variables and an optional config file.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	SRS      SRSConfig      `mapstructure:"srs"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// SRSConfig contains the tunable parameters of the scheduling core.
// Zero values select the engine's built-in defaults; the minimum interval
// can only be raised, never lowered below the engine floor.
type SRSConfig struct {
	MinIntervalHours       float64 `mapstructure:"min_interval_hours" validate:"gte=0"`
	UpcomingWindowHours    float64 `mapstructure:"upcoming_window_hours" validate:"gte=0"`
	LearnedStreakThreshold int     `mapstructure:"learned_streak_threshold" validate:"gte=0"`
	QueueLimit             int     `mapstructure:"queue_limit" validate:"gte=0"`
}
