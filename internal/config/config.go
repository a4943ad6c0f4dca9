// Package config provides configuration management for the match odds service.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Analysis AnalysisConfig `mapstructure:"analysis" validate:"required"`
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// AnalysisConfig carries the engine defaults applied when a request does not
// override them.
type AnalysisConfig struct {
	MaxGoals      int       `mapstructure:"max_goals" validate:"required,gt=0"`
	MarginPercent float64   `mapstructure:"margin_percent" validate:"gte=0"`
	Thresholds    []float64 `mapstructure:"thresholds" validate:"required,min=1,thresholds"`
}

// ServerConfig represents the HTTP API configuration
type ServerConfig struct {
	Port                   int     `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeoutSeconds     int     `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	WriteTimeoutSeconds    int     `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
	ShutdownTimeoutSeconds int     `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
	RateLimitPerSecond     float64 `mapstructure:"rate_limit_per_second" validate:"required,gt=0"`
	RateLimitBurst         int     `mapstructure:"rate_limit_burst" validate:"required,gt=0"`
	CacheTTLSeconds        int     `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	CacheMaxEntries        int     `mapstructure:"cache_max_entries" validate:"required,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// ListenAddress returns the bind address for the HTTP server
func (c *Config) ListenAddress() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// ReadTimeout returns the server read timeout as a duration
func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the server write timeout as a duration
func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown window as a duration
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutSeconds) * time.Second
}

// CacheTTL returns the analysis response cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Server.CacheTTLSeconds) * time.Second
}
