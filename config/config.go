// Package config loads runtime settings for the staff registry binaries.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration.
type Config struct {
	Server ServerConfig
	Export ExportConfig
	Roster RosterConfig
	Logger LoggerConfig
}

// ServerConfig controls the HTTP shell.
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// ExportConfig controls where the flat export is written. A positive
// Interval makes the server rewrite the file periodically.
type ExportConfig struct {
	Path     string
	Interval time.Duration
}

// RosterConfig names a YAML roster loaded at startup. Empty means none.
type RosterConfig struct {
	Path string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level  string
	Format string
}

// Load reads a .env file when present, then environment variables,
// applying defaults where unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("STAFF_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid STAFF_PORT: %w", err)
	}

	interval, err := time.ParseDuration(getEnv("STAFF_EXPORT_INTERVAL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STAFF_EXPORT_INTERVAL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           port,
			AllowedOrigins: splitList(getEnv("STAFF_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:8080")),
		},
		Export: ExportConfig{
			Path:     getEnv("STAFF_EXPORT_PATH", "staff_list.txt"),
			Interval: interval,
		},
		Roster: RosterConfig{
			Path: os.Getenv("STAFF_ROSTER_PATH"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("STAFF_LOG_LEVEL", "info"),
			Format: getEnv("STAFF_LOG_FORMAT", "console"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Export.Interval < 0 {
		return fmt.Errorf("invalid export interval %s", c.Export.Interval)
	}
	switch c.Logger.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q (use json or console)", c.Logger.Format)
	}
	return nil
}

// Addr returns the HTTP bind address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
