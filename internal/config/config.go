// Package config loads the server configuration once at startup.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const DefaultPort = 10002

var ErrInvalid = errors.New("invalid configuration")

// Config holds the server configuration loaded from environment variables.
type Config struct {
	Port          int
	PublicBaseURL string // used only to build the agent card's endpoint URL

	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json
	GinMode   string // debug, release, test
}

// Load reads the configuration from the environment, after loading a .env
// file if one is present.
func Load() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present

	port, err := getEnvIntOrDefault("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:          port,
		PublicBaseURL: strings.TrimRight(getEnvOrDefault("PUBLIC_BASE_URL", fmt.Sprintf("http://localhost:%d", port)), "/"),
		LogLevel:      strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
		GinMode:       getEnvOrDefault("GIN_MODE", gin.ReleaseMode),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: PORT %d out of range", ErrInvalid, c.Port)
	}

	u, err := url.Parse(c.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("%w: PUBLIC_BASE_URL: %w", ErrInvalid, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: PUBLIC_BASE_URL %q must be an absolute http(s) URL", ErrInvalid, c.PublicBaseURL)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: LOG_FORMAT %q (must be text or json)", ErrInvalid, c.LogFormat)
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("%w: GIN_MODE %q", ErrInvalid, c.GinMode)
	}

	return nil
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: LOG_LEVEL %q", ErrInvalid, c.LogLevel)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// NewLogger builds the process logger described by the configuration.
func (c *Config) NewLogger() *slog.Logger {
	level, _ := c.Level()
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalid, key, value)
	}
	return i, nil
}
