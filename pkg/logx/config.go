package logx

import (
	"io"
	"os"
	"strings"
	"time"
)

// Format selects the formatter
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// Config holds the logger configuration
type Config struct {
	Level           Level
	Format          Format
	EnableColors    bool
	EnableCaller    bool
	EnableTimestamp bool
	TimeFormat      string
	Output          io.Writer
}

// DefaultConfig logs info and above to stdout in colored console format
func DefaultConfig() *Config {
	return &Config{
		Level:           LevelInfo,
		Format:          FormatConsole,
		EnableColors:    true,
		EnableTimestamp: true,
		TimeFormat:      time.RFC3339,
		Output:          os.Stdout,
	}
}

// LoadFromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_COLOR, LOG_CALLER and LOG_TIME_FORMAT
func LoadFromEnv() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = ParseLevel(v)
	}
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		cfg.Format = FormatJSON
	}
	if v := os.Getenv("LOG_COLOR"); v != "" {
		cfg.EnableColors = isTrue(v)
	}
	if v := os.Getenv("LOG_CALLER"); v != "" {
		cfg.EnableCaller = isTrue(v)
	}
	if v := os.Getenv("LOG_TIME_FORMAT"); v != "" {
		switch strings.ToUpper(v) {
		case "RFC3339":
			cfg.TimeFormat = time.RFC3339
		case "RFC3339NANO":
			cfg.TimeFormat = time.RFC3339Nano
		default:
			cfg.TimeFormat = v
		}
	}

	return cfg
}

func isTrue(v string) bool {
	return strings.EqualFold(v, "true") || v == "1"
}
