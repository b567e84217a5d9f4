// Package config loads runtime settings for the color MCP server.
//
// Settings come from the environment and may be overridden by command-line
// flags:
//
//	COLOR_MCP_LOG_LEVEL   debug | info | warn | error   (default info)
//	COLOR_MCP_LOG_FORMAT  console | json                (default console)
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Environment variable names.
const (
	EnvLogLevel  = "COLOR_MCP_LOG_LEVEL"
	EnvLogFormat = "COLOR_MCP_LOG_FORMAT"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds the server settings.
type Config struct {
	LogLevel  zerolog.Level
	LogFormat string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:  zerolog.InfoLevel,
		LogFormat: LogFormatConsole,
	}
}

// Load reads settings through getenv (usually os.Getenv). Empty variables
// keep their defaults; unrecognized values are an error.
func Load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv(EnvLogLevel); v != "" {
		if err := cfg.SetLogLevel(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	if v := getenv(EnvLogFormat); v != "" {
		if err := cfg.SetLogFormat(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogFormat, err)
		}
	}

	return cfg, nil
}

// SetLogLevel parses a level name such as "debug" or "WARN".
func (c *Config) SetLogLevel(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		c.LogLevel = zerolog.DebugLevel
	case "info":
		c.LogLevel = zerolog.InfoLevel
	case "warn", "warning":
		c.LogLevel = zerolog.WarnLevel
	case "error":
		c.LogLevel = zerolog.ErrorLevel
	default:
		return fmt.Errorf("unknown log level %q", name)
	}
	return nil
}

// SetLogFormat accepts "console" or "json".
func (c *Config) SetLogFormat(name string) error {
	switch f := strings.ToLower(strings.TrimSpace(name)); f {
	case LogFormatConsole, LogFormatJSON:
		c.LogFormat = f
		return nil
	default:
		return fmt.Errorf("unknown log format %q", name)
	}
}
