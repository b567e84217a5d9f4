// Package logging builds the server's zerolog logger.
//
// The MCP protocol owns stdout, so the logger is always pointed at stderr or
// another caller-supplied writer, never at stdout.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/ironsheep/color-convert-mcp/internal/config"
)

// New returns a logger writing to w at the configured level and format.
func New(cfg config.Config, w io.Writer) zerolog.Logger {
	out := w
	if cfg.LogFormat != config.LogFormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}
	return zerolog.New(out).Level(cfg.LogLevel).With().Timestamp().Logger()
}
