package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Output formats understood by NewLogger.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ErrUnknownFormat is returned by Validate for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown log format")

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	AddSource bool   `yaml:"addSource"`
}

// SetDefaults fills an empty level and format.
func (c *LoggerConfig) SetDefaults() bool {
	changed := false

	if c.Level == "" {
		c.Level = "INFO"
		changed = true
	}

	if c.Format == "" {
		c.Format = FormatJSON
		changed = true
	}

	return changed
}

// Validate rejects formats NewLogger cannot produce. Unknown levels fall back to INFO.
func (c *LoggerConfig) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", FormatJSON, FormatText:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
}

// NewLogger creates a new slog.Logger writing to w.
// The level defaults to INFO if invalid or empty; the format defaults to JSON.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		AddSource:   config.AddSource,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	}

	var handler slog.Handler
	if strings.EqualFold(config.Format, FormatText) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
