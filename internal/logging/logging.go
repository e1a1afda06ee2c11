// Package logging builds the slog loggers used by the mazegen binary.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config mirrors the log.* configuration keys.
type Config struct {
	Level      string
	Format     string // "text" or "json"
	File       string // empty: write to Output (stderr by default)
	MaxSize    int    // MB per file before rotation
	MaxBackups int
	MaxAge     int // days
	Compress   bool

	// Output overrides stderr when File is empty. Tests use it.
	Output io.Writer
}

// ParseLevel maps a level name to slog.Level. Unknown names fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a logger for cfg and the level var backing it, so a config
// reload can change verbosity without rebuilding the handler.
func New(cfg Config) (*slog.Logger, *slog.LevelVar) {
	level := new(slog.LevelVar)
	level.Set(ParseLevel(cfg.Level))

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}
			return a
		},
	}

	var w io.Writer = os.Stderr
	switch {
	case cfg.File != "":
		w = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
	case cfg.Output != nil:
		w = cfg.Output
	}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With(slog.String("service", "mazegen")), level
}

// ForTUI returns a logger that never writes to the terminal: to the rotated
// file when cfg.File is set, otherwise nowhere.
func ForTUI(cfg Config) (*slog.Logger, *slog.LevelVar) {
	if cfg.File == "" {
		cfg.Output = io.Discard
	}
	return New(cfg)
}

// Validate reports an unsupported format.
func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", "text", "json":
		return nil
	}
	return fmt.Errorf("logging: unknown format %q", c.Format)
}
