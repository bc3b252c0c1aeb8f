package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/phrazzld/clevercore-api/internal/config"
)

// Setup initializes and configures the application's logging system based on
// the provided configuration. Production deployments use a JSON handler on
// stdout; "text" format switches to a colourised console handler on stderr for
// local development. The resulting logger is installed as the slog default.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	var out io.Writer = os.Stdout
	if strings.EqualFold(cfg.LogFormat, "text") {
		out = os.Stderr
	}

	logger := slog.New(NewHandler(out, cfg))
	slog.SetDefault(logger)

	return logger, nil
}

// NewHandler builds the slog.Handler matching cfg.LogFormat and cfg.LogLevel.
func NewHandler(out io.Writer, cfg config.ServerConfig) slog.Handler {
	level := ParseLevel(cfg.LogLevel)

	if strings.EqualFold(cfg.LogFormat, "text") {
		return tint.NewHandler(out, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}

	return slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
}

// ParseLevel converts a configured level name (case-insensitive) into a slog.Level.
// Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		return slog.LevelInfo
	default:
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Warn(
			"invalid log level configured, using default level",
			"configured_level", name,
			"default_level", "info")
		return slog.LevelInfo
	}
}
