package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options controls where and how much the client logs.
type Options struct {
	Level  string
	Output io.Writer
}

// Init configures the global slog logger.
// With NEUROAD_ENV=production it emits JSON, otherwise the text handler.
func Init(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handler slog.Handler
	if strings.ToLower(os.Getenv("NEUROAD_ENV")) == "production" {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps a config string to a slog level, defaulting to info.
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

// OpenFile opens (truncating) a log file under dir/logs. The TUI logs here
// so output does not corrupt the screen.
func OpenFile(dir, name string) (*os.File, error) {
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(logDir, name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}

// WithComponent returns a logger tagged with the emitting component.
func WithComponent(name string) *slog.Logger {
	return slog.With("component", name)
}

// WithProject returns a logger scoped to a single project.
func WithProject(logger *slog.Logger, projectID string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("project_id", projectID)
}

// WithRequest returns a logger scoped to an outgoing backend request.
func WithRequest(logger *slog.Logger, requestID, method, path string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(
		"request_id", requestID,
		"method", method,
		"path", path,
	)
}
