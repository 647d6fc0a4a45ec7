// Package logging provides structured logging for the timex CLI.
// It wraps log/slog with a process-wide logger that commands configure once;
// records logged with a request context carry its request_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Common structured logging fields.
const (
	KeyRequestID = "request_id"
	KeyOperation = "op"
	KeyDuration  = "duration_ms"
	KeyError     = "error"
	KeyTimex     = "timex"
	KeyReference = "ref"
	KeyCount     = "count"
	KeyPath      = "path"
)

var (
	mu      sync.RWMutex
	current = newLogger(DefaultConfig())

	// Debug reports whether the logger was configured at debug level.
	Debug bool
)

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	JSON      bool
	Output    io.Writer // nil means stderr
	AddSource bool
}

// DefaultConfig logs text at INFO to stderr.
func DefaultConfig() Config {
	return Config{Level: slog.LevelInfo, Output: os.Stderr}
}

// DebugConfig logs JSON with source locations at DEBUG to stderr.
func DebugConfig() Config {
	return Config{Level: slog.LevelDebug, JSON: true, Output: os.Stderr, AddSource: true}
}

func newLogger(cfg Config) *slog.Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level, AddSource: cfg.AddSource}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(requestHandler{h})
}

// Init replaces the global logger.
func Init(cfg Config) {
	l := newLogger(cfg)

	mu.Lock()
	defer mu.Unlock()
	current = l
	Debug = cfg.Level <= slog.LevelDebug
}

// InitDebug is Init(DebugConfig()).
func InitDebug() {
	Init(DebugConfig())
}

// Logger returns the global logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func Info(msg string, args ...any)     { Logger().Info(msg, args...) }
func DebugLog(msg string, args ...any) { Logger().Debug(msg, args...) }
func Warn(msg string, args ...any)     { Logger().Warn(msg, args...) }
func Error(msg string, args ...any)    { Logger().Error(msg, args...) }

// LogOperation logs a finished operation at DEBUG with its duration in
// milliseconds.
//
//	start := time.Now()
//	...
//	logging.LogOperation(ctx, "resolve", start, logging.KeyCount, n)
func LogOperation(ctx context.Context, op string, start time.Time, args ...any) {
	l := Logger()
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	args = append([]any{KeyOperation, op, KeyDuration, time.Since(start).Milliseconds()}, args...)
	l.DebugContext(ctx, "operation", args...)
}

// requestHandler adds the request id found in the record's context.
type requestHandler struct {
	slog.Handler
}

func (h requestHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RequestIDFromContext(ctx); id != "" {
		r.AddAttrs(slog.String(KeyRequestID, id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h requestHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return requestHandler{h.Handler.WithAttrs(attrs)}
}

func (h requestHandler) WithGroup(name string) slog.Handler {
	return requestHandler{h.Handler.WithGroup(name)}
}
