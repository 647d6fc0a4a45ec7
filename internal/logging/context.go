package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
)

type requestIDKey struct{}

// GenerateRequestID returns 16 hex characters tying together the log lines
// of one command invocation.
func GenerateRequestID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "0000000000000000"
	}
	return hex.EncodeToString(b[:])
}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// NewRequestContext returns a background context with a fresh request id.
func NewRequestContext() context.Context {
	return WithRequestID(context.Background(), GenerateRequestID())
}

// RequestIDFromContext returns the request id in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// ContextLogger logs with a fixed context, so every line carries its
// request id.
type ContextLogger struct {
	ctx context.Context
	l   *slog.Logger
}

// FromContext binds the global logger to ctx.
func FromContext(ctx context.Context) *ContextLogger {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ContextLogger{ctx: ctx, l: Logger()}
}

// With returns a ContextLogger with additional attributes.
func (cl *ContextLogger) With(args ...any) *ContextLogger {
	return &ContextLogger{ctx: cl.ctx, l: cl.l.With(args...)}
}

func (cl *ContextLogger) Debug(msg string, args ...any) { cl.l.DebugContext(cl.ctx, msg, args...) }
func (cl *ContextLogger) Info(msg string, args ...any)  { cl.l.InfoContext(cl.ctx, msg, args...) }
func (cl *ContextLogger) Warn(msg string, args ...any)  { cl.l.WarnContext(cl.ctx, msg, args...) }
func (cl *ContextLogger) Error(msg string, args ...any) { cl.l.ErrorContext(cl.ctx, msg, args...) }

// RequestID returns the request id of the bound context.
func (cl *ContextLogger) RequestID() string {
	return RequestIDFromContext(cl.ctx)
}
