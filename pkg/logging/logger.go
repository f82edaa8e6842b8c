package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

type Logger struct {
	*slog.Logger
}

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// NewLogger returns a JSON logger writing to stdout
func NewLogger(level LogLevel) *Logger {
	return New(os.Stdout, level)
}

func New(w io.Writer, level LogLevel) *Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	return &Logger{Logger: slog.New(slog.NewJSONHandler(w, opts))}
}

// Discard returns a logger that drops everything, for tests and tools
func Discard() *Logger {
	return New(io.Discard, LevelError)
}

func parseLevel(level LogLevel) slog.Level {
	switch LogLevel(strings.ToLower(string(level))) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithCorrelationID stores id in the context, generating one when id is empty.
// An id already present in ctx is kept.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if GetCorrelationID(ctx) != "" {
		return ctx
	}
	if id == "" {
		id = uuid.New().String()
	}
	return context.WithValue(ctx, correlationIDKey, id)
}

// GetCorrelationID retrieves the correlation ID from context
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

func withCorrelation(ctx context.Context, args []any) []any {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		args = append(args, "correlation_id", correlationID)
	}
	return args
}

func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.Logger.DebugContext(ctx, msg, withCorrelation(ctx, args)...)
}

func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.Logger.InfoContext(ctx, msg, withCorrelation(ctx, args)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.Logger.WarnContext(ctx, msg, withCorrelation(ctx, args)...)
}

func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.Logger.ErrorContext(ctx, msg, withCorrelation(ctx, args)...)
}

// LogLinkOperation records the outcome of a create, delete or resolve
func (l *Logger) LogLinkOperation(ctx context.Context, operation, alias string, err error) {
	args := []any{
		"operation", operation,
		"alias", alias,
		"success", err == nil,
	}
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.Debug(ctx, "link operation", args...)
}
