package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	UserEmailKey contextKey = "user_email"
	ServiceKey   contextKey = "service"
)

var defaultLogger zerolog.Logger

func init() {
	defaultLogger = New(os.Stdout, os.Getenv("LOG_LEVEL"))
}

// New builds a JSON logger writing to w. Unknown or empty levels fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// SetDefault replaces the process-wide logger.
func SetDefault(l zerolog.Logger) {
	defaultLogger = l
}

func Default() *zerolog.Logger {
	return &defaultLogger
}

func WithContext(ctx context.Context) *zerolog.Logger {
	c := defaultLogger.With()

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		c = c.Interface("request_id", requestID)
	}

	if email := ctx.Value(UserEmailKey); email != nil {
		c = c.Interface("user_email", email)
	}

	if service := ctx.Value(ServiceKey); service != nil {
		c = c.Interface("service", service)
	}

	l := c.Logger()
	return &l
}

func Info(msg string, args ...any) {
	defaultLogger.Info().Fields(args).Msg(msg)
}

func Error(msg string, args ...any) {
	defaultLogger.Error().Fields(args).Msg(msg)
}

func Debug(msg string, args ...any) {
	defaultLogger.Debug().Fields(args).Msg(msg)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn().Fields(args).Msg(msg)
}

func InfoContext(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Info().Fields(args).Msg(msg)
}

func ErrorContext(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Error().Fields(args).Msg(msg)
}

func DebugContext(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Debug().Fields(args).Msg(msg)
}

func WarnContext(ctx context.Context, msg string, args ...any) {
	WithContext(ctx).Warn().Fields(args).Msg(msg)
}
