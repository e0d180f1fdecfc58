package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type LoggerAdapter struct {
	logger *slog.Logger
}

func NewLoggerAdapter(env string) ports.LoggerPort {
	return NewLoggerAdapterWithWriter(env, os.Stdout)
}

func NewLoggerAdapterWithWriter(env string, w io.Writer) ports.LoggerPort {
	var log *slog.Logger

	switch env {
	case envLocal, envDev:
		log = slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd, "production":
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return &LoggerAdapter{
		logger: log,
	}
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.InfoContext(context.Background(), msg, fields)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.ErrorContext(context.Background(), msg, fields)
}

func (l *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.DebugContext(context.Background(), msg, fields)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.WarnContext(context.Background(), msg, fields)
}

func (l *LoggerAdapter) InfoContext(ctx context.Context, msg string, fields map[string]interface{}) {
	if fields == nil {
		l.logger.InfoContext(ctx, msg)
		return
	}
	l.logger.InfoContext(ctx, msg, slog.Any("fields", fields))
}

func (l *LoggerAdapter) ErrorContext(ctx context.Context, msg string, fields map[string]interface{}) {
	if fields == nil {
		l.logger.ErrorContext(ctx, msg)
		return
	}
	l.logger.ErrorContext(ctx, msg, slog.Any("fields", fields))
}

func (l *LoggerAdapter) DebugContext(ctx context.Context, msg string, fields map[string]interface{}) {
	if fields == nil {
		l.logger.DebugContext(ctx, msg)
		return
	}
	l.logger.DebugContext(ctx, msg, slog.Any("fields", fields))
}

func (l *LoggerAdapter) WarnContext(ctx context.Context, msg string, fields map[string]interface{}) {
	if fields == nil {
		l.logger.WarnContext(ctx, msg)
		return
	}
	l.logger.WarnContext(ctx, msg, slog.Any("fields", fields))
}

var _ ports.LoggerPort = (*LoggerAdapter)(nil)
