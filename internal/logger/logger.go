package logger

import (
	"io"
	"log/slog"
)

type AppLogger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type appLogger struct {
	logger *slog.Logger
}

func NewAppLogger(logger *slog.Logger) AppLogger {
	return &appLogger{
		logger: logger,
	}
}

// NewTextLogger は、テキストハンドラー付きのAppLoggerを生成するショートカットです。
func NewTextLogger(w io.Writer) AppLogger {
	return NewAppLogger(slog.New(slog.NewTextHandler(w, nil)))
}

func (l *appLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *appLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *appLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
