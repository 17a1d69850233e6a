package logging

import (
	"context"
	"log/slog"
)

// The helpers below are no-ops on a nil logger so collaborators built without
// one stay quiet instead of panicking.

func Debug(logger *slog.Logger, msg string, args ...any) {
	logAt(logger, slog.LevelDebug, msg, args)
}

func Info(logger *slog.Logger, msg string, args ...any) {
	logAt(logger, slog.LevelInfo, msg, args)
}

func Warn(logger *slog.Logger, msg string, args ...any) {
	logAt(logger, slog.LevelWarn, msg, args)
}

// Error logs at error level with err under FieldError.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, Err(err))
	}
	logAt(logger, slog.LevelError, msg, args)
}

// Err is the attribute every error is logged under.
func Err(err error) slog.Attr {
	return slog.Any(FieldError, err)
}

func logAt(logger *slog.Logger, level slog.Level, msg string, args []any) {
	if logger == nil {
		return
	}
	logger.Log(context.Background(), level, msg, args...)
}
