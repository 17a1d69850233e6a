package decider

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/mascot-madness/internal/logging"
)

// logWithDecider emits a log entry if a logger is available and always includes the decider name.
func logWithDecider(ctx context.Context, logger *slog.Logger, level slog.Level, decider string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldDecider, decider))
	logger.Log(ctx, level, msg, args...)
}
