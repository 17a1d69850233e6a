package decider

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/mascot-madness/internal/domain/games"
	"github.com/preston-bernstein/mascot-madness/internal/logging"
)

const defaultMinInterval = time.Second

// RateLimited wraps a Decider and enforces a minimum interval between calls.
type RateLimited struct {
	next     Decider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimited returns a Decider that limits calls to the given interval.
// Calls block until the interval elapses to avoid exceeding upstream quotas.
// Callers should Close it to release the ticker.
func NewRateLimited(next Decider, interval time.Duration, logger *slog.Logger) *RateLimited {
	if interval <= 0 {
		interval = defaultMinInterval
	}
	return &RateLimited{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *RateLimited) Decide(ctx context.Context, teamA, teamB string) (games.Outcome, error) {
	if p == nil || p.next == nil {
		var logger *slog.Logger
		if p != nil {
			logger = p.logger
		}
		logWithDecider(ctx, logger, slog.LevelWarn, "rate-limited", "decider unavailable")
		return games.Outcome{}, ErrUnavailable
	}
	select {
	case <-ctx.Done():
		logWithDecider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited decide canceled")
		return games.Outcome{}, ctx.Err()
	case <-p.ticker.C:
	}
	logWithDecider(ctx, p.logger, slog.LevelDebug, "rate-limited", "rate-limited decide",
		logging.FieldTeamA, teamA,
		logging.FieldTeamB, teamB,
	)
	return p.next.Decide(ctx, teamA, teamB)
}

// Close stops the underlying ticker.
func (p *RateLimited) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
