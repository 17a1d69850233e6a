package decider

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/mascot-madness/internal/domain/games"
	"github.com/preston-bernstein/mascot-madness/internal/logging"
	"github.com/preston-bernstein/mascot-madness/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 500 * time.Millisecond
	maxBackoffInterval   = 30 * time.Second
)

// retryingDecider wraps a Decider with retry/backoff behavior.
type retryingDecider struct {
	inner       Decider
	name        string
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

// NewRetrying wraps the given decider with retries. If maxAttempts/base are <= 0, defaults are used.
// Rate-limited attempts wait for the upstream Retry-After when one was supplied.
func NewRetrying(inner Decider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, base time.Duration) Decider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if base <= 0 {
		base = defaultBackoff
	}
	return &retryingDecider{
		inner:       inner,
		name:        name,
		logger:      logger,
		metrics:     recorder,
		maxAttempts: maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = base
			b.MaxInterval = maxBackoffInterval
			b.MaxElapsedTime = 0
			b.Reset()
			return b
		},
	}
}

func (r *retryingDecider) Decide(ctx context.Context, teamA, teamB string) (games.Outcome, error) {
	if r.inner == nil {
		return games.Outcome{}, ErrUnavailable
	}

	var (
		outcome games.Outcome
		attempt int
	)
	policy := &retryAfterBackOff{next: r.newBackOff()}

	op := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		attempt++
		start := time.Now()
		out, err := r.inner.Decide(ctx, teamA, teamB)
		r.metrics.RecordDeciderAttempt(r.name, time.Since(start), err)
		if err == nil {
			outcome = out
			return nil
		}
		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rlErr.RetryAfter)
			policy.wait = rlErr.RetryAfter
		}
		if !Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, delay time.Duration) {
		logWithDecider(ctx, r.logger, slog.LevelWarn, r.name, "decider retry",
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			logging.Err(err),
		)
	}

	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx)
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		logWithDecider(ctx, r.logger, slog.LevelWarn, r.name, "decider failed",
			"attempts", attempt,
			logging.Err(err),
		)
		return games.Outcome{}, err
	}
	return outcome, nil
}

// retryAfterBackOff prefers an upstream Retry-After over the computed delay for one step.
type retryAfterBackOff struct {
	next backoff.BackOff
	wait time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	d := b.next.NextBackOff()
	if d == backoff.Stop {
		return d
	}
	if b.wait > 0 {
		d, b.wait = b.wait, 0
	}
	return d
}

func (b *retryAfterBackOff) Reset() {
	b.wait = 0
	b.next.Reset()
}
