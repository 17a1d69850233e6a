package tournament

import (
	"log/slog"

	"github.com/preston-bernstein/mascot-madness/internal/domain/games"
	"github.com/preston-bernstein/mascot-madness/internal/metrics"
)

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger used for run and game events.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

// WithMetrics records games played and run outcomes.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(d *Driver) { d.metrics = recorder }
}

// WithParallelDivisions plays the four regions concurrently on isolated copies.
// The game log keeps the same order as a sequential run.
func WithParallelDivisions(enabled bool) Option {
	return func(d *Driver) { d.parallel = enabled }
}

// WithObserver is called once per game in log order. Calls are never concurrent.
// In parallel mode divisional games are delivered after all regions finish.
func WithObserver(fn func(games.Record)) Option {
	return func(d *Driver) { d.observer = fn }
}

// WithRunIDFunc overrides how run ids are generated.
func WithRunIDFunc(fn func() string) Option {
	return func(d *Driver) {
		if fn != nil {
			d.newRunID = fn
		}
	}
}
