package metrics

import (
	"sync"
	"time"
)

type deciderStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about decider calls and games.
// When telemetry is enabled every observation is mirrored to OpenTelemetry instruments.
type Recorder struct {
	mu     sync.Mutex
	stats  map[string]*deciderStats
	games  map[string]int
	runs   int
	failed int
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*deciderStats),
		games: make(map[string]int),
		otel:  otel,
	}
}

// RecordDeciderAttempt increments counters for a decider call and stores the last observed latency.
func (r *Recorder) RecordDeciderAttempt(decider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(decider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDeciderAttempt(decider, duration, err)
	}
}

// RecordRateLimit tracks that a decider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(decider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(decider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(decider, retryAfter)
	}
}

// RecordGame counts a completed game under its phase label.
func (r *Recorder) RecordGame(phase string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.games[phase]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordGame(phase)
	}
}

// RecordRun tracks a finished tournament run.
func (r *Recorder) RecordRun(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.runs++
	if err != nil {
		r.failed++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(duration, err)
	}
}

// DeciderCalls returns the total attempts recorded for a decider.
func (r *Recorder) DeciderCalls(decider string) int {
	return r.Snapshot(decider).Calls
}

// DeciderErrors returns the total failed attempts recorded for a decider.
func (r *Recorder) DeciderErrors(decider string) int {
	return r.Snapshot(decider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a decider.
func (r *Recorder) RateLimitHits(decider string) int {
	return r.Snapshot(decider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a decider.
func (r *Recorder) LastRetryAfter(decider string) time.Duration {
	return r.Snapshot(decider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a decider call.
func (r *Recorder) LastCallLatency(decider string) time.Duration {
	return r.Snapshot(decider).LastCallLatency
}

// GamesPlayed returns the number of games recorded for a phase label.
func (r *Recorder) GamesPlayed(phase string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.games[phase]
}

// TotalGames returns the number of games recorded across all phases.
func (r *Recorder) TotalGames() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, n := range r.games {
		total += n
	}
	return total
}

// Runs returns completed and failed run counts.
func (r *Recorder) Runs() (total, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs, r.failed
}

// Snapshot returns a copy of the current stats for the decider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(decider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[decider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(decider string) *deciderStats {
	stats, ok := r.stats[decider]
	if !ok {
		stats = &deciderStats{}
		r.stats[decider] = stats
	}
	return stats
}
