package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksDeciderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordDeciderAttempt("anthropic", 10*time.Millisecond, nil)
	rec.RecordDeciderAttempt("anthropic", 15*time.Millisecond, errors.New("boom"))

	if got := rec.DeciderCalls("anthropic"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.DeciderErrors("anthropic"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("anthropic"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("anthropic")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if empty := rec.Snapshot("unknown"); empty != (Snapshot{}) {
		t.Fatalf("expected empty snapshot for unknown decider, got %+v", empty)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("anthropic", 5*time.Second)
	rec.RecordRateLimit("anthropic", 0)

	if got := rec.RateLimitHits("anthropic"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("anthropic"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderCountsGamesAndRuns(t *testing.T) {
	rec := NewRecorder()
	for i := 0; i < 32; i++ {
		rec.RecordGame("Round of 64")
	}
	rec.RecordGame("Championship")
	rec.RecordRun(time.Second, nil)
	rec.RecordRun(time.Second, errors.New("bad bracket"))

	if got := rec.GamesPlayed("Round of 64"); got != 32 {
		t.Fatalf("expected 32 round of 64 games, got %d", got)
	}
	if got := rec.TotalGames(); got != 33 {
		t.Fatalf("expected 33 games, got %d", got)
	}
	if total, failed := rec.Runs(); total != 2 || failed != 1 {
		t.Fatalf("expected 2 runs with 1 failure, got %d/%d", total, failed)
	}
}

func TestRecorderIsSafeForConcurrentUse(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				rec.RecordDeciderAttempt("mock", time.Millisecond, nil)
				rec.RecordGame("Round of 64")
			}
		}()
	}
	wg.Wait()

	if got := rec.DeciderCalls("mock"); got != 200 {
		t.Fatalf("expected 200 calls, got %d", got)
	}
	if got := rec.TotalGames(); got != 200 {
		t.Fatalf("expected 200 games, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordDeciderAttempt("x", time.Millisecond, nil)
	rec.RecordRateLimit("x", time.Second)
	rec.RecordGame("Sweet 16")
	rec.RecordRun(time.Second, nil)
	if rec.DeciderCalls("x") != 0 || rec.TotalGames() != 0 {
		t.Fatal("expected zero values from nil recorder")
	}
}
