package testutil

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/mascot-madness/internal/domain/games"
)

// ErrStub is the default failure returned by failing stubs.
var ErrStub = errors.New("stub decider failure")

// StubDecider returns a configured outcome and error while tracking calls.
type StubDecider struct {
	Outcome games.Outcome
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

func (s *StubDecider) Decide(ctx context.Context, teamA, teamB string) (games.Outcome, error) {
	_ = ctx
	_ = teamA
	_ = teamB
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Outcome, s.Err
}

// FlakyDecider fails the first Failures calls with Err, then picks teamA.
type FlakyDecider struct {
	Failures int32
	Err      error
	Calls    atomic.Int32
}

func (f *FlakyDecider) Decide(ctx context.Context, teamA, teamB string) (games.Outcome, error) {
	_ = ctx
	n := f.Calls.Add(1)
	if n <= f.Failures {
		err := f.Err
		if err == nil {
			err = ErrStub
		}
		return games.Outcome{}, err
	}
	return games.Outcome{Winner: teamA, Loser: teamB, Confidence: 60, Narrative: teamA + " outlasted " + teamB}, nil
}

// Pairing is one decide call as seen by a recording decider.
type Pairing struct {
	TeamA string
	TeamB string
}

// RecordingDecider records every pairing it is asked about and picks a winner with Pick.
// A nil Pick always chooses teamA. Safe for concurrent use.
type RecordingDecider struct {
	Pick func(teamA, teamB string) string

	mu    sync.Mutex
	calls []Pairing
}

// FirstPick returns a recording decider that always declares the first team the winner.
func FirstPick() *RecordingDecider {
	return &RecordingDecider{}
}

func (r *RecordingDecider) Decide(ctx context.Context, teamA, teamB string) (games.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return games.Outcome{}, err
	}
	r.mu.Lock()
	r.calls = append(r.calls, Pairing{TeamA: teamA, TeamB: teamB})
	r.mu.Unlock()

	winner, loser := teamA, teamB
	if r.Pick != nil {
		winner = r.Pick(teamA, teamB)
		if winner == teamA {
			loser = teamB
		} else {
			loser = teamA
		}
	}
	return games.Outcome{Winner: winner, Loser: loser, Confidence: 75, Narrative: winner + " beat " + loser}, nil
}

// Calls returns a copy of the recorded pairings in call order.
func (r *RecordingDecider) Calls() []Pairing {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Pairing(nil), r.calls...)
}
