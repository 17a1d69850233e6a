package decider

import (
	"context"

	"github.com/preston-bernstein/mascot-madness/internal/domain/games"
)

// Decider settles a single game between two named teams.
// Implementations report the winner as free text; reconciling it against the two
// names is the tournament's job, not the decider's.
type Decider interface {
	Decide(ctx context.Context, teamA, teamB string) (games.Outcome, error)
}

// Func adapts a plain function to the Decider interface.
type Func func(ctx context.Context, teamA, teamB string) (games.Outcome, error)

// Decide calls f.
func (f Func) Decide(ctx context.Context, teamA, teamB string) (games.Outcome, error) {
	return f(ctx, teamA, teamB)
}
