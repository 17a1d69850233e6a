// Package mock provides a deterministic decider for offline runs and tests.
package mock

import (
	"context"
	"hash/fnv"
	"math/rand"
	"sort"
	"strings"

	"github.com/preston-bernstein/mascot-madness/internal/domain/games"
)

const (
	minConfidence = 54
	maxConfidence = 95
)

var narratives = [...]string{
	"{winner} dominated {loser} from the opening bell. The {loser} barely had time to react before the decisive blow ended it all.",
	"In a brutal upset, {winner} dismantled {loser} piece by piece, using raw power and cunning to seal the victory.",
	"{winner} toyed with {loser} early, then unleashed a furious finishing combination that left no doubt about the outcome.",
	"It was a bloodbath from the start. {winner} absorbed everything {loser} had and came back twice as hard, ending it emphatically.",
	"{winner} used superior reach and ferocity to keep {loser} off-balance all fight, landing a haymaker that sealed the deal.",
}

// Decider settles games without any network access. The same pair of names
// always yields the same outcome, whatever the argument order.
type Decider struct{}

// New returns a mock decider.
func New() *Decider {
	return &Decider{}
}

func (d *Decider) Decide(ctx context.Context, teamA, teamB string) (games.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return games.Outcome{}, err
	}

	pair := []string{teamA, teamB}
	sort.Strings(pair)
	rng := rand.New(rand.NewSource(seedFor(teamA, teamB)))

	winner := pair[rng.Intn(2)]
	loser := teamB
	if winner == teamB {
		loser = teamA
	}
	confidence := minConfidence + rng.Intn(maxConfidence-minConfidence+1)
	narrative := strings.NewReplacer("{winner}", winner, "{loser}", loser).Replace(narratives[rng.Intn(len(narratives))])

	return games.Outcome{
		Winner:     winner,
		Loser:      loser,
		Confidence: confidence,
		Narrative:  narrative,
	}, nil
}

// seedFor hashes the lower-cased, sorted names so the seed is stable across processes.
func seedFor(teamA, teamB string) int64 {
	keys := []string{strings.ToLower(teamA), strings.ToLower(teamB)}
	sort.Strings(keys)
	h := fnv.New64a()
	_, _ = h.Write([]byte(keys[0]))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(keys[1]))
	return int64(h.Sum64())
}
