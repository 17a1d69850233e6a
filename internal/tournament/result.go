package tournament

import (
	"github.com/preston-bernstein/mascot-madness/internal/domain/bracket"
	"github.com/preston-bernstein/mascot-madness/internal/domain/games"
)

// Result is everything a completed run produced. Games are in play order:
// division-major, round-minor, then the two semifinals and the final.
type Result struct {
	RunID         string                  `json:"runId"`
	Games         []games.Record          `json:"games"`
	RegionWinners map[string]bracket.Team `json:"regionWinners"`
	Finalists     [2]bracket.Team         `json:"finalists"`
	Champion      bracket.Team            `json:"champion"`
}

// RegionWinnerNames returns the region winners' names in division order.
func (r Result) RegionWinnerNames() []string {
	names := make([]string, 0, len(r.RegionWinners))
	for _, division := range bracket.DivisionOrder() {
		if team, ok := r.RegionWinners[division]; ok {
			names = append(names, team.Name)
		}
	}
	return names
}

// GamesIn returns the records for one phase, in play order. An empty division
// matches every division.
func (r Result) GamesIn(division string, phase games.Phase) []games.Record {
	var out []games.Record
	for _, g := range r.Games {
		if g.Phase != phase {
			continue
		}
		if division != "" && g.Division != division {
			continue
		}
		out = append(out, g)
	}
	return out
}
