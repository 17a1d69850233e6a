// Package report renders tournament results for people and machines.
package report

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/mascot-madness/internal/domain/bracket"
	"github.com/preston-bernstein/mascot-madness/internal/domain/games"
	"github.com/preston-bernstein/mascot-madness/internal/tournament"
)

const ruleWidth = 60

var (
	heavyRule = strings.Repeat("=", ruleWidth)
	lightRule = strings.Repeat("-", ruleWidth)
)

// semifinalLabels names each semifinal after the regions feeding it.
var semifinalLabels = func() [2]string {
	pairs := bracket.FinalFourPairing()
	return [2]string{
		pairs[0][0] + " vs " + pairs[0][1],
		pairs[1][0] + " vs " + pairs[1][1],
	}
}()

// RenderText lays out the full game log: each region round by round, then the
// Final Four and the championship, closing with the champion banner.
func RenderText(res tournament.Result) string {
	var r renderer
	r.line(heavyRule)
	r.line("       MASCOT MADNESS TOURNAMENT - FULL RESULTS")
	r.line(heavyRule)

	for _, division := range bracket.DivisionOrder() {
		r.division(res, division)
	}

	r.blank()
	r.line(heavyRule)
	r.line("FINAL FOUR")
	r.line(heavyRule)
	for i, g := range res.GamesIn("", games.FinalFour) {
		label := fmt.Sprintf("Semifinal %d", i+1)
		if i < len(semifinalLabels) {
			label += ": " + semifinalLabels[i]
		}
		r.blank()
		r.line("  --- " + label + " ---")
		r.game(1, g)
	}

	r.blank()
	r.line(heavyRule)
	r.line("CHAMPIONSHIP")
	r.line(heavyRule)
	r.blank()
	for _, g := range res.GamesIn("", games.Championship) {
		r.game(1, g)
	}

	r.blank()
	r.line(heavyRule)
	r.line("     MASCOT MADNESS CHAMPION: " + strings.ToUpper(res.Champion.Name))
	r.line(heavyRule)
	return r.String()
}

type renderer struct {
	strings.Builder
}

func (r *renderer) line(s string) {
	r.WriteString(s)
	r.WriteByte('\n')
}

func (r *renderer) blank() {
	r.line("")
}

func (r *renderer) division(res tournament.Result, division string) {
	r.blank()
	r.line(lightRule)
	r.line(strings.ToUpper(division) + " DIVISION")
	r.line(lightRule)

	for round := 0; ; round++ {
		phase, ok := games.DivisionPhase(round)
		if !ok {
			break
		}
		played := res.GamesIn(division, phase)
		if len(played) == 0 {
			continue
		}
		r.blank()
		r.line("  --- " + phase.String() + " ---")
		for _, g := range played {
			r.game(g.GameNumber, g)
		}
	}

	if champ, ok := res.RegionWinners[division]; ok {
		r.blank()
		r.line(fmt.Sprintf("  *** %s CHAMPION: %s ***", strings.ToUpper(division), strings.ToUpper(champ.Name)))
	}
}

func (r *renderer) game(number int, g games.Record) {
	r.blank()
	r.line(fmt.Sprintf("  Game %d: %s vs %s", number, g.TeamA, g.TeamB))
	r.line(fmt.Sprintf("  WINNER: %s (Win probability: %d%%)", g.Winner, g.Confidence))
	r.line(`  "` + g.Narrative + `"`)
}
