package testutil

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/mascot-madness/internal/domain/bracket"
)

// TeamName returns the fixture name for a seed in a division, e.g. "West 7".
func TeamName(division string, seed int) string {
	return fmt.Sprintf("%s %d", division, seed)
}

// SampleDivision builds a sixteen-team division whose team names embed the seed.
func SampleDivision(name string) *bracket.Division {
	teams := make([]bracket.Team, 0, bracket.TeamsPerDivision)
	for seed := 1; seed <= bracket.TeamsPerDivision; seed++ {
		teams = append(teams, bracket.Team{Name: TeamName(name, seed), Seed: seed})
	}
	return &bracket.Division{Name: name, Teams: teams}
}

// SampleBracket returns a valid four-division bracket.
func SampleBracket() *bracket.Bracket {
	divisions := make([]*bracket.Division, 0, bracket.DivisionCount)
	for _, name := range bracket.DivisionOrder() {
		divisions = append(divisions, SampleDivision(name))
	}
	return bracket.New(divisions...)
}

// SampleBracketText renders SampleBracket in the plain text input format.
func SampleBracketText() string {
	var b strings.Builder
	for _, name := range bracket.DivisionOrder() {
		b.WriteString(strings.ToUpper(name))
		b.WriteString("\n")
		for seed := 1; seed <= bracket.TeamsPerDivision; seed++ {
			b.WriteString(TeamName(name, seed))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SampleBracketYAML renders SampleBracket in the YAML input format.
func SampleBracketYAML() string {
	var b strings.Builder
	b.WriteString("divisions:\n")
	for _, name := range bracket.DivisionOrder() {
		fmt.Fprintf(&b, "  - name: %s\n    teams:\n", name)
		for seed := 1; seed <= bracket.TeamsPerDivision; seed++ {
			fmt.Fprintf(&b, "      - %s\n", TeamName(name, seed))
		}
	}
	return b.String()
}
