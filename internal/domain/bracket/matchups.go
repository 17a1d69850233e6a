package bracket

import "fmt"

// SeedPair is a round-one game expressed in seeds.
type SeedPair [2]int

// roundOneSeedOrder lists Round of 64 games in bracket order. Adjacent slots meet in
// the next round, so pairing consecutive winners reproduces the real bracket:
// the 7/10 winner (slot 6) plays the 2/15 winner (slot 7).
var roundOneSeedOrder = [TeamsPerDivision / 2]SeedPair{
	{1, 16}, {8, 9}, {5, 12}, {4, 13}, {6, 11}, {3, 14}, {7, 10}, {2, 15},
}

// RoundOneSeedOrder returns a copy of the round-one seed table.
func RoundOneSeedOrder() []SeedPair {
	order := roundOneSeedOrder
	return order[:]
}

// RoundOneOrder maps the seed table onto a division's sixteen teams.
func RoundOneOrder(teams []Team) ([]Matchup, error) {
	if len(teams) != TeamsPerDivision {
		return nil, structural("round one team count", TeamsPerDivision, len(teams))
	}
	bySeed := make(map[int]Team, len(teams))
	for _, t := range teams {
		if _, dup := bySeed[t.Seed]; dup {
			return nil, structural("round one unique seeds", "unique", fmt.Sprintf("duplicate seed %d", t.Seed))
		}
		bySeed[t.Seed] = t
	}

	matchups := make([]Matchup, 0, len(roundOneSeedOrder))
	for _, pair := range roundOneSeedOrder {
		a, okA := bySeed[pair[0]]
		b, okB := bySeed[pair[1]]
		if !okA {
			return nil, structural("round one seed present", pair[0], "missing")
		}
		if !okB {
			return nil, structural("round one seed present", pair[1], "missing")
		}
		matchups = append(matchups, Matchup{A: a, B: b})
	}
	return matchups, nil
}

// NextRoundOrder pairs slot 2i with slot 2i+1, keeping the list order untouched.
// A single remaining team yields no matchups.
func NextRoundOrder(teams []Team) ([]Matchup, error) {
	n := len(teams)
	if n == 1 {
		return []Matchup{}, nil
	}
	if !isPowerOfTwo(n) {
		return nil, structural("slot count power of two", "2, 4, 8 or 16", n)
	}

	matchups := make([]Matchup, 0, n/2)
	for i := 0; i < n; i += 2 {
		matchups = append(matchups, Matchup{A: teams[i], B: teams[i+1]})
	}
	return matchups, nil
}

// Matchups returns the current round's games for the division: the seed table when
// the full field remains, consecutive slots afterwards.
func (d *Division) Matchups() ([]Matchup, error) {
	if d == nil {
		return nil, structural("division present", "non-nil division", "nil")
	}
	if len(d.Teams) == TeamsPerDivision {
		return RoundOneOrder(d.Teams)
	}
	return NextRoundOrder(d.Teams)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
