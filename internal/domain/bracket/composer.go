package bracket

// finalFourPairing is fixed by convention, not derived from seeding.
var finalFourPairing = [2][2]string{{West, East}, {South, Midwest}}

// FinalFourPairing returns the region pairs for the two semifinals.
func FinalFourPairing() [2][2]string {
	return finalFourPairing
}

// FinalFourPairs builds the semifinals: West vs East, then South vs Midwest.
func FinalFourPairs(regionWinners map[string]Team) ([2]Matchup, error) {
	var out [2]Matchup
	for i, pair := range finalFourPairing {
		a, ok := regionWinners[pair[0]]
		if !ok {
			return out, structural("final four region winner", pair[0], "missing")
		}
		b, ok := regionWinners[pair[1]]
		if !ok {
			return out, structural("final four region winner", pair[1], "missing")
		}
		out[i] = Matchup{A: a, B: b}
	}
	return out, nil
}

// ChampionshipPair pairs the two semifinal winners in the order given.
func ChampionshipPair(finalFourWinners []Team) (Matchup, error) {
	if len(finalFourWinners) != 2 {
		return Matchup{}, structural("final four winners count", 2, len(finalFourWinners))
	}
	return Matchup{A: finalFourWinners[0], B: finalFourWinners[1]}, nil
}
