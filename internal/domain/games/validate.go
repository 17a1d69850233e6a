package games

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinConfidence = 0
	MaxConfidence = 100
)

// OutcomeValidationError means a decider's verdict could not be reconciled with the
// two teams that played. It is never coerced into a guess.
type OutcomeValidationError struct {
	Declared string
	TeamA    string
	TeamB    string
	Reason   string
}

func (e *OutcomeValidationError) Error() string {
	return fmt.Sprintf("outcome: %s (declared %q, teams %q and %q)", e.Reason, e.Declared, e.TeamA, e.TeamB)
}

// AsOutcomeValidationError unwraps err into an OutcomeValidationError when possible.
func AsOutcomeValidationError(err error) (*OutcomeValidationError, bool) {
	var vErr *OutcomeValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// ResolveWinner reconciles a declared winner against the two team names.
// Stage one is an exact case-insensitive match; stage two accepts substring
// containment in either direction. When both teams match at the same stage the
// verdict is ambiguous and rejected. The returned names are the canonical inputs.
func ResolveWinner(declared, teamA, teamB string) (winner, loser string, err error) {
	d := normalize(declared)
	a, b := normalize(teamA), normalize(teamB)
	if d == "" {
		return "", "", &OutcomeValidationError{Declared: declared, TeamA: teamA, TeamB: teamB, Reason: "empty winner"}
	}

	exactA, exactB := d == a, d == b
	switch {
	case exactA && exactB:
		return "", "", &OutcomeValidationError{Declared: declared, TeamA: teamA, TeamB: teamB, Reason: "winner matches both teams"}
	case exactA:
		return teamA, teamB, nil
	case exactB:
		return teamB, teamA, nil
	}

	looseA, looseB := contains(d, a), contains(d, b)
	switch {
	case looseA && looseB:
		return "", "", &OutcomeValidationError{Declared: declared, TeamA: teamA, TeamB: teamB, Reason: "ambiguous winner"}
	case looseA:
		return teamA, teamB, nil
	case looseB:
		return teamB, teamA, nil
	}
	return "", "", &OutcomeValidationError{Declared: declared, TeamA: teamA, TeamB: teamB, Reason: "winner is not one of the two teams"}
}

// Validate checks an outcome against the game's teams and returns it with
// canonical winner and loser names.
func Validate(o Outcome, teamA, teamB string) (Outcome, error) {
	winner, loser, err := ResolveWinner(o.Winner, teamA, teamB)
	if err != nil {
		return Outcome{}, err
	}
	if strings.TrimSpace(o.Loser) != "" {
		declaredLoser, _, lErr := ResolveWinner(o.Loser, teamA, teamB)
		if lErr != nil || declaredLoser != loser {
			return Outcome{}, &OutcomeValidationError{Declared: o.Loser, TeamA: teamA, TeamB: teamB, Reason: "loser does not complement winner"}
		}
	}
	if o.Confidence < MinConfidence || o.Confidence > MaxConfidence {
		return Outcome{}, &OutcomeValidationError{
			Declared: o.Winner,
			TeamA:    teamA,
			TeamB:    teamB,
			Reason:   fmt.Sprintf("confidence %d outside %d-%d", o.Confidence, MinConfidence, MaxConfidence),
		}
	}
	return Outcome{Winner: winner, Loser: loser, Confidence: o.Confidence, Narrative: o.Narrative}, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func contains(declared, team string) bool {
	if team == "" {
		return false
	}
	return strings.Contains(declared, team) || strings.Contains(team, declared)
}
