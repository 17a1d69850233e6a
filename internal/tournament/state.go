package tournament

// State is the driver's position in a single run.
type State int

const (
	NotStarted State = iota
	DivisionRounds
	FinalFour
	Championship
	Complete
	Failed
)

var stateNames = [...]string{
	NotStarted:     "not_started",
	DivisionRounds: "division_rounds",
	FinalFour:      "final_four",
	Championship:   "championship",
	Complete:       "complete",
	Failed:         "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// running reports whether a run is in progress.
func (s State) running() bool {
	return s == DivisionRounds || s == FinalFour || s == Championship
}
