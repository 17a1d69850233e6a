package games

// Phase identifies where in the tournament a game was played.
type Phase int

const (
	RoundOf64 Phase = iota
	RoundOf32
	Sweet16
	Elite8
	FinalFour
	Championship
)

var phaseLabels = [...]string{
	RoundOf64:    "Round of 64",
	RoundOf32:    "Round of 32",
	Sweet16:      "Sweet 16",
	Elite8:       "Elite 8",
	FinalFour:    "Final Four",
	Championship: "Championship",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseLabels) {
		return "Unknown"
	}
	return phaseLabels[p]
}

// MarshalText renders the phase label in JSON snapshots.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// DivisionPhase maps a zero-based divisional round to its phase.
// Rounds past the Elite 8 do not exist in a sixteen-team region.
func DivisionPhase(round int) (Phase, bool) {
	if round < 0 || round > int(Elite8) {
		return 0, false
	}
	return Phase(round), true
}

// Outcome is a decider's verdict on a single game.
type Outcome struct {
	Winner     string `json:"winner"`
	Loser      string `json:"loser"`
	Confidence int    `json:"confidence"`
	Narrative  string `json:"narrative"`
}

// Record is one played game, in the order it was played.
type Record struct {
	Sequence   int    `json:"sequence"`
	Phase      Phase  `json:"phase"`
	Label      string `json:"label"`
	Division   string `json:"division,omitempty"`
	GameNumber int    `json:"gameNumber"`
	TeamA      string `json:"teamA"`
	TeamB      string `json:"teamB"`
	Winner     string `json:"winner"`
	Loser      string `json:"loser"`
	Confidence int    `json:"confidence"`
	Narrative  string `json:"narrative"`
}
