package bracket

import "fmt"

// Canonical division names.
const (
	West    = "West"
	East    = "East"
	South   = "South"
	Midwest = "Midwest"
)

const (
	// DivisionCount is the number of regions feeding the Final Four.
	DivisionCount = 4
	// TeamsPerDivision is the field size of each region.
	TeamsPerDivision = 16
)

var divisionOrder = [DivisionCount]string{West, East, South, Midwest}

// DivisionOrder returns the division names in reporting order.
func DivisionOrder() []string {
	order := divisionOrder
	return order[:]
}

// IsDivisionName reports whether name is one of the canonical regions.
func IsDivisionName(name string) bool {
	for _, d := range divisionOrder {
		if d == name {
			return true
		}
	}
	return false
}

// Team is an entrant. Gameplay treats it as an opaque token; tests compare by value.
type Team struct {
	Name string `json:"name" yaml:"name"`
	Seed int    `json:"seed" yaml:"seed"`
}

func (t Team) String() string {
	return t.Name
}

// Division holds a region's surviving teams in slot order.
// After round-one generation the order encodes bracket position, not seed.
type Division struct {
	Name  string `json:"name"`
	Teams []Team `json:"teams"`
}

// Champion returns the region winner once exactly one team remains.
func (d *Division) Champion() (Team, bool) {
	if d == nil || len(d.Teams) != 1 {
		return Team{}, false
	}
	return d.Teams[0], true
}

func (d *Division) clone() *Division {
	teams := make([]Team, len(d.Teams))
	copy(teams, d.Teams)
	return &Division{Name: d.Name, Teams: teams}
}

// Bracket maps division name to division. It is mutated in place round by round.
type Bracket struct {
	Divisions map[string]*Division `json:"divisions"`
}

// New builds a bracket keyed by each division's name.
func New(divisions ...*Division) *Bracket {
	b := &Bracket{Divisions: make(map[string]*Division, len(divisions))}
	for _, d := range divisions {
		if d == nil {
			continue
		}
		b.Divisions[d.Name] = d
	}
	return b
}

// Division looks up a division by name.
func (b *Bracket) Division(name string) (*Division, error) {
	if b == nil {
		return nil, &StructuralError{Invariant: "bracket present", Expected: "non-nil bracket", Actual: "nil"}
	}
	d, ok := b.Divisions[name]
	if !ok || d == nil {
		return nil, &StructuralError{Invariant: "division present", Expected: name, Actual: "missing"}
	}
	return d, nil
}

// Clone returns a deep copy so callers can mutate divisions independently.
func (b *Bracket) Clone() *Bracket {
	if b == nil {
		return nil
	}
	out := &Bracket{Divisions: make(map[string]*Division, len(b.Divisions))}
	for name, d := range b.Divisions {
		if d == nil {
			out.Divisions[name] = nil
			continue
		}
		out.Divisions[name] = d.clone()
	}
	return out
}

// InDivisionalPhase reports whether any division still has more than one team.
func (b *Bracket) InDivisionalPhase() bool {
	if b == nil {
		return false
	}
	for _, d := range b.Divisions {
		if d != nil && len(d.Teams) > 1 {
			return true
		}
	}
	return false
}

// Matchup is an ordered pairing; A is listed first in logs and decider calls.
type Matchup struct {
	A Team `json:"a"`
	B Team `json:"b"`
}

func (m Matchup) String() string {
	return fmt.Sprintf("%s vs %s", m.A.Name, m.B.Name)
}
