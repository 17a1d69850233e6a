package bracket

import (
	"fmt"
	"strings"
)

// Validate checks the shape a run depends on: four canonical divisions of sixteen
// uniquely named teams seeded 1 through 16.
func (b *Bracket) Validate() error {
	if b == nil {
		return structural("bracket present", "non-nil bracket", "nil")
	}
	if len(b.Divisions) != DivisionCount {
		return structural("division count", DivisionCount, len(b.Divisions))
	}
	for _, name := range divisionOrder {
		d, ok := b.Divisions[name]
		if !ok || d == nil {
			return structural("division present", name, "missing")
		}
		if d.Name != name {
			return structural(fmt.Sprintf("division %q name", name), name, d.Name)
		}
		if err := d.validateField(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Division) validateField() error {
	if len(d.Teams) != TeamsPerDivision {
		return structural(fmt.Sprintf("%s team count", d.Name), TeamsPerDivision, len(d.Teams))
	}
	if err := checkSeeds(d.Name, d.Teams); err != nil {
		return err
	}

	names := make(map[string]struct{}, len(d.Teams))
	for _, t := range d.Teams {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return structural(fmt.Sprintf("%s seed %d name", d.Name, t.Seed), "non-empty name", "empty")
		}
		key := strings.ToLower(name)
		if _, dup := names[key]; dup {
			return structural(fmt.Sprintf("%s unique team names", d.Name), "unique", fmt.Sprintf("duplicate %q", name))
		}
		names[key] = struct{}{}
	}
	return nil
}

// checkSeeds requires every seed 1..len(teams) exactly once.
func checkSeeds(division string, teams []Team) error {
	seen := make(map[int]struct{}, len(teams))
	for _, t := range teams {
		if t.Seed < 1 || t.Seed > len(teams) {
			return structural(fmt.Sprintf("%s seed range", division), fmt.Sprintf("1..%d", len(teams)), t.Seed)
		}
		if _, dup := seen[t.Seed]; dup {
			return structural(fmt.Sprintf("%s unique seeds", division), "unique", fmt.Sprintf("duplicate seed %d", t.Seed))
		}
		seen[t.Seed] = struct{}{}
	}
	return nil
}
