package bracket

// Advance replaces the division's teams with the round winners, in the order given.
// Winners must be listed in matchup order; that order feeds the next round's pairing.
func (d *Division) Advance(winners []Team) error {
	if d == nil {
		return structural("division present", "non-nil division", "nil")
	}
	if want := len(d.Teams) / 2; len(winners) != want || want == 0 {
		return structural(d.Name+" winners count", want, len(winners))
	}
	next := make([]Team, len(winners))
	copy(next, winners)
	d.Teams = next
	return nil
}

// Advance applies a completed round to the named division.
func (b *Bracket) Advance(division string, winners []Team) error {
	d, err := b.Division(division)
	if err != nil {
		return err
	}
	return d.Advance(winners)
}
