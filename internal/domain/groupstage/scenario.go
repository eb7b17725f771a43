package groupstage

// Score is a fixed regulation score for a locked group-stage match.
type Score struct {
	A int
	B int
}

// LockedResults pins specific group-stage pairings to fixed scores instead
// of random simulation. Keys are (home, away) code pairs; lookups are
// order-independent, flipping the score when the stored order is reversed.
type LockedResults map[[2]string]Score

// Lookup returns the locked score for the pairing (a, b), oriented so the
// first returned value belongs to a.
func (l LockedResults) Lookup(a, b string) (Score, bool) {
	if s, ok := l[[2]string{a, b}]; ok {
		return s, true
	}
	if s, ok := l[[2]string{b, a}]; ok {
		return Score{A: s.B, B: s.A}, true
	}
	return Score{}, false
}

// Constraints are optional round-level scenario overrides applied after the
// ranked table is computed: a forced winner is moved to the top of its
// group, forced exits are moved to the bottom. Relative order is otherwise
// preserved.
type Constraints struct {
	// ForcedWinners maps a group letter to the team code that must finish
	// first in that group.
	ForcedWinners map[string]string

	// ForcedExits lists team codes that must not advance from their group.
	ForcedExits map[string]bool
}

// apply reorders a ranked group table in place per the constraints.
func (c *Constraints) apply(group string, table []*Standing) {
	if c == nil {
		return
	}

	if winner, ok := c.ForcedWinners[group]; ok {
		for i, s := range table {
			if s.Team == winner {
				copy(table[1:i+1], table[:i])
				table[0] = s
				break
			}
		}
	}

	if len(c.ForcedExits) > 0 {
		kept := make([]*Standing, 0, len(table))
		exited := make([]*Standing, 0, len(table))
		for _, s := range table {
			if c.ForcedExits[s.Team] {
				exited = append(exited, s)
			} else {
				kept = append(kept, s)
			}
		}
		copy(table, append(kept, exited...))
	}
}
