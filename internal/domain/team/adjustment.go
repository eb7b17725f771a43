package team

// Adjustment is a scenario modification to a single team's ratings, supplied
// by the scenario collaborator. Deltas are applied first, then multipliers;
// the result is clamped back into the valid rating range.
type Adjustment struct {
	AttackDelta   float64
	DefenseDelta  float64
	MidfieldDelta float64

	AttackMult   float64
	DefenseMult  float64
	MidfieldMult float64
}

// Apply mutates t with the adjustment and re-clamps all ratings.
// Zero-valued multipliers are treated as 1.0 so a plain delta adjustment
// does not wipe a rating out.
func (a Adjustment) Apply(t *Team) {
	t.Attack = ClampRating((t.Attack + a.AttackDelta) * orOne(a.AttackMult))
	t.Defense = ClampRating((t.Defense + a.DefenseDelta) * orOne(a.DefenseMult))
	t.Midfield = ClampRating((t.Midfield + a.MidfieldDelta) * orOne(a.MidfieldMult))
}

// ApplyAdjustments applies per-team adjustments to a registry snapshot.
// Codes with no matching team are ignored.
func ApplyAdjustments(teams map[string]*Team, adjustments map[string]Adjustment) {
	for code, adj := range adjustments {
		if t, ok := teams[code]; ok {
			adj.Apply(t)
		}
	}
}

func orOne(m float64) float64 {
	if m == 0 {
		return 1.0
	}
	return m
}
