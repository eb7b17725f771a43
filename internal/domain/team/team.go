// Package team contains the structured team rating record and the scenario
// adjustments applied to it before simulation.
package team

// Rating bounds enforced on every write.
const (
	MinRating = 0.5
	MaxRating = 2.5
)

// Position tags players on the roster. Scorer selection weights depend on it.
type Position string

// Roster position tags.
const (
	Forward    Position = "FW"
	Midfielder Position = "MF"
	Defender   Position = "DF"
	Goalkeeper Position = "GK"
)

// Team is a read-only rating snapshot handed to the engine per call.
// Attack, Defense and Midfield are Poisson-model multipliers with baseline
// 1.0, always kept inside [MinRating, MaxRating]. Form is the recent-results
// average in [0, 1]. A lower FIFARanking means a stronger team.
type Team struct {
	Code          string
	Name          string
	Confederation string
	FIFARanking   int
	Attack        float64
	Defense       float64
	Midfield      float64
	Form          float64
	Roster        map[Position][]string
}

// ClampRating forces a rating multiplier into the valid range.
func ClampRating(v float64) float64 {
	if v < MinRating {
		return MinRating
	}
	if v > MaxRating {
		return MaxRating
	}
	return v
}

// Normalize clamps all rating fields in place and bounds Form to [0, 1].
func (t *Team) Normalize() {
	t.Attack = ClampRating(t.Attack)
	t.Defense = ClampRating(t.Defense)
	t.Midfield = ClampRating(t.Midfield)
	if t.Form < 0 {
		t.Form = 0
	}
	if t.Form > 1 {
		t.Form = 1
	}
}

// Clone returns a deep copy, so callers can hand the engine an isolated
// snapshot while mutating their own registry.
func (t *Team) Clone() *Team {
	c := *t
	if t.Roster != nil {
		c.Roster = make(map[Position][]string, len(t.Roster))
		for pos, names := range t.Roster {
			c.Roster[pos] = append([]string(nil), names...)
		}
	}
	return &c
}

// CloneAll deep-copies a whole registry snapshot.
func CloneAll(teams map[string]*Team) map[string]*Team {
	out := make(map[string]*Team, len(teams))
	for code, t := range teams {
		out[code] = t.Clone()
	}
	return out
}
