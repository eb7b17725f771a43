// Package match simulates a single match with a Poisson goal model,
// including extra time and penalty shootouts for knockout play.
package match

// GoalEvent is a single goal with its minute, scorer and optional assist.
// Minutes above 90 fall in extra time.
type GoalEvent struct {
	Minute int
	Team   string
	Scorer string
	Assist string // empty when the goal was unassisted
}

// Result is the full outcome of one simulated match.
//
// Winner is the winning team's code. It is empty only when the match was
// played with draws allowed and regulation ended level; once extra time and
// penalties are resolved it is always set.
type Result struct {
	TeamA string
	TeamB string

	// Regulation score.
	ScoreA int
	ScoreB int

	Goals []GoalEvent

	// Extra time, set only when regulation ended level and draws were
	// not allowed.
	ExtraTime bool
	ETScoreA  int
	ETScoreB  int

	// Penalty shootout, set only when extra time also ended level.
	Penalties     bool
	PenaltyScoreA int
	PenaltyScoreB int

	Winner string

	// Derived stats.
	XGA            float64
	XGB            float64
	PossessionA    float64
	ShotsA         int
	ShotsB         int
	ShotsOnTargetA int
	ShotsOnTargetB int

	Commentary []string
}

// TotalA returns team A's goals including extra time.
func (r *Result) TotalA() int { return r.ScoreA + r.ETScoreA }

// TotalB returns team B's goals including extra time.
func (r *Result) TotalB() int { return r.ScoreB + r.ETScoreB }

// Loser returns the losing team's code, or empty for a draw.
func (r *Result) Loser() string {
	switch r.Winner {
	case r.TeamA:
		return r.TeamB
	case r.TeamB:
		return r.TeamA
	default:
		return ""
	}
}

// Involves reports whether the given team code played in this match.
func (r *Result) Involves(code string) bool {
	return r.TeamA == code || r.TeamB == code
}
