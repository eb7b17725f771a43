package match

import (
	"fmt"

	"github.com/mondialsim/mondial/internal/domain/team"
)

// commentary renders live-style text lines for a finished match. Consumed by
// the narration collaborator; the engine itself never interprets them.
func (e *Engine) commentary(r *Result, a, b *team.Team) []string {
	lines := []string{
		fmt.Sprintf("%s vs %s", a.Name, b.Name),
	}

	scoreA, scoreB := 0, 0
	for _, goal := range r.Goals {
		var scorerTeam string
		if goal.Team == r.TeamA {
			scoreA++
			scorerTeam = a.Name
		} else {
			scoreB++
			scorerTeam = b.Name
		}

		minute := fmt.Sprintf("%d'", goal.Minute)
		if goal.Minute > regulationEnd {
			minute += " (ET)"
		}

		line := fmt.Sprintf("%s %s scores for %s! [%d-%d]", minute, goal.Scorer, scorerTeam, scoreA, scoreB)
		if goal.Assist != "" {
			line += fmt.Sprintf(" (assist: %s)", goal.Assist)
		}
		lines = append(lines, line)
	}

	if len(r.Goals) == 0 {
		lines = append(lines, "A tightly contested match with no goals.")
	}

	fullTime := fmt.Sprintf("Full Time: %s %d - %d %s", a.Name, r.TotalA(), r.TotalB(), b.Name)
	if r.ExtraTime {
		fullTime += fmt.Sprintf(" (after extra time: %d-%d at 90')", r.ScoreA, r.ScoreB)
	}
	lines = append(lines, fullTime)

	if r.Penalties {
		lines = append(lines, fmt.Sprintf("Penalties: %d - %d", r.PenaltyScoreA, r.PenaltyScoreB))
	}

	return lines
}
