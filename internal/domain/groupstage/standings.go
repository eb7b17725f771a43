// Package groupstage runs round-robin group play and produces ranked
// standings, including the ranking of third-placed teams across groups.
package groupstage

import (
	"sort"

	"github.com/mondialsim/mondial/internal/domain/match"
	"github.com/mondialsim/mondial/internal/domain/team"
)

// Points awarded per match outcome.
const (
	pointsWin  = 3
	pointsDraw = 1
)

// Standing accumulates one team's group-stage record.
type Standing struct {
	Team         string
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	Points       int
	Matches      []*match.Result
}

// GoalDifference returns goals scored minus goals conceded.
func (s *Standing) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

// record applies one match's goals-for/against and points to the standing.
func (s *Standing) record(goalsFor, goalsAgainst int, m *match.Result) {
	s.Played++
	s.GoalsFor += goalsFor
	s.GoalsAgainst += goalsAgainst
	s.Matches = append(s.Matches, m)

	switch {
	case goalsFor > goalsAgainst:
		s.Wins++
		s.Points += pointsWin
	case goalsFor < goalsAgainst:
		s.Losses++
	default:
		s.Draws++
		s.Points += pointsDraw
	}
}

// SortStandings orders standings with the tournament tiebreak key:
// points desc, goal difference desc, goals for desc, FIFA ranking asc.
// The order is total unless two teams tie on all four keys.
func SortStandings(standings []*Standing, teams map[string]*team.Team) {
	sort.SliceStable(standings, func(i, j int) bool {
		return lessStanding(standings[i], standings[j], teams)
	})
}

func lessStanding(a, b *Standing, teams map[string]*team.Team) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference() != b.GoalDifference() {
		return a.GoalDifference() > b.GoalDifference()
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	return fifaRanking(teams, a.Team) < fifaRanking(teams, b.Team)
}

// fifaRanking treats unknown teams as very weak so they never win a tie.
func fifaRanking(teams map[string]*team.Team, code string) int {
	if t, ok := teams[code]; ok {
		return t.FIFARanking
	}
	return int(^uint(0) >> 1)
}
