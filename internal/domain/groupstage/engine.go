package groupstage

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/mondialsim/mondial/internal/domain/match"
	"github.com/mondialsim/mondial/internal/domain/team"
)

// groupSize is the only group size the bracket topology supports.
const groupSize = 4

// bestThirdCount is how many third-placed teams advance to the knockouts.
const bestThirdCount = 8

// Engine runs round-robin play for each group.
type Engine struct {
	matches *match.Engine
}

// NewEngine creates a group-stage engine on top of a match engine.
func NewEngine(matches *match.Engine) *Engine {
	return &Engine{matches: matches}
}

// Simulate plays every unordered pair in every group once and returns the
// ranked tables plus the per-group match lists. Groups are processed in
// letter order so a fixed seed reproduces the exact same matches.
//
// Locked results override random simulation for their pairing; constraints
// reorder the final tables. Both may be nil.
func (e *Engine) Simulate(
	rng *rand.Rand,
	teams map[string]*team.Team,
	groups map[string][]string,
	locks LockedResults,
	constraints *Constraints,
) (map[string][]*Standing, map[string][]*match.Result, error) {
	if err := validateGroups(teams, groups); err != nil {
		return nil, nil, err
	}

	letters := make([]string, 0, len(groups))
	for letter := range groups {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	tables := make(map[string][]*Standing, len(groups))
	allMatches := make(map[string][]*match.Result, len(groups))

	for _, letter := range letters {
		codes := groups[letter]

		standings := make(map[string]*Standing, len(codes))
		for _, code := range codes {
			standings[code] = &Standing{Team: code}
		}

		groupMatches := make([]*match.Result, 0, len(codes)*(len(codes)-1)/2)
		for i := 0; i < len(codes); i++ {
			for j := i + 1; j < len(codes); j++ {
				result := e.playPair(rng, teams[codes[i]], teams[codes[j]], locks)
				groupMatches = append(groupMatches, result)
				standings[codes[i]].record(result.ScoreA, result.ScoreB, result)
				standings[codes[j]].record(result.ScoreB, result.ScoreA, result)
			}
		}

		table := make([]*Standing, 0, len(codes))
		for _, code := range codes {
			table = append(table, standings[code])
		}
		SortStandings(table, teams)
		constraints.apply(letter, table)

		tables[letter] = table
		allMatches[letter] = groupMatches
	}

	return tables, allMatches, nil
}

// playPair uses the locked score for the pairing when one exists and the
// random match engine otherwise. Locks apply to group-stage matches only.
func (e *Engine) playPair(rng *rand.Rand, a, b *team.Team, locks LockedResults) *match.Result {
	if score, ok := locks.Lookup(a.Code, b.Code); ok {
		result := &match.Result{
			TeamA:  a.Code,
			TeamB:  b.Code,
			ScoreA: score.A,
			ScoreB: score.B,
		}
		switch {
		case score.A > score.B:
			result.Winner = a.Code
		case score.B > score.A:
			result.Winner = b.Code
		}
		return result
	}
	return e.matches.Simulate(rng, a, b, true, false)
}

// ThirdPlace pairs a third-place standing with the group it came from.
type ThirdPlace struct {
	Group    string
	Standing *Standing
}

// BestThirdPlaced collects the rank-3 standing of every group, ranks them
// with the same tiebreak order used inside groups, and returns the top 8.
func BestThirdPlaced(tables map[string][]*Standing, teams map[string]*team.Team) []ThirdPlace {
	letters := make([]string, 0, len(tables))
	for letter := range tables {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	thirds := make([]ThirdPlace, 0, len(letters))
	for _, letter := range letters {
		if table := tables[letter]; len(table) >= 3 {
			thirds = append(thirds, ThirdPlace{Group: letter, Standing: table[2]})
		}
	}

	sort.SliceStable(thirds, func(i, j int) bool {
		return lessStanding(thirds[i].Standing, thirds[j].Standing, teams)
	})

	if len(thirds) > bestThirdCount {
		thirds = thirds[:bestThirdCount]
	}
	return thirds
}

func validateGroups(teams map[string]*team.Team, groups map[string][]string) error {
	for letter, codes := range groups {
		if len(codes) != groupSize {
			return fmt.Errorf("group %s has %d teams: %w", letter, len(codes), ErrBadGroupSize)
		}
		for _, code := range codes {
			if _, ok := teams[code]; !ok {
				return fmt.Errorf("group %s team %s: %w", letter, code, ErrUnknownTeam)
			}
		}
	}
	return nil
}
