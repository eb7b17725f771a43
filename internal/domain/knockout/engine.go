// Package knockout drives the fixed-topology elimination rounds from the
// Round of 32 through the final. Draws are disallowed in every match.
package knockout

import (
	"fmt"
	"math/rand"

	"github.com/mondialsim/mondial/internal/domain/bracket"
	"github.com/mondialsim/mondial/internal/domain/groupstage"
	"github.com/mondialsim/mondial/internal/domain/match"
	"github.com/mondialsim/mondial/internal/domain/team"
)

// Engine simulates the knockout stage.
type Engine struct {
	matches *match.Engine
}

// NewEngine creates a knockout engine on top of a match engine.
func NewEngine(matches *match.Engine) *Engine {
	return &Engine{matches: matches}
}

// Rounds holds every knockout match plus the podium.
type Rounds struct {
	RoundOf32     []*match.Result
	RoundOf16     []*match.Result
	Quarterfinals []*match.Result
	Semifinals    []*match.Result
	ThirdPlace    *match.Result
	Final         *match.Result

	Champion       string
	RunnerUp       string
	ThirdPlaceTeam string
}

// Simulate resolves the Round-of-32 slots against the group tables and the
// third-place assignment, then chains the rounds through the template's feed
// topology. finalCommentary requests commentary lines for the final only.
//
// Slot resolution failures and missing feeder winners are returned as
// errors; no match is ever silently skipped.
func (e *Engine) Simulate(
	rng *rand.Rand,
	teams map[string]*team.Team,
	tmpl *bracket.Template,
	tables map[string][]*groupstage.Standing,
	assignment map[int]string,
	finalCommentary bool,
) (*Rounds, error) {
	rounds := &Rounds{}

	// Round of 32.
	r32Winners := make([]string, 0, len(tmpl.RoundOf32))
	for _, pairing := range tmpl.RoundOf32 {
		codeA, err := bracket.ResolveSlot(pairing.SlotA, pairing.ID, tables, assignment)
		if err != nil {
			return nil, fmt.Errorf("resolve match %d: %w", pairing.ID, err)
		}
		codeB, err := bracket.ResolveSlot(pairing.SlotB, pairing.ID, tables, assignment)
		if err != nil {
			return nil, fmt.Errorf("resolve match %d: %w", pairing.ID, err)
		}

		result := e.matches.Simulate(rng, teams[codeA], teams[codeB], false, false)
		rounds.RoundOf32 = append(rounds.RoundOf32, result)
		r32Winners = append(r32Winners, result.Winner)
	}

	// Round of 16.
	r16Winners, err := e.playRound(rng, teams, tmpl.RoundOf16Feeds, r32Winners, &rounds.RoundOf16)
	if err != nil {
		return nil, fmt.Errorf("round of 16: %w", err)
	}

	// Quarterfinals.
	qfWinners, err := e.playRound(rng, teams, tmpl.QuarterfinalFeeds, r16Winners, &rounds.Quarterfinals)
	if err != nil {
		return nil, fmt.Errorf("quarterfinals: %w", err)
	}

	// Semifinals.
	sfWinners, err := e.playRound(rng, teams, tmpl.SemifinalFeeds, qfWinners, &rounds.Semifinals)
	if err != nil {
		return nil, fmt.Errorf("semifinals: %w", err)
	}

	sfLosers := make([]string, 0, len(rounds.Semifinals))
	for _, m := range rounds.Semifinals {
		sfLosers = append(sfLosers, m.Loser())
	}

	// Third-place match between the semifinal losers.
	rounds.ThirdPlace = e.matches.Simulate(rng, teams[sfLosers[0]], teams[sfLosers[1]], false, false)
	rounds.ThirdPlaceTeam = rounds.ThirdPlace.Winner

	// Final.
	rounds.Final = e.matches.Simulate(rng, teams[sfWinners[0]], teams[sfWinners[1]], false, finalCommentary)
	rounds.Champion = rounds.Final.Winner
	rounds.RunnerUp = rounds.Final.Loser()

	return rounds, nil
}

// playRound pairs previous-round winners by feed indices and plays them.
func (e *Engine) playRound(
	rng *rand.Rand,
	teams map[string]*team.Team,
	feeds [][2]int,
	prevWinners []string,
	out *[]*match.Result,
) ([]string, error) {
	winners := make([]string, 0, len(feeds))
	for i, feed := range feeds {
		codeA, err := feederWinner(prevWinners, feed[0])
		if err != nil {
			return nil, fmt.Errorf("match %d slot a: %w", i+1, err)
		}
		codeB, err := feederWinner(prevWinners, feed[1])
		if err != nil {
			return nil, fmt.Errorf("match %d slot b: %w", i+1, err)
		}

		result := e.matches.Simulate(rng, teams[codeA], teams[codeB], false, false)
		*out = append(*out, result)
		winners = append(winners, result.Winner)
	}
	return winners, nil
}

func feederWinner(winners []string, idx int) (string, error) {
	if idx >= len(winners) || winners[idx] == "" {
		return "", fmt.Errorf("feeder %d: %w", idx, ErrFeederIncomplete)
	}
	return winners[idx], nil
}
