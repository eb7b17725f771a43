// Package app composes the group stage, third-place selection, bracket
// resolution and knockout rounds into full-tournament simulations.
package app

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/mondialsim/mondial/internal/domain/bracket"
	"github.com/mondialsim/mondial/internal/domain/groupstage"
	"github.com/mondialsim/mondial/internal/domain/knockout"
	"github.com/mondialsim/mondial/internal/domain/match"
	"github.com/mondialsim/mondial/internal/domain/team"
	"github.com/mondialsim/mondial/pkg/logger"
	"github.com/mondialsim/mondial/pkg/metrics"
)

// Scenario bundles the optional inputs from the scenario collaborator:
// rating adjustments, locked group-stage results, and round constraints.
// The zero value is the unmodified baseline tournament.
type Scenario struct {
	Adjustments   map[string]team.Adjustment
	LockedResults groupstage.LockedResults
	Constraints   *groupstage.Constraints
}

// TournamentResult is the full outcome tree of one simulated tournament.
// It has no lifecycle beyond the call that produced it.
type TournamentResult struct {
	// RunID correlates the artifacts of one simulation for downstream
	// narration and rendering. It identifies the run, not its outcomes.
	RunID string

	GroupTables  map[string][]*groupstage.Standing
	GroupMatches map[string][]*match.Result

	// ThirdPlaceRanking lists the 8 best third-placed teams in rank order.
	ThirdPlaceRanking []groupstage.ThirdPlace

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

// Service wires the engines together. It is stateless across calls and safe
// to share between Monte Carlo workers as long as each call gets its own
// random generator.
type Service struct {
	matches   *match.Engine
	groups    *groupstage.Engine
	knockouts *knockout.Engine
	template  *bracket.Template

	finalCommentary bool

	logger logger.Logger
}

// New creates a Service with configuration options. The bracket template
// must be supplied via WithTemplate; a nil template is a configuration
// error.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		matches: match.NewEngine(),
		logger:  logger.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.template == nil {
		return nil, fmt.Errorf("service: %w", bracket.ErrMalformedTemplate)
	}

	s.groups = groupstage.NewEngine(s.matches)
	s.knockouts = knockout.NewEngine(s.matches)

	return s, nil
}

// SimulateTournament runs one full tournament: group stage, third-place
// selection, bracket resolution, knockout rounds. The caller supplies an
// isolated team snapshot and an explicit random generator; two calls with
// the same seed and inputs produce identical match trees.
func (s *Service) SimulateTournament(
	ctx context.Context,
	rng *rand.Rand,
	teams map[string]*team.Team,
	groups map[string][]string,
	scenario *Scenario,
) (*TournamentResult, error) {
	if scenario == nil {
		scenario = &Scenario{}
	}

	if len(scenario.Adjustments) > 0 {
		teams = team.CloneAll(teams)
		team.ApplyAdjustments(teams, scenario.Adjustments)
	}

	tables, groupMatches, err := s.groups.Simulate(rng, teams, groups, scenario.LockedResults, scenario.Constraints)
	if err != nil {
		return nil, fmt.Errorf("group stage: %w", err)
	}

	thirds := groupstage.BestThirdPlaced(tables, teams)
	qualifying := make([]string, 0, len(thirds))
	for _, tp := range thirds {
		qualifying = append(qualifying, tp.Group)
	}

	assignment, err := bracket.AssignThirdPlaceSlots(s.template, qualifying)
	if err != nil {
		s.logger.Error(ctx, "third-place assignment failed",
			logger.Any("qualifying", qualifying), logger.Error(err))
		return nil, fmt.Errorf("bracket resolution: %w", err)
	}

	rounds, err := s.knockouts.Simulate(rng, teams, s.template, tables, assignment, s.finalCommentary)
	if err != nil {
		return nil, fmt.Errorf("knockout stage: %w", err)
	}

	metrics.RecordTournamentSimulated()

	return &TournamentResult{
		RunID:             uuid.New().String(),
		GroupTables:       tables,
		GroupMatches:      groupMatches,
		ThirdPlaceRanking: thirds,
		RoundOf32:         rounds.RoundOf32,
		RoundOf16:         rounds.RoundOf16,
		Quarterfinals:     rounds.Quarterfinals,
		Semifinals:        rounds.Semifinals,
		ThirdPlace:        rounds.ThirdPlace,
		Final:             rounds.Final,
		Champion:          rounds.Champion,
		RunnerUp:          rounds.RunnerUp,
		ThirdPlaceTeam:    rounds.ThirdPlaceTeam,
	}, nil
}
