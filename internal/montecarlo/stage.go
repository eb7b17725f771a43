// Package montecarlo repeats full-tournament simulations across a worker
// pool and reduces the outcomes into per-team stage-reach probabilities.
package montecarlo

import (
	"github.com/mondialsim/mondial/internal/app"
	"github.com/mondialsim/mondial/internal/domain/match"
)

// Stage is the furthest round a team reached in one simulated tournament.
// The buckets are mutually exclusive and exhaustive: every team lands in
// exactly one per run.
type Stage int

// Stage buckets, weakest to strongest.
const (
	StageGroupExit Stage = iota
	StageRoundOf32
	StageRoundOf16
	StageQuarterfinals
	StageSemifinals
	StageFinal
	StageWinner

	// NumStages is the number of stage buckets.
	NumStages = int(StageWinner) + 1
)

var stageNames = [NumStages]string{
	"Group Exit", "R32", "R16", "QF", "SF", "Final", "Winner",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= NumStages {
		return "Unknown"
	}
	return stageNames[s]
}

// Stages returns all stage buckets, weakest first.
func Stages() []Stage {
	out := make([]Stage, NumStages)
	for i := range out {
		out[i] = Stage(i)
	}
	return out
}

// furthestStages classifies every team of one run into its single furthest
// stage by testing participation from the top down.
func furthestStages(result *app.TournamentResult, codes []string) map[string]Stage {
	r32 := participants(result.RoundOf32)
	r16 := participants(result.RoundOf16)
	qf := participants(result.Quarterfinals)
	sf := participants(result.Semifinals)
	finalists := participants([]*match.Result{result.Final})

	stages := make(map[string]Stage, len(codes))
	for _, code := range codes {
		switch {
		case result.Champion == code:
			stages[code] = StageWinner
		case finalists[code]:
			stages[code] = StageFinal
		case sf[code]:
			stages[code] = StageSemifinals
		case qf[code]:
			stages[code] = StageQuarterfinals
		case r16[code]:
			stages[code] = StageRoundOf16
		case r32[code]:
			stages[code] = StageRoundOf32
		default:
			stages[code] = StageGroupExit
		}
	}
	return stages
}

func participants(matches []*match.Result) map[string]bool {
	set := make(map[string]bool, len(matches)*2)
	for _, m := range matches {
		if m == nil {
			continue
		}
		set[m.TeamA] = true
		set[m.TeamB] = true
	}
	return set
}
