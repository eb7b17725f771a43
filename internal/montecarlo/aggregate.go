package montecarlo

import (
	"math"

	"github.com/mondialsim/mondial/internal/app"
)

// FinalPair is an unordered pair of finalists, stored with A < B.
type FinalPair struct {
	A string
	B string
}

func newFinalPair(a, b string) FinalPair {
	if b < a {
		a, b = b, a
	}
	return FinalPair{A: a, B: b}
}

func (p FinalPair) String() string { return p.A + " vs " + p.B }

// Aggregate holds reduced Monte Carlo outcomes: per-team stage hit counts,
// champion counts, and the frequency of each unordered finalist pair. It
// lives only for the duration of one Run call.
type Aggregate struct {
	Runs           int
	stageCounts    map[string]*[NumStages]int
	championCounts map[string]int
	finalPairs     map[FinalPair]int
}

func newAggregate() *Aggregate {
	return &Aggregate{
		stageCounts:    make(map[string]*[NumStages]int),
		championCounts: make(map[string]int),
		finalPairs:     make(map[FinalPair]int),
	}
}

// observe folds one tournament run into the tallies.
func (a *Aggregate) observe(result *app.TournamentResult, codes []string) {
	a.Runs++

	for code, stage := range furthestStages(result, codes) {
		tally := a.stageCounts[code]
		if tally == nil {
			tally = &[NumStages]int{}
			a.stageCounts[code] = tally
		}
		tally[stage]++
	}

	if result.Champion != "" {
		a.championCounts[result.Champion]++
	}
	if result.Final != nil {
		a.finalPairs[newFinalPair(result.Final.TeamA, result.Final.TeamB)]++
	}
}

// merge folds another aggregate into this one. The operation is associative
// and commutative, so per-worker partials can be reduced in any order.
func (a *Aggregate) merge(other *Aggregate) {
	a.Runs += other.Runs

	for code, tally := range other.stageCounts {
		dst := a.stageCounts[code]
		if dst == nil {
			dst = &[NumStages]int{}
			a.stageCounts[code] = dst
		}
		for i, n := range tally {
			dst[i] += n
		}
	}

	for code, n := range other.championCounts {
		a.championCounts[code] += n
	}
	for pair, n := range other.finalPairs {
		a.finalPairs[pair] += n
	}
}

// StageCount returns the raw hit count of one team's stage bucket.
func (a *Aggregate) StageCount(code string, stage Stage) int {
	if tally := a.stageCounts[code]; tally != nil {
		return tally[stage]
	}
	return 0
}

// StagePercentage returns a team's stage-bucket probability in percent,
// rounded to one decimal.
func (a *Aggregate) StagePercentage(code string, stage Stage) float64 {
	return a.percentage(a.StageCount(code, stage))
}

// StageTable returns the full per-team per-stage percentage table.
func (a *Aggregate) StageTable() map[string]map[Stage]float64 {
	table := make(map[string]map[Stage]float64, len(a.stageCounts))
	for code := range a.stageCounts {
		row := make(map[Stage]float64, NumStages)
		for _, stage := range Stages() {
			row[stage] = a.StagePercentage(code, stage)
		}
		table[code] = row
	}
	return table
}

// WinPercentage returns a team's championship probability in percent.
func (a *Aggregate) WinPercentage(code string) float64 {
	return a.percentage(a.championCounts[code])
}

// MostLikelyFinal returns the modal finalist pairing and its percentage.
// ok is false when no final was recorded. Ties break toward the
// lexicographically smaller pairing so the answer is deterministic.
func (a *Aggregate) MostLikelyFinal() (pair FinalPair, pct float64, ok bool) {
	best := -1
	for p, n := range a.finalPairs {
		if n > best || (n == best && (p.A < pair.A || (p.A == pair.A && p.B < pair.B))) {
			best = n
			pair = p
		}
	}
	if best < 0 {
		return FinalPair{}, 0, false
	}
	return pair, a.percentage(best), true
}

// FinalPairCount returns how many runs produced the given finalist pairing.
func (a *Aggregate) FinalPairCount(x, y string) int {
	return a.finalPairs[newFinalPair(x, y)]
}

func (a *Aggregate) percentage(count int) float64 {
	if a.Runs == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(a.Runs)*1000) / 10
}
