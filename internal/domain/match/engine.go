package match

import (
	"math"
	"math/rand"
	"sort"

	"github.com/mondialsim/mondial/internal/domain/team"
	"github.com/mondialsim/mondial/pkg/metrics"
)

// Model constants. avg goals per team is the World Cup historical average;
// the 1.40 rating divisor re-centers the 0.5-2.5 scale on a league-average
// side.
const (
	defaultAvgGoals  = 1.35
	leagueAvgRating  = 1.40
	minLambda        = 0.3
	maxLambda        = 4.0
	formFactorBase   = 0.85
	formFactorSpan   = 0.30
	extraTimeFactor  = 0.33 // 30-minute period at a third of regulation intensity
	defaultAssistPct = 0.60

	regulationStart = 1
	regulationEnd   = 90
	extraTimeStart  = 91
	extraTimeEnd    = 120

	minPossession = 25.0
	maxPossession = 75.0

	shotsPerXGMin = 3.5
	shotsPerXGMax = 5.5
	onTargetMin   = 0.3
	onTargetMax   = 0.5

	penaltyBaseRate    = 0.70
	penaltyAttackBonus = 0.05
	penaltyAttackCap   = 2.0
	penaltyRounds      = 5

	defaultPositionWeight = 1.0
)

// Engine simulates matches. It is stateless apart from configuration: every
// call takes an explicit random generator, so engines are safe to share
// across Monte Carlo workers.
type Engine struct {
	avgGoals        float64
	assistProb      float64
	positionWeights map[team.Position]float64
}

// NewEngine creates a match engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		avgGoals:   defaultAvgGoals,
		assistProb: defaultAssistPct,
		positionWeights: map[team.Position]float64{
			team.Forward:    3.0,
			team.Midfielder: 1.5,
			team.Defender:   0.4,
			team.Goalkeeper: 0.05,
		},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ExpectedGoals computes the Poisson rates for both teams, folding in the
// +/-15% recent-form modifier and clamping to [0.3, 4.0].
func (e *Engine) ExpectedGoals(a, b *team.Team) (lambdaA, lambdaB float64) {
	lambdaA = e.avgGoals * (a.Attack / leagueAvgRating) * (leagueAvgRating / b.Defense) * formFactor(a.Form)
	lambdaB = e.avgGoals * (b.Attack / leagueAvgRating) * (leagueAvgRating / a.Defense) * formFactor(b.Form)
	return clampLambda(lambdaA), clampLambda(lambdaB)
}

func formFactor(form float64) float64 {
	return formFactorBase + formFactorSpan*form
}

func clampLambda(l float64) float64 {
	return math.Max(minLambda, math.Min(maxLambda, l))
}

// Simulate plays one match. With allowDraw the result may end level and
// carry an empty winner; without it a level regulation score goes to extra
// time and, if needed, penalties, so the winner is always set.
func (e *Engine) Simulate(rng *rand.Rand, a, b *team.Team, allowDraw, commentary bool) *Result {
	lambdaA, lambdaB := e.ExpectedGoals(a, b)

	goalsA := samplePoisson(rng, lambdaA)
	goalsB := samplePoisson(rng, lambdaB)

	goals := e.goalEvents(rng, a, goalsA, regulationStart, regulationEnd)
	goals = append(goals, e.goalEvents(rng, b, goalsB, regulationStart, regulationEnd)...)
	sort.SliceStable(goals, func(i, j int) bool { return goals[i].Minute < goals[j].Minute })

	possessionA := round1(100 * a.Midfield / (a.Midfield + b.Midfield))
	possessionA = math.Max(minPossession, math.Min(maxPossession, possessionA))

	shotsA := maxInt(goalsA, int(lambdaA*uniform(rng, shotsPerXGMin, shotsPerXGMax)))
	shotsB := maxInt(goalsB, int(lambdaB*uniform(rng, shotsPerXGMin, shotsPerXGMax)))
	sotA := maxInt(goalsA, int(float64(shotsA)*uniform(rng, onTargetMin, onTargetMax)))
	sotB := maxInt(goalsB, int(float64(shotsB)*uniform(rng, onTargetMin, onTargetMax)))

	result := &Result{
		TeamA:          a.Code,
		TeamB:          b.Code,
		ScoreA:         goalsA,
		ScoreB:         goalsB,
		Goals:          goals,
		XGA:            round2(lambdaA),
		XGB:            round2(lambdaB),
		PossessionA:    possessionA,
		ShotsA:         shotsA,
		ShotsB:         shotsB,
		ShotsOnTargetA: sotA,
		ShotsOnTargetB: sotB,
	}

	switch {
	case !allowDraw && goalsA == goalsB:
		e.resolveDeadlock(rng, a, b, lambdaA, lambdaB, result)
	case goalsA > goalsB:
		result.Winner = a.Code
	case goalsB > goalsA:
		result.Winner = b.Code
	}

	if commentary {
		result.Commentary = e.commentary(result, a, b)
	}

	metrics.RecordMatchSimulated()

	return result
}

// resolveDeadlock plays a 30-minute extra-time period at reduced goal rates
// and falls back to a penalty shootout if the teams are still level.
func (e *Engine) resolveDeadlock(rng *rand.Rand, a, b *team.Team, lambdaA, lambdaB float64, result *Result) {
	etGoalsA := samplePoisson(rng, lambdaA*extraTimeFactor)
	etGoalsB := samplePoisson(rng, lambdaB*extraTimeFactor)

	etGoals := e.goalEvents(rng, a, etGoalsA, extraTimeStart, extraTimeEnd)
	etGoals = append(etGoals, e.goalEvents(rng, b, etGoalsB, extraTimeStart, extraTimeEnd)...)

	result.ExtraTime = true
	result.ETScoreA = etGoalsA
	result.ETScoreB = etGoalsB
	result.Goals = append(result.Goals, etGoals...)
	sort.SliceStable(result.Goals, func(i, j int) bool {
		return result.Goals[i].Minute < result.Goals[j].Minute
	})

	switch {
	case result.TotalA() > result.TotalB():
		result.Winner = a.Code
	case result.TotalB() > result.TotalA():
		result.Winner = b.Code
	default:
		penA, penB := e.SimulatePenalties(rng, a, b)
		result.Penalties = true
		result.PenaltyScoreA = penA
		result.PenaltyScoreB = penB
		if penA > penB {
			result.Winner = a.Code
		} else {
			result.Winner = b.Code
		}
		metrics.RecordPenaltyShootout()
	}
}

// SimulatePenalties plays a best-of-5 shootout, stopping a round early once
// one side leads by more than the opponent can still score, then continues
// one kick pair at a time until the scores differ after a completed pair.
func (e *Engine) SimulatePenalties(rng *rand.Rand, a, b *team.Team) (scoreA, scoreB int) {
	rateA := penaltyBaseRate + penaltyAttackBonus*math.Min(a.Attack, penaltyAttackCap)
	rateB := penaltyBaseRate + penaltyAttackBonus*math.Min(b.Attack, penaltyAttackCap)

	for round := 0; round < penaltyRounds; round++ {
		if rng.Float64() < rateA {
			scoreA++
		}
		if rng.Float64() < rateB {
			scoreB++
		}
		remaining := penaltyRounds - 1 - round
		if scoreA > scoreB+remaining || scoreB > scoreA+remaining {
			break
		}
	}

	// Sudden death in completed pairs.
	for scoreA == scoreB {
		if rng.Float64() < rateA {
			scoreA++
		}
		if rng.Float64() < rateB {
			scoreB++
		}
	}

	return scoreA, scoreB
}

// goalEvents assigns minutes, scorers and assists to n goals for one team.
func (e *Engine) goalEvents(rng *rand.Rand, t *team.Team, n, minuteStart, minuteEnd int) []GoalEvent {
	if n == 0 {
		return nil
	}

	minutes := make([]int, n)
	for i := range minutes {
		minutes[i] = minuteStart + rng.Intn(minuteEnd-minuteStart+1)
	}
	sort.Ints(minutes)

	events := make([]GoalEvent, 0, n)
	for _, minute := range minutes {
		scorer := e.pickScorer(rng, t)
		events = append(events, GoalEvent{
			Minute: minute,
			Team:   t.Code,
			Scorer: scorer,
			Assist: e.pickAssist(rng, t, scorer),
		})
	}
	return events
}

// rosterPositions fixes the iteration order over the roster so that weighted
// scorer selection is reproducible for a given seed.
var rosterPositions = []team.Position{team.Forward, team.Midfielder, team.Defender, team.Goalkeeper}

func (e *Engine) pickScorer(rng *rand.Rand, t *team.Team) string {
	var names []string
	var weights []float64
	var total float64

	for _, pos := range rosterPositions {
		w, ok := e.positionWeights[pos]
		if !ok {
			w = defaultPositionWeight
		}
		for _, name := range t.Roster[pos] {
			names = append(names, name)
			weights = append(weights, w)
			total += w
		}
	}

	if len(names) == 0 {
		return "Unknown"
	}

	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return names[i]
		}
	}
	return names[len(names)-1]
}

func (e *Engine) pickAssist(rng *rand.Rand, t *team.Team, scorer string) string {
	if rng.Float64() > e.assistProb {
		return ""
	}

	var candidates []string
	for _, pos := range rosterPositions {
		for _, name := range t.Roster[pos] {
			if name != scorer {
				candidates = append(candidates, name)
			}
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[rng.Intn(len(candidates))]
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
