package match

import "github.com/mondialsim/mondial/internal/domain/team"

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithAverageGoals overrides the league-average goals per team constant.
func WithAverageGoals(avg float64) Option {
	return func(e *Engine) {
		if avg > 0 {
			e.avgGoals = avg
		}
	}
}

// WithPositionWeights sets scorer selection weights per roster position.
func WithPositionWeights(weights map[team.Position]float64) Option {
	return func(e *Engine) {
		if len(weights) == 0 {
			return
		}
		e.positionWeights = make(map[team.Position]float64, len(weights))
		for pos, w := range weights {
			if w > 0 {
				e.positionWeights[pos] = w
			}
		}
	}
}

// WithAssistProbability sets the chance that a goal carries an assist.
func WithAssistProbability(p float64) Option {
	return func(e *Engine) {
		if p >= 0 && p <= 1 {
			e.assistProb = p
		}
	}
}
