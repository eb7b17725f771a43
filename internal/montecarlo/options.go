package montecarlo

import (
	"runtime"

	"github.com/mondialsim/mondial/pkg/logger"
)

func numCPU() int { return runtime.NumCPU() }

// Option applies a configuration option to the Pool.
type Option func(*Pool)

// WithWorkerCount sets the number of worker goroutines. Values below 1 fall
// back to the number of CPUs.
func WithWorkerCount(count int) Option {
	return func(p *Pool) {
		p.workerCount = count
	}
}

// WithBaseSeed sets the seed run i derives its generator from (baseSeed+i).
func WithBaseSeed(seed int64) Option {
	return func(p *Pool) {
		p.baseSeed = seed
	}
}

// WithLogger sets a custom logger for the pool.
func WithLogger(l logger.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}
