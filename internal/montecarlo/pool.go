package montecarlo

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/mondialsim/mondial/internal/app"
	"github.com/mondialsim/mondial/internal/domain/team"
	"github.com/mondialsim/mondial/pkg/logger"
	"github.com/mondialsim/mondial/pkg/metrics"
)

// defaultWorkerCount is a CPU-bound batch, so one worker per core is the
// right default rather than the oversubscription used for I/O pools.
const defaultWorkerCount = 0 // resolved to runtime.NumCPU() in NewPool

// Simulator runs one full tournament. *app.Service implements it.
type Simulator interface {
	SimulateTournament(
		ctx context.Context,
		rng *rand.Rand,
		teams map[string]*team.Team,
		groups map[string][]string,
		scenario *app.Scenario,
	) (*app.TournamentResult, error)
}

// Pool dispatches tournament runs across worker goroutines and merges the
// per-worker tallies into one aggregate. Run i is seeded with baseSeed+i, so
// results are reproducible regardless of which worker picks which run.
type Pool struct {
	sim         Simulator
	workerCount int
	baseSeed    int64
	logger      logger.Logger
}

// NewPool creates a Monte Carlo pool with configuration options.
func NewPool(sim Simulator, opts ...Option) *Pool {
	p := &Pool{
		sim:         sim,
		workerCount: defaultWorkerCount,
		baseSeed:    1,
		logger:      logger.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.workerCount < 1 {
		p.workerCount = numCPU()
	}

	return p
}

// Run repeats the tournament n times and reduces the outcomes. The shared
// team snapshot is read-only; scenario rating adjustments are applied once
// up front. Cancellation is checked between runs: a cancelled context
// returns ctx.Err() and discards partial tallies.
func (p *Pool) Run(
	ctx context.Context,
	teams map[string]*team.Team,
	groups map[string][]string,
	scenario *app.Scenario,
	n int,
) (*Aggregate, error) {
	if n <= 0 {
		return nil, fmt.Errorf("run count must be positive, got %d", n)
	}
	if scenario == nil {
		scenario = &app.Scenario{}
	}

	// Apply adjustments once so workers share an immutable snapshot.
	if len(scenario.Adjustments) > 0 {
		teams = team.CloneAll(teams)
		team.ApplyAdjustments(teams, scenario.Adjustments)
		adjusted := *scenario
		adjusted.Adjustments = nil
		scenario = &adjusted
	}

	codes := make([]string, 0, len(teams))
	for code := range teams {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	workers := p.workerCount
	if workers > n {
		workers = n
	}
	metrics.UpdateMonteCarloWorkers(workers)
	defer metrics.UpdateMonteCarloWorkers(0)

	p.logger.Debug(ctx, "starting monte carlo batch",
		logger.Int("runs", n), logger.Int("workers", workers))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	partials := make([]*Aggregate, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		partial := newAggregate()
		partials[w] = partial
		go func() {
			defer wg.Done()
			if err := p.work(runCtx, jobs, teams, groups, scenario, codes, partial); err != nil {
				errs <- err
				cancel()
			}
		}()
	}

	// Feed run indices until done or cancelled.
feed:
	for i := 0; i < n; i++ {
		select {
		case jobs <- i:
		case <-runCtx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	select {
	case err := <-errs:
		return nil, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := newAggregate()
	for _, partial := range partials {
		total.merge(partial)
	}
	return total, nil
}

// work consumes run indices until the jobs channel closes. Each run gets an
// independent generator seeded from its index.
func (p *Pool) work(
	ctx context.Context,
	jobs <-chan int,
	teams map[string]*team.Team,
	groups map[string][]string,
	scenario *app.Scenario,
	codes []string,
	partial *Aggregate,
) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case runIdx, ok := <-jobs:
			if !ok {
				return nil
			}

			rng := rand.New(rand.NewSource(p.baseSeed + int64(runIdx))) //nolint:gosec // reproducible simulation seeding
			start := time.Now()

			result, err := p.sim.SimulateTournament(ctx, rng, teams, groups, scenario)
			if err != nil {
				return fmt.Errorf("run %d: %w", runIdx, err)
			}

			partial.observe(result, codes)
			metrics.RecordMonteCarloRun()
			metrics.RecordMonteCarloRunDuration(float64(time.Since(start).Milliseconds()))
		}
	}
}
