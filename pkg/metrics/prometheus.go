// Package metrics provides Prometheus metrics for the tournament simulator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the simulator.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Simulation throughput
	matchesSimulated     prometheus.Counter
	penaltyShootouts     prometheus.Counter
	tournamentsSimulated prometheus.Counter

	// Monte Carlo
	monteCarloRuns        prometheus.Counter
	monteCarloRunDuration prometheus.Histogram
	monteCarloWorkers     prometheus.Gauge

	// Failure tracking
	bracketResolutionFailures prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "mondial",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.matchesSimulated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_simulated_total",
		Help:      "Total number of matches simulated across all stages",
	})

	m.penaltyShootouts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "penalty_shootouts_total",
		Help:      "Total number of matches decided by penalty shootouts",
	})

	m.tournamentsSimulated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tournaments_simulated_total",
		Help:      "Total number of full tournaments simulated",
	})

	m.monteCarloRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "montecarlo_runs_total",
		Help:      "Total number of Monte Carlo runs completed",
	})

	m.monteCarloRunDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "montecarlo_run_duration_milliseconds",
		Help:      "Histogram of single tournament run duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.monteCarloWorkers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "montecarlo_workers",
		Help:      "Number of active Monte Carlo workers",
	})

	m.bracketResolutionFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "bracket_resolution_failures_total",
		Help:      "Total number of unsolvable third-place bracket assignments",
	})
}

// Package-level helpers that record against the global manager.

// RecordMatchSimulated increments the simulated match counter.
func RecordMatchSimulated() {
	globalManager.matchesSimulated.Inc()
}

// RecordPenaltyShootout increments the shootout counter.
func RecordPenaltyShootout() {
	globalManager.penaltyShootouts.Inc()
}

// RecordTournamentSimulated increments the full-tournament counter.
func RecordTournamentSimulated() {
	globalManager.tournamentsSimulated.Inc()
}

// RecordMonteCarloRun increments the Monte Carlo run counter.
func RecordMonteCarloRun() {
	globalManager.monteCarloRuns.Inc()
}

// RecordMonteCarloRunDuration observes one run's duration in milliseconds.
func RecordMonteCarloRunDuration(durationMs float64) {
	globalManager.monteCarloRunDuration.Observe(durationMs)
}

// UpdateMonteCarloWorkers sets the active worker gauge.
func UpdateMonteCarloWorkers(count int) {
	globalManager.monteCarloWorkers.Set(float64(count))
}

// RecordBracketResolutionFailure increments the unsolvable-assignment counter.
func RecordBracketResolutionFailure() {
	globalManager.bracketResolutionFailures.Inc()
}

// GetRegistry returns the custom Prometheus registry for HTTP exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
