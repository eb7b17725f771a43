// Package config defines runner configuration and its loading hooks.
package config

import (
	"runtime"
)

// Config contains process configuration for the simulation runner.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Runs is the number of Monte Carlo tournament simulations.
	Runs int `koanf:"runs"`

	// WorkerCount sets the number of Monte Carlo workers.
	WorkerCount int `koanf:"worker_count"`

	// Seed is the base seed; run i uses seed+i.
	Seed int64 `koanf:"seed"`

	// FinalCommentary toggles commentary generation for finals.
	FinalCommentary bool `koanf:"final_commentary"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Runs:            1000,
		WorkerCount:     runtime.NumCPU(),
		Seed:            1,
		FinalCommentary: false,
	}
}
