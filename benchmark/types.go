// SPDX-License-Identifier: MIT

// Package benchmark: configuration, result types, and sentinel errors.
package benchmark

import (
	"errors"

	"github.com/katalvlaran/sudoku/solver"
)

// ErrBadConfig indicates a Config outside its documented ranges.
var ErrBadConfig = errors.New("benchmark: invalid config")

// Baseline anchoring for speedup, independent of Config.Runs so that
// speedup comparisons across configurations stay stable.
const (
	baselineWarmupRuns = 10
	baselineRuns       = 100
)

// Config holds the benchmark knobs. Valid ranges: Runs ≥ 1,
// WarmupRuns ≥ 0, NumWorkers ≥ 1.
type Config struct {
	// Runs is the number of timed solves (per worker, when
	// multi-threaded).
	Runs int
	// WarmupRuns is the number of untimed solves before measurement
	// (single-threaded runs only).
	WarmupRuns int
	// NumWorkers is the number of parallel workers for
	// RunMultithreaded.
	NumWorkers int
	// Verbose logs one line per timed solve in Run (and one per puzzle
	// in RunBatch); RunMultithreaded workers do not log.
	Verbose bool
}

// DefaultConfig returns 10 timed runs, 3 warm-ups, a single worker.
func DefaultConfig() Config {
	return Config{Runs: 10, WarmupRuns: 3, NumWorkers: 1}
}

// validate reports whether the config lies inside its ranges.
func (c Config) validate() error {
	if c.Runs < 1 || c.WarmupRuns < 0 || c.NumWorkers < 1 {
		return ErrBadConfig
	}
	return nil
}

// Result aggregates the timed runs of one solver on one puzzle.
type Result struct {
	Algorithm string

	MinTimeMS    float64
	MaxTimeMS    float64
	AvgTimeMS    float64
	StdDevTimeMS float64

	TotalIterations int
	TotalBacktracks int
	Runs            int
	// AllSolved is the conjunction of per-run Solved.
	AllSolved bool

	// Last keeps the final run's SolveResult for solution access.
	Last solver.SolveResult
}

// MultithreadResult aggregates a parallel benchmark across workers.
type MultithreadResult struct {
	Algorithm     string
	NumWorkers    int
	RunsPerWorker int
	TotalRuns     int
	AllSolved     bool

	// WallTimeMS brackets worker launch through join; TotalCPUTimeMS
	// sums per-worker solve time, so wall ≤ cpu up to scheduling noise
	// when NumWorkers > 1.
	WallTimeMS     float64
	TotalCPUTimeMS float64
	// Throughput is solves per second: TotalRuns / WallTimeMS · 1000.
	Throughput float64

	WorkerResults []Result

	AvgTimePerSolveMS float64
	// Speedup = baseline single-solve time · TotalRuns / WallTimeMS.
	// Reported raw; it can exceed NumWorkers when the baseline's
	// warm-up differs from the workers' effective cache state.
	Speedup float64
	// Efficiency = Speedup / NumWorkers; 1.0 is ideal scaling.
	Efficiency float64
}

// DefaultAlgorithms is the fixed comparison order.
func DefaultAlgorithms() []solver.Algorithm {
	return []solver.Algorithm{solver.DancingLinks, solver.Backtracking}
}
