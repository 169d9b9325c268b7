// SPDX-License-Identifier: MIT

package benchmark

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/solver"
)

// Benchmark drives solvers repeatedly on one puzzle and aggregates
// timing statistics. The zero value is unusable; construct with New.
type Benchmark struct {
	cfg Config
	log *logrus.Logger
}

// New returns a Benchmark for the given config.
// Returns ErrBadConfig when the config lies outside its ranges.
func New(cfg Config) (*Benchmark, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log := logrus.New()
	if !cfg.Verbose {
		log.SetLevel(logrus.WarnLevel)
	}
	return &Benchmark{cfg: cfg, log: log}, nil
}

// SetLogger replaces the benchmark's logger (used by the CLI to share
// its configured output). Nil is ignored.
func (bm *Benchmark) SetLogger(log *logrus.Logger) {
	if log != nil {
		bm.log = log
	}
}

// Config returns the benchmark's configuration.
func (bm *Benchmark) Config() Config { return bm.cfg }

// Run performs WarmupRuns untimed solves followed by Runs timed solves
// of s on puzzle, using the solver-reported per-solve time.
func (bm *Benchmark) Run(puzzle *board.Board, s solver.Solver) Result {
	result := Result{Algorithm: s.Name()}

	for i := 0; i < bm.cfg.WarmupRuns; i++ {
		s.Reset()
		s.Solve(puzzle)
	}

	times := make([]float64, 0, bm.cfg.Runs)
	allSolved := true
	for i := 0; i < bm.cfg.Runs; i++ {
		s.Reset()
		solveResult := s.Solve(puzzle)

		times = append(times, solveResult.TimeMS)
		result.TotalIterations += solveResult.Iterations
		result.TotalBacktracks += solveResult.Backtracks
		if !solveResult.Solved {
			allSolved = false
		}
		result.Last = solveResult

		if bm.cfg.Verbose {
			bm.log.WithFields(logrus.Fields{
				"run":        i + 1,
				"time_ms":    solveResult.TimeMS,
				"iterations": solveResult.Iterations,
				"backtracks": solveResult.Backtracks,
				"solved":     solveResult.Solved,
			}).Info("benchmark run")
		}
	}

	result.Runs = bm.cfg.Runs
	result.AllSolved = allSolved
	result.MinTimeMS = minOf(times)
	result.MaxTimeMS = maxOf(times)
	result.AvgTimeMS = mean(times)
	result.StdDevTimeMS = stdDev(times, result.AvgTimeMS)

	return result
}

// Compare benchmarks each algorithm in order on the same puzzle,
// constructing a fresh solver per algorithm. Pass nil for the fixed
// default order {Dancing Links, Backtracking}.
func (bm *Benchmark) Compare(puzzle *board.Board, algorithms []solver.Algorithm) []Result {
	if algorithms == nil {
		algorithms = DefaultAlgorithms()
	}
	results := make([]Result, 0, len(algorithms))
	for _, algo := range algorithms {
		results = append(results, bm.Run(puzzle, solver.New(algo)))
	}
	return results
}

// RunBatch benchmarks one solver over several puzzles in order.
func (bm *Benchmark) RunBatch(puzzles []*board.Board, s solver.Solver) []Result {
	results := make([]Result, 0, len(puzzles))
	for i, puzzle := range puzzles {
		if bm.cfg.Verbose {
			bm.log.WithField("puzzle", i+1).Info("benchmark batch")
		}
		results = append(results, bm.Run(puzzle, s))
	}
	return results
}

// mean returns the arithmetic mean, 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev returns the Bessel-corrected sample standard deviation
// (divisor n−1), 0 when fewer than two samples.
func stdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += (v - mean) * (v - mean)
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func minOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	out := values[0]
	for _, v := range values[1:] {
		if v < out {
			out = v
		}
	}
	return out
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	out := values[0]
	for _, v := range values[1:] {
		if v > out {
			out = v
		}
	}
	return out
}
