// SPDX-License-Identifier: MIT

// Package solver: algorithm tags, options, results, and the Solver
// interface shared by both engines.
package solver

import (
	"errors"
	"strings"

	"github.com/katalvlaran/sudoku/board"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for names outside
// the recognized set.
var ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

// Algorithm selects a solving engine.
type Algorithm int

const (
	// Backtracking is DFS with constraint propagation and MRV.
	Backtracking Algorithm = iota
	// DancingLinks is Algorithm X over a Dancing Links matrix.
	DancingLinks
	// Hybrid is declared for an easy/hard split that is not implemented;
	// it resolves to DancingLinks.
	Hybrid
	// Auto picks the default engine; it resolves to DancingLinks.
	Auto
)

// String returns the human-readable algorithm name used in reports.
func (a Algorithm) String() string {
	switch a {
	case Backtracking:
		return "Backtracking"
	case DancingLinks:
		return "Dancing Links (DLX)"
	case Hybrid:
		return "Hybrid"
	case Auto:
		return "Auto"
	default:
		return "Unknown"
	}
}

// ParseAlgorithm maps a CLI-style name to an Algorithm.
// Accepted (case-insensitive): backtrack, backtracking, dlx,
// dancing-links, dancinglinks, hybrid, auto.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "backtrack", "backtracking":
		return Backtracking, nil
	case "dlx", "dancing-links", "dancinglinks":
		return DancingLinks, nil
	case "hybrid":
		return Hybrid, nil
	case "auto":
		return Auto, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// SolveResult reports the outcome of one solve: the filled grid (when
// solved), search counters, and wall time. Non-solutions set
// Solved=false and ErrorMessage; they are not errors.
type SolveResult struct {
	Solved       bool
	Solution     [][]int
	Iterations   int
	Backtracks   int
	TimeMS       float64
	Algorithm    string
	ErrorMessage string

	// Filled by uniqueness checks (see CheckUnique), not by Solve.
	HasUniqueSolution bool
	SolutionCount     int
}

// Options configures the backtracking engine. The zero value disables
// both switches; use DefaultOptions for the standard configuration.
type Options struct {
	// UseConstraintProp runs naked/hidden-singles propagation to a
	// fixed point before and during the search.
	UseConstraintProp bool
	// UseMRV selects the next cell by minimum remaining values;
	// when false, the first empty cell in row-major order is used.
	UseMRV bool
}

// DefaultOptions returns the standard configuration: propagation and
// MRV both enabled.
func DefaultOptions() Options {
	return Options{UseConstraintProp: true, UseMRV: true}
}

// Solver is the capability set both engines expose. Implementations
// are single-threaded; each goroutine must own its own instance.
type Solver interface {
	// Solve fills every empty cell or reports failure, with counters
	// and timing on all exit paths.
	Solve(b *board.Board) SolveResult
	// FindAllSolutions enumerates up to maxSolutions distinct
	// solutions; enumeration stops cleanly once the cap is reached.
	FindAllSolutions(b *board.Board, maxSolutions int) []*board.Board
	// HasUniqueSolution reports whether exactly one solution exists.
	HasUniqueSolution(b *board.Board) bool
	// Name returns the report name of the engine.
	Name() string
	// Reset wipes all per-solve state.
	Reset()
}

// New constructs a solver for the given algorithm. Hybrid and Auto are
// aliases of DancingLinks (the easy/hard classifier they were declared
// for was never implemented).
func New(algo Algorithm) Solver {
	if algo == Backtracking {
		return NewBacktracking(DefaultOptions())
	}
	return NewDLX()
}

// CheckUnique runs the capped two-solution enumeration on s and folds
// the outcome into a copy of res (HasUniqueSolution, SolutionCount).
func CheckUnique(s Solver, b *board.Board, res SolveResult) SolveResult {
	solutions := s.FindAllSolutions(b, 2)
	res.SolutionCount = len(solutions)
	res.HasUniqueSolution = len(solutions) == 1
	return res
}
