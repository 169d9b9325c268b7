// SPDX-License-Identifier: MIT

// Package solver provides two complete Sudoku solvers behind one
// interface, for boards of any side N with br×bc boxes (N ≤ 32).
//
// What:
//
//   - BacktrackingSolver — depth-first search with constraint
//     propagation (naked singles, hidden singles) and MRV cell
//     selection, restoring full state snapshots on backtrack.
//   - DLXSolver — Knuth's Algorithm X over a toroidal four-way-linked
//     sparse matrix (Dancing Links), formulating Sudoku as exact cover
//     with 4·N² constraint columns.
//   - Algorithm tags with a factory (New); Hybrid and Auto are
//     documented aliases of DLX.
//   - Solve, FindAllSolutions (capped enumeration), HasUniqueSolution.
//
// Why:
//
//   - The two engines cross-check each other: on uniquely solvable
//     puzzles they must agree cell for cell, which the tests enforce.
//   - DLX degrades gracefully on hard, sparse instances; the
//     backtracker's propagation wins on human-style easy ones.
//
// Contracts:
//
//   - Solvers take the input Board read-only and mutate a private
//     working copy; every solve is timed under a monotonic clock and
//     returns counters (iterations, backtracks) on all exit paths.
//   - Non-solutions are reported inside SolveResult (Solved=false plus
//     ErrorMessage), never as errors — callers always receive timing.
//   - Solvers are single-threaded and not shareable; give each
//     goroutine its own instance. Reset wipes all per-solve state.
//
// Complexity:
//
//   - Propagation: O(N³) per fixed-point pass.
//   - Search: exponential in the worst case; MRV and the DLX
//     S-heuristic keep practical instances near-linear in N².
//   - cover/uncover: O(cells in removed rows), pure pointer surgery.
//
// Errors:
//
//   - ErrUnknownAlgorithm: unrecognized algorithm name in ParseAlgorithm.
package solver
