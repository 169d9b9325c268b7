// Package board models a generalized Sudoku grid of side N, where N
// factors into box dimensions br×bc (br·bc = N).
//
// What:
//
//   - Dimension describes the grid geometry (N, br, bc) with standard
//     presets for N ∈ {4, 6, 9, 12, 16, 25} and FromSize auto-detection.
//   - Board owns an N×N grid of cell values in [0, N]; 0 denotes empty.
//   - Read-only queries: validity, candidate sets, box geometry, fill
//     statistics, and a coarse difficulty heuristic.
//   - Rendering: boxed ASCII form (String) and compact digit rows.
//
// Why:
//
//   - Solvers consume Boards and mutate private working copies; the
//     Board itself never enforces puzzle consistency on Set — validity
//     is a separate query, so partially inconsistent boards remain
//     representable (e.g., to reject them before solving).
//
// Candidates:
//
//	Candidate sets are exposed both as value slices and as a uint32
//	bitset (value v maps to bit v−1); N ≤ 32 by construction.
//
// Complexity:
//
//   - Get/Set/BoxIndex/BoxStart: O(1).
//   - IsValidPlacement: O(N).
//   - IsValid / CountEmpty: O(N²).
//   - Difficulty: O(N⁴) (an O(N²) candidate scan per empty cell).
//
// Errors:
//
//   - ErrInvalidDimension: (N, br, bc) with br·bc ≠ N or non-positive parts.
//   - ErrOutOfRange: cell coordinate outside [0, N).
//   - ErrInvalidValue: cell value outside {0} ∪ [1, N].
//   - ErrShapeMismatch: supplied grid disagrees with the Dimension.
package board
