// Package puzzleio decodes Sudoku puzzles from JSON-like documents and
// plain strings, encodes boards and solutions back to JSON, and ships
// the built-in benchmark puzzles.
//
// Accepted input shapes (root object keys "grid", "board", "puzzle",
// or a bare array/string at the root):
//
//   - 2-D array of integers in {0..N}.
//   - Array of strings, one per row.
//   - A single row-major string of length N².
//   - A flat array of integers whose length is a perfect square.
//
// The character alphabet maps '1'..'9' to 1–9, 'A'..'Z' and 'a'..'z'
// to 10–35, and '.', '0', ' ', '_' to empty. Optional dimension fields
// "size"/"box_rows"/"box_cols" (or "box_size") override the
// square-most split inferred by board.FromSize.
//
// The OCR contract for image-based extraction lives here as well: the
// core consumes only the produced grid and is oblivious to image
// content.
//
// Errors:
//
//   - ErrParse: no recognizable puzzle shape in the document.
//   - ErrBadLength: a puzzle string whose length is not a perfect square.
//   - ErrUnknownSize: no built-in puzzle for the requested size.
package puzzleio
