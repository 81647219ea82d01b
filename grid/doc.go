// SPDX-License-Identifier: MIT

// Package grid holds the immutable jump-length board that every other
// jumpmaze package reads from.
//
// What:
//
//   - Grid wraps a rectangular R×C matrix of signed jump lengths.
//   - Cells are addressed either by (row, col) or by a row-major index
//     in [0, R·C): index = row*C + col.
//   - Cardinal and Diagonal list the four jump directions of each kind in
//     the fixed order used everywhere else (graph construction, search).
//
// Why:
//
//   - The graph builder and the decoder both need the same index math;
//     keeping it here means they cannot disagree.
//   - The board is deep-copied on construction, so callers may reuse or
//     mutate their input slices freely.
//
// Complexity:
//
//   - New: O(R×C) time and memory.
//   - All accessors: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
