// SPDX-License-Identifier: MIT

// Package builder compiles a grid.Grid into the two-plane jump graph.
//
// For every cell (row, col) with jump length j, Build expands both of the
// cell's vertices:
//
//	mode        j ≥ 0                          j < 0 (d = |j|)
//	Orthogonal  4 cardinal jumps, stay O       4 diagonal jumps, switch to D
//	Diagonal    4 diagonal jumps, stay D       4 cardinal jumps, switch to O
//
// Directions are tried in the fixed orders of grid.Cardinal and
// grid.Diagonal and an edge is added only when the landing cell is on the
// board. Finally the two vertices of the goal cell are linked both ways, so
// arriving in either mode counts.
//
// The sign of a cell is a property of the cell, not of the arriving mode:
// a negative cell always switches planes.
//
// Determinism:
//
//	Cells are visited row-major, the orthogonal vertex before the diagonal
//	one, directions in fixed order. Rebuilding from the same grid yields the
//	same edges in the same adjacency order.
//
// Complexity:
//
//   - Build: O(R×C) time and memory; at most 4 edges per vertex plus 2.
//   - Stats: O(V + E).
//
// Errors:
//
//   - ErrNilGrid: Build called with a nil grid.
//   - ErrConstructFailed: an edge insert was rejected (not reachable for a
//     grid built by grid.New).
package builder
