// SPDX-License-Identifier: MIT

// Package loader reads puzzle files into a grid.Grid.
//
// Text files (any extension but .hcl) hold whitespace-separated integers:
// the row count R and column count C, then R·C jump lengths in row-major
// order. This is the classic input.txt layout:
//
//	2 2
//	1  1
//	1 -1
//
// HCL files (.hcl) hold a grid attribute with a list of rows, plus optional
// name, rows and cols attributes. rows and cols, when present, must match
// the grid:
//
//	name = "corner"
//	grid = [
//	  [1, 1],
//	  [1, -1],
//	]
//
// All validation of the board happens here; downstream packages assume a
// well-formed rectangular matrix.
//
// Errors:
//
//   - ErrMalformed: a token is not an integer.
//   - ErrDimensions: R or C below 1, or declared sizes disagree with the grid.
//   - ErrTruncated: fewer than R·C values follow the header.
//   - ErrTrailingData: tokens remain after the last value.
//   - ErrHCL: HCL syntax or decode diagnostics, or a grid of the wrong type.
//   - grid.ErrEmptyGrid, grid.ErrNonRectangular: bad HCL grid shape.
package loader
