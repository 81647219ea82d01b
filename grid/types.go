// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Offset is a unit step on the board: DRow moves down when positive,
// DCol moves right when positive.
type Offset struct {
	DRow, DCol int
}

// Cardinal lists the orthogonal directions in search order: up, down, left, right.
var Cardinal = [4]Offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Diagonal lists the diagonal directions in search order:
// top-left, top-right, bottom-left, bottom-right.
var Diagonal = [4]Offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// Grid is an immutable R×C board of signed jump lengths stored row-major.
type Grid struct {
	rows, cols int
	cells      []int
}
