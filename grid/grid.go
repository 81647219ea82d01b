// SPDX-License-Identifier: MIT

package grid

// New builds a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation of values is not observed.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]int, 0, rows*cols)
	for _, row := range values {
		cells = append(cells, row...)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns C.
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells, R·C.
func (g *Grid) Size() int { return g.rows * g.cols }

// Start is the index of the top-left cell.
func (g *Grid) Start() int { return 0 }

// Goal is the index of the bottom-right cell.
func (g *Grid) Goal() int { return g.Size() - 1 }

// InBounds reports whether (row, col) lies on the board.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index maps (row, col) to its row-major index: row*C + col.
// The caller is expected to have checked InBounds.
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}

// Value returns the jump length stored at (row, col).
func (g *Grid) Value(row, col int) int {
	return g.cells[g.Index(row, col)]
}

// ValueAt returns the jump length stored at the given row-major index.
func (g *Grid) ValueAt(idx int) int {
	return g.cells[idx]
}

// Jump returns the index reached from (row, col) by moving dist steps in
// direction dir, and false if the landing cell is off the board.
func (g *Grid) Jump(row, col int, dir Offset, dist int) (int, bool) {
	r, c := row+dir.DRow*dist, col+dir.DCol*dist
	if !g.InBounds(r, c) {
		return 0, false
	}
	return g.Index(r, c), true
}

// Values returns a fresh copy of the board as a 2D slice.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}
