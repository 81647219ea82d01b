package grid_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/jumpmaze/grid"
)

//----------------------------------------------------------------------------//
// New Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   [][]int
		err  error
	}{
		{"NilRows", nil, grid.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
		{"LongerLaterRow", [][]int{{1}, {2, 3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.in)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.in, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy ensures the grid does not observe later mutation of its input.
func TestNew_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2}, {3, -4}}
	g, err := grid.New(in)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	in[1][1] = 99
	if got := g.Value(1, 1); got != -4 {
		t.Errorf("Value(1,1) = %d after input mutation; want -4", got)
	}

	out := g.Values()
	out[0][0] = 42
	if got := g.Value(0, 0); got != 1 {
		t.Errorf("Value(0,0) = %d after Values() mutation; want 1", got)
	}
	if want := [][]int{{1, 2}, {3, -4}}; !reflect.DeepEqual(g.Values(), want) {
		t.Errorf("Values() = %v; want %v", g.Values(), want)
	}
}

//----------------------------------------------------------------------------//
// Index math Tests
//----------------------------------------------------------------------------//

// TestIndexCoordinate checks the row-major round trip on a 3×4 board.
func TestIndexCoordinate(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 4 || g.Size() != 12 {
		t.Fatalf("dims = %dx%d (%d); want 3x4 (12)", g.Rows(), g.Cols(), g.Size())
	}
	if g.Start() != 0 || g.Goal() != 11 {
		t.Errorf("Start/Goal = %d/%d; want 0/11", g.Start(), g.Goal())
	}
	for idx := 0; idx < g.Size(); idx++ {
		r, c := g.Coordinate(idx)
		if back := g.Index(r, c); back != idx {
			t.Errorf("Index(Coordinate(%d)) = %d", idx, back)
		}
		// Values were chosen equal to their index.
		if v := g.ValueAt(idx); v != idx {
			t.Errorf("ValueAt(%d) = %d; want %d", idx, v, idx)
		}
	}
}

// TestInBounds checks InBounds on a 2×3 board.
func TestInBounds(t *testing.T) {
	g, _ := grid.New([][]int{{0, 1, 0}, {1, 0, 1}})

	valid := [][2]int{{0, 0}, {1, 2}, {1, 1}}
	for _, rc := range valid {
		if !g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, rc := range invalid {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

// TestJump covers every direction from the centre of a 5×5 board.
func TestJump(t *testing.T) {
	vals := make([][]int, 5)
	for i := range vals {
		vals[i] = make([]int, 5)
	}
	g, _ := grid.New(vals)

	wantCardinal := []int{
		g.Index(0, 2), // up
		g.Index(4, 2), // down
		g.Index(2, 0), // left
		g.Index(2, 4), // right
	}
	for i, dir := range grid.Cardinal {
		got, ok := g.Jump(2, 2, dir, 2)
		if !ok || got != wantCardinal[i] {
			t.Errorf("cardinal[%d]: Jump = (%d,%v); want (%d,true)", i, got, ok, wantCardinal[i])
		}
	}
	wantDiagonal := []int{
		g.Index(0, 0), // top-left
		g.Index(0, 4), // top-right
		g.Index(4, 0), // bottom-left
		g.Index(4, 4), // bottom-right
	}
	for i, dir := range grid.Diagonal {
		got, ok := g.Jump(2, 2, dir, 2)
		if !ok || got != wantDiagonal[i] {
			t.Errorf("diagonal[%d]: Jump = (%d,%v); want (%d,true)", i, got, ok, wantDiagonal[i])
		}
	}
	for i, dir := range grid.Diagonal {
		if _, ok := g.Jump(2, 2, dir, 3); ok {
			t.Errorf("diagonal[%d] by 3 from centre should leave the board", i)
		}
	}
	if got, ok := g.Jump(1, 1, grid.Cardinal[0], 0); !ok || got != g.Index(1, 1) {
		t.Errorf("zero-length jump = (%d,%v); want (%d,true)", got, ok, g.Index(1, 1))
	}
}
