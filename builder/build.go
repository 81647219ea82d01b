// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/jumpmaze/grid"
	"github.com/katalvlaran/jumpmaze/modegraph"
)

// Build returns the jump graph of g. It is pure: g is only read, and two
// calls on the same grid produce identical graphs.
func Build(g *grid.Grid) (*modegraph.Graph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	mg, err := modegraph.New(g.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConstructFailed, err)
	}

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			for _, mode := range [...]modegraph.Mode{modegraph.Orthogonal, modegraph.Diagonal} {
				if err := expand(mg, g, row, col, mode); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := linkGoal(mg); err != nil {
		return nil, err
	}
	return mg, nil
}

// expand adds the outgoing edges of the (row, col) vertex in the given mode.
func expand(mg *modegraph.Graph, g *grid.Grid, row, col int, mode modegraph.Mode) error {
	dist := g.Value(row, col)
	next := mode
	if dist < 0 {
		dist = -dist
		next = mode.Toggle()
	}
	from := modegraph.Vertex{Index: g.Index(row, col), Mode: mode}

	for _, dir := range directions(next) {
		dst, ok := g.Jump(row, col, dir, dist)
		if !ok {
			continue
		}
		if _, err := mg.AddEdge(from, modegraph.Vertex{Index: dst, Mode: next}); err != nil {
			return fmt.Errorf("%w: %v", ErrConstructFailed, err)
		}
	}
	return nil
}

// directions returns the jump directions used when landing in mode m:
// cardinal for the orthogonal plane, diagonal for the diagonal plane.
func directions(m modegraph.Mode) [4]grid.Offset {
	if m == modegraph.Diagonal {
		return grid.Diagonal
	}
	return grid.Cardinal
}

// linkGoal joins both vertices of the goal cell in each direction.
func linkGoal(mg *modegraph.Graph) error {
	o, d := mg.GoalLink(), mg.Goal()
	if _, err := mg.AddEdge(o, d); err != nil {
		return fmt.Errorf("%w: goal link: %v", ErrConstructFailed, err)
	}
	if _, err := mg.AddEdge(d, o); err != nil {
		return fmt.Errorf("%w: goal link: %v", ErrConstructFailed, err)
	}
	return nil
}
