// SPDX-License-Identifier: MIT

package modegraph

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCells is returned when a graph is requested for zero cells.
	ErrNoCells = errors.New("modegraph: graph needs at least one cell")

	// ErrVertexOutOfRange is returned when a vertex does not belong to the graph.
	ErrVertexOutOfRange = errors.New("modegraph: vertex out of range")
)

// Mode selects how a token at a vertex jumps next.
type Mode uint8

const (
	// Orthogonal vertices jump up, down, left or right.
	Orthogonal Mode = iota
	// Diagonal vertices jump along the four diagonals.
	Diagonal
)

// modes is the number of Mode values; also the stride of vertex ids.
const modes = 2

// String returns "O" or "D".
func (m Mode) String() string {
	switch m {
	case Orthogonal:
		return "O"
	case Diagonal:
		return "D"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Orthogonal {
		return Diagonal
	}
	return Orthogonal
}

// Vertex is one cell seen in one mode.
type Vertex struct {
	Index int
	Mode  Mode
}

// ID returns the dense vertex id, Index*2 + Mode.
func (v Vertex) ID() int {
	return v.Index*modes + int(v.Mode)
}

// FromID is the inverse of Vertex.ID.
func FromID(id int) Vertex {
	return Vertex{Index: id / modes, Mode: Mode(id % modes)}
}

// String formats v as index followed by mode, e.g. "12D". For logs only.
func (v Vertex) String() string {
	return fmt.Sprintf("%d%s", v.Index, v.Mode)
}

// Edge is one directed jump.
type Edge struct {
	From, To Vertex
}

// Graph is a directed, unweighted two-plane graph over a fixed number of cells.
// adjacency[id] lists outgoing vertex ids in insertion order.
type Graph struct {
	cells     int
	edges     int
	adjacency [][]int
}
