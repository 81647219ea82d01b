// SPDX-License-Identifier: MIT

package modegraph

import "fmt"

// New allocates a graph with 2·cells vertices and no edges.
// Returns ErrNoCells if cells < 1.
func New(cells int) (*Graph, error) {
	if cells < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoCells, cells)
	}
	return &Graph{
		cells:     cells,
		adjacency: make([][]int, cells*modes),
	}, nil
}

// Cells returns the number of board cells the graph was built for.
func (g *Graph) Cells() int { return g.cells }

// VertexCount returns 2·Cells.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Start is the orthogonal vertex of the first cell.
func (g *Graph) Start() Vertex { return Vertex{Index: 0, Mode: Orthogonal} }

// Goal is the diagonal vertex of the last cell; searches target it.
func (g *Graph) Goal() Vertex { return Vertex{Index: g.cells - 1, Mode: Diagonal} }

// GoalLink is the orthogonal vertex of the last cell, the other end of the
// goal-link edge pair.
func (g *Graph) GoalLink() Vertex { return Vertex{Index: g.cells - 1, Mode: Orthogonal} }

// HasVertex reports whether v belongs to the graph.
func (g *Graph) HasVertex(v Vertex) bool {
	return v.Index >= 0 && v.Index < g.cells && v.Mode < modes
}

// AddEdge inserts the directed edge from→to.
// Re-adding an existing edge is a no-op and returns added == false.
// Returns ErrVertexOutOfRange if either endpoint is not in the graph.
func (g *Graph) AddEdge(from, to Vertex) (added bool, err error) {
	if !g.HasVertex(from) {
		return false, fmt.Errorf("%w: from %s", ErrVertexOutOfRange, from)
	}
	if !g.HasVertex(to) {
		return false, fmt.Errorf("%w: to %s", ErrVertexOutOfRange, to)
	}
	src, dst := from.ID(), to.ID()
	for _, id := range g.adjacency[src] {
		if id == dst {
			return false, nil
		}
	}
	g.adjacency[src] = append(g.adjacency[src], dst)
	g.edges++

	return true, nil
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to Vertex) bool {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return false
	}
	dst := to.ID()
	for _, id := range g.adjacency[from.ID()] {
		if id == dst {
			return true
		}
	}
	return false
}

// Neighbors returns the out-neighbors of v in insertion order.
// The returned slice is a copy.
func (g *Graph) Neighbors(v Vertex) ([]Vertex, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("%w: %s", ErrVertexOutOfRange, v)
	}
	ids := g.adjacency[v.ID()]
	out := make([]Vertex, len(ids))
	for i, id := range ids {
		out[i] = FromID(id)
	}
	return out, nil
}

// NeighborIDs returns the raw adjacency row of vertex id without copying,
// or nil if id is out of range. Callers must not modify the result.
func (g *Graph) NeighborIDs(id int) []int {
	if id < 0 || id >= len(g.adjacency) {
		return nil
	}
	return g.adjacency[id]
}

// Edges returns every edge, ordered by source id and then insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for src, row := range g.adjacency {
		from := FromID(src)
		for _, dst := range row {
			out = append(out, Edge{From: from, To: FromID(dst)})
		}
	}
	return out
}
