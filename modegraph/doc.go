// SPDX-License-Identifier: MIT

// Package modegraph defines the mode-tagged vertex scheme and the small
// adjacency structure the jump graph is stored in.
//
// A Vertex is a (cell index, Mode) pair. Every cell contributes exactly two
// vertices, one per mode, so a graph over N cells has 2·N vertices with dense
// ids id = index*2 + mode. Adjacency is a slice of outgoing id lists indexed
// by vertex id; Neighbors returns them in insertion order, which is how the
// builder's fixed direction order reaches the search.
//
// Edges are directed and unweighted. AddEdge is idempotent: re-adding an
// existing ordered pair reports added == false and no error.
//
// Complexity:
//
//   - New:       O(N) time and memory.
//   - AddEdge:   O(out-degree) (out-degree is at most 5 for jump graphs).
//   - Neighbors: O(out-degree).
//   - Edges:     O(V + E).
//
// Errors:
//
//   - ErrNoCells: New called with fewer than one cell.
//   - ErrVertexOutOfRange: a vertex index or mode outside the graph.
package modegraph
