// SPDX-License-Identifier: MIT

// Package bfs is the path finder: breadth-first search over a
// modegraph.Graph, returning unweighted shortest paths as typed vertices.
//
// What
//
//   - BFS explores every vertex reachable from a start vertex in
//     non-decreasing distance order and returns a Result with the visit
//     Order, per-vertex depth, and PathTo reconstruction.
//   - ShortestPath stops at the first discovery of a goal vertex and returns
//     the path directly, or ErrNotReachable.
//   - Each vertex keeps the first predecessor that discovered it.
//   - Hooks: OnEnqueue (on discovery), OnVisit (on dequeue; may abort).
//   - MaxDepth bounds the number of jumps (d>0) or disables the bound (d==0).
//
// Determinism
//
//	Neighbors are expanded in graph insertion order. For graphs from
//	builder.Build that is the fixed direction order (up, down, left, right;
//	top-left, top-right, bottom-left, bottom-right), so ties between
//	shortest paths are broken the same way on every run.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) (queue plus id-indexed depth and parent tables)
//
// Usage
//
//	path, err := bfs.ShortestPath(g, g.Start(), g.Goal())
//	if errors.Is(err, bfs.ErrNotReachable) {
//		// report "no path"
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if start is not in the graph.
//   - ErrGoalVertexNotFound   if goal is not in the graph.
//   - ErrNotReachable         if goal was never discovered.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Context errors and wrapped OnVisit errors.
package bfs
