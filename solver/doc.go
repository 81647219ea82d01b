// SPDX-License-Identifier: MIT

// Package solver runs the whole pipeline for one board: build the jump
// graph, search it, decode the path.
//
//	grid.Grid ─▶ builder.Build ─▶ bfs.ShortestPath ─▶ decode.Path ─▶ Solution
//
// An unreachable goal is an expected outcome, reported as ErrUnreachable
// (which also matches bfs.ErrNotReachable under errors.Is) and never as a
// decoded path. A board whose start cell is its goal cell is solved by the
// zero-jump path.
//
// The solver logs through the logger carried in the context (see ctxlog)
// and, when given Metrics, records outcome counts, path lengths, graph size
// and solve duration in Prometheus collectors.
package solver
