// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/jumpmaze/bfs"
	"github.com/katalvlaran/jumpmaze/builder"
	"github.com/katalvlaran/jumpmaze/ctxlog"
	"github.com/katalvlaran/jumpmaze/decode"
	"github.com/katalvlaran/jumpmaze/grid"
	"github.com/katalvlaran/jumpmaze/modegraph"
)

var (
	// ErrNilGrid is returned when Solve is called without a board.
	ErrNilGrid = errors.New("solver: grid is nil")

	// ErrUnreachable reports that no sequence of jumps reaches the goal.
	ErrUnreachable = fmt.Errorf("solver: %w", bfs.ErrNotReachable)
)

// Solution is a solved board.
type Solution struct {
	// Coords are the 1-indexed cells from (1,1) to (R,C).
	Coords []decode.Coord
	// Path is the vertex path found by the search.
	Path []modegraph.Vertex
	// Jumps is the number of edges on Path.
	Jumps int
	// Graph describes the compiled jump graph.
	Graph builder.Summary
}

// Option configures a Solver.
type Option func(*Solver)

// WithMetrics reports every Solve to m.
func WithMetrics(m *Metrics) Option {
	return func(s *Solver) { s.metrics = m }
}

// WithMaxJumps bounds the search depth; 0 means unbounded.
// A negative value makes Solve fail with bfs.ErrOptionViolation.
func WithMaxJumps(n int) Option {
	return func(s *Solver) { s.maxJumps = n }
}

// Solver holds configuration only; it is safe to reuse across boards.
type Solver struct {
	metrics  *Metrics
	maxJumps int
}

// New returns a Solver with the given options applied.
func New(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve compiles g, finds a shortest path from the top-left to the
// bottom-right cell and decodes it.
func (s *Solver) Solve(ctx context.Context, g *grid.Grid) (*Solution, error) {
	began := time.Now()
	sol, err := s.solve(ctx, g)
	s.observe(sol, err, time.Since(began))
	return sol, err
}

func (s *Solver) solve(ctx context.Context, g *grid.Grid) (*Solution, error) {
	logger := ctxlog.FromContext(ctx)
	if g == nil {
		return nil, ErrNilGrid
	}

	mg, err := builder.Build(g)
	if err != nil {
		return nil, fmt.Errorf("solver: build: %w", err)
	}
	summary := builder.Stats(mg)
	logger.Debug("Jump graph built.",
		"rows", g.Rows(), "cols", g.Cols(),
		"vertices", summary.Vertices, "edges", summary.Edges,
		"cross_plane", summary.CrossPlane, "self_loops", summary.SelfLoops)
	if s.metrics != nil {
		s.metrics.GraphEdges.Set(float64(summary.Edges))
	}

	start, goal := mg.Start(), mg.Goal()
	if start.Index == goal.Index {
		// The token already stands on the goal cell.
		goal = start
	}
	path, err := bfs.ShortestPath(mg, start, goal, bfs.WithContext(ctx), bfs.WithMaxDepth(s.maxJumps))
	switch {
	case errors.Is(err, bfs.ErrNotReachable):
		logger.Info("Goal unreachable.", "rows", g.Rows(), "cols", g.Cols(), "max_jumps", s.maxJumps)
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, decode.At(g.Goal(), g.Cols()))
	case err != nil:
		return nil, fmt.Errorf("solver: search: %w", err)
	}

	coords, err := decode.Path(path, g.Cols())
	if err != nil {
		return nil, fmt.Errorf("solver: decode: %w", err)
	}
	logger.Info("Board solved.", "jumps", len(path)-1, "cells", len(coords))

	return &Solution{
		Coords: coords,
		Path:   path,
		Jumps:  len(path) - 1,
		Graph:  summary,
	}, nil
}

func (s *Solver) observe(sol *Solution, err error, took time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.Duration.Observe(took.Seconds())
	switch {
	case err == nil:
		s.metrics.Solves.WithLabelValues(OutcomeSolved).Inc()
		s.metrics.PathJumps.Observe(float64(sol.Jumps))
	case errors.Is(err, ErrUnreachable):
		s.metrics.Solves.WithLabelValues(OutcomeUnreachable).Inc()
	default:
		s.metrics.Solves.WithLabelValues(OutcomeError).Inc()
	}
}
