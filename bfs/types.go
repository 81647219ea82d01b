// SPDX-License-Identifier: MIT

// Package bfs provides tunable options and error definitions
// for breadth-first search over a modegraph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/jumpmaze/modegraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGoalVertexNotFound is returned when the goal vertex is not in the graph.
	ErrGoalVertexNotFound = errors.New("bfs: goal vertex not found")

	// ErrNotReachable is returned when the goal cannot be reached from the start.
	ErrNotReachable = errors.New("bfs: goal not reachable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is discovered, with its depth.
	OnEnqueue func(v modegraph.Vertex, depth int)

	// OnVisit is called when a vertex is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v modegraph.Vertex, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(modegraph.Vertex, int) {},
		OnVisit:   func(modegraph.Vertex, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(v modegraph.Vertex, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v modegraph.Vertex, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits how many jumps the search may take.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// unreached marks a vertex id with no recorded depth or parent.
const unreached = -1

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - depth / parent: tables indexed by vertex id; unreached is -1.
type Result struct {
	Order  []modegraph.Vertex
	depth  []int
	parent []int
}

// Depth returns the distance (in edges) from the start to v,
// and false if v was not reached.
func (r *Result) Depth(v modegraph.Vertex) (int, bool) {
	id := v.ID()
	if id < 0 || id >= len(r.depth) || r.depth[id] == unreached {
		return 0, false
	}
	return r.depth[id], true
}

// Reached reports whether v was discovered.
func (r *Result) Reached(v modegraph.Vertex) bool {
	_, ok := r.Depth(v)
	return ok
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns ErrNotReachable if dest was not discovered.
func (r *Result) PathTo(dest modegraph.Vertex) ([]modegraph.Vertex, error) {
	d, ok := r.Depth(dest)
	if !ok {
		return nil, fmt.Errorf("%w: no path to %s", ErrNotReachable, dest)
	}
	// fill in reverse; depth is the exact edge count
	path := make([]modegraph.Vertex, d+1)
	for cur, i := dest.ID(), d; i >= 0; i-- {
		path[i] = modegraph.FromID(cur)
		cur = r.parent[cur]
	}

	return path, nil
}
