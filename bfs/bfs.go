// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/jumpmaze/modegraph"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *modegraph.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result

	// target is the vertex id that ends the search once discovered; -1 for none.
	target int
	found  bool
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options, and explores everything reachable.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx errors on cancellation,
// or any wrapped OnVisit error.
func BFS(g *modegraph.Graph, start modegraph.Vertex, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	w.enqueue(start.ID(), 0, unreached)
	return w.res, w.loop()
}

// ShortestPath returns a fewest-edges path from start to goal, both ends
// included. Neighbors are expanded in graph insertion order, so among several
// shortest paths the first discovered is returned. The search stops as soon
// as goal is discovered. start == goal yields the single-vertex path.
// Returns ErrNotReachable if the queue drains first, plus the BFS errors.
func ShortestPath(g *modegraph.Graph, start, goal modegraph.Vertex, opts ...Option) ([]modegraph.Vertex, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(goal) {
		return nil, fmt.Errorf("%w: %s", ErrGoalVertexNotFound, goal)
	}
	w.target = goal.ID()

	w.enqueue(start.ID(), 0, unreached)
	if err := w.loop(); err != nil {
		return nil, err
	}
	if !w.found {
		return nil, fmt.Errorf("%w: %s from %s", ErrNotReachable, goal, start)
	}
	return w.res.PathTo(goal)
}

// newWalker validates input, resolves options and allocates the
// id-indexed tables.
func newWalker(g *modegraph.Graph, start modegraph.Vertex, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]modegraph.Vertex, 0, n),
		depth:  make([]int, n),
		parent: make([]int, n),
	}
	for i := range res.depth {
		res.depth[i] = unreached
		res.parent[i] = unreached
	}

	return &walker{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		queue:  make([]queueItem, 0, n),
		res:    res,
		target: unreached,
	}, nil
}

// enqueue records depth and parent of id, calls OnEnqueue and queues it.
// Discovering the target ends the search.
func (w *walker) enqueue(id, depth, parent int) {
	w.res.depth[id] = depth
	w.res.parent[id] = parent
	w.opts.OnEnqueue(modegraph.FromID(id), depth)
	if id == w.target {
		w.found = true
		return
	}
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// loop processes the queue until empty, error, cancellation or target found.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.found {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	v := modegraph.FromID(item.id)
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", v, err)
	}
	return nil
}

// enqueueNeighbors discovers each unseen neighbor of item in adjacency order,
// honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.NeighborIDs(item.id) {
		if w.res.depth[nbr] != unreached {
			continue
		}
		w.enqueue(nbr, next, item.id)
		if w.found {
			return
		}
	}
}
