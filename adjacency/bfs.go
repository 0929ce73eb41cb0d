// SPDX-License-Identifier: MIT

package adjacency

import (
	"context"
	"fmt"
)

// step is a room waiting in the frontier with its distance in walls.
type step struct {
	room  string
	depth int
}

// walk holds the mutable state of one BFS run.
type walk struct {
	graph    *Graph
	opts     BFSOptions
	ctx      context.Context
	frontier []step
	reached  map[string]bool
	res      *BFSResult
}

// BFS walks g from start, crossing one shared wall per level.
// Returns ErrGraphNil, ErrVertexNotFound, ErrOptionViolation, the context
// error on cancellation, or the OnVisit error. On error the partial result
// is still returned.
//
// Complexity: O(V + E) edge visits plus the neighbour sorting of NeighborIDs.
func BFS(g *Graph, start string, opts ...Option) (*BFSResult, error) {
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
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walk{
		graph:    g,
		opts:     o,
		ctx:      o.Ctx,
		frontier: make([]step, 0, n),
		reached:  make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			Shared: make(map[string]float64, n),
		},
	}
	w.enter(start, 0, "", 0)

	return w.res, w.run()
}

// enter marks room reached from parent through a wall of length shared.
func (w *walk) enter(room string, depth int, parent string, shared float64) {
	w.reached[room] = true
	w.res.Depth[room] = depth
	if parent != "" {
		w.res.Parent[room] = parent
		w.res.Shared[room] = shared
	}
	w.frontier = append(w.frontier, step{room: room, depth: depth})
}

func (w *walk) run() error {
	for len(w.frontier) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.frontier[0]
		w.frontier = w.frontier[1:]

		w.res.Order = append(w.res.Order, cur.room)
		if err := w.opts.OnVisit(cur.room, cur.depth); err != nil {
			return fmt.Errorf("adjacency: OnVisit error at %q: %w", cur.room, err)
		}

		next := cur.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		ids, err := w.graph.NeighborIDs(cur.room)
		if err != nil {
			return err
		}
		// Sorted IDs keep the walk reproducible.
		for _, id := range ids {
			if w.reached[id] {
				continue
			}
			shared, ok := w.graph.Weight(cur.room, id)
			if !ok || shared < w.opts.MinShared || !w.opts.Filter(cur.room, id, shared) {
				continue
			}
			w.enter(id, next, cur.room, shared)
		}
	}

	return nil
}
