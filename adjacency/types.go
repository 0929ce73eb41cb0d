// SPDX-License-Identifier: MIT

package adjacency

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyVertexID indicates that an empty vertex ID was supplied.
	ErrEmptyVertexID = errors.New("adjacency: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("adjacency: vertex not found")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("adjacency: self-loop not allowed")

	// ErrMultiEdge indicates a second edge between the same two vertices.
	ErrMultiEdge = errors.New("adjacency: vertices already joined")

	// ErrBadWeight indicates a negative or non-finite edge weight.
	ErrBadWeight = errors.New("adjacency: weight must be finite and non-negative")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("adjacency: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("adjacency: invalid option supplied")
)

// Vertex is a room in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]any
}

// Edge joins two rooms sharing wall. Edges are undirected; From is always
// the vertex the edge was added from.
type Edge struct {
	ID     string
	From   string
	To     string
	Weight float64
}

// Option configures BFS via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*BFSOptions)

// BFSOptions holds the parameters of a walk through the rooms.
type BFSOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit is called for every room reached. A non-nil error stops the
	// walk and is returned wrapped.
	OnVisit func(room string, depth int) error

	// MaxDepth, if > 0, is the largest number of walls crossed from the start.
	MaxDepth int

	// MinShared is the shortest shared wall the walk may cross. Rooms joined
	// only by shorter stretches are treated as not connected.
	MinShared float64

	// Filter can refuse the crossing from one room into another; shared is
	// the length of wall the two rooms have in common.
	Filter func(from, to string, shared float64) bool

	err error
}

// DefaultOptions returns options with no depth limit, no wall length limit,
// no filter and a background context.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
		Filter:  func(string, string, float64) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run once per reached room.
func WithOnVisit(fn func(room string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d wall crossings; 0 means no limit and a
// negative value is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMinShared only lets the walk cross walls at least l long, e.g. the
// width of a door. A negative or non-finite l is an ErrOptionViolation.
func WithMinShared(l float64) Option {
	return func(o *BFSOptions) {
		if math.IsNaN(l) || math.IsInf(l, 0) || l < 0 {
			o.err = fmt.Errorf("%w: MinShared must be finite and non-negative (%v)", ErrOptionViolation, l)
			return
		}
		o.MinShared = l
	}
}

// WithFilter refuses a crossing when fn returns false.
func WithFilter(fn func(from, to string, shared float64) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// BFSResult holds the outcome of a walk.
type BFSResult struct {
	// Order lists the rooms in the order they were reached.
	Order []string

	// Depth is the number of walls crossed to reach each room.
	Depth map[string]int

	// Parent is the room each room was entered from. The start has none.
	Parent map[string]string

	// Shared is the length of the wall crossed to enter each room.
	Shared map[string]float64
}

// PathTo reconstructs the rooms passed through from the start to dest.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("adjacency: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Narrowest returns the shortest wall crossed on the way to dest, which
// bounds what can be carried along that route. The start room yields +Inf.
func (r *BFSResult) Narrowest(dest string) (float64, error) {
	if _, ok := r.Depth[dest]; !ok {
		return 0, fmt.Errorf("adjacency: no path to %q", dest)
	}
	narrow := math.Inf(1)
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		narrow = math.Min(narrow, r.Shared[cur])
		cur = prev
	}

	return narrow, nil
}
