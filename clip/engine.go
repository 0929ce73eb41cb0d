// SPDX-License-Identifier: MIT

package clip

import (
	"fmt"

	clipper "github.com/ctessum/go.clipper"
	"github.com/paulmach/orb"
)

// Engine performs Boolean operations on simple polygons.
type Engine interface {
	// Intersect returns the regions covered by both subject and clip.
	Intersect(subject, clip orb.Ring) ([]orb.Ring, error)

	// Difference returns subject minus the union of clips. holed reports
	// whether any resulting region encloses a hole; the hole contours are
	// not part of the returned regions.
	Difference(subject orb.Ring, clips []orb.Ring) (regions []orb.Ring, holed bool, err error)
}

// Context is a Clipper-backed Engine. The zero value is not usable; build
// one with NewContext. A Context holds no Clipper state of its own: every
// operation runs on a fresh clipper.Clipper, so one Context may serve any
// number of calls.
type Context struct {
	scale float64
}

var _ Engine = (*Context)(nil)

// NewContext returns a fresh Context converting coordinates with scale.
func NewContext(scale float64) (*Context, error) {
	if !validScale(scale) {
		return nil, ErrBadScale
	}

	return &Context{scale: scale}, nil
}

// Scale returns the fixed-point multiplier of the context.
func (x *Context) Scale() float64 { return x.scale }

// Intersect implements Engine.
//
// Complexity: O((n+m) log(n+m)) for rings of n and m vertices.
func (x *Context) Intersect(subject, clip orb.Ring) ([]orb.Ring, error) {
	s, err := toPath(subject, x.scale)
	if err != nil {
		return nil, fmt.Errorf("intersect subject: %w", err)
	}
	c, err := toPath(clip, x.scale)
	if err != nil {
		return nil, fmt.Errorf("intersect clip: %w", err)
	}

	// Clipper.Clear does not reset all internal state; one instance per call.
	cl := clipper.NewClipper(0)
	cl.AddPath(s, clipper.PtSubject, true)
	cl.AddPath(c, clipper.PtClip, true)
	solution, ok := cl.Execute1(clipper.CtIntersection, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return nil, fmt.Errorf("intersect: %w", ErrExecute)
	}

	return toRings(solution, x.scale), nil
}

// Difference implements Engine. Holes are detected on the PolyTree: any
// hole node below an outer contour marks the result as holed.
//
// Complexity: O(N log N) where N counts the vertices of subject and clips.
func (x *Context) Difference(subject orb.Ring, clips []orb.Ring) ([]orb.Ring, bool, error) {
	s, err := toPath(subject, x.scale)
	if err != nil {
		return nil, false, fmt.Errorf("difference subject: %w", err)
	}
	cs := make(clipper.Paths, 0, len(clips))
	for i, r := range clips {
		c, err := toPath(r, x.scale)
		if err != nil {
			return nil, false, fmt.Errorf("difference clip %d: %w", i, err)
		}
		cs = append(cs, c)
	}

	cl := clipper.NewClipper(0)
	cl.AddPath(s, clipper.PtSubject, true)
	cl.AddPaths(cs, clipper.PtClip, true)
	tree, ok := cl.Execute2(clipper.CtDifference, clipper.PftNonZero, clipper.PftNonZero)
	if !ok || tree == nil {
		return nil, false, fmt.Errorf("difference: %w", ErrExecute)
	}

	var (
		regions []orb.Ring
		holed   bool
	)
	// Outer contours become regions; holes only set the flag.
	var walk func(nodes []*clipper.PolyNode)
	walk = func(nodes []*clipper.PolyNode) {
		for _, n := range nodes {
			if n.IsHole() {
				holed = true
			} else if r := toRing(n.Contour(), x.scale); r != nil {
				regions = append(regions, r)
			}
			walk(n.Childs())
		}
	}
	walk(tree.Childs())

	return regions, holed, nil
}
