// SPDX-License-Identifier: MIT
// Package: roomplan/floorplan
//
// calculator.go: whole-plan neighbour computation.
//
// For every edge of every room, the facing edges of nearby rooms are
// projected onto the edge's line. Each admitted projection contributes two
// markers (its natural pair) to a per-edge arena. Markers are then walked in
// order along the edge; every pair becomes a candidate stretch, closer pairs
// carve away what they hide, and the survivors become Neighbour records.
//
// Complexity: O(R·E·(k·E + M²)) where R is the room count, E the edges per
// room, k the rooms returned by the broad-phase and M the markers per edge.

package floorplan

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/roomplan/geom"
)

// boundsSlack widens the broad-phase boxes so walls exactly at the maximum
// neighbour distance still find each other.
const boundsSlack = 1e-6

// marker is one end of a candidate stretch on the edge being processed.
// pair indexes the natural partner in the same arena.
type marker struct {
	t        float64
	point    orb.Point
	otherT   float64
	other    orb.Point
	distance float64
	room     *Room
	edge     int
	pair     int
}

// roomBox indexes a room by its outer bound, padded by half the maximum
// neighbour distance on every side.
type roomBox struct {
	room *Room
	rect rtreego.Rect
}

func (b *roomBox) Bounds() rtreego.Rect { return b.rect }

type calculator struct {
	cfg   *config
	rooms []*Room
	boxes map[int]*roomBox
	tree  *rtreego.Rtree
}

// computeNeighbours derives every Neighbour of the plan. Each pair of rooms
// is resolved from the side of the room with the lower id and mirrored into
// the other room's list, so both lists share the same points.
func computeNeighbours(cfg *config, rooms []*Room) (map[int][]Neighbour, error) {
	c, err := newCalculator(cfg, rooms)
	if err != nil {
		return nil, err
	}

	out := make(map[int][]Neighbour, len(rooms))
	for _, r := range rooms {
		out[r.id] = []Neighbour{}
	}
	for _, r := range rooms {
		others := c.nearby(r)
		if len(others) == 0 {
			continue
		}
		for i := 0; i < r.EdgeCount(); i++ {
			markers, err := c.project(r, i, others)
			if err != nil {
				return nil, err
			}
			found, err := c.extract(r, i, markers)
			if err != nil {
				return nil, err
			}
			for _, n := range found {
				out[r.id] = append(out[r.id], n)
				out[n.RoomB.id] = append(out[n.RoomB.id], n.Mirror())
			}
		}
	}

	return out, nil
}

func newCalculator(cfg *config, rooms []*Room) (*calculator, error) {
	c := &calculator{
		cfg:   cfg,
		rooms: rooms,
		boxes: make(map[int]*roomBox, len(rooms)),
		tree:  rtreego.NewTree(2, 25, 50),
	}
	pad := cfg.maxDistance/2 + boundsSlack
	for _, r := range rooms {
		b := r.Bound()
		rect, err := rtreego.NewRect(
			rtreego.Point{b.Min[0] - pad, b.Min[1] - pad},
			[]float64{b.Max[0] - b.Min[0] + 2*pad, b.Max[1] - b.Min[1] + 2*pad},
		)
		if err != nil {
			return nil, fmt.Errorf("%w: index room %d: %w", ErrInvariant, r.id, err)
		}
		box := &roomBox{room: r, rect: rect}
		c.boxes[r.id] = box
		c.tree.Insert(box)
	}

	return c, nil
}

// nearby returns the rooms, other than r, whose padded bounds touch r's,
// ordered by id.
//
// Complexity: O(log R + k log k) for k hits.
func (c *calculator) nearby(r *Room) []*Room {
	hits := c.tree.SearchIntersect(c.boxes[r.id].rect)
	out := make([]*Room, 0, len(hits))
	for _, h := range hits {
		if o := h.(*roomBox).room; o != r {
			out = append(out, o)
		}
	}
	slices.SortFunc(out, func(a, b *Room) int { return cmp.Compare(a.id, b.id) })

	return out
}

// project fills the marker arena for edge i of r from the edges of others.
func (c *calculator) project(r *Room, i int, others []*Room) ([]marker, error) {
	edge := r.Edge(i)
	line := edge.Line()
	normal := geom.Normalize(geom.Perpendicular(line.Direction))

	var markers []marker
	for _, o := range others {
		for j := 0; j < o.EdgeCount(); j++ {
			other := o.Edge(j)
			otherLine := other.Line()

			// 1) facing: outward normals must point roughly at each other.
			dot := geom.Dot(normal, geom.Normalize(geom.Perpendicular(otherLine.Direction)))
			if math.IsNaN(dot) {
				return nil, fmt.Errorf("%w: zero length edge between room %d and room %d", ErrInvariant, r.id, o.id)
			}
			if dot > c.cfg.facingDot {
				continue
			}

			// 2) side test: each edge must lie mostly outside the other room.
			outside := 0
			for _, ok := range [...]bool{
				line.IsLeft(other.Start, sideTestEpsilon),
				line.IsLeft(other.End, sideTestEpsilon),
				otherLine.IsLeft(edge.Start, sideTestEpsilon),
				otherLine.IsLeft(edge.End, sideTestEpsilon),
			} {
				if ok {
					outside++
				}
			}
			if outside < minimumSideTestsOutside {
				continue
			}

			// 3) overlap: project the other edge onto this line. Facing edges
			// run the opposite way, so its start projects past its end.
			ct := line.ClosestT(other.Start)
			dt := line.ClosestT(other.End)
			if ct < dt {
				return nil, fmt.Errorf("%w: room %d edge %d is wound the wrong way", ErrInvariant, o.id, j)
			}
			if ct < 0 || dt > 1 {
				continue
			}

			switch {
			case ct <= 1 && dt < 0:
				// other edge covers the start of this one
				at := otherLine.ClosestT(edge.Start)
				markers = c.addPair(markers, edge, o, j, ct, 0, 0, at)
			case ct <= 1:
				// other edge lies within this one
				markers = c.addPair(markers, edge, o, j, ct, 0, dt, 1)
			case dt > 0:
				// other edge covers the end of this one
				bt := otherLine.ClosestT(edge.End)
				markers = c.addPair(markers, edge, o, j, dt, 1, 1, bt)
			default:
				// this edge lies within the other one
				at := otherLine.ClosestT(edge.Start)
				bt := otherLine.ClosestT(edge.End)
				markers = c.addPair(markers, edge, o, j, 0, at, 1, bt)
			}
		}
	}

	// Degenerate geometry shows up as NaN parameters.
	for _, m := range markers {
		if !finite(m.t) || !finite(m.otherT) || !finite(m.distance) {
			return nil, fmt.Errorf("%w: NaN while projecting room %d edge %d", ErrInvariant, r.id, i)
		}
	}

	return markers, nil
}

// addPair appends two naturally paired markers, or nothing when either end
// is further than the maximum neighbour distance from its projection.
func (c *calculator) addPair(markers []marker, edge geom.Segment, o *Room, j int, t1, ot1, t2, ot2 float64) []marker {
	other := o.Edge(j)
	p1, p2 := edge.PointAt(t1), edge.PointAt(t2)
	q1, q2 := other.PointAt(ot1), other.PointAt(ot2)

	x := marker{t: t1, point: p1, otherT: ot1, other: q1, distance: geom.Distance(p1, q1), room: o, edge: j}
	y := marker{t: t2, point: p2, otherT: ot2, other: q2, distance: geom.Distance(p2, q2), room: o, edge: j}
	if x.distance > c.cfg.maxDistance || y.distance > c.cfg.maxDistance {
		return markers
	}
	x.pair = len(markers) + 1
	y.pair = len(markers)

	return append(markers, x, y)
}

// extract turns the markers of edge i of r into Neighbour records. Only
// pairs belonging to rooms with a higher id than r are emitted; markers of
// every room take part in occlusion.
func (c *calculator) extract(r *Room, i int, markers []marker) ([]Neighbour, error) {
	if len(markers) == 0 {
		return nil, nil
	}

	// Walk markers along the edge; at equal t the closer one comes first.
	order := make([]int, len(markers))
	for k := range order {
		order[k] = k
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if v := cmp.Compare(markers[a].t, markers[b].t); v != 0 {
			return v
		}
		return cmp.Compare(markers[a].distance, markers[b].distance)
	})

	var out []Neighbour
	for _, ai := range order {
		a := markers[ai]
		b := markers[a.pair]
		// a must open its pair, and the pair is resolved from the lower id.
		if b.t <= a.t || a.room.id <= r.id {
			continue
		}

		stretch := Neighbour{
			RoomA: r, EdgeA: i,
			RoomB: a.room, EdgeB: a.edge,
			A: a.point, At: a.t,
			B: b.point, Bt: b.t,
			C: b.other, Ct: b.otherT,
			D: a.other, Dt: a.otherT,
		}
		pieces, err := c.keep(nil, stretch)
		if err != nil {
			return nil, err
		}

		// Every closer pair carves away the part of the stretch it hides.
		for xi, x := range markers {
			if len(pieces) == 0 {
				break
			}
			if !occludes(markers, ai, xi) {
				continue
			}
			y := markers[x.pair]
			var next []Neighbour
			for _, s := range pieces {
				if next, err = c.subtract(next, s, x, y); err != nil {
					return nil, err
				}
			}
			pieces = next
		}
		out = append(out, pieces...)
	}

	return out, nil
}

// occludes reports whether the pair starting at marker xi hides part of the
// candidate pair starting at marker ai: it must overlap the candidate and
// at least one of its ends must be closer than both candidate ends.
func occludes(markers []marker, ai, xi int) bool {
	a, x := markers[ai], markers[xi]
	b, y := markers[a.pair], markers[x.pair]
	if y.t <= x.t || xi == ai || xi == a.pair {
		return false
	}
	closest := min(a.distance, b.distance)
	if x.distance >= closest && y.distance >= closest {
		return false
	}

	return within(x, y, a) || within(x, y, b) || within(a, b, x) || within(a, b, y)
}

func within(lo, hi, m marker) bool { return lo.t <= m.t && m.t <= hi.t }

// subtract removes the span [x.t, y.t] from s and appends what is left to
// dst. Cut ends are carried across to RoomB's edge along the outward normal
// of RoomA's edge.
func (c *calculator) subtract(dst []Neighbour, s Neighbour, x, y marker) ([]Neighbour, error) {
	inside := func(t float64) bool { return s.At <= t && t <= s.Bt }

	switch {
	case x.t <= s.At && y.t >= s.Bt:
		// fully hidden
		return dst, nil
	case inside(x.t) && inside(y.t):
		// hole in the middle: keep both ends
		head, err := c.cutEnd(s, x)
		if err != nil {
			return nil, err
		}
		tail, err := c.cutStart(s, y)
		if err != nil {
			return nil, err
		}
		if dst, err = c.keep(dst, head); err != nil {
			return nil, err
		}
		return c.keep(dst, tail)
	case inside(x.t):
		// hides the tail
		head, err := c.cutEnd(s, x)
		if err != nil {
			return nil, err
		}
		return c.keep(dst, head)
	case inside(y.t):
		// hides the head
		tail, err := c.cutStart(s, y)
		if err != nil {
			return nil, err
		}
		return c.keep(dst, tail)
	}

	return append(dst, s), nil
}

// cutEnd returns s shortened so that it ends at m.
func (c *calculator) cutEnd(s Neighbour, m marker) (Neighbour, error) {
	p, t, err := c.reproject(s, m.point)
	if err != nil {
		return Neighbour{}, err
	}
	s.B, s.Bt = m.point, m.t
	s.C, s.Ct = p, t

	return s, nil
}

// cutStart returns s shortened so that it starts at m.
func (c *calculator) cutStart(s Neighbour, m marker) (Neighbour, error) {
	p, t, err := c.reproject(s, m.point)
	if err != nil {
		return Neighbour{}, err
	}
	s.A, s.At = m.point, m.t
	s.D, s.Dt = p, t

	return s, nil
}

// reproject carries p, a point on RoomA's edge, across to RoomB's edge.
func (c *calculator) reproject(s Neighbour, p orb.Point) (orb.Point, float64, error) {
	edge := s.RoomA.Edge(s.EdgeA)
	out := geom.Line{Origin: p, Direction: geom.Perpendicular(edge.Direction())}
	far := s.RoomB.Edge(s.EdgeB).Line()

	_, _, t, ok := out.Intersect(far)
	if !ok || !finite(t) {
		return orb.Point{}, 0, fmt.Errorf("%w: cut point does not reach room %d edge %d", ErrInvariant, s.RoomB.id, s.EdgeB)
	}

	return far.PointAt(t), t, nil
}

// keep appends s to dst unless it is shorter than the minimum segment.
// A NaN anywhere in s is an invariant violation.
func (c *calculator) keep(dst []Neighbour, s Neighbour) ([]Neighbour, error) {
	if !s.finite() {
		return nil, fmt.Errorf("%w: NaN in neighbour %s", ErrInvariant, s)
	}
	if s.Length() < c.cfg.minSegment {
		return dst, nil
	}

	return append(dst, s), nil
}
