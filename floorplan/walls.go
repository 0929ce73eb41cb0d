// SPDX-License-Identifier: MIT

package floorplan

import (
	"cmp"
	"slices"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/roomplan/geom"
)

// SectionKind classifies a wall section.
type SectionKind int

const (
	// SectionExternal faces open space or the floor boundary.
	SectionExternal SectionKind = iota
	// SectionShared faces a neighbouring room.
	SectionShared
)

func (k SectionKind) String() string {
	switch k {
	case SectionExternal:
		return "external"
	case SectionShared:
		return "shared"
	}

	return "unknown"
}

// WallSection is a piece of one outer edge of a room. Start and End lie on
// the outer footprint; InnerStart and InnerEnd are the same points moved
// inwards by the wall thickness.
type WallSection struct {
	EdgeIndex    int
	Start, End   orb.Point
	StartT, EndT float64
	Kind         SectionKind
	Neighbour    *Neighbour // nil unless Kind is SectionShared
	OnBoundary   bool
	InnerStart   orb.Point
	InnerEnd     orb.Point
}

// Length returns the length of the section.
func (w WallSection) Length() float64 { return geom.Distance(w.Start, w.End) }

// Overlaps reports whether w and o cover a common stretch of the same edge
// longer than eps.
func (w WallSection) Overlaps(o WallSection, eps float64) bool {
	if w.EdgeIndex != o.EdgeIndex {
		return false
	}
	lo, hi := max(w.StartT, o.StartT), min(w.EndT, o.EndT)
	if hi <= lo || w.EndT <= w.StartT {
		return false
	}
	edgeLen := geom.Distance(w.Start, w.End) / (w.EndT - w.StartT)

	return (hi-lo)*edgeLen > eps
}

// wallSections cuts every outer edge of r at the ends of its neighbour
// stretches. Overlapping stretches are clipped so that no two sections
// cover the same span, and uncovered gaps shorter than the configured
// minimum are dropped. An edge left without any section becomes a single
// external section.
//
// Complexity: O(E + N log N) for E edges and N neighbour records.
func wallSections(cfg *config, boundary orb.Ring, r *Room, neighbours []Neighbour) []WallSection {
	// Group neighbour records by the edge they lie on.
	byEdge := make(map[int][]int, r.EdgeCount())
	for k, n := range neighbours {
		byEdge[n.EdgeA] = append(byEdge[n.EdgeA], k)
	}

	var out []WallSection
	for i := 0; i < r.EdgeCount(); i++ {
		edge := r.Edge(i)
		length := edge.Length()
		idx := byEdge[i]
		slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(neighbours[a].At, neighbours[b].At) })

		var sections []WallSection
		external := func(from, to float64) {
			if (to-from)*length >= cfg.minWallSection {
				sections = append(sections, newSection(cfg, boundary, r, i, from, to, nil))
			}
		}

		// cursor is the edge parameter covered so far; stretches are walked
		// in order of their start and clipped against it.
		cursor := 0.0
		for _, k := range idx {
			n := &neighbours[k]
			if n.At > cursor {
				external(cursor, n.At)
			}
			start := max(n.At, cursor)
			if n.Bt > start {
				sections = append(sections, newSection(cfg, boundary, r, i, start, n.Bt, n))
				cursor = n.Bt
			}
		}
		// Tail of the edge after the last stretch.
		if cursor < 1 {
			external(cursor, 1)
		}
		if len(sections) == 0 {
			sections = append(sections, newSection(cfg, boundary, r, i, 0, 1, nil))
		}
		out = append(out, sections...)
	}

	return out
}

// newSection builds the section of edge i between parameters from and to.
// n is nil for an external section.
func newSection(cfg *config, boundary orb.Ring, r *Room, i int, from, to float64, n *Neighbour) WallSection {
	edge := r.Edge(i)
	// Outward normal is the left perpendicular of a clockwise edge.
	inward := geom.Scale(geom.Normalize(geom.Perpendicular(edge.Direction())), -r.thickness)

	w := WallSection{
		EdgeIndex: i,
		Start:     edge.PointAt(from),
		End:       edge.PointAt(to),
		StartT:    from,
		EndT:      to,
		Kind:      SectionExternal,
		Neighbour: n,
	}
	if n != nil {
		w.Kind = SectionShared
	}
	w.InnerStart = geom.Add(w.Start, inward)
	w.InnerEnd = geom.Add(w.End, inward)
	mid := edge.PointAt((from + to) / 2)
	w.OnBoundary = geom.DistanceToRing(boundary, mid) <= cfg.boundaryTolerance

	return w
}
