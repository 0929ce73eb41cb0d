// SPDX-License-Identifier: MIT

package floorplan

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/roomplan/clip"
	"github.com/katalvlaran/roomplan/geom"
)

// Room is an immutable placed room. Both footprints are open rings wound
// clockwise; the inner footprint is the outer one offset inwards by the
// wall thickness.
type Room struct {
	id        int
	outer     orb.Ring
	inner     orb.Ring
	thickness float64
}

// newRoom builds a room from an already clipped outer footprint. When the
// offset splits the footprint, the largest piece by area becomes the inner
// footprint and the rest is discarded.
func newRoom(outer orb.Ring, thickness, scale float64) (*Room, error) {
	pieces, err := clip.Shrink(outer, thickness, scale)
	if err != nil {
		return nil, fmt.Errorf("%w: shrink by wall thickness: %w", ErrInvariant, err)
	}
	inner, idx := geom.Largest(pieces)
	if idx < 0 || geom.Area(inner) < degenerateArea {
		return nil, ErrDegenerateRoom
	}
	if geom.HasNaN(inner) {
		return nil, fmt.Errorf("%w: inner footprint has a NaN coordinate", ErrInvariant)
	}

	return &Room{
		outer:     geom.Clockwise(outer),
		inner:     geom.Clockwise(inner),
		thickness: thickness,
	}, nil
}

// ID returns the room's identifier. IDs are assigned in creation order and
// never reused within a plan.
func (r *Room) ID() int { return r.id }

// OuterFootprint returns a copy of the outer footprint.
func (r *Room) OuterFootprint() orb.Ring { return r.outer.Clone() }

// InnerFootprint returns a copy of the inner footprint.
func (r *Room) InnerFootprint() orb.Ring { return r.inner.Clone() }

// WallThickness returns the thickness the room was built with.
func (r *Room) WallThickness() float64 { return r.thickness }

// Area returns the area enclosed by the outer footprint.
func (r *Room) Area() float64 { return geom.Area(r.outer) }

// EdgeCount returns the number of edges of the outer footprint.
func (r *Room) EdgeCount() int { return len(r.outer) }

// Edge returns outer edge i, running from vertex i to vertex i+1.
func (r *Room) Edge(i int) geom.Segment { return geom.Edge(r.outer, i) }

// Bound returns the bounding box of the outer footprint.
func (r *Room) Bound() orb.Bound { return r.outer.Bound() }

func (r *Room) String() string {
	return fmt.Sprintf("room %d (%d edges, area %.3f)", r.id, len(r.outer), r.Area())
}
