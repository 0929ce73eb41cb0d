// SPDX-License-Identifier: MIT
// Package: roomplan/floorplan
//
// floorplan.go: the builder, its read-only view and the neighbour cache.
//
// Lifecycle:
//   • Building: Add places rooms; TestRoom answers what-if queries.
//   • Frozen:   Add fails with ErrFrozen; queries keep working.
//
// Neighbour cache:
//   • nil means dirty. Every successful Add drops it.
//   • The next query recomputes the whole plan from the current room list.

package floorplan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/roomplan/adjacency"
	"github.com/katalvlaran/roomplan/clip"
	"github.com/katalvlaran/roomplan/geom"
)

// Plan is the read-only view of a Floorplan returned by Freeze.
type Plan interface {
	Boundary() orb.Ring
	Rooms() []*Room
	Room(id int) (*Room, bool)
	Neighbours(r *Room) ([]Neighbour, error)
	WallSections(r *Room) ([]WallSection, error)
	TestRoom(footprint orb.Ring, allowSplit bool) ([]orb.Ring, error)
	AdjacencyGraph() (*adjacency.Graph, error)
}

// Floorplan places rooms inside a floor boundary.
type Floorplan struct {
	cfg      config
	boundary orb.Ring
	rooms    []*Room
	byID     map[int]*Room
	nextID   int
	frozen   bool

	neighbours map[int][]Neighbour
}

var _ Plan = (*Floorplan)(nil)

// New returns an empty Floorplan for boundary, which may be wound either way.
func New(boundary orb.Ring, opts ...Option) (*Floorplan, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	b := geom.Clean(boundary, 0)
	if len(b) < 3 || geom.HasNaN(b) {
		return nil, ErrBadBoundary
	}
	b = geom.Clockwise(clip.Quantize(b, cfg.scale))
	if geom.Area(b) < degenerateArea {
		return nil, ErrBadBoundary
	}

	return &Floorplan{
		cfg:      cfg,
		boundary: b,
		byID:     make(map[int]*Room),
	}, nil
}

// Boundary returns a copy of the clockwise floor boundary.
func (p *Floorplan) Boundary() orb.Ring { return p.boundary.Clone() }

// Rooms returns the placed rooms in creation order.
func (p *Floorplan) Rooms() []*Room {
	out := make([]*Room, len(p.rooms))
	copy(out, p.rooms)

	return out
}

// Room looks a room up by id.
func (p *Floorplan) Room(id int) (*Room, bool) {
	r, ok := p.byID[id]

	return r, ok
}

// Frozen reports whether Freeze has been called.
func (p *Floorplan) Frozen() bool { return p.frozen }

// Freeze ends the building phase. It does not compute neighbours.
func (p *Floorplan) Freeze() Plan {
	p.frozen = true

	return p
}

// Add places footprint on the floor with walls of the given thickness and
// returns the rooms that were created. The footprint is clipped to the
// boundary and to every existing room. With allowSplit false, a footprint
// that would end up in several pieces creates nothing; with allowSplit true
// every piece becomes its own room.
//
// A footprint that cannot be placed yields no rooms and a nil error. Errors
// are returned only for a frozen plan, a bad thickness or an internal
// invariant violation.
func (p *Floorplan) Add(footprint orb.Ring, wallThickness float64, allowSplit bool) ([]*Room, error) {
	if p.frozen {
		return nil, ErrFrozen
	}
	if !finite(wallThickness) || wallThickness <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadThickness, wallThickness)
	}

	shapes, err := p.place(footprint, allowSplit)
	if err != nil {
		if p.rejected(err) {
			return []*Room{}, nil
		}
		return nil, err
	}

	// Build every room before touching the plan so a failure leaves it as is.
	built := make([]*Room, 0, len(shapes))
	for _, s := range shapes {
		r, err := newRoom(s, wallThickness, p.cfg.scale)
		if err != nil {
			if p.rejected(err) {
				continue
			}
			return nil, err
		}
		built = append(built, r)
	}

	for _, r := range built {
		r.id = p.nextID
		p.nextID++
		p.rooms = append(p.rooms, r)
		p.byID[r.id] = r
		p.cfg.logger.Debug("room added", slog.Int("room_id", r.id), slog.Float64("area", r.Area()))
	}
	// nil marks the neighbour cache dirty.
	if len(built) > 0 {
		p.neighbours = nil
	}

	return built, nil
}

// TestRoom returns the outer footprints Add would build from footprint,
// before wall thickness is applied, without changing the plan.
func (p *Floorplan) TestRoom(footprint orb.Ring, allowSplit bool) ([]orb.Ring, error) {
	shapes, err := p.place(footprint, allowSplit)
	if err != nil {
		if p.rejected(err) {
			return []orb.Ring{}, nil
		}
		return nil, err
	}

	return shapes, nil
}

// rejected logs err at debug level when it is a rejection and reports
// whether it was one.
func (p *Floorplan) rejected(err error) bool {
	reason, ok := rejectionReason(err)
	if ok {
		p.cfg.logger.Debug("footprint rejected", slog.String("reason", reason), slog.Any("error", err))
	}

	return ok
}

// place clips footprint to the boundary and to the placed rooms, then
// shrinks every surviving region by the safety margin.
//
// Complexity: O(N log N) Boolean work, N the vertices of the footprint, the
// boundary and every placed room.
func (p *Floorplan) place(footprint orb.Ring, allowSplit bool) ([]orb.Ring, error) {
	// 1) validate and normalise the footprint.
	fp := geom.Clean(footprint, 0)
	if geom.HasNaN(fp) {
		return nil, fmt.Errorf("%w: footprint has a NaN coordinate", ErrInvariant)
	}
	if len(fp) < 3 || geom.Area(fp) < degenerateArea {
		return nil, ErrDegenerateRoom
	}
	fp = geom.Clockwise(fp)

	// 2) clip to the floor.
	engine := p.cfg.engine()
	regions, err := engine.Intersect(fp, p.boundary)
	if err != nil {
		return nil, fmt.Errorf("%w: clip to boundary: %w", ErrInvariant, err)
	}
	switch {
	case len(regions) == 0:
		return nil, ErrOutsideFloor
	case len(regions) > 1 && !allowSplit:
		return nil, fmt.Errorf("%w: %d regions inside the floor", ErrSplitRejected, len(regions))
	}

	// 3) remove the space already taken; a room left with a hole is refused.
	if len(p.rooms) > 0 {
		occupied := make([]orb.Ring, len(p.rooms))
		for i, r := range p.rooms {
			occupied[i] = r.outer
		}
		var free []orb.Ring
		for _, region := range regions {
			pieces, holed, err := engine.Difference(region, occupied)
			if err != nil {
				return nil, fmt.Errorf("%w: subtract rooms: %w", ErrInvariant, err)
			}
			if holed {
				return nil, ErrHoledRoom
			}
			free = append(free, pieces...)
		}
		switch {
		case len(free) == 0:
			return nil, ErrOccupied
		case len(free) > 1 && !allowSplit:
			return nil, fmt.Errorf("%w: %d free regions", ErrSplitRejected, len(free))
		}
		regions = free
	}

	// 4) keep the safety margin to the neighbours, largest piece per region.
	shapes := make([]orb.Ring, 0, len(regions))
	for _, region := range regions {
		pieces, err := clip.Shrink(geom.Clockwise(region), p.cfg.safetyMargin, p.cfg.scale)
		if err != nil {
			return nil, fmt.Errorf("%w: safety margin: %w", ErrInvariant, err)
		}
		if s, idx := geom.Largest(pieces); idx >= 0 && geom.Area(s) >= degenerateArea {
			shapes = append(shapes, s)
		}
	}

	return shapes, nil
}

func (p *Floorplan) owns(r *Room) bool {
	return r != nil && p.byID[r.id] == r
}

// refresh recomputes the neighbour cache if a room was added since the
// last query.
func (p *Floorplan) refresh() error {
	if p.neighbours != nil {
		return nil
	}
	ns, err := computeNeighbours(&p.cfg, p.rooms)
	if err != nil {
		return err
	}
	if p.cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
		total := 0
		for _, l := range ns {
			total += len(l)
		}
		p.cfg.logger.Debug("neighbours computed", slog.Int("rooms", len(p.rooms)), slog.Int("neighbours", total/2))
	}
	p.neighbours = ns

	return nil
}

// Neighbours returns every stretch of wall r shares with another room, seen
// from r (RoomA is always r).
func (p *Floorplan) Neighbours(r *Room) ([]Neighbour, error) {
	if !p.owns(r) {
		return nil, ErrUnknownRoom
	}
	if err := p.refresh(); err != nil {
		return nil, err
	}
	src := p.neighbours[r.id]
	out := make([]Neighbour, len(src))
	copy(out, src)

	return out, nil
}

// WallSections returns r's outer walls cut into external and shared
// sections, edge by edge.
func (p *Floorplan) WallSections(r *Room) ([]WallSection, error) {
	ns, err := p.Neighbours(r)
	if err != nil {
		return nil, err
	}

	return wallSections(&p.cfg, p.boundary, r, ns), nil
}
