// SPDX-License-Identifier: MIT

package floorplan_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomplan/floorplan"
	"github.com/katalvlaran/roomplan/geom"
)

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name     string
		boundary orb.Ring
		opts     []floorplan.Option
		want     error
	}{
		{"TooFewPoints", orb.Ring{{0, 0}, {1, 1}}, nil, floorplan.ErrBadBoundary},
		{"NaN", orb.Ring{{0, 0}, {0, math.NaN()}, {1, 1}}, nil, floorplan.ErrBadBoundary},
		{"Collinear", orb.Ring{{0, 0}, {1, 0}, {2, 0}}, nil, floorplan.ErrBadBoundary},
		{"NegativeMargin", floor, []floorplan.Option{floorplan.WithSafetyMargin(-1)}, floorplan.ErrOptionViolation},
		{"ZeroDistance", floor, []floorplan.Option{floorplan.WithMaxNeighbourDistance(0)}, floorplan.ErrOptionViolation},
		{"PositiveDot", floor, []floorplan.Option{floorplan.WithFacingDot(0.5)}, floorplan.ErrOptionViolation},
		{"ZeroScale", floor, []floorplan.Option{floorplan.WithScale(0)}, floorplan.ErrOptionViolation},
		{"NilEngine", floor, []floorplan.Option{floorplan.WithEngine(nil)}, floorplan.ErrOptionViolation},
		{"NilLogger", floor, []floorplan.Option{floorplan.WithLogger(nil)}, floorplan.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := floorplan.New(tc.boundary, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, p)
		})
	}
}

func TestNew_NormalisesBoundaryWinding(t *testing.T) {
	ccw := floor.Clone()
	ccw.Reverse()

	p, err := floorplan.New(ccw)
	require.NoError(t, err)
	assert.True(t, geom.IsClockwise(p.Boundary()))
	assert.Empty(t, p.Rooms())
}

func TestNew_AreaIgnoresWinding(t *testing.T) {
	ccw := floor.Clone()
	ccw.Reverse()
	footprint := orb.Ring{{-10, -10}, {-10, 10}, {10, 10}, {10, -10}}

	for name, boundary := range map[string]orb.Ring{"Clockwise": floor, "CounterClockwise": ccw} {
		t.Run(name, func(t *testing.T) {
			p, err := floorplan.New(boundary)
			require.NoError(t, err)
			assert.InDelta(t, 40000, geom.Area(p.Boundary()), 1e-6)

			shapes, err := p.TestRoom(footprint, false)
			require.NoError(t, err)
			require.Len(t, shapes, 1)
			assert.InDelta(t, 19.98*19.98, geom.Area(shapes[0]), 1e-6)

			r := single(t, p, footprint, 0.1)
			assert.Positive(t, r.Area())
		})
	}
}

func TestAdd_FlushRoomsWithDefaultEngine(t *testing.T) {
	for name, scale := range map[string]float64{"DefaultScale": floorplan.DefaultScale, "CoarseScale": 1000} {
		t.Run(name, func(t *testing.T) {
			p := newPlan(t, floorplan.WithScale(scale))
			left := single(t, p, orb.Ring{{-10, -10}, {-10, 10}, {0, 10}, {0, -10}}, 0.1)
			right := single(t, p, orb.Ring{{0, -10}, {0, 10}, {10, 10}, {10, -10}}, 0.1)
			assert.InDelta(t, 9.98*19.98, right.Area(), 1e-6)

			// Earlier clips must not leak into later ones: a footprint inside
			// a room finds nothing, one overlapping it keeps only the free part.
			shapes, err := p.TestRoom(orb.Ring{{-8, -5}, {-8, 5}, {-2, 5}, {-2, -5}}, true)
			require.NoError(t, err)
			assert.Empty(t, shapes)

			shapes, err = p.TestRoom(orb.Ring{{5, -5}, {5, 5}, {15, 5}, {15, -5}}, false)
			require.NoError(t, err)
			require.Len(t, shapes, 1)
			assert.InDelta(t, 4.99*9.98, geom.Area(shapes[0]), 1e-6)

			view := p.Freeze()
			assert.Equal(t, 1, countWith(neighbours(t, view, left), left, right))
			assert.Equal(t, 1, countWith(neighbours(t, view, right), right, left))
		})
	}
}

func TestAdd_EmptyFloorSucceeds(t *testing.T) {
	p := newPlan(t)
	r := single(t, p, orb.Ring{{-10, -10}, {-10, 10}, {10, 10}, {10, -10}}, 0.1)

	assert.Equal(t, 0, r.ID())
	assert.Equal(t, 4, r.EdgeCount())
	assert.True(t, geom.IsClockwise(r.OuterFootprint()))
	assert.True(t, geom.IsClockwise(r.InnerFootprint()))
	assert.InDelta(t, 19.98*19.98, r.Area(), 1e-6)
	assert.Equal(t, 0.1, r.WallThickness())
}

func TestAdd_AcceptsEitherWinding(t *testing.T) {
	p := newPlan(t)
	ccw := orb.Ring{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}}
	r := single(t, p, ccw, 1)
	assert.True(t, geom.IsClockwise(r.OuterFootprint()))
}

func TestAdd_IDsAreMonotonic(t *testing.T) {
	p := newPlan(t)
	a := single(t, p, orb.Ring{{-50, -50}, {-50, -40}, {-40, -40}, {-40, -50}}, 1)
	_, err := p.Add(orb.Ring{{200, 200}, {200, 210}, {210, 210}, {210, 200}}, 1, false)
	require.NoError(t, err)
	b := single(t, p, orb.Ring{{40, 40}, {40, 50}, {50, 50}, {50, 40}}, 1)

	assert.Equal(t, 0, a.ID())
	assert.Equal(t, 1, b.ID())
	got, ok := p.Room(1)
	assert.True(t, ok)
	assert.Same(t, b, got)
	_, ok = p.Room(7)
	assert.False(t, ok)
}

func TestAdd_InnerFootprintIsOffsetByThickness(t *testing.T) {
	cases := []struct {
		name    string
		fp      orb.Ring
		corners []orb.Point
	}{
		{
			"AtOrigin",
			orb.Ring{{-10, -10}, {-10, 10}, {10, 10}, {10, -10}},
			[]orb.Point{{-9.89, 9.89}, {-9.89, -9.89}, {9.89, 9.89}, {9.89, -9.89}},
		},
		{
			"AwayFromOrigin",
			orb.Ring{{10, 10}, {10, 30}, {30, 30}, {30, 10}},
			[]orb.Point{{10.11, 29.89}, {10.11, 10.11}, {29.89, 10.11}, {29.89, 29.89}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := single(t, newPlan(t), tc.fp, 0.1)
			inner := r.InnerFootprint()
			for _, c := range tc.corners {
				assert.InDelta(t, 0, nearest(inner, c), 1e-3, "corner %v", c)
			}
		})
	}
}

func nearest(r orb.Ring, p orb.Point) float64 {
	best := math.Inf(1)
	for _, q := range r {
		best = math.Min(best, geom.Distance(p, q))
	}

	return best
}

func TestAdd_Rejections(t *testing.T) {
	wide := orb.Ring{{-100, -10}, {-100, 10}, {100, 10}, {100, -10}}
	tall := orb.Ring{{-10, -100}, {-10, 100}, {10, 100}, {10, -100}}

	cases := []struct {
		name      string
		existing  []orb.Ring
		fp        orb.Ring
		thickness float64
		reason    string
	}{
		{"OutsideFloor", nil, orb.Ring{{200, -20}, {200, 0}, {220, 0}, {220, -20}}, 5, "outside_floor"},
		{"InsideOtherRoom", []orb.Ring{{{-50, -50}, {-50, 50}, {50, 50}, {50, -50}}}, orb.Ring{{0, 0}, {0, 10}, {10, 10}, {10, 0}}, 5, "occupied"},
		{"SplitByRoom", []orb.Ring{wide}, tall, 0.1, "split_rejected"},
		{"Holed", []orb.Ring{{{-5, -5}, {-5, 5}, {5, 5}, {5, -5}}}, orb.Ring{{-20, -20}, {-20, 20}, {20, 20}, {20, -20}}, 1, "holed_room"},
		{"TooThick", nil, orb.Ring{{-1, -10}, {-1, 10}, {1, 10}, {1, -10}}, 2, "degenerate_room"},
		{"Degenerate", nil, orb.Ring{{0, 0}, {1, 1}}, 1, "degenerate_room"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			p := newPlan(t, floorplan.WithLogger(logger))
			for _, e := range tc.existing {
				single(t, p, e, 0.1)
			}
			before := len(p.Rooms())

			rooms, err := p.Add(tc.fp, tc.thickness, false)
			require.NoError(t, err)
			assert.Empty(t, rooms)
			assert.Len(t, p.Rooms(), before)
			assert.Contains(t, buf.String(), "reason="+tc.reason)
		})
	}
}

func TestAdd_SplitAllowed(t *testing.T) {
	p := newPlan(t)
	single(t, p, orb.Ring{{-100, -10}, {-100, 10}, {100, 10}, {100, -10}}, 0.1)

	rooms, err := p.Add(orb.Ring{{-10, -100}, {-10, 100}, {10, 100}, {10, -100}}, 0.1, true)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, 1, rooms[0].ID())
	assert.Equal(t, 2, rooms[1].ID())
}

func TestAdd_ClippedToFloor(t *testing.T) {
	p := newPlan(t)
	r := single(t, p, orb.Ring{{-200, -10}, {-200, 10}, {100, 10}, {100, -10}}, 0.1)

	b := r.Bound()
	assert.InDelta(t, -99.99, b.Min[0], 1e-6)
	assert.InDelta(t, 99.99, b.Max[0], 1e-6)
}

func TestAdd_RoomsNeverOverlap(t *testing.T) {
	p := newPlan(t)
	left := single(t, p, orb.Ring{{-20, -20}, {-20, 0}, {0, 0}, {0, -20}}, 5)
	right := single(t, p, orb.Ring{{-5, -5}, {-5, 20}, {25, 20}, {25, -5}}, 5)

	l, r := left.OuterFootprint(), right.OuterFootprint()
	for _, pt := range r {
		assert.False(t, geom.Contains(l, pt), "vertex %v of the later room lies inside the earlier one", pt)
	}
	assert.InDelta(t, 20*20+30*25-5*5, left.Area()+right.Area(), 5)
}

func TestAdd_SmallOddShape(t *testing.T) {
	p := newPlan(t)
	rooms, err := p.Add(orb.Ring{{15.01, -4.976}, {15.01, -4.562}, {15.423, -4.562}, {15.385, -4.6}}, 0.075, false)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}

func TestAdd_BadThickness(t *testing.T) {
	p := newPlan(t)
	for _, th := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := p.Add(floor, th, false)
		assert.ErrorIs(t, err, floorplan.ErrBadThickness)
	}
}

func TestFreeze_RejectsAdd(t *testing.T) {
	p := newPlan(t)
	single(t, p, orb.Ring{{-10, -10}, {-10, 10}, {10, 10}, {10, -10}}, 1)

	view := p.Freeze()
	assert.True(t, p.Frozen())

	rooms, err := p.Add(orb.Ring{{20, 20}, {20, 30}, {30, 30}, {30, 20}}, 1, false)
	assert.ErrorIs(t, err, floorplan.ErrFrozen)
	assert.Nil(t, rooms)
	assert.Len(t, view.Rooms(), 1)

	_, err = p.Add(nil, 1, false)
	assert.ErrorIs(t, err, floorplan.ErrFrozen)
}

func TestTestRoom_DoesNotMutate(t *testing.T) {
	p := newPlan(t)
	single(t, p, orb.Ring{{-100, -10}, {-100, 10}, {100, 10}, {100, -10}}, 0.1)

	tall := orb.Ring{{-10, -100}, {-10, 100}, {10, 100}, {10, -100}}
	shapes, err := p.TestRoom(tall, true)
	require.NoError(t, err)
	assert.Len(t, shapes, 2)

	shapes, err = p.TestRoom(tall, false)
	require.NoError(t, err)
	assert.Empty(t, shapes)

	assert.Len(t, p.Rooms(), 1)

	p.Freeze()
	shapes, err = p.TestRoom(orb.Ring{{50, 50}, {50, 60}, {60, 60}, {60, 50}}, false)
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.InDelta(t, 9.98*9.98, geom.Area(shapes[0]), 1e-6)
}

func TestNeighbours_UnknownRoom(t *testing.T) {
	p := newPlan(t)
	other := newPlan(t)
	r := single(t, other, orb.Ring{{-10, -10}, {-10, 10}, {10, 10}, {10, -10}}, 1)

	_, err := p.Neighbours(r)
	assert.ErrorIs(t, err, floorplan.ErrUnknownRoom)
	_, err = p.WallSections(nil)
	assert.ErrorIs(t, err, floorplan.ErrUnknownRoom)
}

func TestNeighbours_CacheRebuiltAfterAdd(t *testing.T) {
	p := newPlan(t)
	a := single(t, p, orb.Ring{{-10, -10}, {-10, 10}, {0, 10}, {0, -10}}, 1)
	assert.Empty(t, neighbours(t, p, a))

	b := single(t, p, orb.Ring{{0, -10}, {0, 10}, {10, 10}, {10, -10}}, 1)
	assert.Equal(t, 1, countWith(neighbours(t, p, a), a, b))
}
