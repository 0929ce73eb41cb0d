// SPDX-License-Identifier: MIT

package floorplan_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomplan/floorplan"
	"github.com/katalvlaran/roomplan/geom"
)

// floor is the 200×200 boundary most scenarios are built on.
var floor = orb.Ring{{-100, -100}, {-100, 100}, {100, 100}, {100, -100}}

func newPlan(t testing.TB, opts ...floorplan.Option) *floorplan.Floorplan {
	t.Helper()
	p, err := floorplan.New(floor, opts...)
	require.NoError(t, err)

	return p
}

// single adds footprint and requires exactly one room back.
func single(t testing.TB, p *floorplan.Floorplan, footprint orb.Ring, thickness float64) *floorplan.Room {
	t.Helper()
	rooms, err := p.Add(footprint, thickness, false)
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	return rooms[0]
}

func neighbours(t testing.TB, p floorplan.Plan, r *floorplan.Room) []floorplan.Neighbour {
	t.Helper()
	ns, err := p.Neighbours(r)
	require.NoError(t, err)

	return ns
}

func countWith(ns []floorplan.Neighbour, r, other *floorplan.Room) int {
	c := 0
	for _, n := range ns {
		if n.Other(r) == other {
			c++
		}
	}

	return c
}

// requireInvariants checks the properties every plan must satisfy:
// neighbour quads wind negatively, their points lie on the edges they name,
// every record is mirrored in the other room, and no two wall sections of a
// room overlap.
func requireInvariants(t *testing.T, p floorplan.Plan) {
	t.Helper()
	for _, r := range p.Rooms() {
		ns := neighbours(t, p, r)
		for _, n := range ns {
			require.Same(t, r, n.RoomA)
			assert.Less(t, geom.SignedArea(n.Quad()), 0.0, "quad of %s", n)
			assert.Less(t, n.At, n.Bt)

			ea, eb := n.RoomA.Edge(n.EdgeA), n.RoomB.Edge(n.EdgeB)
			assert.InDelta(t, 0, ea.DistanceToPoint(n.A), 1e-6)
			assert.InDelta(t, 0, ea.DistanceToPoint(n.B), 1e-6)
			assert.InDelta(t, 0, eb.DistanceToPoint(n.C), 1e-6)
			assert.InDelta(t, 0, eb.DistanceToPoint(n.D), 1e-6)

			mirrored := false
			for _, m := range neighbours(t, p, n.RoomB) {
				if m == n.Mirror() {
					mirrored = true
					break
				}
			}
			assert.True(t, mirrored, "missing mirror of %s", n)
		}

		sections, err := p.WallSections(r)
		require.NoError(t, err)
		for i := range sections {
			for j := i + 1; j < len(sections); j++ {
				assert.False(t, sections[i].Overlaps(sections[j], 1e-6),
					"room %d sections %d and %d overlap", r.ID(), i, j)
			}
			assert.True(t, geom.Finite(sections[i].Start) && geom.Finite(sections[i].End))
			assert.True(t, geom.Finite(sections[i].InnerStart) && geom.Finite(sections[i].InnerEnd))
		}
	}
}
