// SPDX-License-Identifier: MIT

package floorplan

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/roomplan/geom"
)

// Neighbour describes a stretch of wall shared by two rooms, seen from
// RoomA. A and B lie on edge EdgeA of RoomA with At < Bt; C and D lie on
// edge EdgeB of RoomB, C facing B and D facing A. The quad [A, B, C, D]
// always has a negative geom.SignedArea.
type Neighbour struct {
	RoomA *Room
	EdgeA int
	RoomB *Room
	EdgeB int

	A, B, C, D     orb.Point
	At, Bt, Ct, Dt float64
}

// Other returns the room on the opposite side of the shared wall from r,
// or nil when r is neither side.
func (n Neighbour) Other(r *Room) *Room {
	switch r {
	case n.RoomA:
		return n.RoomB
	case n.RoomB:
		return n.RoomA
	}

	return nil
}

// Mirror returns the same shared wall seen from RoomB. The four points are
// reused, not recomputed.
func (n Neighbour) Mirror() Neighbour {
	return Neighbour{
		RoomA: n.RoomB, EdgeA: n.EdgeB,
		RoomB: n.RoomA, EdgeB: n.EdgeA,
		A: n.C, At: n.Ct,
		B: n.D, Bt: n.Dt,
		C: n.A, Ct: n.At,
		D: n.B, Dt: n.Bt,
	}
}

// Quad returns the ring [A, B, C, D].
func (n Neighbour) Quad() orb.Ring { return orb.Ring{n.A, n.B, n.C, n.D} }

// Length returns the length of the shared stretch along RoomA's edge.
func (n Neighbour) Length() float64 { return geom.Distance(n.A, n.B) }

// Separation returns the largest gap between the two walls.
func (n Neighbour) Separation() float64 {
	return max(geom.Distance(n.A, n.D), geom.Distance(n.B, n.C))
}

func (n Neighbour) finite() bool {
	for _, p := range [...]orb.Point{n.A, n.B, n.C, n.D} {
		if !geom.Finite(p) {
			return false
		}
	}
	for _, t := range [...]float64{n.At, n.Bt, n.Ct, n.Dt} {
		if !finite(t) {
			return false
		}
	}

	return true
}

func (n Neighbour) String() string {
	return fmt.Sprintf("room %d edge %d [%.3f, %.3f] <-> room %d edge %d [%.3f, %.3f]",
		n.RoomA.ID(), n.EdgeA, n.At, n.Bt, n.RoomB.ID(), n.EdgeB, n.Ct, n.Dt)
}
