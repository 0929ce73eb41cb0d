// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// SignedArea returns the area enclosed by r, positive when r winds clockwise
// and negative when it winds counter-clockwise. Rings with fewer than three
// points have zero area.
func SignedArea(r orb.Ring) float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	// Shoelace over (x2-x1)(y2+y1): positive for clockwise in a y-up frame.
	sum := 0.0
	for i := 0; i < n; i++ {
		a, b := r[i], r[(i+1)%n]
		sum += (b[0] - a[0]) * (b[1] + a[1])
	}

	return sum / 2
}

// Area returns the unsigned area of r whatever its winding.
func Area(r orb.Ring) float64 {
	if len(r) < 3 {
		return 0
	}

	// planar.Area is signed and negative for clockwise rings.
	return math.Abs(planar.Area(closed(r)))
}

// IsClockwise reports whether r winds clockwise. Degenerate rings are neither
// clockwise nor counter-clockwise.
func IsClockwise(r orb.Ring) bool {
	if len(r) < 3 {
		return false
	}

	return closed(r).Orientation() == orb.CW
}

// Clockwise returns a copy of r wound clockwise. The input is never modified.
func Clockwise(r orb.Ring) orb.Ring {
	out := make(orb.Ring, len(r))
	copy(out, r)
	if len(out) >= 3 && closed(out).Orientation() == orb.CCW {
		out.Reverse()
	}

	return out
}

// Clean returns a copy of r with consecutive points closer than eps merged and
// with a repeated closing point removed.
//
// Complexity: O(n).
func Clean(r orb.Ring, eps float64) orb.Ring {
	out := make(orb.Ring, 0, len(r))
	for _, p := range r {
		if len(out) > 0 && Distance(out[len(out)-1], p) <= eps {
			continue
		}
		out = append(out, p)
	}
	// Drop the closing point, and any tail that collapses onto the start.
	for len(out) > 1 && Distance(out[0], out[len(out)-1]) <= eps {
		out = out[:len(out)-1]
	}

	return out
}

// HasNaN reports whether any coordinate of r is NaN or infinite.
func HasNaN(r orb.Ring) bool {
	for _, p := range r {
		if !Finite(p) {
			return true
		}
	}

	return false
}

// Finite reports whether both coordinates of p are finite numbers.
func Finite(p orb.Point) bool {
	return !math.IsNaN(p[0]) && !math.IsNaN(p[1]) && !math.IsInf(p[0], 0) && !math.IsInf(p[1], 0)
}

// Contains reports whether p lies inside r (boundary excluded by orb's rules).
func Contains(r orb.Ring, p orb.Point) bool {
	if len(r) < 3 {
		return false
	}

	return planar.RingContains(closed(r), p)
}

// Largest returns the ring with the greatest unsigned area and its index.
// Ties keep the first ring enumerated. An empty input yields (nil, -1).
func Largest(rings []orb.Ring) (orb.Ring, int) {
	best, bestArea := -1, -1.0
	for i, r := range rings {
		if a := Area(r); a > bestArea {
			best, bestArea = i, a
		}
	}
	if best < 0 {
		return nil, -1
	}

	return rings[best], best
}

// Edge returns the i-th edge of r, from r[i] to r[i+1] (wrapping around).
func Edge(r orb.Ring, i int) Segment {
	n := len(r)

	return Segment{Start: r[i%n], End: r[(i+1)%n]}
}

// DistanceToRing returns the shortest distance from p to any edge of r.
//
// Complexity: O(n).
func DistanceToRing(r orb.Ring, p orb.Point) float64 {
	best := math.Inf(1)
	for i := range r {
		if d := Edge(r, i).DistanceToPoint(p); d < best {
			best = d
		}
	}

	return best
}

// closed returns r with its first point appended, as orb's planar helpers
// expect closed rings.
func closed(r orb.Ring) orb.Ring {
	if len(r) == 0 || r[0] == r[len(r)-1] {
		return r
	}
	out := make(orb.Ring, len(r), len(r)+1)
	copy(out, r)

	return append(out, r[0])
}
