// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// Sub returns a-b.
func Sub(a, b orb.Point) orb.Point { return orb.Point{a[0] - b[0], a[1] - b[1]} }

// Add returns a+b.
func Add(a, b orb.Point) orb.Point { return orb.Point{a[0] + b[0], a[1] + b[1]} }

// Scale returns a*k.
func Scale(a orb.Point, k float64) orb.Point { return orb.Point{a[0] * k, a[1] * k} }

// Dot returns the dot product of a and b.
func Dot(a, b orb.Point) float64 { return a[0]*b[0] + a[1]*b[1] }

// Cross returns the z component of the cross product of a and b.
func Cross(a, b orb.Point) float64 { return a[0]*b[1] - a[1]*b[0] }

// Perpendicular returns a rotated a quarter turn counter-clockwise.
func Perpendicular(a orb.Point) orb.Point { return orb.Point{-a[1], a[0]} }

// Length returns the euclidean length of a.
func Length(a orb.Point) float64 { return math.Hypot(a[0], a[1]) }

// Normalize returns a scaled to unit length. The zero vector yields NaN
// components, which callers treat as a degeneracy.
func Normalize(a orb.Point) orb.Point {
	l := Length(a)

	return orb.Point{a[0] / l, a[1] / l}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b orb.Point) float64 { return math.Hypot(a[0]-b[0], a[1]-b[1]) }

// Segment is an oriented line segment from Start to End.
type Segment struct {
	Start, End orb.Point
}

// Direction returns End-Start.
func (s Segment) Direction() orb.Point { return Sub(s.End, s.Start) }

// Length returns the length of the segment.
func (s Segment) Length() float64 { return Distance(s.Start, s.End) }

// PointAt returns the point at parametric position t (0 = Start, 1 = End).
func (s Segment) PointAt(t float64) orb.Point { return Add(s.Start, Scale(s.Direction(), t)) }

// Line returns the infinite line through the segment, parameterised so that
// t=0 is Start and t=1 is End.
func (s Segment) Line() Line { return Line{Origin: s.Start, Direction: s.Direction()} }

// DistanceToPoint returns the distance from p to the closest point of the
// segment (not of its line).
func (s Segment) DistanceToPoint(p orb.Point) float64 {
	d := s.Direction()
	ll := Dot(d, d)
	if ll == 0 {
		return Distance(s.Start, p)
	}
	// Clamp the line parameter to the segment.
	t := Dot(Sub(p, s.Start), d) / ll
	t = math.Max(0, math.Min(1, t))

	return Distance(s.PointAt(t), p)
}

// Line is an infinite line through Origin along Direction. Direction is not
// normalised; parametric positions are measured in units of Direction.
type Line struct {
	Origin    orb.Point
	Direction orb.Point
}

// PointAt returns Origin + Direction*t.
func (l Line) PointAt(t float64) orb.Point { return Add(l.Origin, Scale(l.Direction, t)) }

// ClosestT returns the parametric position of the point on l closest to p.
func (l Line) ClosestT(p orb.Point) float64 {
	return Dot(Sub(p, l.Origin), l.Direction) / Dot(l.Direction, l.Direction)
}

// IsLeft reports whether p lies strictly to the left of l, looking along
// Direction, by more than eps.
func (l Line) IsLeft(p orb.Point, eps float64) bool {
	return Cross(l.Direction, Sub(p, l.Origin)) > eps
}

// DistanceToPoint returns the perpendicular distance from p to l.
func (l Line) DistanceToPoint(p orb.Point) float64 {
	return math.Abs(Cross(l.Direction, Sub(p, l.Origin))) / Length(l.Direction)
}

// Intersect returns the intersection of l and o together with the parametric
// positions along each line. ok is false for parallel lines.
func (l Line) Intersect(o Line) (p orb.Point, tl, to float64, ok bool) {
	den := Cross(l.Direction, o.Direction)
	if den == 0 || math.IsNaN(den) {
		return orb.Point{}, 0, 0, false
	}
	// Cramer's rule on l.Origin + tl*l.Direction = o.Origin + to*o.Direction.
	w := Sub(o.Origin, l.Origin)
	tl = Cross(w, o.Direction) / den
	to = Cross(w, l.Direction) / den

	return l.PointAt(tl), tl, to, true
}
