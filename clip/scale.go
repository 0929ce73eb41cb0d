// SPDX-License-Identifier: MIT

package clip

import (
	"math"

	clipper "github.com/ctessum/go.clipper"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/roomplan/geom"
)

// DefaultScale is the fixed-point multiplier applied to every coordinate.
const DefaultScale = 100000

func validScale(scale float64) bool {
	return scale > 0 && !math.IsInf(scale, 0) && !math.IsNaN(scale)
}

// toPath converts r to Clipper's integer representation.
func toPath(r orb.Ring, scale float64) (clipper.Path, error) {
	if len(r) < 3 {
		return nil, ErrEmptyPath
	}
	path := make(clipper.Path, 0, len(r))
	for _, p := range r {
		path = append(path, &clipper.IntPoint{
			X: clipper.CInt(math.Round(p[0] * scale)),
			Y: clipper.CInt(math.Round(p[1] * scale)),
		})
	}

	return path, nil
}

// toRing converts a Clipper path back to an open clockwise ring. Paths that
// collapse below three points yield nil.
func toRing(path clipper.Path, scale float64) orb.Ring {
	if len(path) < 3 {
		return nil
	}
	r := make(orb.Ring, 0, len(path))
	for _, p := range path {
		r = append(r, orb.Point{float64(p.X) / scale, float64(p.Y) / scale})
	}
	// Rounding can merge neighbouring vertices.
	r = geom.Clean(r, 0)
	if len(r) < 3 {
		return nil
	}

	return geom.Clockwise(r)
}

// toRings converts every path, dropping the ones that collapse.
func toRings(paths clipper.Paths, scale float64) []orb.Ring {
	out := make([]orb.Ring, 0, len(paths))
	for _, p := range paths {
		if r := toRing(p, scale); r != nil {
			out = append(out, r)
		}
	}

	return out
}

// Quantize snaps every coordinate of r to the engine's fixed-point grid.
func Quantize(r orb.Ring, scale float64) orb.Ring {
	out := make(orb.Ring, len(r))
	for i, p := range r {
		out[i] = orb.Point{math.Round(p[0]*scale) / scale, math.Round(p[1]*scale) / scale}
	}

	return out
}
