// SPDX-License-Identifier: MIT

package clip

import (
	"fmt"

	clipper "github.com/ctessum/go.clipper"
	"github.com/paulmach/orb"
)

// Shrink offsets r inwards by distance with mitred joins. A shrink can
// split a concave polygon into several pieces or remove it entirely, so the
// result may hold zero, one or many rings.
//
// Complexity: O(n log n) for n vertices.
func Shrink(r orb.Ring, distance, scale float64) ([]orb.Ring, error) {
	if !validScale(scale) {
		return nil, ErrBadScale
	}
	path, err := toPath(r, scale)
	if err != nil {
		return nil, fmt.Errorf("shrink: %w", err)
	}

	// A negative delta offsets inwards; ClipperOffset orients closed paths
	// itself, so either winding works.
	co := clipper.NewClipperOffset()
	co.AddPath(path, clipper.JtMiter, clipper.EtClosedPolygon)

	return toRings(co.Execute(-distance*scale), scale), nil
}
