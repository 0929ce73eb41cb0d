// SPDX-License-Identifier: MIT

// Package clip is the polygon Boolean engine used by the floorplan builder.
//
// It exposes the two capabilities the builder needs through the Engine
// interface:
//
//   - Intersect(subject, clip) returns the regions common to both polygons.
//   - Difference(subject, clips) returns what is left of subject once every
//     clip polygon has been removed, and reports whether any of the result
//     regions would need a hole.
//
// Context is the Clipper-backed implementation. Coordinates are converted to
// fixed-point integers (multiplied by a scale, 100000 by default) before the
// operation and back afterwards, so exact coincident edges stay coincident.
// Every operation runs on its own Clipper instance, so nothing carries over
// from one call to the next and a single Context can be reused freely.
//
// Shrink performs the uniform inward offset used for the safety margin and
// for wall thickness.
//
// All output rings are open and wound clockwise (see package geom).
package clip

//go:generate mockgen -destination=clipmock/mock_engine.go -package=clipmock github.com/katalvlaran/roomplan/clip Engine
