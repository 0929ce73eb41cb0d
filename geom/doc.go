// SPDX-License-Identifier: MIT

// Package geom holds the small 2D primitives the floorplan engine is built on:
// footprints as orb.Ring, oriented segments, infinite lines and the
// winding/area helpers used to normalise every polygon to clockwise order.
//
// Conventions:
//
//   - X grows to the right and Y grows up the page.
//   - Rings are stored open (the first point is not repeated at the end).
//   - SignedArea is positive for clockwise rings and negative for
//     counter-clockwise rings, so every room footprint has a positive area
//     and every neighbour quad [A,B,C,D] has a negative one.
//
// Complexity:
//
//   - SignedArea, Clockwise, Clean, HasNaN: O(n) in the number of vertices.
//   - Line and Segment helpers: O(1).
package geom
