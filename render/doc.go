// SPDX-License-Identifier: MIT

// Package render draws a floorplan.Plan as a standalone SVG document: the
// floor boundary, each room's outer and inner footprint, and one quad per
// shared wall stretch. Plan coordinates have y pointing up; the drawing is
// flipped so the plan reads the same way on screen.
package render
