// Package roomplan is a 2D floorplan geometry engine: rooms are placed inside
// a floor boundary, clipped against each other, given walls of a chosen
// thickness, and then asked which walls they share with whom.
//
// What is in the box:
//
//   - Placement: clip footprints to the floor and to earlier rooms, optional
//     splitting, safety margin between rooms, inner footprint per wall thickness
//   - Neighbours: facing-wall detection with occlusion, one symmetric record
//     per shared stretch
//   - Wall sections: every outer edge cut into external and shared pieces
//   - Adjacency: rooms as a weighted graph, BFS and connected components
//   - Layouts: YAML documents replayed onto a plan; SVG drawings
//
// Packages:
//
//	geom/        rings, segments, lines, winding and area helpers
//	clip/        polygon Boolean engine (intersection, difference, inward offset)
//	floorplan/   Floorplan builder, Room, Neighbour, WallSection
//	adjacency/   room graph, BFS, components
//	layout/      YAML layout documents
//	render/      SVG output
//	cmd/roomplan  command line front end
//
// Quick ASCII example:
//
//	┌─────┬─────┐
//	│  A  │  B  │   A and B share one wall stretch;
//	└─────┴─────┘   each sees it from its own side.
//
//	go get github.com/katalvlaran/roomplan
package roomplan
