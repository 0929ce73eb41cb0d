// SPDX-License-Identifier: MIT

// Package layout reads floor layouts from YAML and replays them onto a
// floorplan.Floorplan. A layout is a boundary, optional engine settings and
// an ordered list of room requests:
//
//	boundary: [[-100,-100],[-100,100],[100,100],[100,-100]]
//	settings:
//	  max_neighbour_distance: 1.5
//	rooms:
//	  - name: wide
//	    footprint: [[-100,-10],[-100,10],[100,10],[100,-10]]
//	    wall_thickness: 1
//	  - name: corridor
//	    footprint: [[-10,-100],[-10,-10],[10,-10],[10,-100]]
//	    wall_thickness: 0.5
//	    allow_split: true
//
// Rooms are added in document order, so earlier rooms win overlaps.
package layout
