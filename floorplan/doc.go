// SPDX-License-Identifier: MIT

// Package floorplan builds a 2D floor layout one room at a time and answers
// adjacency questions about the finished layout.
//
// A Floorplan owns a clockwise floor boundary and an ordered set of rooms.
// Each call to Add clips the requested footprint against the boundary and
// against every room placed so far, shrinks what survives by a small safety
// margin and then builds a Room whose inner footprint is the outer one
// offset inwards by the wall thickness. Rooms never overlap and never leave
// the boundary.
//
// Once building is done, Freeze turns the plan read-only. Neighbour queries
// are answered from a cache that is rebuilt in full whenever a room has been
// added since the last query:
//
//	plan, _ := floorplan.New(boundary)
//	a, _ := plan.Add(footprintA, 1, false)
//	b, _ := plan.Add(footprintB, 1, false)
//	view := plan.Freeze()
//	ns, _ := view.Neighbours(a[0])
//
// # Neighbours
//
// Two rooms are neighbours across a stretch of wall when a pair of their
// edges directly face each other (anti-parallel within about 5 degrees),
// lie on each other's outside, and are no further apart than the configured
// maximum distance. A closer room sitting between the two hides the
// stretches it covers. Every Neighbour is recorded once per room with the
// roles swapped, and both records share exactly the same four points.
//
// # Rejections
//
// Add never fails because of the shape that was asked for. A footprint that
// misses the floor, lands inside an existing room, would need a hole, or
// would split when splitting was not allowed simply yields no rooms. The
// reason is logged at debug level through the configured slog.Logger.
// Errors are reserved for misuse (ErrFrozen, ErrBadThickness) and for
// internal invariant violations (ErrInvariant).
//
// # Concurrency
//
// A Floorplan is not safe for concurrent use.
package floorplan
