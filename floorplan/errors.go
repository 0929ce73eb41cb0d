// SPDX-License-Identifier: MIT
// Package: roomplan/floorplan
//
// errors.go: sentinel errors for the floorplan package.
//
// Callers branch with errors.Is; context is attached with %w at the call
// site. The rejection sentinels (outside floor, occupied, split, holed,
// degenerate) never escape Add: they only label the debug log record.

package floorplan

import "errors"

var (
	// ErrFrozen is returned by Add once Freeze has been called.
	ErrFrozen = errors.New("floorplan: plan is frozen")

	// ErrBadBoundary is returned by New for a boundary that is not a usable polygon.
	ErrBadBoundary = errors.New("floorplan: boundary must be a finite polygon with at least three points")

	// ErrBadThickness is returned by Add for a non-positive or non-finite wall thickness.
	ErrBadThickness = errors.New("floorplan: wall thickness must be positive and finite")

	// ErrUnknownRoom is returned when a room that does not belong to the plan is queried.
	ErrUnknownRoom = errors.New("floorplan: room does not belong to this plan")

	// ErrOptionViolation is returned by New when an Option received a meaningless value.
	ErrOptionViolation = errors.New("floorplan: invalid option supplied")

	// ErrInvariant reports an internal geometric invariant violation such as a
	// NaN coordinate, a wrongly wound edge or a failed boolean operation.
	ErrInvariant = errors.New("floorplan: geometric invariant violated")
)

// Rejection reasons.
var (
	ErrOutsideFloor   = errors.New("floorplan: footprint does not intersect the floor")
	ErrOccupied       = errors.New("floorplan: footprint is covered by existing rooms")
	ErrSplitRejected  = errors.New("floorplan: footprint would split and splitting is not allowed")
	ErrHoledRoom      = errors.New("floorplan: footprint would produce a room with a hole")
	ErrDegenerateRoom = errors.New("floorplan: wall thickness collapses the room")
)

// rejectionReason maps a rejection sentinel to the value of the "reason"
// log attribute. ok is false for errors that are not rejections.
func rejectionReason(err error) (reason string, ok bool) {
	switch {
	case errors.Is(err, ErrOutsideFloor):
		return "outside_floor", true
	case errors.Is(err, ErrOccupied):
		return "occupied", true
	case errors.Is(err, ErrSplitRejected):
		return "split_rejected", true
	case errors.Is(err, ErrHoledRoom):
		return "holed_room", true
	case errors.Is(err, ErrDegenerateRoom):
		return "degenerate_room", true
	}

	return "", false
}
