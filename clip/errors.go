// SPDX-License-Identifier: MIT

package clip

import "errors"

var (
	// ErrExecute is returned when the underlying engine reports a failed operation.
	ErrExecute = errors.New("clip: boolean operation failed")

	// ErrEmptyPath is returned when a polygon with fewer than three points is supplied.
	ErrEmptyPath = errors.New("clip: polygon needs at least three points")

	// ErrBadScale is returned for a non-positive or non-finite scale.
	ErrBadScale = errors.New("clip: scale must be positive and finite")
)
