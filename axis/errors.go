// SPDX-License-Identifier: MIT

package axis

import "errors"

var (
	// ErrSize indicates an axis with fewer than one position.
	ErrSize = errors.New("axis: size must be at least 1")
	// ErrPosition indicates a position outside 1..size.
	ErrPosition = errors.New("axis: position out of bounds")
	// ErrUnknownLabel indicates a label that does not appear on the axis.
	ErrUnknownLabel = errors.New("axis: label not on axis")
	// ErrTooManyLabels indicates custom ranges longer than the axis.
	ErrTooManyLabels = errors.New("axis: custom ranges exceed axis size")
	// ErrOverlap indicates two ranges of the same scheme sharing a label.
	ErrOverlap = errors.New("axis: custom ranges overlap")
	// ErrIncrementMode indicates a numbers range with increment_letter set.
	ErrIncrementMode = errors.New("axis: increment letter not allowed for numbers")
)
