// SPDX-License-Identifier: MIT

// Package axis models one labelled axis of a floor-plan grid.
//
// What:
//
//   - An Axis has a name ("X", "Y"), a size (number of positions) and a
//     default labelling: Numbers or Letters seeded at an origin ordinal and
//     advancing by a non-zero step.
//   - Custom ranges (label.Range) override the default labels. They are
//     consumed in declaration order; when they supply fewer labels than the
//     axis needs, default labelling continues from
//     origin + len(customLabels)*step.
//   - Default Letters labels wrap within A..ZZZ in both directions, so an
//     origin near ZZZ continues at A and a negative step continues past A
//     at ZZZ.
//
// Example:
//
//	size 5, origin 1, step 1, range numalpha 02A..02C (increment letter)
//	→ 02A 02B 02C 4 5
//
// Lookups:
//
//   - LabelAt maps a 1-based position to its label.
//   - PositionOf maps a label back to its position, preferring an exact
//     match and then a case-insensitive one.
//
// Errors:
//
//   - ErrSize: the axis size is below 1.
//   - ErrPosition: a position outside 1..size.
//   - ErrUnknownLabel: the label is not on the axis.
//   - ErrTooManyLabels: custom ranges produce more labels than the axis holds.
//   - ErrOverlap: two ranges of one scheme produce the same label.
//   - ErrIncrementMode: a numbers range sets the increment-letter flag.
//
// Range failures are returned wrapping both the axis context and the
// label package sentinel, so errors.Is(err, label.ErrStep) keeps working.
//
// Complexity:
//
//	Labels, LabelAt and PositionOf are O(size) and recompute on each call.
//	An Axis is immutable after New and safe for concurrent use.
package axis
