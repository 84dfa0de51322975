// Package grid combines two labelled axes into a rectangular floor-plan grid.
//
// What:
//
//   - Plan pairs an X axis (columns) and a Y axis (rows) and caches their
//     labels, so every cell (x, y) has a label pair such as ("02B", "7").
//   - Positions are 1-based on both axes, matching axis.LabelAt.
//   - Index/Coordinate map cells to a row-major index and back.
//   - Locate turns a typed label pair back into a cell.
//   - Neighbors and Components work over cells with 4- or 8-connectivity,
//     e.g. to group selected tiles into contiguous blocks.
//
// Complexity:
//
//   - New:                 O(W+H) to expand both axes.
//   - InBounds/Index/CellLabel/Coordinate: O(1).
//   - Locate:              O(1) average (label maps).
//   - Cells:               O(W×H).
//   - Components:          O(n×d) for n selected cells, d = 4 or 8.
//
// Errors:
//
//   - ErrNilAxis: New was given a nil axis.
//   - ErrOutOfBounds: a position or index outside the grid.
//   - axis.ErrUnknownLabel (wrapped): Locate could not find a label.
//
// A Plan is immutable after New and safe for concurrent use.
package grid
