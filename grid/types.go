// Package grid defines core types and sentinel errors for the grid package
// of github.com/katalvlaran/lvlabel.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrNilAxis indicates New received a nil axis.
	ErrNilAxis = errors.New("grid: axis must not be nil")
	// ErrOutOfBounds indicates a position or index outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the (dx, dy) neighbor offsets for c.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Cell is one grid position with its display labels.
type Cell struct {
	X, Y           int    // 1-based positions
	XLabel, YLabel string // labels from the X and Y axes
}

// String renders the cell as "XLabel,YLabel", e.g. "02B,7".
func (c Cell) String() string {
	return c.XLabel + "," + c.YLabel
}
