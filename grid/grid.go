// Package grid provides a rectangular floor-plan grid whose columns and rows
// are labelled by two axes. It supports:
//
//   - 1-based bounds checks and row-major index mapping
//   - label pair lookup in both directions
//   - neighbor enumeration under Conn4 or Conn8
package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlabel/axis"
)

// Plan is an immutable grid built from an X and a Y axis.
// Width and Height are the axis sizes.
type Plan struct {
	Width, Height int

	x, y             *axis.Axis
	xLabels, yLabels []string
	xIndex, yIndex   labelIndex
}

// New expands both axes and builds the grid.
// Returns ErrNilAxis for a nil axis, or the axis expansion error.
// Complexity: O(W+H).
func New(x, y *axis.Axis) (*Plan, error) {
	if x == nil || y == nil {
		return nil, ErrNilAxis
	}
	xl, err := x.Labels()
	if err != nil {
		return nil, err
	}
	yl, err := y.Labels()
	if err != nil {
		return nil, err
	}
	return &Plan{
		Width:   len(xl),
		Height:  len(yl),
		x:       x,
		y:       y,
		xLabels: xl,
		yLabels: yl,
		xIndex:  newLabelIndex(xl),
		yIndex:  newLabelIndex(yl),
	}, nil
}

// XAxis returns the column axis.
func (p *Plan) XAxis() *axis.Axis { return p.x }

// YAxis returns the row axis.
func (p *Plan) YAxis() *axis.Axis { return p.y }

// XLabels returns a copy of the column labels.
func (p *Plan) XLabels() []string { return append([]string(nil), p.xLabels...) }

// YLabels returns a copy of the row labels.
func (p *Plan) YLabels() []string { return append([]string(nil), p.yLabels...) }

// InBounds reports whether (x,y) lies within the grid (1-based).
// Complexity: O(1).
func (p *Plan) InBounds(x, y int) bool {
	return x >= 1 && x <= p.Width && y >= 1 && y <= p.Height
}

// Index maps (x,y) to a row-major index: (y-1)*Width + (x-1).
// Complexity: O(1).
func (p *Plan) Index(x, y int) (int, error) {
	if !p.InBounds(x, y) {
		return 0, p.boundsErr(x, y)
	}
	return (y-1)*p.Width + (x - 1), nil
}

// Coordinate converts a row-major index back to 1-based (x,y).
// Complexity: O(1).
func (p *Plan) Coordinate(idx int) (x, y int, err error) {
	if idx < 0 || idx >= p.Width*p.Height {
		return 0, 0, fmt.Errorf("%w: index %d not in 0..%d", ErrOutOfBounds, idx, p.Width*p.Height-1)
	}
	return idx%p.Width + 1, idx/p.Width + 1, nil
}

// CellLabel returns the label pair of (x,y).
func (p *Plan) CellLabel(x, y int) (xLabel, yLabel string, err error) {
	if !p.InBounds(x, y) {
		return "", "", p.boundsErr(x, y)
	}
	return p.xLabels[x-1], p.yLabels[y-1], nil
}

// Cell returns the Cell at (x,y).
func (p *Plan) Cell(x, y int) (Cell, error) {
	xl, yl, err := p.CellLabel(x, y)
	if err != nil {
		return Cell{}, err
	}
	return Cell{X: x, Y: y, XLabel: xl, YLabel: yl}, nil
}

// Locate returns the position of the cell labelled (xLabel, yLabel).
// Each label is matched exactly first, then case-insensitively.
func (p *Plan) Locate(xLabel, yLabel string) (x, y int, err error) {
	if x = p.xIndex.find(xLabel); x == 0 {
		return 0, 0, fmt.Errorf("%w: %q on axis %s", axis.ErrUnknownLabel, xLabel, p.x.Name())
	}
	if y = p.yIndex.find(yLabel); y == 0 {
		return 0, 0, fmt.Errorf("%w: %q on axis %s", axis.ErrUnknownLabel, yLabel, p.y.Name())
	}
	return x, y, nil
}

// Cells enumerates every cell in row-major order.
// Complexity: O(W×H).
func (p *Plan) Cells() []Cell {
	out := make([]Cell, 0, p.Width*p.Height)
	for y := 1; y <= p.Height; y++ {
		for x := 1; x <= p.Width; x++ {
			out = append(out, Cell{X: x, Y: y, XLabel: p.xLabels[x-1], YLabel: p.yLabels[y-1]})
		}
	}
	return out
}

// Neighbors returns the in-bounds neighbors of (x,y) under conn, in
// clockwise order starting north.
func (p *Plan) Neighbors(x, y int, conn Connectivity) ([]Cell, error) {
	if !p.InBounds(x, y) {
		return nil, p.boundsErr(x, y)
	}
	var out []Cell
	for _, d := range conn.offsets() {
		nx, ny := x+d[0], y+d[1]
		if !p.InBounds(nx, ny) {
			continue
		}
		out = append(out, Cell{X: nx, Y: ny, XLabel: p.xLabels[nx-1], YLabel: p.yLabels[ny-1]})
	}
	return out, nil
}

func (p *Plan) boundsErr(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) not in (1..%d,1..%d)", ErrOutOfBounds, x, y, p.Width, p.Height)
}

// labelIndex maps labels to 1-based positions. Duplicate labels keep their
// first position.
type labelIndex struct {
	exact map[string]int
	fold  map[string]int
}

func newLabelIndex(labels []string) labelIndex {
	idx := labelIndex{
		exact: make(map[string]int, len(labels)),
		fold:  make(map[string]int, len(labels)),
	}
	for i, s := range labels {
		if _, ok := idx.exact[s]; !ok {
			idx.exact[s] = i + 1
		}
		k := strings.ToLower(s)
		if _, ok := idx.fold[k]; !ok {
			idx.fold[k] = i + 1
		}
	}
	return idx
}

// find returns the 1-based position of s, or 0.
func (idx labelIndex) find(s string) int {
	if pos, ok := idx.exact[s]; ok {
		return pos
	}
	return idx.fold[strings.ToLower(s)]
}
