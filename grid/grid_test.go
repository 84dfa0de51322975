package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlabel/axis"
	"github.com/katalvlaran/lvlabel/grid"
	"github.com/katalvlaran/lvlabel/label"
)

// newPlan builds a W×H plan with letter columns (A, B, …) and numbered rows.
func newPlan(t *testing.T, w, h int, xOpts ...axis.Option) *grid.Plan {
	t.Helper()
	x, err := axis.New("X", w, append([]axis.Option{axis.WithLetters()}, xOpts...)...)
	require.NoError(t, err)
	y, err := axis.New("Y", h)
	require.NoError(t, err)
	p, err := grid.New(x, y)
	require.NoError(t, err)
	return p
}

//----------------------------------------------------------------------------//
// New and InBounds
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	x, err := axis.New("X", 2)
	require.NoError(t, err)

	_, err = grid.New(nil, x)
	assert.ErrorIs(t, err, grid.ErrNilAxis)
	_, err = grid.New(x, nil)
	assert.ErrorIs(t, err, grid.ErrNilAxis)

	bad, err := axis.New("Y", 2,
		axis.WithRange(label.Range{Start: "IIZ", End: "V", Step: 1, Scheme: label.Roman}))
	require.NoError(t, err)
	_, err = grid.New(x, bad)
	assert.ErrorIs(t, err, label.ErrFormat)
}

func TestInBounds(t *testing.T) {
	p := newPlan(t, 3, 2)
	assert.Equal(t, 3, p.Width)
	assert.Equal(t, 2, p.Height)
	assert.Equal(t, "X", p.XAxis().Name())
	assert.Equal(t, "Y", p.YAxis().Name())

	for _, xy := range [][2]int{{1, 1}, {3, 2}, {2, 1}} {
		assert.True(t, p.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{0, 1}, {4, 1}, {1, 0}, {1, 3}} {
		assert.False(t, p.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

//----------------------------------------------------------------------------//
// Index, Coordinate and labels
//----------------------------------------------------------------------------//

func TestIndex_Coordinate(t *testing.T) {
	p := newPlan(t, 3, 2)
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 3; x++ {
			idx, err := p.Index(x, y)
			require.NoError(t, err)
			gx, gy, err := p.Coordinate(idx)
			require.NoError(t, err)
			assert.Equal(t, [2]int{x, y}, [2]int{gx, gy})
		}
	}

	idx, err := p.Index(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, idx)

	_, err = p.Index(4, 1)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	for _, bad := range []int{-1, 6} {
		_, _, err = p.Coordinate(bad)
		assert.ErrorIs(t, err, grid.ErrOutOfBounds)
	}
}

func TestCellLabel_Locate(t *testing.T) {
	p := newPlan(t, 3, 2)

	xl, yl, err := p.CellLabel(2, 2)
	require.NoError(t, err)
	assert.Equal(t, "B", xl)
	assert.Equal(t, "2", yl)

	_, _, err = p.CellLabel(0, 0)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	for _, c := range p.Cells() {
		x, y, err := p.Locate(c.XLabel, c.YLabel)
		require.NoError(t, err)
		assert.Equal(t, c.X, x)
		assert.Equal(t, c.Y, y)
	}

	x, y, err := p.Locate("c", "1")
	require.NoError(t, err, "case-insensitive")
	assert.Equal(t, 3, x)
	assert.Equal(t, 1, y)

	_, _, err = p.Locate("Z", "1")
	assert.ErrorIs(t, err, axis.ErrUnknownLabel)
	_, _, err = p.Locate("A", "9")
	assert.ErrorIs(t, err, axis.ErrUnknownLabel)
}

func TestCells(t *testing.T) {
	p := newPlan(t, 2, 2)
	got := p.Cells()
	want := []string{"A,1", "B,1", "A,2", "B,2"}
	require.Len(t, got, len(want))
	for i, c := range got {
		assert.Equal(t, want[i], c.String())
	}

	c, err := p.Cell(2, 1)
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{X: 2, Y: 1, XLabel: "B", YLabel: "1"}, c)

	cols := p.XLabels()
	cols[0] = "mutated"
	assert.Equal(t, []string{"A", "B"}, p.XLabels())
	assert.Equal(t, []string{"1", "2"}, p.YLabels())
}

func TestCustomAxisLabels(t *testing.T) {
	p := newPlan(t, 4, 1,
		axis.WithRange(label.Range{Start: "02AA", End: "02AB", Step: 1, Scheme: label.Numalpha, IncrementPrefix: true}))
	assert.Equal(t, []string{"02AA", "02AB", "C", "D"}, p.XLabels())

	x, y, err := p.Locate("02ab", "1")
	require.NoError(t, err)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
}

//----------------------------------------------------------------------------//
// Neighbors, Components and Span
//----------------------------------------------------------------------------//

func TestNeighbors(t *testing.T) {
	p := newPlan(t, 3, 3)

	n4, err := p.Neighbors(2, 2, grid.Conn4)
	require.NoError(t, err)
	assert.Len(t, n4, 4)
	assert.Equal(t, grid.Cell{X: 2, Y: 1, XLabel: "B", YLabel: "1"}, n4[0], "north first")

	n8, err := p.Neighbors(2, 2, grid.Conn8)
	require.NoError(t, err)
	assert.Len(t, n8, 8)

	corner, err := p.Neighbors(1, 1, grid.Conn8)
	require.NoError(t, err)
	assert.Len(t, corner, 3)

	_, err = p.Neighbors(4, 4, grid.Conn4)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestComponents(t *testing.T) {
	p := newPlan(t, 4, 3)
	// Selected:
	//   A1 B1 .  .
	//   .  .  C2 .
	//   .  .  .  D3
	sel := []grid.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 2}, {X: 4, Y: 3}, {X: 9, Y: 9}, {X: 1, Y: 1}}

	c4 := p.Components(sel, grid.Conn4)
	require.Len(t, c4, 3)
	assert.Equal(t, "A,1", c4[0][0].String())
	assert.Len(t, c4[0], 2)
	assert.Equal(t, "C,2", c4[1][0].String())
	assert.Equal(t, "D,3", c4[2][0].String())

	c8 := p.Components(sel, grid.Conn8)
	require.Len(t, c8, 1)
	assert.Len(t, c8[0], 4)

	assert.Empty(t, p.Components(nil, grid.Conn4))
}

func TestSpan(t *testing.T) {
	p := newPlan(t, 4, 3)
	got, err := p.Span(grid.Cell{X: 3, Y: 3}, grid.Cell{X: 2, Y: 2})
	require.NoError(t, err)
	labels := make([]string, 0, len(got))
	for _, c := range got {
		labels = append(labels, c.String())
	}
	assert.Equal(t, []string{"B,2", "C,2", "B,3", "C,3"}, labels)

	_, err = p.Span(grid.Cell{X: 1, Y: 1}, grid.Cell{X: 5, Y: 1})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}
