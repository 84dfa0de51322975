package grid

// Components groups the selected cells into contiguous blocks under conn.
// Only X and Y of each input cell are read; out-of-bounds cells and
// duplicates are ignored. Blocks are ordered by their first cell in row-major
// order, and cells within a block are in BFS order from that cell.
//
// Time:   O(n·d), where n = len(selected) and d = 4 or 8.
// Memory: O(W·H) for the selection and visited flags.
func (p *Plan) Components(selected []Cell, conn Connectivity) [][]Cell {
	total := p.Width * p.Height
	chosen := make([]bool, total)
	for _, c := range selected {
		if i, err := p.Index(c.X, c.Y); err == nil {
			chosen[i] = true
		}
	}

	seen := make([]bool, total)
	offsets := conn.offsets()
	var comps [][]Cell

	for i0 := 0; i0 < total; i0++ {
		if !chosen[i0] || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := u%p.Width+1, u/p.Width+1
			comp = append(comp, Cell{X: ux, Y: uy, XLabel: p.xLabels[ux-1], YLabel: p.yLabels[uy-1]})
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !p.InBounds(vx, vy) {
					continue
				}
				vi := (vy-1)*p.Width + (vx - 1)
				if chosen[vi] && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Span returns the inclusive rectangle of cells between corners a and b in
// row-major order. The corners may be given in any order.
func (p *Plan) Span(a, b Cell) ([]Cell, error) {
	if !p.InBounds(a.X, a.Y) {
		return nil, p.boundsErr(a.X, a.Y)
	}
	if !p.InBounds(b.X, b.Y) {
		return nil, p.boundsErr(b.X, b.Y)
	}
	x0, x1 := minmax(a.X, b.X)
	y0, y1 := minmax(a.Y, b.Y)

	out := make([]Cell, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			out = append(out, Cell{X: x, Y: y, XLabel: p.xLabels[x-1], YLabel: p.yLabels[y-1]})
		}
	}
	return out, nil
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
