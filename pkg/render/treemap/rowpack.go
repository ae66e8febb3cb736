package treemap

import "math"

// RowPack is an approximate row-based packer. Rows have a uniform height of
// height/ceil(sqrt(n)); consecutive sizes fill a row until its proportional
// area budget is spent, then the next row starts. Tiles in a row get widths
// proportional to their share of the row, with the last tile in each row and
// the last row absorbing rounding remainders so the region tiles exactly.
//
// The result is not squarified but preserves input order and full coverage,
// which is all the progress map needs.
type RowPack struct{}

// Name identifies the layouter.
func (RowPack) Name() string { return "rows" }

// Layout tiles the region with one rect per size, preserving input order.
func (RowPack) Layout(sizes []float64, x, y, width, height int) ([]Rect, error) {
	if err := validate(sizes, width, height); err != nil {
		return nil, err
	}
	if len(sizes) == 0 {
		return nil, nil
	}

	total := sum(sizes)
	area := float64(width) * float64(height)
	rowHeight := height / int(math.Ceil(math.Sqrt(float64(len(sizes)))))
	if rowHeight < 1 {
		rowHeight = 1
	}
	budget := float64(width * rowHeight)

	// Split the sizes into consecutive rows.
	var rows [][]float64
	var row []float64
	var rowSum float64
	for _, s := range sizes {
		if len(row) > 0 && (rowSum+s)/total*area > budget {
			rows = append(rows, row)
			row = nil
			rowSum = 0
		}
		row = append(row, s)
		rowSum += s
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	// Divide the height among the rows that actually formed, so heavily
	// skewed inputs cannot push rows past the bottom edge.
	rowHeight = height / len(rows)
	if rowHeight < 1 {
		rowHeight = 1
	}

	rects := make([]Rect, 0, len(sizes))
	top := y
	for ri, row := range rows {
		bottom := top + rowHeight
		if ri == len(rows)-1 {
			bottom = y + height
		}
		rowTotal := sum(row)
		left := x
		for i, s := range row {
			right := left + int(float64(width)*(s/rowTotal))
			if right <= left {
				right = left + 1
			}
			if i == len(row)-1 {
				right = x + width
			}
			rects = append(rects, Rect{Left: left, Top: top, Right: right, Bottom: bottom})
			left = right
		}
		top += rowHeight
	}
	return rects, nil
}
