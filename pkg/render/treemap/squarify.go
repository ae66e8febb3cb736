package treemap

// Squarified implements the squarified-treemap heuristic (Bruls, Huizing,
// van Wijk): consecutive sizes are grouped into strips laid along the
// shorter side of the remaining region, growing each strip greedily while
// the worst aspect ratio within it does not degrade.
type Squarified struct{}

// Name identifies the layouter.
func (Squarified) Name() string { return "squarified" }

// Layout tiles the region with one rect per size, preserving input order.
func (Squarified) Layout(sizes []float64, x, y, width, height int) ([]Rect, error) {
	if err := validate(sizes, width, height); err != nil {
		return nil, err
	}
	if len(sizes) == 0 {
		return nil, nil
	}

	// Normalize so the sizes sum to the region area.
	total := sum(sizes)
	area := float64(width) * float64(height)
	scaled := make([]float64, len(sizes))
	for i, s := range sizes {
		scaled[i] = s / total * area
	}

	rects := make([]Rect, 0, len(sizes))
	fx, fy := float64(x), float64(y)
	fw, fh := float64(width), float64(height)

	var strip []float64
	for i := 0; i < len(scaled); {
		short := fw
		if fh < fw {
			short = fh
		}
		if len(strip) == 0 || worst(append(strip, scaled[i]), short) <= worst(strip, short) {
			strip = append(strip, scaled[i])
			i++
			continue
		}
		fx, fy, fw, fh = layoutStrip(&rects, strip, fx, fy, fw, fh, false)
		strip = strip[:0]
	}
	if len(strip) > 0 {
		layoutStrip(&rects, strip, fx, fy, fw, fh, true)
	}
	return rects, nil
}

// worst returns the worst (largest) aspect ratio that the strip's tiles
// would have if laid along a side of the given length.
func worst(strip []float64, side float64) float64 {
	var stripSum, min, max float64
	for i, a := range strip {
		stripSum += a
		if i == 0 || a < min {
			min = a
		}
		if i == 0 || a > max {
			max = a
		}
	}
	if stripSum == 0 || side == 0 {
		return 0
	}
	s2 := stripSum * stripSum
	w2 := side * side
	r1 := w2 * max / s2
	r2 := s2 / (w2 * min)
	if r1 > r2 {
		return r1
	}
	return r2
}

// layoutStrip emits one rect per strip item and returns the remaining region.
// The strip is laid along the shorter side: a vertical column when the
// region is wider than tall, a horizontal row otherwise. Tile boundaries
// are cumulative, so rounding shared edges leaves no gaps or overlaps.
// The final strip absorbs accumulated float drift out to the region edge.
func layoutStrip(rects *[]Rect, strip []float64, fx, fy, fw, fh float64, final bool) (float64, float64, float64, float64) {
	stripSum := sum(strip)
	if fw >= fh {
		// Vertical column on the left edge.
		colW := stripSum / fh
		if final {
			colW = fw
		}
		left, right := round(fx), round(fx+colW)
		edge := fy
		for i, a := range strip {
			next := edge + a/colW
			if i == len(strip)-1 {
				next = fy + fh // absorb float drift in the last tile
			}
			*rects = append(*rects, Rect{Left: left, Top: round(edge), Right: right, Bottom: round(next)})
			edge = next
		}
		return fx + colW, fy, fw - colW, fh
	}
	// Horizontal row on the top edge.
	rowH := stripSum / fw
	if final {
		rowH = fh
	}
	top, bottom := round(fy), round(fy+rowH)
	edge := fx
	for i, a := range strip {
		next := edge + a/rowH
		if i == len(strip)-1 {
			next = fx + fw
		}
		*rects = append(*rects, Rect{Left: round(edge), Top: top, Right: round(next), Bottom: bottom})
		edge = next
	}
	return fx, fy + rowH, fw, fh - rowH
}
