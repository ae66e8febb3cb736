package render

import (
	"github.com/fogleman/gg"

	"github.com/versewall/versewall/pkg/palette"
)

// paintBands fills the canvas with vertical equal-width color bands,
// one per palette color. The last band absorbs the rounding remainder
// so the canvas is covered edge to edge.
func paintBands(dc *gg.Context, colors []palette.RGB) {
	if len(colors) == 0 {
		return
	}
	width := dc.Width()
	height := dc.Height()
	bandWidth := (width + len(colors) - 1) / len(colors)
	if bandWidth < 1 {
		bandWidth = 1
	}
	for i, c := range colors {
		left := i * bandWidth
		right := left + bandWidth
		if i == len(colors)-1 || right > width {
			right = width
		}
		if left >= right {
			break
		}
		dc.SetRGB255(int(c.R), int(c.G), int(c.B))
		dc.DrawRectangle(float64(left), 0, float64(right-left), float64(height))
		dc.Fill()
	}
}
