// Package treemap lays out an ordered sequence of positive sizes as a
// rectangular tiling of a target region, with tile areas proportional to
// the input sizes.
//
// Two layouters are provided: Squarified (the classical squarified-treemap
// heuristic, which keeps tile aspect ratios close to 1) and RowPack (a
// simpler row-based packer). Callers depend only on the Layouter interface
// and pick an implementation once at startup.
package treemap

import "fmt"

// Layouter converts an ordered sequence of positive sizes into rectangles
// tiling the width×height region anchored at (x, y). The result has one
// rect per input size, in input order. The union of the rects covers the
// region exactly; rects do not overlap.
type Layouter interface {
	Layout(sizes []float64, x, y, width, height int) ([]Rect, error)
	Name() string
}

// Default returns the preferred layouter.
func Default() Layouter { return Squarified{} }

// ForName returns the layouter with the given name ("squarified" or "rows").
func ForName(name string) (Layouter, error) {
	switch name {
	case "squarified", "":
		return Squarified{}, nil
	case "rows":
		return RowPack{}, nil
	default:
		return nil, fmt.Errorf("unknown treemap layout: %s (must be 'squarified' or 'rows')", name)
	}
}

// validate rejects degenerate geometry and non-positive sizes.
// Zero items is not an error; callers receive an empty result.
func validate(sizes []float64, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("treemap: target region must have positive dimensions, got %dx%d", width, height)
	}
	for i, s := range sizes {
		if s <= 0 {
			return fmt.Errorf("treemap: size at index %d must be positive, got %v", i, s)
		}
	}
	return nil
}

func sum(sizes []float64) float64 {
	var t float64
	for _, s := range sizes {
		t += s
	}
	return t
}

// round converts a float coordinate to its nearest integer pixel boundary.
// Adjacent tiles share float boundaries, so rounding keeps the tiling exact.
func round(v float64) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
