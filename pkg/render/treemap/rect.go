package treemap

// Rect is a single tile in a treemap layout.
// Bounds are pixel coordinates: Left/Top inclusive, Right/Bottom exclusive.
type Rect struct {
	Left, Top     int
	Right, Bottom int
}

// Width returns the horizontal span of the rect.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical span of the rect.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Area returns the pixel area of the rect.
func (r Rect) Area() int { return r.Width() * r.Height() }
