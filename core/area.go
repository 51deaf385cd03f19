package core

// Bounds is a rectangle in viewport coordinates (pixels or terminal cells)
// Width and Height are not validated, callers treat non-positive sizes as unmeasured
type Bounds struct {
	Left, Top     float64
	Width, Height float64
}

// Right returns the exclusive right edge
func (b Bounds) Right() float64 { return b.Left + b.Width }

// Bottom returns the exclusive bottom edge
func (b Bounds) Bottom() float64 { return b.Top + b.Height }

// Empty reports whether the bounds cover no area
func (b Bounds) Empty() bool { return b.Width <= 0 || b.Height <= 0 }

// Contains checks if point is within bounds, right and bottom edges inclusive
func (b Bounds) Contains(x, y float64) bool {
	if b.Empty() {
		return false
	}
	return x >= b.Left && x <= b.Right() && y >= b.Top && y <= b.Bottom()
}
