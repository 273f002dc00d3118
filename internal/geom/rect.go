// Package geom holds the axis-aligned rectangle used for collision tests.
package geom

// Rect is an axis-aligned box in court pixels. Top < Bottom and Left < Right.
type Rect struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(top, left, width, height float64) Rect {
	return Rect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Intersects reports whether a overlaps b and, if so, where a struck b's
// vertical extent: 0 is b's top edge, 1 its bottom edge. Values slightly
// above 1 are possible when a hangs over b's bottom edge.
//
// Overlap is tested by checking that one of a's vertical edges falls inside
// b's horizontal span and one of a's horizontal edges falls inside b's
// vertical span. a is expected to be the smaller body (the ball).
func Intersects(a, b Rect) (float64, bool) {
	leftIn := inSpan(a.Left, b.Left, b.Right)
	rightIn := inSpan(a.Right, b.Left, b.Right)
	topIn := inSpan(a.Top, b.Top, b.Bottom)
	bottomIn := inSpan(a.Bottom, b.Top, b.Bottom)

	if !(leftIn || rightIn) || !(topIn || bottomIn) {
		return 0, false
	}

	h := b.Height()
	if h <= 0 {
		return 0, false
	}
	return (a.Bottom - b.Top) / h, true
}

func inSpan(v, lo, hi float64) bool {
	return lo <= v && v <= hi
}
