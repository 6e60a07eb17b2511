package slider

// Size is a measured width and height in pixels.
type Size struct {
	W, H float64
}

// Along returns the extent on the active axis.
func (s Size) Along(o Orientation) float64 {
	if o == Vertical {
		return s.H
	}
	return s.W
}

// Rect is an item's position relative to the start of the content strip.
type Rect struct {
	X, Y, W, H float64
}

// Pos returns the leading coordinate on the active axis.
func (r Rect) Pos(o Orientation) float64 {
	if o == Vertical {
		return r.Y
	}
	return r.X
}

// Len returns the extent on the active axis.
func (r Rect) Len(o Orientation) float64 {
	if o == Vertical {
		return r.H
	}
	return r.W
}

// End returns the trailing coordinate on the active axis.
func (r Rect) End(o Orientation) float64 {
	return r.Pos(o) + r.Len(o)
}

// Geometry is implemented by whatever renders the slider. A false second
// return means the value cannot be measured yet.
type Geometry interface {
	// ContainerSize is the size of the clipping viewport.
	ContainerSize() (Size, bool)
	// ContentSize is the total size of the laid-out strip, gaps included.
	ContentSize() (Size, bool)
	ItemCount() int
	ItemRect(i int) (Rect, bool)
}
