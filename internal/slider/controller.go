package slider

import (
	"log"
	"math"
)

// PinTolerance is how close to the end the view must be for it to stay
// pinned to the end when the content grows.
const PinTolerance = 3

// forwardSlack absorbs sub-pixel layout noise in CanGoForward.
const forwardSlack = 0.5

// Direction is a navigation intent.
type Direction int

const (
	Backward Direction = iota
	Forward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// State is the scroll state. The zero value is the mount state.
type State struct {
	Offset      float64
	MaxOffset   float64
	ActiveIndex int
}

// MaxOffset returns how far the content can scroll inside the container.
func MaxOffset(container, content float64) float64 {
	return math.Max(content-container, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Recompute re-derives MaxOffset from freshly measured geometry. A view that
// sat at the end stays pinned there when the content grows; an offset past
// the new end is pulled back.
func Recompute(st State, g Geometry, o Options) State {
	container, ok := g.ContainerSize()
	if !ok {
		return st
	}
	content, ok := g.ContentSize()
	if !ok {
		return st
	}

	prevMax := st.MaxOffset
	st.MaxOffset = MaxOffset(container.Along(o.Orientation), content.Along(o.Orientation))

	if prevMax > 0 && st.MaxOffset > prevMax && math.Abs(st.Offset-prevMax) <= PinTolerance {
		st.Offset = st.MaxOffset
	}
	st.Offset = clamp(st.Offset, 0, st.MaxOffset)
	st.ActiveIndex = clampIndex(st.ActiveIndex, g.ItemCount())
	return st
}

// Navigate computes the state after one step in dir. It never fails: missing
// geometry leaves the state untouched and out-of-range requests saturate.
func Navigate(st State, g Geometry, o Options, dir Direction) State {
	sign := 1.0
	if dir == Backward {
		sign = -1
	}

	if o.MoveBy != MoveItem {
		if _, ok := g.ContainerSize(); !ok {
			return st
		}
		if _, ok := g.ContentSize(); !ok {
			return st
		}
		st.Offset = clamp(st.Offset+sign*o.MoveValue, 0, st.MaxOffset)
		return st
	}

	n := g.ItemCount()
	if n == 0 {
		return st
	}

	if !o.Centered() {
		first, ok := g.ItemRect(0)
		if !ok {
			return st
		}
		step := first.Len(o.Orientation) + o.Gap
		st.Offset = clamp(st.Offset+sign*o.MoveValue*step, 0, st.MaxOffset)
		return st
	}

	container, ok := g.ContainerSize()
	if !ok {
		return st
	}
	idx := clampIndex(st.ActiveIndex+int(sign*math.Round(o.MoveValue)), n)
	r, ok := g.ItemRect(idx)
	if !ok {
		return st
	}
	center := r.Pos(o.Orientation) + r.Len(o.Orientation)/2
	st.ActiveIndex = idx
	st.Offset = clamp(center-container.Along(o.Orientation)/2, 0, st.MaxOffset)
	return st
}

// CanGoBackward reports whether a backward control should be shown.
func CanGoBackward(st State) bool {
	return st.Offset > 0
}

// CanGoForward reports whether the last item still extends past the visible
// end of the viewport. Without item geometry it falls back to comparing the
// offset with MaxOffset.
func CanGoForward(st State, g Geometry, o Options) bool {
	n := g.ItemCount()
	container, okC := g.ContainerSize()
	var last Rect
	okL := false
	if n > 0 {
		last, okL = g.ItemRect(n - 1)
	}
	if !okC || !okL {
		return st.Offset < st.MaxOffset
	}
	return last.End(o.Orientation) > st.Offset+container.Along(o.Orientation)+forwardSlack
}

// Controller binds a State to its options and geometry source.
type Controller struct {
	opts  Options
	state State
	geom  Geometry

	// Debug logs every state transition.
	Debug bool
}

// NewController validates opts and returns a controller in the mount state.
// Call Recompute once geometry is available.
func NewController(opts Options, g Geometry) (*Controller, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Controller{opts: opts, geom: g}, nil
}

func (c *Controller) Options() Options { return c.opts }
func (c *Controller) State() State     { return c.state }

// SetOptions swaps the configuration and recomputes the bounds.
func (c *Controller) SetOptions(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.Orientation != c.opts.Orientation {
		c.state = State{}
	}
	c.opts = opts
	c.Recompute()
	return nil
}

// Reset returns to the mount state.
func (c *Controller) Reset() {
	c.state = State{}
}

func (c *Controller) Recompute() {
	c.apply("recompute", Recompute(c.state, c.geom, c.opts))
}

func (c *Controller) Next() {
	c.apply("next", Navigate(c.state, c.geom, c.opts, Forward))
}

func (c *Controller) Prev() {
	c.apply("prev", Navigate(c.state, c.geom, c.opts, Backward))
}

func (c *Controller) CanPrev() bool { return CanGoBackward(c.state) }
func (c *Controller) CanNext() bool { return CanGoForward(c.state, c.geom, c.opts) }

// Translate returns the content translation for the current offset.
func (c *Controller) Translate() (dx, dy float64) {
	if c.opts.Orientation == Vertical {
		return 0, -c.state.Offset
	}
	return -c.state.Offset, 0
}

func (c *Controller) apply(op string, next State) {
	if c.Debug && next != c.state {
		log.Printf("slider %s: offset %.1f -> %.1f, max %.1f -> %.1f, active %d -> %d",
			op, c.state.Offset, next.Offset, c.state.MaxOffset, next.MaxOffset,
			c.state.ActiveIndex, next.ActiveIndex)
	}
	c.state = next
}
