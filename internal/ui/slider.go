package ui

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/couchslider/internal/slider"
)

// Node is one rendered slider item.
type Node interface {
	// Size may change between frames, e.g. once an image has loaded.
	Size() slider.Size
	Draw(dst *ebiten.Image, x, y float64)
}

// RenderFunc turns a caller-owned item into a Node.
type RenderFunc[T any] func(item T, index int) Node

// Slider is a clipped strip of items with previous/next controls.
// It lays its nodes out in order along the active axis with Gap between
// neighbours and implements slider.Geometry over that layout.
type Slider[T any] struct {
	items  []T
	render RenderFunc[T]
	nodes  []Node
	ctrl   *slider.Controller

	// parent is the area the host gives the slider.
	parent ButtonRect
	// BoundsFunc maps a window size to parent bounds on resize.
	BoundsFunc func(w, h int) ButtonRect

	anim        Tween
	lastContent slider.Size
	unsubscribe func()

	prevRect ButtonRect
	nextRect ButtonRect

	// Active enables keyboard navigation and the focus highlight.
	Active bool
}

// NewSlider builds a slider over items. Options are validated here so an
// invalid configuration never reaches the screen.
func NewSlider[T any](items []T, render RenderFunc[T], opts slider.Options) (*Slider[T], error) {
	if render == nil {
		return nil, fmt.Errorf("slider: nil render func")
	}
	s := &Slider[T]{render: render}
	ctrl, err := slider.NewController(opts, s)
	if err != nil {
		return nil, fmt.Errorf("slider: %w", err)
	}
	s.ctrl = ctrl
	s.setItems(items)
	return s, nil
}

// Controller exposes the offset controller, mainly for the debug overlay.
func (s *Slider[T]) Controller() *slider.Controller { return s.ctrl }

func (s *Slider[T]) Items() []T { return s.items }

// SetItems replaces the item list wholesale.
func (s *Slider[T]) SetItems(items []T) {
	s.setItems(items)
	s.Recompute()
}

func (s *Slider[T]) setItems(items []T) {
	s.items = items
	s.nodes = make([]Node, len(items))
	for i, item := range items {
		s.nodes[i] = s.render(item, i)
	}
}

// SetOptions applies new movement, gap or axis settings.
func (s *Slider[T]) SetOptions(opts slider.Options) error {
	old := s.ctrl.Options().Orientation
	if err := s.ctrl.SetOptions(opts); err != nil {
		return fmt.Errorf("slider: %w", err)
	}
	s.lastContent, _ = s.ContentSize()
	s.anim.Target = s.ctrl.State().Offset
	if opts.Orientation != old {
		s.anim.Snap()
	}
	return nil
}

// SetBounds sets the parent area and recomputes the scroll bounds.
func (s *Slider[T]) SetBounds(r ButtonRect) {
	s.parent = r
	s.Recompute()
}

// Mount subscribes to window resizes and starts from the mount state.
// Pair every Mount with Unmount.
func (s *Slider[T]) Mount(rn *ResizeNotifier) {
	if s.unsubscribe != nil {
		return
	}
	s.unsubscribe = rn.Subscribe(s.onResize)
	s.ctrl.Reset()
	s.anim = Tween{}
	if w, h := rn.Size(); w > 0 && h > 0 {
		s.onResize(w, h)
		return
	}
	s.Recompute()
}

// Unmount releases the resize subscription. Safe to call repeatedly.
func (s *Slider[T]) Unmount() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Mounted reports whether a resize subscription is held.
func (s *Slider[T]) Mounted() bool { return s.unsubscribe != nil }

func (s *Slider[T]) onResize(w, h int) {
	if s.BoundsFunc != nil {
		s.parent = s.BoundsFunc(w, h)
	}
	s.Recompute()
}

// Recompute refreshes the maximum offset from the current layout.
func (s *Slider[T]) Recompute() {
	s.lastContent, _ = s.ContentSize()
	s.ctrl.Recompute()
	s.anim.Target = s.ctrl.State().Offset
}

// Reset returns to the mount state and re-measures.
func (s *Slider[T]) Reset() {
	s.ctrl.Reset()
	s.Recompute()
	s.anim.Snap()
}

func (s *Slider[T]) Next() { s.Step(slider.Forward) }
func (s *Slider[T]) Prev() { s.Step(slider.Backward) }

// Step navigates one step. The animation continues from wherever it is.
func (s *Slider[T]) Step(dir slider.Direction) {
	if dir == slider.Forward {
		s.ctrl.Next()
	} else {
		s.ctrl.Prev()
	}
	s.anim.Target = s.ctrl.State().Offset
}

func (s *Slider[T]) CanPrev() bool { return s.ctrl.CanPrev() }
func (s *Slider[T]) CanNext() bool { return s.ctrl.CanNext() }

// Update polls the layout for size changes and handles input.
// Returns true if dir was consumed.
func (s *Slider[T]) Update(dir Direction) (consumed bool) {
	s.PollContent()

	if mx, my, clicked := MouseJustClicked(); clicked && s.HandleClick(mx, my) {
		return true
	}

	if mx, my := ebiten.CursorPosition(); s.HandleWheel(mx, my) {
		return true
	}

	if !s.Active {
		return false
	}
	d, ok := dir.Along(s.ctrl.Options().Orientation)
	if !ok {
		return false
	}
	before := s.ctrl.State()
	s.Step(d)
	return s.ctrl.State() != before
}

// PollContent recomputes when the content size changed since the last
// measurement. Returns true if it did.
func (s *Slider[T]) PollContent() bool {
	c, ok := s.ContentSize()
	if !ok || c == s.lastContent {
		return false
	}
	s.Recompute()
	return true
}

// HandleClick steps when (mx, my) hits a visible arrow button.
func (s *Slider[T]) HandleClick(mx, my int) bool {
	s.layoutButtons()
	if s.CanPrev() && s.prevRect.Contains(mx, my) {
		s.Prev()
		return true
	}
	if s.CanNext() && s.nextRect.Contains(mx, my) {
		s.Next()
		return true
	}
	return false
}

// HandleWheel steps on mouse wheel input while the cursor is over the viewport.
func (s *Slider[T]) HandleWheel(mx, my int) bool {
	vp := s.Viewport()
	if !vp.Contains(mx, my) {
		return false
	}
	wx, wy := MouseWheelDelta()
	delta := wy
	if s.ctrl.Options().Orientation == slider.Horizontal && wx != 0 {
		delta = wx
	}
	switch {
	case delta > 0:
		s.Prev()
	case delta < 0:
		s.Next()
	default:
		return false
	}
	return true
}

// ContainerSize implements slider.Geometry.
func (s *Slider[T]) ContainerSize() (slider.Size, bool) {
	if s.parent.W <= 0 || s.parent.H <= 0 {
		return slider.Size{}, false
	}
	if s.ctrl.Options().Responsive {
		return slider.Size{W: s.parent.W, H: s.parent.H}, true
	}
	// sized to content, capped by the parent
	content, _ := s.ContentSize()
	return slider.Size{W: math.Min(content.W, s.parent.W), H: math.Min(content.H, s.parent.H)}, true
}

// ContentSize implements slider.Geometry.
func (s *Slider[T]) ContentSize() (slider.Size, bool) {
	o := s.ctrl.Options()
	var along, cross float64
	for i, n := range s.nodes {
		sz := n.Size()
		if o.Orientation == slider.Vertical {
			along += sz.H
			cross = math.Max(cross, sz.W)
		} else {
			along += sz.W
			cross = math.Max(cross, sz.H)
		}
		if i < len(s.nodes)-1 {
			along += o.Gap
		}
	}
	if o.Orientation == slider.Vertical {
		return slider.Size{W: cross, H: along}, true
	}
	return slider.Size{W: along, H: cross}, true
}

// ItemCount implements slider.Geometry.
func (s *Slider[T]) ItemCount() int { return len(s.nodes) }

// ItemRect implements slider.Geometry.
func (s *Slider[T]) ItemRect(i int) (slider.Rect, bool) {
	if i < 0 || i >= len(s.nodes) {
		return slider.Rect{}, false
	}
	return s.layout()[i], true
}

// layout places every node relative to the start of the strip.
func (s *Slider[T]) layout() []slider.Rect {
	o := s.ctrl.Options()
	rects := make([]slider.Rect, len(s.nodes))
	pos := 0.0
	for i, n := range s.nodes {
		sz := n.Size()
		if o.Orientation == slider.Vertical {
			rects[i] = slider.Rect{Y: pos, W: sz.W, H: sz.H}
			pos += sz.H + o.Gap
		} else {
			rects[i] = slider.Rect{X: pos, W: sz.W, H: sz.H}
			pos += sz.W + o.Gap
		}
	}
	return rects
}

// Viewport returns the on-screen clipping rectangle.
func (s *Slider[T]) Viewport() ButtonRect {
	c, ok := s.ContainerSize()
	if !ok {
		return ButtonRect{}
	}
	return ButtonRect{X: s.parent.X, Y: s.parent.Y, W: c.W, H: c.H}
}

func (s *Slider[T]) layoutButtons() {
	vp := s.Viewport()
	const b = ArrowButtonSize
	if s.ctrl.Options().Orientation == slider.Vertical {
		cx := vp.X + vp.W/2 - b/2
		s.prevRect = ButtonRect{X: cx, Y: vp.Y, W: b, H: b}
		s.nextRect = ButtonRect{X: cx, Y: vp.Y + vp.H - b, W: b, H: b}
		return
	}
	cy := vp.Y + vp.H/2 - b/2
	s.prevRect = ButtonRect{X: vp.X, Y: cy, W: b, H: b}
	s.nextRect = ButtonRect{X: vp.X + vp.W - b, Y: cy, W: b, H: b}
}

// Draw renders the visible part of the strip and the arrow buttons.
func (s *Slider[T]) Draw(dst *ebiten.Image) {
	s.anim.Animate()

	vp := s.Viewport()
	if vp.W <= 0 || vp.H <= 0 {
		return
	}
	o := s.ctrl.Options()
	st := s.ctrl.State()

	clipRect := image.Rect(int(vp.X), int(vp.Y), int(math.Ceil(vp.X+vp.W)), int(math.Ceil(vp.Y+vp.H)))
	clip, ok := dst.SubImage(clipRect).(*ebiten.Image)
	if !ok {
		return
	}

	visible := slider.Size{W: vp.W, H: vp.H}.Along(o.Orientation)
	for i, r := range s.layout() {
		pos := r.Pos(o.Orientation) - s.anim.Value
		if pos+r.Len(o.Orientation) < 0 || pos > visible {
			continue
		}
		x, y := vp.X+r.X, vp.Y+r.Y
		if o.Orientation == slider.Vertical {
			y -= s.anim.Value
		} else {
			x -= s.anim.Value
		}

		if s.Active && o.Centered() && i == st.ActiveIndex {
			vector.StrokeRect(clip, float32(x-FocusPad/2), float32(y-FocusPad/2),
				float32(r.W+FocusPad), float32(r.H+FocusPad), FocusPad, ColorFocusBorder, false)
		}
		s.nodes[i].Draw(clip, x, y)
	}

	s.layoutButtons()
	if s.CanPrev() {
		drawArrowButton(dst, s.prevRect, o.Orientation, false)
	}
	if s.CanNext() {
		drawArrowButton(dst, s.nextRect, o.Orientation, true)
	}
}

// DebugLines describes the live scroll state.
func (s *Slider[T]) DebugLines() []string {
	st := s.ctrl.State()
	o := s.ctrl.Options()
	c, _ := s.ContainerSize()
	content, _ := s.ContentSize()
	return []string{
		fmt.Sprintf("move=%s value=%.0f gap=%.0f %s align=%s responsive=%t",
			o.MoveBy, o.MoveValue, o.Gap, o.Orientation, o.Alignment, o.Responsive),
		fmt.Sprintf("offset=%.1f max=%.1f active=%d shown=%.1f",
			st.Offset, st.MaxOffset, st.ActiveIndex, s.anim.Value),
		fmt.Sprintf("container=%.0fx%.0f content=%.0fx%.0f items=%d",
			c.W, c.H, content.W, content.H, len(s.nodes)),
		fmt.Sprintf("prev=%t next=%t mounted=%t", s.CanPrev(), s.CanNext(), s.Mounted()),
	}
}
