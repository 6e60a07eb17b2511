package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGeometry lays out equal items along one axis.
type fakeGeometry struct {
	orient     Orientation
	container  float64
	items      []float64 // lengths along the axis
	gap        float64
	cross      float64
	unmeasured bool
}

func strip(n int, itemLen, gap, container float64) *fakeGeometry {
	items := make([]float64, n)
	for i := range items {
		items[i] = itemLen
	}
	return &fakeGeometry{container: container, items: items, gap: gap, cross: 50}
}

func (f *fakeGeometry) size(along float64) Size {
	if f.orient == Vertical {
		return Size{W: f.cross, H: along}
	}
	return Size{W: along, H: f.cross}
}

func (f *fakeGeometry) ContainerSize() (Size, bool) {
	if f.unmeasured {
		return Size{}, false
	}
	return f.size(f.container), true
}

func (f *fakeGeometry) ContentSize() (Size, bool) {
	if f.unmeasured {
		return Size{}, false
	}
	total := 0.0
	for i, l := range f.items {
		total += l
		if i < len(f.items)-1 {
			total += f.gap
		}
	}
	return f.size(total), true
}

func (f *fakeGeometry) ItemCount() int { return len(f.items) }

func (f *fakeGeometry) ItemRect(i int) (Rect, bool) {
	if f.unmeasured || i < 0 || i >= len(f.items) {
		return Rect{}, false
	}
	pos := 0.0
	for j := 0; j < i; j++ {
		pos += f.items[j] + f.gap
	}
	if f.orient == Vertical {
		return Rect{Y: pos, W: f.cross, H: f.items[i]}, true
	}
	return Rect{X: pos, W: f.items[i], H: f.cross}, true
}

func TestMaxOffset(t *testing.T) {
	assert.Equal(t, 600.0, MaxOffset(600, 1200))
	assert.Equal(t, 0.0, MaxOffset(600, 300))
	assert.Equal(t, 0.0, MaxOffset(600, 600))
}

func TestRecomputeIdempotent(t *testing.T) {
	g := strip(10, 100, 0, 300)
	o := Options{MoveBy: MovePixel, MoveValue: 50}

	st := Recompute(State{Offset: 120}, g, o)
	require.Equal(t, 700.0, st.MaxOffset)
	again := Recompute(st, g, o)
	assert.Equal(t, st, again)
}

func TestRecomputePinsToEnd(t *testing.T) {
	g := strip(10, 100, 0, 300)
	o := Options{MoveBy: MovePixel, MoveValue: 50}

	st := Recompute(State{}, g, o)
	st.Offset = st.MaxOffset

	g.items = append(g.items, 100, 100)
	st = Recompute(st, g, o)
	assert.Equal(t, 900.0, st.MaxOffset)
	assert.Equal(t, 900.0, st.Offset)
}

func TestRecomputePinTolerance(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   float64
	}{
		{name: "within tolerance", offset: 697, want: 800},
		{name: "at tolerance edge", offset: 703, want: 800},
		{name: "outside tolerance", offset: 690, want: 690},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := strip(10, 100, 0, 300)
			o := Options{MoveBy: MovePixel, MoveValue: 50}
			st := State{Offset: tt.offset, MaxOffset: 700}
			g.items = append(g.items, 100)
			st = Recompute(st, g, o)
			assert.Equal(t, 800.0, st.MaxOffset)
			assert.Equal(t, tt.want, st.Offset)
		})
	}
}

func TestRecomputeDoesNotPinFromZeroMax(t *testing.T) {
	g := strip(2, 100, 0, 300)
	o := Options{MoveBy: MovePixel, MoveValue: 50}
	st := Recompute(State{}, g, o)
	require.Equal(t, 0.0, st.MaxOffset)

	g.items = append(g.items, 100, 100)
	st = Recompute(st, g, o)
	assert.Equal(t, 100.0, st.MaxOffset)
	assert.Equal(t, 0.0, st.Offset)
}

func TestRecomputeShrinkClampsOffset(t *testing.T) {
	g := strip(10, 100, 0, 300)
	o := Options{MoveBy: MoveItem, MoveValue: 1, Alignment: AlignCenter}
	st := State{Offset: 650, MaxOffset: 700, ActiveIndex: 9}

	g.items = g.items[:5]
	st = Recompute(st, g, o)
	assert.Equal(t, 200.0, st.MaxOffset)
	assert.Equal(t, 200.0, st.Offset)
	assert.Equal(t, 4, st.ActiveIndex)
}

func TestRecomputeUnmeasuredIsNoop(t *testing.T) {
	g := strip(10, 100, 0, 300)
	g.unmeasured = true
	st := State{Offset: 40, MaxOffset: 700, ActiveIndex: 2}
	assert.Equal(t, st, Recompute(st, g, Options{MoveValue: 10}))
}

func TestNavigatePixel(t *testing.T) {
	g := strip(12, 100, 0, 600)
	o := Options{MoveBy: MovePixel, MoveValue: 170}
	st := Recompute(State{}, g, o)
	require.Equal(t, 600.0, st.MaxOffset)

	for i := 0; i < 7; i++ {
		st = Navigate(st, g, o, Forward)
	}
	assert.Equal(t, 600.0, st.Offset)

	eighth := Navigate(st, g, o, Forward)
	assert.Equal(t, st, eighth)
}

func TestNavigateMonotone(t *testing.T) {
	for _, mode := range []Options{
		{MoveBy: MovePixel, MoveValue: 170},
		{MoveBy: MoveItem, MoveValue: 2},
		{MoveBy: MoveItem, MoveValue: 1, Alignment: AlignCenter},
		{MoveBy: MoveItem, MoveValue: 3, Gap: 12, Orientation: Vertical},
	} {
		t.Run(mode.MoveBy.String()+"/"+mode.Alignment.String()+"/"+mode.Orientation.String(), func(t *testing.T) {
			g := strip(10, 100, mode.Gap, 300)
			g.orient = mode.Orientation
			st := Recompute(State{}, g, mode)

			prev := st.Offset
			for i := 0; i < 15; i++ {
				st = Navigate(st, g, mode, Forward)
				require.GreaterOrEqual(t, st.Offset, prev)
				require.LessOrEqual(t, st.Offset, st.MaxOffset)
				prev = st.Offset
			}
			assert.Equal(t, st.MaxOffset, st.Offset)

			for i := 0; i < 15; i++ {
				st = Navigate(st, g, mode, Backward)
				require.LessOrEqual(t, st.Offset, prev)
				require.GreaterOrEqual(t, st.Offset, 0.0)
				prev = st.Offset
			}
			assert.Equal(t, 0.0, st.Offset)
		})
	}
}

func TestNavigateCenter(t *testing.T) {
	g := strip(10, 100, 0, 300)
	o := Options{MoveBy: MoveItem, MoveValue: 1, Alignment: AlignCenter}
	st := Recompute(State{}, g, o)

	st = Navigate(st, g, o, Forward)
	assert.Equal(t, 1, st.ActiveIndex)
	assert.Equal(t, 0.0, st.Offset)

	st = Navigate(st, g, o, Forward)
	assert.Equal(t, 2, st.ActiveIndex)
	assert.Equal(t, 100.0, st.Offset)

	for i := 0; i < 20; i++ {
		st = Navigate(st, g, o, Forward)
	}
	assert.Equal(t, 9, st.ActiveIndex)
	assert.Equal(t, 700.0, st.Offset)

	st = Navigate(st, g, o, Backward)
	assert.Equal(t, 8, st.ActiveIndex)
	assert.Equal(t, 700.0, st.Offset)
}

func TestNavigateCenterUnevenItems(t *testing.T) {
	g := &fakeGeometry{container: 300, items: []float64{100, 300, 50, 200, 100}, gap: 10, cross: 50}
	o := Options{MoveBy: MoveItem, MoveValue: 2, Gap: 10, Alignment: AlignCenter}
	st := Recompute(State{}, g, o)
	require.Equal(t, 490.0, st.MaxOffset)

	// item 2 sits at 420 with length 50
	st = Navigate(st, g, o, Forward)
	assert.Equal(t, 2, st.ActiveIndex)
	assert.Equal(t, 295.0, st.Offset)
}

func TestNavigateEdge(t *testing.T) {
	g := strip(10, 100, 0, 300)
	o := Options{MoveBy: MoveItem, MoveValue: 2}
	st := Recompute(State{}, g, o)

	st = Navigate(st, g, o, Forward)
	assert.Equal(t, 200.0, st.Offset)
	st = Navigate(st, g, o, Forward)
	assert.Equal(t, 400.0, st.Offset)
	assert.Equal(t, 0, st.ActiveIndex)

	st = Navigate(st, g, o, Backward)
	assert.Equal(t, 200.0, st.Offset)
}

func TestNavigateEdgeWithGap(t *testing.T) {
	g := strip(10, 100, 20, 300)
	o := Options{MoveBy: MoveItem, MoveValue: 1, Gap: 20}
	st := Recompute(State{}, g, o)
	require.Equal(t, 880.0, st.MaxOffset)

	st = Navigate(st, g, o, Forward)
	assert.Equal(t, 120.0, st.Offset)
}

func TestNavigateVertical(t *testing.T) {
	g := strip(6, 250, 0, 500)
	g.orient = Vertical
	o := Options{MoveBy: MovePixel, MoveValue: 250, Orientation: Vertical}
	st := Recompute(State{}, g, o)
	require.Equal(t, 1000.0, st.MaxOffset)

	st = Navigate(st, g, o, Forward)
	assert.Equal(t, 250.0, st.Offset)
}

func TestNavigateEmpty(t *testing.T) {
	g := strip(0, 100, 0, 300)
	for _, o := range []Options{
		{MoveBy: MovePixel, MoveValue: 100},
		{MoveBy: MoveItem, MoveValue: 1},
		{MoveBy: MoveItem, MoveValue: 1, Alignment: AlignCenter},
	} {
		st := Recompute(State{}, g, o)
		assert.Equal(t, 0.0, st.MaxOffset)
		assert.Equal(t, st, Navigate(st, g, o, Forward))
		assert.Equal(t, st, Navigate(st, g, o, Backward))
	}
}

func TestNavigateUnmeasuredIsNoop(t *testing.T) {
	for _, o := range []Options{
		{MoveBy: MovePixel, MoveValue: 250},
		{MoveBy: MoveItem, MoveValue: 1},
		{MoveBy: MoveItem, MoveValue: 1, Alignment: AlignCenter},
	} {
		g := strip(10, 100, 0, 300)
		st := Recompute(State{}, g, o)
		require.Equal(t, 700.0, st.MaxOffset)
		st = Navigate(st, g, o, Forward)

		// e.g. the window was minimised
		g.unmeasured = true
		assert.Equal(t, st, Navigate(st, g, o, Forward), "%s", o.MoveBy)
		assert.Equal(t, st, Navigate(st, g, o, Backward), "%s", o.MoveBy)
	}
}

func TestNavigateNegativeMoveValue(t *testing.T) {
	g := strip(10, 100, 0, 300)
	o := Options{MoveBy: MovePixel, MoveValue: -170}
	st := Recompute(State{}, g, o)

	// forward with a negative step saturates at zero
	st = Navigate(st, g, o, Forward)
	assert.Equal(t, 0.0, st.Offset)
	// backward moves forward
	st = Navigate(st, g, o, Backward)
	assert.Equal(t, 170.0, st.Offset)
}

func TestCanGo(t *testing.T) {
	g := strip(10, 100, 0, 300)
	o := Options{MoveBy: MovePixel, MoveValue: 100}
	st := Recompute(State{}, g, o)

	assert.False(t, CanGoBackward(st))
	assert.True(t, CanGoForward(st, g, o))

	st.Offset = 699.8
	assert.True(t, CanGoBackward(st))
	assert.False(t, CanGoForward(st, g, o))

	st.Offset = st.MaxOffset
	assert.False(t, CanGoForward(st, g, o))

	short := strip(2, 100, 0, 300)
	assert.False(t, CanGoForward(Recompute(State{}, short, o), short, o))
}

func TestCanGoForwardFallback(t *testing.T) {
	g := strip(10, 100, 0, 300)
	g.unmeasured = true
	assert.True(t, CanGoForward(State{Offset: 10, MaxOffset: 20}, g, Options{}))
	assert.False(t, CanGoForward(State{Offset: 20, MaxOffset: 20}, g, Options{}))
}

func TestController(t *testing.T) {
	g := strip(10, 100, 0, 300)
	_, err := NewController(Options{MoveBy: MovePixel}, g)
	require.ErrorIs(t, err, ErrInvalidMoveValue)

	c, err := NewController(Options{MoveBy: MoveItem, MoveValue: 1}, g)
	require.NoError(t, err)
	c.Recompute()
	assert.Equal(t, 700.0, c.State().MaxOffset)
	assert.False(t, c.CanPrev())

	c.Next()
	assert.Equal(t, 100.0, c.State().Offset)
	dx, dy := c.Translate()
	assert.Equal(t, -100.0, dx)
	assert.Equal(t, 0.0, dy)
	assert.True(t, c.CanPrev())

	c.Prev()
	assert.Equal(t, 0.0, c.State().Offset)

	c.Next()
	require.NoError(t, c.SetOptions(Options{MoveBy: MoveItem, MoveValue: 1, Orientation: Vertical}))
	assert.Equal(t, 0.0, c.State().Offset)

	require.Error(t, c.SetOptions(Options{MoveBy: MoveItem, MoveValue: 1, Gap: -1}))
	assert.Equal(t, Vertical, c.Options().Orientation)

	c.Reset()
	assert.Equal(t, State{}, c.State())
}
