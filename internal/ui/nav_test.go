package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/depeter/couchslider/internal/slider"
)

func TestDirectionAlong(t *testing.T) {
	tests := []struct {
		dir    Direction
		orient slider.Orientation
		want   slider.Direction
		ok     bool
	}{
		{DirLeft, slider.Horizontal, slider.Backward, true},
		{DirRight, slider.Horizontal, slider.Forward, true},
		{DirUp, slider.Horizontal, slider.Backward, false},
		{DirUp, slider.Vertical, slider.Backward, true},
		{DirDown, slider.Vertical, slider.Forward, true},
		{DirRight, slider.Vertical, slider.Backward, false},
		{DirNone, slider.Horizontal, slider.Backward, false},
	}
	for _, tt := range tests {
		got, ok := tt.dir.Along(tt.orient)
		assert.Equal(t, tt.ok, ok, "dir %d on %s", tt.dir, tt.orient)
		if ok {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestRepeatFires(t *testing.T) {
	assert.False(t, repeatFires(1))
	assert.False(t, repeatFires(repeatDelay-1))
	assert.True(t, repeatFires(repeatDelay))
	assert.False(t, repeatFires(repeatDelay+1))
	assert.True(t, repeatFires(repeatDelay+repeatInterval))
}

func TestTween(t *testing.T) {
	var tw Tween
	tw.Target = 100
	tw.Animate()
	assert.InDelta(t, 100*ScrollAnimSpeed, tw.Value, 1e-9)

	for i := 0; i < 200; i++ {
		tw.Animate()
	}
	assert.Equal(t, 100.0, tw.Value)

	tw.Target = 40
	tw.Snap()
	assert.Equal(t, Tween{Value: 40, Target: 40}, tw)
}

func TestPointInRect(t *testing.T) {
	r := ButtonRect{X: 10, Y: 10, W: 20, H: 20}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(30, 30))
	assert.False(t, r.Contains(31, 20))
	assert.False(t, r.Contains(20, 9))
}

func TestResizeNotifier(t *testing.T) {
	rn := NewResizeNotifier()
	var a, b int
	unsubA := rn.Subscribe(func(w, h int) { a++ })
	unsubB := rn.Subscribe(func(w, h int) { b++ })

	rn.Notify(800, 600)
	rn.Notify(800, 600)
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)

	unsubA()
	unsubA()
	rn.Notify(1024, 768)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, 1, rn.Subscribers())

	w, h := rn.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)

	unsubB()
	assert.Equal(t, 0, rn.Subscribers())
}

func TestStoryBarSelect(t *testing.T) {
	sb := NewStoryBar([]string{"Pixel", "Item", "Vertical"})
	var picked []int
	sb.OnSelect = func(i int) { picked = append(picked, i) }

	sb.Cycle(1)
	sb.Cycle(1)
	sb.Cycle(1)
	sb.Cycle(-1)
	sb.Select(2) // already selected
	assert.Equal(t, []int{1, 2, 0, 2}, picked)
	assert.Equal(t, 2, sb.Selected)

	sb.tabRects = []ButtonRect{
		{X: 20, Y: 10, W: 80, H: 36},
		{X: 110, Y: 10, W: 80, H: 36},
		{X: 200, Y: 10, W: 80, H: 36},
	}
	assert.True(t, sb.HandleClick(120, 20))
	assert.Equal(t, 1, sb.Selected)
	assert.True(t, sb.HandleClick(500, 20))
	assert.Equal(t, 1, sb.Selected)
	assert.False(t, sb.HandleClick(120, StoryBarHeight+5))
}
