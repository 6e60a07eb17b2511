package demo

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/couchslider/internal/cache"
	"github.com/depeter/couchslider/internal/config"
	"github.com/depeter/couchslider/internal/slider"
	"github.com/depeter/couchslider/internal/ui"
)

// storyHeaderH is the space taken by the story title and caption.
const storyHeaderH = 70

// StoryScreen shows one configured slider over the sample products.
type StoryScreen struct {
	story  config.StoryConfig
	slider *ui.Slider[Product]
	resize *ui.ResizeNotifier
}

// NewStoryScreen builds the slider for story. imgCache may be nil.
func NewStoryScreen(story config.StoryConfig, imgCache *cache.ImageCache, rn *ui.ResizeNotifier, logState bool) (*StoryScreen, error) {
	render := func(p Product, index int) ui.Node {
		return NewCard(p, index, imgCache)
	}
	s, err := ui.NewSlider(Products(story.Items), render, story.Options())
	if err != nil {
		return nil, fmt.Errorf("story %q: %w", story.Name, err)
	}
	s.Controller().Debug = logState
	s.Active = true

	ss := &StoryScreen{story: story, slider: s, resize: rn}
	s.BoundsFunc = ss.bounds
	return ss, nil
}

// bounds lays the slider out under the header, capped to MaxWidth and
// centered horizontally when a cap is set.
func (ss *StoryScreen) bounds(w, h int) ui.ButtonRect {
	avail := float64(w) - 2*ui.ViewportPadding
	width := avail
	if ss.story.MaxWidth > 0 {
		width = math.Min(width, ss.story.MaxWidth)
	}
	top := float64(ui.StoryBarHeight + storyHeaderH)
	return ui.ButtonRect{
		X: ui.ViewportPadding + (avail-width)/2,
		Y: top,
		W: math.Max(width, 0),
		H: math.Max(float64(h)-top-ui.ViewportPadding, 0),
	}
}

func (ss *StoryScreen) Slider() *ui.Slider[Product] { return ss.slider }

func (ss *StoryScreen) Name() string { return ss.story.Title }

func (ss *StoryScreen) OnEnter() {
	ss.slider.Mount(ss.resize)
}

func (ss *StoryScreen) OnExit() {
	ss.slider.Unmount()
}

// Reset scrolls the slider back to the start.
func (ss *StoryScreen) Reset() {
	ss.slider.Reset()
}

func (ss *StoryScreen) Update() (*ui.ScreenTransition, error) {
	dir, _, _ := ui.InputState()
	ss.slider.Update(dir)
	return nil, nil
}

func (ss *StoryScreen) Draw(dst *ebiten.Image) {
	y := float64(ui.StoryBarHeight + 14)
	ui.DrawText(dst, ss.story.Title, ui.ViewportPadding, y, ui.FontSizeTitle, ui.ColorPrimary)
	ui.DrawText(dst, ss.caption(), ui.ViewportPadding, y+36, ui.FontSizeSmall, ui.ColorTextSecondary)
	ss.slider.Draw(dst)
}

func (ss *StoryScreen) caption() string {
	o := ss.story.Options()
	unit := "px"
	if o.MoveBy == slider.MoveItem {
		unit = "item(s)"
	}
	c := fmt.Sprintf("%s, moves %g %s, gap %g", o.Orientation, o.MoveValue, unit, o.Gap)
	if o.MoveBy == slider.MoveItem {
		c += ", " + o.Alignment.String() + " aligned"
	}
	if o.Responsive {
		c += ", responsive"
	}
	return c
}

// DebugLines implements ui.DebugSource.
func (ss *StoryScreen) DebugLines() []string {
	return append([]string{"story: " + ss.story.Name}, ss.slider.DebugLines()...)
}
