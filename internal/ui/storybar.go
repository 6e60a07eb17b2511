package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StoryBar is the tab row drawn at the top of every story.
type StoryBar struct {
	Titles   []string
	Selected int

	// OnSelect is called with the new index whenever the selection changes.
	OnSelect func(index int)

	tabRects []ButtonRect // set during Draw
	hovered  int
}

func NewStoryBar(titles []string) *StoryBar {
	return &StoryBar{Titles: titles, hovered: -1}
}

// Select switches to the story at index, wrapping around either end.
func (sb *StoryBar) Select(index int) {
	n := len(sb.Titles)
	if n == 0 {
		return
	}
	index = ((index % n) + n) % n
	if index == sb.Selected {
		return
	}
	sb.Selected = index
	if sb.OnSelect != nil {
		sb.OnSelect(index)
	}
}

// Cycle moves the selection by delta.
func (sb *StoryBar) Cycle(delta int) {
	sb.Select(sb.Selected + delta)
}

// HandleClick selects the tab under (mx, my). Clicks anywhere in the bar are consumed.
func (sb *StoryBar) HandleClick(mx, my int) bool {
	if float64(my) >= StoryBarHeight {
		return false
	}
	for i, r := range sb.tabRects {
		if r.Contains(mx, my) {
			sb.Select(i)
			break
		}
	}
	return true
}

// Update handles Tab/Shift+Tab and clicks. Returns true if input was consumed.
func (sb *StoryBar) Update() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			sb.Cycle(-1)
		} else {
			sb.Cycle(1)
		}
		return true
	}

	mx, my := ebiten.CursorPosition()
	sb.hovered = -1
	for i, r := range sb.tabRects {
		if r.Contains(mx, my) {
			sb.hovered = i
		}
	}

	if mx, my, clicked := MouseJustClicked(); clicked {
		return sb.HandleClick(mx, my)
	}
	return false
}

func (sb *StoryBar) Draw(dst *ebiten.Image) {
	w := float32(dst.Bounds().Dx())
	vector.DrawFilledRect(dst, 0, 0, w, StoryBarHeight, ColorSurface, false)
	vector.StrokeLine(dst, 0, StoryBarHeight, w, StoryBarHeight, 1, ColorBorder, false)

	const btnH = StoryBarHeight - 20
	x := float64(StoryBarPadding)
	y := float64(StoryBarHeight-btnH) / 2

	if len(sb.tabRects) != len(sb.Titles) {
		sb.tabRects = make([]ButtonRect, len(sb.Titles))
	}
	for i, title := range sb.Titles {
		tw, _ := MeasureText(title, FontSizeBody)
		r := ButtonRect{X: x, Y: y, W: tw + 28, H: btnH}
		sb.tabRects[i] = r
		drawTabButton(dst, title, r, i == sb.Selected, i == sb.hovered)
		x += r.W + 10
	}

	hint := "Tab: next story   arrows: navigate   R: reset"
	hw, _ := MeasureText(hint, FontSizeSmall)
	DrawText(dst, hint, float64(w)-hw-StoryBarPadding, y+10, FontSizeSmall, ColorTextMuted)
}
