package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/couchslider/internal/slider"
)

// drawChevron draws an arrow head at (cx, cy) pointing along dx, dy (unit axis).
func drawChevron(dst *ebiten.Image, cx, cy, r, dx, dy float32, clr color.Color) {
	// tip, then the two arms swept back from it
	tx, ty := cx+dx*r*0.5, cy+dy*r*0.5
	bx, by := cx-dx*r*0.5, cy-dy*r*0.5
	// perpendicular
	px, py := -dy*r*0.7, dx*r*0.7
	vector.StrokeLine(dst, bx+px, by+py, tx, ty, 2.5, clr, true)
	vector.StrokeLine(dst, bx-px, by-py, tx, ty, 2.5, clr, true)
}

// drawArrowButton draws a round previous/next control.
func drawArrowButton(dst *ebiten.Image, r ButtonRect, o slider.Orientation, forward bool) {
	cx := float32(r.X + r.W/2)
	cy := float32(r.Y + r.H/2)
	rad := float32(r.W / 2)
	vector.DrawFilledCircle(dst, cx, cy, rad, ColorButton, true)
	vector.StrokeCircle(dst, cx, cy, rad, 1.5, ColorBorder, true)

	var dx, dy float32
	switch {
	case o == slider.Vertical && forward:
		dy = 1
	case o == slider.Vertical:
		dy = -1
	case forward:
		dx = 1
	default:
		dx = -1
	}
	drawChevron(dst, cx, cy, rad*0.6, dx, dy, ColorText)
}

// drawTabButton draws a story bar button.
func drawTabButton(dst *ebiten.Image, label string, r ButtonRect, selected, focused bool) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	switch {
	case selected:
		vector.DrawFilledRect(dst, x, y, w, h, ColorPrimary, false)
		DrawTextCentered(dst, label, r.X+r.W/2, r.Y+r.H/2, FontSizeBody, ColorBackground)
	default:
		vector.DrawFilledRect(dst, x, y, w, h, ColorSurfaceHover, false)
		DrawTextCentered(dst, label, r.X+r.W/2, r.Y+r.H/2, FontSizeBody, ColorText)
	}
	if focused {
		vector.StrokeRect(dst, x-2, y-2, w+4, h+4, 2, ColorAccent, false)
	}
}
