package icon

import (
	"image"
	"image/color"
)

var (
	accent   = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	cardDim  = color.RGBA{R: 0x3A, G: 0x3A, B: 0x48, A: 0xFF}
	darkBG   = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	arrowCol = color.RGBA{R: 0xEE, G: 0xEE, B: 0xF2, A: 0xE0}
	glowCol  = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0x50}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRoundedRect(img, 0, 0, s, s, s*0.12, darkBG)
	drawStrip(img, s)
	drawArrow(img, s*0.10, s*0.50, s*0.10, false)
	drawArrow(img, s*0.90, s*0.50, s*0.10, true)
	return img
}

// drawStrip draws three cards with the middle one focused.
func drawStrip(img *image.RGBA, s float64) {
	cardW := s * 0.22
	cardH := s * 0.40
	y := s * 0.30
	gap := s * 0.04
	x := (s - 3*cardW - 2*gap) / 2

	for i := 0; i < 3; i++ {
		cx := x + float64(i)*(cardW+gap)
		if i == 1 {
			fillRoundedRect(img, cx-s*0.02, y-s*0.02, cardW+s*0.04, cardH+s*0.04, s*0.05, glowCol)
			fillRoundedRect(img, cx, y, cardW, cardH, s*0.04, accent)
			continue
		}
		fillRoundedRect(img, cx, y, cardW, cardH, s*0.04, cardDim)
	}

	// position dots under the strip
	dotY := s * 0.82
	for i, dx := range []float64{-0.08, 0, 0.08} {
		c := color.Color(cardDim)
		if i == 1 {
			c = accent
		}
		fillCircle(img, s*(0.5+dx), dotY, s*0.025, c)
	}
}

// drawArrow draws a filled chevron pointing left or right with its tip at (tipX, cy).
func drawArrow(img *image.RGBA, tipX, cy, half float64, right bool) {
	depth := half * 0.9
	bounds := img.Bounds()
	for y := int(cy - half); y <= int(cy+half); y++ {
		if y < 0 || y >= bounds.Max.Y {
			continue
		}
		dy := float64(y) - cy
		if dy < 0 {
			dy = -dy
		}
		reach := depth * (1 - dy/half)
		x0, x1 := tipX-reach, tipX
		if !right {
			x0, x1 = tipX, tipX+reach
		}
		for x := int(x0); x <= int(x1); x++ {
			if x >= 0 && x < bounds.Max.X {
				blendPixel(img, x, y, arrowCol)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, r float64, c color.Color) {
	bounds := img.Bounds()
	for y := int(yf); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := int(xf); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			if insideRounded(float64(x), float64(y), xf, yf, wf, hf, r) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// insideRounded reports whether (fx, fy) lies in the rect once its corners are cut to radius r.
func insideRounded(fx, fy, xf, yf, wf, hf, r float64) bool {
	cx := fx
	switch {
	case fx < xf+r:
		cx = xf + r
	case fx > xf+wf-r:
		cx = xf + wf - r
	}
	cy := fy
	switch {
	case fy < yf+r:
		cy = yf + r
	case fy > yf+hf-r:
		cy = yf + hf - r
	}
	dx, dy := fx-cx, fy-cy
	return dx*dx+dy*dy <= r*r
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	fillRoundedRect(img, cx-r, cy-r, 2*r, 2*r, r, c)
}

// blendPixel alpha-blends c over the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	dst := img.RGBAAt(x, y)
	inv := 0xFFFF - a0
	mix := func(src uint32, d uint8) uint8 {
		return uint8(((src*a0 + uint32(d)*257*inv) / 0xFFFF) >> 8)
	}
	img.SetRGBA(x, y, color.RGBA{R: mix(r0, dst.R), G: mix(g0, dst.G), B: mix(b0, dst.B), A: 0xFF})
}
