package demo

import (
	"fmt"
	"image"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/couchslider/internal/cache"
	"github.com/depeter/couchslider/internal/slider"
	"github.com/depeter/couchslider/internal/ui"
)

const (
	CardWidth         = 180
	CardPad           = 12
	CardTextHeight    = 72
	PlaceholderHeight = 120
)

// Card renders a Product. Its height follows the image aspect ratio once
// the image has loaded, so the strip can grow after the first layout.
type Card struct {
	Product Product
	Index   int

	mu   sync.Mutex
	img  image.Image
	eimg *ebiten.Image // created on the draw goroutine
}

// NewCard starts loading the product image when imgCache is non-nil.
func NewCard(p Product, index int, imgCache *cache.ImageCache) *Card {
	c := &Card{Product: p, Index: index}
	if imgCache == nil || p.ImageURL == "" {
		return c
	}
	if img := imgCache.Get(p.ImageURL); img != nil {
		c.img = img
		return c
	}
	imgCache.LoadAsync(p.ImageURL, func(img image.Image, err error) {
		if err != nil {
			log.Printf("Failed to load image for %s: %v", p.Title, err)
			return
		}
		c.setImage(img)
	})
	return c
}

func (c *Card) setImage(img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.img = img
	c.eimg = nil
}

func (c *Card) imageHeight() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.img == nil {
		return PlaceholderHeight
	}
	b := c.img.Bounds()
	if b.Dx() == 0 {
		return PlaceholderHeight
	}
	return float64(CardWidth-2*CardPad) * float64(b.Dy()) / float64(b.Dx())
}

func (c *Card) Size() slider.Size {
	return slider.Size{
		W: CardWidth,
		H: CardPad + c.imageHeight() + 8 + CardTextHeight + CardPad,
	}
}

func (c *Card) Draw(dst *ebiten.Image, x, y float64) {
	sz := c.Size()
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(sz.W), float32(sz.H), ui.ColorSurface, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(sz.W), float32(sz.H), 1, ui.ColorBorder, false)

	imgW := float64(CardWidth - 2*CardPad)
	imgH := c.imageHeight()
	ix, iy := x+CardPad, y+CardPad

	c.mu.Lock()
	if c.img != nil && c.eimg == nil {
		c.eimg = ebiten.NewImageFromImage(c.img)
	}
	eimg := c.eimg
	c.mu.Unlock()

	if eimg != nil {
		op := &ebiten.DrawImageOptions{}
		b := eimg.Bounds()
		op.GeoM.Scale(imgW/float64(b.Dx()), imgH/float64(b.Dy()))
		op.GeoM.Translate(ix, iy)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(eimg, op)
	} else {
		vector.DrawFilledRect(dst, float32(ix), float32(iy), float32(imgW), float32(imgH), ui.ColorSurfaceHover, false)
		ui.DrawTextCentered(dst, fmt.Sprintf("#%d", c.Index+1), ix+imgW/2, iy+imgH/2, ui.FontSizeHeading, ui.ColorTextMuted)
	}

	ty := iy + imgH + 8
	title := ui.TruncateText(c.Product.Title, imgW, ui.FontSizeBody)
	tw, _ := ui.MeasureText(title, ui.FontSizeBody)
	ui.DrawText(dst, title, x+(sz.W-tw)/2, ty, ui.FontSizeBody, ui.ColorText)
	ui.DrawTextWrapped(dst, c.Product.Description, ix, ty+26, imgW, ui.FontSizeCaption, 2, ui.ColorTextSecondary)
}
