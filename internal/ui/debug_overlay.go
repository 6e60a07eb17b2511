package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay flips the overlay when pressed is true.
func ToggleDebugOverlay(pressed bool) {
	if pressed {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// SetDebugOverlay forces the overlay on or off.
func SetDebugOverlay(visible bool) {
	debugOverlayVisible = visible
}

// DrawDebugOverlay draws the debug overlay if visible.
func DrawDebugOverlay(screen *ebiten.Image, screenName string, lines []string) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginB = 20.0
	)

	header := fmt.Sprintf("Debug: %s  %.0f fps", screenName, ebiten.ActualFPS())
	if len(lines) == 0 {
		lines = []string{"(no state)"}
	}

	panelW := 0.0
	for _, l := range append([]string{header}, lines...) {
		w, _ := MeasureText(l, FontSizeSmall)
		panelW = max(panelW, w)
	}
	panelW += padX * 2
	panelH := float64(len(lines)+1)*lineH + padY*2

	bounds := screen.Bounds()
	px := float64(bounds.Dx()) - panelW - marginR
	py := float64(bounds.Dy()) - panelH - marginB

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY
	DrawText(screen, header, x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	for _, l := range lines {
		DrawText(screen, l, x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
