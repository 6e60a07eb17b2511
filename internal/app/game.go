package app

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/couchslider/internal/cache"
	"github.com/depeter/couchslider/internal/config"
	"github.com/depeter/couchslider/internal/demo"
	"github.com/depeter/couchslider/internal/ui"
)

// Game implements ebiten.Game and hosts the slider stories.
type Game struct {
	Config  *config.Config
	Cache   *cache.ImageCache
	Screens *ui.ScreenManager
	Resize  *ui.ResizeNotifier

	Stories []*demo.StoryScreen
}

// NewGame builds one screen per configured story and shows the first.
// imgCache may be nil to run without images.
func NewGame(cfg *config.Config, imgCache *cache.ImageCache) (*Game, error) {
	g := &Game{
		Config:  cfg,
		Cache:   imgCache,
		Screens: ui.NewScreenManager(),
		Resize:  ui.NewResizeNotifier(),
	}
	g.Resize.Notify(cfg.Window.Width, cfg.Window.Height)

	titles := make([]string, 0, len(cfg.Stories))
	for _, story := range cfg.Stories {
		ss, err := demo.NewStoryScreen(story, imgCache, g.Resize, cfg.Debug.LogState)
		if err != nil {
			return nil, fmt.Errorf("new game: %w", err)
		}
		g.Stories = append(g.Stories, ss)
		titles = append(titles, story.Title)
	}
	if len(g.Stories) == 0 {
		return nil, fmt.Errorf("new game: no stories configured")
	}

	bar := ui.NewStoryBar(titles)
	bar.OnSelect = g.ShowStory
	g.Screens.StoryBar = bar
	g.Screens.Replace(g.Stories[0])

	ui.SetDebugOverlay(cfg.Debug.Overlay)
	return g, nil
}

// ShowStory swaps the visible story. The outgoing slider is unmounted.
func (g *Game) ShowStory(index int) {
	if index < 0 || index >= len(g.Stories) {
		return
	}
	if cfg := g.Config; cfg.Debug.LogState {
		log.Printf("Showing story %q", cfg.Stories[index].Name)
	}
	g.Screens.Replace(g.Stories[index])
}

// Close unmounts whatever is still on screen.
func (g *Game) Close() {
	g.Screens.ClearStack()
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	kb := &g.Config.Keybinds
	if keyJustPressed(kb.Fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	ui.ToggleDebugOverlay(keyJustPressed(kb.Debug))

	if keyJustPressed(kb.Reset) {
		if ss, ok := g.Screens.Current().(*demo.StoryScreen); ok {
			ss.Reset()
		}
	}

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)

	name := ""
	if cur := g.Screens.Current(); cur != nil {
		name = cur.Name()
	}
	ui.DrawDebugOverlay(screen, name, g.Screens.DebugLines())
}

// Layout follows the window size so sliders can react to resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Resize.Notify(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
