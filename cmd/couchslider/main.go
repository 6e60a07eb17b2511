package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/couchslider/assets/icon"
	"github.com/depeter/couchslider/internal/app"
	"github.com/depeter/couchslider/internal/cache"
	"github.com/depeter/couchslider/internal/config"
	"github.com/depeter/couchslider/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (defaults to the user config dir)")
	offline := flag.Bool("offline", false, "only use images already in the disk cache")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	var imgCache *cache.ImageCache
	if cfg.Images.Enabled || *offline {
		imgCache, err = cache.NewImageCache(imageCacheDir(cfg), cache.Options{
			Timeout:     time.Duration(cfg.Images.TimeoutSec) * time.Second,
			Concurrency: cfg.Images.Concurrency,
			Offline:     *offline,
		})
		if err != nil {
			log.Fatalf("Failed to init image cache: %v", err)
		}
	}

	game, err := app.NewGame(cfg, imgCache)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("CouchSlider")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// loadConfig reads an explicit path, or the user config which is written out on first run.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	if !config.Exists() {
		if err := config.DefaultConfig().Save(); err != nil {
			log.Printf("Could not write default config: %v", err)
		}
	}
	return config.Load()
}

func imageCacheDir(cfg *config.Config) string {
	if cfg.Images.CacheDir != "" {
		return cfg.Images.CacheDir
	}
	if dir, err := config.ConfigDir(); err == nil {
		return filepath.Join(dir, "cache", "images")
	}
	return filepath.Join(os.TempDir(), "couchslider", "images")
}
