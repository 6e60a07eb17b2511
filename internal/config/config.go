package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/depeter/couchslider/internal/slider"
)

type Config struct {
	Window   WindowConfig  `toml:"window"`
	Images   ImageConfig   `toml:"images"`
	Debug    DebugConfig   `toml:"debug"`
	Keybinds KeybindConfig `toml:"keybinds"`
	Stories  []StoryConfig `toml:"story"`
}

type KeybindConfig struct {
	Fullscreen string `toml:"fullscreen"`
	Reset      string `toml:"reset"`
	Debug      string `toml:"debug"`
}

type WindowConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type ImageConfig struct {
	// Enabled turns on network loading of card images.
	Enabled     bool   `toml:"enabled"`
	CacheDir    string `toml:"cache_dir"`
	Concurrency int    `toml:"concurrency"`
	TimeoutSec  int    `toml:"timeout_sec"`
}

type DebugConfig struct {
	Overlay  bool `toml:"overlay"`
	LogState bool `toml:"log_state"`
}

// StoryConfig describes one demo slider.
type StoryConfig struct {
	Name        string             `toml:"name"`
	Title       string             `toml:"title"`
	MoveBy      slider.MoveBy      `toml:"move_by"`
	MoveValue   float64            `toml:"move_value"`
	Gap         float64            `toml:"gap"`
	Orientation slider.Orientation `toml:"orientation"`
	Align       slider.Alignment   `toml:"align"`
	Responsive  bool               `toml:"responsive"`
	// Items is the number of sample products; 0 uses the built-in five.
	Items int `toml:"items"`
	// MaxWidth caps the parent width; 0 means no cap.
	MaxWidth float64 `toml:"max_width"`
}

func (s StoryConfig) Options() slider.Options {
	return slider.Options{
		MoveBy:      s.MoveBy,
		MoveValue:   s.MoveValue,
		Gap:         s.Gap,
		Orientation: s.Orientation,
		Alignment:   s.Align,
		Responsive:  s.Responsive,
	}
}

func DefaultStories() []StoryConfig {
	return []StoryConfig{
		{Name: "pixel", Title: "Move by pixel", MoveBy: slider.MovePixel, MoveValue: 170, MaxWidth: 600},
		{Name: "item", Title: "Move by item", MoveBy: slider.MoveItem, MoveValue: 1, Gap: 16, MaxWidth: 600},
		{Name: "vertical", Title: "Vertical", MoveBy: slider.MovePixel, MoveValue: 250, Orientation: slider.Vertical, Gap: 12, MaxWidth: 600},
		{Name: "centered", Title: "Centered", MoveBy: slider.MoveItem, MoveValue: 1, Align: slider.AlignCenter, Gap: 16, Items: 12},
		{Name: "responsive", Title: "Responsive", MoveBy: slider.MovePixel, MoveValue: 300, Gap: 16, Responsive: true, Items: 20},
	}
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     800,
		},
		Images: ImageConfig{
			Enabled:     true,
			Concurrency: 6,
			TimeoutSec:  10,
		},
		Keybinds: KeybindConfig{
			Fullscreen: "F",
			Reset:      "R",
			Debug:      "F12",
		},
		Stories: DefaultStories(),
	}
}

// Validate checks every story's slider options.
func (c *Config) Validate() error {
	if len(c.Stories) == 0 {
		return fmt.Errorf("config: no stories")
	}
	seen := make(map[string]bool)
	for i, s := range c.Stories {
		if s.Name == "" {
			return fmt.Errorf("config: story %d has no name", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("config: duplicate story %q", s.Name)
		}
		seen[s.Name] = true
		if err := s.Options().Validate(); err != nil {
			return fmt.Errorf("config: story %q: %w", s.Name, err)
		}
		if s.Items < 0 {
			return fmt.Errorf("config: story %q: negative item count", s.Name)
		}
	}
	return nil
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "couchslider"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from the default path. A missing file yields defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file yields defaults.
// Stories in the file replace the defaults wholesale.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	cfg.Stories = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if len(cfg.Stories) == 0 {
		cfg.Stories = DefaultStories()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Exists reports whether a config file is present at the default path.
func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
