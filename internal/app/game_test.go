package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/couchslider/internal/config"
)

func TestParseKey(t *testing.T) {
	k, ok := parseKey("F12")
	require.True(t, ok)
	assert.Equal(t, ebiten.KeyF12, k)

	k, ok = parseKey(" r ")
	require.True(t, ok)
	assert.Equal(t, ebiten.KeyR, k)

	_, ok = parseKey("hyper")
	assert.False(t, ok)
}

func TestNewGameMountsOneStory(t *testing.T) {
	cfg := config.DefaultConfig()
	g, err := NewGame(cfg, nil)
	require.NoError(t, err)
	require.Len(t, g.Stories, len(cfg.Stories))

	assert.Same(t, g.Stories[0], g.Screens.Current())
	assert.Equal(t, 1, g.Resize.Subscribers())
	assert.True(t, g.Stories[0].Slider().Mounted())

	g.Screens.StoryBar.Select(3)
	assert.Same(t, g.Stories[3], g.Screens.Current())
	assert.False(t, g.Stories[0].Slider().Mounted())
	assert.True(t, g.Stories[3].Slider().Mounted())
	assert.Equal(t, 1, g.Resize.Subscribers())

	g.ShowStory(99)
	assert.Same(t, g.Stories[3], g.Screens.Current())

	g.Close()
	assert.Equal(t, 0, g.Resize.Subscribers())
	assert.Nil(t, g.Screens.Current())
}

func TestLayoutNotifiesSliders(t *testing.T) {
	cfg := config.DefaultConfig()
	g, err := NewGame(cfg, nil)
	require.NoError(t, err)

	// the responsive story fills the window width
	g.ShowStory(4)
	s := g.Stories[4].Slider()
	before := s.Viewport().W

	w, h := g.Layout(1600, 900)
	assert.Equal(t, 1600, w)
	assert.Equal(t, 900, h)
	assert.Equal(t, before+320, s.Viewport().W)
}

func TestNewGameRejectsEmptyConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Stories = nil
	_, err := NewGame(cfg, nil)
	assert.Error(t, err)
}
