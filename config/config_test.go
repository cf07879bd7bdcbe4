package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8, cfg.Game.Rows)
	assert.Equal(t, 8, cfg.Game.Cols)
	assert.Equal(t, 16, cfg.Game.Density)
	assert.Equal(t, "pipebomb-sweeper", cfg.UI.Title)
	assert.False(t, cfg.UI.HideStatusBar)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad(t *testing.T) {
	t.Run("reads a full config", func(t *testing.T) {
		path := writeConfig(t, `
game:
  rows: 12
  cols: 20
  density: 25
ui:
  title: minefield
  hide_status_bar: true
  glyphs:
    hazard: "*"
    flag: "P"
log:
  file: game.log
  level: debug
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.Game.Rows)
		assert.Equal(t, 20, cfg.Game.Cols)
		assert.Equal(t, 25, cfg.Game.Density)
		assert.Equal(t, "minefield", cfg.UI.Title)
		assert.True(t, cfg.UI.HideStatusBar)
		assert.Equal(t, "game.log", cfg.Log.File)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("fills defaults for missing fields", func(t *testing.T) {
		path := writeConfig(t, "game:\n  rows: 10\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.Game.Rows)
		assert.Equal(t, 8, cfg.Game.Cols)
		assert.Equal(t, 16, cfg.Game.Density)
		assert.Equal(t, "pipebomb-sweeper", cfg.UI.Title)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("rejects a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "game: [not a mapping")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestGlyphRunes(t *testing.T) {
	t.Run("empty overrides keep the defaults", func(t *testing.T) {
		gs := GlyphConfig{}.Runes()
		assert.Equal(t, '@', gs.Hazard)
		assert.Equal(t, '>', gs.Flag)
		assert.Equal(t, '.', gs.Closed)
	})

	t.Run("first rune of each override is used", func(t *testing.T) {
		gs := GlyphConfig{Hazard: "*boom", Flag: "⚑", Closed: "#"}.Runes()
		assert.Equal(t, '*', gs.Hazard)
		assert.Equal(t, '⚑', gs.Flag)
		assert.Equal(t, '#', gs.Closed)
	})
}
