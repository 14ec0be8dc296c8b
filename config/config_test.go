package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, StoreFileName, cfg.StorePath)
	assert.Equal(t, DefaultLayoutKey, cfg.LayoutKey)
	assert.Equal(t, DefaultSlotsKey, cfg.SlotsKey)
	assert.Equal(t, 8, cfg.CellWidthPx)
	assert.Equal(t, 16, cfg.CellHeightPx)
	assert.Equal(t, 16*time.Millisecond, cfg.FrameInterval())
}

func TestLoadConfig(t *testing.T) {
	t.Run("creates default config when missing", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		cfg := LoadConfig()
		assert.Equal(t, DefaultConfig(), cfg)

		data, err := os.ReadFile(filepath.Join(home, ".safety-board", ConfigFileName))
		require.NoError(t, err)
		var saved Config
		require.NoError(t, json.Unmarshal(data, &saved))
		assert.Equal(t, *DefaultConfig(), saved)
	})

	t.Run("fills missing fields", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		dir := filepath.Join(home, ".safety-board")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName),
			[]byte(`{"layout_key":"custom.layout","cell_width_px":-3}`), 0644))

		cfg := LoadConfig()
		assert.Equal(t, "custom.layout", cfg.LayoutKey)
		assert.Equal(t, DefaultSlotsKey, cfg.SlotsKey)
		assert.Equal(t, 8, cfg.CellWidthPx)
	})

	t.Run("backs up corrupted config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		dir := filepath.Join(home, ".safety-board")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0644))

		cfg := LoadConfig()
		assert.Equal(t, DefaultConfig(), cfg)

		matches, err := filepath.Glob(filepath.Join(dir, ConfigFileName+".corrupt.*"))
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})
}

func TestResolveStorePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	path, err := cfg.ResolveStorePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".safety-board", StoreFileName), path)

	cfg.StorePath = "/var/tmp/board.json"
	path, err = cfg.ResolveStorePath()
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/board.json", path)
}
