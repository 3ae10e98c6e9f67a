package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	maze "github.com/yalue/wilson_maze"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := parse("default.yaml", defaultYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	data := []byte("width: 30\nheight: 12\nshow_solution: true\noutput_file: out.png\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 12, cfg.Height)
	assert.True(t, cfg.Solve)
	assert.Equal(t, "out.png", cfg.Output)
	// Missing keys keep their defaults.
	assert.Equal(t, Default().CellWidth, cfg.CellWidth)
	assert.Equal(t, "wilson", cfg.Algorithm)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.toml")
	data := []byte("width = 8\ncell_width = 16\ncell_height = 4\nrandom_seed = 1234\narrows = true\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Width)
	assert.Equal(t, Default().Height, cfg.Height)
	assert.Equal(t, 16, cfg.CellWidth)
	assert.Equal(t, 4, cfg.CellHeight)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.True(t, cfg.Arrows)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -2 }},
		{"zero cell width", func(c *Config) { c.CellWidth = 0 }},
		{"negative border", func(c *Config) { c.Border = -1 }},
		{"unknown algorithm", func(c *Config) { c.Algorithm = "prim" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, maze.ErrInvalidConfig), "got %v", err)
		})
	}
}
