// Package config loads the settings used by create_maze_image from YAML or
// TOML files, falling back to embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	maze "github.com/yalue/wilson_maze"
)

//go:embed default.yaml
var defaultYAML []byte

// Config holds every setting for a single maze-generation run.
type Config struct {
	// Maze size, in cells.
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	// Cell size in pixels, including the shared border pixels.
	CellWidth  int  `yaml:"cell_width" toml:"cell_width"`
	CellHeight int  `yaml:"cell_height" toml:"cell_height"`
	Solve      bool `yaml:"show_solution" toml:"show_solution"`
	// Non-positive means "pick one from the clock".
	Seed      int64  `yaml:"random_seed" toml:"random_seed"`
	Algorithm string `yaml:"algorithm" toml:"algorithm"`
	// Where to write the PNG image.
	Output string `yaml:"output_file" toml:"output_file"`
	// Where to write the maze's JSON encoding, if anywhere.
	JSONFile string `yaml:"json_file" toml:"json_file"`
	// Extra background pixels around the image.
	Border int `yaml:"border" toml:"border"`
	// Draws start and end arrows in the border.
	Arrows bool `yaml:"arrows" toml:"arrows"`
	// SQLite archive of generated mazes, if any.
	Database string `yaml:"database" toml:"database"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:      20,
		Height:     20,
		CellWidth:  10,
		CellHeight: 10,
		Seed:       -1,
		Algorithm:  "wilson",
	}
}

// Validate checks that all sizes are in range and the algorithm is known.
func (c Config) Validate() error {
	if (c.Width < 1) || (c.Height < 1) {
		return maze.NewError(maze.ErrCodeInvalidConfig,
			"width and height must be at least 1, got %dx%d", c.Width, c.Height)
	}
	if (c.CellWidth < 1) || (c.CellHeight < 1) {
		return maze.NewError(maze.ErrCodeInvalidConfig,
			"cell size must be at least 1x1, got %dx%d", c.CellWidth,
			c.CellHeight)
	}
	if c.Border < 0 {
		return maze.NewError(maze.ErrCodeInvalidConfig,
			"border must not be negative, got %d", c.Border)
	}
	if _, e := maze.ParseAlgorithm(c.Algorithm); e != nil {
		return maze.WrapError(maze.ErrCodeInvalidConfig, e, "bad algorithm")
	}
	return nil
}

// Load reads the configuration.
// Search order: customPath -> ~/.config/wilson_maze/config.yaml ->
// ./maze.yaml -> embedded default. Only an explicit customPath is required to
// exist and parse; the other locations are skipped if unusable.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w",
				customPath, err)
		}
		cfg, err := parse(customPath, data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w",
				customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), "maze.yaml"} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(path, data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse("default.yaml", defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// parse decodes data on top of the defaults, so keys missing from the file
// keep their default values. Files named *.toml are TOML, anything else YAML.
func parse(name string, data []byte) (Config, error) {
	cfg := Default()
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path of name inside the user's config directory,
// or "" if the home directory can't be determined.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wilson_maze", name)
}
