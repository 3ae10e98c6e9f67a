// This defines an executable for generating, solving and drawing mazes.
//
// Usage:
//
//	create_maze_image -o maze.png           - Generate a maze and save a PNG
//	create_maze_image ascii                 - Print a maze as text
//	create_maze_image list --database <db>  - List archived mazes
//
// Settings come from a YAML or TOML config file (see --config), and any flag
// given on the command line overrides the file.
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	maze "github.com/yalue/wilson_maze"
	"github.com/yalue/wilson_maze/internal/config"
	"github.com/yalue/wilson_maze/internal/storage"
	"github.com/yalue/wilson_maze/raster"
)

// Command-line state shared by every subcommand.
type options struct {
	cfg        config.Config
	configPath string
	verbose    bool
	// Load a maze instead of generating one.
	fromJSON string
	fromID   string
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.Default()}
	root := &cobra.Command{
		Use:   "create_maze_image",
		Short: "Generate a maze and save it as a PNG image",
		Long: `create_maze_image carves a perfect maze using Wilson's algorithm,
optionally solves it, and draws it to a PNG file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImage(cmd.Context(), opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "",
		"Path to a YAML or TOML settings file.")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging.")
	pf.IntVar(&opts.cfg.Width, "cells_wide", opts.cfg.Width,
		"The width of the maze, in grid cells.")
	pf.IntVar(&opts.cfg.Height, "cells_high", opts.cfg.Height,
		"The height of the maze, in grid cells.")
	pf.Int64Var(&opts.cfg.Seed, "random_seed", opts.cfg.Seed,
		"If positive, specifies the random seed to use.")
	pf.StringVar(&opts.cfg.Algorithm, "algorithm", opts.cfg.Algorithm,
		"The generation algorithm. Only \"wilson\" is implemented.")
	pf.BoolVar(&opts.cfg.Solve, "show_solution", opts.cfg.Solve,
		"If set, shows the solution of the maze.")
	pf.StringVar(&opts.cfg.Database, "database", opts.cfg.Database,
		"An optional SQLite file in which generated mazes are archived.")
	pf.StringVar(&opts.fromJSON, "from_json", "",
		"Load the maze from a JSON file instead of generating one.")
	pf.StringVar(&opts.fromID, "from_id", "",
		"Load the maze with this ID from the database instead of "+
			"generating one.")

	f := root.Flags()
	f.StringVarP(&opts.cfg.Output, "output_file", "o", opts.cfg.Output,
		"The name of the .png file to which the maze will be saved.")
	f.StringVar(&opts.cfg.JSONFile, "json_file", opts.cfg.JSONFile,
		"If set, the maze is also saved as JSON to this file.")
	f.IntVar(&opts.cfg.CellWidth, "cell_width", opts.cfg.CellWidth,
		"The width of each cell, in pixels.")
	f.IntVar(&opts.cfg.CellHeight, "cell_height", opts.cfg.CellHeight,
		"The height of each cell, in pixels.")
	f.IntVar(&opts.cfg.Border, "border", opts.cfg.Border,
		"The width of a blank border around the image, in pixels.")
	f.BoolVar(&opts.cfg.Arrows, "arrows", opts.cfg.Arrows,
		"If set, draws arrows marking the start and end of the maze.")

	root.AddCommand(newASCIICmd(opts))
	root.AddCommand(newListCmd(opts))
	return root
}

// Loads the config file, then re-applies any flags the user set explicitly
// so they take priority over the file.
func (o *options) load(cmd *cobra.Command) error {
	fromFlags := o.cfg
	cfg, e := config.Load(o.configPath)
	if e != nil {
		return e
	}
	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	set("cells_wide", func() { cfg.Width = fromFlags.Width })
	set("cells_high", func() { cfg.Height = fromFlags.Height })
	set("random_seed", func() { cfg.Seed = fromFlags.Seed })
	set("algorithm", func() { cfg.Algorithm = fromFlags.Algorithm })
	set("show_solution", func() { cfg.Solve = fromFlags.Solve })
	set("database", func() { cfg.Database = fromFlags.Database })
	set("output_file", func() { cfg.Output = fromFlags.Output })
	set("json_file", func() { cfg.JSONFile = fromFlags.JSONFile })
	set("cell_width", func() { cfg.CellWidth = fromFlags.CellWidth })
	set("cell_height", func() { cfg.CellHeight = fromFlags.CellHeight })
	set("border", func() { cfg.Border = fromFlags.Border })
	set("arrows", func() { cfg.Arrows = fromFlags.Arrows })
	e = cfg.Validate()
	if e != nil {
		return e
	}
	o.cfg = cfg
	loggerFromContext(cmd.Context()).Debug("Loaded settings", "config",
		o.configPath, "width", cfg.Width, "height", cfg.Height,
		"seed", cfg.Seed)
	return nil
}

// Produces the grid to work on: loaded from a JSON file or the archive if
// requested, otherwise freshly generated (and archived, if a database is
// configured).
func obtainGrid(ctx context.Context, o *options) (*maze.Grid, error) {
	logger := loggerFromContext(ctx)
	if o.fromJSON != "" {
		data, e := os.ReadFile(o.fromJSON)
		if e != nil {
			return nil, fmt.Errorf("error reading %s: %w", o.fromJSON, e)
		}
		g, e := maze.DecodeGrid(data)
		if e != nil {
			return nil, fmt.Errorf("error parsing %s: %w", o.fromJSON, e)
		}
		logger.Info("Loaded maze", "file", o.fromJSON, "info", g.GetInfo())
		return g, nil
	}
	if o.fromID != "" {
		if o.cfg.Database == "" {
			return nil, fmt.Errorf("--from_id requires --database")
		}
		store, e := storage.Open(o.cfg.Database)
		if e != nil {
			return nil, e
		}
		defer store.Close()
		g, rec, e := store.Load(ctx, o.fromID)
		if e != nil {
			return nil, e
		}
		logger.Info("Loaded maze", "id", rec.ID, "seed", rec.Seed,
			"algorithm", rec.Algorithm)
		return g, nil
	}

	algorithm, e := maze.ParseAlgorithm(o.cfg.Algorithm)
	if e != nil {
		return nil, e
	}
	p := newProgress(logger)
	g, seed, e := maze.NewMazeWithAlgorithm(o.cfg.Width, o.cfg.Height,
		o.cfg.Seed, algorithm)
	if e != nil {
		return nil, fmt.Errorf("failed generating maze: %w", e)
	}
	p.done(fmt.Sprintf("Generated %dx%d maze with random seed %d",
		g.Width(), g.Height(), seed))

	if o.cfg.Database != "" {
		store, e := storage.Open(o.cfg.Database)
		if e != nil {
			return nil, e
		}
		defer store.Close()
		rec, e := store.Save(ctx, g, seed, algorithm)
		if e != nil {
			return nil, e
		}
		logger.Info("Archived maze", "id", rec.ID, "database",
			o.cfg.Database)
	}
	return g, nil
}

func runImage(ctx context.Context, o *options) error {
	logger := loggerFromContext(ctx)
	if o.cfg.Output == "" {
		return fmt.Errorf("missing output file; run with --help for more " +
			"information")
	}
	g, e := obtainGrid(ctx, o)
	if e != nil {
		return e
	}
	if o.cfg.JSONFile != "" {
		data, e := g.MarshalJSON()
		if e != nil {
			return fmt.Errorf("error encoding maze: %w", e)
		}
		e = os.WriteFile(o.cfg.JSONFile, data, 0o644)
		if e != nil {
			return fmt.Errorf("error writing %s: %w", o.cfg.JSONFile, e)
		}
		logger.Info("Wrote maze JSON", "file", o.cfg.JSONFile)
	}

	rc := raster.Config{
		CellWidth:    o.cfg.CellWidth,
		CellHeight:   o.cfg.CellHeight,
		DrawSolution: o.cfg.Solve,
	}
	p := newProgress(logger)
	pic, e := raster.Render(g, rc)
	if e != nil {
		// The maze can still be drawn without its solution.
		if (pic == nil) || !errors.Is(e, maze.ErrPathNotFound) {
			return e
		}
		logger.Warn("Drawing maze without its solution", "err", e)
	}
	p.done(fmt.Sprintf("Rendered %dx%d image", pic.Bounds().Dx(),
		pic.Bounds().Dy()))

	var finalPic image.Image = pic
	if (o.cfg.Border > 0) || o.cfg.Arrows {
		finalPic, e = drawMazeDecorations(g, pic, rc, o.cfg.Border,
			o.cfg.Arrows)
		if e != nil {
			return fmt.Errorf("error adding maze decorations: %w", e)
		}
	}

	f, e := os.Create(o.cfg.Output)
	if e != nil {
		return fmt.Errorf("error creating output file %s: %w", o.cfg.Output, e)
	}
	defer f.Close()
	e = png.Encode(f, finalPic)
	if e != nil {
		return fmt.Errorf("error writing image to %s: %w", o.cfg.Output, e)
	}
	logger.Info("Image written OK", "file", o.cfg.Output)
	return nil
}

func run() int {
	e := newRootCmd().ExecuteContext(context.Background())
	if e != nil {
		fmt.Fprintln(os.Stderr, e)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
