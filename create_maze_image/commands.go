package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	maze "github.com/yalue/wilson_maze"
	"github.com/yalue/wilson_maze/internal/storage"
)

var (
	solutionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
)

func newASCIICmd(opts *options) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "ascii",
		Short: "Print a maze as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, e := obtainGrid(cmd.Context(), opts)
			if e != nil {
				return e
			}
			var path maze.Path
			if opts.cfg.Solve {
				path, e = maze.Solve(g)
				if e != nil {
					if !errors.Is(e, maze.ErrPathNotFound) {
						return e
					}
					loggerFromContext(cmd.Context()).Warn(
						"Printing maze without its solution", "err", e)
				}
			}
			var highlight func(string) string
			if !plain {
				highlight = func(s string) string {
					return solutionStyle.Render(s)
				}
			}
			_, e = fmt.Fprint(cmd.OutOrStdout(), g.ASCII(path, highlight))
			return e
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false,
		"Don't color the solution path.")
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mazes archived in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cfg.Database == "" {
				return fmt.Errorf("list requires --database")
			}
			if _, e := os.Stat(opts.cfg.Database); e != nil {
				return fmt.Errorf("can't open database %s: %w",
					opts.cfg.Database, e)
			}
			store, e := storage.Open(opts.cfg.Database)
			if e != nil {
				return e
			}
			defer store.Close()
			records, e := store.List(cmd.Context(), limit)
			if e != nil {
				return e
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf(
				"%-36s  %-9s  %-20s  %-8s  %s", "ID", "SIZE", "SEED",
				"ALGO", "CREATED")))
			for _, r := range records {
				fmt.Fprintf(out, "%-36s  %-9s  %-20d  %-8s  %s\n", r.ID,
					fmt.Sprintf("%dx%d", r.Width, r.Height), r.Seed,
					r.Algorithm, r.CreatedAt.Local().Format(time.DateTime))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20,
		"The maximum number of mazes to list.")
	return cmd
}
