// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// sqldiff compares a table in two SQLite databases.
//
// By default, the comparison is written to a spreadsheet in the temp directory that shows both
// tables side by side with differences highlighted. The path of the spreadsheet is printed to
// stdout:
//
//	sqldiff before.db after.db
//
// The comparison can also be printed to the terminal with --format=term. The text subcommand
// compares two strings:
//
//	sqldiff text "the cat sat" "the dog sat"
//
// Flags can also be set in a YAML file passed with --config, see the config type for the keys. Flags set
// on the command line take precedence.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"znkr.io/tablediff"
	"znkr.io/tablediff/internal/sqlite"
	"znkr.io/tablediff/internal/termgrid"
	"znkr.io/tablediff/internal/xlsx"
	"znkr.io/tablediff/textdiff"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()
	var configPath string

	root := &cobra.Command{
		Use:   "sqldiff [flags] BEFORE.db AFTER.db",
		Short: "Compare a table in two SQLite databases",
		Args:  cobra.ExactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := cfg.load(configPath, cmd.Flags()); err != nil {
					return err
				}
			}
			return cfg.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return compare(cmd.Context(), cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), cfg.Verbose), cfg, args[0], args[1])
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML file with default flag values")
	pf.StringVar(&cfg.Color, "color", cfg.Color, "use colors in terminal output: auto, always, or never")
	pf.StringVar(&cfg.Tokens, "tokens", cfg.Tokens, "how text is split for comparison: auto, words, or graphemes")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log debug information")

	f := root.Flags()
	f.StringVarP(&cfg.Table, "table", "t", cfg.Table, "table to compare (default: first table of each database)")
	f.StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format: xlsx or term")
	f.StringVarP(&cfg.Out, "out", "o", cfg.Out, "directory the spreadsheet is written to")
	f.IntVar(&cfg.MaxCells, "max-cells", cfg.MaxCells, "refuse to compare tables needing more than this many cells for alignment (0 means no limit)")

	root.AddCommand(newTextCmd(cfg))
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func compare(ctx context.Context, stdout io.Writer, logger *slog.Logger, cfg *config, before, after string) error {
	var x, y *tablediff.Table
	var xname, yname string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		x, xname, err = sqlite.Load(gctx, before, cfg.Table)
		if err != nil {
			return fmt.Errorf("loading %s: %w", before, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		y, yname, err = sqlite.Load(gctx, after, cfg.Table)
		if err != nil {
			return fmt.Errorf("loading %s: %w", after, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Debug("loaded tables",
		"before", xname, "before_rows", x.Rows(), "before_cols", x.Cols(),
		"after", yname, "after_rows", y.Rows(), "after_cols", y.Cols())
	if xname != yname {
		logger.Info("comparing tables with different names", "before", xname, "after", yname)
	}

	grid, err := tablediff.Compare(x, y, append(cfg.tokenOptions(), tablediff.MaxCells(cfg.MaxCells))...)
	if err != nil {
		return err
	}
	logger.Debug("compared tables",
		"rows", grid.Rows().Len(), "cols", grid.Cols().Len(),
		"matches", grid.Count(tablediff.Match),
		"changed", grid.Count(tablediff.ChangedValue)+grid.Count(tablediff.ChangedText),
		"deleted", grid.Count(tablediff.BeforeOnly),
		"added", grid.Count(tablediff.AfterOnly),
		"gaps", grid.Count(tablediff.Gap))
	if grid.Equal() {
		logger.Info("tables are identical", "table", xname)
	}

	switch cfg.Format {
	case formatTerm:
		return termgrid.Write(stdout, grid, cfg.colorOptions(stdout)...)
	case formatXLSX:
		path := filepath.Join(cfg.Out, fmt.Sprintf("%s-%s-%d.xlsx", stem(before), stem(after), uuid.New().ID()))
		if err := writeXLSX(path, grid, cfg.Palette); err != nil {
			return err
		}
		logger.Debug("wrote spreadsheet", "path", path)
		_, err := fmt.Fprintln(stdout, path)
		return err
	default:
		panic("never reached")
	}
}

func writeXLSX(path string, grid *tablediff.Grid, p xlsx.Palette) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := xlsx.Write(f, grid, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// stem returns the file name of path without extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func newTextCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "text BEFORE AFTER",
		Short: "Compare two strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			opts := append(cfg.tokenOptions(), cfg.colorOptions(stdout)...)
			_, err := fmt.Fprintln(stdout, textdiff.Inline(args[0], args[1], opts...))
			return err
		},
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
