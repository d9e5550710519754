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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"znkr.io/tablediff/internal/xlsx"
	"znkr.io/tablediff/textdiff"
)

const (
	formatXLSX = "xlsx"
	formatTerm = "term"

	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"

	tokensAuto      = "auto"
	tokensWords     = "words"
	tokensGraphemes = "graphemes"
)

// config holds the settings of a comparison. The YAML keys are the names of the corresponding
// flags, with the addition of palette to configure the spreadsheet colors:
//
//	format: xlsx
//	tokens: words
//	palette:
//	  changed: FFA500
type config struct {
	Table    string       `yaml:"table"`
	Format   string       `yaml:"format"`
	Out      string       `yaml:"out"`
	MaxCells int          `yaml:"max-cells"`
	Color    string       `yaml:"color"`
	Tokens   string       `yaml:"tokens"`
	Verbose  bool         `yaml:"verbose"`
	Palette  xlsx.Palette `yaml:"palette"`
}

func defaultConfig() *config {
	return &config{
		Format:  formatXLSX,
		Out:     os.TempDir(),
		Color:   colorAuto,
		Tokens:  tokensAuto,
		Palette: xlsx.DefaultPalette,
	}
}

// load reads the YAML file at path and applies all values for flags that haven't been set on the
// command line.
func (cfg *config) load(path string, flags *pflag.FlagSet) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	var fc config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	set := func(name string, apply func()) {
		if !flags.Changed(name) {
			apply()
		}
	}
	if fc.Table != "" {
		set("table", func() { cfg.Table = fc.Table })
	}
	if fc.Format != "" {
		set("format", func() { cfg.Format = fc.Format })
	}
	if fc.Out != "" {
		set("out", func() { cfg.Out = fc.Out })
	}
	if fc.MaxCells != 0 {
		set("max-cells", func() { cfg.MaxCells = fc.MaxCells })
	}
	if fc.Color != "" {
		set("color", func() { cfg.Color = fc.Color })
	}
	if fc.Tokens != "" {
		set("tokens", func() { cfg.Tokens = fc.Tokens })
	}
	if fc.Verbose {
		set("verbose", func() { cfg.Verbose = true })
	}
	cfg.Palette = fc.Palette.Merge(cfg.Palette)
	return nil
}

func (cfg *config) validate() error {
	switch cfg.Format {
	case formatXLSX, formatTerm:
	default:
		return fmt.Errorf("invalid format %q, want %s or %s", cfg.Format, formatXLSX, formatTerm)
	}
	switch cfg.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("invalid color mode %q, want %s, %s, or %s", cfg.Color, colorAuto, colorAlways, colorNever)
	}
	switch cfg.Tokens {
	case tokensAuto, tokensWords, tokensGraphemes:
	default:
		return fmt.Errorf("invalid tokenizer %q, want %s, %s, or %s", cfg.Tokens, tokensAuto, tokensWords, tokensGraphemes)
	}
	if cfg.MaxCells < 0 {
		return fmt.Errorf("invalid max-cells %d, must not be negative", cfg.MaxCells)
	}
	return nil
}

func (cfg *config) tokenOptions() []textdiff.Option {
	switch cfg.Tokens {
	case tokensAuto:
		return nil
	case tokensWords:
		return []textdiff.Option{textdiff.WordTokens()}
	case tokensGraphemes:
		return []textdiff.Option{textdiff.GraphemeTokens()}
	default:
		panic("never reached")
	}
}

// colorOptions returns the options to color output written to w.
func (cfg *config) colorOptions(w io.Writer) []textdiff.Option {
	var color bool
	switch cfg.Color {
	case colorAuto:
		color = isTerminal(w)
	case colorAlways:
		color = true
	case colorNever:
		color = false
	default:
		panic("never reached")
	}
	if !color {
		return nil
	}
	return []textdiff.Option{textdiff.TerminalColors()}
}
