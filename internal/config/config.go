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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// tablediff.Option and textdiff.Option.
package config

// Tokenizer selects how text is split into tokens before it's aligned.
type Tokenizer int

const (
	// Split into words and whitespace if either input contains whitespace, otherwise split into
	// grapheme clusters.
	TokenizerAuto Tokenizer = iota

	// Always split into words and whitespace.
	TokenizerWords

	// Always split into grapheme clusters.
	TokenizerGraphemes
)

// ColorConfig holds ANSI escape sequences used to color rendered diffs.
type ColorConfig struct {
	Match   string
	Delete  string
	Insert  string
	Changed string
	Gap     string
}

// Reset is the ANSI escape sequence that resets all graphic attributes.
const Reset = "\033[0m"

// DefaultColors are the colors used when terminal colors are enabled without further
// customization.
var DefaultColors = ColorConfig{
	Match:   "",
	Delete:  "\033[31m",
	Insert:  "\033[32m",
	Changed: "\033[33m",
	Gap:     "\033[90m",
}

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Tokenizer used for text diffs.
	Tokenizer Tokenizer

	// MaxCells limits the size of the dynamic programming tables used for aligning the rows and
	// columns of a table. Zero means no limit.
	MaxCells int

	// If set, rendered text is colored with these ANSI escape sequences.
	Colors *ColorConfig
}

// Default is the default configuration.
var Default = Config{
	Tokenizer: TokenizerAuto,
	MaxCells:  0,
	Colors:    nil,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Tokenizers Flag = 1 << iota
	MaxCells
	Colors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Tokenizers:
		return "textdiff.WordTokens/textdiff.GraphemeTokens"
	case MaxCells:
		return "tablediff.MaxCells"
	case Colors:
		return "textdiff.TerminalColors"
	default:
		panic("never reached")
	}
}
