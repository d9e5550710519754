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

package textdiff

import (
	"znkr.io/tablediff/internal/config"
	"znkr.io/tablediff/textdiff/color"
)

// Option configures the behavior of text comparison functions.
type Option = config.Option

// WordTokens always splits the inputs into words and whitespace, see [Words].
//
// By default, inputs are split into words if either input contains whitespace and into grapheme
// clusters otherwise.
func WordTokens() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Tokenizer = config.TokenizerWords
		return config.Tokenizers
	}
}

// GraphemeTokens always splits the inputs into grapheme clusters, see [Graphemes].
func GraphemeTokens() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Tokenizer = config.TokenizerGraphemes
		return config.Tokenizers
	}
}

// TerminalColors renders diffs with ANSI escape sequences instead of textual markers. The colors
// can be customized using the options in [color].
func TerminalColors(opts ...color.Option) Option {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	return func(cfg *config.Config) config.Flag {
		cfg.Colors = &cc
		return config.Colors
	}
}
