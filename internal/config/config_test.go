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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/tablediff"
	"znkr.io/tablediff/internal/config"
	"znkr.io/tablediff/textdiff"
	"znkr.io/tablediff/textdiff/color"
)

func TestFromOptions(t *testing.T) {
	all := config.Tokenizers | config.MaxCells | config.Colors
	colors := config.DefaultColors
	colors.Delete = "\033[1;31m"

	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "words",
			opts: []config.Option{
				textdiff.WordTokens(),
			},
			want: config.Config{
				Tokenizer: config.TokenizerWords,
			},
		},
		{
			name: "tokenizer-override",
			opts: []config.Option{
				textdiff.WordTokens(),
				textdiff.GraphemeTokens(),
			},
			want: config.Config{
				Tokenizer: config.TokenizerGraphemes,
			},
		},
		{
			name: "max-cells",
			opts: []config.Option{
				tablediff.MaxCells(100),
			},
			want: config.Config{
				MaxCells: 100,
			},
		},
		{
			name: "negative-max-cells",
			opts: []config.Option{
				tablediff.MaxCells(-1),
			},
			want: config.Config{
				MaxCells: 0,
			},
		},
		{
			name: "everything",
			opts: []config.Option{
				tablediff.MaxCells(5),
				textdiff.WordTokens(),
				textdiff.TerminalColors(color.Deletes(1, 31)),
			},
			want: config.Config{
				Tokenizer: config.TokenizerWords,
				MaxCells:  5,
				Colors:    &colors,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, all)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("FromOptions(...) didn't panic")
		}
		want := "Option tablediff.MaxCells not allowed here"
		if r != want {
			t.Errorf("FromOptions(...) panicked with %q, want %q", r, want)
		}
	}()
	config.FromOptions([]config.Option{tablediff.MaxCells(1)}, config.Tokenizers)
}
