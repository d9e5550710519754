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
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"znkr.io/tablediff/internal/config"
)

// Words splits s into words and whitespace.
//
// A word is a maximal run of non-whitespace characters. Every whitespace character is a token of
// its own, even if it's part of a run of whitespace characters. Concatenating the tokens yields s.
func Words(s string) []string {
	var out []string
	start := -1 // start of the current word or -1 if there is none
	for i, r := range s {
		if !unicode.IsSpace(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, s[start:i])
			start = -1
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		out = append(out, s[i:i+size])
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

// Graphemes splits s into user-perceived characters (extended grapheme clusters). Concatenating the
// tokens yields s.
func Graphemes(s string) []string {
	var out []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

func tokenize(x, y string, t config.Tokenizer) (tx, ty []string) {
	split := Graphemes
	switch t {
	case config.TokenizerAuto:
		if hasSpace(x) || hasSpace(y) {
			split = Words
		}
	case config.TokenizerWords:
		split = Words
	case config.TokenizerGraphemes:
		// already set
	default:
		panic("never reached")
	}
	return split(x), split(y)
}

func hasSpace(s string) bool {
	return strings.ContainsFunc(s, unicode.IsSpace)
}
