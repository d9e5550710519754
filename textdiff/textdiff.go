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

// Package textdiff provides functions to compare text word by word or character by character.
//
// Texts that contain whitespace are split into words and whitespace, other texts are split into
// grapheme clusters. The resulting tokens are aligned using [align.Align] and consecutive tokens
// with the same op are collapsed into spans.
package textdiff

import (
	"iter"
	"strings"

	"znkr.io/tablediff/align"
	"znkr.io/tablediff/internal/config"
	"znkr.io/tablediff/internal/runs"
)

const (
	deleteStart = "[-"
	deleteEnd   = "-]"
	insertStart = "{+"
	insertEnd   = "+}"
)

// Span is a piece of text that is either present in both inputs ([align.Match]), only in the first
// input ([align.Delete]), or only in the second input ([align.Insert]).
type Span struct {
	Op   align.Op
	Text string
}

// Spans compares x and y and returns the spans of the diff in merged order.
//
// Concatenating the text of all match and delete spans yields x, concatenating the text of all
// match and insert spans yields y. If both x and y are empty, there are no spans.
//
// The following options are supported: [WordTokens], [GraphemeTokens]
func Spans(x, y string, opts ...Option) iter.Seq[Span] {
	cfg := config.FromOptions(opts, config.Tokenizers)
	return spans(x, y, cfg)
}

// Tokens splits x and y into the tokens that [Spans] aligns.
//
// The following options are supported: [WordTokens], [GraphemeTokens]
func Tokens(x, y string, opts ...Option) (tx, ty []string) {
	cfg := config.FromOptions(opts, config.Tokenizers)
	return tokenize(x, y, cfg.Tokenizer)
}

func spans(x, y string, cfg config.Config) iter.Seq[Span] {
	tx, ty := tokenize(x, y, cfg.Tokenizer)
	a := align.Align(tx, ty)
	return func(yield func(Span) bool) {
		for r := range runs.All(a) {
			// Runs are contiguous in the merged index space and thus also contiguous in the input
			// they are taken from.
			var text string
			switch r.Op {
			case align.Match, align.Delete:
				s0, _ := a.Before(r.K0)
				s1, _ := a.Before(r.K1 - 1)
				text = strings.Join(tx[s0:s1+1], "")
			case align.Insert:
				t0, _ := a.After(r.K0)
				t1, _ := a.After(r.K1 - 1)
				text = strings.Join(ty[t0:t1+1], "")
			default:
				panic("never reached")
			}
			if !yield(Span{r.Op, text}) {
				return
			}
		}
	}
}

// Sides splits a sequence of spans into the spans that make up the first input (matches and
// deletions) and the spans that make up the second input (matches and insertions).
//
// Match spans are shared between both sides, the text of a match is identical in both outputs.
func Sides(spans iter.Seq[Span]) (x, y []Span) {
	for s := range spans {
		switch s.Op {
		case align.Match:
			x = append(x, s)
			y = append(y, s)
		case align.Delete:
			x = append(x, s)
		case align.Insert:
			y = append(y, s)
		default:
			panic("never reached")
		}
	}
	return x, y
}

// Inline compares x and y and renders the diff as a single string.
//
// By default, deletions are rendered as "[-text-]" and insertions as "{+text+}". With
// [TerminalColors], ANSI escape sequences are used instead.
//
// The following options are supported: [WordTokens], [GraphemeTokens], [TerminalColors]
func Inline(x, y string, opts ...Option) string {
	cfg := config.FromOptions(opts, config.Tokenizers|config.Colors)

	var b strings.Builder
	b.Grow(len(x) + len(y))
	for s := range spans(x, y, cfg) {
		if cc := cfg.Colors; cc != nil {
			switch s.Op {
			case align.Match:
				writeColored(&b, cc.Match, s.Text)
			case align.Delete:
				writeColored(&b, cc.Delete, s.Text)
			case align.Insert:
				writeColored(&b, cc.Insert, s.Text)
			default:
				panic("never reached")
			}
			continue
		}
		switch s.Op {
		case align.Match:
			b.WriteString(s.Text)
		case align.Delete:
			b.WriteString(deleteStart)
			b.WriteString(s.Text)
			b.WriteString(deleteEnd)
		case align.Insert:
			b.WriteString(insertStart)
			b.WriteString(s.Text)
			b.WriteString(insertEnd)
		default:
			panic("never reached")
		}
	}
	return b.String()
}

func writeColored(b *strings.Builder, code, text string) {
	if code == "" {
		b.WriteString(text)
		return
	}
	b.WriteString(code)
	b.WriteString(text)
	b.WriteString(config.Reset)
}
