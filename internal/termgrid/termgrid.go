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

// Package termgrid renders a [tablediff.Grid] as text for terminals.
//
// Both tables are printed side by side, separated by a vertical bar. Columns are padded to the
// display width of their widest cell. Without colors, changes are marked with a prefix: "-" for
// deleted cells, "+" for added cells, and "~" for changed cells. Text changes are marked inline
// and missing cells are shown as "·".
package termgrid

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"znkr.io/tablediff"
	"znkr.io/tablediff/align"
	"znkr.io/tablediff/internal/config"
	"znkr.io/tablediff/textdiff"
)

// Option configures the rendering. Only [textdiff.TerminalColors] is supported.
type Option = config.Option

const (
	placeholder = "·"
	separator   = " | "
	padding     = "  "
)

// Widths don't depend on the locale, ambiguous characters like the placeholder are narrow.
var cond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// cell is a rendered cell, plain is used to compute the display width.
type cell struct {
	plain, styled string
}

// Write renders g to w.
//
// The following options are supported: [textdiff.TerminalColors]
func Write(w io.Writer, g *tablediff.Grid, opts ...Option) error {
	cfg := config.FromOptions(opts, config.Colors)
	p := newPrinter(cfg.Colors)

	nrows, ncols := g.Rows().Len(), g.Cols().Len()
	x := make([][]cell, nrows)
	y := make([][]cell, nrows)
	for r := range nrows {
		x[r] = make([]cell, ncols)
		y[r] = make([]cell, ncols)
		for c := range ncols {
			x[r][c], y[r][c] = p.cell(g.At(r, c))
		}
	}
	xw, yw := widths(x, ncols), widths(y, ncols)

	var b strings.Builder
	for r := range nrows {
		b.Reset()
		writeRow(&b, x[r], xw, false)
		b.WriteString(separator)
		writeRow(&b, y[r], yw, true)
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

func widths(cells [][]cell, ncols int) []int {
	w := make([]int, ncols)
	for _, row := range cells {
		for c, cell := range row {
			w[c] = max(w[c], cond.StringWidth(cell.plain))
		}
	}
	return w
}

func writeRow(b *strings.Builder, row []cell, widths []int, last bool) {
	for c, cell := range row {
		if c > 0 {
			b.WriteString(padding)
		}
		b.WriteString(cell.styled)
		if last && c == len(row)-1 {
			break
		}
		b.WriteString(strings.Repeat(" ", widths[c]-cond.StringWidth(cell.plain)))
	}
}

type printer struct {
	color bool
	cc    config.ColorConfig
}

func newPrinter(cc *config.ColorConfig) printer {
	if cc == nil {
		return printer{}
	}
	return printer{color: true, cc: *cc}
}

// cell renders both sides of a grid cell.
func (p printer) cell(c tablediff.Cell) (x, y cell) {
	switch c.Kind {
	case tablediff.Match:
		return p.value("", p.cc.Match, c.X), p.value("", p.cc.Match, c.Y)
	case tablediff.ChangedValue:
		return p.value("~", p.cc.Changed, c.X), p.value("~", p.cc.Changed, c.Y)
	case tablediff.ChangedText:
		return p.spans(c.XSpans), p.spans(c.YSpans)
	case tablediff.BeforeOnly:
		return p.value("-", p.cc.Delete, c.X), p.gap()
	case tablediff.AfterOnly:
		return p.gap(), p.value("+", p.cc.Insert, c.Y)
	case tablediff.Gap:
		return p.gap(), p.gap()
	default:
		panic("never reached")
	}
}

func (p printer) value(marker, code string, v tablediff.Value) cell {
	s := format(v)
	if p.color {
		return cell{plain: s, styled: colored(code, s)}
	}
	return cell{plain: marker + s, styled: marker + s}
}

func (p printer) gap() cell {
	if p.color {
		return cell{plain: placeholder, styled: colored(p.cc.Gap, placeholder)}
	}
	return cell{plain: placeholder, styled: placeholder}
}

func (p printer) spans(spans []textdiff.Span) cell {
	var plain, styled strings.Builder
	for _, s := range spans {
		text := escaper.Replace(s.Text)
		if p.color {
			plain.WriteString(text)
			switch s.Op {
			case align.Match:
				styled.WriteString(colored(p.cc.Match, text))
			case align.Delete:
				styled.WriteString(colored(p.cc.Delete, text))
			case align.Insert:
				styled.WriteString(colored(p.cc.Insert, text))
			default:
				panic("never reached")
			}
			continue
		}
		switch s.Op {
		case align.Match:
		case align.Delete:
			text = "[-" + text + "-]"
		case align.Insert:
			text = "{+" + text + "+}"
		default:
			panic("never reached")
		}
		plain.WriteString(text)
		styled.WriteString(text)
	}
	return cell{plain: plain.String(), styled: styled.String()}
}

func colored(code, s string) string {
	if code == "" || s == "" {
		return s
	}
	return code + s + config.Reset
}

var escaper = strings.NewReplacer("\n", `\n`, "\t", `\t`, "\r", `\r`)

// format formats a value for display on a single line.
func format(v tablediff.Value) string {
	switch v.Type() {
	case tablediff.Null:
		return ""
	case tablediff.Blob:
		s, _ := v.Text()
		return fmt.Sprintf("x'%X'", s)
	default:
		return escaper.Replace(v.String())
	}
}
