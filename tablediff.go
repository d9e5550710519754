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

package tablediff

import (
	"fmt"

	"znkr.io/tablediff/align"
	"znkr.io/tablediff/internal/config"
	"znkr.io/tablediff/textdiff"
)

// Kind classifies a cell of a [Grid].
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	// The cell is present in both tables and the values are equal.
	Match Kind = iota

	// The cell is present in both tables and the values are different and not both text.
	ChangedValue

	// The cell is present in both tables and contains different text in both.
	ChangedText

	// The cell is only present in the first table.
	BeforeOnly

	// The cell is only present in the second table.
	AfterOnly

	// The cell isn't present in either table. Gaps occur where a row that only exists in one table
	// crosses a column that only exists in the other table.
	Gap

	numKinds = iota
)

// Cell is a cell of a [Grid].
//
//   - For Match, ChangedValue, and ChangedText, X and Y contain the values from both tables.
//   - For ChangedText, XSpans and YSpans additionally contain the text diff of X and Y, see
//     [textdiff.Sides].
//   - For BeforeOnly, X contains the value and Y is unset (zero value).
//   - For AfterOnly, Y contains the value and X is unset (zero value).
//   - For Gap, both X and Y are unset.
type Cell struct {
	Kind           Kind
	X, Y           Value
	XSpans, YSpans []textdiff.Span
}

// Grid is the result of a table comparison.
//
// The rows of the grid correspond to the merged positions of the row alignment and the columns to
// the merged positions of the column alignment. Grids are immutable.
type Grid struct {
	rows, cols align.Alignment
	cells      []Cell
	counts     [numKinds]int
}

// Compare compares the tables x and y.
//
// It returns an error wrapping [ErrEmptyTable] if either table is nil or empty, and [ErrTooLarge]
// if the comparison exceeds the limit set with [MaxCells].
//
// The following options are supported: [MaxCells], [textdiff.WordTokens],
// [textdiff.GraphemeTokens]
func Compare(x, y *Table, opts ...Option) (*Grid, error) {
	cfg := config.FromOptions(opts, config.MaxCells|config.Tokenizers)
	if !x.valid() {
		return nil, fmt.Errorf("before: %w", ErrEmptyTable)
	}
	if !y.valid() {
		return nil, fmt.Errorf("after: %w", ErrEmptyTable)
	}
	if n := cfg.MaxCells; n > 0 {
		if r := (x.Rows() + 1) * (y.Rows() + 1); r > n {
			return nil, fmt.Errorf("%w: aligning %d and %d rows needs %d cells, limit is %d", ErrTooLarge, x.Rows(), y.Rows(), r, n)
		}
		if c := (x.Cols() + 1) * (y.Cols() + 1); c > n {
			return nil, fmt.Errorf("%w: aligning %d and %d columns needs %d cells, limit is %d", ErrTooLarge, x.Cols(), y.Cols(), c, n)
		}
	}

	// Rows and columns are aligned independently. This is an approximation of a real 2D
	// alignment and the reason why there can be gaps.
	g := &Grid{
		rows: align.Align(x.Keys(), y.Keys()),
		cols: align.Align(x.Header(), y.Header()),
	}

	var topts []textdiff.Option
	switch cfg.Tokenizer {
	case config.TokenizerAuto:
		// default
	case config.TokenizerWords:
		topts = append(topts, textdiff.WordTokens())
	case config.TokenizerGraphemes:
		topts = append(topts, textdiff.GraphemeTokens())
	default:
		panic("never reached")
	}

	w := g.cols.Len()
	g.cells = make([]Cell, g.rows.Len()*w)
	for r := range g.rows.Len() {
		for c := range w {
			cell := g.classify(x, y, r, c, cfg.MaxCells, topts)
			g.cells[r*w+c] = cell
			g.counts[cell.Kind]++
		}
	}
	return g, nil
}

func (g *Grid) classify(x, y *Table, r, c, maxCells int, topts []textdiff.Option) Cell {
	sx, rowInX := g.rows.Before(r)
	sy, rowInY := g.rows.After(r)
	tx, colInX := g.cols.Before(c)
	ty, colInY := g.cols.After(c)
	if !rowInX && !rowInY || !colInX && !colInY {
		panic("never reached")
	}

	inX, inY := rowInX && colInX, rowInY && colInY
	switch {
	case inX && inY:
		vx, vy := x.At(sx, tx), y.At(sy, ty)
		switch {
		case vx == vy:
			return Cell{Kind: Match, X: vx, Y: vy}
		case vx.Type() == Text && vy.Type() == Text:
			if maxCells > 0 {
				tx, ty := textdiff.Tokens(vx.str, vy.str, topts...)
				if (len(tx)+1)*(len(ty)+1) > maxCells {
					return Cell{Kind: ChangedValue, X: vx, Y: vy}
				}
			}
			xspans, yspans := textdiff.Sides(textdiff.Spans(vx.str, vy.str, topts...))
			return Cell{Kind: ChangedText, X: vx, Y: vy, XSpans: xspans, YSpans: yspans}
		default:
			return Cell{Kind: ChangedValue, X: vx, Y: vy}
		}
	case inX:
		return Cell{Kind: BeforeOnly, X: x.At(sx, tx)}
	case inY:
		return Cell{Kind: AfterOnly, Y: y.At(sy, ty)}
	default:
		return Cell{Kind: Gap}
	}
}

// Rows returns the alignment of the rows of both tables.
func (g *Grid) Rows() align.Alignment { return g.rows }

// Cols returns the alignment of the columns of both tables.
func (g *Grid) Cols() align.Alignment { return g.cols }

// At returns the cell at row r and column c of the grid.
func (g *Grid) At(r, c int) Cell {
	if c < 0 || c >= g.cols.Len() {
		panic(fmt.Sprintf("column index %d out of range [0:%d]", c, g.cols.Len()))
	}
	return g.cells[r*g.cols.Len()+c]
}

// Count returns the number of cells of kind k.
func (g *Grid) Count(k Kind) int {
	if k < 0 || k >= numKinds {
		return 0
	}
	return g.counts[k]
}

// Equal reports whether both tables are identical, that is if all cells are matches.
func (g *Grid) Equal() bool {
	return g.counts[Match] == len(g.cells)
}
