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

// Package xlsx renders a [tablediff.Grid] as a spreadsheet.
//
// Both tables are written side by side on a single sheet. The table before the change starts in
// the first column, the table after the change starts after an empty separator column. Each row of
// the sheet is a row of the grid.
package xlsx

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"
	"znkr.io/tablediff"
	"znkr.io/tablediff/align"
	"znkr.io/tablediff/textdiff"
)

// Sheet is the name of the sheet the grid is written to.
const Sheet = "Sheet1"

// Palette holds the colors used for rendering as hex RGB values, e.g. "FFFF00".
type Palette struct {
	// Cell fills.
	Match   string `yaml:"match"`
	Changed string `yaml:"changed"`
	Deleted string `yaml:"deleted"`
	Added   string `yaml:"added"`
	Gap     string `yaml:"gap"`

	// Font colors of text diffs in changed cells.
	Text         string `yaml:"text"`
	DeletedText  string `yaml:"deleted_text"`
	InsertedText string `yaml:"inserted_text"`
}

// DefaultPalette is the palette used if nothing else is configured.
var DefaultPalette = Palette{
	Match:        "FFFFFF",
	Changed:      "FFFF00",
	Deleted:      "FF0000",
	Added:        "00FF00",
	Gap:          "808080",
	Text:         "000000",
	DeletedText:  "FF0000",
	InsertedText: "00B050",
}

// Merge returns p with every empty color replaced by the corresponding color of q.
func (p Palette) Merge(q Palette) Palette {
	pick := func(a, b string) string {
		if a != "" {
			return a
		}
		return b
	}
	return Palette{
		Match:        pick(p.Match, q.Match),
		Changed:      pick(p.Changed, q.Changed),
		Deleted:      pick(p.Deleted, q.Deleted),
		Added:        pick(p.Added, q.Added),
		Gap:          pick(p.Gap, q.Gap),
		Text:         pick(p.Text, q.Text),
		DeletedText:  pick(p.DeletedText, q.DeletedText),
		InsertedText: pick(p.InsertedText, q.InsertedText),
	}
}

// Write renders g as a workbook and writes it to w.
func Write(w io.Writer, g *tablediff.Grid, p Palette) error {
	f := excelize.NewFile()
	defer f.Close()

	r := &renderer{f: f, p: p}
	if err := r.init(); err != nil {
		return err
	}
	if err := r.render(g); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

type fill int

const (
	fillMatch fill = iota
	fillChanged
	fillDeleted
	fillAdded
	fillGap
	numFills
)

type renderer struct {
	f      *excelize.File
	p      Palette
	styles [numFills]int
}

func (r *renderer) init() error {
	thick := []excelize.Border{
		{Type: "left", Color: "000000", Style: 5},
		{Type: "top", Color: "000000", Style: 5},
		{Type: "right", Color: "000000", Style: 5},
		{Type: "bottom", Color: "000000", Style: 5},
	}
	colors := [numFills]string{
		fillMatch:   r.p.Match,
		fillChanged: r.p.Changed,
		fillDeleted: r.p.Deleted,
		fillAdded:   r.p.Added,
		fillGap:     r.p.Gap,
	}
	for i, color := range colors {
		s := &excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		}
		if fill(i) != fillGap {
			s.Border = thick
		}
		id, err := r.f.NewStyle(s)
		if err != nil {
			return fmt.Errorf("creating style: %w", err)
		}
		r.styles[i] = id
	}
	return nil
}

func (r *renderer) render(g *tablediff.Grid) error {
	// The after table starts after the before table and an empty column.
	offset := g.Cols().Len() + 2
	for row := range g.Rows().Len() {
		for col := range g.Cols().Len() {
			x, err := excelize.CoordinatesToCellName(col+1, row+1)
			if err != nil {
				return err
			}
			y, err := excelize.CoordinatesToCellName(offset+col, row+1)
			if err != nil {
				return err
			}
			if err := r.cell(x, y, g.At(row, col)); err != nil {
				return fmt.Errorf("writing grid cell (%d, %d): %w", row, col, err)
			}
		}
	}
	return nil
}

func (r *renderer) cell(x, y string, c tablediff.Cell) error {
	var errs [2]error
	switch c.Kind {
	case tablediff.Match:
		errs[0] = r.value(x, c.X, fillMatch)
		errs[1] = r.value(y, c.Y, fillMatch)
	case tablediff.ChangedValue:
		errs[0] = r.value(x, c.X, fillChanged)
		errs[1] = r.value(y, c.Y, fillChanged)
	case tablediff.ChangedText:
		errs[0] = r.text(x, c.XSpans)
		errs[1] = r.text(y, c.YSpans)
	case tablediff.BeforeOnly:
		errs[0] = r.value(x, c.X, fillDeleted)
		errs[1] = r.style(y, fillGap)
	case tablediff.AfterOnly:
		errs[0] = r.style(x, fillGap)
		errs[1] = r.value(y, c.Y, fillAdded)
	case tablediff.Gap:
		errs[0] = r.style(x, fillGap)
		errs[1] = r.style(y, fillGap)
	default:
		panic("never reached")
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) value(name string, v tablediff.Value, fl fill) error {
	var err error
	switch v.Type() {
	case tablediff.Null:
		// Nothing to write.
	case tablediff.Integer:
		n, _ := v.Int()
		err = r.f.SetCellValue(Sheet, name, n)
	case tablediff.Real:
		// Spreadsheets can't represent NaN and infinities as numbers.
		if f, _ := v.Real(); math.IsNaN(f) || math.IsInf(f, 0) {
			err = r.f.SetCellValue(Sheet, name, v.String())
		} else {
			err = r.f.SetCellValue(Sheet, name, f)
		}
	case tablediff.Text:
		err = r.f.SetCellValue(Sheet, name, v.String())
	case tablediff.Blob:
		s, _ := v.Text()
		err = r.f.SetCellValue(Sheet, name, fmt.Sprintf("x'%X'", s))
	default:
		panic("never reached")
	}
	if err != nil {
		return err
	}
	return r.style(name, fl)
}

func (r *renderer) text(name string, spans []textdiff.Span) error {
	runs := make([]excelize.RichTextRun, 0, len(spans))
	for _, s := range spans {
		var color string
		switch s.Op {
		case align.Match:
			color = r.p.Text
		case align.Delete:
			color = r.p.DeletedText
		case align.Insert:
			color = r.p.InsertedText
		default:
			panic("never reached")
		}
		runs = append(runs, excelize.RichTextRun{Text: s.Text, Font: &excelize.Font{Color: color}})
	}
	if err := r.f.SetCellRichText(Sheet, name, runs); err != nil {
		return err
	}
	return r.style(name, fillChanged)
}

func (r *renderer) style(name string, fl fill) error {
	return r.f.SetCellStyle(Sheet, name, name, r.styles[fl])
}
