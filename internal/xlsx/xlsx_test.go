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

package xlsx

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
	"znkr.io/tablediff"
)

func mustTable(t *testing.T, rows [][]tablediff.Value) *tablediff.Table {
	t.Helper()
	tab, err := tablediff.NewTable(rows)
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func roundtrip(t *testing.T, x, y *tablediff.Table) *excelize.File {
	t.Helper()
	g, err := tablediff.Compare(x, y)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, g, DefaultPalette); err != nil {
		t.Fatalf("Write(...) failed: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("can't read workbook: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

var (
	id   = tablediff.TextValue("id")
	name = tablediff.TextValue("name")
	city = tablediff.TextValue("city")
	i    = tablediff.IntValue
	s    = tablediff.TextValue
)

func TestWrite(t *testing.T) {
	x := mustTable(t, [][]tablediff.Value{
		{id, name, city},
		{i(1), s("Alice"), s("Berlin")},
		{i(2), s("Bob"), s("Paris")},
	})
	y := mustTable(t, [][]tablediff.Value{
		{id, name, city},
		{i(1), s("Alicia"), s("Berlin")},
		{i(3), s("Carol"), s("Rome")},
	})
	f := roundtrip(t, x, y)

	// Rows: header, 1 (changed), 3 (added), 2 (deleted).
	want := [][]string{
		{"id", "name", "city", "", "id", "name", "city"},
		{"1", "Alice", "Berlin", "", "1", "Alicia", "Berlin"},
		{"", "", "", "", "3", "Carol", "Rome"},
		{"2", "Bob", "Paris", "", "", "", ""},
	}
	var got [][]string
	for row := range want {
		var line []string
		for col := range want[row] {
			cell, err := excelize.CoordinatesToCellName(col+1, row+1)
			if err != nil {
				t.Fatal(err)
			}
			v, err := f.GetCellValue(Sheet, cell)
			if err != nil {
				t.Fatal(err)
			}
			line = append(line, v)
		}
		got = append(got, line)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sheet values are different [-want,+got]:\n%s", diff)
	}

	type run struct{ Text, Color string }
	for _, tt := range []struct {
		cell string
		want []run
	}{
		{"B2", []run{{"Alic", "000000"}, {"e", "FF0000"}}},
		{"F2", []run{{"Alic", "000000"}, {"ia", "00B050"}}},
	} {
		runs, err := f.GetCellRichText(Sheet, tt.cell)
		if err != nil {
			t.Fatal(err)
		}
		var got []run
		for _, r := range runs {
			var color string
			if r.Font != nil {
				color = r.Font.Color
			}
			got = append(got, run{r.Text, color})
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("rich text of %s is different [-want,+got]:\n%s", tt.cell, diff)
		}
	}

	style := func(cell string) int {
		t.Helper()
		id, err := f.GetCellStyle(Sheet, cell)
		if err != nil {
			t.Fatal(err)
		}
		return id
	}
	// One cell per fill, all other cells must share the style of their group.
	groups := [][]string{
		{"A1", "C2", "E1", "G2"}, // match
		{"B2", "F2"},             // changed
		{"A4", "B4", "C4"},       // deleted
		{"E3", "F3", "G3"},       // added
		{"A3", "C3", "E4", "G4"}, // gap
	}
	seen := make(map[int]int)
	for gi, group := range groups {
		want := style(group[0])
		if prev, ok := seen[want]; ok {
			t.Errorf("group %d and %d share style %d", prev, gi, want)
		}
		seen[want] = gi
		for _, cell := range group[1:] {
			if got := style(cell); got != want {
				t.Errorf("style of %s = %d, want %d (same as %s)", cell, got, want, group[0])
			}
		}
	}
}

func TestWriteValues(t *testing.T) {
	rows := [][]tablediff.Value{
		{s("v")},
		{tablediff.RealValue(1.5)},
		{tablediff.RealValue(math.NaN())},
		{tablediff.RealValue(math.Inf(-1))},
		{tablediff.BlobValue([]byte{0x00, 0xff})},
		{tablediff.NullValue()},
	}
	f := roundtrip(t, mustTable(t, rows), mustTable(t, rows))

	want := []string{"v", "1.5", "NaN", "-Inf", "x'00FF'", ""}
	for row, w := range want {
		for _, col := range []string{"A", "C"} {
			cell := col + string(rune('1'+row))
			got, err := f.GetCellValue(Sheet, cell)
			if err != nil {
				t.Fatal(err)
			}
			if got != w {
				t.Errorf("GetCellValue(%s) = %q, want %q", cell, got, w)
			}
		}
	}
}

func TestPaletteMerge(t *testing.T) {
	p := Palette{Changed: "FFA500", InsertedText: "0000FF"}
	got := p.Merge(DefaultPalette)
	want := DefaultPalette
	want.Changed = "FFA500"
	want.InsertedText = "0000FF"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Merge(...) result is different [-want,+got]:\n%s", diff)
	}
}
