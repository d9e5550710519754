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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewTable(t *testing.T) {
	tests := []struct {
		name string
		rows [][]Value
		want error
	}{
		{
			name: "nil",
			rows: nil,
			want: ErrEmptyTable,
		},
		{
			name: "empty-header",
			rows: [][]Value{{}},
			want: ErrEmptyTable,
		},
		{
			name: "header-only",
			rows: [][]Value{{TextValue("id")}},
		},
		{
			name: "short-row",
			rows: [][]Value{
				{TextValue("id"), TextValue("name")},
				{IntValue(1)},
			},
			want: ErrRaggedTable,
		},
		{
			name: "long-row",
			rows: [][]Value{
				{TextValue("id")},
				{IntValue(1), TextValue("Alice")},
			},
			want: ErrRaggedTable,
		},
		{
			name: "rectangular",
			rows: [][]Value{
				{TextValue("id"), TextValue("name")},
				{IntValue(1), TextValue("Alice")},
				{IntValue(2), NullValue()},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := NewTable(tt.rows)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewTable(...) returned error %v, want %v", err, tt.want)
			}
			if err != nil {
				return
			}
			if tbl.Rows() != len(tt.rows) || tbl.Cols() != len(tt.rows[0]) {
				t.Errorf("NewTable(...) has shape %dx%d, want %dx%d", tbl.Rows(), tbl.Cols(), len(tt.rows), len(tt.rows[0]))
			}
		})
	}
}

func TestTableAccessors(t *testing.T) {
	rows := [][]Value{
		{TextValue("id"), TextValue("name")},
		{IntValue(1), TextValue("Alice")},
		{IntValue(2), TextValue("Bob")},
	}
	tbl, err := NewTable(rows)
	if err != nil {
		t.Fatalf("NewTable(...) failed: %v", err)
	}

	// Modifying the input doesn't change the table.
	rows[1][1] = TextValue("Mallory")

	opts := cmp.AllowUnexported(Value{})
	if diff := cmp.Diff([]Value{TextValue("id"), TextValue("name")}, tbl.Header(), opts); diff != "" {
		t.Errorf("Header() is different [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]Value{TextValue("id"), IntValue(1), IntValue(2)}, tbl.Keys(), opts); diff != "" {
		t.Errorf("Keys() is different [-want,+got]:\n%s", diff)
	}
	if got, want := tbl.At(1, 1), TextValue("Alice"); got != want {
		t.Errorf("At(1, 1) = %v, want %v", got, want)
	}
}

func TestValueEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"null", NullValue(), Value{}, true},
		{"int", IntValue(42), IntValue(42), true},
		{"int-differs", IntValue(42), IntValue(43), false},
		{"int-vs-real", IntValue(1), RealValue(1), false},
		{"real", RealValue(1.5), RealValue(1.5), true},
		{"nan", RealValue(math.NaN()), RealValue(math.NaN()), true},
		{"signed-zero", RealValue(0), RealValue(math.Copysign(0, -1)), false},
		{"text", TextValue("a"), TextValue("a"), true},
		{"text-vs-blob", TextValue("a"), BlobValue([]byte("a")), false},
		{"blob", BlobValue([]byte{1, 2}), BlobValue([]byte{1, 2}), true},
		{"null-vs-empty-text", NullValue(), TextValue(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a == tt.b; got != tt.want {
				t.Errorf("%v == %v is %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestValueAccessors(t *testing.T) {
	if v, ok := IntValue(-7).Int(); !ok || v != -7 {
		t.Errorf("IntValue(-7).Int() = %v, %v", v, ok)
	}
	if _, ok := TextValue("7").Int(); ok {
		t.Errorf("TextValue(\"7\").Int() succeeded")
	}
	if v, ok := RealValue(2.5).Real(); !ok || v != 2.5 {
		t.Errorf("RealValue(2.5).Real() = %v, %v", v, ok)
	}
	if s, ok := BlobValue([]byte("raw")).Text(); !ok || s != "raw" {
		t.Errorf("BlobValue(...).Text() = %q, %v", s, ok)
	}
	if _, ok := IntValue(1).Text(); ok {
		t.Errorf("IntValue(1).Text() succeeded")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NullValue(), ""},
		{IntValue(-12), "-12"},
		{RealValue(0.25), "0.25"},
		{RealValue(1e21), "1e+21"},
		{TextValue("héllo"), "héllo"},
		{BlobValue([]byte("bytes")), "bytes"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%s value String() = %q, want %q", tt.v.Type(), got, tt.want)
		}
	}
}
