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
	"math"
	"strconv"
)

// Type is the type of a table cell.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Type
type Type int

const (
	Null Type = iota
	Integer
	Real
	Text
	Blob
)

// Value is a typed table cell.
//
// Values are comparable with ==. Two values are equal if they have the same type and the same
// value. Reals are compared by their bit pattern, NaN is equal to itself but 0.0 and -0.0 are
// different.
type Value struct {
	typ  Type
	bits uint64 // Integer and Real
	str  string // Text and Blob
}

// NullValue returns a null value. It's identical to the zero Value.
func NullValue() Value { return Value{} }

// IntValue returns an integer value.
func IntValue(v int64) Value { return Value{typ: Integer, bits: uint64(v)} }

// RealValue returns a real value.
func RealValue(v float64) Value { return Value{typ: Real, bits: math.Float64bits(v)} }

// TextValue returns a text value.
func TextValue(s string) Value { return Value{typ: Text, str: s} }

// BlobValue returns a blob value. The bytes are copied.
func BlobValue(b []byte) Value { return Value{typ: Blob, str: string(b)} }

// Type returns the type of v.
func (v Value) Type() Type { return v.typ }

// Int returns the integer value of v. The second return value is false if v isn't an integer.
func (v Value) Int() (int64, bool) { return int64(v.bits), v.typ == Integer }

// Real returns the real value of v. The second return value is false if v isn't a real.
func (v Value) Real() (float64, bool) { return math.Float64frombits(v.bits), v.typ == Real }

// Text returns the text of a text or blob value. The second return value is false for all other
// types.
func (v Value) Text() (string, bool) {
	return v.str, v.typ == Text || v.typ == Blob
}

// String formats v for display. Null is formatted as an empty string.
func (v Value) String() string {
	switch v.typ {
	case Null:
		return ""
	case Integer:
		return strconv.FormatInt(int64(v.bits), 10)
	case Real:
		return strconv.FormatFloat(math.Float64frombits(v.bits), 'g', -1, 64)
	case Text, Blob:
		return v.str
	default:
		panic("never reached")
	}
}
