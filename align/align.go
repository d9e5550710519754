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

// Package align computes alignments of two slices based on their longest common subsequence.
//
// An [Alignment] is a merged index space over both inputs. Every merged position is either present
// in both inputs ([Match]), only in the first input ([Delete]), or only in the second input
// ([Insert]). The same alignment is used to diff text tokens and to align the rows and columns of
// tables.
//
// Performance: Time and space complexity are O(NM) where N = len(x) and M = len(y). Callers are
// responsible to limit the size of the inputs.
package align

import (
	"znkr.io/tablediff/internal/lcs"
)

// Op describes how a merged position relates to the inputs.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match  Op = iota // Present in both inputs
	Delete           // Only present in the first input
	Insert           // Only present in the second input
)

// Alignment maps every position in the merged index space to a position in x, in y, or both.
//
// Alignments are immutable, the zero value is an empty alignment.
type Alignment struct {
	x, y []int
}

// Align computes the alignment of x and y.
//
// When there are multiple alignments with a longest common subsequence, Align deterministically
// prefers a deletion over an insertion over a match, starting from the end of the inputs. For
// example, aligning "ab" with "ba" produces the ops [Insert, Match, Delete].
func Align[T comparable](x, y []T) Alignment {
	rx, ry := lcs.Align(x, y, func(a, b T) bool { return a == b })
	return Alignment{rx, ry}
}

// AlignFunc computes the alignment of x and y using the provided equality comparison.
//
// The equality comparison must be an equivalence relation. The alignment is identical to the one
// computed by [Align] for an equivalent comparison.
func AlignFunc[T any](x, y []T, eq func(a, b T) bool) Alignment {
	rx, ry := lcs.Align(x, y, eq)
	return Alignment{rx, ry}
}

// Len returns the length of the merged index space.
func (a Alignment) Len() int { return len(a.x) }

// Before returns the index into the first input for merged position k. The second return value is
// false if the position isn't present in the first input.
func (a Alignment) Before(k int) (int, bool) {
	i := a.x[k]
	return i, i != lcs.Absent
}

// After returns the index into the second input for merged position k. The second return value is
// false if the position isn't present in the second input.
func (a Alignment) After(k int) (int, bool) {
	j := a.y[k]
	return j, j != lcs.Absent
}

// Op returns the op for merged position k.
func (a Alignment) Op(k int) Op {
	switch bx, by := a.x[k] != lcs.Absent, a.y[k] != lcs.Absent; {
	case bx && by:
		return Match
	case bx:
		return Delete
	case by:
		return Insert
	default:
		panic("never reached")
	}
}

// LCS returns the length of the longest common subsequence, that is the number of merged
// positions with op [Match].
func (a Alignment) LCS() int {
	return lcs.Length(a.x, a.y)
}

// Edit describes a single merged position of an alignment.
//
//   - For Match, both X and Y contain the matching element.
//   - For Delete, X contains the deleted element and Y is unset (zero value).
//   - For Insert, Y contains the inserted element and X is unset (zero value).
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// Edits expands the alignment a of x and y into one edit for every merged position.
//
// The alignment must have been computed for x and y. If a is empty, the output is nil.
func Edits[T any](x, y []T, a Alignment) []Edit[T] {
	if a.Len() == 0 {
		return nil
	}
	out := make([]Edit[T], a.Len())
	for k := range out {
		e := &out[k]
		e.Op = a.Op(k)
		if i, ok := a.Before(k); ok {
			e.X = x[i]
		}
		if j, ok := a.After(k); ok {
			e.Y = y[j]
		}
	}
	return out
}
