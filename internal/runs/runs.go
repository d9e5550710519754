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

// Package runs collapses the merged positions of an alignment into runs of consecutive positions
// with the same op. Runs are the basis for rendering human readable diffs.
package runs

import (
	"iter"

	"znkr.io/tablediff/align"
)

// Run describes a maximal sequence of consecutive merged positions with the same op.
type Run struct {
	Op     align.Op
	K0, K1 int // Start and end of the run in the merged index space.
}

// All returns the runs of a in merged order.
func All(a align.Alignment) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		n := a.Len()
		for k0 := 0; k0 < n; {
			op := a.Op(k0)
			k1 := k0 + 1
			for k1 < n && a.Op(k1) == op {
				k1++
			}
			if !yield(Run{op, k0, k1}) {
				return
			}
			k0 = k1
		}
	}
}
