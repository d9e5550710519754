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

// Package lcs implements the longest common subsequence alignment that's shared by all
// comparisons in this module.
//
// The alignment is represented as two parallel index vectors over a merged index space. For a
// merged position k, rx[k] is the index of the element in x and ry[k] the index of the element in
// y, or -1 if the position isn't present on that side. At least one of them is always present.
package lcs

// Absent marks a merged position that has no counterpart on one side.
const Absent = -1

// Align computes the longest common subsequence of x and y and returns the merged index vectors
// rx and ry.
//
// Whenever there are several optimal alignments, the backtracking prefers deletions over
// insertions over matches. Since the backtracking runs from the end of both inputs to the start,
// this places deletions after insertions in the merged order. This order is part of the contract,
// callers rely on the output being deterministic.
//
// The runtime and memory are O(NM) where N = len(x) and M = len(y).
func Align[T any](x, y []T, eq func(a, b T) bool) (rx, ry []int) {
	n, m := len(x), len(y)
	w := m + 1

	// dp[i*w+j] is the length of the longest common subsequence of x[:i] and y[:j]. Row and
	// column 0 are zero.
	dp := make([]int, (n+1)*w)
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if eq(x[i-1], y[j-1]) {
				dp[i*w+j] = dp[(i-1)*w+j-1] + 1
			} else {
				dp[i*w+j] = max(dp[(i-1)*w+j], dp[i*w+j-1])
			}
		}
	}

	l := n + m - dp[n*w+m]
	r := make([]int, 2*l)
	rx, ry = r[:l:l], r[l:]

	i, j := n, m
	for k := l - 1; k >= 0; k-- {
		switch {
		case i > 0 && dp[i*w+j] == dp[(i-1)*w+j]:
			rx[k], ry[k] = i-1, Absent
			i--
		case j > 0 && dp[i*w+j] == dp[i*w+j-1]:
			rx[k], ry[k] = Absent, j-1
			j--
		case i > 0 && j > 0 && dp[(i-1)*w+j-1]+1 == dp[i*w+j]:
			rx[k], ry[k] = i-1, j-1
			i--
			j--
		default:
			// The recurrence above guarantees that one of the cases applies.
			panic("lcs: unreachable state during backtracking")
		}
	}
	if i != 0 || j != 0 {
		panic("lcs: backtracking didn't consume both inputs")
	}
	return rx, ry
}

// Length returns the length of the longest common subsequence for an alignment.
func Length(rx, ry []int) int {
	n := 0
	for k := range rx {
		if rx[k] != Absent && ry[k] != Absent {
			n++
		}
	}
	return n
}
