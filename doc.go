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

// Package tablediff compares two tables and produces a unified before/after grid.
//
// The columns of both tables are aligned using their header row (row 0) and the rows are aligned
// using their key column (column 0). Both alignments are computed independently using the longest
// common subsequence, see [znkr.io/tablediff/align]. The resulting [Grid] has one cell for every
// combination of an aligned row and an aligned column. Cells that are present in both tables but
// contain different text are further compared using [znkr.io/tablediff/textdiff].
//
// Because rows and columns are aligned independently, the grid can contain [Gap] cells that exist
// in neither table. This happens when a row that only exists in one table crosses a column that
// only exists in the other table.
//
// Performance: Time and space complexity are O(N² + M² + NM) where N and M are the number of rows
// and columns, plus the cost of text diffs for changed text cells. Use [MaxCells] to limit the
// cost for large inputs.
//
// [znkr.io/tablediff/align]: https://pkg.go.dev/znkr.io/tablediff/align
// [znkr.io/tablediff/textdiff]: https://pkg.go.dev/znkr.io/tablediff/textdiff
package tablediff
