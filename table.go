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
	"fmt"
	"slices"
)

var (
	// ErrEmptyTable is returned for tables without a header row or without a key column.
	ErrEmptyTable = errors.New("table has no header row or no key column")

	// ErrRaggedTable is returned for tables with rows that have a different number of cells than
	// the header row.
	ErrRaggedTable = errors.New("table rows have different lengths")

	// ErrTooLarge is returned by [Compare] if the tables exceed the limit set with [MaxCells].
	ErrTooLarge = errors.New("tables are too large to compare")
)

// Table is a rectangular table of values.
//
// Row 0 is the header row, its values identify the columns. Column 0 is the key column, its values
// identify the rows. The quality of a comparison depends on headers and keys being stable
// identifiers across the tables being compared.
type Table struct {
	rows [][]Value
}

// NewTable creates a table from rows of values. The first row is the header row.
//
// NewTable returns [ErrEmptyTable] if there is no header row or if the header row is empty and
// [ErrRaggedTable] if any row has a different length than the header row.
func NewTable(rows [][]Value) (*Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyTable
	}
	n := len(rows[0])
	t := &Table{rows: make([][]Value, len(rows))}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d", ErrRaggedTable, i, len(row), n)
		}
		t.rows[i] = slices.Clone(row)
	}
	return t, nil
}

// Rows returns the number of rows including the header row.
func (t *Table) Rows() int { return len(t.rows) }

// Cols returns the number of columns including the key column.
func (t *Table) Cols() int {
	if len(t.rows) == 0 {
		return 0
	}
	return len(t.rows[0])
}

// At returns the value at row i and column j.
func (t *Table) At(i, j int) Value { return t.rows[i][j] }

// Header returns the header row.
func (t *Table) Header() []Value { return slices.Clone(t.rows[0]) }

// Keys returns the key column.
func (t *Table) Keys() []Value {
	keys := make([]Value, len(t.rows))
	for i, row := range t.rows {
		keys[i] = row[0]
	}
	return keys
}

func (t *Table) valid() bool {
	return t != nil && t.Cols() > 0
}
