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

// Package sqlite reads tables from SQLite databases.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"znkr.io/tablediff"

	_ "modernc.org/sqlite"
)

var (
	// ErrNoTables is returned by [Load] if a database doesn't contain any tables.
	ErrNoTables = errors.New("database contains no tables")

	// ErrNoSuchTable is returned by [ReadTable] if the table doesn't exist.
	ErrNoSuchTable = errors.New("no such table")
)

// Open opens the database at path for reading.
//
// Unlike sql.Open, Open fails if the database doesn't exist.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Tables returns the names of all tables in the database in the order they were created.
func Tables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite\_%' ESCAPE '\'`)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("listing tables: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	return names, nil
}

// ReadTable reads a table into a [tablediff.Table]. The header row contains the column names, the
// following rows contain the rows of the table in storage order.
//
// Values are read with their storage class, the declared column types are ignored. In particular,
// text in DATE or DATETIME columns stays text exactly as stored.
func ReadTable(ctx context.Context, db *sql.DB, name string) (*tablediff.Table, error) {
	cols, err := columns(ctx, db, name)
	if err != nil {
		return nil, err
	}

	// A unary + strips the declared type of a column and keeps its value. The driver would otherwise
	// convert text in DATE, DATETIME, and TIMESTAMP columns to time.Time.
	exprs := make([]string, len(cols))
	for i, col := range cols {
		exprs[i] = "+" + quote(col) + " AS " + quote(col)
	}
	rows, err := db.QueryContext(ctx, "SELECT "+strings.Join(exprs, ", ")+" FROM "+quote(name))
	if err != nil {
		return nil, fmt.Errorf("reading table %q: %w", name, err)
	}
	defer rows.Close()

	header := make([]tablediff.Value, len(cols))
	for i, col := range cols {
		header[i] = tablediff.TextValue(col)
	}
	out := [][]tablediff.Value{header}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("reading row %d of table %q: %w", len(out), name, err)
		}
		row := make([]tablediff.Value, len(cols))
		for i, v := range vals {
			row[i], err = value(v)
			if err != nil {
				return nil, fmt.Errorf("reading column %q of row %d in table %q: %w", cols[i], len(out), name, err)
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table %q: %w", name, err)
	}
	return tablediff.NewTable(out)
}

// columns returns the column names of a table in declaration order.
func columns(ctx context.Context, db *sql.DB, name string) ([]string, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?) ORDER BY cid", name)
	if err != nil {
		return nil, fmt.Errorf("reading columns of table %q: %w", name, err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return nil, fmt.Errorf("reading columns of table %q: %w", name, err)
		}
		cols = append(cols, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading columns of table %q: %w", name, err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchTable, name)
	}
	return cols, nil
}

// Load opens the database at path and reads a table from it. If table is empty, the first table
// of the database is used. Load returns the table and its name.
func Load(ctx context.Context, path, table string) (*tablediff.Table, string, error) {
	db, err := Open(ctx, path)
	if err != nil {
		return nil, "", err
	}
	defer db.Close()

	if table == "" {
		names, err := Tables(ctx, db)
		if err != nil {
			return nil, "", err
		}
		if len(names) == 0 {
			return nil, "", fmt.Errorf("%s: %w", path, ErrNoTables)
		}
		table = names[0]
	}
	t, err := ReadTable(ctx, db, table)
	if err != nil {
		return nil, "", err
	}
	return t, table, nil
}

func value(v any) (tablediff.Value, error) {
	switch v := v.(type) {
	case nil:
		return tablediff.NullValue(), nil
	case int64:
		return tablediff.IntValue(v), nil
	case float64:
		return tablediff.RealValue(v), nil
	case string:
		return tablediff.TextValue(v), nil
	case []byte:
		return tablediff.BlobValue(v), nil
	case bool:
		if v {
			return tablediff.IntValue(1), nil
		}
		return tablediff.IntValue(0), nil
	default:
		return tablediff.Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
