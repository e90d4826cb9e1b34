// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sqldict reads dictionary entries from a SQL database.
//
// A query must return four columns: word, reading, tag, and definition.
// Reading, tag, and definition may be NULL. A definition holding a JSON
// array of strings becomes a list definition. A definition holding a JSON
// object is decoded as a structured content element and validated. Any other
// definition is used as text.
package sqldict

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	// Registers the sqlite3 driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/ianlewis/go-yomitan"
	"github.com/ianlewis/go-yomitan/element"
)

// DriverName is the name of the SQLite database driver.
const DriverName = "sqlite3"

// DefaultQuery is the query used when none is given. It reads the entries
// table in insertion order.
const DefaultQuery = "SELECT word, reading, tag, definition FROM entries ORDER BY rowid"

// ErrColumns indicates that a query returned the wrong number of columns.
var ErrColumns = errors.New("query must return 4 columns")

// Querier runs queries. It is implemented by [*sql.DB], [*sql.Tx], and
// [*sql.Conn].
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Open opens the SQLite database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	return db, nil
}

// Query runs query and converts each result row into an entry. An empty
// query runs DefaultQuery.
func Query(ctx context.Context, db Querier, query string, args ...any) ([]*yomitan.Entry, error) {
	if query == "" {
		query = DefaultQuery
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	if len(cols) != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrColumns, len(cols))
	}

	var entries []*yomitan.Entry
	for n := 1; rows.Next(); n++ {
		var word string
		var reading, tag, definition sql.NullString
		if err := rows.Scan(&word, &reading, &tag, &definition); err != nil {
			return nil, fmt.Errorf("row %d: %w", n, err)
		}

		e := yomitan.NewEntry(word, reading.String, tag.String)
		if definition.Valid {
			if err := setDefinition(e, definition.String); err != nil {
				return nil, fmt.Errorf("row %d: %q: %w", n, word, err)
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}
	return entries, nil
}

func setDefinition(e *yomitan.Entry, def string) error {
	switch trimmed := strings.TrimSpace(def); {
	case strings.HasPrefix(trimmed, "["):
		var list []string
		if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
			//nolint:wrapcheck // a []string is always valid
			return e.SetSimpleContent(list)
		}
	case strings.HasPrefix(trimmed, "{"):
		var el element.Element
		if err := json.Unmarshal([]byte(trimmed), &el); err != nil {
			return fmt.Errorf("decoding structured content: %w", err)
		}
		//nolint:wrapcheck // validation errors are returned as is
		return e.AddElement(&el)
	}
	//nolint:wrapcheck // a string is always valid
	return e.SetSimpleContent(def)
}
