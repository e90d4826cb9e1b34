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

package sqldict

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-yomitan/element"
	"github.com/ianlewis/go-yomitan/termbank"
)

func testDB(t *testing.T, rows [][4]any) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE entries (word TEXT NOT NULL, reading TEXT, tag TEXT, definition TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	for _, r := range rows {
		if _, err := db.Exec(`INSERT INTO entries (word, reading, tag, definition) VALUES (?, ?, ?, ?)`, r[:]...); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return db
}

func TestQuery(t *testing.T) {
	t.Parallel()

	db := testDB(t, [][4]any{
		{"hello", nil, nil, "a greeting"},
		{"行く", "いく", "v5k-s", `["to go", "to move"]`},
		{"食べる", "たべる", "v1", `{"tag":"ul","content":[{"tag":"li","content":"To eat"}]}`},
		{"括弧", "かっこ", "n", "[bracket"},
		{"空", "そら", "n", nil},
	})

	entries, err := Query(context.Background(), db, "")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}

	var got []termbank.Row
	for _, e := range entries {
		got = append(got, e.Row())
	}
	want := []termbank.Row{
		{Word: "hello", Definition: termbank.SimpleText("a greeting")},
		{Word: "行く", Reading: "いく", Tag: "v5k-s", Definition: termbank.SimpleList{"to go", "to move"}},
		{Word: "食べる", Reading: "たべる", Tag: "v1", Definition: termbank.Structured{
			element.NewChildren(element.TagUl, []*element.Element{
				element.NewText(element.TagLi, "To eat"),
			}),
		}},
		{Word: "括弧", Reading: "かっこ", Tag: "n", Definition: termbank.SimpleText("[bracket")},
		{Word: "空", Reading: "そら", Tag: "n"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Query (-want, +got):\n%s", diff)
	}
}

func TestQuery_args(t *testing.T) {
	t.Parallel()

	db := testDB(t, [][4]any{
		{"a", nil, "n", "x"},
		{"b", nil, "v", "y"},
		{"c", nil, "n", "z"},
	})

	entries, err := Query(context.Background(), db,
		"SELECT word, reading, tag, definition FROM entries WHERE tag = ? ORDER BY word DESC", "n")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	var words []string
	for _, e := range entries {
		words = append(words, e.Word())
	}
	if diff := cmp.Diff([]string{"c", "a"}, words); diff != "" {
		t.Errorf("Query (-want, +got):\n%s", diff)
	}
}

func TestQuery_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rows  [][4]any
		query string
		err   error
	}{
		{
			name:  "columns",
			query: "SELECT word, reading FROM entries",
			err:   ErrColumns,
		},
		{
			name: "invalid element",
			rows: [][4]any{
				{"a", nil, nil, `{"tag":"script","content":"x"}`},
			},
			err: element.ErrUnsupportedElement,
		},
		{
			name: "href on span",
			rows: [][4]any{
				{"a", nil, nil, `{"tag":"span","content":"x","href":"https://example.com"}`},
			},
			err: element.ErrIllegalAttribute,
		},
		{
			name: "bad content",
			rows: [][4]any{
				{"a", nil, nil, `{"tag":"span","content":1}`},
			},
			err: element.ErrInvalidContentType,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			db := testDB(t, test.rows)
			_, err := Query(context.Background(), db, test.query)
			if !errors.Is(err, test.err) {
				t.Fatalf("Query: want %v, got %v", test.err, err)
			}
		})
	}
}
