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

package yomitan_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-yomitan"
	"github.com/ianlewis/go-yomitan/index"
	"github.com/ianlewis/go-yomitan/internal/archive"
	"github.com/ianlewis/go-yomitan/internal/testutil"
	"github.com/ianlewis/go-yomitan/termbank"
)

func searchDict(t *testing.T) *yomitan.Dictionary {
	t.Helper()

	d := yomitan.New("Search", yomitan.WithBaseDir(t.TempDir()), yomitan.WithBatchSize(2))
	d.AddEntry(simpleEntry(t, "犬", "いぬ", "n", "dog"))
	d.AddEntry(simpleEntry(t, "猫", "ねこ", "n", "cat"))
	d.AddEntry(simpleEntry(t, "戌", "いぬ", "n", "Dog (zodiac)"))
	d.AddEntry(simpleEntry(t, "Hello World", "", "", "a greeting"))
	d.AddEntry(simpleEntry(t, "コーヒー", "", "n", "coffee"))
	if err := d.Export(); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if err := d.Package(); err != nil {
		t.Fatalf("Package: %v", err)
	}
	return d
}

func TestOpen(t *testing.T) {
	t.Parallel()

	d := searchDict(t)
	for _, p := range []string{d.Dir(), d.ArchivePath()} {
		p := p
		t.Run(filepath.Base(p), func(t *testing.T) {
			t.Parallel()

			pkg, err := yomitan.Open(p)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}

			if diff := cmp.Diff(index.New("Search"), pkg.Index()); diff != "" {
				t.Errorf("Index (-want, +got):\n%s", diff)
			}

			wantBanks := []yomitan.Bank{
				{Name: "term_bank_1.json", Rows: 2},
				{Name: "term_bank_2.json", Rows: 2},
				{Name: "term_bank_3.json", Rows: 1},
			}
			if diff := cmp.Diff(wantBanks, pkg.Banks()); diff != "" {
				t.Errorf("Banks (-want, +got):\n%s", diff)
			}

			var words []string
			for _, r := range pkg.Rows() {
				words = append(words, r.Word)
			}
			wantWords := []string{"犬", "猫", "戌", "Hello World", "コーヒー"}
			if diff := cmp.Diff(wantWords, words); diff != "" {
				t.Errorf("Rows (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestPackage_Search(t *testing.T) {
	t.Parallel()

	pkg, err := yomitan.Open(searchDict(t).ArchivePath())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	tests := []struct {
		query    string
		expected []string
	}{
		{query: "いぬ", expected: []string{"犬", "戌"}},
		{query: "イヌ", expected: []string{"犬", "戌"}},
		{query: "ｲﾇ", expected: []string{"犬", "戌"}},
		{query: "猫", expected: []string{"猫"}},
		{query: "hello  world", expected: []string{"Hello World"}},
		{query: "HELLO WORLD", expected: []string{"Hello World"}},
		{query: "こーひー", expected: []string{"コーヒー"}},
		{query: "鳥"},
		{query: ""},
	}

	for _, test := range tests {
		test := test
		t.Run(test.query, func(t *testing.T) {
			t.Parallel()

			rows, err := pkg.Search(test.query)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			var words []string
			for _, r := range rows {
				words = append(words, r.Word)
			}
			if diff := cmp.Diff(test.expected, words); diff != "" {
				t.Errorf("Search(%q) (-want, +got):\n%s", test.query, diff)
			}
		})
	}
}

func TestOpen_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files map[string]string
		err   error
	}{
		{
			name:  "missing index",
			files: map[string]string{"term_bank_1.json": "[]"},
			err:   yomitan.ErrMissingIndex,
		},
		{
			name: "bad format",
			files: map[string]string{
				"index.json": `{"title":"x","format":2,"revision":"1"}`,
			},
			err: index.ErrUnsupportedFormat,
		},
		{
			name: "bad row",
			files: map[string]string{
				"index.json":       `{"title":"x","format":3,"revision":"1"}`,
				"term_bank_1.json": `[["a","b"]]`,
			},
			err: termbank.ErrInvalidRow,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			dir := filepath.Join(root, "x")
			testutil.WriteFiles(t, dir, test.files)
			zipPath := filepath.Join(root, "x.zip")
			if err := archive.Zip(zipPath, dir); err != nil {
				t.Fatalf("Zip: %v", err)
			}

			if _, err := yomitan.Open(zipPath); !errors.Is(err, test.err) {
				t.Errorf("Open(zip): want %v, got %v", test.err, err)
			}
			if test.err == yomitan.ErrMissingIndex {
				// Directories report the missing file itself.
				return
			}
			if _, err := yomitan.Open(dir); !errors.Is(err, test.err) {
				t.Errorf("Open(dir): want %v, got %v", test.err, err)
			}
		})
	}
}
