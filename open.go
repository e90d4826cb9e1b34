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

package yomitan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"slices"

	"github.com/ianlewis/go-yomitan/index"
	"github.com/ianlewis/go-yomitan/internal/archive"
	"github.com/ianlewis/go-yomitan/internal/folding"
	"github.com/ianlewis/go-yomitan/internal/search"
	"github.com/ianlewis/go-yomitan/termbank"
)

// ErrMissingIndex indicates that a dictionary package has no index.json.
var ErrMissingIndex = errors.New("missing " + index.FileName)

// Bank describes a single term bank file in a dictionary package.
type Bank struct {
	// Name is the file name.
	Name string

	// Rows is the number of rows in the file.
	Rows int
}

// Package is a read only view of an exported dictionary.
type Package struct {
	index *index.Index
	banks []Bank
	rows  []termbank.Row

	search *search.Index[int]
}

// Open reads an exported dictionary directory or a dictionary package zip
// archive.
func Open(p string) (*Package, error) {
	fi, err := os.Stat(p)
	if err != nil {
		//nolint:wrapcheck // the path error has enough context
		return nil, err
	}

	var pkg *Package
	if fi.IsDir() {
		pkg, err = openDir(p)
	} else {
		pkg, err = openArchive(p)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", p, err)
	}

	pkg.search = search.New(pkg.positions(), pkg.keys)
	return pkg, nil
}

func openDir(dir string) (*Package, error) {
	fsys := os.DirFS(dir)
	idx, err := index.Read(fsys)
	if err != nil {
		//nolint:wrapcheck // wrapped by Open
		return nil, err
	}

	names, err := termbank.Files(fsys)
	if err != nil {
		//nolint:wrapcheck // wrapped by Open
		return nil, err
	}

	pkg := &Package{index: idx}
	for _, name := range names {
		rows, err := termbank.ReadFile(fsys, name)
		if err != nil {
			//nolint:wrapcheck // wrapped by Open
			return nil, err
		}
		pkg.addBank(name, rows)
	}
	return pkg, nil
}

func openArchive(p string) (*Package, error) {
	var idx *index.Index
	banks := map[int][]termbank.Row{}
	if err := archive.Walk(p, func(name string, r io.Reader) error {
		// Only files at the archive root are part of the dictionary.
		if path.Dir(name) != "." {
			return nil
		}
		if name == index.FileName {
			var err error
			idx, err = index.Decode(r)
			//nolint:wrapcheck // wrapped by Open
			return err
		}
		n, ok := termbank.ParseFileName(name)
		if !ok {
			return nil
		}
		rows, err := termbank.Decode(r)
		if err != nil {
			return fmt.Errorf("%q: %w", name, err)
		}
		banks[n] = rows
		return nil
	}); err != nil {
		//nolint:wrapcheck // wrapped by Open
		return nil, err
	}
	if idx == nil {
		return nil, ErrMissingIndex
	}

	pkg := &Package{index: idx}
	nums := make([]int, 0, len(banks))
	for n := range banks {
		nums = append(nums, n)
	}
	slices.Sort(nums)
	for _, n := range nums {
		pkg.addBank(termbank.FileName(n), banks[n])
	}
	return pkg, nil
}

func (p *Package) addBank(name string, rows []termbank.Row) {
	p.banks = append(p.banks, Bank{Name: name, Rows: len(rows)})
	p.rows = append(p.rows, rows...)
}

func (p *Package) positions() []int {
	pos := make([]int, len(p.rows))
	for i := range pos {
		pos[i] = i
	}
	return pos
}

// keys returns the folded search keys for the row at position i.
func (p *Package) keys(i int) []string {
	var keys []string
	for _, s := range []string{p.rows[i].Word, p.rows[i].Reading} {
		if s == "" {
			continue
		}
		k, err := folding.String(s)
		if err != nil {
			k = s
		}
		keys = append(keys, k)
	}
	return keys
}

// Index returns the dictionary descriptor.
func (p *Package) Index() *index.Index {
	return p.index
}

// Banks returns the term bank files in numeric order.
func (p *Package) Banks() []Bank {
	return slices.Clone(p.banks)
}

// Rows returns all rows in dictionary order.
func (p *Package) Rows() []termbank.Row {
	return slices.Clone(p.rows)
}

// Search returns the rows whose headword or reading matches the query. The
// query and the rows are compared after width normalization, whitespace
// folding, katakana to hiragana folding, and case folding. Rows are returned
// in dictionary order.
func (p *Package) Search(query string) ([]termbank.Row, error) {
	key, err := folding.String(query)
	if err != nil {
		return nil, fmt.Errorf("folding query: %w", err)
	}

	pos := p.search.Search(key)
	rows := make([]termbank.Row, 0, len(pos))
	for _, i := range pos {
		rows = append(rows, p.rows[i])
	}
	return rows, nil
}
