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

package termbank

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"slices"
	"strconv"
)

var fileNameRegex = regexp.MustCompile(`^term_bank_([1-9][0-9]*)\.json$`)

// FileName returns the name of the nth term bank file. Term bank files are
// numbered starting at 1.
func FileName(n int) string {
	return "term_bank_" + strconv.Itoa(n) + ".json"
}

// ParseFileName returns the number of a term bank file name. It returns false
// if name is not a term bank file name.
func ParseFileName(name string) (int, bool) {
	m := fileNameRegex.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Files returns the names of the term bank files at the root of fsys in
// numeric order.
func Files(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading term bank directory: %w", err)
	}

	type numbered struct {
		name string
		n    int
	}
	var banks []numbered
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if n, ok := ParseFileName(e.Name()); ok {
			banks = append(banks, numbered{name: e.Name(), n: n})
		}
	}
	slices.SortFunc(banks, func(a, b numbered) int {
		return a.n - b.n
	})

	names := make([]string, 0, len(banks))
	for _, b := range banks {
		names = append(names, b.name)
	}
	return names, nil
}

// ReadFile reads all rows from the named term bank file.
func ReadFile(fsys fs.FS, name string) ([]Row, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	defer f.Close()

	rows, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, err)
	}
	return rows, nil
}

// Decode reads all rows of a single term bank file from r.
func Decode(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding term bank: %w", err)
	}
	return rows, nil
}

// ReadAll reads the rows of all term bank files at the root of fsys. Files are
// read in numeric order so the rows are returned in dictionary order.
func ReadAll(fsys fs.FS) ([]Row, error) {
	names, err := Files(fsys)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for _, name := range names {
		r, err := ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, r...)
	}
	return rows, nil
}
