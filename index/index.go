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

// Package index implements reading and writing the index.json descriptor of a
// Yomitan dictionary.
//
// The descriptor identifies the dictionary. A minimal descriptor is:
//
//	{"title": "Example", "format": 3, "revision": "1"}
//
// Optional metadata fields are omitted when empty.
package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ianlewis/go-yomitan/element"
)

// FileName is the name of the descriptor file.
const FileName = "index.json"

// Format is the supported dictionary format version.
const Format = 3

// DefaultRevision is the revision of a new descriptor.
const DefaultRevision = "1"

var (
	// ErrMissingTitle indicates that the descriptor has no title.
	ErrMissingTitle = errors.New("missing title")

	// ErrUnsupportedFormat indicates that the descriptor's format is not
	// supported.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Index is a dictionary descriptor.
type Index struct {
	// Title is the dictionary's title.
	Title string `json:"title"`

	// Format is the dictionary format version. Always 3.
	Format int `json:"format"`

	// Revision is the dictionary's revision string.
	Revision string `json:"revision"`

	// Sequenced indicates that rows with the same sequence number should be
	// merged by the importing application.
	Sequenced bool `json:"sequenced,omitempty"`

	Author      string `json:"author,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	Attribution string `json:"attribution,omitempty"`
}

// New returns a new descriptor with the given title.
func New(title string) *Index {
	return &Index{
		Title:    title,
		Format:   Format,
		Revision: DefaultRevision,
	}
}

// Validate checks the descriptor's required fields.
func (i *Index) Validate() error {
	if i.Title == "" {
		return ErrMissingTitle
	}
	if i.Format != Format {
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, i.Format)
	}
	return nil
}

// Write writes the descriptor to index.json in dir.
func Write(dir string, i *Index) error {
	b, err := element.Marshal(i)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", FileName, err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), b, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", FileName, err)
	}
	return nil
}

// Read reads and validates the descriptor at the root of fsys.
func Read(fsys fs.FS) (*Index, error) {
	f, err := fsys.Open(FileName)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads and validates a descriptor from r.
func Decode(r io.Reader) (*Index, error) {
	var i Index
	if err := json.NewDecoder(r).Decode(&i); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", FileName, err)
	}
	if err := i.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", FileName, err)
	}
	return &i, nil
}
