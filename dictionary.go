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
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ianlewis/go-yomitan/index"
	"github.com/ianlewis/go-yomitan/internal/archive"
	"github.com/ianlewis/go-yomitan/termbank"
)

var (
	// ErrInvalidName indicates that the dictionary name cannot be used as a
	// directory name.
	ErrInvalidName = errors.New("invalid dictionary name")

	// ErrFilesystem indicates that a filesystem operation failed while
	// exporting or packaging a dictionary.
	ErrFilesystem = errors.New("filesystem failure")
)

// Option is an option for a Dictionary.
type Option func(*Dictionary)

// WithIndex sets the descriptor metadata written to index.json. The title
// and format are always the dictionary name and the supported format. An
// empty revision keeps the default.
func WithIndex(i index.Index) Option {
	return func(d *Dictionary) {
		d.index.Sequenced = i.Sequenced
		d.index.Author = i.Author
		d.index.URL = i.URL
		d.index.Description = i.Description
		d.index.Attribution = i.Attribution
		if i.Revision != "" {
			d.index.Revision = i.Revision
		}
	}
}

// WithBatchSize sets the maximum number of rows per term bank file.
func WithBatchSize(n int) Option {
	return func(d *Dictionary) {
		d.batchSize = n
	}
}

// WithBaseDir sets the directory in which the dictionary directory and
// archive are created. Defaults to the current working directory.
func WithBaseDir(dir string) Option {
	return func(d *Dictionary) {
		d.baseDir = dir
	}
}

// WithIndent causes exported JSON files to be indented.
func WithIndent(indent string) Option {
	return func(d *Dictionary) {
		d.indent = indent
	}
}

// Dictionary is an ordered collection of entries that can be exported to a
// Yomitan dictionary package.
type Dictionary struct {
	name      string
	baseDir   string
	index     index.Index
	batchSize int
	indent    string

	entries []*Entry
}

// New returns a new empty dictionary. The name is used as the dictionary
// title, the export directory name, and the archive base name.
func New(name string, opts ...Option) *Dictionary {
	d := &Dictionary{
		name:      name,
		index:     *index.New(name),
		batchSize: termbank.DefaultBatchSize,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Name returns the dictionary name.
func (d *Dictionary) Name() string {
	return d.name
}

// AddEntry appends an entry to the dictionary. Entries are exported in the
// order they were added. The dictionary holds a reference to the entry so
// later changes to the entry are reflected on export.
func (d *Dictionary) AddEntry(e *Entry) {
	d.entries = append(d.entries, e)
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns the dictionary's entries in order.
func (d *Dictionary) Entries() []*Entry {
	return slices.Clone(d.entries)
}

// Dir returns the path of the export directory.
func (d *Dictionary) Dir() string {
	return filepath.Join(d.baseDir, d.name)
}

// ArchivePath returns the path of the dictionary package.
func (d *Dictionary) ArchivePath() string {
	return filepath.Join(d.baseDir, d.name+".zip")
}

// Export writes the dictionary to its export directory. Any existing
// directory is removed first. The directory then contains index.json and
// term bank files of at most the batch size each. Each entry's row is given
// its position in the dictionary as its sequence number.
//
// Export is not atomic. If it fails the directory may be partially written.
func (d *Dictionary) Export() error {
	if err := d.validateName(); err != nil {
		return err
	}

	dir := d.Dir()
	if err := os.RemoveAll(dir); err != nil {
		return fsError(fmt.Errorf("removing %q: %w", dir, err))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fsError(fmt.Errorf("creating %q: %w", dir, err))
	}

	if err := index.Write(dir, &d.index); err != nil {
		return fsError(err)
	}

	w := termbank.NewWriter(dir, &termbank.WriterOptions{
		BatchSize: d.batchSize,
		Indent:    d.indent,
	})
	for i, e := range d.entries {
		row := e.Row()
		row.Sequence = i
		if err := w.Write(row); err != nil {
			return fsError(fmt.Errorf("exporting %q: %w", e.Word(), err))
		}
	}
	if err := w.Close(); err != nil {
		return fsError(err)
	}
	return nil
}

// Package creates a zip archive of the export directory. An existing archive
// is replaced. Export must be called first.
func (d *Dictionary) Package() error {
	if err := d.validateName(); err != nil {
		return err
	}

	dir := d.Dir()
	if _, err := os.Stat(dir); err != nil {
		return fsError(fmt.Errorf("packaging %q: %w", d.name, err))
	}
	if err := archive.Zip(d.ArchivePath(), dir); err != nil {
		return fsError(err)
	}
	return nil
}

// validateName rejects names that would resolve outside of a single
// directory under the base directory.
func (d *Dictionary) validateName() error {
	switch {
	case d.name == "", d.name == ".", d.name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, d.name)
	case strings.ContainsAny(d.name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, d.name)
	}
	return nil
}

// fsError marks err as a filesystem failure if it was caused by one.
func fsError(err error) error {
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	var sysErr *os.SyscallError
	if errors.As(err, &pathErr) || errors.As(err, &linkErr) || errors.As(err, &sysErr) {
		return fmt.Errorf("%w: %w", ErrFilesystem, err)
	}
	return err
}
