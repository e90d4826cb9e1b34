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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ianlewis/go-yomitan/element"
)

// DefaultBatchSize is the maximum number of rows in a term bank file.
const DefaultBatchSize = 10000

// ErrWriterClosed is returned when writing to a closed Writer.
var ErrWriterClosed = errors.New("term bank writer closed")

// WriterOptions are options for a Writer.
type WriterOptions struct {
	// BatchSize is the maximum number of rows per term bank file. Defaults to
	// DefaultBatchSize.
	BatchSize int

	// Indent, if not empty, is used to indent the JSON output.
	Indent string
}

// DefaultWriterOptions is the default options for a Writer.
var DefaultWriterOptions = &WriterOptions{
	BatchSize: DefaultBatchSize,
}

// Writer writes rows to numbered term bank files in a directory. Rows are
// buffered and written to a new file each time the buffer reaches the batch
// size. Files are named term_bank_1.json, term_bank_2.json, etc.
//
// Writer does not hold any file open between calls.
type Writer struct {
	dir       string
	batchSize int
	indent    string

	batch  []Row
	files  []string
	closed bool
}

// NewWriter returns a new Writer that writes term bank files into dir. The
// directory must already exist.
func NewWriter(dir string, options *WriterOptions) *Writer {
	if options == nil {
		options = DefaultWriterOptions
	}
	batchSize := options.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &Writer{
		dir:       dir,
		batchSize: batchSize,
		indent:    options.Indent,
	}
}

// Write adds a row to the current batch. The batch is written to disk when it
// reaches the batch size.
func (w *Writer) Write(r Row) error {
	if w.closed {
		return ErrWriterClosed
	}
	w.batch = append(w.batch, r)
	if len(w.batch) >= w.batchSize {
		return w.flush()
	}
	return nil
}

// Close writes any buffered rows. A Writer that was never written to does not
// create any file.
func (w *Writer) Close() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true
	return w.flush()
}

// Files returns the names of the files written so far, in order.
func (w *Writer) Files() []string {
	return append([]string(nil), w.files...)
}

func (w *Writer) flush() error {
	if len(w.batch) == 0 {
		return nil
	}

	name := FileName(len(w.files) + 1)
	if err := writeRows(filepath.Join(w.dir, name), w.batch, w.indent); err != nil {
		return err
	}
	w.files = append(w.files, name)
	w.batch = nil
	return nil
}

func writeRows(path string, rows []Row, indent string) (err error) {
	b, err := element.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", path, err)
	}
	if indent != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, b, "", indent); err != nil {
			return fmt.Errorf("encoding %q: %w", path, err)
		}
		b = buf.Bytes()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating term bank: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing term bank: %w", cerr)
		}
	}()

	if _, err := f.Write(b); err != nil {
		return fmt.Errorf("writing term bank: %w", err)
	}
	return nil
}
