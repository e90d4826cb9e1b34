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
	"errors"
	"fmt"

	"github.com/ianlewis/go-yomitan/element"
)

// RowFields is the number of fields in a term bank row.
const RowFields = 8

// ErrInvalidRow indicates that a term bank row does not have the expected
// shape.
var ErrInvalidRow = errors.New("invalid row")

// Row is a single term bank row. Rows are written as a JSON array of exactly
// eight fields:
//
//	[word, reading, tag, "", 0, content, sequence, ""]
//
// The fourth and eighth fields are empty string placeholders and the fifth
// is a zero placeholder required by the importing application.
type Row struct {
	// Word is the headword.
	Word string

	// Reading is the phonetic reading of the headword.
	Reading string

	// Tag is a grammatical or part of speech label.
	Tag string

	// Definition is the row's content.
	Definition Definition

	// Sequence is the row's position in the dictionary.
	Sequence int
}

// Fields returns the row's eight fields in order.
func (r Row) Fields() ([]any, error) {
	content, err := encodeDefinition(r.Definition)
	if err != nil {
		return nil, err
	}
	return []any{
		r.Word,
		r.Reading,
		r.Tag,
		"",
		0,
		content,
		r.Sequence,
		"",
	}, nil
}

// MarshalJSON implements [json.Marshaler].
func (r Row) MarshalJSON() ([]byte, error) {
	fields, err := r.Fields()
	if err != nil {
		return nil, err
	}
	return element.Marshal(fields)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (r *Row) UnmarshalJSON(b []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRow, err)
	}
	if len(fields) != RowFields {
		return fmt.Errorf("%w: want %d fields, got %d", ErrInvalidRow, RowFields, len(fields))
	}

	var row Row
	var placeholder string
	var zero int
	for i, dst := range []any{&row.Word, &row.Reading, &row.Tag, &placeholder, &zero} {
		if err := json.Unmarshal(fields[i], dst); err != nil {
			return fmt.Errorf("%w: field %d: %w", ErrInvalidRow, i+1, err)
		}
	}
	if err := json.Unmarshal(fields[6], &row.Sequence); err != nil {
		return fmt.Errorf("%w: field 7: %w", ErrInvalidRow, err)
	}
	if err := json.Unmarshal(fields[7], &placeholder); err != nil {
		return fmt.Errorf("%w: field 8: %w", ErrInvalidRow, err)
	}

	def, err := decodeDefinition(fields[5])
	if err != nil {
		return fmt.Errorf("%w: field 6: %w", ErrInvalidRow, err)
	}
	row.Definition = def

	*r = row
	return nil
}
