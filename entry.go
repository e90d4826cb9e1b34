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
	"fmt"
	"slices"

	"github.com/ianlewis/go-yomitan/element"
	"github.com/ianlewis/go-yomitan/termbank"
)

var (
	// ErrUnsupportedElement indicates an element tag outside of the allowed
	// tag set.
	ErrUnsupportedElement = element.ErrUnsupportedElement

	// ErrIllegalAttribute indicates an href on a tag other than a link.
	ErrIllegalAttribute = element.ErrIllegalAttribute

	// ErrInvalidContentType indicates content of the wrong type.
	ErrInvalidContentType = element.ErrInvalidContentType
)

// Entry is a dictionary entry. An entry's definition is either simple content
// (a string or a list of strings) or structured content. The last call to
// SetSimpleContent or AddElement determines which. Switching from one to the
// other discards the previous content.
type Entry struct {
	word    string
	reading string
	tag     string
	def     termbank.Definition
}

// NewEntry returns a new entry with no content. tag is a grammatical label
// and may be empty.
func NewEntry(word, reading, tag string) *Entry {
	return &Entry{
		word:    word,
		reading: reading,
		tag:     tag,
	}
}

// Word returns the entry's headword.
func (e *Entry) Word() string {
	return e.word
}

// Reading returns the entry's reading.
func (e *Entry) Reading() string {
	return e.reading
}

// Tag returns the entry's grammatical label.
func (e *Entry) Tag() string {
	return e.tag
}

// Definition returns the entry's content. It is nil if no content was set.
func (e *Entry) Definition() termbank.Definition {
	return e.def
}

// IsStructured returns true if the entry holds structured content.
func (e *Entry) IsStructured() bool {
	_, ok := e.def.(termbank.Structured)
	return ok
}

// SetSimpleContent replaces the entry's content with a simple definition.
// definition must be a string or a []string.
func (e *Entry) SetSimpleContent(definition any) error {
	switch d := definition.(type) {
	case string:
		e.def = termbank.SimpleText(d)
	case []string:
		e.def = termbank.SimpleList(slices.Clone(d))
	default:
		return fmt.Errorf("%w: simple content must be a string or a list of strings, got %T",
			ErrInvalidContentType, definition)
	}
	return nil
}

// AddElement validates the element tree and appends a copy of it to the
// entry's structured content. If validation fails the entry is not modified.
// If the entry held simple content, it is replaced.
func (e *Entry) AddElement(el *element.Element) error {
	if err := element.Validate(el); err != nil {
		//nolint:wrapcheck // validation errors are returned as is
		return err
	}
	s, _ := e.def.(termbank.Structured)
	e.def = append(s, el.Clone())
	return nil
}

// SetLinkContent replaces the entry's content with a definition followed by a
// link, e.g. to the source of the definition.
func (e *Entry) SetLinkContent(definition, link string) {
	e.def = termbank.Structured(element.LinkList(definition, link))
}

// Row returns the entry's term bank row. The row's sequence is zero. The
// sequence is assigned when the dictionary is exported.
func (e *Entry) Row() termbank.Row {
	return termbank.Row{
		Word:       e.word,
		Reading:    e.reading,
		Tag:        e.tag,
		Definition: e.def,
	}
}

// String returns a plain text rendering of the entry.
func (e *Entry) String() string {
	return RowString(e.Row())
}

// RowString returns a plain text rendering of a row. The first line holds
// the headword with its reading and tag. The definition follows.
func RowString(r termbank.Row) string {
	str := r.Word
	if r.Reading != "" && r.Reading != r.Word {
		str += " [" + r.Reading + "]"
	}
	if r.Tag != "" {
		str += " (" + r.Tag + ")"
	}
	if text := DefinitionText(r.Definition); text != "" {
		str += "\n" + text
	}
	return str
}

// DefinitionText returns a plain text rendering of a definition.
func DefinitionText(d termbank.Definition) string {
	switch v := d.(type) {
	case termbank.SimpleText:
		return string(v)
	case termbank.SimpleList:
		var str string
		for i, s := range v {
			if i > 0 {
				str += "\n"
			}
			str += s
		}
		return str
	case termbank.Structured:
		return element.PlainText(v)
	default:
		return ""
	}
}
