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

	"github.com/ianlewis/go-yomitan/element"
)

// StructuredContentType is the type marker of a structured content object.
const StructuredContentType = "structured-content"

var errUnknownDefinition = errors.New("unknown definition")

// Definition is the content of a term bank row. A Definition is one of
// [SimpleText], [SimpleList], or [Structured].
type Definition interface {
	isDefinition()
}

// SimpleText is a plain text definition. It is written as a JSON string.
type SimpleText string

func (SimpleText) isDefinition() {}

// SimpleList is a list of plain text definitions. It is written as a JSON
// array of strings.
type SimpleList []string

func (SimpleList) isDefinition() {}

// Structured is a structured content definition. It is written as a single
// object: {"type": "structured-content", "content": [...]}.
type Structured []*element.Element

func (Structured) isDefinition() {}

type wireStructured struct {
	Type    string             `json:"type"`
	Content []*element.Element `json:"content"`
}

// MarshalJSON implements [json.Marshaler].
func (s Structured) MarshalJSON() ([]byte, error) {
	content := []*element.Element(s)
	if content == nil {
		content = []*element.Element{}
	}
	return element.Marshal(wireStructured{
		Type:    StructuredContentType,
		Content: content,
	})
}

// MarshalJSON implements [json.Marshaler]. A nil list is written as an empty
// array.
func (l SimpleList) MarshalJSON() ([]byte, error) {
	list := []string(l)
	if list == nil {
		list = []string{}
	}
	return element.Marshal(list)
}

// decodeDefinition decodes a row's content field.
func decodeDefinition(raw json.RawMessage) (Definition, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty content", element.ErrInvalidContentType)
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decoding text content: %w", err)
		}
		return SimpleText(s), nil
	case '[':
		var l []string
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, fmt.Errorf("%w: %w", element.ErrInvalidContentType, err)
		}
		return SimpleList(l), nil
	case '{':
		var w wireStructured
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("decoding structured content: %w", err)
		}
		if w.Type != StructuredContentType {
			return nil, fmt.Errorf("%w: type %q", element.ErrInvalidContentType, w.Type)
		}
		return Structured(w.Content), nil
	default:
		return nil, fmt.Errorf("%w: %s", element.ErrInvalidContentType, raw)
	}
}

// encodeDefinition returns the value written for a definition.
func encodeDefinition(d Definition) (any, error) {
	switch v := d.(type) {
	case SimpleText:
		return string(v), nil
	case SimpleList:
		return v, nil
	case Structured:
		return v, nil
	case nil:
		return SimpleList{}, nil
	default:
		return nil, fmt.Errorf("%w: %T", errUnknownDefinition, d)
	}
}
