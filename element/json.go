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

package element

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// wireElement is the JSON form of an element. Absent attributes are omitted
// rather than written as null.
type wireElement struct {
	Tag     Tag               `json:"tag"`
	Content any               `json:"content,omitempty"`
	Href    string            `json:"href,omitempty"`
	Style   map[string]string `json:"style,omitempty"`
	Data    map[string]string `json:"data,omitempty"`
}

// MarshalJSON implements [json.Marshaler].
func (e Element) MarshalJSON() ([]byte, error) {
	w := wireElement{
		Tag:   e.Tag,
		Href:  e.Href,
		Style: e.Style,
		Data:  e.Data,
	}

	switch c := e.Content.(type) {
	case nil:
	case Text:
		w.Content = string(c)
	case Children:
		if c == nil {
			c = Children{}
		}
		w.Content = []*Element(c)
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidContentType, c)
	}

	return Marshal(w)
}

// UnmarshalJSON implements [json.Unmarshaler]. Content must be a JSON string
// or array. A null content is treated as absent.
func (e *Element) UnmarshalJSON(b []byte) error {
	var w struct {
		Tag     Tag               `json:"tag"`
		Content json.RawMessage   `json:"content"`
		Href    string            `json:"href"`
		Style   map[string]string `json:"style"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("decoding element: %w", err)
	}

	el := Element{
		Tag:   w.Tag,
		Href:  w.Href,
		Style: w.Style,
		Data:  w.Data,
	}

	raw := bytes.TrimSpace(w.Content)
	if len(raw) > 0 {
		switch raw[0] {
		case 'n':
			// null
		case '"':
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return fmt.Errorf("decoding %q content: %w", w.Tag, err)
			}
			el.Content = Text(s)
		case '[':
			var children []*Element
			if err := json.Unmarshal(raw, &children); err != nil {
				return fmt.Errorf("decoding %q content: %w", w.Tag, err)
			}
			el.Content = Children(children)
		default:
			return &ValidationError{
				Tag: w.Tag,
				Err: fmt.Errorf("%w: %s", ErrInvalidContentType, raw),
			}
		}
	}

	*e = el
	return nil
}

// Marshal returns the JSON encoding of v without escaping HTML characters.
// Dictionary text routinely contains '<', '>' and '&' and is kept as is.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		//nolint:wrapcheck // error should not be wrapped
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
