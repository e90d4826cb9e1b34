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
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrUnsupportedElement indicates that an element's tag is not in the
	// allowed tag set.
	ErrUnsupportedElement = errors.New("unsupported element")

	// ErrIllegalAttribute indicates that an attribute is set on a tag that
	// does not accept it.
	ErrIllegalAttribute = errors.New("illegal attribute")

	// ErrInvalidContentType indicates that content is neither text nor a list
	// of elements.
	ErrInvalidContentType = errors.New("invalid content type")
)

// ValidationError is returned when an element tree fails validation. It wraps
// one of ErrUnsupportedElement, ErrIllegalAttribute, or ErrInvalidContentType.
type ValidationError struct {
	// Path is the location of the offending element relative to the root,
	// e.g. "content[1].content[0]". It is empty for the root element.
	Path string

	// Tag is the offending element's tag.
	Tag Tag

	// Attribute is the offending attribute name, if any.
	Attribute string

	// Err is the underlying error kind.
	Err error
}

func (e *ValidationError) Error() string {
	var msg string
	switch {
	case e.Attribute != "":
		msg = fmt.Sprintf("%v: %q on %q, only allowed on %q", e.Err, e.Attribute, e.Tag, TagA)
	case e.Tag != "":
		msg = fmt.Sprintf("%v: %q", e.Err, e.Tag)
	default:
		msg = e.Err.Error()
	}
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks that the element tree is well formed. A tree is well formed
// if every element's tag is allowed, href only appears on links, and content
// is either text or a list of well formed elements. Children are checked depth
// first, left to right, and the first failure is returned.
func Validate(e *Element) error {
	return validate(e, "")
}

func validate(e *Element, path string) error {
	if e == nil {
		return &ValidationError{
			Path: path,
			Err:  fmt.Errorf("%w: nil element", ErrInvalidContentType),
		}
	}

	s, ok := schema[e.Tag]
	if !ok {
		return &ValidationError{
			Path: path,
			Tag:  e.Tag,
			Err:  ErrUnsupportedElement,
		}
	}

	if e.Href != "" && !s.href {
		return &ValidationError{
			Path:      path,
			Tag:       e.Tag,
			Attribute: "href",
			Err:       ErrIllegalAttribute,
		}
	}

	switch c := e.Content.(type) {
	case nil, Text:
	case Children:
		for i, child := range c {
			if err := validate(child, childPath(path, i)); err != nil {
				return err
			}
		}
	default:
		return &ValidationError{
			Path: path,
			Tag:  e.Tag,
			Err:  fmt.Errorf("%w: %T", ErrInvalidContentType, c),
		}
	}

	return nil
}

func childPath(path string, i int) string {
	p := "content[" + strconv.Itoa(i) + "]"
	if path == "" {
		return p
	}
	return path + "." + p
}
