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
	"maps"
)

// Content is the content of an element. Content is either [Text] or
// [Children]. A nil Content means the element has no content.
type Content interface {
	isContent()
}

// Text is literal text content.
type Text string

func (Text) isContent() {}

// Children is an ordered list of child elements.
type Children []*Element

func (Children) isContent() {}

// Element is a single node in a structured content tree. An Element owns its
// children. Trees are built by appending children and never by re-parenting
// existing nodes.
type Element struct {
	// Tag is the element's tag name.
	Tag Tag

	// Content is the element's content. It is nil for elements without
	// content such as line breaks.
	Content Content

	// Href is the link target. It is only legal on links.
	Href string

	// Style holds CSS-like style properties, e.g. "listStyleType".
	Style map[string]string

	// Data holds opaque annotations such as provenance markers.
	Data map[string]string
}

// Option sets an optional element attribute.
type Option func(*Element)

// WithHref sets the element's href attribute.
func WithHref(href string) Option {
	return func(e *Element) {
		e.Href = href
	}
}

// WithStyle sets the element's style attribute.
func WithStyle(style map[string]string) Option {
	return func(e *Element) {
		if len(style) > 0 {
			e.Style = style
		}
	}
}

// WithData sets the element's data attribute.
func WithData(data map[string]string) Option {
	return func(e *Element) {
		if len(data) > 0 {
			e.Data = data
		}
	}
}

// New returns a new element. Tags that cannot hold content (e.g. [TagBr])
// never have content set regardless of the content argument. New does not
// validate the element.
func New(tag Tag, content Content, opts ...Option) *Element {
	e := &Element{
		Tag: tag,
	}
	if !isVoid(tag) {
		e.Content = content
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// NewText returns a new element with text content.
func NewText(tag Tag, text string, opts ...Option) *Element {
	return New(tag, Text(text), opts...)
}

// NewChildren returns a new element with the given child elements.
func NewChildren(tag Tag, children []*Element, opts ...Option) *Element {
	if children == nil {
		children = []*Element{}
	}
	return New(tag, Children(children), opts...)
}

// Append appends children to the element's content. If the element has no
// content, or has text content, the content is replaced by the children.
func (e *Element) Append(children ...*Element) *Element {
	c, _ := e.Content.(Children)
	e.Content = append(c, children...)
	return e
}

// Clone returns a deep copy of the element tree.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	c := &Element{
		Tag:   e.Tag,
		Href:  e.Href,
		Style: maps.Clone(e.Style),
		Data:  maps.Clone(e.Data),
	}
	switch content := e.Content.(type) {
	case Children:
		children := make(Children, len(content))
		for i, child := range content {
			children[i] = child.Clone()
		}
		c.Content = children
	default:
		c.Content = content
	}
	return c
}

// Link returns a link element with the given text and target.
func Link(text, href string) *Element {
	return NewText(TagA, text, WithHref(href))
}

// LinkList returns a two item structured definition: an unordered list
// holding the definition text followed by an unordered list holding a link.
func LinkList(definition, href string) []*Element {
	return []*Element{
		NewChildren(TagUl, []*Element{
			NewText(TagLi, definition),
		}),
		NewChildren(TagUl, []*Element{
			NewChildren(TagLi, []*Element{Link(href, href)}),
		}, WithStyle(map[string]string{"listStyleType": `"⧉"`})),
	}
}
