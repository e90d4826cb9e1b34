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
	"strings"
)

// PlainText returns a plain text rendering of the elements. Block-like
// elements (div, list items, table rows) and line breaks start new lines.
// Ruby annotations are rendered in parentheses after the base text.
func PlainText(elems []*Element) string {
	var b strings.Builder
	for _, e := range elems {
		writeText(&b, e)
	}
	return strings.TrimSpace(b.String())
}

func writeText(b *strings.Builder, e *Element) {
	if e == nil {
		return
	}

	switch e.Tag {
	case TagBr:
		b.WriteString("\n")
		return
	case TagRp:
		// Fallback parentheses are replaced by our own around rt.
		return
	case TagRt:
		b.WriteString("(")
		defer b.WriteString(")")
	case TagDiv, TagLi, TagTr, TagOl, TagUl, TagTable:
		newline(b)
		defer newline(b)
	case TagTd, TagTh:
		defer b.WriteString("\t")
	}

	switch c := e.Content.(type) {
	case Text:
		b.WriteString(string(c))
	case Children:
		for _, child := range c {
			writeText(b, child)
		}
	}
}

// newline starts a new line unless the builder is empty or already at the
// start of a line.
func newline(b *strings.Builder) {
	s := b.String()
	if s == "" || strings.HasSuffix(s, "\n") {
		return
	}
	b.WriteString("\n")
}
