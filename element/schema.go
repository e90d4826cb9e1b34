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
	"slices"
)

// Tag is a structured content tag name.
type Tag string

const (
	// TagBr is a line break. It never has content.
	TagBr = Tag("br")

	// TagRuby is a ruby annotation container.
	TagRuby = Tag("ruby")

	// TagRt is ruby annotation text.
	TagRt = Tag("rt")

	// TagRp is a ruby fallback parenthesis.
	TagRp = Tag("rp")

	TagTable = Tag("table")
	TagThead = Tag("thead")
	TagTbody = Tag("tbody")
	TagTfoot = Tag("tfoot")
	TagTr    = Tag("tr")
	TagTd    = Tag("td")
	TagTh    = Tag("th")

	TagSpan = Tag("span")
	TagDiv  = Tag("div")
	TagOl   = Tag("ol")
	TagUl   = Tag("ul")
	TagLi   = Tag("li")

	// TagImg is an image.
	TagImg = Tag("img")

	// TagA is a link. It is the only tag that accepts an href.
	TagA = Tag("a")
)

// tagSchema describes what a tag accepts.
type tagSchema struct {
	// void is true if the tag never has content.
	void bool

	// href is true if the tag accepts the href attribute.
	href bool
}

var schema = map[Tag]tagSchema{
	TagBr:    {void: true},
	TagRuby:  {},
	TagRt:    {},
	TagRp:    {},
	TagTable: {},
	TagThead: {},
	TagTbody: {},
	TagTfoot: {},
	TagTr:    {},
	TagTd:    {},
	TagTh:    {},
	TagSpan:  {},
	TagDiv:   {},
	TagOl:    {},
	TagUl:    {},
	TagLi:    {},
	TagImg:   {},
	TagA:     {href: true},
}

// Allowed returns true if the tag is a legal structured content tag.
func Allowed(tag Tag) bool {
	_, ok := schema[tag]
	return ok
}

// AllowsHref returns true if the tag accepts an href attribute.
func AllowsHref(tag Tag) bool {
	return schema[tag].href
}

// Tags returns all legal tags in sorted order.
func Tags() []Tag {
	tags := make([]Tag, 0, len(schema))
	for t := range schema {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

func isVoid(tag Tag) bool {
	return schema[tag].void
}
