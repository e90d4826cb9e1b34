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

package jmdict

import (
	"fmt"
	"strings"

	"github.com/ianlewis/go-yomitan"
	"github.com/ianlewis/go-yomitan/element"
)

// DefaultLang is the default gloss language.
const DefaultLang = "eng"

// GlossSeparator separates the glosses of a sense.
const GlossSeparator = "; "

// Options are options for Convert.
type Options struct {
	// Lang is the gloss language to include. Defaults to DefaultLang.
	Lang string

	// CommonOnly skips words that have no common kanji or kana form.
	CommonOnly bool
}

// DefaultOptions is the default options for Convert.
var DefaultOptions = &Options{
	Lang: DefaultLang,
}

// Convert converts words into dictionary entries. The headword is the first
// kanji form, or the first kana form if the word has no kanji. The reading is
// the first kana form. The entry tag is the first sense's parts of speech.
// Each sense becomes a list item of an ordered list. Words with no glosses in
// the selected language are skipped.
func Convert(words []Word, opts *Options) ([]*yomitan.Entry, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	lang := opts.Lang
	if lang == "" {
		lang = DefaultLang
	}

	var entries []*yomitan.Entry
	for _, w := range words {
		if opts.CommonOnly && !w.common() {
			continue
		}
		e, err := convertWord(w, lang)
		if err != nil {
			return nil, fmt.Errorf("converting jmdict word %q: %w", w.ID, err)
		}
		if e != nil {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func convertWord(w Word, lang string) (*yomitan.Entry, error) {
	var headword, reading string
	if len(w.Kana) > 0 {
		reading = w.Kana[0].Text
	}
	if len(w.Kanji) > 0 {
		headword = w.Kanji[0].Text
	} else {
		headword = reading
	}
	if headword == "" {
		return nil, nil
	}

	var items []*element.Element
	for _, s := range w.Sense {
		var glosses []string
		for _, g := range s.Gloss {
			glang := g.Lang
			if glang == "" {
				glang = DefaultLang
			}
			if glang == lang {
				glosses = append(glosses, g.Text)
			}
		}
		if len(glosses) == 0 {
			continue
		}
		items = append(items, element.NewText(element.TagLi, strings.Join(glosses, GlossSeparator)))
	}
	if len(items) == 0 {
		return nil, nil
	}

	var tag string
	if len(w.Sense) > 0 {
		tag = strings.Join(w.Sense[0].PartOfSpeech, " ")
	}

	var elemOpts []element.Option
	if w.ID != "" {
		elemOpts = append(elemOpts, element.WithData(map[string]string{"jmdict": w.ID}))
	}

	e := yomitan.NewEntry(headword, reading, tag)
	if err := e.AddElement(element.NewChildren(element.TagOl, items, elemOpts...)); err != nil {
		//nolint:wrapcheck // wrapped by Convert
		return nil, err
	}
	return e, nil
}

func (w Word) common() bool {
	for _, f := range w.Kanji {
		if f.Common {
			return true
		}
	}
	for _, f := range w.Kana {
		if f.Common {
			return true
		}
	}
	return false
}
