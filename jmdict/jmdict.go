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

// Package jmdict converts JMdict entries in the jmdict-simplified JSON format
// into dictionary entries.
//
// See https://github.com/scriptin/jmdict-simplified for the format.
package jmdict

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrFormat indicates that the input is neither a jmdict-simplified object
// nor an array of words.
var ErrFormat = errors.New("unsupported jmdict format")

// Word is a single JMdict entry.
type Word struct {
	ID    string  `json:"id"`
	Kanji []Form  `json:"kanji"`
	Kana  []Form  `json:"kana"`
	Sense []Sense `json:"sense"`
}

// Form is a kanji or kana writing of a word.
type Form struct {
	Text   string   `json:"text"`
	Common bool     `json:"common"`
	Tags   []string `json:"tags"`
}

// Sense is one meaning of a word.
type Sense struct {
	PartOfSpeech []string `json:"partOfSpeech"`
	Gloss        []Gloss  `json:"gloss"`
}

// Gloss is a translation of a sense.
type Gloss struct {
	Text string `json:"text"`

	// Lang is the ISO 639-2 language code. Empty means "eng".
	Lang string `json:"lang"`
}

// Load reads words from r. The input is either a jmdict-simplified document
// (an object with a "words" array) or a bare array of words.
func Load(r io.Reader) ([]Word, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading jmdict: %w", err)
	}

	switch b = bytes.TrimSpace(b); {
	case len(b) == 0:
		return nil, fmt.Errorf("%w: empty input", ErrFormat)
	case b[0] == '{':
		var doc struct {
			Words []Word `json:"words"`
		}
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("decoding jmdict: %w", err)
		}
		return doc.Words, nil
	case b[0] == '[':
		var words []Word
		if err := json.Unmarshal(b, &words); err != nil {
			return nil, fmt.Errorf("decoding jmdict: %w", err)
		}
		return words, nil
	default:
		return nil, fmt.Errorf("%w: expected object or array", ErrFormat)
	}
}

// LoadFile reads words from the named file.
func LoadFile(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		//nolint:wrapcheck // the path error has enough context
		return nil, err
	}
	defer f.Close()

	return Load(f)
}
