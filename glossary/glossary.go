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

// Package glossary reads dictionary entries from tab separated glossary
// files.
//
// Each line holds a single entry:
//
//	word<TAB>reading<TAB>tag<TAB>definition[<TAB>definition...]
//
// Blank lines and lines starting with '#' are ignored. An entry with a single
// definition gets a text definition. An entry with more than one gets a list
// of definitions.
package glossary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/k3a/html2text"

	"github.com/ianlewis/go-yomitan"
	"github.com/ianlewis/go-yomitan/internal/folding"
)

// maxLineSize is the maximum length of a single glossary line.
const maxLineSize = 1 << 20

// ErrSyntax indicates a malformed glossary line.
var ErrSyntax = errors.New("glossary syntax error")

// Options are options for a Scanner.
type Options struct {
	// HTML indicates that definitions are HTML and should be converted to
	// plain text.
	HTML bool

	// Readings fills in missing readings using morphological analysis of
	// the word. Readings are written in hiragana.
	Readings bool
}

// DefaultOptions is the default options for a Scanner.
var DefaultOptions = &Options{}

// Scanner reads entries from a glossary file one line at a time.
type Scanner struct {
	s    *bufio.Scanner
	opts Options
	tok  *tokenizer.Tokenizer

	line  int
	entry *yomitan.Entry
	err   error
}

// NewScanner returns a new Scanner reading from r.
func NewScanner(r io.Reader, opts *Options) (*Scanner, error) {
	if opts == nil {
		opts = DefaultOptions
	}

	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineSize)

	scanner := &Scanner{
		s:    s,
		opts: *opts,
	}
	if opts.Readings {
		t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
		if err != nil {
			return nil, fmt.Errorf("creating tokenizer: %w", err)
		}
		scanner.tok = t
	}
	return scanner, nil
}

// Scan advances to the next entry. It returns false at the end of the input
// or on the first error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.s.Scan() {
		s.line++
		line := s.s.Text()
		if s.line == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		e, err := s.parse(line)
		if err != nil {
			s.err = fmt.Errorf("line %d: %w", s.line, err)
			return false
		}
		s.entry = e
		return true
	}
	if err := s.s.Err(); err != nil {
		s.err = fmt.Errorf("reading glossary: %w", err)
	}
	return false
}

// Entry returns the entry read by the last call to Scan.
func (s *Scanner) Entry() *yomitan.Entry {
	return s.entry
}

// Err returns the first error encountered by the Scanner.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) parse(line string) (*yomitan.Entry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: want at least 4 fields, got %d", ErrSyntax, len(fields))
	}

	word := strings.TrimSpace(fields[0])
	if word == "" {
		return nil, fmt.Errorf("%w: empty word", ErrSyntax)
	}
	reading := strings.TrimSpace(fields[1])
	if reading == "" && s.tok != nil {
		reading = s.reading(word)
	}

	var defs []string
	for _, d := range fields[3:] {
		if s.opts.HTML {
			d = html2text.HTML2TextWithOptions(d, html2text.WithUnixLineBreaks())
		}
		if d = strings.TrimSpace(d); d != "" {
			defs = append(defs, d)
		}
	}

	e := yomitan.NewEntry(word, reading, strings.TrimSpace(fields[2]))
	var err error
	if len(defs) == 1 {
		err = e.SetSimpleContent(defs[0])
	} else {
		err = e.SetSimpleContent(defs)
	}
	//nolint:wrapcheck // content is always a string or a list of strings
	return e, err
}

// reading returns the hiragana reading of word. Tokens with no known reading
// are used as is.
func (s *Scanner) reading(word string) string {
	var b strings.Builder
	for _, t := range s.tok.Tokenize(word) {
		if t.Class == tokenizer.DUMMY {
			continue
		}
		r := t.Surface
		if features := t.Features(); len(features) > 7 && features[7] != "*" {
			r = features[7]
		}
		b.WriteString(strings.Map(folding.ToHiragana, r))
	}
	return b.String()
}

// ReadAll reads all entries from r.
func ReadAll(r io.Reader, opts *Options) ([]*yomitan.Entry, error) {
	s, err := NewScanner(r, opts)
	if err != nil {
		return nil, err
	}

	var entries []*yomitan.Entry
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	return entries, s.Err()
}
