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

// Package folding implements text folding transformers used to build search
// keys for headwords and readings.
package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key returns a new transformer that folds text into a search key. It
// performs NFKC normalization (which also folds half-width katakana and
// full-width latin), whitespace folding, katakana to hiragana folding, and
// case folding.
func Key() transform.Transformer {
	return transform.Chain(
		norm.NFKC,
		&WhitespaceFolder{},
		KanaFolder{},
		cases.Fold(),
	)
}

// String folds s with the transformer returned by Key.
func String(s string) (string, error) {
	folded, _, err := transform.String(Key(), s)
	//nolint:wrapcheck // error should not be wrapped
	return folded, err
}
