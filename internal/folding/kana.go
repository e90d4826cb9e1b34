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

package folding

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

const (
	katakanaFirst = 'ァ' // U+30A1
	katakanaLast  = 'ヶ' // U+30F6

	// kanaOffset is the distance between a katakana rune and the matching
	// hiragana rune.
	kanaOffset = 0x60
)

// KanaFolder folds full-width katakana to hiragana. Katakana without a
// hiragana equivalent (e.g. the prolonged sound mark) is left as is.
type KanaFolder struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer].
func (KanaFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		r = ToHiragana(r)

		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
	}
	return nDst, nSrc, nil
}

// ToHiragana returns the hiragana rune for a katakana rune. Other runes are
// returned unchanged.
func ToHiragana(r rune) rune {
	if katakanaFirst <= r && r <= katakanaLast {
		return r - kanaOffset
	}
	return r
}
