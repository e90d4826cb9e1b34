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

// Package termbank implements reading and writing Yomitan term bank files.
//
// A term bank file (term_bank_<N>.json) is a JSON array of rows. Each row is
// an array of exactly eight fields:
//  1. The headword: a string.
//  2. The reading: a string.
//  3. The tag: a grammatical label string, empty if unset.
//  4. A placeholder: always the empty string.
//  5. A placeholder: always the integer 0.
//  6. The content: a string, an array of strings, or a structured content
//     object {"type": "structured-content", "content": [...]}.
//  7. The sequence: the row's zero-based position in the dictionary.
//  8. A placeholder: always the empty string.
//
// Dictionaries are split across term bank files of at most 10,000 rows each.
package termbank
