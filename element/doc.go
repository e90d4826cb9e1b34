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

// Package element implements Yomitan structured content.
//
// Structured content is a tree of elements that describes a rich text
// definition. Each element has three parts:
//  1. A tag: one of a fixed set of HTML-like tag names (see [Allowed]).
//  2. Optional content: either a text string or an ordered list of child
//     elements.
//  3. Optional attributes: an href (only on links), a style mapping of
//     CSS-like properties, and a data mapping of opaque annotations.
//
// Elements are constructed without any checks. Trees are checked with
// [Validate] when they are attached to a dictionary entry.
package element
