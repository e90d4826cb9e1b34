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

// Package yomitan implements a library for building Yomitan dictionary import
// packages in pure Go.
//
// A Yomitan dictionary package is a zip archive containing several files:
//  1. An index.json file that contains the dictionary title, format, and
//     revision.
//  2. One or more term_bank_<N>.json files containing at most 10,000 term
//     rows each. See package termbank for the row format.
//
// Dictionaries are built by creating entries with [NewEntry], attaching
// either simple text definitions or structured content (see package
// element), and adding them to a [Dictionary]. [Dictionary.Export] writes
// the files into a directory named after the dictionary and
// [Dictionary.Package] zips that directory.
//
//	d := yomitan.New("Example_Dictionary")
//	e := yomitan.NewEntry("食べる", "たべる", "v1")
//	if err := e.AddElement(element.NewChildren(element.TagUl, []*element.Element{
//		element.NewText(element.TagLi, "To eat"),
//	})); err != nil {
//		return err
//	}
//	d.AddEntry(e)
//	if err := d.Export(); err != nil {
//		return err
//	}
//	return d.Package()
//
// More info on the dictionary format can be found at this URL:
// https://github.com/yomidevs/yomitan/blob/master/docs/making-yomitan-dictionaries.md
package yomitan
