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

// Package search implements a simple sorted in-memory index.
package search

import (
	"cmp"
	"slices"
	"sort"
)

type keyed[V any] struct {
	key   string
	order int
	value V
}

// Index is a sorted index of values. Each value can be indexed under several
// keys.
type Index[V any] struct {
	// entries are sorted by key, then by original order.
	entries []keyed[V]
}

// New returns a new index of values. keys returns the keys a value is indexed
// under. Duplicate keys for the same value are ignored.
func New[V any](values []V, keys func(V) []string) *Index[V] {
	var entries []keyed[V]
	for i, v := range values {
		seen := map[string]bool{}
		for _, k := range keys(v) {
			if seen[k] {
				continue
			}
			seen[k] = true
			entries = append(entries, keyed[V]{
				key:   k,
				order: i,
				value: v,
			})
		}
	}

	slices.SortFunc(entries, func(a, b keyed[V]) int {
		if c := cmp.Compare(a.key, b.key); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})

	return &Index[V]{
		entries: entries,
	}
}

// Len returns the number of indexed keys.
func (idx *Index[V]) Len() int {
	return len(idx.entries)
}

// Search returns the values indexed under key in their original order.
func (idx *Index[V]) Search(key string) []V {
	i, found := sort.Find(len(idx.entries), func(i int) int {
		return cmp.Compare(key, idx.entries[i].key)
	})
	if !found {
		return nil
	}

	var result []V
	for ; i < len(idx.entries) && idx.entries[i].key == key; i++ {
		result = append(result, idx.entries[i].value)
	}
	return result
}
