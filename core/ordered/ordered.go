/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package ordered provides an insertion-ordered map. Column titles are kept
// in one so that header order follows the order in which callers declared
// them, which a plain Go map cannot guarantee.
package ordered

import "iter"

// Map is a map that preserves the order of insertion
type Map[K comparable, V any] struct {
	keys    []K
	values  map[K]V
	version uint64
}

// Pair is a single key-value entry used to build a Map in one call.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// New creates a new ordered map
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		keys:   make([]K, 0),
		values: make(map[K]V),
	}
}

// Of builds a map from pairs, in argument order. Later duplicates overwrite
// the value but keep the position of the first occurrence.
func Of[K comparable, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := New[K, V]()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// P is shorthand for Pair{Key: k, Value: v}.
func P[K comparable, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

// Set adds or updates a key-value pair
func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	m.version++
}

// Delete removes a key-value pair
func (m *Map[K, V]) Delete(key K) {
	if _, exists := m.values[key]; !exists {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	m.version++
}

// Len returns the number of key-value pairs
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Version changes every time the map is mutated. Callers that memoize
// derived data compare it together with the map pointer.
func (m *Map[K, V]) Version() uint64 {
	return m.version
}

// All iterates over the map in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
