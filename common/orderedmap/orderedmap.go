/*
 * Flint - The capability-oriented smart contract programming language
 *
 * Copyright Flint Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


// Package orderedmap provides a map which remembers the insertion order of its keys.
// Iteration over declarations must be deterministic, so every declaration table
// of the environment is an OrderedMap.
package orderedmap

import (
	"iter"
)

// OrderedMap
//
// The zero value is an empty map ready to use.
type OrderedMap[K comparable, V any] struct {
	indices map[K]int
	keys    []K
	values  []V
}

// New returns a new OrderedMap of the given size
func New[T OrderedMap[K, V], K comparable, V any](size int) *T {
	return &T{
		indices: make(map[K]int, size),
		keys:    make([]K, 0, size),
		values:  make([]V, 0, size),
	}
}

// Get returns the value associated with the given key.
// The second return value indicates if the key is present in the map.
func (om *OrderedMap[K, V]) Get(key K) (result V, present bool) {
	if om == nil {
		return
	}

	index, present := om.indices[key]
	if !present {
		return
	}
	return om.values[index], true
}

// Set sets the key-value pair, and returns what `Get` would have returned
// on that key prior to the call to `Set`.
// Replacing the value of a key keeps the key's position.
func (om *OrderedMap[K, V]) Set(key K, value V) (oldValue V, present bool) {
	if om.indices == nil {
		om.indices = make(map[K]int)
	}

	index, present := om.indices[key]
	if present {
		oldValue = om.values[index]
		om.values[index] = value
		return oldValue, true
	}

	om.indices[key] = len(om.keys)
	om.keys = append(om.keys, key)
	om.values = append(om.values, value)

	return
}

// Len returns the length of the ordered map.
func (om *OrderedMap[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.keys)
}

// All returns an iterator over the key-value pairs in insertion order.
func (om *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if om == nil {
			return
		}
		for i, key := range om.keys {
			if !yield(key, om.values[i]) {
				return
			}
		}
	}
}

// Keys returns a copy of the keys in insertion order.
func (om *OrderedMap[K, V]) Keys() []K {
	if om == nil {
		return nil
	}
	return append([]K(nil), om.keys...)
}

// Values returns a copy of the values in insertion order.
func (om *OrderedMap[K, V]) Values() []V {
	if om == nil {
		return nil
	}
	return append([]V(nil), om.values...)
}
