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

package sema

import (
	"github.com/bits-and-blooms/bitset"
)

// PropertySet is an immutable set of properties of a composite,
// identified by their declaration index.
// It tracks which properties an initializer has not assigned yet.

type PropertySet struct {
	bits *bitset.BitSet
}

func NewPropertySet(indices ...int) *PropertySet {
	bits := bitset.New(uint(len(indices)))
	for _, index := range indices {
		bits.Set(uint(index))
	}
	return &PropertySet{
		bits: bits,
	}
}

func (s *PropertySet) Contains(index int) bool {
	if s == nil {
		return false
	}
	return s.bits.Test(uint(index))
}

// Remove returns a set without the given property.
// The receiver is returned if it does not contain the property.
func (s *PropertySet) Remove(index int) *PropertySet {
	if !s.Contains(index) {
		return s
	}
	bits := s.bits.Clone()
	bits.Clear(uint(index))
	return &PropertySet{
		bits: bits,
	}
}

func (s *PropertySet) IsEmpty() bool {
	return s == nil || s.bits.None()
}

func (s *PropertySet) Len() int {
	if s == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Indices returns the indices of the properties in the set, in ascending order
func (s *PropertySet) Indices() []int {
	if s == nil {
		return nil
	}
	indices := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		indices = append(indices, int(i))
	}
	return indices
}
