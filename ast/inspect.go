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

package ast

// Inspect traverses the given element in depth-first order.
// It calls f(element) for each element before it visits the element's children.
// If f returns false, the children of the element are skipped.
func Inspect(element Element, f func(Element) bool) {
	if element == nil || !f(element) {
		return
	}
	element.Walk(func(child Element) {
		Inspect(child, f)
	})
}

// ElementTypes returns the element types of all elements of the given element, in pre-order.
func ElementTypes(element Element) []ElementType {
	var types []ElementType
	Inspect(element, func(element Element) bool {
		types = append(types, element.ElementType())
		return true
	})
	return types
}
