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
	"github.com/flint-lang/flint/ast"
)

// FunctionActivation is the state of checking one function, initializer or fallback body

type FunctionActivation struct {
	Declaration ast.Declaration
	Name        string
	IsMutating  bool
	// MayMutate is true for initializers and fallbacks, which may always mutate state
	MayMutate     bool
	MutationCount int
	ReturnCount   int
	// Become is the first become statement of the body, if any
	Become *ast.BecomeStatement
}

// CanMutate returns true if state may be mutated in the function
func (a *FunctionActivation) CanMutate() bool {
	return a.IsMutating || a.MayMutate
}

// FunctionActivations is the stack of the functions being checked

type FunctionActivations struct {
	activations []*FunctionActivation
}

func (a *FunctionActivations) EnterFunction(activation *FunctionActivation) {
	a.activations = append(a.activations, activation)
}

func (a *FunctionActivations) LeaveFunction() *FunctionActivation {
	count := len(a.activations)
	if count == 0 {
		return nil
	}
	lastIndex := count - 1
	activation := a.activations[lastIndex]
	a.activations[lastIndex] = nil
	a.activations = a.activations[:lastIndex]
	return activation
}

// Current returns the innermost function activation, or nil outside of functions
func (a *FunctionActivations) Current() *FunctionActivation {
	count := len(a.activations)
	if count == 0 {
		return nil
	}
	return a.activations[count-1]
}
