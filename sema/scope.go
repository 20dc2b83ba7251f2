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
	"github.com/raviqqe/hamt"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/common"
)

// Variable is a parameter or local variable in scope

type Variable struct {
	Identifier      ast.Identifier
	DeclarationKind common.DeclarationKind
	Type            Type
	IsConstant      bool
	// IsInitialized is false for constants declared without a value,
	// until their first assignment
	IsInitialized bool
	// Depth is the block depth the variable was declared at
	Depth int
}

// IsInout returns true if the variable is a reference to a value owned by the caller
func (v *Variable) IsInout() bool {
	_, ok := v.Type.(*InoutType)
	return ok
}

type scopeEntry struct {
	name string
	next *scopeEntry
}

// ScopeContext holds the parameters and local variables visible at a point of a function body.
//
// A ScopeContext is persistent: declaring a variable returns a new scope
// and leaves the receiver unchanged, so contexts can be copied freely.
// Later declarations shadow earlier declarations of the same name.

type ScopeContext struct {
	variables hamt.Map
	// order is the list of declared names, most recent first
	order *scopeEntry
	depth int
}

func NewScopeContext() *ScopeContext {
	return &ScopeContext{
		variables: hamt.NewMap(),
	}
}

func (s *ScopeContext) Depth() int {
	if s == nil {
		return 0
	}
	return s.depth
}

// Enter returns a scope for a nested block
func (s *ScopeContext) Enter() *ScopeContext {
	if s == nil {
		s = NewScopeContext()
	}
	result := *s
	result.depth++
	return &result
}

// Find returns the innermost variable with the given name,
// or nil if no such variable is in scope
func (s *ScopeContext) Find(name string) *Variable {
	if s == nil {
		return nil
	}
	value := s.variables.Find(common.StringEntry(name))
	if value == nil {
		return nil
	}
	return value.(*Variable)
}

func (s *ScopeContext) IsDeclared(name string) bool {
	return s.Find(name) != nil
}

// IsDeclaredInCurrentBlock returns true if a variable with the given name
// was declared at the depth of this scope
func (s *ScopeContext) IsDeclaredInCurrentBlock(name string) bool {
	variable := s.Find(name)
	return variable != nil && variable.Depth == s.Depth()
}

// Declare returns a new scope in which the given variable is visible
func (s *ScopeContext) Declare(variable *Variable) *ScopeContext {
	if s == nil {
		s = NewScopeContext()
	}

	declared := *variable
	declared.Depth = s.depth

	name := variable.Identifier.Identifier

	return &ScopeContext{
		variables: s.variables.Insert(common.StringEntry(name), &declared),
		order: &scopeEntry{
			name: name,
			next: s.order,
		},
		depth: s.depth,
	}
}

// Initialize returns a new scope in which the variable with the given name is initialized.
// The scope is returned unchanged if no such variable exists.
func (s *ScopeContext) Initialize(name string) *ScopeContext {
	variable := s.Find(name)
	if variable == nil || variable.IsInitialized {
		return s
	}

	initialized := *variable
	initialized.IsInitialized = true

	result := *s
	result.variables = s.variables.Insert(common.StringEntry(name), &initialized)
	return &result
}

// WithInitializationsOf returns a scope in which the constants of this scope
// are initialized if they were initialized in the given scope of a nested block.
// Variables of the nested block shadowing the constants are ignored.
func (s *ScopeContext) WithInitializationsOf(nested *ScopeContext) *ScopeContext {
	result := s
	for _, variable := range s.Variables() {
		if variable.IsInitialized {
			continue
		}

		name := variable.Identifier.Identifier
		nestedVariable := nested.Find(name)
		if nestedVariable == nil ||
			!nestedVariable.IsInitialized ||
			nestedVariable.Depth != variable.Depth ||
			nestedVariable.Identifier != variable.Identifier {

			continue
		}

		result = result.Initialize(name)
	}
	return result
}

// Len returns the number of visible variables
func (s *ScopeContext) Len() int {
	if s == nil {
		return 0
	}
	return s.variables.Size()
}

// Variables returns the visible variables, in declaration order
func (s *ScopeContext) Variables() []*Variable {
	if s == nil {
		return nil
	}

	seen := map[string]struct{}{}
	var names []string
	for entry := s.order; entry != nil; entry = entry.next {
		if _, ok := seen[entry.name]; ok {
			continue
		}
		seen[entry.name] = struct{}{}
		names = append(names, entry.name)
	}

	variables := make([]*Variable, len(names))
	for i, name := range names {
		variables[len(names)-1-i] = s.Find(name)
	}
	return variables
}
