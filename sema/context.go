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
	"slices"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/common"
)

// Context is the state of a pass at an element.
//
// Contexts are values: the walker copies the context for each child,
// so changes made while visiting a child are not visible to its siblings,
// except for the scope and the unassigned properties, which flow from statement to statement.

type Context struct {
	Environment *Environment
	Elaboration *Elaboration
	// Location is the location of the program diagnostics are reported for
	Location common.Location
	// Scope are the parameters and local variables in scope
	Scope *ScopeContext

	// Enclosing declarations.
	// Contract is also set inside of the behavior declarations of the contract.

	Contract         *ast.ContractDeclaration
	ContractBehavior *ast.ContractBehaviorDeclaration
	Struct           *ast.StructDeclaration
	Trait            *ast.TraitDeclaration
	Enum             *ast.EnumDeclaration
	Event            *ast.EventDeclaration
	Function         *ast.FunctionDeclaration
	Special          *ast.SpecialDeclaration

	// Capabilities of the enclosing contract behavior declaration

	CallerProtections []string
	TypeStates        []string
	CallerBinding     *ast.Identifier

	// Modes

	InAssignmentTarget     bool
	InBecome               bool
	InEmit                 bool
	InIfCondition          bool
	InPropertyDefaultValue bool
	InSubscript            bool
	InExternalCall         bool

	// DefaultValueProperty is the property whose default value is visited
	DefaultValueProperty *ast.VariableDeclaration

	// DoCatchStack are the open do/catch statements, innermost last
	DoCatchStack []*ast.DoCatchStatement
	// ReceiverTrail are the receivers of the member access or call chain being visited,
	// outermost first. For `a.b.c`, the trail at `c` is `a`, `a.b`.
	ReceiverTrail []ast.Expression
	// Unassigned are the properties an initializer did not assign yet
	Unassigned *PropertySet
}

func NewContext(environment *Environment, elaboration *Elaboration) Context {
	return Context{
		Environment: environment,
		Elaboration: elaboration,
		Scope:       NewScopeContext(),
	}
}

// IsZero returns true for the zero context, which passes return to leave the context unchanged
func (c Context) IsZero() bool {
	return c.Environment == nil
}

// EnclosingTypeName returns the name of the enclosing contract, struct or trait,
// or the empty string at the top level
func (c Context) EnclosingTypeName() string {
	switch {
	case c.ContractBehavior != nil:
		return c.ContractBehavior.ContractIdentifier.Identifier
	case c.Contract != nil:
		return c.Contract.Identifier.Identifier
	case c.Struct != nil:
		return c.Struct.Identifier.Identifier
	case c.Trait != nil:
		return c.Trait.Identifier.Identifier
	case c.Enum != nil:
		return c.Enum.Identifier.Identifier
	}
	return ""
}

// EnclosingType returns the type of `self`, or nil at the top level
func (c Context) EnclosingType() Type {
	name := c.EnclosingTypeName()
	if name == "" {
		return nil
	}
	return c.Environment.typeNamed(name)
}

// EnclosingFunction returns the enclosing function, initializer or fallback declaration,
// or nil outside of function bodies
func (c Context) EnclosingFunction() ast.Declaration {
	if c.Function != nil {
		return c.Function
	}
	if c.Special != nil {
		return c.Special
	}
	return nil
}

func (c Context) IsInFunction() bool {
	return c.Function != nil || c.Special != nil
}

func (c Context) IsInInitializer() bool {
	return c.Special != nil && c.Special.IsInitializer()
}

func (c Context) IsInContractBehavior() bool {
	return c.ContractBehavior != nil
}

// WithDoCatch returns a context in which the given do/catch statement is the innermost open one
func (c Context) WithDoCatch(statement *ast.DoCatchStatement) Context {
	c.DoCatchStack = append(slices.Clip(c.DoCatchStack), statement)
	return c
}

// InnermostDoCatch returns the innermost open do/catch statement, if any
func (c Context) InnermostDoCatch() *ast.DoCatchStatement {
	count := len(c.DoCatchStack)
	if count == 0 {
		return nil
	}
	return c.DoCatchStack[count-1]
}

// WithReceiver returns a context in which the given expression is appended to the receiver trail
func (c Context) WithReceiver(receiver ast.Expression) Context {
	c.ReceiverTrail = append(slices.Clip(c.ReceiverTrail), receiver)
	return c
}

// HasAnyCallerProtection returns true if the active caller protections include `any`
func (c Context) HasAnyCallerProtection() bool {
	return slices.Contains(c.CallerProtections, ast.AnyIdentifier)
}

// IsCallerBinding returns true if the given name is the caller binding of the enclosing behavior
func (c Context) IsCallerBinding(name string) bool {
	return c.CallerBinding != nil && c.CallerBinding.Identifier == name
}

// withoutModes returns a copy of the context with all expression modes cleared.
// Arguments of calls are evaluated independently of the call's own position.
func (c Context) withoutModes() Context {
	c.InAssignmentTarget = false
	c.InEmit = false
	c.InExternalCall = false
	c.InSubscript = false
	c.ReceiverTrail = nil
	return c
}

// Diagnostic returns the diagnostic for the given error, at the location of the program
func (c Context) Diagnostic(err error) Diagnostic {
	return NewDiagnostic(c.Location, err)
}

// carry returns the context with the accumulating state of the given child context
func (c Context) carry(child Context) Context {
	c.Scope = child.Scope
	c.Unassigned = child.Unassigned
	return c
}
