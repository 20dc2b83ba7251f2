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
	"github.com/flint-lang/flint/common"
)

// assignmentTarget is the storage an assignment writes to

type assignmentTarget struct {
	// variable is the local variable or parameter written to, if any
	variable *Variable
	// property is the property of the enclosing type written to, if any
	property *PropertyRecord
	// isSelf is true if the whole enclosing value is written to
	isSelf bool
	// isDirect is true if the variable or property itself is written to,
	// and not one of its members or elements
	isDirect bool
}

// rootAssignmentTarget returns the variable or property the given target expression writes to
func rootAssignmentTarget(expression ast.Expression, context Context) assignmentTarget {
	switch expression := expression.(type) {
	case *ast.IdentifierExpression:
		if expression.Identifier.IsSelf() {
			return assignmentTarget{isSelf: true}
		}
		name := expression.Identifier.Identifier
		if variable := context.Scope.Find(name); variable != nil {
			return assignmentTarget{
				variable: variable,
				isDirect: true,
			}
		}
		return assignmentTarget{
			property: context.Environment.Property(context.EnclosingTypeName(), name),
			isDirect: true,
		}

	case *ast.MemberExpression:
		if identifier, ok := expression.Expression.(*ast.IdentifierExpression); ok &&
			identifier.Identifier.IsSelf() {

			return assignmentTarget{
				property: context.Environment.Property(
					context.EnclosingTypeName(),
					expression.Identifier.Identifier,
				),
				isDirect: true,
			}
		}
		target := rootAssignmentTarget(expression.Expression, context)
		target.isDirect = false
		return target

	case *ast.IndexExpression:
		target := rootAssignmentTarget(expression.TargetExpression, context)
		target.isDirect = false
		return target

	case *ast.ReferenceExpression:
		return rootAssignmentTarget(expression.Expression, context)
	}

	return assignmentTarget{}
}

func (checker *Checker) checkAssignment(c *check, assignment *ast.AssignmentStatement) {
	context := c.context
	target := rootAssignmentTarget(assignment.Target, context)
	targetRange := ast.NewRangeFromPositioned(assignment.Target)

	switch {
	case target.variable != nil:
		checker.checkVariableAssignment(c, assignment, target, targetRange)

	case target.property != nil:
		checker.checkPropertyAssignment(c, target, targetRange)

	case target.isSelf:
		checker.recordMutation(c, targetRange)
	}
}

func (checker *Checker) checkVariableAssignment(
	c *check,
	assignment *ast.AssignmentStatement,
	target assignmentTarget,
	targetRange ast.Range,
) {
	variable := target.variable

	if variable.IsInout() {
		// Writes through references mutate the referenced storage
		checker.recordMutation(c, targetRange)
		return
	}

	if !variable.IsConstant {
		return
	}

	name := variable.Identifier.Identifier

	// Constants declared without a value are initialized by their first assignment
	if target.isDirect && !variable.IsInitialized && !assignment.IsCompound() {
		c.updateContext(func(context *Context) {
			context.Scope = context.Scope.Initialize(name)
		})
		return
	}

	c.report(&AssignmentToConstantError{
		Name:  name,
		Kind:  variable.DeclarationKind,
		Range: targetRange,
	})
}

func (checker *Checker) checkPropertyAssignment(
	c *check,
	target assignmentTarget,
	targetRange ast.Range,
) {
	context := c.context
	property := target.property

	checker.recordMutation(c, targetRange)

	isInitialization := context.IsInInitializer() &&
		target.isDirect &&
		context.Unassigned.Contains(property.Index)

	if property.IsConstant && !isInitialization {
		c.report(&AssignmentToConstantError{
			Name:  property.Identifier,
			Kind:  common.DeclarationKindProperty,
			Range: targetRange,
		})
	}

	if context.IsInInitializer() && target.isDirect {
		c.updateContext(func(context *Context) {
			context.Unassigned = context.Unassigned.Remove(property.Index)
		})
	}
}
