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

func (checker *Checker) preVisitExpression(c *check, expression ast.Expression) {
	switch expression := expression.(type) {
	case *ast.IdentifierExpression:
		checker.checkIdentifierExpression(c, expression)

	case *ast.MemberExpression:
		checker.checkMemberExpression(c, expression)

	case *ast.ExternalCallExpression:
		checker.checkExternalCallExpression(c, expression)

	case *ast.RangeExpression:
		checker.checkRangeExpression(c, expression)
	}
}

func (checker *Checker) postVisitExpression(c *check, expression ast.Expression) {
	if invocation, ok := expression.(*ast.InvocationExpression); ok {
		checker.checkInvocationExpression(c, invocation)
	}

	if elaboration := c.context.Elaboration; elaboration != nil {
		elaboration.ExpressionTypes[expression] = TypeOf(expression, c.context)
	}
}

// isIdentifierDeclared returns true if the given name refers to a variable, parameter,
// caller binding, property of the enclosing type, or a type
func isIdentifierDeclared(identifier ast.Identifier, context Context) bool {
	if identifier.IsSelf() {
		return context.EnclosingTypeName() != ""
	}

	name := identifier.Identifier
	env := context.Environment

	return context.Scope.IsDeclared(name) ||
		context.IsCallerBinding(name) ||
		env.IsPropertyDeclared(context.EnclosingTypeName(), name) ||
		env.IsTypeDeclared(name)
}

// checkIdentifierExpression reports undeclared identifiers,
// once per name and enclosing function or property
func (checker *Checker) checkIdentifierExpression(c *check, expression *ast.IdentifierExpression) {
	context := c.context
	if isIdentifierDeclared(expression.Identifier, context) {
		return
	}

	var owner ast.Declaration
	if function := context.EnclosingFunction(); function != nil {
		owner = function
	} else if context.DefaultValueProperty != nil {
		owner = context.DefaultValueProperty
	}

	env := context.Environment
	name := expression.Identifier.Identifier
	if env.IsUsedUndefinedVariable(owner, name) {
		return
	}
	env.AddUsedUndefinedVariable(owner, name)

	c.report(&NotDeclaredError{
		ExpectedKind: common.DeclarationKindVariable,
		Name:         name,
		Pos:          expression.Identifier.Pos,
	})
}

func (checker *Checker) checkMemberExpression(c *check, expression *ast.MemberExpression) {
	receiverType, ok := UnwrapInout(TypeOf(expression.Expression, c.context)).(*UserDefinedType)
	if !ok {
		return
	}

	env := c.context.Environment
	name := expression.Identifier.Identifier

	switch receiverType.Kind {
	case TypeKindEnum:
		enum := env.Enum(receiverType.Name)
		if enum == nil || enum.HasCase(name) {
			return
		}

	case TypeKindContract, TypeKindStruct:
		if env.IsPropertyDeclared(receiverType.Name, name) {
			return
		}

	default:
		return
	}

	c.report(&NotDeclaredMemberError{
		Name:     name,
		TypeName: receiverType.Name,
		Range:    ast.NewRangeFromPositioned(expression.Identifier),
	})
}

func (checker *Checker) isExternalTraitType(ty Type, env *Environment) bool {
	userDefinedType, ok := ty.(*UserDefinedType)
	if !ok || userDefinedType.Kind != TypeKindTrait {
		return false
	}
	trait := env.Trait(userDefinedType.Name)
	return trait != nil && trait.Kind == ast.TraitKindExternal
}

func (checker *Checker) checkExternalCallExpression(c *check, expression *ast.ExternalCallExpression) {
	context := c.context
	expressionRange := ast.NewRangeFromPositioned(expression)

	if receiver := expression.Invocation.Receiver; receiver != nil {
		receiverType := UnwrapInout(TypeOf(receiver, context))
		if !IsInvalidType(receiverType) &&
			!checker.isExternalTraitType(receiverType, context.Environment) {

			c.report(&InvalidExternalCallError{
				ReceiverType: receiverType,
				Range:        expressionRange,
			})
		}
	}

	if expression.Mode != ast.ExternalCallModeDefault {
		return
	}

	doCatch := context.InnermostDoCatch()
	if doCatch == nil {
		c.report(&UnhandledExternalCallError{
			Range: expressionRange,
		})
		return
	}

	if context.Elaboration != nil {
		context.Elaboration.ExternalCallCatches[expression] = doCatch
	}
}

// checkRangeExpression warns about ranges with literal bounds which contain no values
func (checker *Checker) checkRangeExpression(c *check, expression *ast.RangeExpression) {
	start, ok := expression.Start.(*ast.IntegerExpression)
	if !ok {
		return
	}
	end, ok := expression.End.(*ast.IntegerExpression)
	if !ok {
		return
	}

	comparison := start.Value.Cmp(end.Value)
	if comparison < 0 || (comparison == 0 && expression.IsClosed) {
		return
	}

	c.report(&EmptyRangeWarning{
		Range: ast.NewRangeFromPositioned(expression),
	})
}

func (checker *Checker) checkInvocationExpression(c *check, invocation *ast.InvocationExpression) {
	context := c.context
	env := context.Environment
	name := invocation.Identifier.Identifier
	invocationRange := ast.NewRangeFromPositioned(invocation)

	if context.InEmit && !env.IsEventDeclared(context.EnclosingTypeName(), name) {
		c.report(&NotDeclaredError{
			ExpectedKind: common.DeclarationKindEvent,
			Name:         name,
			Pos:          invocation.Identifier.Pos,
		})
		return
	}

	resolution := env.ResolveCall(invocation, context)
	if !resolution.IsMatched() {
		if err := resolution.Error(invocationRange); err != nil {
			c.report(err)
		}
		return
	}

	callee := resolution.Callee
	if context.Elaboration != nil {
		context.Elaboration.SetResolvedCall(invocation, callee)
	}

	if callee.IsMutating {
		checker.recordMutation(c, invocationRange)
	}
}
