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

import (
	"github.com/flint-lang/flint/errors"
)

type DeclarationVisitor[T any] interface {
	VisitContractDeclaration(*ContractDeclaration) T
	VisitContractBehaviorDeclaration(*ContractBehaviorDeclaration) T
	VisitStructDeclaration(*StructDeclaration) T
	VisitTraitDeclaration(*TraitDeclaration) T
	VisitEnumDeclaration(*EnumDeclaration) T
	VisitEnumCaseDeclaration(*EnumCaseDeclaration) T
	VisitEventDeclaration(*EventDeclaration) T
	VisitFunctionDeclaration(*FunctionDeclaration) T
	VisitSpecialDeclaration(*SpecialDeclaration) T
	VisitVariableDeclaration(*VariableDeclaration) T
}

func AcceptDeclaration[T any](declaration Declaration, visitor DeclarationVisitor[T]) (_ T) {

	switch declaration.ElementType() {

	case ElementTypeContractDeclaration:
		return visitor.VisitContractDeclaration(declaration.(*ContractDeclaration))

	case ElementTypeContractBehaviorDeclaration:
		return visitor.VisitContractBehaviorDeclaration(declaration.(*ContractBehaviorDeclaration))

	case ElementTypeStructDeclaration:
		return visitor.VisitStructDeclaration(declaration.(*StructDeclaration))

	case ElementTypeTraitDeclaration:
		return visitor.VisitTraitDeclaration(declaration.(*TraitDeclaration))

	case ElementTypeEnumDeclaration:
		return visitor.VisitEnumDeclaration(declaration.(*EnumDeclaration))

	case ElementTypeEnumCaseDeclaration:
		return visitor.VisitEnumCaseDeclaration(declaration.(*EnumCaseDeclaration))

	case ElementTypeEventDeclaration:
		return visitor.VisitEventDeclaration(declaration.(*EventDeclaration))

	case ElementTypeFunctionDeclaration:
		return visitor.VisitFunctionDeclaration(declaration.(*FunctionDeclaration))

	case ElementTypeSpecialDeclaration:
		return visitor.VisitSpecialDeclaration(declaration.(*SpecialDeclaration))

	case ElementTypeVariableDeclaration:
		return visitor.VisitVariableDeclaration(declaration.(*VariableDeclaration))
	}

	panic(errors.NewUnreachableError())
}

type StatementVisitor[T any] interface {
	VisitVariableDeclaration(*VariableDeclaration) T
	VisitExpressionStatement(*ExpressionStatement) T
	VisitReturnStatement(*ReturnStatement) T
	VisitBecomeStatement(*BecomeStatement) T
	VisitEmitStatement(*EmitStatement) T
	VisitAssignmentStatement(*AssignmentStatement) T
	VisitIfStatement(*IfStatement) T
	VisitForStatement(*ForStatement) T
	VisitDoCatchStatement(*DoCatchStatement) T
	VisitReleaseStatement(*ReleaseStatement) T
}

func AcceptStatement[T any](statement Statement, visitor StatementVisitor[T]) (_ T) {

	switch statement.ElementType() {

	case ElementTypeVariableDeclaration:
		return visitor.VisitVariableDeclaration(statement.(*VariableDeclaration))

	case ElementTypeExpressionStatement:
		return visitor.VisitExpressionStatement(statement.(*ExpressionStatement))

	case ElementTypeReturnStatement:
		return visitor.VisitReturnStatement(statement.(*ReturnStatement))

	case ElementTypeBecomeStatement:
		return visitor.VisitBecomeStatement(statement.(*BecomeStatement))

	case ElementTypeEmitStatement:
		return visitor.VisitEmitStatement(statement.(*EmitStatement))

	case ElementTypeAssignmentStatement:
		return visitor.VisitAssignmentStatement(statement.(*AssignmentStatement))

	case ElementTypeIfStatement:
		return visitor.VisitIfStatement(statement.(*IfStatement))

	case ElementTypeForStatement:
		return visitor.VisitForStatement(statement.(*ForStatement))

	case ElementTypeDoCatchStatement:
		return visitor.VisitDoCatchStatement(statement.(*DoCatchStatement))

	case ElementTypeReleaseStatement:
		return visitor.VisitReleaseStatement(statement.(*ReleaseStatement))
	}

	panic(errors.NewUnreachableError())
}

type ExpressionVisitor[T any] interface {
	VisitBoolExpression(*BoolExpression) T
	VisitIntegerExpression(*IntegerExpression) T
	VisitStringExpression(*StringExpression) T
	VisitAddressExpression(*AddressExpression) T
	VisitArrayExpression(*ArrayExpression) T
	VisitDictionaryExpression(*DictionaryExpression) T
	VisitIdentifierExpression(*IdentifierExpression) T
	VisitMemberExpression(*MemberExpression) T
	VisitIndexExpression(*IndexExpression) T
	VisitInvocationExpression(*InvocationExpression) T
	VisitExternalCallExpression(*ExternalCallExpression) T
	VisitReferenceExpression(*ReferenceExpression) T
	VisitUnaryExpression(*UnaryExpression) T
	VisitBinaryExpression(*BinaryExpression) T
	VisitRangeExpression(*RangeExpression) T
}

func AcceptExpression[T any](expression Expression, visitor ExpressionVisitor[T]) (_ T) {

	switch expression.ElementType() {

	case ElementTypeBoolExpression:
		return visitor.VisitBoolExpression(expression.(*BoolExpression))

	case ElementTypeIntegerExpression:
		return visitor.VisitIntegerExpression(expression.(*IntegerExpression))

	case ElementTypeStringExpression:
		return visitor.VisitStringExpression(expression.(*StringExpression))

	case ElementTypeAddressExpression:
		return visitor.VisitAddressExpression(expression.(*AddressExpression))

	case ElementTypeArrayExpression:
		return visitor.VisitArrayExpression(expression.(*ArrayExpression))

	case ElementTypeDictionaryExpression:
		return visitor.VisitDictionaryExpression(expression.(*DictionaryExpression))

	case ElementTypeIdentifierExpression:
		return visitor.VisitIdentifierExpression(expression.(*IdentifierExpression))

	case ElementTypeMemberExpression:
		return visitor.VisitMemberExpression(expression.(*MemberExpression))

	case ElementTypeIndexExpression:
		return visitor.VisitIndexExpression(expression.(*IndexExpression))

	case ElementTypeInvocationExpression:
		return visitor.VisitInvocationExpression(expression.(*InvocationExpression))

	case ElementTypeExternalCallExpression:
		return visitor.VisitExternalCallExpression(expression.(*ExternalCallExpression))

	case ElementTypeReferenceExpression:
		return visitor.VisitReferenceExpression(expression.(*ReferenceExpression))

	case ElementTypeUnaryExpression:
		return visitor.VisitUnaryExpression(expression.(*UnaryExpression))

	case ElementTypeBinaryExpression:
		return visitor.VisitBinaryExpression(expression.(*BinaryExpression))

	case ElementTypeRangeExpression:
		return visitor.VisitRangeExpression(expression.(*RangeExpression))
	}

	panic(errors.NewUnreachableError())
}
