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

type ElementType uint64

const (
	ElementTypeUnknown ElementType = iota

	ElementTypeProgram
	ElementTypeBlock

	// declarations

	ElementTypeContractDeclaration
	ElementTypeContractBehaviorDeclaration
	ElementTypeStructDeclaration
	ElementTypeTraitDeclaration
	ElementTypeEnumDeclaration
	ElementTypeEnumCaseDeclaration
	ElementTypeEventDeclaration
	ElementTypeFunctionDeclaration
	ElementTypeSpecialDeclaration
	ElementTypeVariableDeclaration

	// statements

	ElementTypeExpressionStatement
	ElementTypeReturnStatement
	ElementTypeBecomeStatement
	ElementTypeEmitStatement
	ElementTypeAssignmentStatement
	ElementTypeIfStatement
	ElementTypeForStatement
	ElementTypeDoCatchStatement
	ElementTypeReleaseStatement

	// expressions

	ElementTypeBoolExpression
	ElementTypeIntegerExpression
	ElementTypeStringExpression
	ElementTypeAddressExpression
	ElementTypeArrayExpression
	ElementTypeDictionaryExpression
	ElementTypeIdentifierExpression
	ElementTypeMemberExpression
	ElementTypeIndexExpression
	ElementTypeInvocationExpression
	ElementTypeExternalCallExpression
	ElementTypeReferenceExpression
	ElementTypeUnaryExpression
	ElementTypeBinaryExpression
	ElementTypeRangeExpression

	// NOTE: not an actual element, just used for tracking

	ElementTypeCount
)

func (t ElementType) String() string {
	switch t {
	case ElementTypeProgram:
		return "Program"
	case ElementTypeBlock:
		return "Block"
	case ElementTypeContractDeclaration:
		return "ContractDeclaration"
	case ElementTypeContractBehaviorDeclaration:
		return "ContractBehaviorDeclaration"
	case ElementTypeStructDeclaration:
		return "StructDeclaration"
	case ElementTypeTraitDeclaration:
		return "TraitDeclaration"
	case ElementTypeEnumDeclaration:
		return "EnumDeclaration"
	case ElementTypeEnumCaseDeclaration:
		return "EnumCaseDeclaration"
	case ElementTypeEventDeclaration:
		return "EventDeclaration"
	case ElementTypeFunctionDeclaration:
		return "FunctionDeclaration"
	case ElementTypeSpecialDeclaration:
		return "SpecialDeclaration"
	case ElementTypeVariableDeclaration:
		return "VariableDeclaration"
	case ElementTypeExpressionStatement:
		return "ExpressionStatement"
	case ElementTypeReturnStatement:
		return "ReturnStatement"
	case ElementTypeBecomeStatement:
		return "BecomeStatement"
	case ElementTypeEmitStatement:
		return "EmitStatement"
	case ElementTypeAssignmentStatement:
		return "AssignmentStatement"
	case ElementTypeIfStatement:
		return "IfStatement"
	case ElementTypeForStatement:
		return "ForStatement"
	case ElementTypeDoCatchStatement:
		return "DoCatchStatement"
	case ElementTypeReleaseStatement:
		return "ReleaseStatement"
	case ElementTypeBoolExpression:
		return "BoolExpression"
	case ElementTypeIntegerExpression:
		return "IntegerExpression"
	case ElementTypeStringExpression:
		return "StringExpression"
	case ElementTypeAddressExpression:
		return "AddressExpression"
	case ElementTypeArrayExpression:
		return "ArrayExpression"
	case ElementTypeDictionaryExpression:
		return "DictionaryExpression"
	case ElementTypeIdentifierExpression:
		return "IdentifierExpression"
	case ElementTypeMemberExpression:
		return "MemberExpression"
	case ElementTypeIndexExpression:
		return "IndexExpression"
	case ElementTypeInvocationExpression:
		return "InvocationExpression"
	case ElementTypeExternalCallExpression:
		return "ExternalCallExpression"
	case ElementTypeReferenceExpression:
		return "ReferenceExpression"
	case ElementTypeUnaryExpression:
		return "UnaryExpression"
	case ElementTypeBinaryExpression:
		return "BinaryExpression"
	case ElementTypeRangeExpression:
		return "RangeExpression"
	}

	return "Unknown"
}
