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

// TypeOf infers the type of the given expression.
// It reports no errors: the type of erroneous expressions is the invalid type.
func TypeOf(expression ast.Expression, context Context) Type {
	return ast.AcceptExpression[Type](expression, typeInferrer{context: context})
}

type typeInferrer struct {
	context Context
}

var _ ast.ExpressionVisitor[Type] = typeInferrer{}

func (typeInferrer) VisitBoolExpression(_ *ast.BoolExpression) Type {
	return BoolType
}

func (typeInferrer) VisitIntegerExpression(_ *ast.IntegerExpression) Type {
	return IntType
}

func (typeInferrer) VisitStringExpression(_ *ast.StringExpression) Type {
	return StringType
}

func (typeInferrer) VisitAddressExpression(_ *ast.AddressExpression) Type {
	return AddressType
}

func (i typeInferrer) VisitArrayExpression(expression *ast.ArrayExpression) Type {
	if len(expression.Values) == 0 {
		return &ArrayType{Type: InvalidType}
	}
	return &ArrayType{
		Type: i.typeOf(expression.Values[0]),
	}
}

func (i typeInferrer) VisitDictionaryExpression(expression *ast.DictionaryExpression) Type {
	if len(expression.Entries) == 0 {
		return &DictionaryType{
			KeyType:   InvalidType,
			ValueType: InvalidType,
		}
	}
	entry := expression.Entries[0]
	return &DictionaryType{
		KeyType:   i.typeOf(entry.Key),
		ValueType: i.typeOf(entry.Value),
	}
}

func (i typeInferrer) VisitIdentifierExpression(expression *ast.IdentifierExpression) Type {
	context := i.context
	name := expression.Identifier.Identifier

	if expression.Identifier.IsSelf() {
		if selfType := context.EnclosingType(); selfType != nil {
			return selfType
		}
		return InvalidType
	}

	if variable := context.Scope.Find(name); variable != nil {
		return variable.Type
	}

	if context.IsCallerBinding(name) {
		return AddressType
	}

	env := context.Environment

	if property := env.Property(context.EnclosingTypeName(), name); property != nil {
		return property.Type
	}

	// Type names are valid expressions, e.g. in enum case accesses
	if env.IsTypeDeclared(name) {
		return env.typeNamed(name)
	}

	return InvalidType
}

func (i typeInferrer) VisitMemberExpression(expression *ast.MemberExpression) Type {
	env := i.context.Environment
	name := expression.Identifier.Identifier

	receiverType, ok := UnwrapInout(i.typeOf(expression.Expression)).(*UserDefinedType)
	if !ok {
		return InvalidType
	}

	switch receiverType.Kind {
	case TypeKindEnum:
		enum := env.Enum(receiverType.Name)
		if enum != nil && enum.HasCase(name) {
			return receiverType
		}

	case TypeKindContract, TypeKindStruct:
		return env.PropertyType(receiverType.Name, name)
	}

	return InvalidType
}

func (i typeInferrer) VisitIndexExpression(expression *ast.IndexExpression) Type {
	switch targetType := UnwrapInout(i.typeOf(expression.TargetExpression)).(type) {
	case *ArrayType:
		return targetType.Type
	case *DictionaryType:
		return targetType.ValueType
	}
	return InvalidType
}

func (i typeInferrer) VisitInvocationExpression(expression *ast.InvocationExpression) Type {
	context := i.context

	if context.Elaboration != nil {
		if call, ok := context.Elaboration.ResolvedCall(expression); ok {
			return call.Callee.ReturnType
		}
	}

	resolution := context.Environment.ResolveCall(expression, context)
	switch resolution.Kind {
	case ResolutionKindMatched:
		return resolution.Callee.ReturnType
	case ResolutionKindMatchedWithoutCaller:
		return resolution.MatchedWithoutCaller[0].ReturnType
	}
	return InvalidType
}

func (i typeInferrer) VisitExternalCallExpression(expression *ast.ExternalCallExpression) Type {
	return i.typeOf(expression.Invocation)
}

func (i typeInferrer) VisitReferenceExpression(expression *ast.ReferenceExpression) Type {
	referencedType := UnwrapInout(i.typeOf(expression.Expression))
	if IsInvalidType(referencedType) {
		return InvalidType
	}
	return &InoutType{
		Type: referencedType,
	}
}

func (i typeInferrer) VisitUnaryExpression(expression *ast.UnaryExpression) Type {
	return UnwrapInout(i.typeOf(expression.Expression))
}

func (i typeInferrer) VisitBinaryExpression(expression *ast.BinaryExpression) Type {
	operation := expression.Operation
	switch {
	case operation.IsArithmetic():
		return UnwrapInout(i.typeOf(expression.Left))
	case operation.IsComparison(), operation.IsLogical():
		return BoolType
	}
	return InvalidType
}

func (i typeInferrer) VisitRangeExpression(expression *ast.RangeExpression) Type {
	return &RangeType{
		ElementType: UnwrapInout(i.typeOf(expression.Start)),
	}
}

func (i typeInferrer) typeOf(expression ast.Expression) Type {
	return TypeOf(expression, i.context)
}

// ElementTypeOf returns the type of the elements when iterating over a value of the given type
func ElementTypeOf(ty Type) Type {
	switch ty := UnwrapInout(ty).(type) {
	case *ArrayType:
		return ty.Type
	case *DictionaryType:
		return ty.ValueType
	case *RangeType:
		return ty.ElementType
	}
	return InvalidType
}
