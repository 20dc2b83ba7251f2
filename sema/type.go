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
	"fmt"
)

// Type is the semantic type of a declaration or an expression.
// Types are compared structurally using Equal.
type Type interface {
	isType()
	String() string
	Equal(other Type) bool
}

// PrimitiveType

type PrimitiveType struct {
	Name string
}

var _ Type = &PrimitiveType{}

func (*PrimitiveType) isType() {}

func (t *PrimitiveType) String() string {
	return t.Name
}

func (t *PrimitiveType) Equal(other Type) bool {
	otherType, ok := other.(*PrimitiveType)
	return ok && otherType.Name == t.Name
}

var (
	IntType     = &PrimitiveType{Name: "Int"}
	BoolType    = &PrimitiveType{Name: "Bool"}
	AddressType = &PrimitiveType{Name: "Address"}
	StringType  = &PrimitiveType{Name: "String"}
	VoidType    = &PrimitiveType{Name: "Void"}
	AnyType     = &PrimitiveType{Name: "Any"}
)

// UserDefinedType is the type of a contract, struct, trait or enum

type UserDefinedType struct {
	Name string
	// Kind tells which kind of declaration introduced the type
	Kind TypeKind
}

var _ Type = &UserDefinedType{}

func (*UserDefinedType) isType() {}

func (t *UserDefinedType) String() string {
	return t.Name
}

func (t *UserDefinedType) Equal(other Type) bool {
	otherType, ok := other.(*UserDefinedType)
	return ok && otherType.Name == t.Name
}

// TypeKind

type TypeKind uint8

const (
	TypeKindUnknown TypeKind = iota
	TypeKindContract
	TypeKindStruct
	TypeKindTrait
	TypeKindEnum
)

// ArrayType

type ArrayType struct {
	Type Type
}

var _ Type = &ArrayType{}

func (*ArrayType) isType() {}

func (t *ArrayType) String() string {
	return fmt.Sprintf("[%s]", t.Type)
}

func (t *ArrayType) Equal(other Type) bool {
	otherType, ok := other.(*ArrayType)
	return ok && otherType.Type.Equal(t.Type)
}

// DictionaryType

type DictionaryType struct {
	KeyType   Type
	ValueType Type
}

var _ Type = &DictionaryType{}

func (*DictionaryType) isType() {}

func (t *DictionaryType) String() string {
	return fmt.Sprintf("[%s: %s]", t.KeyType, t.ValueType)
}

func (t *DictionaryType) Equal(other Type) bool {
	otherType, ok := other.(*DictionaryType)
	return ok &&
		otherType.KeyType.Equal(t.KeyType) &&
		otherType.ValueType.Equal(t.ValueType)
}

// InoutType is the type of a parameter passed by reference,
// and of an explicit reference expression `&x`

type InoutType struct {
	Type Type
}

var _ Type = &InoutType{}

func (*InoutType) isType() {}

func (t *InoutType) String() string {
	return fmt.Sprintf("inout %s", t.Type)
}

func (t *InoutType) Equal(other Type) bool {
	otherType, ok := other.(*InoutType)
	return ok && otherType.Type.Equal(t.Type)
}

// RangeType is the type of a range expression

type RangeType struct {
	ElementType Type
}

var _ Type = &RangeType{}

func (*RangeType) isType() {}

func (t *RangeType) String() string {
	return fmt.Sprintf("Range<%s>", t.ElementType)
}

func (t *RangeType) Equal(other Type) bool {
	otherType, ok := other.(*RangeType)
	return ok && otherType.ElementType.Equal(t.ElementType)
}

// InvalidType is the type of erroneous expressions.
// It is compatible with every other type, so one error does not cascade.

type invalidType struct{}

var InvalidType Type = invalidType{}

func (invalidType) isType() {}

func (invalidType) String() string {
	return "<<invalid>>"
}

func (invalidType) Equal(other Type) bool {
	_, ok := other.(invalidType)
	return ok
}

func IsInvalidType(ty Type) bool {
	_, ok := ty.(invalidType)
	return ok
}

// ContainsInvalidType returns true if the given type is invalid,
// or is composed of an invalid type
func ContainsInvalidType(ty Type) bool {
	switch ty := ty.(type) {
	case invalidType:
		return true
	case *InoutType:
		return ContainsInvalidType(ty.Type)
	case *ArrayType:
		return ContainsInvalidType(ty.Type)
	case *DictionaryType:
		return ContainsInvalidType(ty.KeyType) ||
			ContainsInvalidType(ty.ValueType)
	case *RangeType:
		return ContainsInvalidType(ty.ElementType)
	}
	return false
}

// UnwrapInout returns the referenced type of an inout type,
// and the type itself otherwise
func UnwrapInout(ty Type) Type {
	if inoutType, ok := ty.(*InoutType); ok {
		return inoutType.Type
	}
	return ty
}

// IsCompatible returns true if a value of type `actual`
// can be passed where a value of type `expected` is expected.
//
// The invalid type is compatible with every type.
// Inout types are compatible with their referenced type.
func IsCompatible(expected, actual Type) bool {
	if expected == nil || actual == nil {
		return expected == nil && actual == nil
	}

	if IsInvalidType(expected) || IsInvalidType(actual) {
		return true
	}

	expected = UnwrapInout(expected)
	actual = UnwrapInout(actual)

	switch expected := expected.(type) {
	case *ArrayType:
		actual, ok := actual.(*ArrayType)
		return ok && IsCompatible(expected.Type, actual.Type)

	case *DictionaryType:
		actual, ok := actual.(*DictionaryType)
		return ok &&
			IsCompatible(expected.KeyType, actual.KeyType) &&
			IsCompatible(expected.ValueType, actual.ValueType)

	case *RangeType:
		actual, ok := actual.(*RangeType)
		return ok && IsCompatible(expected.ElementType, actual.ElementType)
	}

	return expected.Equal(actual)
}
