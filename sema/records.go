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
	"strings"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/common/orderedmap"
	"github.com/flint-lang/flint/errors"
)

// CallableKind

type CallableKind uint8

const (
	CallableKindFunction CallableKind = iota
	CallableKindInitializer
	CallableKindFallback
	CallableKindEvent
)

func (k CallableKind) Name() string {
	switch k {
	case CallableKindFunction:
		return "function"
	case CallableKindInitializer:
		return "initializer"
	case CallableKindFallback:
		return "fallback"
	case CallableKindEvent:
		return "event"
	}

	panic(errors.NewUnreachableError())
}

// ParameterRecord

type ParameterRecord struct {
	Identifier string
	Type       Type
	IsImplicit bool
}

func (p *ParameterRecord) IsInout() bool {
	_, ok := p.Type.(*InoutType)
	return ok
}

// FunctionRecord describes everything that can be called:
// functions, initializers, fallbacks and events.

type FunctionRecord struct {
	Kind       CallableKind
	Identifier string
	// OwnerName is the name of the declaring contract, struct or trait.
	// It is empty for global functions.
	OwnerName  string
	Parameters []*ParameterRecord
	// ReturnType is VoidType if the function does not return a value
	ReturnType Type
	IsMutating bool
	IsPublic   bool
	// CallerProtections and TypeStates are the restrictions
	// of the contract behavior declaration the function is declared in.
	// Empty sets mean no restriction.
	CallerProtections []string
	TypeStates        []string
	// Index is the declaration order of the record
	Index       int
	Declaration ast.Declaration
}

// ExplicitParameters returns the parameters which have to be passed by callers
func (f *FunctionRecord) ExplicitParameters() []*ParameterRecord {
	parameters := make([]*ParameterRecord, 0, len(f.Parameters))
	for _, parameter := range f.Parameters {
		if parameter.IsImplicit {
			continue
		}
		parameters = append(parameters, parameter)
	}
	return parameters
}

// SignatureID uniquely identifies the function among all declared callables.
// Backends use it as the target name of resolved calls.
func (f *FunctionRecord) SignatureID() string {
	var sb strings.Builder
	if f.OwnerName != "" {
		sb.WriteString(f.OwnerName)
		sb.WriteByte('.')
	}
	sb.WriteString(f.Identifier)
	sb.WriteByte('(')
	for i, parameter := range f.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(parameter.Identifier)
		sb.WriteString(": ")
		sb.WriteString(parameter.Type.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (f *FunctionRecord) String() string {
	return f.SignatureID()
}

// hasSameSignature returns true if the functions have the same name
// and the same parameter types, in which case callers could not tell them apart
func (f *FunctionRecord) hasSameSignature(other *FunctionRecord) bool {
	if f.Kind != other.Kind || f.Identifier != other.Identifier {
		return false
	}

	parameters := f.ExplicitParameters()
	otherParameters := other.ExplicitParameters()
	if len(parameters) != len(otherParameters) {
		return false
	}

	for i, parameter := range parameters {
		parameterType := UnwrapInout(parameter.Type)
		otherParameterType := UnwrapInout(otherParameters[i].Type)
		if !parameterType.Equal(otherParameterType) {
			return false
		}
	}

	return true
}

// PropertyRecord

type PropertyRecord struct {
	Identifier   string
	Type         Type
	IsConstant   bool
	DefaultValue ast.Expression
	// Index is the position of the property in the declaring composite
	Index       int
	Declaration *ast.VariableDeclaration
}

func (p *PropertyRecord) HasDefaultValue() bool {
	return p.DefaultValue != nil
}

type PropertyOrderedMap = orderedmap.OrderedMap[string, *PropertyRecord]
type EventOrderedMap = orderedmap.OrderedMap[string, *FunctionRecord]

// CompositeRecord describes a contract or a struct

type CompositeRecord struct {
	Kind        TypeKind
	Identifier  string
	Declaration ast.Declaration
	Properties  *PropertyOrderedMap
	// Functions are all functions of the composite, in declaration order
	Functions []*FunctionRecord
	// Initializers are all initializers and fallbacks of the composite, in declaration order
	Initializers []*FunctionRecord
	Events       *EventOrderedMap
	// TypeStates are the declared type states of a contract
	TypeStates   []string
	Conformances []string

	publicInitializer *FunctionRecord
	publicFallback    *FunctionRecord
}

func newCompositeRecord(kind TypeKind, identifier string, declaration ast.Declaration) *CompositeRecord {
	return &CompositeRecord{
		Kind:        kind,
		Identifier:  identifier,
		Declaration: declaration,
		Properties:  orderedmap.New[PropertyOrderedMap](0),
		Events:      orderedmap.New[EventOrderedMap](0),
	}
}

func (r *CompositeRecord) Type() *UserDefinedType {
	return &UserDefinedType{
		Name: r.Identifier,
		Kind: r.Kind,
	}
}

// TraitRecord

type TraitRecord struct {
	Kind        ast.TraitKind
	Identifier  string
	Declaration *ast.TraitDeclaration
	Functions   []*FunctionRecord
	Events      *EventOrderedMap
}

// EnumRecord

type EnumRecord struct {
	Identifier  string
	Declaration *ast.EnumDeclaration
	RawType     Type
	Cases       []string
}

func (r *EnumRecord) HasCase(name string) bool {
	for _, enumCase := range r.Cases {
		if enumCase == name {
			return true
		}
	}
	return false
}
