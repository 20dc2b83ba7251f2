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
	"github.com/SaveTheRbtz/mph"

	"github.com/flint-lang/flint/ast"
)

// NOTE: ensure to update builtinTypeNames when adding a new primitive type
var builtinTypes = []*PrimitiveType{
	IntType,
	BoolType,
	AddressType,
	StringType,
	VoidType,
	AnyType,
}

var builtinTypeNames = func() []string {
	names := make([]string, len(builtinTypes))
	for i, ty := range builtinTypes {
		names[i] = ty.Name
	}
	return names
}()

var builtinTypesTable = mph.Build(builtinTypeNames)

// BuiltinType returns the primitive type with the given name, if any
func BuiltinType(name string) (*PrimitiveType, bool) {
	index, ok := builtinTypesTable.Lookup(name)
	if !ok {
		return nil, false
	}
	return builtinTypes[index], true
}

func IsBuiltinTypeName(name string) bool {
	_, ok := builtinTypesTable.Lookup(name)
	return ok
}

var reservedIdentifiersTable = mph.Build([]string{
	ast.SelfIdentifier,
	ast.AnyIdentifier,
})

// IsReservedIdentifier returns true for identifiers which cannot be declared by programs
func IsReservedIdentifier(name string) bool {
	_, ok := reservedIdentifiersTable.Lookup(name)
	return ok
}

const (
	FatalErrorFunctionName = "fatalError"
	AssertFunctionName     = "assert"
)

// builtinFunctions are the global functions available in every program.
// They have no owner and are never restricted by caller protections or type states.
var builtinFunctions = []*FunctionRecord{
	{
		Kind:       CallableKindFunction,
		Identifier: FatalErrorFunctionName,
		ReturnType: VoidType,
		IsPublic:   true,
	},
	{
		Kind:       CallableKindFunction,
		Identifier: AssertFunctionName,
		Parameters: []*ParameterRecord{
			{
				Identifier: "condition",
				Type:       BoolType,
			},
		},
		ReturnType: VoidType,
		IsPublic:   true,
		Index:      1,
	},
}
