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

func (env *Environment) Composite(name string) *CompositeRecord {
	record, _ := env.composites.Get(name)
	return record
}

func (env *Environment) Trait(name string) *TraitRecord {
	record, _ := env.traits.Get(name)
	return record
}

func (env *Environment) Enum(name string) *EnumRecord {
	record, _ := env.enums.Get(name)
	return record
}

// Composites returns all contracts and structs, in declaration order
func (env *Environment) Composites() []*CompositeRecord {
	return env.composites.Values()
}

func (env *Environment) IsTypeDeclared(name string) bool {
	if IsBuiltinTypeName(name) {
		return true
	}
	_, ok := env.typeDeclarations[name]
	return ok
}

func (env *Environment) IsContractDeclared(name string) bool {
	record := env.Composite(name)
	return record != nil && record.Kind == TypeKindContract
}

func (env *Environment) IsStructDeclared(name string) bool {
	record := env.Composite(name)
	return record != nil && record.Kind == TypeKindStruct
}

func (env *Environment) IsTraitDeclared(name string) bool {
	return env.Trait(name) != nil
}

func (env *Environment) IsEnumDeclared(name string) bool {
	return env.Enum(name) != nil
}

func (env *Environment) events(typeName string) *EventOrderedMap {
	if record := env.Composite(typeName); record != nil {
		return record.Events
	}
	if record := env.Trait(typeName); record != nil {
		return record.Events
	}
	return nil
}

func (env *Environment) IsEventDeclared(typeName, name string) bool {
	return env.Event(typeName, name) != nil
}

// Event returns the event with the given name declared in the given contract or trait
func (env *Environment) Event(typeName, name string) *FunctionRecord {
	events := env.events(typeName)
	if events == nil {
		return nil
	}
	event, _ := events.Get(name)
	return event
}

// Property returns the property with the given name declared in the given contract or struct
func (env *Environment) Property(typeName, name string) *PropertyRecord {
	record := env.Composite(typeName)
	if record == nil {
		return nil
	}
	property, _ := record.Properties.Get(name)
	return property
}

func (env *Environment) IsPropertyDeclared(typeName, name string) bool {
	return env.Property(typeName, name) != nil
}

func (env *Environment) IsPropertyConstant(typeName, name string) bool {
	property := env.Property(typeName, name)
	return property != nil && property.IsConstant
}

// PropertyType returns the declared type of the property,
// or the invalid type if no such property is declared
func (env *Environment) PropertyType(typeName, name string) Type {
	property := env.Property(typeName, name)
	if property == nil {
		return InvalidType
	}
	return property.Type
}

func (env *Environment) PropertyDefaultValue(typeName, name string) ast.Expression {
	property := env.Property(typeName, name)
	if property == nil {
		return nil
	}
	return property.DefaultValue
}

// PropertiesInOrder returns the properties of the given contract or struct, in declaration order
func (env *Environment) PropertiesInOrder(typeName string) []*PropertyRecord {
	record := env.Composite(typeName)
	if record == nil {
		return nil
	}
	return record.Properties.Values()
}

// PropertiesWithoutDefaultValue returns the properties an initializer of the given type must assign
func (env *Environment) PropertiesWithoutDefaultValue(typeName string) *PropertySet {
	var indices []int
	for _, property := range env.PropertiesInOrder(typeName) {
		if property.HasDefaultValue() {
			continue
		}
		indices = append(indices, property.Index)
	}
	return NewPropertySet(indices...)
}

// IsStateDeclared returns true if the given contract declares the given type state.
// The state `any` is always declared.
func (env *Environment) IsStateDeclared(contractName, state string) bool {
	if state == ast.AnyIdentifier {
		return true
	}
	for _, declared := range env.DeclaredTypeStates(contractName) {
		if declared == state {
			return true
		}
	}
	return false
}

func (env *Environment) DeclaredTypeStates(contractName string) []string {
	record := env.Composite(contractName)
	if record == nil {
		return nil
	}
	return record.TypeStates
}

// IsCallerProtectionDeclared returns true if the given name can be used as a caller protection
// of the given contract: `any`, a property of type Address or [Address],
// or a predicate function over the caller's address.
func (env *Environment) IsCallerProtectionDeclared(contractName, name string) bool {
	if name == ast.AnyIdentifier {
		return true
	}

	if property := env.Property(contractName, name); property != nil {
		return isCallerProtectionType(property.Type)
	}

	for _, function := range env.FunctionsNamed(contractName, name) {
		if isCallerProtectionPredicate(function) {
			return true
		}
	}

	return false
}

func isCallerProtectionType(ty Type) bool {
	if arrayType, ok := ty.(*ArrayType); ok {
		ty = arrayType.Type
	}
	return ty.Equal(AddressType)
}

func isCallerProtectionPredicate(function *FunctionRecord) bool {
	if !function.ReturnType.Equal(AddressType) &&
		!function.ReturnType.Equal(BoolType) {

		return false
	}

	parameters := function.ExplicitParameters()
	switch len(parameters) {
	case 0:
		return true
	case 1:
		return parameters[0].Type.Equal(AddressType)
	default:
		return false
	}
}

// DeclaredCallerProtections returns the names usable as caller protections in the given contract,
// in declaration order: `any`, properties, then predicate functions.
func (env *Environment) DeclaredCallerProtections(contractName string) []string {
	record := env.Composite(contractName)
	if record == nil || record.Kind != TypeKindContract {
		return nil
	}

	protections := []string{ast.AnyIdentifier}

	for name, property := range record.Properties.All() {
		if isCallerProtectionType(property.Type) {
			protections = append(protections, name)
		}
	}

	seen := map[string]struct{}{}
	for _, function := range record.Functions {
		if _, ok := seen[function.Identifier]; ok {
			continue
		}
		if isCallerProtectionPredicate(function) {
			seen[function.Identifier] = struct{}{}
			protections = append(protections, function.Identifier)
		}
	}

	return protections
}

// FunctionsNamed returns the functions with the given name declared in the given type,
// in declaration order. The empty type name denotes the global functions.
func (env *Environment) FunctionsNamed(typeName, name string) []*FunctionRecord {
	var result []*FunctionRecord
	for _, function := range env.functions(typeName) {
		if function.Identifier == name {
			result = append(result, function)
		}
	}
	return result
}

func (env *Environment) functions(typeName string) []*FunctionRecord {
	if typeName == "" {
		return builtinFunctions
	}
	if record := env.Composite(typeName); record != nil {
		return record.Functions
	}
	if record := env.Trait(typeName); record != nil {
		return record.Functions
	}
	return nil
}

// FunctionNames returns the distinct names of the functions declared in the given type,
// in declaration order
func (env *Environment) FunctionNames(typeName string) []string {
	var names []string
	seen := map[string]struct{}{}
	for _, function := range env.functions(typeName) {
		if _, ok := seen[function.Identifier]; ok {
			continue
		}
		seen[function.Identifier] = struct{}{}
		names = append(names, function.Identifier)
	}
	return names
}

// Initializers returns the initializers of the given contract or struct, in declaration order.
// Fallbacks are not included.
func (env *Environment) Initializers(typeName string) []*FunctionRecord {
	record := env.Composite(typeName)
	if record == nil {
		return nil
	}
	var result []*FunctionRecord
	for _, initializer := range record.Initializers {
		if initializer.Kind == CallableKindInitializer {
			result = append(result, initializer)
		}
	}
	return result
}

func (env *Environment) PublicInitializer(typeName string) *FunctionRecord {
	record := env.Composite(typeName)
	if record == nil {
		return nil
	}
	return record.publicInitializer
}

func (env *Environment) PublicFallback(typeName string) *FunctionRecord {
	record := env.Composite(typeName)
	if record == nil {
		return nil
	}
	return record.publicFallback
}

// SetPublicInitializer records the public initializer of the given type.
// If another public initializer was already recorded, it is kept and returned.
func (env *Environment) SetPublicInitializer(typeName string, initializer *FunctionRecord) (existing *FunctionRecord) {
	record := env.Composite(typeName)
	if record == nil {
		return nil
	}
	if record.publicInitializer != nil && record.publicInitializer != initializer {
		return record.publicInitializer
	}
	record.publicInitializer = initializer
	return nil
}

// SetPublicFallback records the public fallback of the given type.
// If another public fallback was already recorded, it is kept and returned.
func (env *Environment) SetPublicFallback(typeName string, fallback *FunctionRecord) (existing *FunctionRecord) {
	record := env.Composite(typeName)
	if record == nil {
		return nil
	}
	if record.publicFallback != nil && record.publicFallback != fallback {
		return record.publicFallback
	}
	record.publicFallback = fallback
	return nil
}

// SpecialRecord returns the record of the given initializer or fallback declaration
func (env *Environment) SpecialRecord(typeName string, declaration *ast.SpecialDeclaration) *FunctionRecord {
	record := env.Composite(typeName)
	if record == nil {
		return nil
	}
	for _, special := range record.Initializers {
		if special.Declaration == declaration {
			return special
		}
	}
	return nil
}

// FunctionRecordOf returns the record of the given function declaration
func (env *Environment) FunctionRecordOf(typeName string, declaration *ast.FunctionDeclaration) *FunctionRecord {
	for _, function := range env.functions(typeName) {
		if function.Declaration == declaration {
			return function
		}
	}
	return nil
}

// IsUsedUndefinedVariable returns true if the undeclared identifier
// was already reported in the given enclosing declaration
func (env *Environment) IsUsedUndefinedVariable(owner ast.Declaration, name string) bool {
	names, ok := env.usedUndefinedVariables[owner]
	if !ok {
		return false
	}
	_, ok = names[name]
	return ok
}

func (env *Environment) AddUsedUndefinedVariable(owner ast.Declaration, name string) {
	names, ok := env.usedUndefinedVariables[owner]
	if !ok {
		names = map[string]struct{}{}
		env.usedUndefinedVariables[owner] = names
	}
	names[name] = struct{}{}
}
