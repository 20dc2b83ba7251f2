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
	"github.com/flint-lang/flint/common/orderedmap"
)

type CompositeOrderedMap = orderedmap.OrderedMap[string, *CompositeRecord]
type TraitOrderedMap = orderedmap.OrderedMap[string, *TraitRecord]
type EnumOrderedMap = orderedmap.OrderedMap[string, *EnumRecord]

// Environment is the table of all declarations of a program.
//
// It is built once, before any pass runs.
// Afterwards, it only changes to record the public initializer and fallback of contracts,
// and the identifiers which were used without being declared.

type Environment struct {
	// typeDeclarations are the declarations of all user-defined types, by name
	typeDeclarations map[string]ast.Declaration
	composites       *CompositeOrderedMap
	traits           *TraitOrderedMap
	enums            *EnumOrderedMap
	// usedUndefinedVariables are the undeclared identifiers already reported, per enclosing declaration
	usedUndefinedVariables map[ast.Declaration]map[string]struct{}
	nextIndex              int
}

// NewEnvironment collects the declarations of the given program.
// Redeclarations are reported and not added.
func NewEnvironment(program *ast.Program) (*Environment, []error) {
	env := &Environment{
		typeDeclarations:       map[string]ast.Declaration{},
		composites:             orderedmap.New[CompositeOrderedMap](0),
		traits:                 orderedmap.New[TraitOrderedMap](0),
		enums:                  orderedmap.New[EnumOrderedMap](0),
		usedUndefinedVariables: map[ast.Declaration]map[string]struct{}{},
		nextIndex:              len(builtinFunctions),
	}

	collector := &declarationCollector{
		env: env,
	}
	collector.collect(program)

	return env, collector.errors
}

type declarationCollector struct {
	env    *Environment
	errors []error
}

func (c *declarationCollector) report(err error) {
	c.errors = append(c.errors, err)
}

func (c *declarationCollector) reportRedeclaration(
	kind common.DeclarationKind,
	identifier ast.Identifier,
	previous *ast.Identifier,
) {
	err := &RedeclarationError{
		Kind: kind,
		Name: identifier.Identifier,
		Pos:  identifier.Pos,
	}
	if previous != nil {
		err.PreviousPos = &previous.Pos
	}
	c.report(err)
}

func (c *declarationCollector) collect(program *ast.Program) {

	// Declare all types first, so members can refer to types declared later

	var declared []ast.Declaration

	for _, declaration := range program.Declarations {
		switch declaration.(type) {
		case *ast.ContractDeclaration,
			*ast.StructDeclaration,
			*ast.TraitDeclaration,
			*ast.EnumDeclaration:

			if c.declareType(declaration) {
				declared = append(declared, declaration)
			}
		}
	}

	for _, declaration := range declared {
		switch declaration := declaration.(type) {
		case *ast.ContractDeclaration:
			c.collectContract(declaration)
		case *ast.StructDeclaration:
			c.collectStruct(declaration)
		case *ast.TraitDeclaration:
			c.collectTrait(declaration)
		case *ast.EnumDeclaration:
			c.collectEnum(declaration)
		}
	}

	for _, declaration := range program.ContractBehaviorDeclarations() {
		c.collectContractBehavior(declaration)
	}
}

func (c *declarationCollector) declareType(declaration ast.Declaration) bool {
	env := c.env
	identifier := *declaration.DeclarationIdentifier()
	name := identifier.Identifier

	if IsBuiltinTypeName(name) || IsReservedIdentifier(name) {
		c.reportRedeclaration(declaration.DeclarationKind(), identifier, nil)
		return false
	}

	if previous, ok := env.typeDeclarations[name]; ok {
		c.reportRedeclaration(
			declaration.DeclarationKind(),
			identifier,
			previous.DeclarationIdentifier(),
		)
		return false
	}

	env.typeDeclarations[name] = declaration

	switch declaration := declaration.(type) {
	case *ast.ContractDeclaration:
		env.composites.Set(name, newCompositeRecord(TypeKindContract, name, declaration))

	case *ast.StructDeclaration:
		env.composites.Set(name, newCompositeRecord(TypeKindStruct, name, declaration))

	case *ast.TraitDeclaration:
		env.traits.Set(name, &TraitRecord{
			Kind:        declaration.Kind,
			Identifier:  name,
			Declaration: declaration,
			Events:      orderedmap.New[EventOrderedMap](0),
		})

	case *ast.EnumDeclaration:
		env.enums.Set(name, &EnumRecord{
			Identifier:  name,
			Declaration: declaration,
		})
	}

	return true
}

func conformanceNames(conformances []*ast.NominalType) []string {
	names := make([]string, len(conformances))
	for i, conformance := range conformances {
		names[i] = conformance.Identifier.Identifier
	}
	return names
}

func (c *declarationCollector) collectContract(declaration *ast.ContractDeclaration) {
	record, _ := c.env.composites.Get(declaration.Identifier.Identifier)
	record.Conformances = conformanceNames(declaration.Conformances)

	c.collectTypeStates(record, declaration.TypeStates)

	for _, member := range declaration.Members {
		switch member := member.(type) {
		case *ast.VariableDeclaration:
			c.collectProperty(record, member)
		case *ast.EventDeclaration:
			c.collectEvent(record.Identifier, record.Events, member)
		}
	}
}

func (c *declarationCollector) collectTypeStates(record *CompositeRecord, typeStates []*ast.TypeState) {
	declared := map[string]*ast.TypeState{}

	for _, typeState := range typeStates {
		name := typeState.Identifier.Identifier

		if typeState.IsAny() {
			c.reportRedeclaration(common.DeclarationKindTypeState, typeState.Identifier, nil)
			continue
		}

		if previous, ok := declared[name]; ok {
			c.reportRedeclaration(
				common.DeclarationKindTypeState,
				typeState.Identifier,
				&previous.Identifier,
			)
			continue
		}

		declared[name] = typeState
		record.TypeStates = append(record.TypeStates, name)
	}
}

func (c *declarationCollector) collectStruct(declaration *ast.StructDeclaration) {
	record, _ := c.env.composites.Get(declaration.Identifier.Identifier)
	record.Conformances = conformanceNames(declaration.Conformances)

	for _, member := range declaration.Members {
		switch member := member.(type) {
		case *ast.VariableDeclaration:
			c.collectProperty(record, member)

		case *ast.FunctionDeclaration:
			c.collectFunction(record, member, nil, nil)

		case *ast.SpecialDeclaration:
			c.collectSpecial(record, member, nil, nil)
		}
	}
}

func (c *declarationCollector) collectTrait(declaration *ast.TraitDeclaration) {
	record, _ := c.env.traits.Get(declaration.Identifier.Identifier)

	for _, member := range declaration.Members {
		switch member := member.(type) {
		case *ast.FunctionDeclaration:
			function := c.newFunctionRecord(record.Identifier, member, nil, nil)
			if c.isFunctionRedeclared(record.Functions, function, member.Identifier) {
				continue
			}
			record.Functions = append(record.Functions, function)

		case *ast.EventDeclaration:
			c.collectEvent(record.Identifier, record.Events, member)
		}
	}
}

func (c *declarationCollector) collectEnum(declaration *ast.EnumDeclaration) {
	record, _ := c.env.enums.Get(declaration.Identifier.Identifier)

	if declaration.RawType != nil {
		record.RawType = c.env.ConvertType(declaration.RawType)
	}

	declared := map[string]*ast.EnumCaseDeclaration{}

	for _, enumCase := range declaration.Cases {
		name := enumCase.Identifier.Identifier
		if previous, ok := declared[name]; ok {
			c.reportRedeclaration(
				common.DeclarationKindEnumCase,
				enumCase.Identifier,
				&previous.Identifier,
			)
			continue
		}
		declared[name] = enumCase
		record.Cases = append(record.Cases, name)
	}
}

func (c *declarationCollector) collectContractBehavior(declaration *ast.ContractBehaviorDeclaration) {
	// Behavior declarations of undeclared contracts are reported by the checker
	record, ok := c.env.composites.Get(declaration.ContractIdentifier.Identifier)
	if !ok || record.Kind != TypeKindContract {
		return
	}

	protections := identifierNames(ast.CallerProtectionIdentifiers(declaration.CallerProtections))
	states := identifierNames(ast.TypeStateIdentifiers(declaration.States))

	for _, member := range declaration.Members {
		switch member := member.(type) {
		case *ast.FunctionDeclaration:
			c.collectFunction(record, member, protections, states)

		case *ast.SpecialDeclaration:
			c.collectSpecial(record, member, protections, states)
		}
	}
}

func identifierNames(identifiers []ast.Identifier) []string {
	names := make([]string, len(identifiers))
	for i, identifier := range identifiers {
		names[i] = identifier.Identifier
	}
	return names
}

func (c *declarationCollector) collectProperty(record *CompositeRecord, declaration *ast.VariableDeclaration) {
	name := declaration.Identifier.Identifier

	if previous, ok := record.Properties.Get(name); ok {
		c.reportRedeclaration(
			common.DeclarationKindProperty,
			declaration.Identifier,
			&previous.Declaration.Identifier,
		)
		return
	}

	var propertyType Type = InvalidType
	if declaration.TypeAnnotation != nil {
		propertyType = c.env.ConvertType(declaration.TypeAnnotation)
	}

	record.Properties.Set(name, &PropertyRecord{
		Identifier:   name,
		Type:         propertyType,
		IsConstant:   declaration.IsConstant,
		DefaultValue: declaration.Value,
		Index:        record.Properties.Len(),
		Declaration:  declaration,
	})
}

func (c *declarationCollector) collectEvent(
	ownerName string,
	events *EventOrderedMap,
	declaration *ast.EventDeclaration,
) {
	name := declaration.Identifier.Identifier

	if previous, ok := events.Get(name); ok {
		c.reportRedeclaration(
			common.DeclarationKindEvent,
			declaration.Identifier,
			previous.Declaration.DeclarationIdentifier(),
		)
		return
	}

	events.Set(name, &FunctionRecord{
		Kind:        CallableKindEvent,
		Identifier:  name,
		OwnerName:   ownerName,
		Parameters:  c.parameterRecords(declaration.Parameters),
		ReturnType:  VoidType,
		IsPublic:    true,
		Index:       c.nextIndex(),
		Declaration: declaration,
	})
}

func (c *declarationCollector) nextIndex() int {
	index := c.env.nextIndex
	c.env.nextIndex++
	return index
}

func (c *declarationCollector) parameterRecords(parameters []*ast.Parameter) []*ParameterRecord {
	records := make([]*ParameterRecord, len(parameters))
	for i, parameter := range parameters {
		records[i] = &ParameterRecord{
			Identifier: parameter.Identifier.Identifier,
			Type:       c.env.ConvertType(parameter.Type),
			IsImplicit: parameter.IsImplicit,
		}
	}
	return records
}

func (c *declarationCollector) newFunctionRecord(
	ownerName string,
	declaration *ast.FunctionDeclaration,
	protections []string,
	states []string,
) *FunctionRecord {
	var returnType Type = VoidType
	if declaration.ReturnType != nil {
		returnType = c.env.ConvertType(declaration.ReturnType)
	}

	return &FunctionRecord{
		Kind:              CallableKindFunction,
		Identifier:        declaration.Identifier.Identifier,
		OwnerName:         ownerName,
		Parameters:        c.parameterRecords(declaration.Parameters),
		ReturnType:        returnType,
		IsMutating:        declaration.IsMutating,
		IsPublic:          declaration.IsPublic,
		CallerProtections: protections,
		TypeStates:        states,
		Index:             c.nextIndex(),
		Declaration:       declaration,
	}
}

func (c *declarationCollector) isFunctionRedeclared(
	existing []*FunctionRecord,
	function *FunctionRecord,
	identifier ast.Identifier,
) bool {
	for _, previous := range existing {
		if !previous.hasSameSignature(function) {
			continue
		}

		kind := common.DeclarationKindFunction
		switch function.Kind {
		case CallableKindInitializer:
			kind = common.DeclarationKindInitializer
		case CallableKindFallback:
			kind = common.DeclarationKindFallback
		}

		c.reportRedeclaration(kind, identifier, previous.Declaration.DeclarationIdentifier())
		return true
	}
	return false
}

func (c *declarationCollector) collectFunction(
	record *CompositeRecord,
	declaration *ast.FunctionDeclaration,
	protections []string,
	states []string,
) {
	function := c.newFunctionRecord(record.Identifier, declaration, protections, states)
	if c.isFunctionRedeclared(record.Functions, function, declaration.Identifier) {
		return
	}
	record.Functions = append(record.Functions, function)
}

func (c *declarationCollector) collectSpecial(
	record *CompositeRecord,
	declaration *ast.SpecialDeclaration,
	protections []string,
	states []string,
) {
	kind := CallableKindInitializer
	if declaration.IsFallback() {
		kind = CallableKindFallback
	}

	special := &FunctionRecord{
		Kind:              kind,
		Identifier:        declaration.Kind.Keyword(),
		OwnerName:         record.Identifier,
		Parameters:        c.parameterRecords(declaration.Parameters),
		ReturnType:        record.Type(),
		IsPublic:          declaration.IsPublic,
		CallerProtections: protections,
		TypeStates:        states,
		Index:             c.nextIndex(),
		Declaration:       declaration,
	}
	if kind == CallableKindFallback {
		special.ReturnType = VoidType
	}

	if c.isFunctionRedeclared(record.Initializers, special, *declaration.DeclarationIdentifier()) {
		return
	}
	record.Initializers = append(record.Initializers, special)
}

// ConvertType returns the semantic type of the given type annotation.
// Undeclared types are converted to the invalid type.
func (env *Environment) ConvertType(astType ast.Type) Type {
	switch astType := astType.(type) {
	case *ast.NominalType:
		return env.typeNamed(astType.Identifier.Identifier)

	case *ast.ArrayType:
		return &ArrayType{
			Type: env.ConvertType(astType.Type),
		}

	case *ast.DictionaryType:
		return &DictionaryType{
			KeyType:   env.ConvertType(astType.KeyType),
			ValueType: env.ConvertType(astType.ValueType),
		}

	case *ast.InoutType:
		return &InoutType{
			Type: env.ConvertType(astType.Type),
		}

	case nil:
		return VoidType
	}

	return InvalidType
}

func (env *Environment) typeNamed(name string) Type {
	if builtinType, ok := BuiltinType(name); ok {
		return builtinType
	}

	declaration, ok := env.typeDeclarations[name]
	if !ok {
		return InvalidType
	}

	var kind TypeKind
	switch declaration.(type) {
	case *ast.ContractDeclaration:
		kind = TypeKindContract
	case *ast.StructDeclaration:
		kind = TypeKindStruct
	case *ast.TraitDeclaration:
		kind = TypeKindTrait
	case *ast.EnumDeclaration:
		kind = TypeKindEnum
	}

	return &UserDefinedType{
		Name: name,
		Kind: kind,
	}
}

// UndeclaredTypeNames returns the names of the undeclared nominal types in the given type annotation
func (env *Environment) UndeclaredTypeNames(astType ast.Type) []ast.Identifier {
	switch astType := astType.(type) {
	case *ast.NominalType:
		if env.IsTypeDeclared(astType.Identifier.Identifier) {
			return nil
		}
		return []ast.Identifier{astType.Identifier}

	case *ast.ArrayType:
		return env.UndeclaredTypeNames(astType.Type)

	case *ast.DictionaryType:
		return append(
			env.UndeclaredTypeNames(astType.KeyType),
			env.UndeclaredTypeNames(astType.ValueType)...,
		)

	case *ast.InoutType:
		return env.UndeclaredTypeNames(astType.Type)
	}

	return nil
}
