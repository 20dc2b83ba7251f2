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

func (checker *Checker) checkConformances(c *check, typeName string, conformances []*ast.NominalType) {
	env := c.context.Environment

	for _, conformance := range conformances {
		traitName := conformance.Identifier.Identifier

		trait := env.Trait(traitName)
		if trait == nil {
			c.report(&NotDeclaredError{
				ExpectedKind: common.DeclarationKindTrait,
				Name:         traitName,
				Pos:          conformance.Identifier.Pos,
			})
			continue
		}

		for _, name := range env.FunctionNames(traitName) {
			if len(env.FunctionsNamed(typeName, name)) > 0 {
				continue
			}
			c.report(&MissingTraitFunctionError{
				TypeName:     typeName,
				TraitName:    traitName,
				FunctionName: name,
				Range:        ast.NewRangeFromPositioned(conformance),
			})
		}
	}
}

func (checker *Checker) checkContractBehaviorDeclaration(c *check, declaration *ast.ContractBehaviorDeclaration) {
	env := c.context.Environment
	contractName := declaration.ContractIdentifier.Identifier

	if !env.IsContractDeclared(contractName) {
		c.report(&NotDeclaredError{
			ExpectedKind: common.DeclarationKindContract,
			Name:         contractName,
			Pos:          declaration.ContractIdentifier.Pos,
		})
		return
	}

	for _, state := range declaration.States {
		if env.IsStateDeclared(contractName, state.Identifier.Identifier) {
			continue
		}
		c.report(&NotDeclaredError{
			ExpectedKind: common.DeclarationKindTypeState,
			Name:         state.Identifier.Identifier,
			Pos:          state.Identifier.Pos,
		})
	}

	for _, protection := range declaration.CallerProtections {
		if env.IsCallerProtectionDeclared(contractName, protection.Identifier.Identifier) {
			continue
		}
		c.report(&NotDeclaredError{
			ExpectedKind: common.DeclarationKindCallerProtection,
			Name:         protection.Identifier.Identifier,
			Pos:          protection.Identifier.Pos,
		})
	}
}

// checkType reports the names in the given type annotation which are not declared types
func (checker *Checker) checkType(c *check, astType ast.Type) {
	if astType == nil {
		return
	}
	for _, identifier := range c.context.Environment.UndeclaredTypeNames(astType) {
		c.report(&NotDeclaredError{
			ExpectedKind: common.DeclarationKindType,
			Name:         identifier.Identifier,
			Pos:          identifier.Pos,
		})
	}
}

func (checker *Checker) checkParameters(c *check, parameters []*ast.Parameter) {
	for _, parameter := range parameters {
		checker.checkType(c, parameter.Type)
	}
}

func (checker *Checker) enterFunctionDeclaration(c *check, declaration *ast.FunctionDeclaration) {
	checker.checkParameters(c, declaration.Parameters)
	checker.checkType(c, declaration.ReturnType)

	if declaration.IsSignature() {
		return
	}

	checker.functionActivations.EnterFunction(&FunctionActivation{
		Declaration: declaration,
		Name:        declaration.Identifier.Identifier,
		IsMutating:  declaration.IsMutating,
	})
}

func (checker *Checker) leaveFunctionDeclaration(c *check, declaration *ast.FunctionDeclaration) {
	if declaration.IsSignature() {
		return
	}

	activation := checker.functionActivations.LeaveFunction()
	if activation == nil || !activation.IsMutating || activation.MutationCount > 0 {
		return
	}

	c.report(&UnnecessaryMutatingWarning{
		FunctionName: activation.Name,
		Range:        ast.NewRangeFromPositioned(declaration.Identifier),
	})
}

func (checker *Checker) enterSpecialDeclaration(c *check, declaration *ast.SpecialDeclaration) {
	checker.checkParameters(c, declaration.Parameters)

	checker.functionActivations.EnterFunction(&FunctionActivation{
		Declaration: declaration,
		Name:        declaration.Kind.Keyword(),
		MayMutate:   true,
	})

	if !declaration.IsPublic || c.context.Contract == nil {
		return
	}

	env := c.context.Environment
	typeName := c.context.EnclosingTypeName()

	record := env.SpecialRecord(typeName, declaration)
	if record == nil {
		return
	}

	var existing *FunctionRecord
	if declaration.IsInitializer() {
		existing = env.SetPublicInitializer(typeName, record)
	} else {
		existing = env.SetPublicFallback(typeName, record)
	}
	if existing == nil {
		return
	}

	c.report(&ConflictingSpecialError{
		ContractName: typeName,
		Kind:         declaration.Kind,
		PreviousPos:  existing.Declaration.StartPosition(),
		Range:        ast.NewRangeFromPositioned(declaration.DeclarationIdentifier()),
	})
}

func (checker *Checker) leaveSpecialDeclaration(c *check, declaration *ast.SpecialDeclaration) {
	checker.functionActivations.LeaveFunction()

	unassigned := c.context.Unassigned
	if !declaration.IsInitializer() || unassigned.IsEmpty() {
		return
	}

	var names []string
	for _, property := range c.context.Environment.PropertiesInOrder(c.context.EnclosingTypeName()) {
		if unassigned.Contains(property.Index) {
			names = append(names, property.Identifier)
		}
	}

	c.report(&UnassignedPropertiesError{
		Properties: names,
		Range:      ast.NewRangeFromPositioned(declaration.DeclarationIdentifier()),
	})
}

func (checker *Checker) checkVariableDeclaration(c *check, declaration *ast.VariableDeclaration) {
	checker.checkType(c, declaration.TypeAnnotation)

	context := c.context
	if !context.IsInFunction() || context.InIfCondition {
		return
	}

	name := declaration.Identifier.Identifier
	if !context.Scope.IsDeclaredInCurrentBlock(name) {
		return
	}

	previous := context.Scope.Find(name)
	previousPos := previous.Identifier.Pos

	c.report(&RedeclarationError{
		Kind:        declaration.DeclarationKind(),
		Name:        name,
		Pos:         declaration.Identifier.Pos,
		PreviousPos: &previousPos,
	})
}

// checkPublicInitializers reports contracts without a public initializer.
// Public initializers are recorded when their declarations are visited.
func (checker *Checker) checkPublicInitializers(c *check) {
	env := c.context.Environment

	for _, record := range env.Composites() {
		if record.Kind != TypeKindContract || env.PublicInitializer(record.Identifier) != nil {
			continue
		}

		declaration := record.Declaration.(*ast.ContractDeclaration)
		c.report(&MissingPublicInitializerError{
			ContractName: record.Identifier,
			Range:        ast.NewRangeFromPositioned(declaration.Identifier),
		})
	}
}
