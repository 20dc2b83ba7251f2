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
	"github.com/flint-lang/flint/errors"
)

// Checker is the pass checking the declarations, mutations and state transitions of a program.
//
// Errors are reported as diagnostics. The results of checking,
// like resolved calls and expression types, are recorded in the elaboration of the context.

type Checker struct {
	functionActivations *FunctionActivations
}

var _ Pass = &Checker{}

func NewChecker() *Checker {
	return &Checker{
		functionActivations: &FunctionActivations{
			// Pre-allocate a common function depth
			activations: make([]*FunctionActivation, 0, 2),
		},
	}
}

func (*Checker) Name() string {
	return "checker"
}

// check is one invocation of a checker hook
type check struct {
	context Context
	result  Result
}

func (c *check) report(err error) {
	c.result.Diagnostics = append(c.result.Diagnostics, c.context.Diagnostic(err))
}

// updateContext replaces the context for the rest of the walk
func (c *check) updateContext(update func(context *Context)) {
	if c.result.Context.IsZero() {
		c.result.Context = c.context
	}
	update(&c.result.Context)
}

func (checker *Checker) PreVisit(element ast.Element, context Context) Result {
	c := &check{context: context}

	switch element := element.(type) {
	case *ast.Program:
		// NO-OP

	case *ast.ContractDeclaration:
		checker.checkConformances(c, element.Identifier.Identifier, element.Conformances)

	case *ast.ContractBehaviorDeclaration:
		checker.checkContractBehaviorDeclaration(c, element)

	case *ast.StructDeclaration:
		checker.checkConformances(c, element.Identifier.Identifier, element.Conformances)

	case *ast.TraitDeclaration, *ast.EnumCaseDeclaration:
		// NO-OP

	case *ast.EnumDeclaration:
		if element.RawType != nil {
			checker.checkType(c, element.RawType)
		}

	case *ast.EventDeclaration:
		checker.checkParameters(c, element.Parameters)

	case *ast.FunctionDeclaration:
		checker.enterFunctionDeclaration(c, element)

	case *ast.SpecialDeclaration:
		checker.enterSpecialDeclaration(c, element)

	case *ast.VariableDeclaration:
		checker.checkVariableDeclaration(c, element)

	case *ast.Block:
		checker.checkUnreachableStatements(c, element)

	case ast.Statement:
		checker.preVisitStatement(c, element)

	case ast.Expression:
		checker.preVisitExpression(c, element)

	default:
		panic(errors.NewUnreachableError())
	}

	return c.result
}

func (checker *Checker) PostVisit(element ast.Element, context Context) Result {
	c := &check{context: context}

	switch element := element.(type) {
	case *ast.Program:
		checker.checkPublicInitializers(c)

	case *ast.FunctionDeclaration:
		checker.leaveFunctionDeclaration(c, element)

	case *ast.SpecialDeclaration:
		checker.leaveSpecialDeclaration(c, element)

	case *ast.AssignmentStatement:
		checker.checkAssignment(c, element)

	case ast.Expression:
		checker.postVisitExpression(c, element)
	}

	return c.result
}
