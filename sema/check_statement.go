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

func (checker *Checker) preVisitStatement(c *check, statement ast.Statement) {
	switch statement := statement.(type) {
	case *ast.ReturnStatement:
		checker.checkReturnStatement(c, statement)

	case *ast.BecomeStatement:
		checker.checkBecomeStatement(c, statement)

	case *ast.IfStatement:
		checker.checkIfStatementTest(c, statement)
	}
}

// checkUnreachableStatements warns about the first statement of the given block
// following a return or become statement.
// A return directly following a become is reported by the return check instead.
func (checker *Checker) checkUnreachableStatements(c *check, block *ast.Block) {
	terminated := false

	for i, statement := range block.Statements {
		if terminated {
			c.report(&UnreachableStatementWarning{
				Range: ast.NewRangeFromPositioned(statement),
			})
			return
		}

		switch statement.(type) {
		case *ast.ReturnStatement:
			terminated = true

		case *ast.BecomeStatement:
			if i+1 < len(block.Statements) {
				if _, ok := block.Statements[i+1].(*ast.ReturnStatement); ok {
					continue
				}
			}
			terminated = true
		}
	}
}

func (checker *Checker) checkReturnStatement(c *check, statement *ast.ReturnStatement) {
	activation := checker.functionActivations.Current()
	if activation == nil {
		return
	}

	activation.ReturnCount++
	if activation.ReturnCount > 1 {
		c.report(&MultipleReturnsError{
			Range: statement.Range,
		})
	}

	if activation.Become != nil {
		c.report(&BecomeBeforeReturnError{
			ReturnRange: statement.Range,
			Range:       ast.NewRangeFromPositioned(activation.Become),
		})
	}
}

func (checker *Checker) checkBecomeStatement(c *check, statement *ast.BecomeStatement) {
	context := c.context
	statementRange := ast.NewRangeFromPositioned(statement)

	activation := checker.functionActivations.Current()
	if !context.IsInContractBehavior() || context.Function == nil || activation == nil {
		c.report(&InvalidBecomeError{
			Range: statementRange,
		})
		return
	}

	state := statement.State.Identifier
	contractName := context.EnclosingTypeName()
	if state == ast.AnyIdentifier || !context.Environment.IsStateDeclared(contractName, state) {
		c.report(&NotDeclaredError{
			ExpectedKind: common.DeclarationKindTypeState,
			Name:         state,
			Pos:          statement.State.Pos,
		})
	}

	if activation.Become == nil {
		activation.Become = statement
	}

	checker.recordMutation(c, statementRange)
}

func (checker *Checker) checkIfStatementTest(c *check, statement *ast.IfStatement) {
	test, ok := statement.Test.(ast.Expression)
	if !ok {
		return
	}

	testContext := c.context
	testContext.InIfCondition = true

	testType := UnwrapInout(TypeOf(test, testContext))
	if IsInvalidType(testType) || testType.Equal(BoolType) {
		return
	}

	c.report(&TypeMismatchError{
		ExpectedType: BoolType,
		ActualType:   testType,
		Range:        ast.NewRangeFromPositioned(test),
	})
}

// recordMutation records a mutation of state at the given range
func (checker *Checker) recordMutation(c *check, mutationRange ast.Range) {
	context := c.context

	if !context.IsInFunction() {
		if context.InPropertyDefaultValue && context.DefaultValueProperty != nil {
			c.report(&MutationInDefaultValueError{
				PropertyName: context.DefaultValueProperty.Identifier.Identifier,
				Range:        mutationRange,
			})
		}
		return
	}

	activation := checker.functionActivations.Current()
	if activation == nil {
		return
	}

	activation.MutationCount++

	// Only the first mutation of a function is reported
	if activation.CanMutate() || activation.MutationCount > 1 {
		return
	}

	c.report(&MutationInNonMutatingFunctionError{
		FunctionName: activation.Name,
		Range:        mutationRange,
	})
}
