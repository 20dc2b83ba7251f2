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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIfStatement_String(t *testing.T) {

	t.Parallel()

	stmt := &IfStatement{
		Test: &VariableDeclaration{
			IsConstant: true,
			Identifier: testIdentifier("x"),
			Value: &InvocationExpression{
				Identifier: testIdentifier("f"),
			},
		},
		Then: &Block{
			Statements: []Statement{
				&ReturnStatement{
					Expression: testIdentifierExpression("x"),
				},
			},
		},
		Else: &Block{
			Statements: []Statement{
				&BecomeStatement{
					State: testIdentifier("Done"),
				},
			},
		},
	}

	assert.Equal(t,
		"if let x = f() {\n"+
			"    return x\n"+
			"} else {\n"+
			"    become Done\n"+
			"}",
		stmt.String(),
	)
}

func TestDoCatchStatement_String(t *testing.T) {

	t.Parallel()

	stmt := &DoCatchStatement{
		DoBlock: &Block{
			Statements: []Statement{
				&ExpressionStatement{
					Expression: &ExternalCallExpression{
						Invocation: &InvocationExpression{
							Receiver:   testIdentifierExpression("bank"),
							Identifier: testIdentifier("withdraw"),
						},
					},
				},
			},
		},
		CatchBlock: &Block{
			Statements: []Statement{
				&ExpressionStatement{
					Expression: &InvocationExpression{
						Identifier: testIdentifier("fatalError"),
					},
				},
			},
		},
	}

	assert.Equal(t,
		"do {\n"+
			"    call bank.withdraw()\n"+
			"} catch is Error {\n"+
			"    fatalError()\n"+
			"}",
		stmt.String(),
	)
}

func TestForStatement_String(t *testing.T) {

	t.Parallel()

	stmt := &ForStatement{
		Identifier: testIdentifier("i"),
		Value: &RangeExpression{
			Start: NewIntegerExpression(0, EmptyRange),
			End:   NewIntegerExpression(10, EmptyRange),
		},
		Block: &Block{
			Statements: []Statement{
				&EmitStatement{
					InvocationExpression: &InvocationExpression{
						Identifier: testIdentifier("Tick"),
						Arguments: []*Argument{
							NewUnlabeledArgument(testIdentifierExpression("i")),
						},
					},
				},
			},
		},
	}

	assert.Equal(t,
		"for let i in 0..<10 {\n"+
			"    emit Tick(i)\n"+
			"}",
		stmt.String(),
	)
}

func TestSimpleStatement_String(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "return", (&ReturnStatement{}).String())
	assert.Equal(t, "release $temp0", (&ReleaseStatement{Identifier: testIdentifier("$temp0")}).String())

	assignment := &AssignmentStatement{
		Target: testIdentifierExpression("count"),
		Value:  NewIntegerExpression(1, EmptyRange),
	}
	assert.Equal(t, "count = 1", assignment.String())
	assert.False(t, assignment.IsCompound())
}

type statementKindVisitor struct{}

var _ StatementVisitor[string] = statementKindVisitor{}

func (statementKindVisitor) VisitVariableDeclaration(*VariableDeclaration) string {
	return "variable"
}

func (statementKindVisitor) VisitExpressionStatement(*ExpressionStatement) string {
	return "expression"
}

func (statementKindVisitor) VisitReturnStatement(*ReturnStatement) string {
	return "return"
}

func (statementKindVisitor) VisitBecomeStatement(*BecomeStatement) string {
	return "become"
}

func (statementKindVisitor) VisitEmitStatement(*EmitStatement) string {
	return "emit"
}

func (statementKindVisitor) VisitAssignmentStatement(*AssignmentStatement) string {
	return "assignment"
}

func (statementKindVisitor) VisitIfStatement(*IfStatement) string {
	return "if"
}

func (statementKindVisitor) VisitForStatement(*ForStatement) string {
	return "for"
}

func (statementKindVisitor) VisitDoCatchStatement(*DoCatchStatement) string {
	return "do"
}

func (statementKindVisitor) VisitReleaseStatement(*ReleaseStatement) string {
	return "release"
}

func TestAcceptStatement(t *testing.T) {

	t.Parallel()

	statements := []Statement{
		&VariableDeclaration{Identifier: testIdentifier("x")},
		&ReturnStatement{},
		&BecomeStatement{State: testIdentifier("Done")},
		&ReleaseStatement{Identifier: testIdentifier("$temp0")},
	}

	var kinds []string
	for _, statement := range statements {
		kinds = append(kinds, AcceptStatement[string](statement, statementKindVisitor{}))
	}

	assert.Equal(t,
		[]string{"variable", "return", "become", "release"},
		kinds,
	)
}

func TestInspect(t *testing.T) {

	t.Parallel()

	block := &Block{
		Statements: []Statement{
			&AssignmentStatement{
				Target:    testIdentifierExpression("count"),
				Operation: OperationPlus,
				Value: &InvocationExpression{
					Identifier: testIdentifier("f"),
					Arguments: []*Argument{
						NewUnlabeledArgument(testIdentifierExpression("by")),
					},
				},
			},
		},
	}

	assert.Equal(t,
		[]ElementType{
			ElementTypeBlock,
			ElementTypeAssignmentStatement,
			ElementTypeIdentifierExpression,
			ElementTypeInvocationExpression,
			ElementTypeIdentifierExpression,
		},
		ElementTypes(block),
	)

	var visited int
	Inspect(block, func(element Element) bool {
		visited++
		// skip the children of the assignment
		return element.ElementType() != ElementTypeAssignmentStatement
	})
	assert.Equal(t, 2, visited)
}
