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

package borrow_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/borrow"
	"github.com/flint-lang/flint/sema"
	. "github.com/flint-lang/flint/test_utils/common_utils"
	. "github.com/flint-lang/flint/test_utils/sema_utils"
)

func inoutIntParameters(names ...string) []*ast.Parameter {
	parameters := make([]*ast.Parameter, len(names))
	for i, name := range names {
		parameters[i] = Param(name, Inout(Nominal("Int")))
	}
	return parameters
}

func parameterNames(count int) []string {
	names := make([]string, count)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	return names
}

// swapProgram returns a struct with a function taking the given number of inout parameters,
// and a function calling it with the given arguments
func swapProgram(arguments ...string) (*ast.Program, *ast.FunctionDeclaration) {
	callArguments := make([]*ast.Argument, len(arguments))
	for i, argument := range arguments {
		callArguments[i] = Arg(Name(argument))
	}

	caller := Func("f",
		FunctionOptions{Parameters: inoutIntParameters("x", "y")},
		Expr(Call("swap", callArguments...)),
	)

	program := Program(
		Struct("S",
			Func("swap", FunctionOptions{Parameters: inoutIntParameters(parameterNames(len(arguments))...)}),
			caller,
		),
	)

	return program, caller
}

func rewrite(t *testing.T, program *ast.Program) *sema.Output {
	output := ParseAndCheckWithOptions(t, program, ParseAndCheckOptions{
		Config: &sema.Config{
			LinearResourceBackend: true,
			StopOnError:           true,
		},
		LoweringPasses: []sema.Pass{borrow.NewRewriter()},
	})
	RequireNoCheckerErrors(t, output.Diagnostics)
	require.True(t, output.Completed)
	return output
}

func statementStrings(block *ast.Block) []string {
	result := make([]string, len(block.Statements))
	for i, statement := range block.Statements {
		result[i] = ast.Prettier(statement)
	}
	return result
}

func TestRewriteInoutArguments(t *testing.T) {

	t.Parallel()

	t.Run("repeated", func(t *testing.T) {

		t.Parallel()

		program, caller := swapProgram("x", "x")
		rewrite(t, program)

		assert.Equal(t,
			[]string{
				"let $temp0 = &x",
				"swap(x, $temp0)",
				"release $temp0",
			},
			statementStrings(caller.Body),
		)

		release, ok := caller.Body.Statements[2].(*ast.ReleaseStatement)
		require.True(t, ok)
		assert.Equal(t, borrow.TemporaryPrefix+"0", release.Identifier.Identifier)
	})

	t.Run("repeated three times", func(t *testing.T) {

		t.Parallel()

		program, caller := swapProgram("x", "x", "x")
		rewrite(t, program)

		AssertEqualWithDiff(t,
			[]string{
				"let $temp0 = &x",
				"let $temp1 = &x",
				"swap(x, $temp0, $temp1)",
				"release $temp0",
				"release $temp1",
			},
			statementStrings(caller.Body),
		)
	})

	t.Run("distinct", func(t *testing.T) {

		t.Parallel()

		program, caller := swapProgram("x", "y")
		rewrite(t, program)

		assert.Equal(t,
			[]string{"swap(x, y)"},
			statementStrings(caller.Body),
		)
	})

	t.Run("disabled without linear resource backend", func(t *testing.T) {

		t.Parallel()

		program, caller := swapProgram("x", "x")

		output := ParseAndCheckWithOptions(t, program, ParseAndCheckOptions{
			LoweringPasses: []sema.Pass{borrow.NewRewriter()},
		})
		RequireNoCheckerErrors(t, output.Diagnostics)

		assert.Equal(t,
			[]string{"swap(x, x)"},
			statementStrings(caller.Body),
		)
	})
}

func TestRewriteSelf(t *testing.T) {

	t.Parallel()

	accountProgram := func(members ...ast.Declaration) *ast.Program {
		return Program(
			Struct("Account",
				append(
					[]ast.Declaration{
						Property("balance", Nominal("Int"), Int(0)),
						Func("sum",
							FunctionOptions{
								Parameters: []*ast.Parameter{
									Param("a", Nominal("Int")),
									Param("b", Nominal("Int")),
								},
								ReturnType: Nominal("Int"),
							},
							Return(Binary(ast.OperationPlus, Name("a"), Name("b"))),
						),
					},
					members...,
				)...,
			),
		)
	}

	t.Run("implicit and explicit", func(t *testing.T) {

		t.Parallel()

		function := Func("f", FunctionOptions{ReturnType: Nominal("Int")},
			Return(Call("sum", Arg(Name("balance")), Arg(SelfMember("balance")))),
		)

		rewrite(t, accountProgram(function))

		assert.Equal(t,
			[]string{
				"let $temp0 = &self",
				"let $temp1 = &self",
				"return sum($temp0.balance, $temp1.balance)",
				"release $temp0",
				"release $temp1",
			},
			statementStrings(function.Body),
		)
	})

	t.Run("initializer", func(t *testing.T) {

		t.Parallel()

		initializer := Init(true, nil,
			Assign(SelfMember("balance"), Call("sum", Arg(Name("balance")), Arg(SelfMember("balance")))),
		)

		rewrite(t, accountProgram(initializer))

		assert.Equal(t,
			[]string{"self.balance = sum(balance, self.balance)"},
			statementStrings(initializer.Body),
		)
	})

	t.Run("if condition", func(t *testing.T) {

		t.Parallel()

		function := Func("f", FunctionOptions{},
			If(
				Binary(ast.OperationEqual, Name("balance"), SelfMember("balance")),
				Block(),
				nil,
			),
		)

		rewrite(t, accountProgram(function))

		assert.Equal(t,
			[]string{
				"let $temp0 = &self",
				"if balance == $temp0.balance {}",
				"release $temp0",
			},
			statementStrings(function.Body),
		)
	})
}

// conditionProgram returns a struct with functions taking two inout parameters,
// and a function with the given statements and the inout parameters x and y
func conditionProgram(statements ...ast.Statement) (*ast.Program, *ast.FunctionDeclaration) {
	caller := Func("f",
		FunctionOptions{Parameters: inoutIntParameters("x", "y")},
		statements...,
	)

	program := Program(
		Struct("S",
			Func("swap", FunctionOptions{Parameters: inoutIntParameters("a", "b")}),
			Func("check",
				FunctionOptions{
					Parameters: inoutIntParameters("a", "b"),
					ReturnType: Nominal("Bool"),
				},
				Return(Bool(true)),
			),
			Func("bound",
				FunctionOptions{
					Parameters: inoutIntParameters("a", "b"),
					ReturnType: Nominal("Int"),
				},
				Return(Int(2)),
			),
			caller,
		),
	)

	return program, caller
}

func TestRewriteConditions(t *testing.T) {

	t.Parallel()

	repeatedCall := func(name string) *ast.InvocationExpression {
		return Call(name, Arg(Name("x")), Arg(Name("x")))
	}

	t.Run("if test", func(t *testing.T) {

		t.Parallel()

		program, caller := conditionProgram(
			If(repeatedCall("check"), Block(), nil),
		)
		rewrite(t, program)

		assert.Equal(t,
			[]string{
				"let $temp0 = &x",
				"if check(x, $temp0) {}",
				"release $temp0",
			},
			statementStrings(caller.Body),
		)
	})

	t.Run("if let value", func(t *testing.T) {

		t.Parallel()

		program, caller := conditionProgram(
			If(Let("c", repeatedCall("check")), Block(), nil),
		)
		rewrite(t, program)

		assert.Equal(t,
			[]string{
				"let $temp0 = &x",
				"if let c = check(x, $temp0) {}",
				"release $temp0",
			},
			statementStrings(caller.Body),
		)
	})

	t.Run("for value", func(t *testing.T) {

		t.Parallel()

		program, caller := conditionProgram(
			For("i", HalfOpenRange(Int(0), repeatedCall("bound"))),
		)
		rewrite(t, program)

		assert.Equal(t,
			[]string{
				"let $temp0 = &x",
				"for let i in 0..<bound(x, $temp0) {}",
				"release $temp0",
			},
			statementStrings(caller.Body),
		)
	})

	t.Run("distinct", func(t *testing.T) {

		t.Parallel()

		program, caller := conditionProgram(
			If(Call("check", Arg(Name("x")), Arg(Name("y"))), Block(), nil),
		)
		rewrite(t, program)

		assert.Equal(t,
			[]string{"if check(x, y) {}"},
			statementStrings(caller.Body),
		)
	})

	t.Run("branch statements", func(t *testing.T) {

		t.Parallel()

		ifStatement := If(
			repeatedCall("check"),
			Block(Expr(repeatedCall("swap"))),
			nil,
		)

		program, caller := conditionProgram(ifStatement)
		rewrite(t, program)

		require.Len(t, caller.Body.Statements, 3)
		assert.Same(t, ifStatement, caller.Body.Statements[1])

		AssertEqualWithDiff(t,
			[]string{
				"let $temp1 = &x",
				"swap(x, $temp1)",
				"release $temp1",
			},
			statementStrings(ifStatement.Then),
		)
	})

	t.Run("rewriting again changes nothing", func(t *testing.T) {

		t.Parallel()

		program, caller := conditionProgram(
			If(repeatedCall("check"), Block(), nil),
			For("i", HalfOpenRange(Int(0), repeatedCall("bound"))),
		)

		output := rewrite(t, program)
		rewritten := statementStrings(caller.Body)
		require.Len(t, rewritten, 6)

		rewrite(t, output.Program)
		assert.Equal(t, rewritten, statementStrings(caller.Body))
	})
}

func TestRewriteIdempotence(t *testing.T) {

	t.Parallel()

	names := []string{"x", "y"}

	properties := gopter.NewProperties(nil)

	properties.Property("rewriting a rewritten program changes nothing", prop.ForAll(
		func(argumentIndices []int) bool {
			arguments := make([]string, len(argumentIndices))
			for i, index := range argumentIndices {
				arguments[i] = names[index]
			}

			program, caller := swapProgram(arguments...)

			first := ParseAndCheckWithOptions(t, program, ParseAndCheckOptions{
				Config:         &sema.Config{LinearResourceBackend: true},
				LoweringPasses: []sema.Pass{borrow.NewRewriter()},
			})
			if first.Diagnostics.HasErrors() {
				return false
			}
			rewritten := statementStrings(caller.Body)

			second := ParseAndCheckWithOptions(t, first.Program, ParseAndCheckOptions{
				Config:         &sema.Config{LinearResourceBackend: true},
				LoweringPasses: []sema.Pass{borrow.NewRewriter()},
			})
			if second.Diagnostics.HasErrors() {
				return false
			}

			again := statementStrings(caller.Body)
			if len(again) != len(rewritten) {
				return false
			}
			for i := range again {
				if again[i] != rewritten[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(4, gen.IntRange(0, len(names)-1)),
	))

	properties.TestingRun(t)
}
