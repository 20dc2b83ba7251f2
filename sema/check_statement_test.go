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

package sema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/common"
	"github.com/flint-lang/flint/sema"
	. "github.com/flint-lang/flint/test_utils/common_utils"
	. "github.com/flint-lang/flint/test_utils/sema_utils"
)

func auctionContract(functions ...ast.Declaration) *ast.Program {
	return Program(
		ContractWithOptions("Auction", ContractOptions{States: []string{"Open", "Closed"}}),
		Behavior("Auction", BehaviorOptions{Protections: []string{"any"}},
			Init(true, nil),
		),
		Behavior("Auction", BehaviorOptions{States: []string{"Open"}, Protections: []string{"any"}},
			functions...,
		),
	)
}

func TestCheckReturnStatements(t *testing.T) {

	t.Parallel()

	t.Run("multiple", func(t *testing.T) {

		t.Parallel()

		program := Program(
			Struct("S",
				Func("f", FunctionOptions{ReturnType: Nominal("Int")},
					Return(Int(1)),
					Return(Int(2)),
				),
			),
		)

		diagnostics := ParseAndCheck(t, program).Diagnostics

		errs := RequireCheckerErrors(t, diagnostics, 1)
		AssertErrorsOfType(t, errs, &sema.MultipleReturnsError{})

		warnings := RequireCheckerWarnings(t, diagnostics, 1)
		AssertErrorsOfType(t, warnings, &sema.UnreachableStatementWarning{})
	})

	t.Run("in branches", func(t *testing.T) {

		t.Parallel()

		program := Program(
			Struct("S",
				Func("f",
					FunctionOptions{
						Parameters: []*ast.Parameter{Param("flag", Nominal("Bool"))},
						ReturnType: Nominal("Int"),
					},
					If(Name("flag"),
						Block(Return(Int(1))),
						Block(Return(Int(2))),
					),
				),
			),
		)

		errs := RequireCheckerErrors(t, ParseAndCheck(t, program).Diagnostics, 1)
		AssertErrorsOfType(t, errs, &sema.MultipleReturnsError{})
	})

	t.Run("single", func(t *testing.T) {

		t.Parallel()

		program := Program(
			Struct("S",
				Func("f", FunctionOptions{ReturnType: Nominal("Int")},
					Let("a", Int(1)),
					Return(Name("a")),
				),
			),
		)

		diagnostics := ParseAndCheck(t, program).Diagnostics
		RequireNoCheckerErrors(t, diagnostics)
		RequireCheckerWarnings(t, diagnostics, 0)
	})
}

func TestCheckBecomeStatements(t *testing.T) {

	t.Parallel()

	t.Run("last statement", func(t *testing.T) {

		t.Parallel()

		program := auctionContract(
			Func("close", FunctionOptions{IsMutating: true}, Become("Closed")),
		)

		diagnostics := ParseAndCheck(t, program).Diagnostics
		RequireNoCheckerErrors(t, diagnostics)
		RequireCheckerWarnings(t, diagnostics, 0)
	})

	t.Run("followed by return", func(t *testing.T) {

		t.Parallel()

		program := auctionContract(
			Func("close", FunctionOptions{IsMutating: true},
				Become("Closed"),
				Return(nil),
			),
		)

		diagnostics := ParseAndCheck(t, program).Diagnostics

		errs := RequireCheckerErrors(t, diagnostics, 1)

		var becomeErr *sema.BecomeBeforeReturnError
		require.ErrorAs(t, errs[0], &becomeErr)
		AssertNoteMessages(t, becomeErr, "return statement here")

		RequireCheckerWarnings(t, diagnostics, 0)
	})

	t.Run("followed by other statements", func(t *testing.T) {

		t.Parallel()

		program := auctionContract(
			Func("close", FunctionOptions{IsMutating: true},
				Become("Closed"),
				Let("a", Int(1)),
				Let("b", Int(2)),
			),
		)

		diagnostics := ParseAndCheck(t, program).Diagnostics
		RequireNoCheckerErrors(t, diagnostics)

		warnings := RequireCheckerWarnings(t, diagnostics, 1)
		AssertErrorsOfType(t, warnings, &sema.UnreachableStatementWarning{})
	})

	t.Run("outside contract behavior", func(t *testing.T) {

		t.Parallel()

		program := Program(
			Struct("S",
				Func("f", FunctionOptions{IsMutating: true}, Become("Closed")),
			),
		)

		errs := RequireCheckerErrors(t, ParseAndCheck(t, program).Diagnostics, 1)
		AssertErrorsOfType(t, errs, &sema.InvalidBecomeError{})
	})

	t.Run("undeclared state", func(t *testing.T) {

		t.Parallel()

		program := auctionContract(
			Func("close", FunctionOptions{IsMutating: true}, Become("Finished")),
		)

		errs := RequireCheckerErrors(t, ParseAndCheck(t, program).Diagnostics, 1)

		var notDeclaredErr *sema.NotDeclaredError
		require.ErrorAs(t, errs[0], &notDeclaredErr)
		assert.Equal(t, common.DeclarationKindTypeState, notDeclaredErr.ExpectedKind)
		assert.Equal(t, "Finished", notDeclaredErr.Name)
	})

	t.Run("any", func(t *testing.T) {

		t.Parallel()

		program := auctionContract(
			Func("close", FunctionOptions{IsMutating: true}, Become("any")),
		)

		errs := RequireCheckerErrors(t, ParseAndCheck(t, program).Diagnostics, 1)
		AssertErrorsOfType(t, errs, &sema.NotDeclaredError{})
	})
}

func TestCheckIfStatementTest(t *testing.T) {

	t.Parallel()

	check := func(t *testing.T, test ast.IfStatementTest) sema.Diagnostics {
		program := Program(
			Struct("S",
				Func("f", FunctionOptions{}, If(test, Block(), nil)),
			),
		)
		return ParseAndCheck(t, program).Diagnostics
	}

	t.Run("bool", func(t *testing.T) {

		t.Parallel()

		RequireNoCheckerErrors(t, check(t, Binary(ast.OperationLess, Int(1), Int(2))))
	})

	t.Run("integer", func(t *testing.T) {

		t.Parallel()

		errs := RequireCheckerErrors(t, check(t, Int(1)), 1)

		var mismatchErr *sema.TypeMismatchError
		require.ErrorAs(t, errs[0], &mismatchErr)
		assert.Equal(t, sema.BoolType, mismatchErr.ExpectedType)
		assert.Equal(t, sema.IntType, mismatchErr.ActualType)
		assert.Equal(t, "expected `Bool`, got `Int`", mismatchErr.SecondaryError())
	})

	t.Run("constant binding", func(t *testing.T) {

		t.Parallel()

		RequireNoCheckerErrors(t, check(t, Let("a", Int(1))))
	})

	t.Run("undeclared", func(t *testing.T) {

		t.Parallel()

		errs := RequireCheckerErrors(t, check(t, Name("missing")), 1)
		AssertErrorsOfType(t, errs, &sema.NotDeclaredError{})
	})
}

func TestCheckExternalCalls(t *testing.T) {

	t.Parallel()

	check := func(t *testing.T, statements ...ast.Statement) *sema.Output {
		program := Program(
			Trait(ast.TraitKindExternal, "Token",
				Signature("balance", FunctionOptions{ReturnType: Nominal("Int")}),
			),
			Struct("Point",
				Func("norm", FunctionOptions{ReturnType: Nominal("Int")}, Return(Int(0))),
			),
			Struct("Wallet",
				Func("f",
					FunctionOptions{Parameters: []*ast.Parameter{
						Param("token", Nominal("Token")),
						Param("point", Nominal("Point")),
					}},
					statements...,
				),
			),
		)
		return ParseAndCheck(t, program)
	}

	t.Run("unhandled", func(t *testing.T) {

		t.Parallel()

		output := check(t,
			Expr(External(ast.ExternalCallModeDefault, CallOn(Name("token"), "balance"))),
		)

		errs := RequireCheckerErrors(t, output.Diagnostics, 1)
		AssertErrorsOfType(t, errs, &sema.UnhandledExternalCallError{})
	})

	t.Run("handled", func(t *testing.T) {

		t.Parallel()

		call := External(ast.ExternalCallModeDefault, CallOn(Name("token"), "balance"))
		doCatch := DoCatch(Block(Expr(call)), Block())

		output := check(t, doCatch)

		RequireNoCheckerErrors(t, output.Diagnostics)
		assert.Same(t, doCatch, output.Elaboration.ExternalCallCatches[call])
	})

	t.Run("forced and optional", func(t *testing.T) {

		t.Parallel()

		output := check(t,
			Expr(External(ast.ExternalCallModeForced, CallOn(Name("token"), "balance"))),
			Expr(External(ast.ExternalCallModeOptional, CallOn(Name("token"), "balance"))),
		)

		RequireNoCheckerErrors(t, output.Diagnostics)
	})

	t.Run("not an external trait", func(t *testing.T) {

		t.Parallel()

		output := check(t,
			Expr(External(ast.ExternalCallModeForced, CallOn(Name("point"), "norm"))),
		)

		errs := RequireCheckerErrors(t, output.Diagnostics, 1)

		var invalidErr *sema.InvalidExternalCallError
		require.ErrorAs(t, errs[0], &invalidErr)
		assert.Equal(t, "Point", invalidErr.ReceiverType.String())
	})
}

func TestCheckEmptyRange(t *testing.T) {

	t.Parallel()

	check := func(t *testing.T, value ast.Expression) sema.Diagnostics {
		program := Program(
			Struct("S",
				Func("f", FunctionOptions{}, For("i", value)),
			),
		)
		diagnostics := ParseAndCheck(t, program).Diagnostics
		RequireNoCheckerErrors(t, diagnostics)
		return diagnostics
	}

	t.Run("half-open, equal bounds", func(t *testing.T) {

		t.Parallel()

		warnings := RequireCheckerWarnings(t, check(t, HalfOpenRange(Int(2), Int(2))), 1)
		AssertErrorsOfType(t, warnings, &sema.EmptyRangeWarning{})
	})

	t.Run("closed, equal bounds", func(t *testing.T) {

		t.Parallel()

		RequireCheckerWarnings(t, check(t, ClosedRange(Int(2), Int(2))), 0)
	})

	t.Run("descending", func(t *testing.T) {

		t.Parallel()

		RequireCheckerWarnings(t, check(t, ClosedRange(Int(3), Int(1))), 1)
	})

	t.Run("ascending", func(t *testing.T) {

		t.Parallel()

		RequireCheckerWarnings(t, check(t, HalfOpenRange(Int(1), Int(3))), 0)
	})
}

func TestCheckEmitStatements(t *testing.T) {

	t.Parallel()

	check := func(t *testing.T, invocation *ast.InvocationExpression) *sema.Output {
		program := counterContract(
			[]ast.Declaration{
				Event("Incremented", Param("by", Nominal("Int"))),
			},
			Func("increment", FunctionOptions{IsMutating: true},
				CompoundAssign(SelfMember("count"), ast.OperationPlus, Int(1)),
				Emit(invocation),
			),
		)
		return ParseAndCheck(t, program)
	}

	t.Run("declared", func(t *testing.T) {

		t.Parallel()

		invocation := Call("Incremented", LabeledArg("by", Int(1)))
		output := check(t, invocation)

		RequireNoCheckerErrors(t, output.Diagnostics)

		resolved, ok := output.Elaboration.ResolvedCall(invocation)
		require.True(t, ok)
		assert.Equal(t, sema.CallableKindEvent, resolved.Callee.Kind)
	})

	t.Run("undeclared", func(t *testing.T) {

		t.Parallel()

		errs := RequireCheckerErrors(t, check(t, Call("Decremented", Arg(Int(1)))).Diagnostics, 1)

		var notDeclaredErr *sema.NotDeclaredError
		require.ErrorAs(t, errs[0], &notDeclaredErr)
		assert.Equal(t, common.DeclarationKindEvent, notDeclaredErr.ExpectedKind)
		assert.Equal(t, "Decremented", notDeclaredErr.Name)
	})

	t.Run("mismatched arguments", func(t *testing.T) {

		t.Parallel()

		errs := RequireCheckerErrors(t, check(t, Call("Incremented", Arg(Bool(true)))).Diagnostics, 1)
		AssertErrorsOfType(t, errs, &sema.NoMatchingFunctionError{})
	})
}

func TestCheckBranchScopes(t *testing.T) {

	t.Parallel()

	check := func(t *testing.T, statements ...ast.Statement) *sema.NotDeclaredError {
		program := Program(
			Struct("S",
				Func("f", FunctionOptions{}, statements...),
			),
		)

		diagnostics := ParseAndCheck(t, program).Diagnostics

		errs := RequireCheckerErrors(t, diagnostics, 1)

		var notDeclaredErr *sema.NotDeclaredError
		require.ErrorAs(t, errs[0], &notDeclaredErr)
		return notDeclaredErr
	}

	t.Run("then in else", func(t *testing.T) {

		t.Parallel()

		reference := Name("y")

		notDeclaredErr := check(t,
			If(Bool(true),
				Block(Let("y", Int(1))),
				Block(Expr(reference)),
			),
		)

		assert.Equal(t, "y", notDeclaredErr.Name)
		assert.Equal(t, common.DeclarationKindVariable, notDeclaredErr.ExpectedKind)
		assert.Equal(t, reference.Identifier.Pos, notDeclaredErr.Pos)
	})

	t.Run("binding in else", func(t *testing.T) {

		t.Parallel()

		notDeclaredErr := check(t,
			If(Let("c", Bool(true)),
				Block(Expr(Name("c"))),
				Block(Expr(Name("c"))),
			),
		)

		assert.Equal(t, "c", notDeclaredErr.Name)
	})

	t.Run("do in catch", func(t *testing.T) {

		t.Parallel()

		notDeclaredErr := check(t,
			DoCatch(
				Block(Let("y", Int(1))),
				Block(Expr(Name("y"))),
			),
		)

		assert.Equal(t, "y", notDeclaredErr.Name)
	})

	t.Run("after the statement", func(t *testing.T) {

		t.Parallel()

		notDeclaredErr := check(t,
			If(Bool(true), Block(Let("y", Int(1))), nil),
			Expr(Name("y")),
		)

		assert.Equal(t, "y", notDeclaredErr.Name)
	})
}
