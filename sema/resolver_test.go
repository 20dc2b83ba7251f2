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

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/sema"
	. "github.com/flint-lang/flint/test_utils/common_utils"
	. "github.com/flint-lang/flint/test_utils/sema_utils"
)

func TestCheckCallerProtectionGating(t *testing.T) {

	t.Parallel()

	check := func(t *testing.T, protection string) (sema.Diagnostics, *ast.InvocationExpression, *sema.Output) {
		call := Call("withdraw")

		program := Program(
			Contract("Bank",
				Property("owner", Nominal("Address"), Address("0x1")),
				Property("anyone", Nominal("Address"), Address("0x2")),
			),
			Behavior("Bank", BehaviorOptions{Protections: []string{"any"}},
				Init(true, nil),
			),
			Behavior("Bank", BehaviorOptions{Protections: []string{"owner"}},
				Func("withdraw", FunctionOptions{}),
			),
			Behavior("Bank", BehaviorOptions{Protections: []string{protection}},
				Func("attempt", FunctionOptions{}, Expr(call)),
			),
		)

		output := ParseAndCheck(t, program)
		return output.Diagnostics, call, output
	}

	t.Run("other protection", func(t *testing.T) {

		t.Parallel()

		diagnostics, call, output := check(t, "anyone")

		errs := RequireCheckerErrors(t, diagnostics, 1)

		var mismatchErr *sema.CapabilityMismatchError
		require.ErrorAs(t, errs[0], &mismatchErr)
		assert.Equal(t, "withdraw", mismatchErr.Name)
		assert.Equal(t, []string{"owner"}, mismatchErr.RequiredCallerProtections)
		assert.Equal(t, []string{"anyone"}, mismatchErr.ActiveCallerProtections)
		assert.Contains(t, mismatchErr.SecondaryError(), "`owner`")

		_, ok := output.Elaboration.ResolvedCall(call)
		assert.False(t, ok)
	})

	t.Run("same protection", func(t *testing.T) {

		t.Parallel()

		diagnostics, call, output := check(t, "owner")

		RequireNoCheckerErrors(t, diagnostics)

		resolved, ok := output.Elaboration.ResolvedCall(call)
		require.True(t, ok)
		assert.Equal(t, "withdraw", resolved.Callee.Identifier)
		assert.Equal(t, "Bank.withdraw()", resolved.SignatureID)
	})

	t.Run("any", func(t *testing.T) {

		t.Parallel()

		diagnostics, _, _ := check(t, "any")

		RequireNoCheckerErrors(t, diagnostics)
	})
}

func TestCheckTypeStateGating(t *testing.T) {

	t.Parallel()

	check := func(t *testing.T, state string) sema.Diagnostics {
		program := Program(
			ContractWithOptions("Auction", ContractOptions{States: []string{"Open", "Closed"}}),
			Behavior("Auction", BehaviorOptions{Protections: []string{"any"}},
				Init(true, nil),
			),
			Behavior("Auction", BehaviorOptions{States: []string{"Open"}, Protections: []string{"any"}},
				Func("bid", FunctionOptions{}),
			),
			Behavior("Auction", BehaviorOptions{States: []string{state}, Protections: []string{"any"}},
				Func("attempt", FunctionOptions{}, Expr(Call("bid"))),
			),
		)

		return ParseAndCheck(t, program).Diagnostics
	}

	t.Run("other state", func(t *testing.T) {

		t.Parallel()

		errs := RequireCheckerErrors(t, check(t, "Closed"), 1)

		var mismatchErr *sema.CapabilityMismatchError
		require.ErrorAs(t, errs[0], &mismatchErr)
		assert.Equal(t, []string{"Open"}, mismatchErr.RequiredTypeStates)
		assert.Equal(t, []string{"Closed"}, mismatchErr.ActiveTypeStates)
	})

	t.Run("same state", func(t *testing.T) {

		t.Parallel()

		RequireNoCheckerErrors(t, check(t, "Open"))
	})

	t.Run("any", func(t *testing.T) {

		t.Parallel()

		RequireNoCheckerErrors(t, check(t, "any"))
	})
}

func TestCheckNoMatchingFunction(t *testing.T) {

	t.Parallel()

	intParameters := func(names ...string) []*ast.Parameter {
		parameters := make([]*ast.Parameter, len(names))
		for i, name := range names {
			parameters[i] = Param(name, Nominal("Int"))
		}
		return parameters
	}

	t.Run("suggestions ranked by parameter count", func(t *testing.T) {

		t.Parallel()

		program := Program(
			Struct("S",
				Func("f", FunctionOptions{Parameters: intParameters("a", "b", "c")}),
				Func("f", FunctionOptions{Parameters: intParameters("a", "b")}),
				Func("f", FunctionOptions{Parameters: intParameters("a")}),
				Func("g", FunctionOptions{}, Expr(Call("f", Arg(Bool(true))))),
			),
		)

		errs := RequireCheckerErrors(t, ParseAndCheck(t, program).Diagnostics, 1)

		var noMatchErr *sema.NoMatchingFunctionError
		require.ErrorAs(t, errs[0], &noMatchErr)
		require.Len(t, noMatchErr.Candidates, 3)
		assert.Equal(t, "S.f(a: Int)", noMatchErr.Candidates[0].SignatureID())
		assert.Equal(t, "S.f(a: Int, b: Int)", noMatchErr.Candidates[1].SignatureID())
		assert.Equal(t, "S.f(a: Int, b: Int, c: Int)", noMatchErr.Candidates[2].SignatureID())
		assert.Empty(t, noMatchErr.NameSuggestions)
		assert.Equal(t, "no matching function for call to `f(Bool)`", noMatchErr.Error())
		AssertNoteMessages(t, noMatchErr,
			"candidate: `S.f(a: Int)`",
			"candidate: `S.f(a: Int, b: Int)`",
			"candidate: `S.f(a: Int, b: Int, c: Int)`",
		)
	})

	t.Run("equally close candidates in declaration order", func(t *testing.T) {

		t.Parallel()

		program := Program(
			Struct("S",
				Func("f", FunctionOptions{Parameters: intParameters("a", "b", "c")}),
				Func("f", FunctionOptions{Parameters: []*ast.Parameter{
					Param("a", Nominal("Bool")),
					Param("b", Nominal("Bool")),
				}}),
				Func("f", FunctionOptions{Parameters: intParameters("a")}),
				Func("g", FunctionOptions{}, Expr(Call("f", Arg(Int(1)), Arg(Int(2))))),
			),
		)

		errs := RequireCheckerErrors(t, ParseAndCheck(t, program).Diagnostics, 1)

		var noMatchErr *sema.NoMatchingFunctionError
		require.ErrorAs(t, errs[0], &noMatchErr)
		require.Len(t, noMatchErr.Candidates, 3)
		assert.Equal(t, "S.f(a: Bool, b: Bool)", noMatchErr.Candidates[0].SignatureID())
		assert.Equal(t, "S.f(a: Int, b: Int, c: Int)", noMatchErr.Candidates[1].SignatureID())
		assert.Equal(t, "S.f(a: Int)", noMatchErr.Candidates[2].SignatureID())
	})

	t.Run("similar names", func(t *testing.T) {

		t.Parallel()

		program := Program(
			Struct("S",
				Func("increment", FunctionOptions{}),
				Func("g", FunctionOptions{}, Expr(Call("incremnt"))),
			),
		)

		errs := RequireCheckerErrors(t, ParseAndCheck(t, program).Diagnostics, 1)

		var noMatchErr *sema.NoMatchingFunctionError
		require.ErrorAs(t, errs[0], &noMatchErr)
		assert.Empty(t, noMatchErr.Candidates)
		assert.Equal(t, []string{"increment"}, noMatchErr.NameSuggestions)
		assert.Equal(t, "did you mean `increment`?", noMatchErr.SecondaryError())
	})

	t.Run("labels", func(t *testing.T) {

		t.Parallel()

		program := Program(
			Struct("S",
				Func("f", FunctionOptions{Parameters: intParameters("amount")}),
				Func("g", FunctionOptions{},
					Expr(Call("f", LabeledArg("amount", Int(1)))),
					Expr(Call("f", LabeledArg("value", Int(1)))),
				),
			),
		)

		errs := RequireCheckerErrors(t, ParseAndCheck(t, program).Diagnostics, 1)
		assert.IsType(t, &sema.NoMatchingFunctionError{}, errs[0])
	})

	t.Run("inout parameters", func(t *testing.T) {

		t.Parallel()

		program := Program(
			Struct("S",
				Func("inc", FunctionOptions{Parameters: []*ast.Parameter{
					Param("x", Inout(Nominal("Int"))),
				}}),
				Func("g", FunctionOptions{},
					Let("a", Int(1)),
					Var("b", Int(1)),
					Expr(Call("inc", Arg(Name("a")))),
					Expr(Call("inc", Arg(Name("b")))),
					Expr(Call("inc", Arg(Ref(Name("b"))))),
				),
			),
		)

		errs := RequireCheckerErrors(t, ParseAndCheck(t, program).Diagnostics, 1)
		assert.IsType(t, &sema.NoMatchingFunctionError{}, errs[0])
	})

	t.Run("initializer", func(t *testing.T) {

		t.Parallel()

		program := Program(
			Struct("Point",
				Property("x", Nominal("Int"), Int(0)),
				Init(true, intParameters("x"),
					Assign(SelfMember("x"), Name("x")),
				),
			),
			Struct("S",
				Func("g", FunctionOptions{ReturnType: Nominal("Point")},
					Return(Call("Point", Arg(Int(1)))),
				),
			),
		)

		RequireNoCheckerErrors(t, ParseAndCheck(t, program).Diagnostics)
	})
}

func TestCheckCallShadowing(t *testing.T) {

	t.Parallel()

	t.Run("type function shadows builtin", func(t *testing.T) {

		t.Parallel()

		call := Call("assert", Arg(Bool(true)))

		program := counterContract(nil,
			Func("assert", FunctionOptions{
				Parameters: []*ast.Parameter{
					Param("condition", Nominal("Bool")),
				},
			}),
			Func("f", FunctionOptions{}, Expr(call)),
		)

		output := ParseAndCheck(t, program)

		RequireNoCheckerErrors(t, output.Diagnostics)

		resolved, ok := output.Elaboration.ResolvedCall(call)
		require.True(t, ok)
		assert.Equal(t, "Counter.assert(condition: Bool)", resolved.SignatureID)
	})

	t.Run("builtin", func(t *testing.T) {

		t.Parallel()

		call := Call("assert", Arg(Bool(true)))

		program := counterContract(nil,
			Func("f", FunctionOptions{}, Expr(call)),
		)

		output := ParseAndCheck(t, program)

		RequireNoCheckerErrors(t, output.Diagnostics)

		resolved, ok := output.Elaboration.ResolvedCall(call)
		require.True(t, ok)
		assert.Equal(t, "assert(condition: Bool)", resolved.SignatureID)
	})
}

func TestCheckCallInvalidParameterType(t *testing.T) {

	t.Parallel()

	call := Call("f", Arg(Int(1)))

	program := counterContract(nil,
		Func("f", FunctionOptions{
			Parameters: []*ast.Parameter{
				Param("a", Nominal("Int")),
			},
		}),
		Func("f", FunctionOptions{
			Parameters: []*ast.Parameter{
				Param("a", Nominal("Missing")),
			},
		}),
		Func("g", FunctionOptions{}, Expr(call)),
	)

	var output *sema.Output
	require.NotPanics(t, func() {
		output = ParseAndCheck(t, program)
	})

	errs := RequireCheckerErrors(t, output.Diagnostics, 1)

	var notDeclaredErr *sema.NotDeclaredError
	require.ErrorAs(t, errs[0], &notDeclaredErr)
	assert.Equal(t, "Missing", notDeclaredErr.Name)

	_, ok := output.Elaboration.ResolvedCall(call)
	assert.False(t, ok)
}

func TestResolveCallDeterminism(t *testing.T) {

	t.Parallel()

	declaration := Struct("S",
		Func("f", FunctionOptions{Parameters: []*ast.Parameter{Param("a", Nominal("Int"))}}),
		Func("f", FunctionOptions{Parameters: []*ast.Parameter{Param("a", Nominal("Bool"))}}),
		Func("f", FunctionOptions{Parameters: []*ast.Parameter{
			Param("a", Nominal("Int")),
			Param("b", Nominal("String")),
		}}),
		Func("g", FunctionOptions{}),
	)

	env, errs := sema.NewEnvironment(Program(declaration))
	require.Empty(t, errs)

	context := sema.NewContext(env, nil)
	context.Struct = declaration

	arguments := []ast.Expression{
		Int(1),
		Bool(true),
		String("s"),
		Name("undeclared"),
	}
	names := []string{"f", "g", "h", "ff"}

	properties := gopter.NewProperties(nil)

	properties.Property("repeated resolution of a call gives the same result", prop.ForAll(
		func(nameIndex int, argumentIndices []int) bool {
			invocation := Call(names[nameIndex])
			for _, index := range argumentIndices {
				invocation.Arguments = append(invocation.Arguments, Arg(arguments[index]))
			}

			first := env.ResolveCall(invocation, context)
			for i := 0; i < 3; i++ {
				again := env.ResolveCall(invocation, context)
				if again.Kind != first.Kind ||
					again.Callee != first.Callee ||
					len(again.Suggestions) != len(first.Suggestions) ||
					len(again.NameSuggestions) != len(first.NameSuggestions) {

					return false
				}
				for j, suggestion := range first.Suggestions {
					if again.Suggestions[j] != suggestion {
						return false
					}
				}
				for j, name := range first.NameSuggestions {
					if again.NameSuggestions[j] != name {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(0, len(names)-1),
		gen.SliceOfN(2, gen.IntRange(0, len(arguments)-1)),
	))

	properties.TestingRun(t)
}
