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
	. "github.com/flint-lang/flint/test_utils/sema_utils"
)

func TestNewEnvironmentRedeclaration(t *testing.T) {

	t.Parallel()

	t.Run("type", func(t *testing.T) {

		t.Parallel()

		first := Struct("S")
		first.Identifier = IdentAt("S", 1)
		second := Contract("S")
		second.Identifier = IdentAt("S", 2)

		_, errs := sema.NewEnvironment(Program(first, second))
		require.Len(t, errs, 1)

		var redeclarationErr *sema.RedeclarationError
		require.ErrorAs(t, errs[0], &redeclarationErr)
		assert.Equal(t, "S", redeclarationErr.Name)
		assert.Equal(t, common.DeclarationKindContract, redeclarationErr.Kind)
		assert.Equal(t, 2, redeclarationErr.Pos.Line)
		require.NotNil(t, redeclarationErr.PreviousPos)
		assert.Equal(t, 1, redeclarationErr.PreviousPos.Line)
	})

	t.Run("builtin type", func(t *testing.T) {

		t.Parallel()

		_, errs := sema.NewEnvironment(Program(Struct("Int")))
		require.Len(t, errs, 1)

		var redeclarationErr *sema.RedeclarationError
		require.ErrorAs(t, errs[0], &redeclarationErr)
		assert.Nil(t, redeclarationErr.PreviousPos)
	})

	t.Run("reserved identifier", func(t *testing.T) {

		t.Parallel()

		_, errs := sema.NewEnvironment(Program(Struct("self")))
		require.Len(t, errs, 1)
		assert.IsType(t, &sema.RedeclarationError{}, errs[0])
	})

	t.Run("property", func(t *testing.T) {

		t.Parallel()

		env, errs := sema.NewEnvironment(Program(
			Struct("S",
				Property("x", Nominal("Int"), nil),
				ConstantProperty("x", Nominal("Bool"), nil),
			),
		))
		require.Len(t, errs, 1)
		assert.IsType(t, &sema.RedeclarationError{}, errs[0])

		// The first declaration is kept
		assert.False(t, env.IsPropertyConstant("S", "x"))
		assert.Equal(t, sema.IntType, env.PropertyType("S", "x"))
	})

	t.Run("function with same signature", func(t *testing.T) {

		t.Parallel()

		_, errs := sema.NewEnvironment(Program(
			Struct("S",
				Func("f", FunctionOptions{Parameters: []*ast.Parameter{Param("a", Nominal("Int"))}}),
				Func("f", FunctionOptions{Parameters: []*ast.Parameter{Param("a", Inout(Nominal("Int")))}}),
			),
		))
		require.Len(t, errs, 1)

		var redeclarationErr *sema.RedeclarationError
		require.ErrorAs(t, errs[0], &redeclarationErr)
		assert.Equal(t, common.DeclarationKindFunction, redeclarationErr.Kind)
	})

	t.Run("overloaded function", func(t *testing.T) {

		t.Parallel()

		env, errs := sema.NewEnvironment(Program(
			Struct("S",
				Func("f", FunctionOptions{Parameters: []*ast.Parameter{Param("a", Nominal("Int"))}}),
				Func("f", FunctionOptions{Parameters: []*ast.Parameter{Param("a", Nominal("Bool"))}}),
			),
		))
		require.Empty(t, errs)
		assert.Len(t, env.FunctionsNamed("S", "f"), 2)
		assert.Equal(t, []string{"f"}, env.FunctionNames("S"))
	})

	t.Run("initializer", func(t *testing.T) {

		t.Parallel()

		_, errs := sema.NewEnvironment(Program(
			Struct("S",
				Init(true, nil),
				Init(false, nil),
			),
		))
		require.Len(t, errs, 1)

		var redeclarationErr *sema.RedeclarationError
		require.ErrorAs(t, errs[0], &redeclarationErr)
		assert.Equal(t, common.DeclarationKindInitializer, redeclarationErr.Kind)
	})

	t.Run("type states", func(t *testing.T) {

		t.Parallel()

		env, errs := sema.NewEnvironment(Program(
			ContractWithOptions("C", ContractOptions{
				States: []string{"Open", "Closed", "Open", "any"},
			}),
		))
		require.Len(t, errs, 2)
		assert.IsType(t, &sema.RedeclarationError{}, errs[0])
		assert.IsType(t, &sema.RedeclarationError{}, errs[1])

		assert.Equal(t, []string{"Open", "Closed"}, env.DeclaredTypeStates("C"))
		assert.True(t, env.IsStateDeclared("C", "any"))
		assert.False(t, env.IsStateDeclared("C", "Pending"))
	})

	t.Run("enum case", func(t *testing.T) {

		t.Parallel()

		env, errs := sema.NewEnvironment(Program(
			Enum("Color", "red", "green", "red"),
		))
		require.Len(t, errs, 1)

		var redeclarationErr *sema.RedeclarationError
		require.ErrorAs(t, errs[0], &redeclarationErr)
		assert.Equal(t, common.DeclarationKindEnumCase, redeclarationErr.Kind)

		assert.Equal(t, []string{"red", "green"}, env.Enum("Color").Cases)
	})

	t.Run("event", func(t *testing.T) {

		t.Parallel()

		_, errs := sema.NewEnvironment(Program(
			Contract("C",
				Event("Changed"),
				Event("Changed", Param("value", Nominal("Int"))),
			),
		))
		require.Len(t, errs, 1)
		assert.IsType(t, &sema.RedeclarationError{}, errs[0])
	})
}

func TestEnvironmentQueries(t *testing.T) {

	t.Parallel()

	predicate := Func("isAdmin", FunctionOptions{
		Parameters: []*ast.Parameter{Param("caller", Nominal("Address"))},
		ReturnType: Nominal("Bool"),
	})

	program := Program(
		Contract("Bank",
			Property("balance", Nominal("Int"), Int(0)),
			Property("manager", Nominal("Address"), nil),
			Property("clerks", ArrayOf(Nominal("Address")), nil),
			ConstantProperty("name", Nominal("String"), nil),
			Event("Deposited", Param("amount", Nominal("Int"))),
		),
		Behavior("Bank", BehaviorOptions{Protections: []string{"any"}},
			Init(true, nil),
			predicate,
		),
		Behavior("Bank", BehaviorOptions{Protections: []string{"manager"}},
			Func("withdraw", FunctionOptions{
				IsMutating: true,
				Parameters: []*ast.Parameter{Param("amount", Nominal("Int"))},
			}),
		),
		Trait(ast.TraitKindExternal, "Token",
			Signature("transfer", FunctionOptions{
				Parameters: []*ast.Parameter{Param("to", Nominal("Address"))},
			}),
		),
	)

	env, errs := sema.NewEnvironment(program)
	require.Empty(t, errs)

	t.Run("types", func(t *testing.T) {

		t.Parallel()

		assert.True(t, env.IsTypeDeclared("Bank"))
		assert.True(t, env.IsTypeDeclared("Int"))
		assert.False(t, env.IsTypeDeclared("Vault"))
		assert.True(t, env.IsContractDeclared("Bank"))
		assert.False(t, env.IsStructDeclared("Bank"))
		assert.True(t, env.IsTraitDeclared("Token"))
	})

	t.Run("properties", func(t *testing.T) {

		t.Parallel()

		assert.True(t, env.IsPropertyDeclared("Bank", "balance"))
		assert.False(t, env.IsPropertyDeclared("Bank", "vault"))
		assert.True(t, env.IsPropertyConstant("Bank", "name"))
		assert.Equal(t, sema.StringType, env.PropertyType("Bank", "name"))
		assert.True(t, sema.IsInvalidType(env.PropertyType("Bank", "vault")))
		assert.NotNil(t, env.PropertyDefaultValue("Bank", "balance"))
		assert.Nil(t, env.PropertyDefaultValue("Bank", "manager"))

		unassigned := env.PropertiesWithoutDefaultValue("Bank")
		assert.Equal(t, []int{1, 2, 3}, unassigned.Indices())
	})

	t.Run("caller protections", func(t *testing.T) {

		t.Parallel()

		assert.True(t, env.IsCallerProtectionDeclared("Bank", "any"))
		assert.True(t, env.IsCallerProtectionDeclared("Bank", "manager"))
		assert.True(t, env.IsCallerProtectionDeclared("Bank", "clerks"))
		assert.True(t, env.IsCallerProtectionDeclared("Bank", "isAdmin"))
		assert.False(t, env.IsCallerProtectionDeclared("Bank", "balance"))
		assert.False(t, env.IsCallerProtectionDeclared("Bank", "withdraw"))
		assert.False(t, env.IsCallerProtectionDeclared("Bank", "auditor"))

		assert.Equal(t,
			[]string{"any", "manager", "clerks", "isAdmin"},
			env.DeclaredCallerProtections("Bank"),
		)
	})

	t.Run("functions", func(t *testing.T) {

		t.Parallel()

		withdraw := env.FunctionsNamed("Bank", "withdraw")
		require.Len(t, withdraw, 1)
		assert.Equal(t, []string{"manager"}, withdraw[0].CallerProtections)
		assert.True(t, withdraw[0].IsMutating)
		assert.Equal(t, "Bank.withdraw(amount: Int)", withdraw[0].SignatureID())

		assert.Len(t, env.FunctionsNamed("Token", "transfer"), 1)
		assert.Len(t, env.FunctionsNamed("", sema.AssertFunctionName), 1)

		initializers := env.Initializers("Bank")
		require.Len(t, initializers, 1)
		assert.Equal(t, sema.CallableKindInitializer, initializers[0].Kind)
	})

	t.Run("events", func(t *testing.T) {

		t.Parallel()

		assert.True(t, env.IsEventDeclared("Bank", "Deposited"))
		assert.False(t, env.IsEventDeclared("Bank", "Withdrawn"))
		event := env.Event("Bank", "Deposited")
		require.NotNil(t, event)
		assert.Equal(t, sema.CallableKindEvent, event.Kind)
	})
}

func TestEnvironmentPublicInitializer(t *testing.T) {

	t.Parallel()

	first := Init(true, nil)
	second := Init(true, []*ast.Parameter{Param("a", Nominal("Int"))})

	env, errs := sema.NewEnvironment(Program(
		Contract("C"),
		Behavior("C", BehaviorOptions{Protections: []string{"any"}}, first, second),
	))
	require.Empty(t, errs)

	firstRecord := env.SpecialRecord("C", first)
	secondRecord := env.SpecialRecord("C", second)
	require.NotNil(t, firstRecord)
	require.NotNil(t, secondRecord)

	assert.Nil(t, env.PublicInitializer("C"))
	assert.Nil(t, env.SetPublicInitializer("C", firstRecord))
	// Recording the same initializer again is not a conflict
	assert.Nil(t, env.SetPublicInitializer("C", firstRecord))
	assert.Same(t, firstRecord, env.SetPublicInitializer("C", secondRecord))
	assert.Same(t, firstRecord, env.PublicInitializer("C"))
}
