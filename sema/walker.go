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
	"github.com/flint-lang/flint/errors"
)

// Walk runs the given pass over every element of the given program.
//
// The pre-visit hook of an element is called before its children are walked,
// and the post-visit hook after. Children are walked in order,
// each with the context of its parent, except for the scope and the unassigned properties,
// which are carried over from the previous sibling.
// Elements returned by hooks replace the visited elements in the tree.
//
// Each branch of an if, for, or do/catch statement starts with the scope before the branch,
// and the scope after the statement is the scope before it.
func Walk(program *ast.Program, pass Pass, context Context) Result {
	w := &walker{
		pass: pass,
	}
	program, context = w.walkProgram(program, context)
	return Result{
		Element:     program,
		Context:     context,
		Diagnostics: w.diagnostics,
	}
}

type walker struct {
	pass        Pass
	diagnostics Diagnostics
	// preStatements and postStatements are the statements
	// to insert around the statement being walked
	preStatements  []ast.Statement
	postStatements []ast.Statement
}

func mustBe[T ast.Element](element ast.Element) T {
	result, ok := element.(T)
	if !ok {
		panic(errors.NewUnexpectedError("invalid replacement element: %T", element))
	}
	return result
}

func (w *walker) apply(result Result, element ast.Element, context Context) (ast.Element, Context) {
	w.diagnostics = append(w.diagnostics, result.Diagnostics...)
	w.preStatements = append(w.preStatements, result.PreStatements...)
	w.postStatements = append(w.postStatements, result.PostStatements...)

	if result.Element != nil {
		element = result.Element
	}
	if !result.Context.IsZero() {
		context = result.Context
	}
	return element, context
}

func (w *walker) preVisit(element ast.Element, context Context) (ast.Element, Context) {
	return w.apply(w.pass.PreVisit(element, context), element, context)
}

func (w *walker) postVisit(element ast.Element, context Context) (ast.Element, Context) {
	return w.apply(w.pass.PostVisit(element, context), element, context)
}

func (w *walker) walkProgram(program *ast.Program, context Context) (*ast.Program, Context) {
	element, context := w.preVisit(program, context)
	program = mustBe[*ast.Program](element)

	for i, declaration := range program.Declarations {
		program.Declarations[i], _ = w.walkDeclaration(declaration, context)
	}

	element, context = w.postVisit(program, context)
	return mustBe[*ast.Program](element), context
}

func (w *walker) walkDeclarations(declarations []ast.Declaration, context Context) {
	for i, declaration := range declarations {
		declarations[i], _ = w.walkDeclaration(declaration, context)
	}
}

func (w *walker) walkDeclaration(declaration ast.Declaration, context Context) (ast.Declaration, Context) {
	context = w.enterDeclaration(declaration, context)

	element, context := w.preVisit(declaration, context)
	declaration = mustBe[ast.Declaration](element)

	switch declaration := declaration.(type) {
	case *ast.ContractDeclaration:
		w.walkDeclarations(declaration.Members, context)

	case *ast.ContractBehaviorDeclaration:
		w.walkDeclarations(declaration.Members, context)

	case *ast.StructDeclaration:
		w.walkDeclarations(declaration.Members, context)

	case *ast.TraitDeclaration:
		w.walkDeclarations(declaration.Members, context)

	case *ast.EnumDeclaration:
		for i, enumCase := range declaration.Cases {
			rewritten, _ := w.walkDeclaration(enumCase, context)
			declaration.Cases[i] = mustBe[*ast.EnumCaseDeclaration](rewritten)
		}

	case *ast.EnumCaseDeclaration:
		if declaration.RawValue != nil {
			declaration.RawValue, _ = w.walkExpression(declaration.RawValue, context)
		}

	case *ast.EventDeclaration:
		// NO-OP

	case *ast.FunctionDeclaration:
		if declaration.Body != nil {
			declaration.Body, context = w.walkFunctionBody(declaration, declaration.Body, context)
		}

	case *ast.SpecialDeclaration:
		declaration.Body, context = w.walkFunctionBody(declaration, declaration.Body, context)

	case *ast.VariableDeclaration:
		// Property
		if declaration.Value != nil {
			declaration.Value, _ = w.walkExpression(declaration.Value, context)
		}

	default:
		panic(errors.NewUnreachableError())
	}

	element, context = w.postVisit(declaration, context)
	return mustBe[ast.Declaration](element), context
}

// enterDeclaration returns the context for the given declaration and its members
func (w *walker) enterDeclaration(declaration ast.Declaration, context Context) Context {
	switch declaration := declaration.(type) {
	case *ast.ContractDeclaration:
		context.Contract = declaration

	case *ast.ContractBehaviorDeclaration:
		context.ContractBehavior = declaration
		contract := context.Environment.Composite(declaration.ContractIdentifier.Identifier)
		if contract != nil {
			context.Contract, _ = contract.Declaration.(*ast.ContractDeclaration)
		}
		context.CallerProtections = identifierNames(
			ast.CallerProtectionIdentifiers(declaration.CallerProtections),
		)
		context.TypeStates = identifierNames(
			ast.TypeStateIdentifiers(declaration.States),
		)
		context.CallerBinding = declaration.CallerBinding

	case *ast.StructDeclaration:
		context.Struct = declaration

	case *ast.TraitDeclaration:
		context.Trait = declaration

	case *ast.EnumDeclaration:
		context.Enum = declaration

	case *ast.EventDeclaration:
		context.Event = declaration

	case *ast.FunctionDeclaration:
		context.Function = declaration
		context.Scope = w.parameterScope(declaration.Parameters, context)

	case *ast.SpecialDeclaration:
		context.Special = declaration
		context.Scope = w.parameterScope(declaration.Parameters, context)
		if declaration.IsInitializer() {
			context.Unassigned = context.Environment.PropertiesWithoutDefaultValue(
				context.EnclosingTypeName(),
			)
		}

	case *ast.VariableDeclaration:
		context.InPropertyDefaultValue = true
		context.DefaultValueProperty = declaration
	}

	return context
}

// parameterScope returns the scope of a function body:
// the caller binding of the enclosing behavior, if any, and the parameters
func (w *walker) parameterScope(parameters []*ast.Parameter, context Context) *ScopeContext {
	scope := NewScopeContext()

	if context.CallerBinding != nil {
		scope = scope.Declare(&Variable{
			Identifier:      *context.CallerBinding,
			DeclarationKind: common.DeclarationKindConstant,
			Type:            AddressType,
			IsConstant:      true,
			IsInitialized:   true,
		})
	}

	for _, parameter := range parameters {
		scope = scope.Declare(&Variable{
			Identifier:      parameter.Identifier,
			DeclarationKind: common.DeclarationKindParameter,
			Type:            context.Environment.ConvertType(parameter.Type),
			IsConstant:      !parameter.IsInout(),
			IsInitialized:   true,
		})
	}

	return scope
}

func (w *walker) walkFunctionBody(
	declaration ast.Declaration,
	body *ast.Block,
	context Context,
) (*ast.Block, Context) {
	body, bodyContext := w.walkBlock(body, context, false)
	if context.Elaboration != nil {
		context.Elaboration.FunctionScopes[declaration] = bodyContext.Scope
	}
	return body, context.carry(bodyContext)
}

// walkBlock walks the statements of the given block.
// The statements of nested blocks are declared one level deeper than the enclosing statements.
func (w *walker) walkBlock(block *ast.Block, context Context, nested bool) (*ast.Block, Context) {
	if nested {
		context.Scope = context.Scope.Enter()
	}

	element, context := w.preVisit(block, context)
	block = mustBe[*ast.Block](element)

	statements := make([]ast.Statement, 0, len(block.Statements))

	for _, statement := range block.Statements {
		outerPreStatements, outerPostStatements := w.preStatements, w.postStatements
		w.preStatements, w.postStatements = nil, nil

		rewritten, statementContext := w.walkStatement(statement, context)
		context = context.carry(statementContext)

		statements = append(statements, w.preStatements...)
		statements = append(statements, rewritten)
		statements = append(statements, w.postStatements...)

		w.preStatements, w.postStatements = outerPreStatements, outerPostStatements
	}

	block.Statements = statements

	if context.Elaboration != nil {
		context.Elaboration.BlockScopes[block] = context.Scope
	}

	element, context = w.postVisit(block, context)
	return mustBe[*ast.Block](element), context
}

func (w *walker) walkStatement(statement ast.Statement, context Context) (ast.Statement, Context) {
	context.ReceiverTrail = nil
	if _, ok := statement.(*ast.BecomeStatement); ok {
		context.InBecome = true
	}

	element, context := w.preVisit(statement, context)
	statement = mustBe[ast.Statement](element)

	switch statement := statement.(type) {
	case *ast.VariableDeclaration:
		context = w.walkLocalVariableDeclaration(statement, context)

	case *ast.ExpressionStatement:
		statement.Expression, context = w.walkChild(statement.Expression, context, context)

	case *ast.ReturnStatement:
		if statement.Expression != nil {
			statement.Expression, context = w.walkChild(statement.Expression, context, context)
		}

	case *ast.BecomeStatement, *ast.ReleaseStatement:
		// NO-OP

	case *ast.EmitStatement:
		emitContext := context
		emitContext.InEmit = true
		var invocation ast.Expression
		invocation, context = w.walkChild(statement.InvocationExpression, context, emitContext)
		statement.InvocationExpression = mustBe[*ast.InvocationExpression](invocation)

	case *ast.AssignmentStatement:
		targetContext := context
		targetContext.InAssignmentTarget = true
		statement.Target, context = w.walkChild(statement.Target, context, targetContext)
		statement.Value, context = w.walkChild(statement.Value, context, context)

	case *ast.IfStatement:
		context = w.walkIfStatement(statement, context)

	case *ast.ForStatement:
		context = w.walkForStatement(statement, context)

	case *ast.DoCatchStatement:
		context = w.walkDoCatchStatement(statement, context)

	default:
		panic(errors.NewUnreachableError())
	}

	element, context = w.postVisit(statement, context)
	return mustBe[ast.Statement](element), context
}

func (w *walker) walkLocalVariableDeclaration(declaration *ast.VariableDeclaration, context Context) Context {
	if declaration.Value != nil {
		declaration.Value, context = w.walkChild(declaration.Value, context, context)
	}

	var variableType Type = InvalidType
	if declaration.TypeAnnotation != nil {
		variableType = context.Environment.ConvertType(declaration.TypeAnnotation)
	} else if declaration.Value != nil {
		variableType = TypeOf(declaration.Value, context)
	}

	context.Scope = context.Scope.Declare(&Variable{
		Identifier:      declaration.Identifier,
		DeclarationKind: declaration.DeclarationKind(),
		Type:            variableType,
		IsConstant:      declaration.IsConstant,
		IsInitialized:   declaration.Value != nil,
	})

	return context
}

func (w *walker) walkIfStatement(statement *ast.IfStatement, context Context) Context {
	testContext := context
	testContext.InIfCondition = true

	var testResultContext Context

	switch test := statement.Test.(type) {
	case *ast.VariableDeclaration:
		// The constant binding is only visible in the then branch
		element, bindingContext := w.preVisit(test, testContext)
		test = mustBe[*ast.VariableDeclaration](element)
		bindingContext = w.walkLocalVariableDeclaration(test, bindingContext)
		element, bindingContext = w.postVisit(test, bindingContext)
		statement.Test = mustBe[*ast.VariableDeclaration](element)
		testResultContext = bindingContext

	case ast.Expression:
		statement.Test, testResultContext = w.walkExpression(test, testContext)

	default:
		panic(errors.NewUnreachableError())
	}

	context.Unassigned = testResultContext.Unassigned

	thenContext := context
	thenContext.Scope = testResultContext.Scope
	thenBlock, thenResultContext := w.walkBlock(statement.Then, thenContext, true)
	statement.Then = thenBlock
	context.Unassigned = thenResultContext.Unassigned

	// Each branch starts from the scope before the statement,
	// constants initialized in any branch are initialized after it
	branchScopes := []*ScopeContext{thenResultContext.Scope}

	if statement.Else != nil {
		elseBlock, elseResultContext := w.walkBlock(statement.Else, context, true)
		statement.Else = elseBlock
		context.Unassigned = elseResultContext.Unassigned
		branchScopes = append(branchScopes, elseResultContext.Scope)
	}

	for _, branchScope := range branchScopes {
		context.Scope = context.Scope.WithInitializationsOf(branchScope)
	}

	return context
}

func (w *walker) walkForStatement(statement *ast.ForStatement, context Context) Context {
	statement.Value, context = w.walkChild(statement.Value, context, context)

	loopContext := context
	loopContext.Scope = context.Scope.Enter().Declare(&Variable{
		Identifier:      statement.Identifier,
		DeclarationKind: common.DeclarationKindConstant,
		Type:            ElementTypeOf(TypeOf(statement.Value, context)),
		IsConstant:      true,
		IsInitialized:   true,
	})

	block, blockContext := w.walkBlock(statement.Block, loopContext, false)
	statement.Block = block
	context.Unassigned = blockContext.Unassigned
	context.Scope = context.Scope.WithInitializationsOf(blockContext.Scope)

	return context
}

func (w *walker) walkDoCatchStatement(statement *ast.DoCatchStatement, context Context) Context {
	doBlock, doContext := w.walkBlock(statement.DoBlock, context.WithDoCatch(statement), true)
	statement.DoBlock = doBlock
	context.Unassigned = doContext.Unassigned

	catchBlock, catchContext := w.walkBlock(statement.CatchBlock, context, true)
	statement.CatchBlock = catchBlock
	context.Unassigned = catchContext.Unassigned

	context.Scope = context.Scope.
		WithInitializationsOf(doContext.Scope).
		WithInitializationsOf(catchContext.Scope)

	return context
}

// walkChild walks the given child expression with the given child context,
// and returns the parent context with the accumulating state of the child
func (w *walker) walkChild(
	child ast.Expression,
	parentContext Context,
	childContext Context,
) (ast.Expression, Context) {
	rewritten, resultContext := w.walkExpression(child, childContext)
	return rewritten, parentContext.carry(resultContext)
}

// receiverTrail returns the receivers of the given member access or invocation, outermost first
func receiverTrail(expression ast.Expression) []ast.Expression {
	var receiver ast.Expression
	switch expression := expression.(type) {
	case *ast.MemberExpression:
		receiver = expression.Expression
	case *ast.InvocationExpression:
		receiver = expression.Receiver
	}
	if receiver == nil {
		return nil
	}
	return append(receiverTrail(receiver), receiver)
}

func (w *walker) walkExpression(expression ast.Expression, context Context) (ast.Expression, Context) {
	context.ReceiverTrail = receiverTrail(expression)

	element, context := w.preVisit(expression, context)
	expression = mustBe[ast.Expression](element)

	switch expression := expression.(type) {
	case *ast.BoolExpression,
		*ast.IntegerExpression,
		*ast.StringExpression,
		*ast.AddressExpression,
		*ast.IdentifierExpression:
		// NO-OP

	case *ast.ArrayExpression:
		for i, value := range expression.Values {
			expression.Values[i], context = w.walkChild(value, context, context)
		}

	case *ast.DictionaryExpression:
		for i, entry := range expression.Entries {
			expression.Entries[i].Key, context = w.walkChild(entry.Key, context, context)
			expression.Entries[i].Value, context = w.walkChild(entry.Value, context, context)
		}

	case *ast.MemberExpression:
		expression.Expression, context = w.walkChild(expression.Expression, context, context)

	case *ast.IndexExpression:
		expression.TargetExpression, context = w.walkChild(expression.TargetExpression, context, context)
		indexContext := context.withoutModes()
		indexContext.InSubscript = true
		expression.IndexingExpression, context = w.walkChild(expression.IndexingExpression, context, indexContext)

	case *ast.InvocationExpression:
		if expression.Receiver != nil {
			expression.Receiver, context = w.walkChild(expression.Receiver, context, context)
		}
		for _, argument := range expression.Arguments {
			argument.Expression, context = w.walkChild(argument.Expression, context, context.withoutModes())
		}

	case *ast.ExternalCallExpression:
		callContext := context
		callContext.InExternalCall = true
		var invocation ast.Expression
		invocation, context = w.walkChild(expression.Invocation, context, callContext)
		expression.Invocation = mustBe[*ast.InvocationExpression](invocation)

	case *ast.ReferenceExpression:
		expression.Expression, context = w.walkChild(expression.Expression, context, context)

	case *ast.UnaryExpression:
		expression.Expression, context = w.walkChild(expression.Expression, context, context)

	case *ast.BinaryExpression:
		expression.Left, context = w.walkChild(expression.Left, context, context)
		expression.Right, context = w.walkChild(expression.Right, context, context)

	case *ast.RangeExpression:
		expression.Start, context = w.walkChild(expression.Start, context, context)
		expression.End, context = w.walkChild(expression.End, context, context)

	default:
		panic(errors.NewUnreachableError())
	}

	element, context = w.postVisit(expression, context)
	return mustBe[ast.Expression](element), context
}
