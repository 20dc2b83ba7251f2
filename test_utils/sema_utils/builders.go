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

package sema_utils

import (
	"math/big"

	"github.com/flint-lang/flint/ast"
)

// Builders for the programs of tests.
// Elements are positioned on the given line, if any, and at the empty position otherwise.

func Program(declarations ...ast.Declaration) *ast.Program {
	return ast.NewProgram(declarations)
}

func Ident(name string) ast.Identifier {
	return ast.NewIdentifier(name, ast.EmptyPosition)
}

func IdentAt(name string, line int) ast.Identifier {
	return ast.NewIdentifier(name, ast.NewPosition(0, line, 0))
}

func Nominal(name string) *ast.NominalType {
	return ast.NewNominalType(Ident(name))
}

func Inout(innerType ast.Type) *ast.InoutType {
	return &ast.InoutType{
		Type: innerType,
	}
}

func ArrayOf(elementType ast.Type) *ast.ArrayType {
	return &ast.ArrayType{
		Type: elementType,
	}
}

// Declarations

type ContractOptions struct {
	States       []string
	Conformances []string
}

func Contract(name string, members ...ast.Declaration) *ast.ContractDeclaration {
	return ContractWithOptions(name, ContractOptions{}, members...)
}

func ContractWithOptions(name string, options ContractOptions, members ...ast.Declaration) *ast.ContractDeclaration {
	states := make([]*ast.TypeState, len(options.States))
	for i, state := range options.States {
		states[i] = &ast.TypeState{Identifier: Ident(state)}
	}
	return &ast.ContractDeclaration{
		Identifier:   Ident(name),
		TypeStates:   states,
		Conformances: nominalTypes(options.Conformances),
		Members:      members,
	}
}

func nominalTypes(names []string) []*ast.NominalType {
	types := make([]*ast.NominalType, len(names))
	for i, name := range names {
		types[i] = Nominal(name)
	}
	return types
}

type BehaviorOptions struct {
	States        []string
	CallerBinding string
	Protections   []string
}

func Behavior(contractName string, options BehaviorOptions, members ...ast.Declaration) *ast.ContractBehaviorDeclaration {
	states := make([]*ast.TypeState, len(options.States))
	for i, state := range options.States {
		states[i] = &ast.TypeState{Identifier: Ident(state)}
	}

	protections := make([]*ast.CallerProtection, len(options.Protections))
	for i, protection := range options.Protections {
		protections[i] = &ast.CallerProtection{Identifier: Ident(protection)}
	}

	var callerBinding *ast.Identifier
	if options.CallerBinding != "" {
		identifier := Ident(options.CallerBinding)
		callerBinding = &identifier
	}

	return &ast.ContractBehaviorDeclaration{
		ContractIdentifier: Ident(contractName),
		States:             states,
		CallerBinding:      callerBinding,
		CallerProtections:  protections,
		Members:            members,
	}
}

func Struct(name string, members ...ast.Declaration) *ast.StructDeclaration {
	return &ast.StructDeclaration{
		Identifier: Ident(name),
		Members:    members,
	}
}

func Trait(kind ast.TraitKind, name string, members ...ast.Declaration) *ast.TraitDeclaration {
	return &ast.TraitDeclaration{
		Kind:       kind,
		Identifier: Ident(name),
		Members:    members,
	}
}

func Enum(name string, cases ...string) *ast.EnumDeclaration {
	declarations := make([]*ast.EnumCaseDeclaration, len(cases))
	for i, name := range cases {
		declarations[i] = &ast.EnumCaseDeclaration{Identifier: Ident(name)}
	}
	return &ast.EnumDeclaration{
		Identifier: Ident(name),
		Cases:      declarations,
	}
}

func Event(name string, parameters ...*ast.Parameter) *ast.EventDeclaration {
	return &ast.EventDeclaration{
		Identifier: Ident(name),
		Parameters: parameters,
	}
}

func Param(name string, parameterType ast.Type) *ast.Parameter {
	return &ast.Parameter{
		Identifier: Ident(name),
		Type:       parameterType,
	}
}

func Property(name string, propertyType ast.Type, value ast.Expression) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{
		Identifier:     Ident(name),
		TypeAnnotation: propertyType,
		Value:          value,
	}
}

func ConstantProperty(name string, propertyType ast.Type, value ast.Expression) *ast.VariableDeclaration {
	declaration := Property(name, propertyType, value)
	declaration.IsConstant = true
	return declaration
}

type FunctionOptions struct {
	IsPublic   bool
	IsMutating bool
	Parameters []*ast.Parameter
	ReturnType ast.Type
}

func Func(name string, options FunctionOptions, statements ...ast.Statement) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{
		IsPublic:   options.IsPublic,
		IsMutating: options.IsMutating,
		Identifier: Ident(name),
		Parameters: options.Parameters,
		ReturnType: options.ReturnType,
		Body:       Block(statements...),
	}
}

// Signature returns a function declaration without body, as declared in traits
func Signature(name string, options FunctionOptions) *ast.FunctionDeclaration {
	declaration := Func(name, options)
	declaration.Body = nil
	return declaration
}

func Init(isPublic bool, parameters []*ast.Parameter, statements ...ast.Statement) *ast.SpecialDeclaration {
	return &ast.SpecialDeclaration{
		Kind:       ast.SpecialKindInitializer,
		IsPublic:   isPublic,
		Parameters: parameters,
		Body:       Block(statements...),
	}
}

func Fallback(isPublic bool, statements ...ast.Statement) *ast.SpecialDeclaration {
	return &ast.SpecialDeclaration{
		Kind:     ast.SpecialKindFallback,
		IsPublic: isPublic,
		Body:     Block(statements...),
	}
}

// Statements

func Block(statements ...ast.Statement) *ast.Block {
	return ast.NewBlock(statements, ast.Range{})
}

func Let(name string, value ast.Expression) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{
		IsConstant: true,
		Identifier: Ident(name),
		Value:      value,
	}
}

func Var(name string, value ast.Expression) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{
		Identifier: Ident(name),
		Value:      value,
	}
}

// LetTyped returns a constant declaration with a type annotation, and no value if value is nil
func LetTyped(name string, variableType ast.Type, value ast.Expression) *ast.VariableDeclaration {
	declaration := Let(name, value)
	declaration.TypeAnnotation = variableType
	return declaration
}

func Expr(expression ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{
		Expression: expression,
	}
}

func Assign(target, value ast.Expression) *ast.AssignmentStatement {
	return &ast.AssignmentStatement{
		Target: target,
		Value:  value,
	}
}

func CompoundAssign(target ast.Expression, operation ast.Operation, value ast.Expression) *ast.AssignmentStatement {
	return &ast.AssignmentStatement{
		Target:    target,
		Operation: operation,
		Value:     value,
	}
}

func Return(expression ast.Expression) *ast.ReturnStatement {
	return &ast.ReturnStatement{
		Expression: expression,
	}
}

func Become(state string) *ast.BecomeStatement {
	return &ast.BecomeStatement{
		State: Ident(state),
	}
}

func Emit(invocation *ast.InvocationExpression) *ast.EmitStatement {
	return &ast.EmitStatement{
		InvocationExpression: invocation,
	}
}

func If(test ast.IfStatementTest, then *ast.Block, otherwise *ast.Block) *ast.IfStatement {
	return &ast.IfStatement{
		Test: test,
		Then: then,
		Else: otherwise,
	}
}

func For(name string, value ast.Expression, statements ...ast.Statement) *ast.ForStatement {
	return &ast.ForStatement{
		Identifier: Ident(name),
		Value:      value,
		Block:      Block(statements...),
	}
}

func DoCatch(do *ast.Block, catch *ast.Block) *ast.DoCatchStatement {
	return &ast.DoCatchStatement{
		DoBlock:    do,
		CatchBlock: catch,
	}
}

// Expressions

func Name(name string) *ast.IdentifierExpression {
	return ast.NewIdentifierExpression(name, ast.EmptyPosition)
}

func Self() *ast.IdentifierExpression {
	return Name(ast.SelfIdentifier)
}

func Member(expression ast.Expression, name string) *ast.MemberExpression {
	return &ast.MemberExpression{
		Expression: expression,
		Identifier: Ident(name),
	}
}

func SelfMember(name string) *ast.MemberExpression {
	return Member(Self(), name)
}

func Index(target, index ast.Expression) *ast.IndexExpression {
	return &ast.IndexExpression{
		TargetExpression:   target,
		IndexingExpression: index,
	}
}

func Int(value int64) *ast.IntegerExpression {
	return &ast.IntegerExpression{
		Value: big.NewInt(value),
	}
}

func Bool(value bool) *ast.BoolExpression {
	return &ast.BoolExpression{
		Value: value,
	}
}

func String(value string) *ast.StringExpression {
	return &ast.StringExpression{
		Value: value,
	}
}

func Address(value string) *ast.AddressExpression {
	return &ast.AddressExpression{
		Value: value,
	}
}

func Ref(expression ast.Expression) *ast.ReferenceExpression {
	return &ast.ReferenceExpression{
		Expression: expression,
	}
}

func Binary(operation ast.Operation, left, right ast.Expression) *ast.BinaryExpression {
	return &ast.BinaryExpression{
		Operation: operation,
		Left:      left,
		Right:     right,
	}
}

func HalfOpenRange(start, end ast.Expression) *ast.RangeExpression {
	return &ast.RangeExpression{
		Start: start,
		End:   end,
	}
}

func ClosedRange(start, end ast.Expression) *ast.RangeExpression {
	return &ast.RangeExpression{
		Start:    start,
		End:      end,
		IsClosed: true,
	}
}

func Arg(expression ast.Expression) *ast.Argument {
	return ast.NewUnlabeledArgument(expression)
}

func LabeledArg(label string, expression ast.Expression) *ast.Argument {
	return &ast.Argument{
		Label:      label,
		Expression: expression,
	}
}

func Call(name string, arguments ...*ast.Argument) *ast.InvocationExpression {
	return &ast.InvocationExpression{
		Identifier: Ident(name),
		Arguments:  arguments,
	}
}

func CallOn(receiver ast.Expression, name string, arguments ...*ast.Argument) *ast.InvocationExpression {
	invocation := Call(name, arguments...)
	invocation.Receiver = receiver
	return invocation
}

func External(mode ast.ExternalCallMode, invocation *ast.InvocationExpression) *ast.ExternalCallExpression {
	return &ast.ExternalCallExpression{
		Mode:       mode,
		Invocation: invocation,
	}
}
