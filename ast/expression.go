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
	"math/big"
	"strconv"

	"github.com/turbolent/prettier"
)

const NilConstant = "nil"

type Expression interface {
	Element
	IfStatementTest
	HasDoc
	String() string
	isExpression()
	precedence() precedence
}

// BoolExpression

type BoolExpression struct {
	Value bool
	Range
}

var _ Expression = &BoolExpression{}

func (*BoolExpression) ElementType() ElementType {
	return ElementTypeBoolExpression
}

func (*BoolExpression) isExpression() {}

func (*BoolExpression) isIfStatementTest() {}

func (*BoolExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *BoolExpression) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

func (e *BoolExpression) Doc() prettier.Doc {
	return prettier.Text(e.String())
}

func (*BoolExpression) precedence() precedence {
	return precedenceLiteral
}

// IntegerExpression

type IntegerExpression struct {
	Value *big.Int
	Range
}

var _ Expression = &IntegerExpression{}

func NewIntegerExpression(value int64, exprRange Range) *IntegerExpression {
	return &IntegerExpression{
		Value: big.NewInt(value),
		Range: exprRange,
	}
}

func (*IntegerExpression) ElementType() ElementType {
	return ElementTypeIntegerExpression
}

func (*IntegerExpression) isExpression() {}

func (*IntegerExpression) isIfStatementTest() {}

func (*IntegerExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *IntegerExpression) String() string {
	return e.Value.String()
}

func (e *IntegerExpression) Doc() prettier.Doc {
	return prettier.Text(e.String())
}

func (*IntegerExpression) precedence() precedence {
	return precedenceLiteral
}

// StringExpression

type StringExpression struct {
	Value string
	Range
}

var _ Expression = &StringExpression{}

func (*StringExpression) ElementType() ElementType {
	return ElementTypeStringExpression
}

func (*StringExpression) isExpression() {}

func (*StringExpression) isIfStatementTest() {}

func (*StringExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *StringExpression) String() string {
	return strconv.Quote(e.Value)
}

func (e *StringExpression) Doc() prettier.Doc {
	return prettier.Text(e.String())
}

func (*StringExpression) precedence() precedence {
	return precedenceLiteral
}

// AddressExpression

type AddressExpression struct {
	// Value is the hexadecimal literal, including the 0x prefix
	Value string
	Range
}

var _ Expression = &AddressExpression{}

func (*AddressExpression) ElementType() ElementType {
	return ElementTypeAddressExpression
}

func (*AddressExpression) isExpression() {}

func (*AddressExpression) isIfStatementTest() {}

func (*AddressExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *AddressExpression) String() string {
	return e.Value
}

func (e *AddressExpression) Doc() prettier.Doc {
	return prettier.Text(e.Value)
}

func (*AddressExpression) precedence() precedence {
	return precedenceLiteral
}

// ArrayExpression

type ArrayExpression struct {
	Values []Expression
	Range
}

var _ Expression = &ArrayExpression{}

func (*ArrayExpression) ElementType() ElementType {
	return ElementTypeArrayExpression
}

func (*ArrayExpression) isExpression() {}

func (*ArrayExpression) isIfStatementTest() {}

func (e *ArrayExpression) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, e.Values)
}

func (e *ArrayExpression) String() string {
	return Prettier(e)
}

var expressionSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func (e *ArrayExpression) Doc() prettier.Doc {
	if len(e.Values) == 0 {
		return prettier.Text("[]")
	}

	elementDocs := make([]prettier.Doc, len(e.Values))
	for i, value := range e.Values {
		elementDocs[i] = value.Doc()
	}

	return prettier.WrapBrackets(
		prettier.Join(expressionSeparatorDoc, elementDocs...),
		prettier.SoftLine{},
	)
}

func (*ArrayExpression) precedence() precedence {
	return precedenceLiteral
}

// DictionaryExpression

type DictionaryExpression struct {
	Entries []DictionaryEntry
	Range
}

type DictionaryEntry struct {
	Key   Expression
	Value Expression
}

var _ Expression = &DictionaryExpression{}

func (*DictionaryExpression) ElementType() ElementType {
	return ElementTypeDictionaryExpression
}

func (*DictionaryExpression) isExpression() {}

func (*DictionaryExpression) isIfStatementTest() {}

func (e *DictionaryExpression) Walk(walkChild func(Element)) {
	for _, entry := range e.Entries {
		walkChild(entry.Key)
		walkChild(entry.Value)
	}
}

func (e *DictionaryExpression) String() string {
	return Prettier(e)
}

func (e *DictionaryExpression) Doc() prettier.Doc {
	if len(e.Entries) == 0 {
		return prettier.Text("[:]")
	}

	entryDocs := make([]prettier.Doc, len(e.Entries))
	for i, entry := range e.Entries {
		entryDocs[i] = prettier.Group{
			Doc: prettier.Concat{
				entry.Key.Doc(),
				prettier.Text(":"),
				prettier.Space,
				entry.Value.Doc(),
			},
		}
	}

	return prettier.WrapBrackets(
		prettier.Join(expressionSeparatorDoc, entryDocs...),
		prettier.SoftLine{},
	)
}

func (*DictionaryExpression) precedence() precedence {
	return precedenceLiteral
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier Identifier
}

var _ Expression = &IdentifierExpression{}

func NewIdentifierExpression(identifier string, pos Position) *IdentifierExpression {
	return &IdentifierExpression{
		Identifier: NewIdentifier(identifier, pos),
	}
}

func (*IdentifierExpression) ElementType() ElementType {
	return ElementTypeIdentifierExpression
}

func (*IdentifierExpression) isExpression() {}

func (*IdentifierExpression) isIfStatementTest() {}

func (*IdentifierExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *IdentifierExpression) String() string {
	return e.Identifier.Identifier
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return prettier.Text(e.Identifier.Identifier)
}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Identifier.StartPosition()
}

func (e *IdentifierExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

func (*IdentifierExpression) precedence() precedence {
	return precedenceLiteral
}

// MemberExpression is a property access `a.b`

type MemberExpression struct {
	Expression Expression
	Identifier Identifier
}

var _ Expression = &MemberExpression{}

func (*MemberExpression) ElementType() ElementType {
	return ElementTypeMemberExpression
}

func (*MemberExpression) isExpression() {}

func (*MemberExpression) isIfStatementTest() {}

func (e *MemberExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *MemberExpression) String() string {
	return Prettier(e)
}

const memberOperatorDoc = prettier.Text(".")

func (e *MemberExpression) Doc() prettier.Doc {
	return prettier.Concat{
		parenthesizedExpressionDoc(e.Expression, e.precedence()),
		memberOperatorDoc,
		prettier.Text(e.Identifier.Identifier),
	}
}

func (e *MemberExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *MemberExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

func (*MemberExpression) precedence() precedence {
	return precedenceAccess
}

// IndexExpression is a subscript `a[i]`

type IndexExpression struct {
	TargetExpression   Expression
	IndexingExpression Expression
	EndPos             Position
}

var _ Expression = &IndexExpression{}

func (*IndexExpression) ElementType() ElementType {
	return ElementTypeIndexExpression
}

func (*IndexExpression) isExpression() {}

func (*IndexExpression) isIfStatementTest() {}

func (e *IndexExpression) Walk(walkChild func(Element)) {
	walkChild(e.TargetExpression)
	walkChild(e.IndexingExpression)
}

func (e *IndexExpression) String() string {
	return Prettier(e)
}

func (e *IndexExpression) Doc() prettier.Doc {
	return prettier.Concat{
		parenthesizedExpressionDoc(e.TargetExpression, e.precedence()),
		prettier.WrapBrackets(
			e.IndexingExpression.Doc(),
			prettier.SoftLine{},
		),
	}
}

func (e *IndexExpression) StartPosition() Position {
	return e.TargetExpression.StartPosition()
}

func (e *IndexExpression) EndPosition() Position {
	return e.EndPos
}

func (*IndexExpression) precedence() precedence {
	return precedenceAccess
}

// Argument

type Argument struct {
	Label      string
	Expression Expression
}

func NewUnlabeledArgument(expression Expression) *Argument {
	return &Argument{
		Expression: expression,
	}
}

func (a *Argument) Doc() prettier.Doc {
	argumentDoc := a.Expression.Doc()
	if a.Label == "" {
		return argumentDoc
	}
	return prettier.Concat{
		prettier.Text(a.Label + ": "),
		argumentDoc,
	}
}

// InvocationExpression is a call of a function, initializer or event by name.
// The receiver is nil for calls of functions of the enclosing type,
// initializers, events and global functions.

type InvocationExpression struct {
	Receiver   Expression
	Identifier Identifier
	Arguments  []*Argument
	EndPos     Position
}

var _ Expression = &InvocationExpression{}

func (*InvocationExpression) ElementType() ElementType {
	return ElementTypeInvocationExpression
}

func (*InvocationExpression) isExpression() {}

func (*InvocationExpression) isIfStatementTest() {}

func (e *InvocationExpression) Walk(walkChild func(Element)) {
	if e.Receiver != nil {
		walkChild(e.Receiver)
	}
	for _, argument := range e.Arguments {
		walkChild(argument.Expression)
	}
}

func (e *InvocationExpression) String() string {
	return Prettier(e)
}

func (e *InvocationExpression) Doc() prettier.Doc {
	var result prettier.Concat

	if e.Receiver != nil {
		result = append(
			result,
			parenthesizedExpressionDoc(e.Receiver, e.precedence()),
			memberOperatorDoc,
		)
	}

	result = append(result, prettier.Text(e.Identifier.Identifier))

	if len(e.Arguments) == 0 {
		return append(result, prettier.Text("()"))
	}

	argumentDocs := make([]prettier.Doc, len(e.Arguments))
	for i, argument := range e.Arguments {
		argumentDocs[i] = argument.Doc()
	}

	return append(
		result,
		prettier.WrapParentheses(
			prettier.Join(expressionSeparatorDoc, argumentDocs...),
			prettier.SoftLine{},
		),
	)
}

func (e *InvocationExpression) StartPosition() Position {
	if e.Receiver != nil {
		return e.Receiver.StartPosition()
	}
	return e.Identifier.StartPosition()
}

func (e *InvocationExpression) EndPosition() Position {
	return e.EndPos
}

func (*InvocationExpression) precedence() precedence {
	return precedenceAccess
}

// ArgumentExpressions returns the expressions of all arguments, in order.
func (e *InvocationExpression) ArgumentExpressions() []Expression {
	expressions := make([]Expression, len(e.Arguments))
	for i, argument := range e.Arguments {
		expressions[i] = argument.Expression
	}
	return expressions
}

// ExternalCallMode

type ExternalCallMode uint8

const (
	// ExternalCallModeDefault is `call`, which must be handled by an enclosing do/catch
	ExternalCallModeDefault ExternalCallMode = iota
	// ExternalCallModeForced is `call!`, which reverts on failure
	ExternalCallModeForced
	// ExternalCallModeOptional is `call?`, which evaluates to an optional
	ExternalCallModeOptional
)

func (m ExternalCallMode) Keyword() string {
	switch m {
	case ExternalCallModeForced:
		return "call!"
	case ExternalCallModeOptional:
		return "call?"
	default:
		return "call"
	}
}

// ExternalCallExpression is a call of a function of an external contract

type ExternalCallExpression struct {
	Mode       ExternalCallMode
	Invocation *InvocationExpression
	StartPos   Position
}

var _ Expression = &ExternalCallExpression{}

func (*ExternalCallExpression) ElementType() ElementType {
	return ElementTypeExternalCallExpression
}

func (*ExternalCallExpression) isExpression() {}

func (*ExternalCallExpression) isIfStatementTest() {}

func (e *ExternalCallExpression) Walk(walkChild func(Element)) {
	walkChild(e.Invocation)
}

func (e *ExternalCallExpression) String() string {
	return Prettier(e)
}

func (e *ExternalCallExpression) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text(e.Mode.Keyword()),
		prettier.Space,
		e.Invocation.Doc(),
	}
}

func (e *ExternalCallExpression) StartPosition() Position {
	return e.StartPos
}

func (e *ExternalCallExpression) EndPosition() Position {
	return e.Invocation.EndPosition()
}

func (*ExternalCallExpression) precedence() precedence {
	return precedenceUnaryPrefix
}

// ReferenceExpression is an explicit mutable reference `&x`

type ReferenceExpression struct {
	Expression Expression
	StartPos   Position
}

var _ Expression = &ReferenceExpression{}

func (*ReferenceExpression) ElementType() ElementType {
	return ElementTypeReferenceExpression
}

func (*ReferenceExpression) isExpression() {}

func (*ReferenceExpression) isIfStatementTest() {}

func (e *ReferenceExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *ReferenceExpression) String() string {
	return Prettier(e)
}

const referenceOperatorDoc = prettier.Text("&")

func (e *ReferenceExpression) Doc() prettier.Doc {
	return prettier.Concat{
		referenceOperatorDoc,
		parenthesizedExpressionDoc(e.Expression, e.precedence()),
	}
}

func (e *ReferenceExpression) StartPosition() Position {
	return e.StartPos
}

func (e *ReferenceExpression) EndPosition() Position {
	return e.Expression.EndPosition()
}

func (*ReferenceExpression) precedence() precedence {
	return precedenceUnaryPrefix
}

// UnaryExpression

type UnaryExpression struct {
	Operation  Operation
	Expression Expression
	StartPos   Position
}

var _ Expression = &UnaryExpression{}

func (*UnaryExpression) ElementType() ElementType {
	return ElementTypeUnaryExpression
}

func (*UnaryExpression) isExpression() {}

func (*UnaryExpression) isIfStatementTest() {}

func (e *UnaryExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *UnaryExpression) String() string {
	return Prettier(e)
}

func (e *UnaryExpression) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text(e.Operation.Symbol()),
		parenthesizedExpressionDoc(e.Expression, e.precedence()),
	}
}

func (e *UnaryExpression) StartPosition() Position {
	return e.StartPos
}

func (e *UnaryExpression) EndPosition() Position {
	return e.Expression.EndPosition()
}

func (*UnaryExpression) precedence() precedence {
	return precedenceUnaryPrefix
}

// BinaryExpression

type BinaryExpression struct {
	Operation Operation
	Left      Expression
	Right     Expression
}

var _ Expression = &BinaryExpression{}

func (*BinaryExpression) ElementType() ElementType {
	return ElementTypeBinaryExpression
}

func (*BinaryExpression) isExpression() {}

func (*BinaryExpression) isIfStatementTest() {}

func (e *BinaryExpression) Walk(walkChild func(Element)) {
	walkChild(e.Left)
	walkChild(e.Right)
}

func (e *BinaryExpression) String() string {
	return Prettier(e)
}

func (e *BinaryExpression) Doc() prettier.Doc {
	ownPrecedence := e.precedence()
	isLeftAssociative := e.IsLeftAssociative()
	isRightAssociative := !isLeftAssociative

	leftDoc := e.Left.Doc()
	leftPrecedence := e.Left.precedence()

	if (isLeftAssociative && ownPrecedence > leftPrecedence) ||
		(isRightAssociative && ownPrecedence >= leftPrecedence) {

		leftDoc = prettier.WrapParentheses(leftDoc, prettier.SoftLine{})
	}

	rightDoc := e.Right.Doc()
	rightPrecedence := e.Right.precedence()

	if (isLeftAssociative && ownPrecedence >= rightPrecedence) ||
		(isRightAssociative && ownPrecedence > rightPrecedence) {

		rightDoc = prettier.WrapParentheses(rightDoc, prettier.SoftLine{})
	}

	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Group{
				Doc: leftDoc,
			},
			prettier.Line{},
			prettier.Text(e.Operation.Symbol()),
			prettier.Space,
			prettier.Group{
				Doc: rightDoc,
			},
		},
	}
}

func (e *BinaryExpression) StartPosition() Position {
	return e.Left.StartPosition()
}

func (e *BinaryExpression) EndPosition() Position {
	return e.Right.EndPosition()
}

func (e *BinaryExpression) precedence() precedence {
	switch e.Operation {
	case OperationOr:
		return precedenceLogicalOr
	case OperationAnd:
		return precedenceLogicalAnd
	case OperationEqual,
		OperationNotEqual,
		OperationLess,
		OperationLessEqual,
		OperationGreater,
		OperationGreaterEqual:
		return precedenceComparison
	case OperationPlus,
		OperationMinus:
		return precedenceAdditive
	case OperationMul,
		OperationDiv,
		OperationMod:
		return precedenceMultiplicative
	case OperationPower:
		return precedenceExponent
	}
	return precedenceUnknown
}

func (e *BinaryExpression) IsLeftAssociative() bool {
	return e.Operation != OperationPower
}

// RangeExpression is a half-open `a..<b` or closed `a...b` range

type RangeExpression struct {
	Start    Expression
	End      Expression
	IsClosed bool
}

var _ Expression = &RangeExpression{}

func (*RangeExpression) ElementType() ElementType {
	return ElementTypeRangeExpression
}

func (*RangeExpression) isExpression() {}

func (*RangeExpression) isIfStatementTest() {}

func (e *RangeExpression) Walk(walkChild func(Element)) {
	walkChild(e.Start)
	walkChild(e.End)
}

func (e *RangeExpression) String() string {
	return Prettier(e)
}

func (e *RangeExpression) Operator() string {
	if e.IsClosed {
		return "..."
	}
	return "..<"
}

func (e *RangeExpression) Doc() prettier.Doc {
	return prettier.Concat{
		parenthesizedExpressionDoc(e.Start, e.precedence()+1),
		prettier.Text(e.Operator()),
		parenthesizedExpressionDoc(e.End, e.precedence()+1),
	}
}

func (e *RangeExpression) StartPosition() Position {
	return e.Start.StartPosition()
}

func (e *RangeExpression) EndPosition() Position {
	return e.End.EndPosition()
}

func (*RangeExpression) precedence() precedence {
	return precedenceRange
}

func walkExpressions(walkChild func(Element), expressions []Expression) {
	for _, expression := range expressions {
		walkChild(expression)
	}
}

func parenthesizedExpressionDoc(e Expression, parentPrecedence precedence) prettier.Doc {
	doc := e.Doc()
	subPrecedence := e.precedence()
	if parentPrecedence <= subPrecedence {
		return doc
	}
	return prettier.WrapParentheses(
		doc,
		prettier.SoftLine{},
	)
}
