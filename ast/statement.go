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
	"github.com/turbolent/prettier"
)

type Statement interface {
	Element
	HasDoc
	isStatement()
}

// ExpressionStatement

type ExpressionStatement struct {
	Expression Expression
}

var _ Statement = &ExpressionStatement{}

func (*ExpressionStatement) ElementType() ElementType {
	return ElementTypeExpressionStatement
}

func (*ExpressionStatement) isStatement() {}

func (s *ExpressionStatement) Walk(walkChild func(Element)) {
	walkChild(s.Expression)
}

func (s *ExpressionStatement) Doc() prettier.Doc {
	return s.Expression.Doc()
}

func (s *ExpressionStatement) String() string {
	return Prettier(s)
}

func (s *ExpressionStatement) StartPosition() Position {
	return s.Expression.StartPosition()
}

func (s *ExpressionStatement) EndPosition() Position {
	return s.Expression.EndPosition()
}

// ReturnStatement

type ReturnStatement struct {
	Expression Expression
	Range
}

var _ Statement = &ReturnStatement{}

func (*ReturnStatement) ElementType() ElementType {
	return ElementTypeReturnStatement
}

func (*ReturnStatement) isStatement() {}

func (s *ReturnStatement) Walk(walkChild func(Element)) {
	if s.Expression != nil {
		walkChild(s.Expression)
	}
}

const returnStatementKeywordDoc = prettier.Text("return")

func (s *ReturnStatement) Doc() prettier.Doc {
	if s.Expression == nil {
		return returnStatementKeywordDoc
	}

	return prettier.Concat{
		returnStatementKeywordDoc,
		prettier.Space,
		s.Expression.Doc(),
	}
}

func (s *ReturnStatement) String() string {
	return Prettier(s)
}

// BecomeStatement transitions the contract instance to another type state

type BecomeStatement struct {
	State    Identifier
	StartPos Position
}

var _ Statement = &BecomeStatement{}

func (*BecomeStatement) ElementType() ElementType {
	return ElementTypeBecomeStatement
}

func (*BecomeStatement) isStatement() {}

func (*BecomeStatement) Walk(_ func(Element)) {
	// NO-OP
}

func (s *BecomeStatement) Doc() prettier.Doc {
	return prettier.Text("become " + s.State.Identifier)
}

func (s *BecomeStatement) String() string {
	return Prettier(s)
}

func (s *BecomeStatement) StartPosition() Position {
	return s.StartPos
}

func (s *BecomeStatement) EndPosition() Position {
	return s.State.EndPosition()
}

// EmitStatement

type EmitStatement struct {
	InvocationExpression *InvocationExpression
	StartPos             Position
}

var _ Statement = &EmitStatement{}

func (*EmitStatement) ElementType() ElementType {
	return ElementTypeEmitStatement
}

func (*EmitStatement) isStatement() {}

func (s *EmitStatement) Walk(walkChild func(Element)) {
	walkChild(s.InvocationExpression)
}

const emitStatementKeywordSpaceDoc = prettier.Text("emit ")

func (s *EmitStatement) Doc() prettier.Doc {
	return prettier.Concat{
		emitStatementKeywordSpaceDoc,
		s.InvocationExpression.Doc(),
	}
}

func (s *EmitStatement) String() string {
	return Prettier(s)
}

func (s *EmitStatement) StartPosition() Position {
	return s.StartPos
}

func (s *EmitStatement) EndPosition() Position {
	return s.InvocationExpression.EndPosition()
}

// AssignmentStatement
//
// Operation is OperationUnknown for a plain assignment (`=`),
// and the arithmetic operation for a compound assignment (e.g. `+=`).

type AssignmentStatement struct {
	Target    Expression
	Operation Operation
	Value     Expression
}

var _ Statement = &AssignmentStatement{}

func (*AssignmentStatement) ElementType() ElementType {
	return ElementTypeAssignmentStatement
}

func (*AssignmentStatement) isStatement() {}

func (s *AssignmentStatement) Walk(walkChild func(Element)) {
	walkChild(s.Target)
	walkChild(s.Value)
}

func (s *AssignmentStatement) OperatorSymbol() string {
	if s.Operation == OperationUnknown {
		return "="
	}
	return s.Operation.Symbol() + "="
}

func (s *AssignmentStatement) IsCompound() bool {
	return s.Operation != OperationUnknown
}

func (s *AssignmentStatement) Doc() prettier.Doc {
	return prettier.Group{
		Doc: prettier.Concat{
			s.Target.Doc(),
			prettier.Space,
			prettier.Text(s.OperatorSymbol()),
			prettier.Indent{
				Doc: prettier.Concat{
					prettier.Line{},
					s.Value.Doc(),
				},
			},
		},
	}
}

func (s *AssignmentStatement) String() string {
	return Prettier(s)
}

func (s *AssignmentStatement) StartPosition() Position {
	return s.Target.StartPosition()
}

func (s *AssignmentStatement) EndPosition() Position {
	return s.Value.EndPosition()
}

// IfStatementTest is either an expression,
// or a constant-binding variable declaration (`if let x = ...`)

type IfStatementTest interface {
	Element
	HasDoc
	isIfStatementTest()
}

// IfStatement

type IfStatement struct {
	Test     IfStatementTest
	Then     *Block
	Else     *Block
	StartPos Position
}

var _ Statement = &IfStatement{}

func (*IfStatement) ElementType() ElementType {
	return ElementTypeIfStatement
}

func (*IfStatement) isStatement() {}

func (s *IfStatement) Walk(walkChild func(Element)) {
	walkChild(s.Test)
	walkChild(s.Then)
	if s.Else != nil {
		walkChild(s.Else)
	}
}

const ifStatementIfKeywordSpaceDoc = prettier.Text("if ")
const ifStatementElseKeywordSpaceDoc = prettier.Text(" else ")

func (s *IfStatement) Doc() prettier.Doc {
	doc := prettier.Concat{
		ifStatementIfKeywordSpaceDoc,
		s.Test.Doc(),
		prettier.Space,
		s.Then.Doc(),
	}

	if s.Else != nil {
		doc = append(
			doc,
			ifStatementElseKeywordSpaceDoc,
			s.Else.Doc(),
		)
	}

	return doc
}

func (s *IfStatement) String() string {
	return Prettier(s)
}

func (s *IfStatement) StartPosition() Position {
	return s.StartPos
}

func (s *IfStatement) EndPosition() Position {
	if s.Else != nil {
		return s.Else.EndPosition()
	}
	return s.Then.EndPosition()
}

// ForStatement

type ForStatement struct {
	Identifier Identifier
	Value      Expression
	Block      *Block
	StartPos   Position
}

var _ Statement = &ForStatement{}

func (*ForStatement) ElementType() ElementType {
	return ElementTypeForStatement
}

func (*ForStatement) isStatement() {}

func (s *ForStatement) Walk(walkChild func(Element)) {
	walkChild(s.Value)
	walkChild(s.Block)
}

func (s *ForStatement) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("for let " + s.Identifier.Identifier + " in "),
		s.Value.Doc(),
		prettier.Space,
		s.Block.Doc(),
	}
}

func (s *ForStatement) String() string {
	return Prettier(s)
}

func (s *ForStatement) StartPosition() Position {
	return s.StartPos
}

func (s *ForStatement) EndPosition() Position {
	return s.Block.EndPosition()
}

// DoCatchStatement
//
// The catch block replaces the remaining statements of the do block when
// an external call in the do block fails.

type DoCatchStatement struct {
	DoBlock    *Block
	CatchBlock *Block
	StartPos   Position
}

var _ Statement = &DoCatchStatement{}

func (*DoCatchStatement) ElementType() ElementType {
	return ElementTypeDoCatchStatement
}

func (*DoCatchStatement) isStatement() {}

func (s *DoCatchStatement) Walk(walkChild func(Element)) {
	walkChild(s.DoBlock)
	walkChild(s.CatchBlock)
}

func (s *DoCatchStatement) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("do "),
		s.DoBlock.Doc(),
		prettier.Text(" catch is Error "),
		s.CatchBlock.Doc(),
	}
}

func (s *DoCatchStatement) String() string {
	return Prettier(s)
}

func (s *DoCatchStatement) StartPosition() Position {
	return s.StartPos
}

func (s *DoCatchStatement) EndPosition() Position {
	return s.CatchBlock.EndPosition()
}

// ReleaseStatement ends the lifetime of a temporary reference.
// It is never written by users, only synthesized by rewriting passes.

type ReleaseStatement struct {
	Identifier Identifier
}

var _ Statement = &ReleaseStatement{}

func (*ReleaseStatement) ElementType() ElementType {
	return ElementTypeReleaseStatement
}

func (*ReleaseStatement) isStatement() {}

func (*ReleaseStatement) Walk(_ func(Element)) {
	// NO-OP
}

func (s *ReleaseStatement) Doc() prettier.Doc {
	return prettier.Text("release " + s.Identifier.Identifier)
}

func (s *ReleaseStatement) String() string {
	return Prettier(s)
}

func (s *ReleaseStatement) StartPosition() Position {
	return s.Identifier.StartPosition()
}

func (s *ReleaseStatement) EndPosition() Position {
	return s.Identifier.EndPosition()
}
