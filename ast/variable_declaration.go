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

	"github.com/flint-lang/flint/common"
)

// VariableDeclaration declares a local variable or constant,
// a property of a contract or struct,
// or a constant binding tested by an if statement (`if let x = ...`).

type VariableDeclaration struct {
	IsConstant     bool
	Identifier     Identifier
	TypeAnnotation Type
	Value          Expression
	StartPos       Position
}

var _ Element = &VariableDeclaration{}
var _ Declaration = &VariableDeclaration{}
var _ Statement = &VariableDeclaration{}
var _ IfStatementTest = &VariableDeclaration{}

func (*VariableDeclaration) ElementType() ElementType {
	return ElementTypeVariableDeclaration
}

func (*VariableDeclaration) isDeclaration() {}

func (*VariableDeclaration) isStatement() {}

func (*VariableDeclaration) isIfStatementTest() {}

func (d *VariableDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *VariableDeclaration) DeclarationKind() common.DeclarationKind {
	if d.IsConstant {
		return common.DeclarationKindConstant
	}
	return common.DeclarationKindVariable
}

func (d *VariableDeclaration) Walk(walkChild func(Element)) {
	if d.Value != nil {
		walkChild(d.Value)
	}
}

const letKeywordSpaceDoc = prettier.Text("let ")
const varKeywordSpaceDoc = prettier.Text("var ")
const typeSeparatorSpaceDoc = prettier.Text(": ")

func (d *VariableDeclaration) Doc() prettier.Doc {
	keywordDoc := varKeywordSpaceDoc
	if d.IsConstant {
		keywordDoc = letKeywordSpaceDoc
	}

	doc := prettier.Concat{
		keywordDoc,
		prettier.Text(d.Identifier.Identifier),
	}

	if d.TypeAnnotation != nil {
		doc = append(
			doc,
			typeSeparatorSpaceDoc,
			d.TypeAnnotation.Doc(),
		)
	}

	if d.Value == nil {
		return doc
	}

	return prettier.Group{
		Doc: append(
			doc,
			prettier.Text(" ="),
			prettier.Indent{
				Doc: prettier.Concat{
					prettier.Line{},
					d.Value.Doc(),
				},
			},
		),
	}
}

func (d *VariableDeclaration) String() string {
	return Prettier(d)
}

func (d *VariableDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *VariableDeclaration) EndPosition() Position {
	if d.Value != nil {
		return d.Value.EndPosition()
	}
	if d.TypeAnnotation != nil {
		return d.TypeAnnotation.EndPosition()
	}
	return d.Identifier.EndPosition()
}
