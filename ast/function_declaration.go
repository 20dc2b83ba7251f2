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
	"github.com/flint-lang/flint/errors"
)

// Parameter

type Parameter struct {
	Identifier Identifier
	Type       Type
	// IsImplicit parameters are not passed by callers,
	// e.g. the value transferred along with a payable call
	IsImplicit bool
	StartPos   Position
}

// IsInout returns true if the parameter is passed by reference
func (p *Parameter) IsInout() bool {
	_, ok := p.Type.(*InoutType)
	return ok
}

func (p *Parameter) Doc() prettier.Doc {
	doc := prettier.Concat{}
	if p.IsImplicit {
		doc = append(doc, prettier.Text("implicit "))
	}
	return append(
		doc,
		prettier.Text(p.Identifier.Identifier),
		typeSeparatorSpaceDoc,
		p.Type.Doc(),
	)
}

func (p *Parameter) StartPosition() Position {
	return p.StartPos
}

func (p *Parameter) EndPosition() Position {
	return p.Type.EndPosition()
}

func parametersDoc(parameters []*Parameter) prettier.Doc {
	if len(parameters) == 0 {
		return prettier.Text("()")
	}

	parameterDocs := make([]prettier.Doc, len(parameters))
	for i, parameter := range parameters {
		parameterDocs[i] = parameter.Doc()
	}

	return prettier.WrapParentheses(
		prettier.Join(expressionSeparatorDoc, parameterDocs...),
		prettier.SoftLine{},
	)
}

// FunctionDeclaration
//
// Body is nil for function signatures declared in traits.

type FunctionDeclaration struct {
	IsPublic   bool
	IsMutating bool
	Identifier Identifier
	Parameters []*Parameter
	ReturnType Type
	Body       *Block
	StartPos   Position
}

var _ Element = &FunctionDeclaration{}
var _ Declaration = &FunctionDeclaration{}

func (*FunctionDeclaration) ElementType() ElementType {
	return ElementTypeFunctionDeclaration
}

func (*FunctionDeclaration) isDeclaration() {}

func (d *FunctionDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (*FunctionDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindFunction
}

func (d *FunctionDeclaration) Walk(walkChild func(Element)) {
	if d.Body != nil {
		walkChild(d.Body)
	}
}

func (d *FunctionDeclaration) IsSignature() bool {
	return d.Body == nil
}

func (d *FunctionDeclaration) Doc() prettier.Doc {
	var doc prettier.Concat

	if d.IsPublic {
		doc = append(doc, prettier.Text("public "))
	}
	if d.IsMutating {
		doc = append(doc, prettier.Text("mutating "))
	}

	doc = append(
		doc,
		prettier.Text("func "),
		prettier.Text(d.Identifier.Identifier),
		parametersDoc(d.Parameters),
	)

	if d.ReturnType != nil {
		doc = append(
			doc,
			prettier.Text(" -> "),
			d.ReturnType.Doc(),
		)
	}

	if d.Body != nil {
		doc = append(
			doc,
			prettier.Space,
			d.Body.Doc(),
		)
	}

	return doc
}

func (d *FunctionDeclaration) String() string {
	return Prettier(d)
}

func (d *FunctionDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *FunctionDeclaration) EndPosition() Position {
	if d.Body != nil {
		return d.Body.EndPosition()
	}
	if d.ReturnType != nil {
		return d.ReturnType.EndPosition()
	}
	return d.Identifier.EndPosition()
}

// SpecialKind

type SpecialKind uint8

const (
	SpecialKindInitializer SpecialKind = iota
	SpecialKindFallback
)

func (k SpecialKind) Keyword() string {
	switch k {
	case SpecialKindInitializer:
		return "init"
	case SpecialKindFallback:
		return "fallback"
	}

	panic(errors.NewUnreachableError())
}

// SpecialDeclaration is an initializer or a fallback function

type SpecialDeclaration struct {
	Kind       SpecialKind
	IsPublic   bool
	Parameters []*Parameter
	Body       *Block
	StartPos   Position
}

var _ Element = &SpecialDeclaration{}
var _ Declaration = &SpecialDeclaration{}

func (*SpecialDeclaration) ElementType() ElementType {
	return ElementTypeSpecialDeclaration
}

func (*SpecialDeclaration) isDeclaration() {}

func (d *SpecialDeclaration) DeclarationIdentifier() *Identifier {
	identifier := NewIdentifier(d.Kind.Keyword(), d.StartPos)
	return &identifier
}

func (d *SpecialDeclaration) DeclarationKind() common.DeclarationKind {
	if d.Kind == SpecialKindFallback {
		return common.DeclarationKindFallback
	}
	return common.DeclarationKindInitializer
}

func (d *SpecialDeclaration) IsInitializer() bool {
	return d.Kind == SpecialKindInitializer
}

func (d *SpecialDeclaration) IsFallback() bool {
	return d.Kind == SpecialKindFallback
}

func (d *SpecialDeclaration) Walk(walkChild func(Element)) {
	walkChild(d.Body)
}

func (d *SpecialDeclaration) Doc() prettier.Doc {
	var doc prettier.Concat

	if d.IsPublic {
		doc = append(doc, prettier.Text("public "))
	}

	return append(
		doc,
		prettier.Text(d.Kind.Keyword()),
		parametersDoc(d.Parameters),
		prettier.Space,
		d.Body.Doc(),
	)
}

func (d *SpecialDeclaration) String() string {
	return Prettier(d)
}

func (d *SpecialDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *SpecialDeclaration) EndPosition() Position {
	return d.Body.EndPosition()
}
