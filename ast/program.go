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

type Program struct {
	// all declarations, in the order they are defined
	Declarations []Declaration
}

var _ Element = &Program{}

func NewProgram(declarations []Declaration) *Program {
	return &Program{
		Declarations: declarations,
	}
}

func (*Program) ElementType() ElementType {
	return ElementTypeProgram
}

func (p *Program) Walk(walkChild func(Element)) {
	walkDeclarations(walkChild, p.Declarations)
}

func (p *Program) StartPosition() Position {
	if len(p.Declarations) == 0 {
		return Position{}
	}
	firstDeclaration := p.Declarations[0]
	return firstDeclaration.StartPosition()
}

func (p *Program) EndPosition() Position {
	count := len(p.Declarations)
	if count == 0 {
		return Position{}
	}
	lastDeclaration := p.Declarations[count-1]
	return lastDeclaration.EndPosition()
}

func (p *Program) ContractDeclarations() []*ContractDeclaration {
	return membersOfType[*ContractDeclaration](p.Declarations)
}

func (p *Program) ContractBehaviorDeclarations() []*ContractBehaviorDeclaration {
	return membersOfType[*ContractBehaviorDeclaration](p.Declarations)
}

func (p *Program) StructDeclarations() []*StructDeclaration {
	return membersOfType[*StructDeclaration](p.Declarations)
}

func (p *Program) TraitDeclarations() []*TraitDeclaration {
	return membersOfType[*TraitDeclaration](p.Declarations)
}

func (p *Program) EnumDeclarations() []*EnumDeclaration {
	return membersOfType[*EnumDeclaration](p.Declarations)
}
