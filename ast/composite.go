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

const AnyIdentifier = "any"

// TypeState

type TypeState struct {
	Identifier Identifier
}

func (s *TypeState) IsAny() bool {
	return s.Identifier.Identifier == AnyIdentifier
}

func (s *TypeState) StartPosition() Position {
	return s.Identifier.StartPosition()
}

func (s *TypeState) EndPosition() Position {
	return s.Identifier.EndPosition()
}

// CallerProtection

type CallerProtection struct {
	Identifier Identifier
}

func (p *CallerProtection) IsAny() bool {
	return p.Identifier.Identifier == AnyIdentifier
}

func (p *CallerProtection) StartPosition() Position {
	return p.Identifier.StartPosition()
}

func (p *CallerProtection) EndPosition() Position {
	return p.Identifier.EndPosition()
}

func identifierListDoc(identifiers []Identifier) prettier.Doc {
	docs := make([]prettier.Doc, len(identifiers))
	for i, identifier := range identifiers {
		docs[i] = prettier.Text(identifier.Identifier)
	}
	return prettier.WrapParentheses(
		prettier.Join(expressionSeparatorDoc, docs...),
		prettier.SoftLine{},
	)
}

func TypeStateIdentifiers(states []*TypeState) []Identifier {
	identifiers := make([]Identifier, len(states))
	for i, state := range states {
		identifiers[i] = state.Identifier
	}
	return identifiers
}

func CallerProtectionIdentifiers(protections []*CallerProtection) []Identifier {
	identifiers := make([]Identifier, len(protections))
	for i, protection := range protections {
		identifiers[i] = protection.Identifier
	}
	return identifiers
}

func membersDoc(members []Declaration) prettier.Doc {
	if len(members) == 0 {
		return blockEmptyDoc
	}

	var doc prettier.Concat
	for _, member := range members {
		doc = append(
			doc,
			prettier.HardLine{},
			member.Doc(),
		)
	}

	return prettier.Concat{
		blockStartDoc,
		prettier.Indent{
			Doc: doc,
		},
		prettier.HardLine{},
		blockEndDoc,
	}
}

func conformancesDoc(conformances []*NominalType) prettier.Doc {
	if len(conformances) == 0 {
		return prettier.Concat{}
	}

	docs := make([]prettier.Doc, len(conformances))
	for i, conformance := range conformances {
		docs[i] = conformance.Doc()
	}

	return prettier.Concat{
		prettier.Text(": "),
		prettier.Join(expressionSeparatorDoc, docs...),
	}
}

func walkDeclarations(walkChild func(Element), declarations []Declaration) {
	for _, declaration := range declarations {
		walkChild(declaration)
	}
}

func membersOfType[T Declaration](members []Declaration) []T {
	var result []T
	for _, member := range members {
		if typed, ok := member.(T); ok {
			result = append(result, typed)
		}
	}
	return result
}

// ContractDeclaration declares the state of a contract:
// its type states, properties and events.
// The behavior is declared separately, in contract behavior declarations.

type ContractDeclaration struct {
	Identifier   Identifier
	TypeStates   []*TypeState
	Conformances []*NominalType
	// Members are *VariableDeclaration (properties) and *EventDeclaration
	Members []Declaration
	Range
}

var _ Declaration = &ContractDeclaration{}

func (*ContractDeclaration) ElementType() ElementType {
	return ElementTypeContractDeclaration
}

func (*ContractDeclaration) isDeclaration() {}

func (d *ContractDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (*ContractDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindContract
}

func (d *ContractDeclaration) Walk(walkChild func(Element)) {
	walkDeclarations(walkChild, d.Members)
}

func (d *ContractDeclaration) Properties() []*VariableDeclaration {
	return membersOfType[*VariableDeclaration](d.Members)
}

func (d *ContractDeclaration) Events() []*EventDeclaration {
	return membersOfType[*EventDeclaration](d.Members)
}

func (d *ContractDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("contract "),
		prettier.Text(d.Identifier.Identifier),
	}

	if len(d.TypeStates) > 0 {
		doc = append(
			doc,
			prettier.Space,
			identifierListDoc(TypeStateIdentifiers(d.TypeStates)),
		)
	}

	return append(
		doc,
		conformancesDoc(d.Conformances),
		prettier.Space,
		membersDoc(d.Members),
	)
}

func (d *ContractDeclaration) String() string {
	return Prettier(d)
}

// ContractBehaviorDeclaration declares functions and initializers of a contract,
// which are callable in the given type states by callers satisfying one of the caller protections.
//
//	Counter @(Counting) :: caller <- (owner) { ... }

type ContractBehaviorDeclaration struct {
	ContractIdentifier Identifier
	States             []*TypeState
	CallerBinding      *Identifier
	CallerProtections  []*CallerProtection
	// Members are *FunctionDeclaration and *SpecialDeclaration
	Members []Declaration
	Range
}

var _ Declaration = &ContractBehaviorDeclaration{}

func (*ContractBehaviorDeclaration) ElementType() ElementType {
	return ElementTypeContractBehaviorDeclaration
}

func (*ContractBehaviorDeclaration) isDeclaration() {}

func (d *ContractBehaviorDeclaration) DeclarationIdentifier() *Identifier {
	return &d.ContractIdentifier
}

func (*ContractBehaviorDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindContractBehavior
}

func (d *ContractBehaviorDeclaration) Walk(walkChild func(Element)) {
	walkDeclarations(walkChild, d.Members)
}

func (d *ContractBehaviorDeclaration) Functions() []*FunctionDeclaration {
	return membersOfType[*FunctionDeclaration](d.Members)
}

func (d *ContractBehaviorDeclaration) Specials() []*SpecialDeclaration {
	return membersOfType[*SpecialDeclaration](d.Members)
}

func (d *ContractBehaviorDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text(d.ContractIdentifier.Identifier),
	}

	if len(d.States) > 0 {
		doc = append(
			doc,
			prettier.Text(" @"),
			identifierListDoc(TypeStateIdentifiers(d.States)),
		)
	}

	doc = append(doc, prettier.Text(" :: "))

	if d.CallerBinding != nil {
		doc = append(
			doc,
			prettier.Text(d.CallerBinding.Identifier),
			prettier.Text(" <- "),
		)
	}

	return append(
		doc,
		identifierListDoc(CallerProtectionIdentifiers(d.CallerProtections)),
		prettier.Space,
		membersDoc(d.Members),
	)
}

func (d *ContractBehaviorDeclaration) String() string {
	return Prettier(d)
}

// StructDeclaration

type StructDeclaration struct {
	Identifier   Identifier
	Conformances []*NominalType
	// Members are *VariableDeclaration (properties), *FunctionDeclaration and *SpecialDeclaration
	Members []Declaration
	Range
}

var _ Declaration = &StructDeclaration{}

func (*StructDeclaration) ElementType() ElementType {
	return ElementTypeStructDeclaration
}

func (*StructDeclaration) isDeclaration() {}

func (d *StructDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (*StructDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindStructure
}

func (d *StructDeclaration) Walk(walkChild func(Element)) {
	walkDeclarations(walkChild, d.Members)
}

func (d *StructDeclaration) Properties() []*VariableDeclaration {
	return membersOfType[*VariableDeclaration](d.Members)
}

func (d *StructDeclaration) Functions() []*FunctionDeclaration {
	return membersOfType[*FunctionDeclaration](d.Members)
}

func (d *StructDeclaration) Specials() []*SpecialDeclaration {
	return membersOfType[*SpecialDeclaration](d.Members)
}

func (d *StructDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("struct "),
		prettier.Text(d.Identifier.Identifier),
		conformancesDoc(d.Conformances),
		prettier.Space,
		membersDoc(d.Members),
	}
}

func (d *StructDeclaration) String() string {
	return Prettier(d)
}

// TraitKind

type TraitKind uint8

const (
	TraitKindStruct TraitKind = iota
	TraitKindContract
	// TraitKindExternal traits describe the interface of contracts deployed elsewhere
	TraitKindExternal
)

func (k TraitKind) Keyword() string {
	switch k {
	case TraitKindStruct:
		return "struct trait"
	case TraitKindContract:
		return "contract trait"
	case TraitKindExternal:
		return "external trait"
	}

	panic(errors.NewUnreachableError())
}

// TraitDeclaration

type TraitDeclaration struct {
	Kind       TraitKind
	Identifier Identifier
	// Members are function signatures (*FunctionDeclaration without body) and *EventDeclaration
	Members []Declaration
	Range
}

var _ Declaration = &TraitDeclaration{}

func (*TraitDeclaration) ElementType() ElementType {
	return ElementTypeTraitDeclaration
}

func (*TraitDeclaration) isDeclaration() {}

func (d *TraitDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (*TraitDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindTrait
}

func (d *TraitDeclaration) Walk(walkChild func(Element)) {
	walkDeclarations(walkChild, d.Members)
}

func (d *TraitDeclaration) Functions() []*FunctionDeclaration {
	return membersOfType[*FunctionDeclaration](d.Members)
}

func (d *TraitDeclaration) Events() []*EventDeclaration {
	return membersOfType[*EventDeclaration](d.Members)
}

func (d *TraitDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text(d.Kind.Keyword()),
		prettier.Space,
		prettier.Text(d.Identifier.Identifier),
		prettier.Space,
		membersDoc(d.Members),
	}
}

func (d *TraitDeclaration) String() string {
	return Prettier(d)
}

// EnumDeclaration

type EnumDeclaration struct {
	Identifier Identifier
	RawType    Type
	Cases      []*EnumCaseDeclaration
	Range
}

var _ Declaration = &EnumDeclaration{}

func (*EnumDeclaration) ElementType() ElementType {
	return ElementTypeEnumDeclaration
}

func (*EnumDeclaration) isDeclaration() {}

func (d *EnumDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (*EnumDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindEnum
}

func (d *EnumDeclaration) Walk(walkChild func(Element)) {
	for _, enumCase := range d.Cases {
		walkChild(enumCase)
	}
}

func (d *EnumDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("enum "),
		prettier.Text(d.Identifier.Identifier),
	}

	if d.RawType != nil {
		doc = append(
			doc,
			typeSeparatorSpaceDoc,
			d.RawType.Doc(),
		)
	}

	members := make([]Declaration, len(d.Cases))
	for i, enumCase := range d.Cases {
		members[i] = enumCase
	}

	return append(
		doc,
		prettier.Space,
		membersDoc(members),
	)
}

func (d *EnumDeclaration) String() string {
	return Prettier(d)
}

// EnumCaseDeclaration

type EnumCaseDeclaration struct {
	Identifier Identifier
	RawValue   Expression
}

var _ Declaration = &EnumCaseDeclaration{}

func (*EnumCaseDeclaration) ElementType() ElementType {
	return ElementTypeEnumCaseDeclaration
}

func (*EnumCaseDeclaration) isDeclaration() {}

func (d *EnumCaseDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (*EnumCaseDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindEnumCase
}

func (d *EnumCaseDeclaration) Walk(walkChild func(Element)) {
	if d.RawValue != nil {
		walkChild(d.RawValue)
	}
}

func (d *EnumCaseDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("case "),
		prettier.Text(d.Identifier.Identifier),
	}
	if d.RawValue != nil {
		doc = append(
			doc,
			prettier.Text(" = "),
			d.RawValue.Doc(),
		)
	}
	return doc
}

func (d *EnumCaseDeclaration) String() string {
	return Prettier(d)
}

func (d *EnumCaseDeclaration) StartPosition() Position {
	return d.Identifier.StartPosition()
}

func (d *EnumCaseDeclaration) EndPosition() Position {
	if d.RawValue != nil {
		return d.RawValue.EndPosition()
	}
	return d.Identifier.EndPosition()
}

// EventDeclaration

type EventDeclaration struct {
	Identifier Identifier
	Parameters []*Parameter
	Range
}

var _ Declaration = &EventDeclaration{}

func (*EventDeclaration) ElementType() ElementType {
	return ElementTypeEventDeclaration
}

func (*EventDeclaration) isDeclaration() {}

func (d *EventDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (*EventDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindEvent
}

func (*EventDeclaration) Walk(_ func(Element)) {
	// NO-OP
}

func (d *EventDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("event "),
		prettier.Text(d.Identifier.Identifier),
		parametersDoc(d.Parameters),
	}
}

func (d *EventDeclaration) String() string {
	return Prettier(d)
}
