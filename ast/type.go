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

type Type interface {
	HasPosition
	HasDoc
	String() string
	isType()
}

// NominalType represents a named type, e.g. `Int` or a user-defined contract or struct.

type NominalType struct {
	Identifier Identifier
}

var _ Type = &NominalType{}

func NewNominalType(identifier Identifier) *NominalType {
	return &NominalType{
		Identifier: identifier,
	}
}

func (*NominalType) isType() {}

func (t *NominalType) String() string {
	return t.Identifier.Identifier
}

func (t *NominalType) Doc() prettier.Doc {
	return prettier.Text(t.Identifier.Identifier)
}

func (t *NominalType) StartPosition() Position {
	return t.Identifier.StartPosition()
}

func (t *NominalType) EndPosition() Position {
	return t.Identifier.EndPosition()
}

// ArrayType represents a dynamically sized array type `[T]`

type ArrayType struct {
	Type Type
	Range
}

var _ Type = &ArrayType{}

func (*ArrayType) isType() {}

func (t *ArrayType) String() string {
	return Prettier(t)
}

func (t *ArrayType) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("["),
		t.Type.Doc(),
		prettier.Text("]"),
	}
}

// DictionaryType represents a dictionary type `[K: V]`

type DictionaryType struct {
	KeyType   Type
	ValueType Type
	Range
}

var _ Type = &DictionaryType{}

func (*DictionaryType) isType() {}

func (t *DictionaryType) String() string {
	return Prettier(t)
}

func (t *DictionaryType) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("["),
		t.KeyType.Doc(),
		prettier.Text(": "),
		t.ValueType.Doc(),
		prettier.Text("]"),
	}
}

// InoutType represents a mutable reference to a value of the inner type, `inout T`

type InoutType struct {
	Type     Type
	StartPos Position
}

var _ Type = &InoutType{}

func (*InoutType) isType() {}

func (t *InoutType) String() string {
	return Prettier(t)
}

const inoutKeywordSpaceDoc = prettier.Text("inout ")

func (t *InoutType) Doc() prettier.Doc {
	return prettier.Concat{
		inoutKeywordSpaceDoc,
		t.Type.Doc(),
	}
}

func (t *InoutType) StartPosition() Position {
	return t.StartPos
}

func (t *InoutType) EndPosition() Position {
	return t.Type.EndPosition()
}
