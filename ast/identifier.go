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
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

const SelfIdentifier = "self"

// Identifier

type Identifier struct {
	Identifier string
	Pos        Position
}

// NewIdentifier returns an identifier normalized to NFC,
// so canonically equivalent names are the same identifier.
func NewIdentifier(identifier string, pos Position) Identifier {
	return Identifier{
		Identifier: norm.NFC.String(identifier),
		Pos:        pos,
	}
}

func (i Identifier) String() string {
	return i.Identifier
}

func (i Identifier) StartPosition() Position {
	return i.Pos
}

// EndPosition returns the position of the last character of the identifier.
// Identifiers may contain multi-byte characters, so the length is counted in grapheme clusters.
func (i Identifier) EndPosition() Position {
	length := uniseg.GraphemeClusterCount(i.Identifier)
	if length == 0 {
		return i.Pos
	}
	return i.Pos.Shifted(length - 1)
}

func (i Identifier) IsSelf() bool {
	return i.Identifier == SelfIdentifier
}
