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
)

// Result is the outcome of visiting an element

type Result struct {
	// Element replaces the visited element. Nil leaves the element unchanged.
	Element ast.Element
	// Context replaces the context. The zero context leaves the context unchanged.
	Context     Context
	Diagnostics Diagnostics
	// PreStatements and PostStatements are inserted before and after
	// the statement enclosing the visited element
	PreStatements  []ast.Statement
	PostStatements []ast.Statement
}

// Pass is run by the walker over every element of a program.
// PreVisit is called before the children of an element are walked,
// PostVisit after.

type Pass interface {
	Name() string
	PreVisit(element ast.Element, context Context) Result
	PostVisit(element ast.Element, context Context) Result
}

// BasePass implements a pass which leaves all elements unchanged.
// Passes embed it and override the hooks they need.

type BasePass struct{}

func (BasePass) PreVisit(_ ast.Element, _ Context) Result {
	return Result{}
}

func (BasePass) PostVisit(_ ast.Element, _ Context) Result {
	return Result{}
}
