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

// precedence is the order of importance of expressions / operators.
//
// NOTE: this is only used for pretty printing.
// Expressions are constructed by the upstream parser, which governs the actual grouping.
type precedence uint

const (
	precedenceUnknown precedence = iota
	// a..<b, a...b
	precedenceRange
	// ||
	precedenceLogicalOr
	// &&
	precedenceLogicalAnd
	// equality, relational
	precedenceComparison
	// +, -
	precedenceAdditive
	// *, /, %
	precedenceMultiplicative
	// **
	precedenceExponent
	// unary prefix: -, !, &, call
	precedenceUnaryPrefix
	// member, index, invocation
	precedenceAccess
	// literals, identifiers
	precedenceLiteral
)
