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

// ResolvedCall is the callee an invocation was resolved to

type ResolvedCall struct {
	Callee *FunctionRecord
	// SignatureID is the target name of the call
	SignatureID string
}

// Elaboration holds the results of checking, keyed by the elements they belong to.
// Later passes and backends use it to avoid recomputing scopes and call targets.

type Elaboration struct {
	// BlockScopes are the final scopes of the blocks, one per branch of if, for and do/catch statements
	BlockScopes map[*ast.Block]*ScopeContext
	// FunctionScopes are the final scopes of function, initializer and fallback bodies
	FunctionScopes      map[ast.Declaration]*ScopeContext
	ResolvedCalls       map[*ast.InvocationExpression]ResolvedCall
	ExternalCallCatches map[*ast.ExternalCallExpression]*ast.DoCatchStatement
	ExpressionTypes     map[ast.Expression]Type
}

func NewElaboration() *Elaboration {
	return &Elaboration{
		BlockScopes:         map[*ast.Block]*ScopeContext{},
		FunctionScopes:      map[ast.Declaration]*ScopeContext{},
		ResolvedCalls:       map[*ast.InvocationExpression]ResolvedCall{},
		ExternalCallCatches: map[*ast.ExternalCallExpression]*ast.DoCatchStatement{},
		ExpressionTypes:     map[ast.Expression]Type{},
	}
}

func (e *Elaboration) SetResolvedCall(invocation *ast.InvocationExpression, callee *FunctionRecord) {
	e.ResolvedCalls[invocation] = ResolvedCall{
		Callee:      callee,
		SignatureID: callee.SignatureID(),
	}
}

// ResolvedCall returns the callee of the given invocation, if it was resolved
func (e *Elaboration) ResolvedCall(invocation *ast.InvocationExpression) (ResolvedCall, bool) {
	call, ok := e.ResolvedCalls[invocation]
	return call, ok
}
