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

// Package borrow implements the rewriting of borrow conflicts:
// statements which reference the same mutable storage more than once
// are rewritten so each reference after the first one goes through a temporary,
// which is released after the statement.
//
// Conflicts are detected by name. References to the same storage
// through differently named variables are not detected.
package borrow

import (
	"fmt"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/sema"
)

const TemporaryPrefix = "$temp"

// Rewriter is the pass rewriting borrow conflicts

type Rewriter struct {
	sema.BasePass
	temporaryCount int
}

var _ sema.Pass = &Rewriter{}

func NewRewriter() *Rewriter {
	return &Rewriter{}
}

func (*Rewriter) Name() string {
	return "borrow"
}

func (r *Rewriter) PreVisit(element ast.Element, context sema.Context) sema.Result {
	statement, ok := element.(ast.Statement)
	if !ok || !context.IsInFunction() || context.InIfCondition {
		return sema.Result{}
	}

	rewriter := &statementRewriter{
		rewriter:    r,
		context:     context,
		occurrences: map[string]struct{}{},
	}

	switch statement := statement.(type) {
	case *ast.ExpressionStatement:
		statement.Expression = rewriter.rewrite(statement.Expression)

	case *ast.AssignmentStatement:
		statement.Target = rewriter.rewrite(statement.Target)
		statement.Value = rewriter.rewrite(statement.Value)

	case *ast.VariableDeclaration:
		if statement.Value != nil {
			statement.Value = rewriter.rewrite(statement.Value)
		}

	case *ast.ReturnStatement:
		if statement.Expression != nil {
			statement.Expression = rewriter.rewrite(statement.Expression)
		}

	case *ast.EmitStatement:
		rewriter.rewriteInvocation(statement.InvocationExpression)

	// The test of an if statement and the iterated value of a for statement
	// are evaluated once, their temporaries surround the whole statement

	case *ast.IfStatement:
		switch test := statement.Test.(type) {
		case *ast.VariableDeclaration:
			if test.Value != nil {
				test.Value = rewriter.rewrite(test.Value)
			}
		case ast.Expression:
			statement.Test = rewriter.rewrite(test)
		}

	case *ast.ForStatement:
		statement.Value = rewriter.rewrite(statement.Value)

	default:
		return sema.Result{}
	}

	return sema.Result{
		PreStatements:  rewriter.preStatements,
		PostStatements: rewriter.postStatements,
	}
}

// nextTemporary returns an identifier for a new temporary,
// which is not declared in the given scope
func (r *Rewriter) nextTemporary(scope *sema.ScopeContext, pos ast.Position) ast.Identifier {
	for {
		name := fmt.Sprintf("%s%d", TemporaryPrefix, r.temporaryCount)
		r.temporaryCount++
		if !scope.IsDeclared(name) {
			return ast.NewIdentifier(name, pos)
		}
	}
}

// statementRewriter rewrites the expressions of one statement

type statementRewriter struct {
	rewriter *Rewriter
	context  sema.Context
	// occurrences are the roots referenced so far
	occurrences    map[string]struct{}
	preStatements  []ast.Statement
	postStatements []ast.Statement
}

// isRepeated records an occurrence of the given root,
// and returns true if it was referenced before
func (r *statementRewriter) isRepeated(root string) bool {
	if _, ok := r.occurrences[root]; ok {
		return true
	}
	r.occurrences[root] = struct{}{}
	return false
}

// temporary declares a temporary referencing the given root before the statement,
// releases it after the statement, and returns an expression for the temporary
func (r *statementRewriter) temporary(root string, pos ast.Position) *ast.IdentifierExpression {
	identifier := r.rewriter.nextTemporary(r.context.Scope, pos)

	r.preStatements = append(
		r.preStatements,
		&ast.VariableDeclaration{
			IsConstant: true,
			Identifier: identifier,
			Value: &ast.ReferenceExpression{
				Expression: ast.NewIdentifierExpression(root, pos),
				StartPos:   pos,
			},
			StartPos: pos,
		},
	)

	r.postStatements = append(
		r.postStatements,
		&ast.ReleaseStatement{
			Identifier: identifier,
		},
	)

	return ast.NewIdentifierExpression(identifier.Identifier, pos)
}

// selfRoot returns true if references to self are tracked in the context.
// In initializers, self is not shared yet.
func (r *statementRewriter) selfRoot() bool {
	return r.context.EnclosingTypeName() != "" && !r.context.IsInInitializer()
}

func (r *statementRewriter) isImplicitSelfProperty(name string) bool {
	context := r.context
	return !context.Scope.IsDeclared(name) &&
		!context.IsCallerBinding(name) &&
		context.Environment.IsPropertyDeclared(context.EnclosingTypeName(), name)
}

func (r *statementRewriter) isImplicitSelfCall(invocation *ast.InvocationExpression) bool {
	if invocation.Receiver != nil || r.context.InEmit {
		return false
	}
	functions := r.context.Environment.FunctionsNamed(
		r.context.EnclosingTypeName(),
		invocation.Identifier.Identifier,
	)
	return len(functions) > 0
}

// rewrite rewrites the given expression, visiting the subexpressions in evaluation order
func (r *statementRewriter) rewrite(expression ast.Expression) ast.Expression {
	switch expression := expression.(type) {
	case *ast.IdentifierExpression:
		return r.rewriteIdentifier(expression)

	case *ast.MemberExpression:
		expression.Expression = r.rewrite(expression.Expression)

	case *ast.IndexExpression:
		expression.TargetExpression = r.rewrite(expression.TargetExpression)
		expression.IndexingExpression = r.rewrite(expression.IndexingExpression)

	case *ast.InvocationExpression:
		r.rewriteInvocation(expression)

	case *ast.ExternalCallExpression:
		r.rewriteInvocation(expression.Invocation)

	case *ast.ReferenceExpression:
		expression.Expression = r.rewrite(expression.Expression)

	case *ast.UnaryExpression:
		expression.Expression = r.rewrite(expression.Expression)

	case *ast.BinaryExpression:
		expression.Left = r.rewrite(expression.Left)
		expression.Right = r.rewrite(expression.Right)

	case *ast.RangeExpression:
		expression.Start = r.rewrite(expression.Start)
		expression.End = r.rewrite(expression.End)

	case *ast.ArrayExpression:
		for i, value := range expression.Values {
			expression.Values[i] = r.rewrite(value)
		}

	case *ast.DictionaryExpression:
		for i, entry := range expression.Entries {
			expression.Entries[i].Key = r.rewrite(entry.Key)
			expression.Entries[i].Value = r.rewrite(entry.Value)
		}
	}

	return expression
}

func (r *statementRewriter) rewriteIdentifier(expression *ast.IdentifierExpression) ast.Expression {
	identifier := expression.Identifier
	name := identifier.Identifier

	switch {
	case identifier.IsSelf():
		if !r.selfRoot() || !r.isRepeated(ast.SelfIdentifier) {
			return expression
		}
		return r.temporary(ast.SelfIdentifier, identifier.Pos)

	case r.isImplicitSelfProperty(name):
		if !r.selfRoot() || !r.isRepeated(ast.SelfIdentifier) {
			return expression
		}
		return &ast.MemberExpression{
			Expression: r.temporary(ast.SelfIdentifier, identifier.Pos),
			Identifier: identifier,
		}

	default:
		variable := r.context.Scope.Find(name)
		if variable == nil || !variable.IsInout() || !r.isRepeated(name) {
			return expression
		}
		return r.temporary(name, identifier.Pos)
	}
}

func (r *statementRewriter) rewriteInvocation(invocation *ast.InvocationExpression) {
	if invocation.Receiver != nil {
		invocation.Receiver = r.rewrite(invocation.Receiver)
	} else if r.isImplicitSelfCall(invocation) &&
		r.selfRoot() &&
		r.isRepeated(ast.SelfIdentifier) {

		invocation.Receiver = r.temporary(ast.SelfIdentifier, invocation.Identifier.Pos)
	}

	for _, argument := range invocation.Arguments {
		argument.Expression = r.rewrite(argument.Expression)
	}
}
