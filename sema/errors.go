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
	"fmt"
	"strings"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/common"
	"github.com/flint-lang/flint/errors"
)

// SemanticError

type SemanticError interface {
	errors.UserError
	ast.HasPosition
	isSemanticError()
}

// SemanticWarning is reported for legal programs which are likely mistakes

type SemanticWarning interface {
	errors.UserError
	ast.HasPosition
	isSemanticWarning()
}

func quotedNames(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("`%s`", name)
	}
	return strings.Join(quoted, ", ")
}

// RedeclarationError

type RedeclarationError struct {
	PreviousPos *ast.Position
	Name        string
	Pos         ast.Position
	Kind        common.DeclarationKind
}

var _ SemanticError = &RedeclarationError{}
var _ errors.ErrorNotes = &RedeclarationError{}

func (*RedeclarationError) isSemanticError() {}

func (*RedeclarationError) IsUserError() {}

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf(
		"cannot redeclare %s: `%s` is already declared",
		e.Kind.Name(),
		e.Name,
	)
}

func (e *RedeclarationError) StartPosition() ast.Position {
	return e.Pos
}

func (e *RedeclarationError) EndPosition() ast.Position {
	return ast.NewIdentifier(e.Name, e.Pos).EndPosition()
}

func (e *RedeclarationError) ErrorNotes() []errors.ErrorNote {
	if e.PreviousPos == nil {
		return nil
	}

	previous := ast.NewIdentifier(e.Name, *e.PreviousPos)

	return []errors.ErrorNote{
		RedeclarationNote{
			Range: ast.NewRangeFromPositioned(previous),
		},
	}
}

// RedeclarationNote

type RedeclarationNote struct {
	ast.Range
}

func (n RedeclarationNote) Message() string {
	return "previously declared here"
}

// NotDeclaredError

type NotDeclaredError struct {
	ExpectedKind common.DeclarationKind
	Name         string
	Pos          ast.Position
}

var _ SemanticError = &NotDeclaredError{}
var _ errors.SecondaryError = &NotDeclaredError{}

func (*NotDeclaredError) isSemanticError() {}

func (*NotDeclaredError) IsUserError() {}

func (e *NotDeclaredError) Error() string {
	return fmt.Sprintf(
		"cannot find %s in this scope: `%s`",
		e.ExpectedKind.Name(),
		e.Name,
	)
}

func (e *NotDeclaredError) SecondaryError() string {
	return "not found in this scope"
}

func (e *NotDeclaredError) StartPosition() ast.Position {
	return e.Pos
}

func (e *NotDeclaredError) EndPosition() ast.Position {
	return ast.NewIdentifier(e.Name, e.Pos).EndPosition()
}

// NotDeclaredMemberError

type NotDeclaredMemberError struct {
	Name     string
	TypeName string
	ast.Range
}

var _ SemanticError = &NotDeclaredMemberError{}

func (*NotDeclaredMemberError) isSemanticError() {}

func (*NotDeclaredMemberError) IsUserError() {}

func (e *NotDeclaredMemberError) Error() string {
	return fmt.Sprintf(
		"value of type `%s` has no member `%s`",
		e.TypeName,
		e.Name,
	)
}

// TypeMismatchError

type TypeMismatchError struct {
	ExpectedType Type
	ActualType   Type
	ast.Range
}

var _ SemanticError = &TypeMismatchError{}
var _ errors.SecondaryError = &TypeMismatchError{}

func (*TypeMismatchError) isSemanticError() {}

func (*TypeMismatchError) IsUserError() {}

func (e *TypeMismatchError) Error() string {
	return "mismatched types"
}

func (e *TypeMismatchError) SecondaryError() string {
	return fmt.Sprintf(
		"expected `%s`, got `%s`",
		e.ExpectedType,
		e.ActualType,
	)
}

// MissingPublicInitializerError

type MissingPublicInitializerError struct {
	ContractName string
	ast.Range
}

var _ SemanticError = &MissingPublicInitializerError{}

func (*MissingPublicInitializerError) isSemanticError() {}

func (*MissingPublicInitializerError) IsUserError() {}

func (e *MissingPublicInitializerError) Error() string {
	return fmt.Sprintf(
		"contract `%s` must have exactly one public initializer",
		e.ContractName,
	)
}

// ConflictingSpecialError is reported when a contract declares
// more than one public initializer or public fallback

type ConflictingSpecialError struct {
	ContractName string
	Kind         ast.SpecialKind
	PreviousPos  ast.Position
	ast.Range
}

var _ SemanticError = &ConflictingSpecialError{}
var _ errors.ErrorNotes = &ConflictingSpecialError{}

func (*ConflictingSpecialError) isSemanticError() {}

func (*ConflictingSpecialError) IsUserError() {}

func (e *ConflictingSpecialError) Error() string {
	kind := "initializer"
	if e.Kind == ast.SpecialKindFallback {
		kind = "fallback"
	}
	return fmt.Sprintf(
		"contract `%s` cannot have more than one public %s",
		e.ContractName,
		kind,
	)
}

func (e *ConflictingSpecialError) ErrorNotes() []errors.ErrorNote {
	previous := ast.NewIdentifier(e.Kind.Keyword(), e.PreviousPos)
	return []errors.ErrorNote{
		RedeclarationNote{
			Range: ast.NewRangeFromPositioned(previous),
		},
	}
}

// UnassignedPropertiesError

type UnassignedPropertiesError struct {
	Properties []string
	ast.Range
}

var _ SemanticError = &UnassignedPropertiesError{}

func (*UnassignedPropertiesError) isSemanticError() {}

func (*UnassignedPropertiesError) IsUserError() {}

func (e *UnassignedPropertiesError) Error() string {
	return fmt.Sprintf(
		"initializer does not assign all properties: %s",
		quotedNames(e.Properties),
	)
}

// AssignmentToConstantError

type AssignmentToConstantError struct {
	Name string
	Kind common.DeclarationKind
	ast.Range
}

var _ SemanticError = &AssignmentToConstantError{}

func (*AssignmentToConstantError) isSemanticError() {}

func (*AssignmentToConstantError) IsUserError() {}

func (e *AssignmentToConstantError) Error() string {
	if e.Kind == common.DeclarationKindProperty {
		return fmt.Sprintf("cannot assign to constant property: `%s`", e.Name)
	}
	return fmt.Sprintf("cannot assign to constant: `%s`", e.Name)
}

// MutationInNonMutatingFunctionError

type MutationInNonMutatingFunctionError struct {
	FunctionName string
	ast.Range
}

var _ SemanticError = &MutationInNonMutatingFunctionError{}
var _ errors.SecondaryError = &MutationInNonMutatingFunctionError{}

func (*MutationInNonMutatingFunctionError) isSemanticError() {}

func (*MutationInNonMutatingFunctionError) IsUserError() {}

func (e *MutationInNonMutatingFunctionError) Error() string {
	return fmt.Sprintf(
		"cannot mutate state in function `%s`, which is not declared mutating",
		e.FunctionName,
	)
}

func (e *MutationInNonMutatingFunctionError) SecondaryError() string {
	return "consider declaring the function as `mutating`"
}

// MutationInDefaultValueError

type MutationInDefaultValueError struct {
	PropertyName string
	ast.Range
}

var _ SemanticError = &MutationInDefaultValueError{}

func (*MutationInDefaultValueError) isSemanticError() {}

func (*MutationInDefaultValueError) IsUserError() {}

func (e *MutationInDefaultValueError) Error() string {
	return fmt.Sprintf(
		"default value of property `%s` cannot mutate state",
		e.PropertyName,
	)
}

// CapabilityMismatchError is reported for a call of a function which exists,
// but is not callable with the active caller protections or type states

type CapabilityMismatchError struct {
	Name                      string
	RequiredCallerProtections []string
	ActiveCallerProtections   []string
	RequiredTypeStates        []string
	ActiveTypeStates          []string
	ast.Range
}

var _ SemanticError = &CapabilityMismatchError{}
var _ errors.SecondaryError = &CapabilityMismatchError{}

func (*CapabilityMismatchError) isSemanticError() {}

func (*CapabilityMismatchError) IsUserError() {}

func (e *CapabilityMismatchError) Error() string {
	return fmt.Sprintf(
		"function `%s` cannot be called in this context",
		e.Name,
	)
}

func (e *CapabilityMismatchError) SecondaryError() string {
	var parts []string
	if len(e.RequiredCallerProtections) > 0 {
		parts = append(
			parts,
			fmt.Sprintf("requires caller protections %s", quotedNames(e.RequiredCallerProtections)),
		)
	}
	if len(e.RequiredTypeStates) > 0 {
		parts = append(
			parts,
			fmt.Sprintf("requires type states %s", quotedNames(e.RequiredTypeStates)),
		)
	}
	return strings.Join(parts, " and ")
}

// NoMatchingFunctionError

type NoMatchingFunctionError struct {
	Name          string
	ArgumentTypes []Type
	// Candidates are the declared callables with the same name, best match first
	Candidates []*FunctionRecord
	// NameSuggestions are similar names, if no callable has the name
	NameSuggestions []string
	ast.Range
}

var _ SemanticError = &NoMatchingFunctionError{}
var _ errors.SecondaryError = &NoMatchingFunctionError{}
var _ errors.ErrorNotes = &NoMatchingFunctionError{}

func (*NoMatchingFunctionError) isSemanticError() {}

func (*NoMatchingFunctionError) IsUserError() {}

func (e *NoMatchingFunctionError) Error() string {
	argumentTypes := make([]string, len(e.ArgumentTypes))
	for i, argumentType := range e.ArgumentTypes {
		argumentTypes[i] = argumentType.String()
	}
	return fmt.Sprintf(
		"no matching function for call to `%s(%s)`",
		e.Name,
		strings.Join(argumentTypes, ", "),
	)
}

func (e *NoMatchingFunctionError) SecondaryError() string {
	if len(e.NameSuggestions) == 0 {
		return ""
	}
	return fmt.Sprintf("did you mean %s?", quotedNames(e.NameSuggestions))
}

func (e *NoMatchingFunctionError) ErrorNotes() []errors.ErrorNote {
	notes := make([]errors.ErrorNote, 0, len(e.Candidates))
	for _, candidate := range e.Candidates {
		note := CandidateNote{
			Candidate: candidate,
		}
		if candidate.Declaration != nil {
			note.Range = ast.NewRangeFromPositioned(candidate.Declaration)
		}
		notes = append(notes, note)
	}
	return notes
}

// CandidateNote

type CandidateNote struct {
	Candidate *FunctionRecord
	ast.Range
}

func (n CandidateNote) Message() string {
	return fmt.Sprintf("candidate: `%s`", n.Candidate.SignatureID())
}

// MultipleReturnsError

type MultipleReturnsError struct {
	ast.Range
}

var _ SemanticError = &MultipleReturnsError{}

func (*MultipleReturnsError) isSemanticError() {}

func (*MultipleReturnsError) IsUserError() {}

func (e *MultipleReturnsError) Error() string {
	return "function body cannot have more than one return statement"
}

// BecomeBeforeReturnError

type BecomeBeforeReturnError struct {
	ReturnRange ast.Range
	ast.Range
}

var _ SemanticError = &BecomeBeforeReturnError{}
var _ errors.ErrorNotes = &BecomeBeforeReturnError{}

func (*BecomeBeforeReturnError) isSemanticError() {}

func (*BecomeBeforeReturnError) IsUserError() {}

func (e *BecomeBeforeReturnError) Error() string {
	return "state transition must be the last statement of a function body, but a return follows"
}

func (e *BecomeBeforeReturnError) ErrorNotes() []errors.ErrorNote {
	return []errors.ErrorNote{
		ReturnNote{
			Range: e.ReturnRange,
		},
	}
}

// ReturnNote

type ReturnNote struct {
	ast.Range
}

func (n ReturnNote) Message() string {
	return "return statement here"
}

// InvalidBecomeError is reported for become statements
// outside of the functions of contract behavior declarations

type InvalidBecomeError struct {
	ast.Range
}

var _ SemanticError = &InvalidBecomeError{}

func (*InvalidBecomeError) isSemanticError() {}

func (*InvalidBecomeError) IsUserError() {}

func (e *InvalidBecomeError) Error() string {
	return "state transitions are only allowed in functions of contract behavior declarations"
}

// UnhandledExternalCallError

type UnhandledExternalCallError struct {
	ast.Range
}

var _ SemanticError = &UnhandledExternalCallError{}
var _ errors.SecondaryError = &UnhandledExternalCallError{}

func (*UnhandledExternalCallError) isSemanticError() {}

func (*UnhandledExternalCallError) IsUserError() {}

func (e *UnhandledExternalCallError) Error() string {
	return "external call may fail and must be handled"
}

func (e *UnhandledExternalCallError) SecondaryError() string {
	return fmt.Sprintf(
		"consider wrapping the call in a do/catch block, or using `%s` or `%s`",
		ast.ExternalCallModeForced.Keyword(),
		ast.ExternalCallModeOptional.Keyword(),
	)
}

// InvalidExternalCallError is reported for external calls
// on values which are not of an external trait type

type InvalidExternalCallError struct {
	ReceiverType Type
	ast.Range
}

var _ SemanticError = &InvalidExternalCallError{}

func (*InvalidExternalCallError) isSemanticError() {}

func (*InvalidExternalCallError) IsUserError() {}

func (e *InvalidExternalCallError) Error() string {
	return fmt.Sprintf(
		"cannot call external function on value of type `%s`",
		e.ReceiverType,
	)
}

// MissingTraitFunctionError

type MissingTraitFunctionError struct {
	TypeName     string
	TraitName    string
	FunctionName string
	ast.Range
}

var _ SemanticError = &MissingTraitFunctionError{}

func (*MissingTraitFunctionError) isSemanticError() {}

func (*MissingTraitFunctionError) IsUserError() {}

func (e *MissingTraitFunctionError) Error() string {
	return fmt.Sprintf(
		"`%s` does not conform to trait `%s`: missing function `%s`",
		e.TypeName,
		e.TraitName,
		e.FunctionName,
	)
}

// UnreachableStatementWarning

type UnreachableStatementWarning struct {
	ast.Range
}

var _ SemanticWarning = &UnreachableStatementWarning{}

func (*UnreachableStatementWarning) isSemanticWarning() {}

func (*UnreachableStatementWarning) IsUserError() {}

func (e *UnreachableStatementWarning) Error() string {
	return "unreachable statement"
}

// UnnecessaryMutatingWarning

type UnnecessaryMutatingWarning struct {
	FunctionName string
	ast.Range
}

var _ SemanticWarning = &UnnecessaryMutatingWarning{}

func (*UnnecessaryMutatingWarning) isSemanticWarning() {}

func (*UnnecessaryMutatingWarning) IsUserError() {}

func (e *UnnecessaryMutatingWarning) Error() string {
	return fmt.Sprintf(
		"function `%s` is declared mutating, but does not mutate state",
		e.FunctionName,
	)
}

// EmptyRangeWarning

type EmptyRangeWarning struct {
	ast.Range
}

var _ SemanticWarning = &EmptyRangeWarning{}

func (*EmptyRangeWarning) isSemanticWarning() {}

func (*EmptyRangeWarning) IsUserError() {}

func (e *EmptyRangeWarning) Error() string {
	return "range is empty"
}
