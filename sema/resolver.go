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
	"slices"
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/errors"
)

// ResolutionKind

type ResolutionKind uint8

const (
	// ResolutionKindMatched is the resolution of a call to exactly one candidate
	ResolutionKindMatched ResolutionKind = iota
	// ResolutionKindMatchedWithoutCaller is the resolution of a call to candidates
	// matching the arguments, but not the active caller protections or type states
	ResolutionKindMatchedWithoutCaller
	// ResolutionKindFailed is the resolution of a call no candidate matches
	ResolutionKindFailed
	// ResolutionKindUnresolvable is the resolution of a call which cannot be resolved
	// because of other errors, e.g. an undeclared receiver. No error is reported for it.
	ResolutionKindUnresolvable
)

// CallResolution is the result of resolving a call

type CallResolution struct {
	Kind   ResolutionKind
	Name   string
	Callee *FunctionRecord
	// MatchedWithoutCaller are the candidates matching the arguments,
	// but not the active caller protections or type states, in declaration order
	MatchedWithoutCaller []*FunctionRecord
	// Suggestions are the candidates with the called name, best match first
	Suggestions []*FunctionRecord
	// NameSuggestions are similar names, if no candidate has the called name
	NameSuggestions []string
	ArgumentTypes   []Type
	// ActiveCallerProtections and ActiveTypeStates are the capabilities of the call site
	ActiveCallerProtections []string
	ActiveTypeStates        []string
}

func (r CallResolution) IsMatched() bool {
	return r.Kind == ResolutionKindMatched
}

// Error returns the error to report for the resolution, at the given range.
// It returns nil for matched and unresolvable calls.
func (r CallResolution) Error(errorRange ast.Range) error {
	switch r.Kind {
	case ResolutionKindMatchedWithoutCaller:
		var protections, states []string
		for _, candidate := range r.MatchedWithoutCaller {
			protections = appendMissing(protections, candidate.CallerProtections...)
			states = appendMissing(states, candidate.TypeStates...)
		}
		return &CapabilityMismatchError{
			Name:                      r.Name,
			RequiredCallerProtections: protections,
			ActiveCallerProtections:   r.ActiveCallerProtections,
			RequiredTypeStates:        states,
			ActiveTypeStates:          r.ActiveTypeStates,
			Range:                     errorRange,
		}

	case ResolutionKindFailed:
		return &NoMatchingFunctionError{
			Name:            r.Name,
			ArgumentTypes:   r.ArgumentTypes,
			Candidates:      r.Suggestions,
			NameSuggestions: r.NameSuggestions,
			Range:           errorRange,
		}
	}

	return nil
}

func appendMissing(values []string, additional ...string) []string {
	for _, value := range additional {
		if !slices.Contains(values, value) {
			values = append(values, value)
		}
	}
	return values
}

// ResolveCall resolves the given invocation to the declared function, initializer or event it calls.
//
// The candidates are the callables with the called name:
// events of the enclosing contract for emitted invocations,
// functions of the receiver's type for invocations with a receiver,
// and functions of the enclosing type, initializers and global functions otherwise.
//
// A candidate matches if the arguments match its parameters,
// and it can be called with the caller protections and type states of the context.
// Exactly one candidate may match, otherwise the declarations are ambiguous,
// which the environment is expected to prevent.
func (env *Environment) ResolveCall(invocation *ast.InvocationExpression, context Context) CallResolution {
	name := invocation.Identifier.Identifier

	resolution := CallResolution{
		Name:                    name,
		ActiveCallerProtections: context.CallerProtections,
		ActiveTypeStates:        context.TypeStates,
	}

	candidates, names, ok := env.callCandidates(invocation, context)
	if !ok {
		resolution.Kind = ResolutionKindUnresolvable
		return resolution
	}

	argumentTypes := make([]Type, len(invocation.Arguments))
	hasInvalidArgument := false
	for i, argument := range invocation.Arguments {
		argumentType := TypeOf(argument.Expression, context)
		argumentTypes[i] = argumentType
		if IsInvalidType(argumentType) {
			hasInvalidArgument = true
		}
	}
	resolution.ArgumentTypes = argumentTypes

	var fullyMatched, withoutCaller, mismatched []*FunctionRecord

	for _, candidate := range candidates {
		if !matchesArguments(candidate, invocation, argumentTypes, context) {
			mismatched = append(mismatched, candidate)
			continue
		}

		if isCallerProtectionCompatible(candidate.CallerProtections, context.CallerProtections) &&
			isTypeStateCompatible(candidate.TypeStates, context.TypeStates) {

			fullyMatched = append(fullyMatched, candidate)
		} else {
			withoutCaller = append(withoutCaller, candidate)
		}
	}

	switch {
	case len(fullyMatched) == 1:
		resolution.Kind = ResolutionKindMatched
		resolution.Callee = fullyMatched[0]

	case len(fullyMatched) > 1:
		// Invalid arguments and parameter types are compatible with every type,
		// the undeclared types were already reported
		if hasInvalidArgument || hasInvalidParameter(fullyMatched) {
			resolution.Kind = ResolutionKindUnresolvable
			return resolution
		}
		panic(errors.NewUnexpectedError(
			"ambiguous call of `%s`: %d candidates match, including `%s` and `%s`",
			name,
			len(fullyMatched),
			fullyMatched[0].SignatureID(),
			fullyMatched[1].SignatureID(),
		))

	case len(withoutCaller) > 0:
		resolution.Kind = ResolutionKindMatchedWithoutCaller
		resolution.MatchedWithoutCaller = withoutCaller

	default:
		resolution.Kind = ResolutionKindFailed
		resolution.Suggestions = rankSuggestions(mismatched, len(invocation.Arguments))
		if len(candidates) == 0 {
			resolution.NameSuggestions = similarNames(name, names)
		}
	}

	return resolution
}

// callCandidates returns the callables with the name of the invocation, in declaration order,
// and the names of all callables which could have been called instead.
// It returns false if the candidates cannot be determined.
func (env *Environment) callCandidates(
	invocation *ast.InvocationExpression,
	context Context,
) (
	candidates []*FunctionRecord,
	names []string,
	ok bool,
) {
	name := invocation.Identifier.Identifier
	enclosingTypeName := context.EnclosingTypeName()

	if invocation.Receiver != nil {
		receiverType := UnwrapInout(TypeOf(invocation.Receiver, context))
		if IsInvalidType(receiverType) {
			return nil, nil, false
		}

		userDefinedType, isUserDefined := receiverType.(*UserDefinedType)
		if !isUserDefined {
			return nil, nil, true
		}

		return env.FunctionsNamed(userDefinedType.Name, name),
			env.FunctionNames(userDefinedType.Name),
			true
	}

	if context.InEmit {
		events := env.events(enclosingTypeName)
		if events == nil {
			return nil, nil, true
		}
		if event, ok := events.Get(name); ok {
			candidates = append(candidates, event)
		}
		return candidates, events.Keys(), true
	}

	// Functions of the enclosing type shadow initializers,
	// and both shadow the global functions with the same name
	candidates = append(candidates, env.FunctionsNamed(enclosingTypeName, name)...)
	names = append(names, env.FunctionNames(enclosingTypeName)...)

	if len(candidates) == 0 && env.Composite(name) != nil {
		candidates = append(candidates, env.Initializers(name)...)
	}
	for _, composite := range env.Composites() {
		names = append(names, composite.Identifier)
	}

	if len(candidates) == 0 {
		candidates = append(candidates, env.FunctionsNamed("", name)...)
	}
	names = append(names, env.FunctionNames("")...)

	return candidates, names, true
}

func hasInvalidParameter(candidates []*FunctionRecord) bool {
	for _, candidate := range candidates {
		for _, parameter := range candidate.ExplicitParameters() {
			if ContainsInvalidType(parameter.Type) {
				return true
			}
		}
	}
	return false
}

func matchesArguments(
	candidate *FunctionRecord,
	invocation *ast.InvocationExpression,
	argumentTypes []Type,
	context Context,
) bool {
	parameters := candidate.ExplicitParameters()
	if len(parameters) != len(invocation.Arguments) {
		return false
	}

	for i, parameter := range parameters {
		argument := invocation.Arguments[i]

		if argument.Label != "" && argument.Label != parameter.Identifier {
			return false
		}

		if parameter.IsInout() && !IsInvalidType(argumentTypes[i]) &&
			!isReferenceArgument(argument.Expression, context) {

			return false
		}

		if !IsCompatible(parameter.Type, argumentTypes[i]) {
			return false
		}
	}

	return true
}

// isReferenceArgument returns true if the given argument can be passed by reference:
// an explicit reference, or an expression denoting mutable storage
func isReferenceArgument(expression ast.Expression, context Context) bool {
	if _, ok := expression.(*ast.ReferenceExpression); ok {
		return true
	}
	return IsMutableLValue(expression, context)
}

// IsMutableLValue returns true if the given expression denotes storage which may be assigned
func IsMutableLValue(expression ast.Expression, context Context) bool {
	switch expression := expression.(type) {
	case *ast.IdentifierExpression:
		name := expression.Identifier.Identifier
		if expression.Identifier.IsSelf() {
			return true
		}
		if variable := context.Scope.Find(name); variable != nil {
			return variable.IsInout() || !variable.IsConstant
		}
		property := context.Environment.Property(context.EnclosingTypeName(), name)
		return property != nil && !property.IsConstant

	case *ast.MemberExpression:
		return IsMutableLValue(expression.Expression, context)

	case *ast.IndexExpression:
		return IsMutableLValue(expression.TargetExpression, context)
	}

	return false
}

func isCallerProtectionCompatible(required, active []string) bool {
	if len(required) == 0 ||
		slices.Contains(required, ast.AnyIdentifier) ||
		slices.Contains(active, ast.AnyIdentifier) {

		return true
	}
	return intersects(required, active)
}

func isTypeStateCompatible(required, active []string) bool {
	if len(required) == 0 ||
		slices.Contains(required, ast.AnyIdentifier) ||
		slices.Contains(active, ast.AnyIdentifier) {

		return true
	}
	return intersects(required, active)
}

func intersects(a, b []string) bool {
	for _, value := range a {
		if slices.Contains(b, value) {
			return true
		}
	}
	return false
}

// rankSuggestions orders the candidates by how close their parameter count is to the argument count.
// Candidates with the same closeness are kept in declaration order.
func rankSuggestions(candidates []*FunctionRecord, argumentCount int) []*FunctionRecord {
	ranked := slices.Clone(candidates)
	distance := func(candidate *FunctionRecord) int {
		difference := len(candidate.ExplicitParameters()) - argumentCount
		if difference < 0 {
			return -difference
		}
		return difference
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		distanceI := distance(ranked[i])
		distanceJ := distance(ranked[j])
		if distanceI != distanceJ {
			return distanceI < distanceJ
		}
		return ranked[i].Index < ranked[j].Index
	})
	return ranked
}

const maxSuggestionDistance = 2

// similarNames returns the names within a small edit distance of the given name,
// closest first, and in alphabetical order for equal distances
func similarNames(name string, names []string) []string {
	nameRunes := []rune(name)

	type suggestion struct {
		name     string
		distance int
	}

	var suggestions []suggestion
	seen := map[string]struct{}{}

	for _, candidate := range names {
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}

		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)

		// Don't suggest names which would have to be replaced completely
		if distance > maxSuggestionDistance || distance >= len(candidate) {
			continue
		}

		suggestions = append(suggestions, suggestion{
			name:     candidate,
			distance: distance,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	result := make([]string, len(suggestions))
	for i, suggestion := range suggestions {
		result[i] = suggestion.name
	}
	return result
}
