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


// Package errors separates the errors of user programs,
// which are reported as diagnostics,
// from errors in the implementation, which are panicked.
package errors

import (
	"fmt"
	goRuntime "runtime"
	"runtime/debug"

	"golang.org/x/xerrors"
)

// InternalError is an implementation error, e.g. an unreachable code path (UnreachableError).
// A program should never produce an InternalError in an ideal world.
//
// InternalErrors must always be panicked and never recovered by a pass,
// i.e. they are propagated up to the driver, see RecoverInternalError.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is an error caused by the user's program, e.g. a semantic error.
type UserError interface {
	error
	IsUserError()
}

// SecondaryError is an interface for errors that provide a secondary error message,
// printed next to the highlighted code
type SecondaryError interface {
	SecondaryError() string
}

// ErrorNotes is an interface for errors that provide notes,
// e.g. the location of a previous declaration
type ErrorNotes interface {
	ErrorNotes() []ErrorNote
}

type ErrorNote interface {
	Message() string
}

// UnreachableError is an internal error for code paths which must never be taken,
// e.g. a missing case of an exhaustive switch over node kinds.
//
// NOTE: this error is not used for errors in user programs, see sema/errors.go
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = &UnreachableError{}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func (*UnreachableError) IsInternalError() {}

// UnexpectedError is the default implementation of the InternalError interface.
// It wraps a violated invariant, e.g. an overload set which is ambiguous after resolution.
type UnexpectedError struct {
	Err   error
	Stack []byte
}

var _ InternalError = UnexpectedError{}

func NewUnexpectedError(message string, arg ...any) UnexpectedError {
	return UnexpectedError{
		Err:   fmt.Errorf(message, arg...),
		Stack: debug.Stack(),
	}
}

func (e UnexpectedError) Unwrap() error {
	return e.Err
}

func (e UnexpectedError) Error() string {
	return e.Err.Error()
}

func (UnexpectedError) IsInternalError() {}

// DefaultUserError is the default implementation of the UserError interface,
// for user errors which are not reported at a position, e.g. a malformed tree file.
type DefaultUserError struct {
	Err error
}

func NewDefaultUserError(message string, arg ...any) DefaultUserError {
	return DefaultUserError{
		Err: fmt.Errorf(message, arg...),
	}
}

func (e DefaultUserError) Unwrap() error {
	return e.Err
}

func (e DefaultUserError) Error() string {
	return e.Err.Error()
}

func (DefaultUserError) IsUserError() {}

// IsInternalError checks whether a given error was caused by an InternalError.
// An error is an internal error, if it has at least one InternalError in the error chain.
func IsInternalError(err error) bool {
	switch err := err.(type) {
	case InternalError:
		return true
	case xerrors.Wrapper:
		return IsInternalError(err.Unwrap())
	default:
		return false
	}
}

// IsUserError checks whether a given error was caused by a UserError.
// An error is a user error, if it has at least one UserError in the error chain.
func IsUserError(err error) bool {
	switch err := err.(type) {
	case UserError:
		return true
	case xerrors.Wrapper:
		return IsUserError(err.Unwrap())
	default:
		return false
	}
}

// RecoverInternalError recovers a panicked internal error and stores it in the given error.
// It must be deferred directly by the driver running the passes:
//
//	defer errors.RecoverInternalError(&err)
//
// Go runtime errors and all other panicked values are re-panicked.
func RecoverInternalError(err *error) {
	recovered := recover()
	if recovered == nil {
		return
	}

	if runtimeError, ok := recovered.(goRuntime.Error); ok {
		panic(runtimeError)
	}

	recoveredErr, ok := recovered.(error)
	if !ok || !IsInternalError(recoveredErr) {
		panic(recovered)
	}

	*err = recoveredErr
}
