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

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/common"
	"github.com/flint-lang/flint/errors"
)

// Severity

type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	}

	panic(errors.NewUnreachableError())
}

// Diagnostic is a message about a position in the checked program

type Diagnostic struct {
	Severity         Severity
	Location         common.Location
	Message          string
	SecondaryMessage string
	Notes            []Diagnostic
	// Err is the error the diagnostic was reported for
	Err error
	ast.Range
}

// NewDiagnostic returns the diagnostic for the given error.
// Warnings have warning severity, all other errors have error severity.
func NewDiagnostic(location common.Location, err error) Diagnostic {
	diagnostic := Diagnostic{
		Severity: SeverityError,
		Location: location,
		Message:  err.Error(),
		Err:      err,
	}

	if _, ok := err.(SemanticWarning); ok {
		diagnostic.Severity = SeverityWarning
	}

	if positioned, ok := err.(ast.HasPosition); ok {
		diagnostic.Range = ast.NewRangeFromPositioned(positioned)
	}

	if secondaryError, ok := err.(errors.SecondaryError); ok {
		diagnostic.SecondaryMessage = secondaryError.SecondaryError()
	}

	if errorNotes, ok := err.(errors.ErrorNotes); ok {
		for _, note := range errorNotes.ErrorNotes() {
			noteDiagnostic := Diagnostic{
				Severity: SeverityNote,
				Location: location,
				Message:  note.Message(),
			}
			if positioned, ok := note.(ast.HasPosition); ok {
				noteDiagnostic.Range = ast.NewRangeFromPositioned(positioned)
			}
			diagnostic.Notes = append(diagnostic.Notes, noteDiagnostic)
		}
	}

	return diagnostic
}

func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

func (d Diagnostic) String() string {
	location := ""
	if d.Location != nil {
		location = d.Location.String() + ":"
	}
	return fmt.Sprintf(
		"%s%d:%d: %s: %s",
		location,
		d.StartPos.Line,
		d.StartPos.Column,
		d.Severity,
		d.Message,
	)
}

// Diagnostics

type Diagnostics []Diagnostic

func (ds Diagnostics) HasErrors() bool {
	for _, diagnostic := range ds {
		if diagnostic.IsError() {
			return true
		}
	}
	return false
}

func (ds Diagnostics) filter(severity Severity) Diagnostics {
	var result Diagnostics
	for _, diagnostic := range ds {
		if diagnostic.Severity == severity {
			result = append(result, diagnostic)
		}
	}
	return result
}

func (ds Diagnostics) Errors() Diagnostics {
	return ds.filter(SeverityError)
}

func (ds Diagnostics) Warnings() Diagnostics {
	return ds.filter(SeverityWarning)
}

// Count returns the number of diagnostics of each severity
func (ds Diagnostics) Count() (errorCount int, warningCount int) {
	for _, diagnostic := range ds {
		switch diagnostic.Severity {
		case SeverityError:
			errorCount++
		case SeverityWarning:
			warningCount++
		}
	}
	return
}

// ErrorValues returns the errors the diagnostics were reported for
func (ds Diagnostics) ErrorValues() []error {
	result := make([]error, len(ds))
	for i, diagnostic := range ds {
		result[i] = diagnostic.Err
	}
	return result
}
