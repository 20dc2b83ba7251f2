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


package common_utils

import (
	"strings"
	"testing"

	"github.com/k0kubun/pp/v3"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/common"
	"github.com/flint-lang/flint/errors"
	"github.com/flint-lang/flint/sema"
)

func init() {
	pp.Default.SetColoringEnabled(false)
}

// TestLocation is used as the default location for programs in tests.
const TestLocation = common.StringLocation("test")

// AssertEqualWithDiff asserts that two objects are equal,
// and prints both objects and their differences if they are not.
func AssertEqualWithDiff(t *testing.T, expected, actual any) {
	t.Helper()

	diff := pretty.Diff(expected, actual)
	if len(diff) == 0 {
		return
	}

	t.Errorf(
		"not equal\nexpected: %s\nactual:   %s\ndiff:\n    %s",
		pp.Sprint(expected),
		pp.Sprint(actual),
		strings.Join(diff, "\n    "),
	)
}

// ExpectedDiagnostic describes a diagnostic as reported to the user.
// Empty messages are not compared.
type ExpectedDiagnostic struct {
	Severity         sema.Severity
	Message          string
	SecondaryMessage string
	// Notes are the messages of the notes, in order
	Notes []string
}

// AssertDiagnostic asserts that the given diagnostic matches the expectation
func AssertDiagnostic(t *testing.T, diagnostic sema.Diagnostic, expected ExpectedDiagnostic) {
	t.Helper()

	assert.Equal(t, expected.Severity, diagnostic.Severity)

	if expected.Message != "" {
		assert.Equal(t, expected.Message, diagnostic.Message)
	}
	if expected.SecondaryMessage != "" {
		assert.Equal(t, expected.SecondaryMessage, diagnostic.SecondaryMessage)
	}

	notes := make([]string, 0, len(diagnostic.Notes))
	for _, note := range diagnostic.Notes {
		assert.Equal(t, sema.SeverityNote, note.Severity)
		assert.Equal(t, diagnostic.Location, note.Location)
		notes = append(notes, note.Message)
	}
	if len(expected.Notes) == 0 {
		assert.Empty(t, notes)
	} else {
		assert.Equal(t, expected.Notes, notes)
	}
}

// AssertNoteMessages asserts that the given error has notes with the given messages, in order
func AssertNoteMessages(t *testing.T, err error, messages ...string) {
	t.Helper()

	errorNotes, ok := err.(errors.ErrorNotes)
	require.True(t, ok, "error has no notes: %T", err)

	notes := errorNotes.ErrorNotes()
	actual := make([]string, len(notes))
	for i, note := range notes {
		actual[i] = note.Message()
	}
	assert.Equal(t, messages, actual)
}

// RequireError is a wrapper around require.Error which also ensures
// that the diagnostic for the error can be produced.
// User errors and their notes must have non-empty messages.
func RequireError(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)

	diagnostic := sema.NewDiagnostic(TestLocation, err)

	if errors.IsUserError(err) {
		require.NotEmpty(t, diagnostic.Message)
	}

	if positioned, ok := err.(ast.HasPosition); ok {
		require.Equal(t, positioned.StartPosition(), diagnostic.StartPos)
	}

	if errorNotes, ok := err.(errors.ErrorNotes); ok {
		require.Len(t, diagnostic.Notes, len(errorNotes.ErrorNotes()))
		for _, note := range diagnostic.Notes {
			require.NotEmpty(t, note.Message)
		}
	}
}
