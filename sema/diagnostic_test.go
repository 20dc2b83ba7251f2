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

package sema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/sema"
	. "github.com/flint-lang/flint/test_utils/common_utils"
)

func TestNewDiagnostic(t *testing.T) {

	t.Parallel()

	t.Run("error with notes", func(t *testing.T) {

		t.Parallel()

		err := &sema.BecomeBeforeReturnError{
			Range: ast.NewRange(
				ast.Position{Offset: 10, Line: 2, Column: 4},
				ast.Position{Offset: 22, Line: 2, Column: 16},
			),
			ReturnRange: ast.NewRange(
				ast.Position{Offset: 27, Line: 3, Column: 4},
				ast.Position{Offset: 32, Line: 3, Column: 9},
			),
		}

		diagnostic := sema.NewDiagnostic(TestLocation, err)

		AssertDiagnostic(t, diagnostic, ExpectedDiagnostic{
			Severity: sema.SeverityError,
			Message:  "state transition must be the last statement of a function body, but a return follows",
			Notes:    []string{"return statement here"},
		})
		assert.True(t, diagnostic.IsError())
		assert.Same(t, err, diagnostic.Err)
		assert.Equal(t, 2, diagnostic.StartPos.Line)
		assert.Equal(t,
			"test:2:4: error: state transition must be the last statement of a function body, but a return follows",
			diagnostic.String(),
		)

		require.Len(t, diagnostic.Notes, 1)
		note := diagnostic.Notes[0]
		assert.Equal(t, sema.SeverityNote, note.Severity)
		assert.Equal(t, "return statement here", note.Message)
		assert.Equal(t, 3, note.StartPos.Line)
	})

	t.Run("warning", func(t *testing.T) {

		t.Parallel()

		diagnostic := sema.NewDiagnostic(nil, &sema.EmptyRangeWarning{})

		AssertDiagnostic(t, diagnostic, ExpectedDiagnostic{
			Severity: sema.SeverityWarning,
			Message:  "range is empty",
		})
		assert.False(t, diagnostic.IsError())
		assert.Equal(t, "0:0: warning: range is empty", diagnostic.String())
	})

	t.Run("secondary message", func(t *testing.T) {

		t.Parallel()

		err := &sema.UnhandledExternalCallError{}
		diagnostic := sema.NewDiagnostic(TestLocation, err)

		assert.NotEmpty(t, diagnostic.SecondaryMessage)
		AssertDiagnostic(t, diagnostic, ExpectedDiagnostic{
			Severity:         sema.SeverityError,
			SecondaryMessage: err.SecondaryError(),
		})
	})
}

func TestDiagnostics(t *testing.T) {

	t.Parallel()

	diagnostics := sema.Diagnostics{
		sema.NewDiagnostic(TestLocation, &sema.MultipleReturnsError{}),
		sema.NewDiagnostic(TestLocation, &sema.EmptyRangeWarning{}),
		sema.NewDiagnostic(TestLocation, &sema.InvalidBecomeError{}),
	}

	assert.True(t, diagnostics.HasErrors())
	assert.False(t, diagnostics.Warnings().HasErrors())

	errorCount, warningCount := diagnostics.Count()
	assert.Equal(t, 2, errorCount)
	assert.Equal(t, 1, warningCount)

	errs := diagnostics.Errors().ErrorValues()
	require.Len(t, errs, 2)
	assert.IsType(t, &sema.MultipleReturnsError{}, errs[0])
	assert.IsType(t, &sema.InvalidBecomeError{}, errs[1])
}
