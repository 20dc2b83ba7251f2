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

package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/common"
	"github.com/flint-lang/flint/sema"
)

func TestPrintBrokenCode(t *testing.T) {

	t.Parallel()

	const code = `struct S {}`
	lineCount := len(strings.Split(code, "\n"))

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewDiagnosticPrettyPrinter(&sb, false)
	err := printer.PrettyPrintDiagnostic(
		sema.Diagnostic{
			Severity: sema.SeverityError,
			Location: location,
			Message:  "test error",
			Range: ast.Range{
				StartPos: ast.Position{
					// NOTE: line number is after end of code
					Line:   lineCount + 2,
					Column: 0,
				},
				EndPos: ast.Position{
					Line:   lineCount,
					Column: 2,
				},
			},
		},
		map[common.Location]string{
			location: code,
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:3:0\n",
		sb.String(),
	)
}

func TestPrintTabs(t *testing.T) {

	t.Parallel()

	const code = "\t  \t   let x = 1"

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewDiagnosticPrettyPrinter(&sb, false)
	err := printer.PrettyPrintDiagnostic(
		sema.Diagnostic{
			Severity: sema.SeverityError,
			Location: location,
			Message:  "test error",
			Range: ast.Range{
				StartPos: ast.Position{
					Line:   1,
					Column: 7,
				},
				EndPos: ast.Position{
					Line:   1,
					Column: 9,
				},
			},
		},
		map[common.Location]string{
			location: code,
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:7\n"+
			"  |\n"+
			"1 | \t  \t   let x = 1\n"+
			"  | \t  \t   ^^^\n",
		sb.String(),
	)
}

func TestPrintSecondaryMessageAndNotes(t *testing.T) {

	t.Parallel()

	const code = "func f() {\n  become Closed\n  return\n}"

	location := common.StringLocation("test")

	diagnostic := sema.NewDiagnostic(
		location,
		&sema.BecomeBeforeReturnError{
			Range: ast.NewRange(
				ast.Position{Line: 2, Column: 2},
				ast.Position{Line: 2, Column: 14},
			),
			ReturnRange: ast.NewRange(
				ast.Position{Line: 3, Column: 2},
				ast.Position{Line: 3, Column: 7},
			),
		},
	)

	var sb strings.Builder
	printer := NewDiagnosticPrettyPrinter(&sb, false)
	err := printer.PrettyPrintDiagnostic(
		diagnostic,
		map[common.Location]string{
			location: code,
		},
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: state transition must be the last statement of a function body, but a return follows\n"+
			" --> test:2:2\n"+
			"  |\n"+
			"2 |   become Closed\n"+
			"  |   ^^^^^^^^^^^^^\n"+
			"note: return statement here\n"+
			" --> test:3:2\n"+
			"  |\n"+
			"3 |   return\n"+
			"  |   ^^^^^^\n",
		sb.String(),
	)
}

func TestPrintWithoutCode(t *testing.T) {

	t.Parallel()

	location := common.StringLocation("test")

	var sb strings.Builder
	printer := NewDiagnosticPrettyPrinter(&sb, false)
	err := printer.PrettyPrintDiagnostics(
		sema.Diagnostics{
			{
				Severity:         sema.SeverityWarning,
				Location:         location,
				Message:          "first",
				SecondaryMessage: "details",
				Range: ast.Range{
					StartPos: ast.Position{Line: 12, Column: 4},
					EndPos:   ast.Position{Line: 12, Column: 8},
				},
			},
			{
				Severity: sema.SeverityError,
				Message:  "second",
			},
		},
		nil,
	)
	require.NoError(t, err)
	require.Equal(t,
		"warning: first\n"+
			"  --> test:12:4\n"+
			"   = details\n"+
			"\n"+
			"error: second\n",
		sb.String(),
	)
}
