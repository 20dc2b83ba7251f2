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

package sema_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/sema"
	. "github.com/flint-lang/flint/test_utils/common_utils"
)

type ParseAndCheckOptions struct {
	Config         *sema.Config
	LoweringPasses []sema.Pass
}

// ParseAndCheck checks the given program with the default configuration
func ParseAndCheck(t testing.TB, program *ast.Program) *sema.Output {
	t.Helper()
	return ParseAndCheckWithOptions(t, program, ParseAndCheckOptions{})
}

func ParseAndCheckWithOptions(
	t testing.TB,
	program *ast.Program,
	options ParseAndCheckOptions,
) *sema.Output {
	t.Helper()

	config := options.Config
	if config == nil {
		config = &sema.Config{}
	}
	if config.Location == nil {
		config.Location = TestLocation
	}

	output := sema.Run(program, config, options.LoweringPasses...)
	require.NotNil(t, output)
	return output
}

// RequireCheckerErrors asserts that the given diagnostics contain exactly
// the given number of errors, and returns the errors
func RequireCheckerErrors(t *testing.T, diagnostics sema.Diagnostics, count int) []error {
	t.Helper()

	errs := diagnostics.Errors().ErrorValues()

	if len(errs) != count {
		for _, err := range errs {
			t.Log(err.Error())
		}
	}
	require.Len(t, errs, count)

	for _, err := range errs {
		RequireError(t, err)
	}

	return errs
}

// RequireCheckerWarnings asserts that the given diagnostics contain exactly
// the given number of warnings, and returns the warnings
func RequireCheckerWarnings(t *testing.T, diagnostics sema.Diagnostics, count int) []error {
	t.Helper()

	warnings := diagnostics.Warnings().ErrorValues()

	if len(warnings) != count {
		for _, warning := range warnings {
			t.Log(warning.Error())
		}
	}
	require.Len(t, warnings, count)

	return warnings
}

// RequireNoCheckerErrors asserts that the given diagnostics contain no errors
func RequireNoCheckerErrors(t *testing.T, diagnostics sema.Diagnostics) {
	t.Helper()

	RequireCheckerErrors(t, diagnostics, 0)
}

// AssertErrorsOfType asserts that the errors have the types of the given values, in order
func AssertErrorsOfType(t *testing.T, errs []error, expected ...error) {
	t.Helper()

	require.Len(t, errs, len(expected))
	for i, err := range errs {
		assert.IsType(t, expected[i], err)
	}
}
