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


package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-lang/flint/errors"
)

func TestIsInternalError(t *testing.T) {

	t.Parallel()

	t.Run("unexpected", func(t *testing.T) {

		t.Parallel()

		err := errors.NewUnexpectedError("ambiguous call to `%s`", "f")
		assert.True(t, errors.IsInternalError(err))
		assert.False(t, errors.IsUserError(err))
		assert.Equal(t, "ambiguous call to `f`", err.Error())
	})

	t.Run("unreachable", func(t *testing.T) {

		t.Parallel()

		err := errors.NewUnreachableError()
		assert.True(t, errors.IsInternalError(err))
		require.NotEmpty(t, err.Stack)
	})

	t.Run("wrapped", func(t *testing.T) {

		t.Parallel()

		err := fmt.Errorf("pass failed: %w", errors.NewUnexpectedError("broken"))
		assert.True(t, errors.IsInternalError(err))
	})
}

func TestIsUserError(t *testing.T) {

	t.Parallel()

	err := errors.NewDefaultUserError("missing location")
	assert.True(t, errors.IsUserError(err))
	assert.False(t, errors.IsInternalError(err))

	wrapped := fmt.Errorf("config: %w", err)
	assert.True(t, errors.IsUserError(wrapped))

	assert.False(t, errors.IsUserError(fmt.Errorf("plain")))
}

func TestRecoverInternalError(t *testing.T) {

	t.Parallel()

	run := func(f func()) (err error) {
		defer errors.RecoverInternalError(&err)
		f()
		return nil
	}

	t.Run("internal error", func(t *testing.T) {

		t.Parallel()

		err := run(func() {
			panic(errors.NewUnreachableError())
		})
		require.Error(t, err)
		assert.True(t, errors.IsInternalError(err))
	})

	t.Run("no panic", func(t *testing.T) {

		t.Parallel()

		err := run(func() {})
		require.NoError(t, err)
	})

	t.Run("user error", func(t *testing.T) {

		t.Parallel()

		assert.Panics(t, func() {
			_ = run(func() {
				panic(errors.NewDefaultUserError("invalid"))
			})
		})
	})

	t.Run("runtime error", func(t *testing.T) {

		t.Parallel()

		assert.Panics(t, func() {
			_ = run(func() {
				var values []int
				_ = values[1]
			})
		})
	})
}
