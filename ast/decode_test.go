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

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-lang/flint/errors"
)

const testCounterProgram = `
declarations:
  - kind: contract
    name: Counter
    line: 1
    states: [Counting]
    members:
      - kind: var
        name: count
        type: Int
        value: { kind: int, literal: "0" }
      - kind: let
        name: owner
        type: Address
  - kind: behavior
    contract: Counter
    line: 6
    caller: caller
    protections: [owner]
    members:
      - kind: init
        public: true
        parameters:
          - { name: owner, type: Address }
        body:
          - kind: assign
            target: { kind: member, name: owner, target: { kind: identifier, name: self } }
            value: { kind: identifier, name: owner }
      - kind: func
        name: add
        public: true
        mutating: true
        parameters:
          - { name: values, type: "[Int: Bool]" }
          - { name: total, type: inout Int }
        result: Int
        body:
          - kind: assign
            operator: "+="
            target: { kind: identifier, name: count }
            value:
              kind: binary
              operator: "*"
              left: { kind: identifier, name: total }
              right: { kind: int, literal: "2" }
          - kind: if
            test: { kind: let, name: x, value: { kind: call, name: f } }
            then:
              - { kind: return, value: { kind: identifier, name: x } }
            else:
              - { kind: become, name: Counting }
`

func TestDecodeProgram(t *testing.T) {

	t.Parallel()

	program, err := DecodeProgram([]byte(testCounterProgram))
	require.NoError(t, err)

	require.Len(t, program.Declarations, 2)

	contracts := program.ContractDeclarations()
	require.Len(t, contracts, 1)

	assert.Equal(t,
		"contract Counter (Counting) {\n"+
			"    var count: Int = 0\n"+
			"    let owner: Address\n"+
			"}",
		contracts[0].String(),
	)
	assert.Equal(t, 1, contracts[0].StartPosition().Line)

	behaviors := program.ContractBehaviorDeclarations()
	require.Len(t, behaviors, 1)

	assert.Equal(t,
		"Counter :: caller <- (owner) {\n"+
			"    public init(owner: Address) {\n"+
			"        self.owner = owner\n"+
			"    }\n"+
			"    public mutating func add(values: [Int: Bool], total: inout Int) -> Int {\n"+
			"        count += total * 2\n"+
			"        if let x = f() {\n"+
			"            return x\n"+
			"        } else {\n"+
			"            become Counting\n"+
			"        }\n"+
			"    }\n"+
			"}",
		behaviors[0].String(),
	)

	functions := behaviors[0].Functions()
	require.Len(t, functions, 1)
	assert.IsType(t, &DictionaryType{}, functions[0].Parameters[0].Type)
	assert.True(t, functions[0].Parameters[1].IsInout())
}

func TestDecodeProgram_Errors(t *testing.T) {

	t.Parallel()

	t.Run("unknown declaration", func(t *testing.T) {

		t.Parallel()

		_, err := DecodeProgram([]byte("declarations: [{ kind: module, name: M }]"))
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
		assert.ErrorContains(t, err, `unknown declaration kind "module"`)
	})

	t.Run("invalid type", func(t *testing.T) {

		t.Parallel()

		_, err := DecodeProgram([]byte("declarations: [{ kind: var, name: x, type: \"[Int\" }]"))
		require.Error(t, err)
		assert.ErrorContains(t, err, `invalid type "[Int"`)
	})

	t.Run("invalid YAML", func(t *testing.T) {

		t.Parallel()

		_, err := DecodeProgram([]byte("declarations: [{ kind: var, unknownField: 1 }]"))
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})
}
