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
	"github.com/flint-lang/flint/ast"
	. "github.com/flint-lang/flint/test_utils/sema_utils"
)

// counterContract returns a contract with a public initializer
// and the given members, and a behavior with the given functions
func counterContract(members []ast.Declaration, functions ...ast.Declaration) *ast.Program {
	contractMembers := append(
		[]ast.Declaration{
			Property("count", Nominal("Int"), Int(0)),
			Property("owner", Nominal("Address"), Address("0x1")),
		},
		members...,
	)

	behaviorMembers := append(
		[]ast.Declaration{
			Init(true, nil),
		},
		functions...,
	)

	return Program(
		Contract("Counter", contractMembers...),
		Behavior("Counter", BehaviorOptions{Protections: []string{"any"}}, behaviorMembers...),
	)
}
