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
	"github.com/flint-lang/flint/errors"
)

type Operation uint

const (
	OperationUnknown Operation = iota
	OperationOr
	OperationAnd
	OperationEqual
	OperationNotEqual
	OperationLess
	OperationLessEqual
	OperationGreater
	OperationGreaterEqual
	OperationPlus
	OperationMinus
	OperationMul
	OperationDiv
	OperationMod
	OperationPower
	OperationNegate
)

func (s Operation) Symbol() string {
	switch s {
	case OperationOr:
		return "||"
	case OperationAnd:
		return "&&"
	case OperationEqual:
		return "=="
	case OperationNotEqual:
		return "!="
	case OperationLess:
		return "<"
	case OperationLessEqual:
		return "<="
	case OperationGreater:
		return ">"
	case OperationGreaterEqual:
		return ">="
	case OperationPlus:
		return "+"
	case OperationMinus:
		return "-"
	case OperationMul:
		return "*"
	case OperationDiv:
		return "/"
	case OperationMod:
		return "%"
	case OperationPower:
		return "**"
	case OperationNegate:
		return "!"
	}

	panic(errors.NewUnreachableError())
}

// ParseOperation returns the operation with the given symbol.
// The unary minus shares its symbol with the binary minus.
func ParseOperation(symbol string) Operation {
	for operation := OperationOr; operation <= OperationNegate; operation++ {
		if operation.Symbol() == symbol {
			return operation
		}
	}
	return OperationUnknown
}

func (s Operation) IsArithmetic() bool {
	switch s {
	case OperationPlus,
		OperationMinus,
		OperationMul,
		OperationDiv,
		OperationMod,
		OperationPower:
		return true
	}
	return false
}

func (s Operation) IsComparison() bool {
	switch s {
	case OperationEqual,
		OperationNotEqual,
		OperationLess,
		OperationLessEqual,
		OperationGreater,
		OperationGreaterEqual:
		return true
	}
	return false
}

func (s Operation) IsLogical() bool {
	return s == OperationOr || s == OperationAnd
}
