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
package common

import (
	"github.com/flint-lang/flint/errors"
)

type DeclarationKind uint

const (
	DeclarationKindUnknown DeclarationKind = iota
	DeclarationKindConstant
	DeclarationKindVariable
	DeclarationKindParameter
	DeclarationKindFunction
	DeclarationKindInitializer
	DeclarationKindFallback
	DeclarationKindContract
	DeclarationKindContractBehavior
	DeclarationKindStructure
	DeclarationKindTrait
	DeclarationKindEnum
	DeclarationKindEnumCase
	DeclarationKindEvent
	DeclarationKindProperty
	DeclarationKindTypeState
	DeclarationKindCallerProtection
	DeclarationKindSelf
	DeclarationKindType
)

func (k DeclarationKind) IsTypeDeclaration() bool {
	switch k {
	case DeclarationKindContract,
		DeclarationKindStructure,
		DeclarationKindTrait,
		DeclarationKindEnum,
		DeclarationKindEvent,
		DeclarationKindType:

		return true

	default:
		return false
	}
}

func (k DeclarationKind) Name() string {
	switch k {
	case DeclarationKindUnknown:
		return "unknown"
	case DeclarationKindConstant:
		return "constant"
	case DeclarationKindVariable:
		return "variable"
	case DeclarationKindParameter:
		return "parameter"
	case DeclarationKindFunction:
		return "function"
	case DeclarationKindInitializer:
		return "initializer"
	case DeclarationKindFallback:
		return "fallback"
	case DeclarationKindContract:
		return "contract"
	case DeclarationKindContractBehavior:
		return "contract behavior"
	case DeclarationKindStructure:
		return "structure"
	case DeclarationKindTrait:
		return "trait"
	case DeclarationKindEnum:
		return "enum"
	case DeclarationKindEnumCase:
		return "enum case"
	case DeclarationKindEvent:
		return "event"
	case DeclarationKindProperty:
		return "property"
	case DeclarationKindTypeState:
		return "type state"
	case DeclarationKindCallerProtection:
		return "caller protection"
	case DeclarationKindSelf:
		return "self"
	case DeclarationKindType:
		return "type"
	}

	panic(errors.NewUnreachableError())
}

func (k DeclarationKind) Keywords() string {
	switch k {
	case DeclarationKindConstant:
		return "let"
	case DeclarationKindVariable:
		return "var"
	case DeclarationKindFunction:
		return "func"
	case DeclarationKindInitializer:
		return "init"
	case DeclarationKindFallback:
		return "fallback"
	case DeclarationKindContract:
		return "contract"
	case DeclarationKindStructure:
		return "struct"
	case DeclarationKindTrait:
		return "trait"
	case DeclarationKindEnum:
		return "enum"
	case DeclarationKindEnumCase:
		return "case"
	case DeclarationKindEvent:
		return "event"
	case DeclarationKindSelf:
		return "self"
	}

	return ""
}
