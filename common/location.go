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
	"fmt"
)

// Location describes the origin of a program, e.g. a source file.
type Location interface {
	fmt.Stringer
	ID() string
}

// HasLocation is implemented by values which know the location they originate from.
type HasLocation interface {
	ImportLocation() Location
}

// StringLocation

type StringLocation string

var _ Location = StringLocation("")

func (l StringLocation) ID() string {
	return "S." + string(l)
}

func (l StringLocation) String() string {
	return string(l)
}
