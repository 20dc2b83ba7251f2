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

// Package ast contains all AST nodes for Flint.
// All AST nodes implement the Element interface,
// so have position information
// and can be traversed by walking their children.
// Declarations, statements and expressions can also be dispatched
// to the visitor interfaces, and pretty printed through their documents.
package ast
