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

package sema

import (
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/flint-lang/flint/common"
)

// OnRecordTraceFunc is a function that records the trace of a pass run
type OnRecordTraceFunc func(
	operationName string,
	duration time.Duration,
	attrs []attribute.KeyValue,
)

// Config is the configuration of a pipeline run
type Config struct {
	// Location is the location of the checked program
	Location common.Location
	// LinearResourceBackend enables rewriting of borrow conflicts,
	// for backends which cannot handle aliased mutable references
	LinearResourceBackend bool
	// StopOnError stops the pipeline after the first pass reporting errors
	StopOnError bool
	// WarningsAsErrors reports warnings with error severity
	WarningsAsErrors bool
	// OnRecordTrace is called after each pass, if set
	OnRecordTrace OnRecordTraceFunc
}
