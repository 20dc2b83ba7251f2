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

	"github.com/flint-lang/flint/ast"
)

const environmentOperationName = "environment"

// Output is the outcome of a pipeline run

type Output struct {
	// Program is the checked program, rewritten by the lowering passes
	Program     *ast.Program
	Environment *Environment
	Elaboration *Elaboration
	Diagnostics Diagnostics
	// Completed is false if the run stopped early because of errors
	Completed bool
}

// Run builds the environment of the given program, checks it,
// and runs the given lowering passes if the configuration targets a linear resource backend.
//
// Each stage only starts after the previous one completed.
// If the configuration stops on errors, no stage runs after one that reported errors.
func Run(program *ast.Program, config *Config, loweringPasses ...Pass) *Output {
	if config == nil {
		config = &Config{}
	}

	output := &Output{
		Program: program,
	}

	start := time.Now()
	environment, errs := NewEnvironment(program)
	output.Environment = environment

	var environmentDiagnostics Diagnostics
	for _, err := range errs {
		environmentDiagnostics = append(environmentDiagnostics, NewDiagnostic(config.Location, err))
	}
	if !output.checkpoint(config, environmentOperationName, start, environmentDiagnostics) {
		return output
	}

	output.Elaboration = NewElaboration()

	passes := []Pass{NewChecker()}
	if config.LinearResourceBackend {
		passes = append(passes, loweringPasses...)
	}

	for _, pass := range passes {
		context := NewContext(output.Environment, output.Elaboration)
		context.Location = config.Location

		start := time.Now()
		result := Walk(output.Program, pass, context)
		output.Program = result.Element.(*ast.Program)

		if !output.checkpoint(config, pass.Name(), start, result.Diagnostics) {
			return output
		}
	}

	output.Completed = true
	return output
}

// checkpoint records the diagnostics of a stage,
// and returns false if the run must stop
func (o *Output) checkpoint(
	config *Config,
	operationName string,
	start time.Time,
	diagnostics Diagnostics,
) bool {
	if config.WarningsAsErrors {
		for i := range diagnostics {
			if diagnostics[i].Severity == SeverityWarning {
				diagnostics[i].Severity = SeverityError
			}
		}
	}

	o.Diagnostics = append(o.Diagnostics, diagnostics...)

	if config.OnRecordTrace != nil {
		errorCount, warningCount := diagnostics.Count()
		config.OnRecordTrace(
			operationName,
			time.Since(start),
			[]attribute.KeyValue{
				attribute.Int("errors", errorCount),
				attribute.Int("warnings", warningCount),
			},
		)
	}

	return !config.StopOnError || !diagnostics.HasErrors()
}
