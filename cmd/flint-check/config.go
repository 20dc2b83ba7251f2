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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"go.opentelemetry.io/otel/attribute"

	"github.com/flint-lang/flint/common"
	"github.com/flint-lang/flint/sema"
)

// fileConfig is the YAML form of the pipeline configuration
//
//	linear_resource_backend: true
//	stop_on_error: false
//	warnings_as_errors: false
//	trace: true
type fileConfig struct {
	LinearResourceBackend bool `yaml:"linear_resource_backend"`
	StopOnError           bool `yaml:"stop_on_error"`
	WarningsAsErrors      bool `yaml:"warnings_as_errors"`
	Trace                 bool `yaml:"trace"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var config fileConfig
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	return decodeConfig(data)
}

func decodeConfig(data []byte) (fileConfig, error) {
	var config fileConfig
	err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return config, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// semaConfig returns the pipeline configuration for the program at the given location.
// Traces are written to the given function, if tracing is enabled.
func (c fileConfig) semaConfig(
	location common.Location,
	printTrace func(format string, args ...any),
) *sema.Config {
	config := &sema.Config{
		Location:              location,
		LinearResourceBackend: c.LinearResourceBackend,
		StopOnError:           c.StopOnError,
		WarningsAsErrors:      c.WarningsAsErrors,
	}

	if c.Trace && printTrace != nil {
		config.OnRecordTrace = func(
			operationName string,
			duration time.Duration,
			attrs []attribute.KeyValue,
		) {
			printTrace("%s\t%s\t%s\n", operationName, duration, formatAttributes(attrs))
		}
	}

	return config
}

func formatAttributes(attrs []attribute.KeyValue) string {
	var result string
	for i, attr := range attrs {
		if i > 0 {
			result += " "
		}
		result += fmt.Sprintf("%s=%s", attr.Key, attr.Value.Emit())
	}
	return result
}
