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

// flint-check checks programs given in the structured tree format,
// and prints the diagnostics of the semantic pipeline.
//
//	flint-check [-config flint.yaml] [-source Counter.flint] Counter.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/borrow"
	"github.com/flint-lang/flint/common"
	"github.com/flint-lang/flint/errors"
	"github.com/flint-lang/flint/pretty"
	"github.com/flint-lang/flint/sema"
)

var configFlag = flag.String("config", "", "path of the YAML configuration file")
var sourceFlag = flag.String("source", "", "path of the source code, used to show code snippets")
var colorFlag = flag.Bool("color", isatty.IsTerminal(os.Stderr.Fd()), "colorize diagnostics")

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) != 1 {
		_, _ = fmt.Fprintln(os.Stderr, "usage: flint-check [flags] <tree file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	config, err := loadConfigFile(*configFlag)
	if err != nil {
		fail(err)
	}

	var code string
	if *sourceFlag != "" {
		data, err := os.ReadFile(*sourceFlag)
		if err != nil {
			fail(err)
		}
		code = string(data)
	}

	output, err := check(args[0], code, config, os.Stderr, *colorFlag)
	if err != nil {
		fail(err)
	}

	if output.Diagnostics.HasErrors() {
		os.Exit(1)
	}
}

// check decodes the tree file at the given path, runs the pipeline on it,
// and prints the diagnostics and traces to the given writer.
func check(
	path string,
	code string,
	fileConfig fileConfig,
	writer io.Writer,
	useColor bool,
) (output *sema.Output, err error) {
	defer errors.RecoverInternalError(&err)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	program, err := ast.DecodeProgram(data)
	if err != nil {
		return nil, err
	}

	location := common.StringLocation(path)

	printTrace := func(format string, args ...any) {
		_, _ = fmt.Fprintf(writer, format, args...)
	}

	config := fileConfig.semaConfig(location, printTrace)

	output = sema.Run(program, config, borrow.NewRewriter())

	var codes map[common.Location]string
	if code != "" {
		codes = map[common.Location]string{
			location: code,
		}
	}

	err = pretty.NewDiagnosticPrettyPrinter(writer, useColor).
		PrettyPrintDiagnostics(output.Diagnostics, codes)
	if err != nil {
		return nil, err
	}

	return output, nil
}

func fail(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
