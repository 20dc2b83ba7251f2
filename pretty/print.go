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

// Package pretty prints diagnostics for humans,
// with an excerpt of the code they were reported for.
package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"

	"github.com/flint-lang/flint/ast"
	"github.com/flint-lang/flint/common"
	"github.com/flint-lang/flint/sema"
)

// DiagnosticPrettyPrinter

type DiagnosticPrettyPrinter struct {
	writer io.Writer
	colors *aurora.Aurora
}

func NewDiagnosticPrettyPrinter(writer io.Writer, useColor bool) DiagnosticPrettyPrinter {
	return DiagnosticPrettyPrinter{
		writer: writer,
		colors: aurora.New(aurora.WithColors(useColor)),
	}
}

func (p DiagnosticPrettyPrinter) severityLabel(severity sema.Severity) aurora.Value {
	label := severity.String()
	switch severity {
	case sema.SeverityError:
		return p.colors.Red(label).Bold()
	case sema.SeverityWarning:
		return p.colors.Yellow(label).Bold()
	default:
		return p.colors.Cyan(label).Bold()
	}
}

func (p DiagnosticPrettyPrinter) highlight(severity sema.Severity, text string) aurora.Value {
	switch severity {
	case sema.SeverityError:
		return p.colors.Red(text).Bold()
	case sema.SeverityWarning:
		return p.colors.Yellow(text).Bold()
	default:
		return p.colors.Cyan(text).Bold()
	}
}

func (p DiagnosticPrettyPrinter) gutter(width int, suffix string) aurora.Value {
	return p.colors.Blue(strings.Repeat(" ", width+1) + suffix).Bold()
}

// PrettyPrintDiagnostics prints the given diagnostics in order.
// The codes are the programs of the locations, if available.
func (p DiagnosticPrettyPrinter) PrettyPrintDiagnostics(
	diagnostics sema.Diagnostics,
	codes map[common.Location]string,
) error {
	for i, diagnostic := range diagnostics {
		if i > 0 {
			if _, err := io.WriteString(p.writer, "\n"); err != nil {
				return err
			}
		}
		if err := p.PrettyPrintDiagnostic(diagnostic, codes); err != nil {
			return err
		}
	}
	return nil
}

func (p DiagnosticPrettyPrinter) PrettyPrintDiagnostic(
	diagnostic sema.Diagnostic,
	codes map[common.Location]string,
) error {
	var sb strings.Builder
	p.writeDiagnostic(&sb, diagnostic, codes)
	for _, note := range diagnostic.Notes {
		p.writeDiagnostic(&sb, note, codes)
	}
	_, err := io.WriteString(p.writer, sb.String())
	return err
}

func (p DiagnosticPrettyPrinter) writeDiagnostic(
	sb *strings.Builder,
	diagnostic sema.Diagnostic,
	codes map[common.Location]string,
) {
	sb.WriteString(p.severityLabel(diagnostic.Severity).String())
	sb.WriteString(p.colors.Bold(": " + diagnostic.Message).String())
	sb.WriteByte('\n')

	startPos := diagnostic.StartPos
	hasPosition := startPos.Line > 0

	width := 1
	if hasPosition {
		width = len(strconv.Itoa(startPos.Line))

		sb.WriteString(p.gutter(width-1, "--> ").String())
		if diagnostic.Location != nil {
			sb.WriteString(diagnostic.Location.String())
			sb.WriteByte(':')
		}
		fmt.Fprintf(sb, "%d:%d\n", startPos.Line, startPos.Column)
	}

	var line string
	var ok bool
	if hasPosition && diagnostic.Location != nil {
		line, ok = codeLine(codes[diagnostic.Location], startPos.Line)
	}

	if !ok {
		if diagnostic.SecondaryMessage != "" {
			sb.WriteString(p.gutter(width, "= ").String())
			sb.WriteString(diagnostic.SecondaryMessage)
			sb.WriteByte('\n')
		}
		return
	}

	sb.WriteString(p.gutter(width, "|").String())
	sb.WriteByte('\n')

	sb.WriteString(p.colors.Blue(fmt.Sprintf("%*d | ", width, startPos.Line)).Bold().String())
	sb.WriteString(line)
	sb.WriteByte('\n')

	sb.WriteString(p.gutter(width, "| ").String())
	sb.WriteString(indentation(line, startPos.Column))

	marker := strings.Repeat("^", underlineLength(line, diagnostic.Range))
	if diagnostic.SecondaryMessage != "" {
		marker += " " + diagnostic.SecondaryMessage
	}
	sb.WriteString(p.highlight(diagnostic.Severity, marker).String())
	sb.WriteByte('\n')
}

// codeLine returns the line with the given number, starting at 1
func codeLine(code string, number int) (string, bool) {
	if code == "" {
		return "", false
	}
	lines := strings.Split(code, "\n")
	if number < 1 || number > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[number-1], "\r"), true
}

// indentation returns the whitespace aligning a marker with the given column.
// Tabs are kept so the marker is aligned however tabs are displayed.
func indentation(line string, column int) string {
	if column > len(line) {
		column = len(line)
	}

	var sb strings.Builder
	for _, r := range line[:column] {
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

// underlineLength returns the number of characters of the line covered by the given range.
// Ranges spanning multiple lines are underlined until the end of the first line.
func underlineLength(line string, astRange ast.Range) int {
	start := astRange.StartPos.Column
	if start >= len(line) {
		return 1
	}

	end := len(line)
	if astRange.EndPos.Line == astRange.StartPos.Line && astRange.EndPos.Column >= start {
		end = min(astRange.EndPos.Column+1, len(line))
	}

	length := uniseg.GraphemeClusterCount(line[start:end])
	if length < 1 {
		return 1
	}
	return length
}
