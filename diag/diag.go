/*
File    : caretlang/diag/diag.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diag is the error-record type every stage of the pipeline
// returns instead of panicking: a Kind, a detail string, a source span,
// and, for runtime errors, a call-stack snapshot for a traceback.
package diag

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/caretlang/position"
)

// Kind distinguishes the four error taxonomies the pipeline can produce.
type Kind string

const (
	IllegalCharacter Kind = "Illegal Character"
	ExpectedCharacter Kind = "Expected Character"
	InvalidSyntax    Kind = "Invalid Syntax"
	RuntimeError     Kind = "Runtime Error"
)

// Frame is one entry of a runtime call-stack snapshot, used only to
// render a traceback for Kind == RuntimeError.
type Frame struct {
	DisplayName string
	EntryPos    position.Position
}

// Diagnostic is the error value threaded through every stage: Lexer and
// Parser populate Kind/Detail/Start/End only; the Interpreter additionally
// populates Trace (innermost frame first).
type Diagnostic struct {
	Kind   Kind
	Detail string
	Start  position.Position
	End    position.Position
	Trace  []Frame
}

// New builds a lexer/parser diagnostic (no call-stack trace).
func New(kind Kind, detail string, start, end position.Position) *Diagnostic {
	return &Diagnostic{Kind: kind, Detail: detail, Start: start, End: end}
}

// NewRuntime builds a Runtime Error diagnostic carrying a call-stack trace,
// innermost frame first.
func NewRuntime(detail string, start, end position.Position, trace []Frame) *Diagnostic {
	return &Diagnostic{Kind: RuntimeError, Detail: detail, Start: start, End: end, Trace: trace}
}

// Error satisfies the error interface so a *Diagnostic can be returned
// through ordinary Go error-handling paths as well as rendered in full.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Detail)
}

// Render produces the multi-line, caret-annotated representation
// described by the external caret-rendering contract: the offending
// line(s) followed by a line of '^' underlining [start.col, end.col), with
// a traceback above it for runtime errors.
func (d *Diagnostic) Render() string {
	var b strings.Builder
	if len(d.Trace) > 0 {
		b.WriteString("Traceback (most recent call last):\n")
		for i := len(d.Trace) - 1; i >= 0; i-- {
			frame := d.Trace[i]
			fmt.Fprintf(&b, "  File %s, line %d, in %s\n", frame.EntryPos.FileName, frame.EntryPos.Ln+1, frame.DisplayName)
		}
	}
	fmt.Fprintf(&b, "%s: %s\n", d.Kind, d.Detail)
	fmt.Fprintf(&b, "File %s, line %d\n", d.Start.FileName, d.Start.Ln+1)
	b.WriteString(caretExcerpt(d.Start, d.End))
	return b.String()
}

// caretExcerpt implements the external caret-rendering helper's contract:
// given full source text and two positions, emit the affected line(s)
// followed by a line of '^' underlining the [start.col, end.col) range on
// each line. Leading/trailing blank lines are stripped and tabs are
// expanded to single spaces, matching the original run() pipeline's
// string_with_arrows helper.
func caretExcerpt(start, end position.Position) string {
	text := start.FullText

	idxStart := lastIndexBefore(text, '\n', start.Idx)
	idxEnd := indexFromOrEnd(text, '\n', idxStart+1)

	var b strings.Builder
	lineIdxStart, lineIdxEnd := idxStart, idxEnd
	lineCount := end.Ln - start.Ln + 1
	for i := 0; i < lineCount; i++ {
		line := text[lineIdxStart+1 : lineIdxEnd]
		colStart := 0
		if i == 0 {
			colStart = start.Col
		}
		colEnd := len(line)
		if i == lineCount-1 {
			colEnd = end.Col
		}
		if colEnd < colStart {
			colEnd = colStart
		}
		if colEnd > len(line) {
			colEnd = len(line)
		}

		b.WriteString(line)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", colStart))
		n := colEnd - colStart
		if n < 1 {
			n = 1
		}
		b.WriteString(strings.Repeat("^", n))

		lineIdxStart = lineIdxEnd
		lineIdxEnd = indexFromOrEnd(text, '\n', lineIdxStart+1)
		if i != lineCount-1 {
			b.WriteByte('\n')
		}
	}

	return strings.ReplaceAll(b.String(), "\t", " ")
}

func lastIndexBefore(s string, sep byte, idx int) int {
	i := strings.LastIndexByte(s[:min(idx, len(s))], sep)
	if i == -1 {
		return -1
	}
	return i
}

func indexFromOrEnd(s string, sep byte, from int) int {
	if from > len(s) {
		from = len(s)
	}
	i := strings.IndexByte(s[from:], sep)
	if i == -1 {
		return len(s)
	}
	return from + i
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
