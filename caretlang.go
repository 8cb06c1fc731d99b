/*
File    : caretlang/caretlang.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package caretlang wires the lexer, parser, and interpreter into the
// single entry point the rest of the program (REPL, CLI, RUN builtin)
// calls: Run(fileName, text) → (value | nil, diagnostic | nil). Exactly
// one of the two return slots is populated, per the external interface
// contract.
package caretlang

import (
	"io"
	"os"

	"github.com/akashmaji946/caretlang/builtins"
	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/env"
	"github.com/akashmaji946/caretlang/interp"
	"github.com/akashmaji946/caretlang/lexer"
	"github.com/akashmaji946/caretlang/parser"
	"github.com/akashmaji946/caretlang/position"
	"github.com/akashmaji946/caretlang/values"
)

// NewGlobalEnvironment builds a root environment carrying the NULL/FALSE/
// TRUE/MATH_PI singletons and the full builtin library, the fixed set
// every top-level Run (and the RUN builtin's nested pipeline re-entry)
// starts from.
func NewGlobalEnvironment() *env.Environment {
	e := env.New(nil)
	e.Set("NULL", values.Null)
	e.Set("FALSE", values.False)
	e.Set("TRUE", values.True)
	e.Set("MATH_PI", values.Pi)
	builtins.Register(e)
	return e
}

// Run lexes, parses, and interprets text (attributed to fileName for
// diagnostics) against globalEnv, redirecting builtin IO through writer
// and reader. Passing a nil globalEnv builds a fresh one via
// NewGlobalEnvironment.
func Run(fileName, text string, globalEnv *env.Environment, writer io.Writer, reader io.Reader) (values.Value, *diag.Diagnostic) {
	if globalEnv == nil {
		globalEnv = NewGlobalEnvironment()
	}

	toks, lexErr := lexer.New(fileName, text).MakeTokens()
	if lexErr != nil {
		return nil, lexErr
	}

	parseRes := parser.New(toks).Parse()
	if parseRes.Error != nil {
		return nil, parseRes.Error
	}

	it := interp.New(fileName)
	if writer != nil {
		it.SetWriter(writer)
	}
	if reader != nil {
		it.SetReader(reader)
	}
	it.SetGlobalEnv(globalEnv)

	val, diagErr := it.Interpret(parseRes.Node, globalEnv)
	if val == nil && diagErr == nil {
		val = values.Null
	}
	return val, diagErr
}

// RunFile reads fileName from disk and runs it against a fresh global
// environment, writing to stdout and reading from stdin — the shape the
// CLI's file mode uses.
func RunFile(fileName string) (values.Value, *diag.Diagnostic) {
	contents, err := os.ReadFile(fileName)
	if err != nil {
		zero := position.Position{}
		return nil, diag.New(diag.RuntimeError, err.Error(), zero, zero)
	}
	return Run(fileName, string(contents), nil, os.Stdout, os.Stdin)
}
