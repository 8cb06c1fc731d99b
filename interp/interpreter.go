/*
File    : caretlang/interp/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp is the tree-walking interpreter: one visit method per
// AST variant, split one file per construct family, threading
// RuntimeResult through every recursive call. It also implements
// values.Runtime so builtins and UserFunction.Call can reach back into
// it.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/env"
	"github.com/akashmaji946/caretlang/lexer"
	"github.com/akashmaji946/caretlang/parser"
	"github.com/akashmaji946/caretlang/position"
	"github.com/akashmaji946/caretlang/values"
)

// Interpreter walks AST nodes against an environment, writing builtin
// output through Writer and reading builtin input through Reader (both
// redirectable, for testability).
type Interpreter struct {
	Writer io.Writer
	Reader *bufio.Reader

	fileName       string
	globalEnv      *env.Environment
	currentContext *values.Context
}

// New constructs an Interpreter for one source file, defaulting IO to the
// process's own stdout/stdin.
func New(fileName string) *Interpreter {
	return &Interpreter{
		Writer:   os.Stdout,
		Reader:   bufio.NewReader(os.Stdin),
		fileName: fileName,
	}
}

// SetWriter redirects builtin output (PRINT, CLS's terminal sequence).
func (it *Interpreter) SetWriter(w io.Writer) { it.Writer = w }

// SetReader redirects builtin input (INPUT, INPUT_INT).
func (it *Interpreter) SetReader(r io.Reader) { it.Reader = bufio.NewReader(r) }

// SetGlobalEnv records the table RUN should share when it recurses into a
// nested file, per the original pipeline's single shared
// global_symbol_table.
func (it *Interpreter) SetGlobalEnv(e *env.Environment) { it.globalEnv = e }

// Interpret visits node against environment, returning the top-level
// result's value and error directly (callers do not need RuntimeResult).
func (it *Interpreter) Interpret(node parser.Node, environment *env.Environment) (values.Value, *diag.Diagnostic) {
	res := it.visit(node, environment)
	return res.Value, res.Error
}

// Write implements values.Runtime.
func (it *Interpreter) Write(s string) error {
	_, err := fmt.Fprint(it.Writer, s)
	return err
}

// ReadLine implements values.Runtime; it reads up to and including the
// trailing newline, which is stripped from the returned text.
func (it *Interpreter) ReadLine() (string, error) {
	line, err := it.Reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}

// Clear implements values.Runtime. CLEAR/CLS is an opaque terminal side
// effect; this shells out to the platform's clear command rather than
// emitting a hardcoded escape sequence.
func (it *Interpreter) Clear() error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = it.Writer
	return cmd.Run()
}

// RunFile implements values.Runtime for the RUN builtin: it lexes, parses
// and interprets fileName against the SAME global environment as the
// calling script, matching the original source's single shared
// global_symbol_table across nested RUN calls.
func (it *Interpreter) RunFile(fileName string) (values.Value, *diag.Diagnostic) {
	contents, err := os.ReadFile(fileName)
	if err != nil {
		zero := position.Position{}
		return nil, diag.New(diag.RuntimeError, fmt.Sprintf("Failed to load script \"%s\"\n%s", fileName, err), zero, zero)
	}

	toks, lexErr := lexer.New(fileName, string(contents)).MakeTokens()
	if lexErr != nil {
		return nil, lexErr
	}
	parseRes := parser.New(toks).Parse()
	if parseRes.Error != nil {
		return nil, parseRes.Error
	}

	target := it.globalEnv
	if target == nil {
		target = env.New(nil)
	}
	return it.Interpret(parseRes.Node, target)
}

// CallUserFunction implements values.Runtime: it creates a child
// environment whose parent is the function's defining environment
// (lexical closure), checks arity exactly, binds parameters, and visits
// the body.
func (it *Interpreter) CallUserFunction(fn *values.UserFunction, args []values.Value) (values.Value, *diag.Diagnostic) {
	start, end := fn.Pos()
	name := fn.Name
	if name == "" {
		name = "<anonymous>"
	}

	if len(args) > len(fn.ParamNames) {
		return nil, diag.New(diag.RuntimeError,
			fmt.Sprintf("%d too many args passed into '%s'", len(args)-len(fn.ParamNames), name), start, end)
	}
	if len(args) < len(fn.ParamNames) {
		return nil, diag.New(diag.RuntimeError,
			fmt.Sprintf("%d too few args passed into '%s'", len(fn.ParamNames)-len(args), name), start, end)
	}

	definingEnv, _ := fn.DefiningEnv.(*env.Environment)
	callEnv := env.New(definingEnv)
	for i, paramName := range fn.ParamNames {
		callEnv.Set(paramName, args[i])
	}

	prevCtx := it.currentContext
	it.currentContext = values.NewContext(name, prevCtx, start)
	res := it.visit(fn.Body, callEnv)
	it.currentContext = prevCtx

	if res.Error != nil {
		return nil, res.Error
	}
	if fn.AutoReturn {
		return res.Value, nil
	}
	if res.FuncReturnValue != nil {
		return res.FuncReturnValue, nil
	}
	return values.Null, nil
}

// runtimeErrorf builds a RuntimeResult failure carrying the current call
// stack trace, the shape every visitor uses for a freshly-raised error
// (as opposed to one bubbling up via Register, which already carries its
// own trace).
func (it *Interpreter) runtimeErrorf(start, end position.Position, format string, args ...interface{}) *RuntimeResult {
	return NewRuntimeResult().Failure(it.withTrace(diag.New(diag.RuntimeError, fmt.Sprintf(format, args...), start, end)))
}

// withTrace attaches the current call-stack snapshot to a value-capability
// diagnostic (those are built with diag.New, which carries no trace, since
// values package cannot depend on interp's call-frame bookkeeping).
func (it *Interpreter) withTrace(d *diag.Diagnostic) *diag.Diagnostic {
	if len(d.Trace) > 0 {
		return d
	}
	return diag.NewRuntime(d.Detail, d.Start, d.End, it.currentContext.Trace(d.Start))
}
