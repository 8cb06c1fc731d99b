/*
File    : caretlang/builtins/builtins_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/env"
	"github.com/akashmaji946/caretlang/position"
	"github.com/akashmaji946/caretlang/values"
)

// fakeRuntime is a minimal values.Runtime stand-in so builtins can be
// exercised without the full lexer/parser/interp pipeline.
type fakeRuntime struct {
	out     bytes.Buffer
	in      *bufio.Reader
	cleared bool
	runFile func(string) (values.Value, *diag.Diagnostic)
}

func newFakeRuntime(input string) *fakeRuntime {
	return &fakeRuntime{in: bufio.NewReader(strings.NewReader(input))}
}

func (f *fakeRuntime) Write(s string) error {
	f.out.WriteString(s)
	return nil
}

func (f *fakeRuntime) ReadLine() (string, error) {
	line, err := f.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

func (f *fakeRuntime) Clear() error {
	f.cleared = true
	return nil
}

func (f *fakeRuntime) RunFile(fileName string) (values.Value, *diag.Diagnostic) {
	if f.runFile != nil {
		return f.runFile(fileName)
	}
	zero := position.Position{}
	return nil, diag.New(diag.RuntimeError, "no such file", zero, zero)
}

func (f *fakeRuntime) CallUserFunction(fn *values.UserFunction, args []values.Value) (values.Value, *diag.Diagnostic) {
	return nil, nil
}

func TestBuiltins_AppendMutatesAliasedList(t *testing.T) {
	l := values.NewList([]values.Value{values.NewInt(1)})
	alias := l.Copy().(*values.List)

	_, err := builtinAppend(nil, []values.Value{l, values.NewInt(2)})
	require.Nil(t, err)

	assert.Equal(t, 2, len(alias.Items()))
}

func TestBuiltins_PopRemovesAndReturns(t *testing.T) {
	l := values.NewList([]values.Value{values.NewInt(10), values.NewInt(20), values.NewInt(30)})
	popped, err := builtinPop(nil, []values.Value{l, values.NewInt(1)})
	require.Nil(t, err)
	n, ok := popped.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, float64(20), n.Val)
	assert.Equal(t, 2, len(l.Items()))
}

func TestBuiltins_PopOutOfBounds(t *testing.T) {
	l := values.NewList([]values.Value{values.NewInt(1)})
	_, err := builtinPop(nil, []values.Value{l, values.NewInt(5)})
	require.NotNil(t, err)
	assert.Contains(t, err.Detail, "out of bounds")
}

func TestBuiltins_ExtendAppendsAllItems(t *testing.T) {
	a := values.NewList([]values.Value{values.NewInt(1)})
	b := values.NewList([]values.Value{values.NewInt(2), values.NewInt(3)})
	_, err := builtinExtend(nil, []values.Value{a, b})
	require.Nil(t, err)
	assert.Equal(t, 3, len(a.Items()))
}

func TestBuiltins_HashProducesSHA256Hex(t *testing.T) {
	result, err := builtinHash(nil, []values.Value{values.NewString("abc")})
	require.Nil(t, err)
	s, ok := result.(*values.String)
	require.True(t, ok)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", s.Val)
}

func TestBuiltins_MatchReportsBooleanAsNumber(t *testing.T) {
	result, err := builtinMatch(nil, []values.Value{values.NewString("^[0-9]+$"), values.NewString("123")})
	require.Nil(t, err)
	n, ok := result.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, float64(1), n.Val)

	result, err = builtinMatch(nil, []values.Value{values.NewString("^[0-9]+$"), values.NewString("abc")})
	require.Nil(t, err)
	n, ok = result.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, float64(0), n.Val)
}

func TestBuiltins_JSONStrPreservesIntVsFloat(t *testing.T) {
	list := values.NewList([]values.Value{values.NewInt(3), values.NewFloat(2.5), values.NewString("x")})
	result, err := builtinJSONStr(nil, []values.Value{list})
	require.Nil(t, err)
	s, ok := result.(*values.String)
	require.True(t, ok)
	assert.Equal(t, `[3,2.5,"x"]`, s.Val)
}

func TestBuiltins_PrintWritesThroughRuntime(t *testing.T) {
	rt := newFakeRuntime("")
	_, err := builtinPrint(rt, []values.Value{values.NewString("hello")})
	require.Nil(t, err)
	assert.Equal(t, "hello\n", rt.out.String())
}

func TestBuiltins_InputIntRetriesOnNonInteger(t *testing.T) {
	rt := newFakeRuntime("abc\n42\n")
	result, err := builtinInputInt(rt, nil)
	require.Nil(t, err)
	n, ok := result.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, float64(42), n.Val)
	assert.Contains(t, rt.out.String(), "must be an integer")
}

func TestRegister_BindsEveryBuiltinByName(t *testing.T) {
	e := env.New(nil)
	Register(e)
	for _, fn := range all {
		bound, ok := e.Get(fn.Name)
		require.True(t, ok)
		assert.Equal(t, fn.Name, bound.(*values.BuiltinFunction).Name)
	}
}
