/*
File    : caretlang/interp/interp_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/caretlang/env"
	"github.com/akashmaji946/caretlang/lexer"
	"github.com/akashmaji946/caretlang/parser"
	"github.com/akashmaji946/caretlang/values"
)

func interpret(t *testing.T, src string) (values.Value, *env.Environment) {
	t.Helper()
	toks, lexErr := lexer.New("<test>", src).MakeTokens()
	require.Nil(t, lexErr)
	parseRes := parser.New(toks).Parse()
	require.Nil(t, parseRes.Error)

	e := env.New(nil)
	e.Set("NULL", values.Null)
	e.Set("FALSE", values.False)
	e.Set("TRUE", values.True)

	it := New("<test>")
	it.SetGlobalEnv(e)
	val, diagErr := it.Interpret(parseRes.Node, e)
	require.Nil(t, diagErr, "unexpected diagnostic: %v", diagErr)
	return val, e
}

func lastOf(t *testing.T, v values.Value) values.Value {
	t.Helper()
	l, ok := v.(*values.List)
	require.True(t, ok)
	items := l.Items()
	require.NotEmpty(t, items)
	return items[len(items)-1]
}

func TestInterpret_BreakStopsLoop(t *testing.T) {
	val, _ := interpret(t, "FOR i = 0 TO 10 THEN IF i == 3 THEN BREAK ELSE i")
	result := lastOf(t, val)
	list, ok := result.(*values.List)
	require.True(t, ok)
	assert.Len(t, list.Items(), 3)
}

func TestInterpret_ContinueSkipsElement(t *testing.T) {
	val, _ := interpret(t, "FOR i = 0 TO 5 THEN IF i == 2 THEN CONTINUE ELSE i")
	result := lastOf(t, val)
	list, ok := result.(*values.List)
	require.True(t, ok)
	assert.Len(t, list.Items(), 4)
}

func TestInterpret_RecursiveFunction(t *testing.T) {
	src := "DEF fact(n)\n" +
		"IF n <= 1 THEN\n" +
		"RETURN 1\n" +
		"ELSE\n" +
		"RETURN n * fact(n - 1)\n" +
		"END\n" +
		"END\n" +
		"fact(5)\n"
	val, _ := interpret(t, src)
	result := lastOf(t, val)
	n, ok := result.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, float64(120), n.Val)
}

func TestInterpret_ClosureCapturesDefiningEnv(t *testing.T) {
	src := "VAR x = 10\n" +
		"DEF addX(y) -> x + y\n" +
		"addX(5)\n"
	val, _ := interpret(t, src)
	result := lastOf(t, val)
	n, ok := result.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, float64(15), n.Val)
}

func TestInterpret_FuncArityMismatch(t *testing.T) {
	toks, lexErr := lexer.New("<test>", "DEF f(a, b) -> a + b\nf(1)\n").MakeTokens()
	require.Nil(t, lexErr)
	parseRes := parser.New(toks).Parse()
	require.Nil(t, parseRes.Error)

	it := New("<test>")
	e := env.New(nil)
	it.SetGlobalEnv(e)
	_, diagErr := it.Interpret(parseRes.Node, e)
	require.NotNil(t, diagErr)
	assert.Contains(t, diagErr.Detail, "too few args")
}
