/*
File    : caretlang/caretlang_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package caretlang

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/caretlang/values"
)

// runSrc runs src and, since a whole program is itself a statement list,
// returns the value of its last statement (what a REPL line's printed
// result corresponds to) rather than the wrapping List.
func runSrc(t *testing.T, src string) (values.Value, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	val, diagErr := Run("<test>", src, nil, &out, nil)
	require.Nil(t, diagErr, "unexpected diagnostic: %v", diagErr)
	if l, ok := val.(*values.List); ok {
		items := l.Items()
		require.NotEmpty(t, items)
		return items[len(items)-1], &out
	}
	return val, &out
}

func TestRun_Arithmetic(t *testing.T) {
	val, _ := runSrc(t, "1 + 2 * 3")
	n, ok := val.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, float64(7), n.Val)
}

func TestRun_VarAssignAndAccess(t *testing.T) {
	val, _ := runSrc(t, "VAR a = 5\nVAR b = a + 1\nb")
	n, ok := val.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, float64(6), n.Val)
}

func TestRun_IfElse(t *testing.T) {
	val, _ := runSrc(t, "VAR x = 10\nIF x > 5 THEN \"big\" ELSE \"small\"")
	s, ok := val.(*values.String)
	require.True(t, ok)
	assert.Equal(t, "big", s.Val)
}

func TestRun_ForLoopStrictBound(t *testing.T) {
	_, out := runSrc(t, `FOR i = 1 TO 4 THEN PRINT(i)`)
	assert.Equal(t, "1\n2\n3\n", out.String())
}

func TestRun_WhileLoop(t *testing.T) {
	_, out := runSrc(t, "VAR i = 0\nWHILE i < 3 THEN\nVAR i = i + 1\nPRINT(i)\nEND")
	assert.Equal(t, "1\n2\n3\n", out.String())
}

func TestRun_FuncDefAndCall(t *testing.T) {
	val, _ := runSrc(t, "DEF add(a, b) -> a + b\nadd(2, 3)")
	n, ok := val.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, float64(5), n.Val)
}

func TestRun_VarAccessUndefined(t *testing.T) {
	_, diagErr := Run("<test>", "nope", nil, &bytes.Buffer{}, nil)
	require.NotNil(t, diagErr)
	assert.Contains(t, diagErr.Detail, "not defined")
}

func TestRun_VarAccessNullConflatesWithUndefined(t *testing.T) {
	// NULL is itself a name bound to the null singleton, so reading it
	// (here on the right-hand side of the assignment) reports "not
	// defined", the same as a name that was never defined.
	_, diagErr := Run("<test>", "VAR a = NULL\na", nil, &bytes.Buffer{}, nil)
	require.NotNil(t, diagErr)
	assert.Contains(t, diagErr.Detail, "not defined")
}

func TestRun_ListAppendAndLen(t *testing.T) {
	val, _ := runSrc(t, "VAR l = [1, 2]\nAPPEND(l, 3)\nLEN(l)")
	n, ok := val.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, float64(3), n.Val)
}

func TestRun_HashBuiltin(t *testing.T) {
	val, _ := runSrc(t, `HASH("abc")`)
	s, ok := val.(*values.String)
	require.True(t, ok)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", s.Val)
}

func TestRun_MatchBuiltin(t *testing.T) {
	val, _ := runSrc(t, `MATCH("^a.c$", "abc")`)
	n, ok := val.(*values.Number)
	require.True(t, ok)
	assert.Equal(t, float64(1), n.Val)
}

func TestRun_JSONStrBuiltin(t *testing.T) {
	val, _ := runSrc(t, `JSON_STR([1, 2, "x"])`)
	s, ok := val.(*values.String)
	require.True(t, ok)
	assert.Equal(t, `[1,2,"x"]`, s.Val)
}

func TestRun_NestedRunBuiltinErrorWrapping(t *testing.T) {
	_, diagErr := Run("<test>", `RUN("this-file-does-not-exist.clang")`, nil, &bytes.Buffer{}, nil)
	require.NotNil(t, diagErr)
	assert.Contains(t, diagErr.Detail, "Failed to finish executing script")
}
