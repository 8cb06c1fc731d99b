/*
File    : caretlang/values/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/caretlang/diag"
)

func TestNumber_Arithmetic(t *testing.T) {
	sum, err := NewInt(2).AddedTo(NewInt(3))
	require.Nil(t, err)
	assert.Equal(t, "5", sum.String())

	_, divErr := NewInt(1).DivedBy(NewInt(0))
	require.NotNil(t, divErr)
	assert.Equal(t, "Division by zero", divErr.Detail)
}

func TestNumber_Truthiness(t *testing.T) {
	assert.True(t, NewInt(1).IsTrue())
	assert.False(t, NewInt(0).IsTrue())
}

func TestString_ConcatAndRepeat(t *testing.T) {
	cat, err := NewString("a").AddedTo(NewString("b"))
	require.Nil(t, err)
	assert.Equal(t, "ab", cat.String())

	rep, err := NewString("ab").MultedBy(NewInt(3))
	require.Nil(t, err)
	assert.Equal(t, "ababab", rep.String())
}

func TestList_AliasingAcrossAppend(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewInt(2)})
	bVal := a.Copy()
	b := bVal.(*List)

	appended, err := a.AddedTo(NewInt(3))
	require.Nil(t, err)
	a.SetItems(appended.(*List).Items())

	assert.Equal(t, 3, len(b.Items()), "APPEND through one alias must be visible via another")
}

func TestList_IndexOutOfBounds(t *testing.T) {
	l := NewList([]Value{NewInt(1)})
	_, err := l.DivedBy(NewInt(5))
	require.NotNil(t, err)
	assert.Equal(t, "Runtime Error", string(err.Kind))
}

func TestBuiltinFunction_ArityMismatch(t *testing.T) {
	fn := NewBuiltinFunction("LEN", 1, func(rt Runtime, args []Value) (Value, *diag.Diagnostic) {
		return NewInt(len(args)), nil
	})
	_, err := fn.Call(nil, nil)
	require.NotNil(t, err)
	assert.Contains(t, err.Detail, "too few")
}
