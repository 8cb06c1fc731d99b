/*
File    : caretlang/env/env_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package env

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/caretlang/values"
)

func TestEnvironment_ParentLookup(t *testing.T) {
	parent := New(nil)
	parent.Set("x", values.NewInt(1))
	child := New(parent)

	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, "1", v.String())
}

func TestEnvironment_AssignWritesNearestTable(t *testing.T) {
	parent := New(nil)
	parent.Set("x", values.NewInt(1))
	child := New(parent)

	child.Set("x", values.NewInt(2))

	childVal, _ := child.Get("x")
	parentVal, _ := parent.Get("x")
	assert.Equal(t, "2", childVal.String())
	assert.Equal(t, "1", parentVal.String(), "Set only writes the child's own table")
}

func TestEnvironment_MissReturnsFalse(t *testing.T) {
	e := New(nil)
	_, ok := e.Get("missing")
	assert.False(t, ok)
}
