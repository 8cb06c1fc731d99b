/*
File    : caretlang/env/env.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package env is the name→value table every lookup and assignment goes
// through: a single map per scope with an optional parent link. There is
// no separate const/let bookkeeping and no shadow-vs-assign distinction —
// assignment always writes into the nearest table, and lookup walks
// parents on miss.
package env

import "github.com/akashmaji946/caretlang/values"

// Environment is one scope's variable table; Parent is a non-owning
// back-reference (the parent outlives the child by construction — a
// function call frame is created below its defining context and
// discarded when the call returns).
type Environment struct {
	vars   map[string]values.Value
	Parent *Environment
}

// New creates a scope whose parent is parent (nil for a global/root
// table).
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]values.Value), Parent: parent}
}

// Get walks the parent chain looking for name, returning (value, true) on
// a hit. This is bug-compatible with the source pipeline: a name bound to
// the NULL singleton is indistinguishable from an absent name to the
// caller that only checks the boolean (see VarAccess in the interpreter,
// which is where that conflation is actually observable) — Get itself
// reports presence accurately; it is VarAccess's equality-against-NULL
// check, not this method, that conflates the two. See DESIGN.md.
func (e *Environment) Get(name string) (values.Value, bool) {
	v, ok := e.vars[name]
	if ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Set writes name into this table only (never a parent's) — assignment
// always writes into the nearest table; there is no separate
// declare-vs-update path.
func (e *Environment) Set(name string, v values.Value) {
	e.vars[name] = v
}
