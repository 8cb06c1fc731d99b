/*
File    : caretlang/builtins/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtins is the fixed host-function library bound into every
// global environment: one BuiltinFunction per name, each declaring its
// own arity and callback, registered one file per concern via init() into
// a shared registry at package load.
package builtins

import (
	"github.com/akashmaji946/caretlang/env"
	"github.com/akashmaji946/caretlang/values"
)

// all accumulates every declared builtin; each concern file's init()
// appends to it.
var all []*values.BuiltinFunction

func register(name string, arity int, cb values.CallbackFunc) {
	all = append(all, values.NewBuiltinFunction(name, arity, cb))
}

// Register binds every declared builtin into e by name.
func Register(e *env.Environment) {
	for _, b := range all {
		e.Set(b.Name, b)
	}
}
