/*
File    : caretlang/interp/interp_control.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/caretlang/env"
	"github.com/akashmaji946/caretlang/parser"
	"github.com/akashmaji946/caretlang/values"
)

// visitReturnNode evaluates Value (when present) and sets the RETURN
// signal; a bare RETURN carries the null singleton.
func (it *Interpreter) visitReturnNode(n *parser.ReturnNode, environment *env.Environment) *RuntimeResult {
	res := NewRuntimeResult()

	if n.Value == nil {
		return res.SuccessReturn(values.Null)
	}
	v := res.Register(it.visit(n.Value, environment))
	if res.ShouldReturn() {
		return res
	}
	return res.SuccessReturn(v)
}
