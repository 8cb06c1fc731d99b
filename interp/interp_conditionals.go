/*
File    : caretlang/interp/interp_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/caretlang/env"
	"github.com/akashmaji946/caretlang/parser"
	"github.com/akashmaji946/caretlang/values"
)

// visitIfNode evaluates cases in order; the first truthy condition's body
// is evaluated and becomes the result (or the null singleton, for a
// block-form case). Falling off every case without a matching ELSE also
// yields null.
func (it *Interpreter) visitIfNode(n *parser.IfNode, environment *env.Environment) *RuntimeResult {
	res := NewRuntimeResult()

	for _, c := range n.Cases {
		cond := res.Register(it.visit(c.Cond, environment))
		if res.ShouldReturn() {
			return res
		}
		if !cond.IsTrue() {
			continue
		}
		body := res.Register(it.visit(c.Body, environment))
		if res.ShouldReturn() {
			return res
		}
		if c.ReturnsUnit {
			return res.SuccessValue(values.Null)
		}
		return res.SuccessValue(body)
	}

	if n.ElseCase != nil {
		body := res.Register(it.visit(n.ElseCase.Body, environment))
		if res.ShouldReturn() {
			return res
		}
		if n.ElseCase.ReturnsUnit {
			return res.SuccessValue(values.Null)
		}
		return res.SuccessValue(body)
	}

	return res.SuccessValue(values.Null)
}
