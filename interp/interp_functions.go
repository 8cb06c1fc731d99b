/*
File    : caretlang/interp/interp_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/caretlang/env"
	"github.com/akashmaji946/caretlang/parser"
	"github.com/akashmaji946/caretlang/values"
)

// visitFuncDefNode constructs a UserFunction capturing the current
// environment as its lexical closure; a named definition also binds
// itself into that environment so it can recurse.
func (it *Interpreter) visitFuncDefNode(n *parser.FuncDefNode, environment *env.Environment) *RuntimeResult {
	fn := values.NewUserFunction(n.Name, n.ParamNames, n.Body, n.AutoReturn, environment).
		SetContext(it.currentContext).SetPos(n.Start(), n.End())

	if n.Name != "" {
		environment.Set(n.Name, fn)
	}
	return NewRuntimeResult().SuccessValue(fn)
}

// visitCallNode evaluates the callee, then each argument left to right,
// then invokes the callee's Call method. A non-callable callee fails with
// "Illegal operation" via its own Call implementation.
func (it *Interpreter) visitCallNode(n *parser.CallNode, environment *env.Environment) *RuntimeResult {
	res := NewRuntimeResult()

	callee := res.Register(it.visit(n.Callee, environment))
	if res.ShouldReturn() {
		return res
	}
	callee = callee.Copy().SetPos(n.Start(), n.End())

	args := make([]values.Value, 0, len(n.Args))
	for _, argNode := range n.Args {
		argVal := res.Register(it.visit(argNode, environment))
		if res.ShouldReturn() {
			return res
		}
		args = append(args, argVal)
	}

	result, err := callee.Call(args, it)
	if err != nil {
		return res.Failure(it.withTrace(err))
	}
	return res.SuccessValue(result.Copy().SetPos(n.Start(), n.End()).SetContext(it.currentContext))
}
