/*
File    : caretlang/interp/interp_access.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/caretlang/env"
	"github.com/akashmaji946/caretlang/parser"
	"github.com/akashmaji946/caretlang/values"
)

// isNullSingleton reports whether v is the NULL singleton itself (pointer
// identity with values.Null); other zero-valued Numbers, such as FALSE or
// a loop variable at 0, are ordinary values. VarAccess treats the
// singleton the same as an absent name — see visitVarAccessNode's doc
// comment.
func isNullSingleton(v values.Value) bool {
	n, ok := v.(*values.Number)
	return ok && n == values.Null
}

// visitVarAccessNode looks name up in environment, walking parents. An
// absent name and a name bound to the NULL singleton are indistinguishable
// here and both report "is not defined" — this mirrors the distilled
// behavior documented for this construct rather than a literal
// presence/absence check, since a bound NULL carries no information a
// caller could use differently from an unbound name anyway. See
// DESIGN.md's open-question entry for VarAccess.
func (it *Interpreter) visitVarAccessNode(n *parser.VarAccessNode, environment *env.Environment) *RuntimeResult {
	v, ok := environment.Get(n.Name)
	if !ok || isNullSingleton(v) {
		return it.runtimeErrorf(n.Start(), n.End(), "'%s' is not defined", n.Name)
	}
	v = v.Copy().SetPos(n.Start(), n.End()).SetContext(it.currentContext)
	return NewRuntimeResult().SuccessValue(v)
}

// visitVarAssignNode evaluates Value and writes it into environment's own
// table (never a parent's), then yields the assigned value.
func (it *Interpreter) visitVarAssignNode(n *parser.VarAssignNode, environment *env.Environment) *RuntimeResult {
	res := NewRuntimeResult()
	v := res.Register(it.visit(n.Value, environment))
	if res.ShouldReturn() {
		return res
	}
	environment.Set(n.Name, v)
	return res.SuccessValue(v)
}
