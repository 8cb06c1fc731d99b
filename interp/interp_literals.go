/*
File    : caretlang/interp/interp_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/caretlang/env"
	"github.com/akashmaji946/caretlang/lexer"
	"github.com/akashmaji946/caretlang/parser"
	"github.com/akashmaji946/caretlang/values"
)

func (it *Interpreter) visitNumberNode(n *parser.NumberNode, environment *env.Environment) *RuntimeResult {
	var num *values.Number
	if n.Tok.Type == lexer.INT {
		num = values.NewInt(n.Tok.Value.(int))
	} else {
		num = values.NewFloat(n.Tok.Value.(float64))
	}
	v := num.SetContext(it.currentContext).SetPos(n.Start(), n.End())
	return NewRuntimeResult().SuccessValue(v)
}

func (it *Interpreter) visitStringNode(n *parser.StringNode, environment *env.Environment) *RuntimeResult {
	v := values.NewString(n.Tok.Value.(string)).SetContext(it.currentContext).SetPos(n.Start(), n.End())
	return NewRuntimeResult().SuccessValue(v)
}

func (it *Interpreter) visitListNode(n *parser.ListNode, environment *env.Environment) *RuntimeResult {
	res := NewRuntimeResult()
	items := make([]values.Value, 0, len(n.Elements))
	for _, elem := range n.Elements {
		v := res.Register(it.visit(elem, environment))
		if res.ShouldReturn() {
			return res
		}
		items = append(items, v)
	}
	list := values.NewList(items).SetContext(it.currentContext).SetPos(n.Start(), n.End())
	return res.SuccessValue(list)
}
