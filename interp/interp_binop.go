/*
File    : caretlang/interp/interp_binop.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/env"
	"github.com/akashmaji946/caretlang/lexer"
	"github.com/akashmaji946/caretlang/parser"
	"github.com/akashmaji946/caretlang/values"
)

// visitBinOpNode evaluates both operands left to right, then dispatches
// to the left operand's matching capability method.
func (it *Interpreter) visitBinOpNode(n *parser.BinOpNode, environment *env.Environment) *RuntimeResult {
	res := NewRuntimeResult()

	left := res.Register(it.visit(n.Left, environment))
	if res.ShouldReturn() {
		return res
	}
	right := res.Register(it.visit(n.Right, environment))
	if res.ShouldReturn() {
		return res
	}

	result, err := dispatchBinOp(left, n.Op, right)
	if err != nil {
		return res.Failure(it.withTrace(err))
	}
	return res.SuccessValue(result.SetPos(n.Start(), n.End()))
}

func dispatchBinOp(left values.Value, op lexer.Token, right values.Value) (values.Value, *diag.Diagnostic) {
	switch {
	case op.Type == lexer.SUM:
		return left.AddedTo(right)
	case op.Type == lexer.MINUS:
		return left.SubbedBy(right)
	case op.Type == lexer.MUL:
		return left.MultedBy(right)
	case op.Type == lexer.DIV:
		return left.DivedBy(right)
	case op.Type == lexer.POW:
		return left.PowedBy(right)
	case op.Type == lexer.EE:
		return left.ComparisonEq(right)
	case op.Type == lexer.NE:
		return left.ComparisonNe(right)
	case op.Type == lexer.LT:
		return left.ComparisonLt(right)
	case op.Type == lexer.GT:
		return left.ComparisonGt(right)
	case op.Type == lexer.LTE:
		return left.ComparisonLte(right)
	case op.Type == lexer.GTE:
		return left.ComparisonGte(right)
	case op.Matches(lexer.KEYWORD, "AND"):
		return left.AndedBy(right)
	case op.Matches(lexer.KEYWORD, "OR"):
		return left.OredBy(right)
	}
	return nil, diag.New(diag.RuntimeError, "Illegal operation", op.Start, op.End)
}

// visitUnaryOpNode handles unary +, -, and NOT; unary minus is
// implemented as multiplication by -1, matching the source interpreter.
func (it *Interpreter) visitUnaryOpNode(n *parser.UnaryOpNode, environment *env.Environment) *RuntimeResult {
	res := NewRuntimeResult()
	operand := res.Register(it.visit(n.Operand, environment))
	if res.ShouldReturn() {
		return res
	}

	var result values.Value
	var err *diag.Diagnostic
	switch {
	case n.Op.Type == lexer.MINUS:
		result, err = operand.MultedBy(values.NewInt(-1))
	case n.Op.Matches(lexer.KEYWORD, "NOT"):
		result, err = operand.Notted()
	default:
		result = operand
	}
	if err != nil {
		return res.Failure(it.withTrace(err))
	}
	return res.SuccessValue(result.SetPos(n.Start(), n.End()))
}
