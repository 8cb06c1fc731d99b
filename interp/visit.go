/*
File    : caretlang/interp/visit.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/caretlang/env"
	"github.com/akashmaji946/caretlang/parser"
)

// visit dispatches node to its construct-specific visitor. Every case
// threads environment down and a RuntimeResult back up; no case may read
// a sub-visit's Value before checking ShouldReturn() first.
func (it *Interpreter) visit(node parser.Node, environment *env.Environment) *RuntimeResult {
	switch n := node.(type) {
	case *parser.NumberNode:
		return it.visitNumberNode(n, environment)
	case *parser.StringNode:
		return it.visitStringNode(n, environment)
	case *parser.ListNode:
		return it.visitListNode(n, environment)
	case *parser.VarAccessNode:
		return it.visitVarAccessNode(n, environment)
	case *parser.VarAssignNode:
		return it.visitVarAssignNode(n, environment)
	case *parser.BinOpNode:
		return it.visitBinOpNode(n, environment)
	case *parser.UnaryOpNode:
		return it.visitUnaryOpNode(n, environment)
	case *parser.IfNode:
		return it.visitIfNode(n, environment)
	case *parser.ForNode:
		return it.visitForNode(n, environment)
	case *parser.WhileNode:
		return it.visitWhileNode(n, environment)
	case *parser.FuncDefNode:
		return it.visitFuncDefNode(n, environment)
	case *parser.CallNode:
		return it.visitCallNode(n, environment)
	case *parser.ReturnNode:
		return it.visitReturnNode(n, environment)
	case *parser.ContinueNode:
		return NewRuntimeResult().SuccessContinue()
	case *parser.BreakNode:
		return NewRuntimeResult().SuccessBreak()
	default:
		panic(fmt.Sprintf("interp: no visit method for node type %T", node))
	}
}
