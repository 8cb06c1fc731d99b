/*
File    : caretlang/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/caretlang/lexer"
	"github.com/akashmaji946/caretlang/position"
)

// Node is the common interface every AST variant satisfies: a source span
// for diagnostics.
type Node interface {
	Start() position.Position
	End() position.Position
}

// span is embedded in every node to provide Start()/End() without
// repeating the two fields and their accessors on each variant.
type span struct {
	StartPos position.Position
	EndPos   position.Position
}

func (s span) Start() position.Position { return s.StartPos }
func (s span) End() position.Position   { return s.EndPos }

// NumberNode is a single INT or FLOAT literal.
type NumberNode struct {
	span
	Tok lexer.Token
}

// StringNode is a single STRING literal (already escape-processed by the
// lexer).
type StringNode struct {
	span
	Tok lexer.Token
}

// ListNode is a `[elem, elem, ...]` literal; Elements is evaluated left to
// right.
type ListNode struct {
	span
	Elements []Node
}

// VarAccessNode looks up Name in the current environment.
type VarAccessNode struct {
	span
	Name string
}

// VarAssignNode evaluates Value and writes it to Name in the current
// environment's own table.
type VarAssignNode struct {
	span
	Name  string
	Value Node
}

// BinOpNode applies Op to Left and Right.
type BinOpNode struct {
	span
	Left  Node
	Op    lexer.Token
	Right Node
}

// UnaryOpNode applies Op to Operand (unary +, -, or NOT).
type UnaryOpNode struct {
	span
	Op      lexer.Token
	Operand Node
}

// IfCase is one `cond THEN body` arm of an if-chain.
type IfCase struct {
	Cond        Node
	Body        Node
	ReturnsUnit bool
}

// IfNode is the full if/elif/.../else chain; ElseCase is nil when absent.
type IfNode struct {
	span
	Cases    []IfCase
	ElseCase *IfCase
}

// ForNode is `FOR Name = Start TO End (STEP Step)? THEN Body`.
type ForNode struct {
	span
	VarName     string
	StartValue  Node
	EndValue    Node
	StepValue   Node // nil when omitted (defaults to 1 at eval time)
	Body        Node
	ReturnsUnit bool
}

// WhileNode is `WHILE Cond THEN Body`.
type WhileNode struct {
	span
	Cond        Node
	Body        Node
	ReturnsUnit bool
}

// FuncDefNode is `DEF name? (params) (-> expr | NEWLINE program END)`.
type FuncDefNode struct {
	span
	Name       string // "" when anonymous
	ParamNames []string
	Body       Node
	AutoReturn bool
}

// CallNode is `Callee(args...)`.
type CallNode struct {
	span
	Callee Node
	Args   []Node
}

// ReturnNode is `RETURN expr?`; Value is nil when omitted.
type ReturnNode struct {
	span
	Value Node
}

// ContinueNode is a bare `CONTINUE`.
type ContinueNode struct{ span }

// BreakNode is a bare `BREAK`.
type BreakNode struct{ span }
