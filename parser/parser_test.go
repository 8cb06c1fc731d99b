/*
File    : caretlang/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/caretlang/lexer"
)

func mustParse(t *testing.T, src string) Node {
	t.Helper()
	l := lexer.New("<test>", src)
	toks, lexErr := l.MakeTokens()
	require.Nil(t, lexErr, "lex error for %q", src)
	res := New(toks).Parse()
	require.Nil(t, res.Error, "parse error for %q: %v", src, res.Error)
	return res.Node
}

func TestParse_SimpleArithmeticPrecedence(t *testing.T) {
	node := mustParse(t, "2 + 3 * 4")
	list := node.(*ListNode)
	require.Len(t, list.Elements, 1)
	bin := list.Elements[0].(*BinOpNode)
	assert.Equal(t, lexer.SUM, bin.Op.Type)
	_, ok := bin.Right.(*BinOpNode)
	assert.True(t, ok, "right side of + should itself be a BinOp (3 * 4)")
}

func TestParse_PowerIsRightAssociativeOverFactor(t *testing.T) {
	node := mustParse(t, "2 ^ 3 ^ 2")
	list := node.(*ListNode)
	bin := list.Elements[0].(*BinOpNode)
	assert.Equal(t, lexer.POW, bin.Op.Type)
	_, rightIsBinOp := bin.Right.(*BinOpNode)
	assert.True(t, rightIsBinOp)
}

func TestParse_VarAssign(t *testing.T) {
	node := mustParse(t, "VAR a = 5")
	list := node.(*ListNode)
	assign := list.Elements[0].(*VarAssignNode)
	assert.Equal(t, "a", assign.Name)
}

func TestParse_InlineIfIsExpression(t *testing.T) {
	node := mustParse(t, "IF 1 THEN 2 ELSE 3")
	list := node.(*ListNode)
	ifNode := list.Elements[0].(*IfNode)
	require.Len(t, ifNode.Cases, 1)
	assert.False(t, ifNode.Cases[0].ReturnsUnit)
	require.NotNil(t, ifNode.ElseCase)
	assert.False(t, ifNode.ElseCase.ReturnsUnit)
}

func TestParse_BlockIfCannotBeFollowedByElse(t *testing.T) {
	// Bug-compatible: once a block-form IF has consumed its own END, a
	// trailing ELSE is a syntax error, not a continuation of the chain.
	l := lexer.New("<test>", "IF 1 THEN\n2\nEND\nELSE\n3\nEND")
	toks, lexErr := l.MakeTokens()
	require.Nil(t, lexErr)
	res := New(toks).Parse()
	assert.NotNil(t, res.Error)
}

func TestParse_ForExprDefaultStep(t *testing.T) {
	node := mustParse(t, "FOR i = 0 TO 3 THEN i")
	list := node.(*ListNode)
	forNode := list.Elements[0].(*ForNode)
	assert.Equal(t, "i", forNode.VarName)
	assert.Nil(t, forNode.StepValue)
	assert.False(t, forNode.ReturnsUnit)
}

func TestParse_FuncDefAutoReturn(t *testing.T) {
	node := mustParse(t, "DEF add(a, b) -> a + b")
	list := node.(*ListNode)
	fn := list.Elements[0].(*FuncDefNode)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.ParamNames)
	assert.True(t, fn.AutoReturn)
}

func TestParse_CallExpression(t *testing.T) {
	node := mustParse(t, "f(1, 2)")
	list := node.(*ListNode)
	call := list.Elements[0].(*CallNode)
	assert.Len(t, call.Args, 2)
}

func TestParse_ReturnWithNoExpressionIsSpeculative(t *testing.T) {
	node := mustParse(t, "DEF f()\nRETURN\nEND")
	list := node.(*ListNode)
	fn := list.Elements[0].(*FuncDefNode)
	body := fn.Body.(*ListNode)
	ret := body.Elements[0].(*ReturnNode)
	assert.Nil(t, ret.Value)
}

func TestParse_TrailingGarbageIsSyntaxError(t *testing.T) {
	l := lexer.New("<test>", "1 2")
	toks, lexErr := l.MakeTokens()
	require.Nil(t, lexErr)
	res := New(toks).Parse()
	require.NotNil(t, res.Error)
	assert.Equal(t, "Invalid Syntax", string(res.Error.Kind))
}
