/*
File    : caretlang/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/caretlang/lexer"

// call := atom ('(' (expr (',' expr)*)? ')')?
func (p *Parser) call() *ParseResult {
	res := NewParseResult()
	atom := res.Register(p.atom())
	if res.Error != nil {
		return res
	}

	if p.current.Type != lexer.LPAREN {
		return res.Success(atom)
	}

	start := atom.Start()
	res.RegisterAdvancement()
	p.Advance()
	var args []Node

	if p.current.Type == lexer.RPAREN {
		res.RegisterAdvancement()
		p.Advance()
	} else {
		arg := res.Register(p.expr())
		if res.Error != nil {
			return res.Failure(fmtErr(p.current,
				"Expected ')', 'VAR', 'IF', 'FOR', 'WHILE', 'DEF', int, float, identifier, '+', '-', '(', '[' or 'NOT'"))
		}
		args = append(args, arg)

		for p.current.Type == lexer.COMMA {
			res.RegisterAdvancement()
			p.Advance()
			arg := res.Register(p.expr())
			if res.Error != nil {
				return res
			}
			args = append(args, arg)
		}

		if p.current.Type != lexer.RPAREN {
			return res.Failure(fmtErr(p.current, "Expected ',' or ')'"))
		}
		res.RegisterAdvancement()
		p.Advance()
	}

	return res.Success(&CallNode{span: span{start, p.current.Start}, Callee: atom, Args: args})
}

// power := call ('^' factor)*
func (p *Parser) power() *ParseResult {
	return p.binOp(p.call, []lexer.TokenType{lexer.POW}, p.factor)
}

// factor := ('+'|'-') factor | power
func (p *Parser) factor() *ParseResult {
	res := NewParseResult()
	tok := p.current

	if tok.Type == lexer.SUM || tok.Type == lexer.MINUS {
		res.RegisterAdvancement()
		p.Advance()
		operand := res.Register(p.factor())
		if res.Error != nil {
			return res
		}
		return res.Success(&UnaryOpNode{span: span{tok.Start, operand.End()}, Op: tok, Operand: operand})
	}

	return p.power()
}

// term := factor (('*'|'/') factor)*
func (p *Parser) term() *ParseResult {
	return p.binOp(p.factor, []lexer.TokenType{lexer.MUL, lexer.DIV}, nil)
}

// arith := term (('+'|'-') term)*
func (p *Parser) arith() *ParseResult {
	return p.binOp(p.term, []lexer.TokenType{lexer.SUM, lexer.MINUS}, nil)
}

// comp := 'NOT' comp | arith (('=='|'!='|'<'|'>'|'<='|'>=') arith)*
func (p *Parser) comp() *ParseResult {
	res := NewParseResult()

	if p.current.Matches(lexer.KEYWORD, "NOT") {
		opTok := p.current
		res.RegisterAdvancement()
		p.Advance()
		operand := res.Register(p.comp())
		if res.Error != nil {
			return res
		}
		return res.Success(&UnaryOpNode{span: span{opTok.Start, operand.End()}, Op: opTok, Operand: operand})
	}

	node := res.Register(p.binOp(p.arith, []lexer.TokenType{lexer.EE, lexer.NE, lexer.LT, lexer.GT, lexer.LTE, lexer.GTE}, nil))
	if res.Error != nil {
		return res.Failure(fmtErr(p.current,
			"Expected int, float, identifier, '+', '-', '(', '[', 'NOT'"))
	}
	return res.Success(node)
}

// expr := 'VAR' IDENT '=' expr | comp (('AND'|'OR') comp)*
func (p *Parser) expr() *ParseResult {
	res := NewParseResult()

	if p.current.Matches(lexer.KEYWORD, "VAR") {
		start := p.current.Start
		res.RegisterAdvancement()
		p.Advance()

		if p.current.Type != lexer.IDENTIFIER {
			return res.Failure(fmtErr(p.current, "Expected identifier"))
		}
		name := p.current.Value.(string)
		res.RegisterAdvancement()
		p.Advance()

		if p.current.Type != lexer.EQ {
			return res.Failure(fmtErr(p.current, "Expected '='"))
		}
		res.RegisterAdvancement()
		p.Advance()

		value := res.Register(p.expr())
		if res.Error != nil {
			return res
		}
		return res.Success(&VarAssignNode{span: span{start, value.End()}, Name: name, Value: value})
	}

	node := res.Register(p.binOpKeyword(p.comp, []string{"AND", "OR"}))
	if res.Error != nil {
		return res.Failure(fmtErr(p.current,
			"Expected 'VAR', int, float, identifier, '+', '-', '(', '[' or 'NOT'"))
	}
	return res.Success(node)
}

// binOp implements the left-associative `sub (OP sub2)*` pattern shared
// by power/term/arith/comp, where the right-hand side production may
// differ from the left (power's right side is factor, not power).
func (p *Parser) binOp(sub func() *ParseResult, ops []lexer.TokenType, subRight func() *ParseResult) *ParseResult {
	if subRight == nil {
		subRight = sub
	}
	res := NewParseResult()
	left := res.Register(sub())
	if res.Error != nil {
		return res
	}

	for containsType(ops, p.current.Type) {
		opTok := p.current
		res.RegisterAdvancement()
		p.Advance()
		right := res.Register(subRight())
		if res.Error != nil {
			return res
		}
		left = &BinOpNode{span: span{left.Start(), right.End()}, Left: left, Op: opTok, Right: right}
	}

	return res.Success(left)
}

// binOpKeyword is binOp's sibling for keyword operators (AND/OR).
func (p *Parser) binOpKeyword(sub func() *ParseResult, keywords []string) *ParseResult {
	res := NewParseResult()
	left := res.Register(sub())
	if res.Error != nil {
		return res
	}

	for containsKeyword(keywords, p.current) {
		opTok := p.current
		res.RegisterAdvancement()
		p.Advance()
		right := res.Register(sub())
		if res.Error != nil {
			return res
		}
		left = &BinOpNode{span: span{left.Start(), right.End()}, Left: left, Op: opTok, Right: right}
	}

	return res.Success(left)
}

func containsType(ops []lexer.TokenType, t lexer.TokenType) bool {
	for _, o := range ops {
		if o == t {
			return true
		}
	}
	return false
}

func containsKeyword(keywords []string, tok lexer.Token) bool {
	for _, k := range keywords {
		if tok.Matches(lexer.KEYWORD, k) {
			return true
		}
	}
	return false
}
