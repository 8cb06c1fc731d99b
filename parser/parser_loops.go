/*
File    : caretlang/parser/parser_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/caretlang/lexer"

// for_expr := FOR IDENT '=' expr TO expr ('STEP' expr)? THEN body
func (p *Parser) forExpr() *ParseResult {
	res := NewParseResult()
	start := p.current.Start

	if !p.current.Matches(lexer.KEYWORD, "FOR") {
		return res.Failure(fmtErr(p.current, "Expected 'FOR'"))
	}
	res.RegisterAdvancement()
	p.Advance()

	if p.current.Type != lexer.IDENTIFIER {
		return res.Failure(fmtErr(p.current, "Expected identifier"))
	}
	varName := p.current.Value.(string)
	res.RegisterAdvancement()
	p.Advance()

	if p.current.Type != lexer.EQ {
		return res.Failure(fmtErr(p.current, "Expected '='"))
	}
	res.RegisterAdvancement()
	p.Advance()

	startValue := res.Register(p.expr())
	if res.Error != nil {
		return res
	}

	if !p.current.Matches(lexer.KEYWORD, "TO") {
		return res.Failure(fmtErr(p.current, "Expected 'TO'"))
	}
	res.RegisterAdvancement()
	p.Advance()

	endValue := res.Register(p.expr())
	if res.Error != nil {
		return res
	}

	var stepValue Node
	if p.current.Matches(lexer.KEYWORD, "STEP") {
		res.RegisterAdvancement()
		p.Advance()
		stepValue = res.Register(p.expr())
		if res.Error != nil {
			return res
		}
	}

	if !p.current.Matches(lexer.KEYWORD, "THEN") {
		return res.Failure(fmtErr(p.current, "Expected 'THEN'"))
	}
	res.RegisterAdvancement()
	p.Advance()

	if p.current.Type == lexer.NEWLINE {
		res.RegisterAdvancement()
		p.Advance()

		body := res.Register(p.statements())
		if res.Error != nil {
			return res
		}
		if !p.current.Matches(lexer.KEYWORD, "END") {
			return res.Failure(fmtErr(p.current, "Expected 'END'"))
		}
		end := p.current.End
		res.RegisterAdvancement()
		p.Advance()
		return res.Success(&ForNode{
			span: span{start, end}, VarName: varName, StartValue: startValue,
			EndValue: endValue, StepValue: stepValue, Body: body, ReturnsUnit: true,
		})
	}

	body := res.Register(p.statement())
	if res.Error != nil {
		return res
	}
	return res.Success(&ForNode{
		span: span{start, body.End()}, VarName: varName, StartValue: startValue,
		EndValue: endValue, StepValue: stepValue, Body: body, ReturnsUnit: false,
	})
}

// while_expr := WHILE expr THEN body
func (p *Parser) whileExpr() *ParseResult {
	res := NewParseResult()
	start := p.current.Start

	if !p.current.Matches(lexer.KEYWORD, "WHILE") {
		return res.Failure(fmtErr(p.current, "Expected 'WHILE'"))
	}
	res.RegisterAdvancement()
	p.Advance()

	cond := res.Register(p.expr())
	if res.Error != nil {
		return res
	}

	if !p.current.Matches(lexer.KEYWORD, "THEN") {
		return res.Failure(fmtErr(p.current, "Expected 'THEN'"))
	}
	res.RegisterAdvancement()
	p.Advance()

	if p.current.Type == lexer.NEWLINE {
		res.RegisterAdvancement()
		p.Advance()

		body := res.Register(p.statements())
		if res.Error != nil {
			return res
		}
		if !p.current.Matches(lexer.KEYWORD, "END") {
			return res.Failure(fmtErr(p.current, "Expected 'END'"))
		}
		end := p.current.End
		res.RegisterAdvancement()
		p.Advance()
		return res.Success(&WhileNode{span: span{start, end}, Cond: cond, Body: body, ReturnsUnit: true})
	}

	body := res.Register(p.statement())
	if res.Error != nil {
		return res
	}
	return res.Success(&WhileNode{span: span{start, body.End()}, Cond: cond, Body: body, ReturnsUnit: false})
}
