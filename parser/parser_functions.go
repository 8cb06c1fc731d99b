/*
File    : caretlang/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/caretlang/lexer"

// func_def := DEF IDENTIFIER? '(' (IDENTIFIER (',' IDENTIFIER)*)? ')' (-> expr | NEWLINE program END)
func (p *Parser) funcDef() *ParseResult {
	res := NewParseResult()
	start := p.current.Start

	if !p.current.Matches(lexer.KEYWORD, "DEF") {
		return res.Failure(fmtErr(p.current, "Expected 'DEF'"))
	}
	res.RegisterAdvancement()
	p.Advance()

	var name string
	if p.current.Type == lexer.IDENTIFIER {
		name = p.current.Value.(string)
		res.RegisterAdvancement()
		p.Advance()
		if p.current.Type != lexer.LPAREN {
			return res.Failure(fmtErr(p.current, "Expected '('"))
		}
	} else {
		if p.current.Type != lexer.LPAREN {
			return res.Failure(fmtErr(p.current, "Expected identifier or '('"))
		}
	}
	res.RegisterAdvancement()
	p.Advance()

	var params []string
	if p.current.Type == lexer.IDENTIFIER {
		params = append(params, p.current.Value.(string))
		res.RegisterAdvancement()
		p.Advance()

		for p.current.Type == lexer.COMMA {
			res.RegisterAdvancement()
			p.Advance()
			if p.current.Type != lexer.IDENTIFIER {
				return res.Failure(fmtErr(p.current, "Expected identifier"))
			}
			params = append(params, p.current.Value.(string))
			res.RegisterAdvancement()
			p.Advance()
		}

		if p.current.Type != lexer.RPAREN {
			return res.Failure(fmtErr(p.current, "Expected ',' or ')'"))
		}
	} else {
		if p.current.Type != lexer.RPAREN {
			return res.Failure(fmtErr(p.current, "Expected identifier or ')'"))
		}
	}
	res.RegisterAdvancement()
	p.Advance()

	if p.current.Type == lexer.ARROW {
		res.RegisterAdvancement()
		p.Advance()
		body := res.Register(p.expr())
		if res.Error != nil {
			return res
		}
		return res.Success(&FuncDefNode{
			span: span{start, body.End()}, Name: name, ParamNames: params,
			Body: body, AutoReturn: true,
		})
	}

	if p.current.Type != lexer.NEWLINE {
		return res.Failure(fmtErr(p.current, "Expected '->' or NEWLINE"))
	}
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

	return res.Success(&FuncDefNode{
		span: span{start, end}, Name: name, ParamNames: params,
		Body: body, AutoReturn: false,
	})
}
