/*
File    : caretlang/parser/parser_collections.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/caretlang/lexer"

// list_expr := '[' (expr (',' expr)*)? ']'
func (p *Parser) listExpr() *ParseResult {
	res := NewParseResult()
	start := p.current.Start

	if p.current.Type != lexer.LSQUARE {
		return res.Failure(fmtErr(p.current, "Expected '['"))
	}
	res.RegisterAdvancement()
	p.Advance()

	var elements []Node

	if p.current.Type == lexer.RSQUARE {
		res.RegisterAdvancement()
		p.Advance()
	} else {
		el := res.Register(p.expr())
		if res.Error != nil {
			return res.Failure(fmtErr(p.current,
				"Expected ']', 'VAR', 'IF', 'FOR', 'WHILE', 'DEF', int, float, identifier, '+', '-', '(', '[' or 'NOT'"))
		}
		elements = append(elements, el)

		for p.current.Type == lexer.COMMA {
			res.RegisterAdvancement()
			p.Advance()
			el := res.Register(p.expr())
			if res.Error != nil {
				return res
			}
			elements = append(elements, el)
		}

		if p.current.Type != lexer.RSQUARE {
			return res.Failure(fmtErr(p.current, "Expected ',' or ']'"))
		}
		res.RegisterAdvancement()
		p.Advance()
	}

	return res.Success(&ListNode{span: span{start, p.current.Start}, Elements: elements})
}
