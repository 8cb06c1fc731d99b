/*
File    : caretlang/parser/parser_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/caretlang/lexer"

// atom := INT | FLOAT | STRING | IDENTIFIER
//       | '(' expr ')'
//       | list_expr
//       | if_expr | for_expr | while_expr | func_def
func (p *Parser) atom() *ParseResult {
	res := NewParseResult()
	tok := p.current

	switch {
	case tok.Type == lexer.INT || tok.Type == lexer.FLOAT:
		res.RegisterAdvancement()
		p.Advance()
		return res.Success(&NumberNode{span: span{tok.Start, tok.End}, Tok: tok})

	case tok.Type == lexer.STRING:
		res.RegisterAdvancement()
		p.Advance()
		return res.Success(&StringNode{span: span{tok.Start, tok.End}, Tok: tok})

	case tok.Type == lexer.IDENTIFIER:
		res.RegisterAdvancement()
		p.Advance()
		return res.Success(&VarAccessNode{span: span{tok.Start, tok.End}, Name: tok.Value.(string)})

	case tok.Type == lexer.LPAREN:
		res.RegisterAdvancement()
		p.Advance()
		expr := res.Register(p.expr())
		if res.Error != nil {
			return res
		}
		if p.current.Type != lexer.RPAREN {
			return res.Failure(fmtErr(p.current, "Expected ')'"))
		}
		res.RegisterAdvancement()
		p.Advance()
		return res.Success(expr)

	case tok.Type == lexer.LSQUARE:
		listExpr := res.Register(p.listExpr())
		if res.Error != nil {
			return res
		}
		return res.Success(listExpr)

	case tok.Matches(lexer.KEYWORD, "IF"):
		ifExpr := res.Register(p.ifExpr())
		if res.Error != nil {
			return res
		}
		return res.Success(ifExpr)

	case tok.Matches(lexer.KEYWORD, "FOR"):
		forExpr := res.Register(p.forExpr())
		if res.Error != nil {
			return res
		}
		return res.Success(forExpr)

	case tok.Matches(lexer.KEYWORD, "WHILE"):
		whileExpr := res.Register(p.whileExpr())
		if res.Error != nil {
			return res
		}
		return res.Success(whileExpr)

	case tok.Matches(lexer.KEYWORD, "DEF"):
		funcDef := res.Register(p.funcDef())
		if res.Error != nil {
			return res
		}
		return res.Success(funcDef)
	}

	return res.Failure(fmtErr(tok,
		"Expected int, float, identifier, '+', '-', '(', '[', 'IF', 'FOR', 'WHILE', 'DEF'"))
}
