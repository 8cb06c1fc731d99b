/*
File    : caretlang/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/caretlang/lexer"

// program := NEWLINE* statement (NEWLINE+ statement)* NEWLINE*
//
// This is used both for the whole-file top level (via Parser.Parse) and
// for every block-form body (block IF/FOR/WHILE/DEF), since both stop at
// whatever keyword or EOF follows — statements() itself doesn't care, it
// just keeps trying for one more statement as long as at least one
// NEWLINE preceded it, speculatively rewinding when the next statement
// attempt fails to parse.
func (p *Parser) program() *ParseResult {
	return p.statements()
}

func (p *Parser) statements() *ParseResult {
	res := NewParseResult()
	var list []Node
	start := p.current.Start

	for p.current.Type == lexer.NEWLINE {
		res.RegisterAdvancement()
		p.Advance()
	}

	first := res.Register(p.statement())
	if res.Error != nil {
		return res
	}
	list = append(list, first)

	moreStatements := true
	for {
		newlineCount := 0
		for p.current.Type == lexer.NEWLINE {
			res.RegisterAdvancement()
			p.Advance()
			newlineCount++
		}
		if newlineCount == 0 {
			moreStatements = false
		}
		if !moreStatements {
			break
		}

		stmtRes := p.statement()
		stmt := res.TryRegister(stmtRes)
		if stmt == nil {
			if res.toReverseCount > 0 {
				p.Reverse(res.toReverseCount)
			}
			moreStatements = false
			continue
		}
		list = append(list, stmt)
	}

	return res.Success(&ListNode{span: span{start, p.current.End}, Elements: list})
}

// statement := 'RETURN' expr? | 'CONTINUE' | 'BREAK' | expr
func (p *Parser) statement() *ParseResult {
	res := NewParseResult()
	start := p.current.Start

	if p.current.Matches(lexer.KEYWORD, "RETURN") {
		res.RegisterAdvancement()
		p.Advance()

		exprRes := p.expr()
		value := res.TryRegister(exprRes)
		if value == nil && res.toReverseCount > 0 {
			p.Reverse(res.toReverseCount)
		}
		return res.Success(&ReturnNode{span: span{start, p.current.Start}, Value: value})
	}

	if p.current.Matches(lexer.KEYWORD, "CONTINUE") {
		res.RegisterAdvancement()
		p.Advance()
		return res.Success(&ContinueNode{span: span{start, p.current.Start}})
	}

	if p.current.Matches(lexer.KEYWORD, "BREAK") {
		res.RegisterAdvancement()
		p.Advance()
		return res.Success(&BreakNode{span: span{start, p.current.Start}})
	}

	node := res.Register(p.expr())
	if res.Error != nil {
		return res.Failure(fmtErr(p.current,
			"Expected 'RETURN', 'CONTINUE', 'BREAK', 'VAR', 'IF', 'FOR', 'WHILE', 'DEF', int, float, identifier, '+', '-', '(', '[' or 'NOT'"))
	}
	return res.Success(node)
}
