/*
File    : caretlang/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser is a hand-written recursive-descent parser with one
// token of lookahead and speculative backtracking via ParseResult. It is
// split, like the grammar it implements, into one file per production
// family: parser_literals.go (atom primitives), parser_precedence.go
// (power/factor/term/arith/comp/expr), parser_collections.go (list_expr),
// parser_conditionals.go (if_expr), parser_loops.go (for_expr/while_expr),
// parser_functions.go (func_def/call), parser_statements.go
// (statement/program).
package parser

import (
	"fmt"

	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/lexer"
)

// Parser walks a fixed token slice produced by the lexer.
type Parser struct {
	tokens     []lexer.Token
	tokenIndex int
	current    lexer.Token
}

// New constructs a Parser positioned at the first token.
func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens, tokenIndex: -1}
	p.Advance()
	return p
}

// Advance moves to the next token and returns it.
func (p *Parser) Advance() lexer.Token {
	p.tokenIndex++
	p.updateCurrentTok()
	return p.current
}

// Reverse rewinds the cursor by amount tokens (default 1), used by
// speculative productions that failed after consuming some input.
func (p *Parser) Reverse(amount int) lexer.Token {
	if amount == 0 {
		amount = 1
	}
	p.tokenIndex -= amount
	p.updateCurrentTok()
	return p.current
}

func (p *Parser) updateCurrentTok() {
	if p.tokenIndex >= 0 && p.tokenIndex < len(p.tokens) {
		p.current = p.tokens[p.tokenIndex]
	}
}

// Parse is the top-level entry point: it parses a program and requires
// the cursor to land exactly on EOF, else it reports a syntax error.
func (p *Parser) Parse() *ParseResult {
	res := NewParseResult()
	node := res.Register(p.program())
	if res.Error != nil {
		return res
	}
	if p.current.Type != lexer.EOF {
		return res.Failure(diag.New(diag.InvalidSyntax,
			"Token cannot appear after previous tokens",
			p.current.Start, p.current.End))
	}
	return res.Success(node)
}

func syntaxErr(tok lexer.Token, detail string) *diag.Diagnostic {
	return diag.New(diag.InvalidSyntax, detail, tok.Start, tok.End)
}

func fmtErr(tok lexer.Token, format string, args ...interface{}) *diag.Diagnostic {
	return syntaxErr(tok, fmt.Sprintf(format, args...))
}
