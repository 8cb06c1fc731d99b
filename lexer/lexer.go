/*
File    : caretlang/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer turns source text into an ordered token stream: a single
// forward pass with one character of lookahead, no backtracking.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/position"
)

const digits = "0123456789"

func isLetter(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetterOrDigit(c byte) bool {
	return isLetter(c) || isDigit(c)
}

// Lexer holds the scanning cursor over one source file.
type Lexer struct {
	text        string
	pos         position.Position
	currentChar byte // 0 means "past end of input"
}

// New constructs a Lexer positioned just before the first character of
// text.
func New(fileName, text string) *Lexer {
	l := &Lexer{text: text, pos: position.New(fileName, text)}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	l.pos = l.pos.Advance(l.currentChar)
	if l.pos.Idx < len(l.text) {
		l.currentChar = l.text[l.pos.Idx]
	} else {
		l.currentChar = 0
	}
}

func (l *Lexer) atEnd() bool {
	return l.pos.Idx >= len(l.text)
}

// MakeTokens scans the entire source text and returns the resulting token
// stream (always terminated by EOF on success), or the first diagnostic
// encountered.
func (l *Lexer) MakeTokens() ([]Token, *diag.Diagnostic) {
	var tokens []Token

	for !l.atEnd() {
		c := l.currentChar

		switch {
		case c == ' ' || c == '\t':
			l.advance()

		case c == '#':
			l.skipComment()

		case c == '\n' || c == ';':
			start := l.pos
			l.advance()
			tokens = append(tokens, NewToken(NEWLINE, nil, start, nil))

		case isDigit(c) || c == '.':
			tok := l.makeNumber()
			tokens = append(tokens, tok)

		case isLetter(c):
			tokens = append(tokens, l.makeIdentifier())

		case c == '"':
			tok, err := l.makeString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case c == '+':
			start := l.pos
			l.advance()
			tokens = append(tokens, NewToken(SUM, nil, start, nil))

		case c == '-':
			tok := l.makeMinusOrArrow()
			tokens = append(tokens, tok)

		case c == '*':
			start := l.pos
			l.advance()
			tokens = append(tokens, NewToken(MUL, nil, start, nil))

		case c == '/':
			start := l.pos
			l.advance()
			tokens = append(tokens, NewToken(DIV, nil, start, nil))

		case c == '^':
			start := l.pos
			l.advance()
			tokens = append(tokens, NewToken(POW, nil, start, nil))

		case c == '(':
			start := l.pos
			l.advance()
			tokens = append(tokens, NewToken(LPAREN, nil, start, nil))

		case c == ')':
			start := l.pos
			l.advance()
			tokens = append(tokens, NewToken(RPAREN, nil, start, nil))

		case c == '[':
			start := l.pos
			l.advance()
			tokens = append(tokens, NewToken(LSQUARE, nil, start, nil))

		case c == ']':
			start := l.pos
			l.advance()
			tokens = append(tokens, NewToken(RSQUARE, nil, start, nil))

		case c == '!':
			tok, err := l.makeNotEquals()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case c == '=':
			tokens = append(tokens, l.makeEqualsFamily('=', EQ, EE))

		case c == '<':
			tokens = append(tokens, l.makeEqualsFamily('<', LT, LTE))

		case c == '>':
			tokens = append(tokens, l.makeEqualsFamily('>', GT, GTE))

		case c == ',':
			start := l.pos
			l.advance()
			tokens = append(tokens, NewToken(COMMA, nil, start, nil))

		default:
			start := l.pos
			ch := string(c)
			l.advance()
			return nil, diag.New(diag.IllegalCharacter, fmt.Sprintf("'%s'", ch), start, l.pos)
		}
	}

	tokens = append(tokens, NewToken(EOF, nil, l.pos, nil))
	return tokens, nil
}

// skipComment consumes a '#'-introduced line comment, including its
// terminating newline, without emitting a NEWLINE token. This is
// deliberate, bug-compatible behavior: comments eat their trailing
// newline, which can cause the statement after a comment to read as a
// continuation of the previous line.
func (l *Lexer) skipComment() {
	for !l.atEnd() && l.currentChar != '\n' {
		l.advance()
	}
	if !l.atEnd() {
		l.advance() // swallow the newline itself
	}
}

func (l *Lexer) makeNumber() Token {
	start := l.pos
	var numStr []byte
	dotCount := 0

	for !l.atEnd() && (isDigit(l.currentChar) || l.currentChar == '.') {
		if l.currentChar == '.' {
			if dotCount == 1 {
				break
			}
			dotCount++
		}
		numStr = append(numStr, l.currentChar)
		l.advance()
	}

	if dotCount == 0 {
		n, _ := strconv.Atoi(string(numStr))
		return NewToken(INT, n, start, &l.pos)
	}
	f, _ := strconv.ParseFloat(string(numStr), 64)
	return NewToken(FLOAT, f, start, &l.pos)
}

func (l *Lexer) makeIdentifier() Token {
	start := l.pos
	var idStr []byte
	for !l.atEnd() && isLetterOrDigit(l.currentChar) {
		idStr = append(idStr, l.currentChar)
		l.advance()
	}
	word := string(idStr)
	if Keywords[word] {
		return NewToken(KEYWORD, word, start, &l.pos)
	}
	return NewToken(IDENTIFIER, word, start, &l.pos)
}

func (l *Lexer) makeString() (Token, *diag.Diagnostic) {
	start := l.pos
	var out []byte
	l.advance() // opening quote

	escapeChars := map[byte]byte{'n': '\n', 't': '\t'}
	escaping := false

	for !l.atEnd() && (l.currentChar != '"' || escaping) {
		if escaping {
			if mapped, ok := escapeChars[l.currentChar]; ok {
				out = append(out, mapped)
			} else {
				out = append(out, l.currentChar)
			}
			escaping = false
		} else if l.currentChar == '\\' {
			escaping = true
		} else {
			out = append(out, l.currentChar)
		}
		l.advance()
	}

	l.advance() // closing quote
	return NewToken(STRING, string(out), start, &l.pos), nil
}

func (l *Lexer) makeMinusOrArrow() Token {
	start := l.pos
	typ := MINUS
	l.advance()
	if !l.atEnd() && l.currentChar == '>' {
		l.advance()
		typ = ARROW
	}
	return NewToken(typ, nil, start, &l.pos)
}

func (l *Lexer) makeNotEquals() (Token, *diag.Diagnostic) {
	start := l.pos
	l.advance()
	if !l.atEnd() && l.currentChar == '=' {
		l.advance()
		return NewToken(NE, nil, start, &l.pos), nil
	}
	l.advance()
	return Token{}, diag.New(diag.ExpectedCharacter, "'=' (after '!')", start, l.pos)
}

// makeEqualsFamily scans '=', '<', '>' which may each be followed by '='
// to upgrade to a two-character token (EE/LTE/GTE); bare is the one-char
// type, doubled is the two-char type.
func (l *Lexer) makeEqualsFamily(_ byte, bare, doubled TokenType) Token {
	start := l.pos
	typ := bare
	l.advance()
	if !l.atEnd() && l.currentChar == '=' {
		l.advance()
		typ = doubled
	}
	return NewToken(typ, nil, start, &l.pos)
}
