/*
File    : caretlang/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	Input    string
	Expected []TokenType
}

func TestMakeTokens_Basic(t *testing.T) {
	tests := []tokenCase{
		{
			Input:    "1 + 2 * 3",
			Expected: []TokenType{INT, SUM, INT, MUL, INT, EOF},
		},
		{
			Input:    `VAR a = "hi"`,
			Expected: []TokenType{KEYWORD, IDENTIFIER, EQ, STRING, EOF},
		},
		{
			Input:    "IF x > 1 THEN y",
			Expected: []TokenType{KEYWORD, IDENTIFIER, GT, INT, KEYWORD, IDENTIFIER, EOF},
		},
		{
			Input:    "a != b",
			Expected: []TokenType{IDENTIFIER, NE, IDENTIFIER, EOF},
		},
		{
			Input:    "a <= b >= c == d",
			Expected: []TokenType{IDENTIFIER, LTE, IDENTIFIER, GTE, IDENTIFIER, EE, IDENTIFIER, EOF},
		},
		{
			Input:    "x -> y",
			Expected: []TokenType{IDENTIFIER, ARROW, IDENTIFIER, EOF},
		},
		{
			Input:    "[1, 2]",
			Expected: []TokenType{LSQUARE, INT, COMMA, INT, RSQUARE, EOF},
		},
	}

	for _, tc := range tests {
		l := New("<test>", tc.Input)
		toks, err := l.MakeTokens()
		require.Nil(t, err, "input %q", tc.Input)
		require.Len(t, toks, len(tc.Expected), "input %q", tc.Input)
		for i, want := range tc.Expected {
			assert.Equal(t, want, toks[i].Type, "input %q token %d", tc.Input, i)
		}
	}
}

func TestMakeTokens_CommentEatsNewline(t *testing.T) {
	// Bug-compatible with the source pipeline: the comment swallows its
	// trailing newline, so no NEWLINE token is emitted between the two
	// statements.
	l := New("<test>", "1 # a comment\n2")
	toks, err := l.MakeTokens()
	require.Nil(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, INT, toks[0].Type)
	assert.Equal(t, INT, toks[1].Type)
	assert.Equal(t, EOF, toks[2].Type)
}

func TestMakeTokens_StringEscapes(t *testing.T) {
	l := New("<test>", `"a\nb\t\"c\\d"`)
	toks, err := l.MakeTokens()
	require.Nil(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "a\nb\t\"c\\d", toks[0].Value)
}

func TestMakeTokens_IllegalCharacter(t *testing.T) {
	l := New("<test>", "1 $ 2")
	_, err := l.MakeTokens()
	require.NotNil(t, err)
	assert.Equal(t, "Illegal Character", string(err.Kind))
}

func TestMakeTokens_ExpectedCharacterAfterBang(t *testing.T) {
	l := New("<test>", "1 ! 2")
	_, err := l.MakeTokens()
	require.NotNil(t, err)
	assert.Equal(t, "Expected Character", string(err.Kind))
}

func TestMakeTokens_FloatWithNoTrailingDigit(t *testing.T) {
	l := New("<test>", "5.")
	toks, err := l.MakeTokens()
	require.Nil(t, err)
	require.Equal(t, FLOAT, toks[0].Type)
	assert.Equal(t, 5.0, toks[0].Value)
}
