package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTokenBasic(t *testing.T) {
	l := NewLexer("x + 2*y^3 - f(a, b)!")
	want := []TokenType{
		IDENT, PLUS, NUMBER, ASTERISK, IDENT, CARET, NUMBER,
		MINUS, IDENT, LPAREN, IDENT, COMMA, IDENT, RPAREN, BANG, EOF,
	}
	for i, wt := range want {
		tok := l.NextToken()
		assert.Equalf(t, wt, tok.Type, "token %d: literal %q", i, tok.Literal)
	}
}

func TestNextTokenKeywordsAndSets(t *testing.T) {
	l := NewLexer("a and b or not c \\ {1, 2}")
	want := []TokenType{IDENT, AND, IDENT, OR, NOT, IDENT, BACKSLASH, LBRACE, NUMBER, COMMA, NUMBER, RBRACE, EOF}
	for i, wt := range want {
		tok := l.NextToken()
		assert.Equalf(t, wt, tok.Type, "token %d: literal %q", i, tok.Literal)
	}
}

func TestNextTokenAssignment(t *testing.T) {
	l := NewLexer("x = 3")
	want := []TokenType{IDENT, EQUALS, NUMBER, EOF}
	for i, wt := range want {
		tok := l.NextToken()
		assert.Equalf(t, wt, tok.Type, "token %d", i)
	}
}
