package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kindsOf reduces a token slice to its types for compact comparisons.
func kindsOf(tokens []Token) []TokenType {
	kinds := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Type
	}
	return kinds
}

func TestLexer_Operators(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenType
	}{
		{`+ - * / %`, []TokenType{PLUS, MINUS, STAR, SLASH, PERCENT, EOF}},
		{`== != <= >= < >`, []TokenType{EQ, NOT_EQ, LE, GE, LT, GT, EOF}},
		{`&& || !`, []TokenType{AND, OR, BANG, EOF}},
		{`++ -- += -= *= /=`, []TokenType{INC, DEC, PLUS_ASSIGN, MINUS_ASSIGN, STAR_ASSIGN, SLASH_ASSIGN, EOF}},
		{`-> => ? :`, []TokenType{ARROW, FAT_ARROW, QUESTION, COLON, EOF}},
		{`.. ..= .`, []TokenType{RANGE, RANGE_INC, DOT, EOF}},
		{`( ) { } [ ] , ;`, []TokenType{LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, COMMA, SEMICOLON, EOF}},
		{`= =`, []TokenType{ASSIGN, ASSIGN, EOF}},
	}
	for _, tt := range tests {
		tokens := New(tt.input).ConsumeTokens()
		assert.Equal(t, tt.expected, kindsOf(tokens), "input: %s", tt.input)
	}
}

func TestLexer_NumbersAndRanges(t *testing.T) {
	tokens := New(`1..10`).ConsumeTokens()
	require.Len(t, tokens, 4)
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, "1", tokens[0].Literal)
	assert.Equal(t, RANGE, tokens[1].Type)
	assert.Equal(t, NUMBER, tokens[2].Type)
	assert.Equal(t, "10", tokens[2].Literal)

	tokens = New(`1..=10`).ConsumeTokens()
	require.Len(t, tokens, 4)
	assert.Equal(t, RANGE_INC, tokens[1].Type)

	// A float consumes its dot only when a digit follows.
	tokens = New(`3.14`).ConsumeTokens()
	require.Len(t, tokens, 2)
	assert.Equal(t, FLOAT, tokens[0].Type)
	assert.Equal(t, "3.14", tokens[0].Literal)

	// A bare trailing dot stays a separate token.
	tokens = New(`1.`).ConsumeTokens()
	require.Len(t, tokens, 3)
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, DOT, tokens[1].Type)

	// Method call on a number literal.
	tokens = New(`5.to_string()`).ConsumeTokens()
	assert.Equal(t, []TokenType{NUMBER, DOT, IDENT, LPAREN, RPAREN, EOF}, kindsOf(tokens))
}

func TestLexer_Strings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"a\\b"`, `a\b`},
		{`"say \"hi\""`, `say "hi"`},
		// Unknown escapes keep the backslash literally.
		{`"a\qb"`, `a\qb`},
		{`""`, ""},
	}
	for _, tt := range tests {
		tokens := New(tt.input).ConsumeTokens()
		require.Len(t, tokens, 2, "input: %s", tt.input)
		assert.Equal(t, STRING, tokens[0].Type)
		assert.Equal(t, tt.expected, tokens[0].Literal, "input: %s", tt.input)
	}
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	tokens := New(`let const fn while for break continue return if else match true false null`).ConsumeTokens()
	expected := []TokenType{LET, CONST, FN, WHILE, FOR, BREAK, CONTINUE, RETURN, IF, ELSE, MATCH, TRUE, FALSE, NULL, EOF}
	assert.Equal(t, expected, kindsOf(tokens))

	tokens = New(`foo _bar baz42 _`).ConsumeTokens()
	assert.Equal(t, []TokenType{IDENT, IDENT, IDENT, UNDERSCORE, EOF}, kindsOf(tokens))
}

func TestLexer_Comments(t *testing.T) {
	tokens := New("1 /* comment */ 2").ConsumeTokens()
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, kindsOf(tokens))

	// Unterminated comment runs to end of input.
	tokens = New("1 /* never closed").ConsumeTokens()
	assert.Equal(t, []TokenType{NUMBER, EOF}, kindsOf(tokens))

	// Comments spanning lines.
	tokens = New("a /* x\ny\nz */ b").ConsumeTokens()
	assert.Equal(t, []TokenType{IDENT, IDENT, EOF}, kindsOf(tokens))
}

func TestLexer_IllegalCharacters(t *testing.T) {
	tokens := New(`1 @ 2`).ConsumeTokens()
	assert.Equal(t, []TokenType{NUMBER, ILLEGAL, NUMBER, EOF}, kindsOf(tokens))
	assert.Equal(t, "@", tokens[1].Literal)

	// Lone '&' and '|' are not operators.
	tokens = New(`a & b | c`).ConsumeTokens()
	assert.Equal(t, []TokenType{IDENT, ILLEGAL, IDENT, ILLEGAL, IDENT, EOF}, kindsOf(tokens))
}

// TestLexer_Invariants covers the stream-shape guarantees: at least one
// token, EOF last with position equal to the source length, and positions
// monotonically non-decreasing.
func TestLexer_Invariants(t *testing.T) {
	inputs := []string{
		"",
		"let x = 5;",
		`fn f(a, b = 2) { return a + b; }`,
		"\"unterminated",
		"@@@@",
		"/* only a comment */",
	}
	for _, input := range inputs {
		tokens := New(input).ConsumeTokens()
		require.GreaterOrEqual(t, len(tokens), 1, "input: %q", input)
		last := tokens[len(tokens)-1]
		assert.Equal(t, EOF, last.Type, "input: %q", input)
		assert.Equal(t, len(input), last.Pos, "input: %q", input)
		prev := 0
		for _, tok := range tokens {
			assert.GreaterOrEqual(t, tok.Pos, prev, "input: %q", input)
			assert.LessOrEqual(t, tok.Pos, len(input), "input: %q", input)
			prev = tok.Pos
		}
	}
}
