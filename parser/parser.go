package parser

import (
	"fmt"

	"github.com/mi66mc/pluto/diag"
	"github.com/mi66mc/pluto/lexer"
)

// ParseError is a syntax diagnostic with the byte offset of the offending
// token and the line/column derived from it.
type ParseError struct {
	Msg    string
	Pos    int
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Syntax error at line %d:%d: %s", e.Line, e.Column, e.Msg)
}

// Parser consumes the full token slice produced by the lexer. Holding the
// slice (rather than streaming tokens) makes the bounded lookahead for
// anonymous functions a matter of saving and restoring the cursor.
type Parser struct {
	tokens []lexer.Token
	src    string
	pos    int
}

// New creates a parser over the given source code.
func New(src string) *Parser {
	return &Parser{
		tokens: lexer.New(src).ConsumeTokens(),
		src:    src,
	}
}

// ParseProgram parses the whole token stream into a Program root, or
// returns a *ParseError describing the first syntax error.
func (p *Parser) ParseProgram() (*Program, error) {
	program := &Program{Statements: make([]StatementNode, 0)}
	for p.cur().Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, nil
}

// cur returns the token under the cursor. The slice always ends in EOF, so
// a clamped read is safe.
func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

// peek returns the token after the cursor.
func (p *Parser) peek() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

// advance moves the cursor one token forward.
func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

// match consumes the current token when it has the given type.
func (p *Parser) match(t lexer.TokenType) bool {
	if p.cur().Type == t {
		p.advance()
		return true
	}
	return false
}

// expect consumes and returns the current token when it has the given type,
// or fails with a syntax error.
func (p *Parser) expect(t lexer.TokenType, what string) (lexer.Token, error) {
	tok := p.cur()
	if tok.Type != t {
		return tok, p.errorf(tok, "expected %s, found '%s'", what, describe(tok))
	}
	p.advance()
	return tok, nil
}

// expectStatementEnd consumes the ';' terminating a statement. The
// semicolon may be omitted immediately before '}' or end of input, which
// keeps single-expression REPL submissions convenient.
func (p *Parser) expectStatementEnd() error {
	if p.match(lexer.SEMICOLON) {
		return nil
	}
	if p.cur().Type == lexer.RBRACE || p.cur().Type == lexer.EOF {
		return nil
	}
	return p.errorf(p.cur(), "expected ';', found '%s'", describe(p.cur()))
}

// errorf builds a ParseError anchored at tok.
func (p *Parser) errorf(tok lexer.Token, format string, a ...interface{}) *ParseError {
	line, col := diag.Position(p.src, tok.Pos)
	return &ParseError{
		Msg:    fmt.Sprintf(format, a...),
		Pos:    tok.Pos,
		Line:   line,
		Column: col,
	}
}

// describe renders a token for error messages.
func describe(tok lexer.Token) string {
	if tok.Type == lexer.EOF {
		return "end of input"
	}
	return tok.Literal
}
