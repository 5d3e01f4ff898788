package parser

import "github.com/mi66mc/pluto/lexer"

// parseAnonymousFunction attempts to parse `( params ) -> body` starting at
// a '(' token. It performs a bounded lookahead over the parameter list: if
// the shape does not match (or no '->' follows the ')'), the cursor is
// restored and handled is false so the caller treats the '(' as grouping.
func (p *Parser) parseAnonymousFunction() (ExpressionNode, bool, error) {
	mark := p.pos
	p.advance() // '('

	params, ok := p.scanParamList()
	if !ok || p.cur().Type != lexer.ARROW {
		p.pos = mark
		return nil, false, nil
	}
	p.advance() // '->'

	// From here on the anonymous function is committed: errors are real.
	var body Node
	if p.cur().Type == lexer.LBRACE {
		block, err := p.parseBlock()
		if err != nil {
			return nil, true, err
		}
		body = block
	} else {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, true, err
		}
		body = expr
	}
	return &AnonymousFunction{Params: params, Body: body}, true, nil
}

// scanParamList speculatively reads an identifier/default list up to and
// including ')'. It reports false on the first shape mismatch without
// emitting an error; the caller rewinds.
func (p *Parser) scanParamList() ([]Param, bool) {
	params := make([]Param, 0)
	if p.match(lexer.RPAREN) {
		return params, true
	}
	for {
		if p.cur().Type != lexer.IDENT {
			return nil, false
		}
		param := Param{Name: p.cur().Literal}
		p.advance()
		if p.match(lexer.ASSIGN) {
			def, err := p.parseExpression()
			if err != nil {
				return nil, false
			}
			param.Default = def
		}
		params = append(params, param)
		if p.match(lexer.COMMA) {
			continue
		}
		if p.match(lexer.RPAREN) {
			return params, true
		}
		return nil, false
	}
}

// parseCallArgs parses `( arg, ... )` where each argument is either a
// positional expression or a named `ident = expr` binding.
func (p *Parser) parseCallArgs() ([]Argument, error) {
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	args := make([]Argument, 0)
	for p.cur().Type != lexer.RPAREN {
		arg := Argument{}
		if p.cur().Type == lexer.IDENT && p.peek().Type == lexer.ASSIGN {
			arg.Name = p.cur().Literal
			p.advance() // name
			p.advance() // '='
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		arg.Value = value
		args = append(args, arg)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return args, nil
}
