package parser

import (
	"strconv"

	"github.com/mi66mc/pluto/lexer"
)

// precedences holds the binding power of the binary operators, lowest to
// highest. Precedence climbing recurses with a minimum-precedence bound
// instead of one function per level.
var precedences = map[lexer.TokenType]int{
	lexer.OR:      1,
	lexer.AND:     2,
	lexer.EQ:      3,
	lexer.NOT_EQ:  3,
	lexer.LT:      4,
	lexer.GT:      4,
	lexer.LE:      4,
	lexer.GE:      4,
	lexer.PLUS:    5,
	lexer.MINUS:   5,
	lexer.STAR:    6,
	lexer.SLASH:   6,
	lexer.PERCENT: 6,
}

// parseExpression parses a full expression. Assignment and compound
// assignment are resolved here, at the top: once the left side has parsed,
// an '=' demands an identifier or index target, and '+= -= *= /=' demand an
// identifier.
func (p *Parser) parseExpression() (ExpressionNode, error) {
	left, err := p.parseTernary()
	if err != nil {
		return nil, err
	}

	switch p.cur().Type {
	case lexer.ASSIGN:
		tok := p.cur()
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		switch target := left.(type) {
		case *Identifier:
			return &Assignment{Name: target.Name, Value: value}, nil
		case *IndexAccess:
			return &AssignmentIndex{Target: target, Value: value}, nil
		default:
			return nil, p.errorf(tok, "invalid assignment target")
		}
	case lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN, lexer.STAR_ASSIGN, lexer.SLASH_ASSIGN:
		tok := p.cur()
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		ident, ok := left.(*Identifier)
		if !ok {
			return nil, p.errorf(tok, "'%s' requires an identifier on the left", tok.Literal)
		}
		return &AssignmentOp{Name: ident.Name, Op: tok.Literal, Value: value}, nil
	}
	return left, nil
}

// parseTernary parses `cond ? then : else` above ranges and binaries.
func (p *Parser) parseTernary() (ExpressionNode, error) {
	cond, err := p.parseRange()
	if err != nil {
		return nil, err
	}
	if !p.match(lexer.QUESTION) {
		return cond, nil
	}
	then, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON, "':'"); err != nil {
		return nil, err
	}
	els, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	return &TernaryExpression{Cond: cond, Then: then, Else: els}, nil
}

// parseRange parses `a..b` and `a..=b`.
func (p *Parser) parseRange() (ExpressionNode, error) {
	start, err := p.parseBinaryExpression(1)
	if err != nil {
		return nil, err
	}
	if p.cur().Type != lexer.RANGE && p.cur().Type != lexer.RANGE_INC {
		return start, nil
	}
	inclusive := p.cur().Type == lexer.RANGE_INC
	p.advance()
	end, err := p.parseBinaryExpression(1)
	if err != nil {
		return nil, err
	}
	return &RangeExpression{Start: start, End: end, Inclusive: inclusive}, nil
}

// parseBinaryExpression is the precedence-climbing loop over the operator
// table. All binary operators are left-associative, so the recursive call
// raises the minimum precedence by one.
func (p *Parser) parseBinaryExpression(minPrec int) (ExpressionNode, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		prec, ok := precedences[p.cur().Type]
		if !ok || prec < minPrec {
			return left, nil
		}
		op := p.cur().Literal
		p.advance()
		right, err := p.parseBinaryExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpression{Left: left, Op: op, Right: right}
	}
}

// parseUnary parses the prefix '!' chain.
func (p *Parser) parseUnary() (ExpressionNode, error) {
	if p.cur().Type == lexer.BANG {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpression{Op: "!", Right: right}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary followed by its postfix chain:
// .name, .name(args), [expr], (args), ++ and --.
func (p *Parser) parsePostfix() (ExpressionNode, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Type {
		case lexer.DOT:
			p.advance()
			member, err := p.expect(lexer.IDENT, "member name")
			if err != nil {
				return nil, err
			}
			if p.cur().Type == lexer.LPAREN {
				args, err := p.parseCallArgs()
				if err != nil {
					return nil, err
				}
				expr = &MethodCall{Object: expr, Method: member.Literal, Args: args}
			} else {
				expr = &MemberAccess{Object: expr, Member: member.Literal}
			}
		case lexer.LBRACKET:
			p.advance()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACKET, "']'"); err != nil {
				return nil, err
			}
			expr = &IndexAccess{Object: expr, Index: index}
		case lexer.LPAREN:
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			if ident, ok := expr.(*Identifier); ok {
				expr = &FunctionCall{Name: ident.Name, Args: args}
			} else {
				expr = &ImmediateInvocation{Function: expr, Args: args}
			}
		case lexer.INC, lexer.DEC:
			tok := p.cur()
			ident, ok := expr.(*Identifier)
			if !ok {
				return nil, p.errorf(tok, "'%s' requires an identifier", tok.Literal)
			}
			p.advance()
			expr = &PostfixUnaryExpression{Op: tok.Literal, Name: ident.Name}
		default:
			return expr, nil
		}
	}
}

// parsePrimary parses the atomic expressions and the two bracketed literal
// forms. A '(' first attempts the anonymous-function lookahead and falls
// back to a grouping parenthesis.
func (p *Parser) parsePrimary() (ExpressionNode, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.NUMBER:
		value, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, p.errorf(tok, "invalid number literal '%s'", tok.Literal)
		}
		p.advance()
		return &NumberLiteral{Value: value}, nil
	case lexer.FLOAT:
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, p.errorf(tok, "invalid float literal '%s'", tok.Literal)
		}
		p.advance()
		return &FloatLiteral{Value: value}, nil
	case lexer.STRING:
		p.advance()
		return &StringLiteral{Value: tok.Literal}, nil
	case lexer.TRUE, lexer.FALSE:
		p.advance()
		return &BooleanLiteral{Value: tok.Type == lexer.TRUE}, nil
	case lexer.NULL:
		p.advance()
		return &NullLiteral{}, nil
	case lexer.IDENT:
		p.advance()
		return &Identifier{Name: tok.Literal}, nil
	case lexer.UNDERSCORE:
		p.advance()
		return &Identifier{Name: "_"}, nil
	case lexer.LBRACKET:
		return p.parseArrayLiteral()
	case lexer.LBRACE:
		return p.parseHashMapLiteral()
	case lexer.LPAREN:
		if fn, handled, err := p.parseAnonymousFunction(); handled {
			return fn, err
		}
		p.advance() // '('
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.MATCH:
		return p.parseMatchExpression()
	case lexer.ILLEGAL:
		return nil, p.errorf(tok, "unexpected character '%s'", tok.Literal)
	default:
		return nil, p.errorf(tok, "unexpected token '%s'", describe(tok))
	}
}

// parseArrayLiteral parses `[el, el, ...]`.
func (p *Parser) parseArrayLiteral() (ExpressionNode, error) {
	p.advance() // '['
	elements := make([]ExpressionNode, 0)
	for p.cur().Type != lexer.RBRACKET {
		el, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.RBRACKET, "']'"); err != nil {
		return nil, err
	}
	return &ArrayLiteral{Elements: elements}, nil
}

// parseHashMapLiteral parses `{ key: expr, ... }` where a key is a string
// literal or a bare identifier.
func (p *Parser) parseHashMapLiteral() (ExpressionNode, error) {
	p.advance() // '{'
	pairs := make([]HashPair, 0)
	for p.cur().Type != lexer.RBRACE {
		keyTok := p.cur()
		if keyTok.Type != lexer.STRING && keyTok.Type != lexer.IDENT {
			return nil, p.errorf(keyTok, "expected hash-map key, found '%s'", describe(keyTok))
		}
		p.advance()
		if _, err := p.expect(lexer.COLON, "':'"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, HashPair{Key: keyTok.Literal, Value: value})
		if !p.match(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return &HashMapLiteral{Pairs: pairs}, nil
}

// parseMatchExpression parses `match scrutinee { pattern => expr, ... }`.
// A `_` pattern marks the default arm.
func (p *Parser) parseMatchExpression() (ExpressionNode, error) {
	p.advance() // 'match'
	scrutinee, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	arms := make([]MatchArm, 0)
	for p.cur().Type != lexer.RBRACE && p.cur().Type != lexer.EOF {
		arm := MatchArm{}
		if p.cur().Type == lexer.UNDERSCORE {
			p.advance()
		} else {
			arm.Pattern, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(lexer.FAT_ARROW, "'=>'"); err != nil {
			return nil, err
		}
		arm.Body, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
		arms = append(arms, arm)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return &MatchExpression{Scrutinee: scrutinee, Arms: arms}, nil
}
