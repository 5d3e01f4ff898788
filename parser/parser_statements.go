package parser

import "github.com/mi66mc/pluto/lexer"

// parseStatement dispatches on the leading token of a statement.
func (p *Parser) parseStatement() (StatementNode, error) {
	switch p.cur().Type {
	case lexer.LET:
		return p.parseVariableDeclaration(false)
	case lexer.CONST:
		return p.parseVariableDeclaration(true)
	case lexer.FN:
		return p.parseFunctionDeclaration()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.BREAK:
		p.advance()
		if err := p.expectStatementEnd(); err != nil {
			return nil, err
		}
		return &BreakStatement{}, nil
	case lexer.CONTINUE:
		p.advance()
		if err := p.expectStatementEnd(); err != nil {
			return nil, err
		}
		return &ContinueStatement{}, nil
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.LBRACE:
		return p.parseBlock()
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expectStatementEnd(); err != nil {
			return nil, err
		}
		return expr, nil
	}
}

// parseVariableDeclaration parses `let name (= expr)? ;` and the const form.
func (p *Parser) parseVariableDeclaration(isConst bool) (StatementNode, error) {
	p.advance() // 'let' or 'const'
	name, err := p.expect(lexer.IDENT, "identifier")
	if err != nil {
		return nil, err
	}
	var value ExpressionNode
	if p.match(lexer.ASSIGN) {
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectStatementEnd(); err != nil {
		return nil, err
	}
	if isConst {
		return &ConstDeclaration{Name: name.Literal, Value: value}, nil
	}
	return &VariableDeclaration{Name: name.Literal, Value: value}, nil
}

// parseFunctionDeclaration parses `fn name(params) body`. A non-block body
// is wrapped into a single-statement block so the evaluator sees one shape.
func (p *Parser) parseFunctionDeclaration() (StatementNode, error) {
	p.advance() // 'fn'
	name, err := p.expect(lexer.IDENT, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlockOrStatement()
	if err != nil {
		return nil, err
	}
	block, ok := body.(*BlockStatement)
	if !ok {
		block = &BlockStatement{Statements: []StatementNode{body}}
	}
	return &FunctionDeclaration{Name: name.Literal, Params: params, Body: block}, nil
}

// parseParamList parses `name (= default)? (, name (= default)?)* )`,
// starting after the opening parenthesis and consuming the closing one.
func (p *Parser) parseParamList() ([]Param, error) {
	params := make([]Param, 0)
	if p.match(lexer.RPAREN) {
		return params, nil
	}
	for {
		name, err := p.expect(lexer.IDENT, "parameter name")
		if err != nil {
			return nil, err
		}
		param := Param{Name: name.Literal}
		if p.match(lexer.ASSIGN) {
			param.Default, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		}
		params = append(params, param)
		if p.match(lexer.COMMA) {
			continue
		}
		if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return params, nil
	}
}

// parseWhileStatement parses `while (cond) body`.
func (p *Parser) parseWhileStatement() (StatementNode, error) {
	p.advance() // 'while'
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlockOrStatement()
	if err != nil {
		return nil, err
	}
	return &WhileStatement{Cond: cond, Body: body}, nil
}

// parseForStatement parses `for (init; cond; step) body`, where each header
// slot may be empty.
func (p *Parser) parseForStatement() (StatementNode, error) {
	p.advance() // 'for'
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}

	stmt := &ForStatement{}
	var err error

	// Initializer: a declaration (which consumes its own ';'), an
	// expression, or empty.
	switch p.cur().Type {
	case lexer.SEMICOLON:
		p.advance()
	case lexer.LET, lexer.CONST:
		stmt.Init, err = p.parseVariableDeclaration(p.cur().Type == lexer.CONST)
		if err != nil {
			return nil, err
		}
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Init = expr
		if _, err := p.expect(lexer.SEMICOLON, "';'"); err != nil {
			return nil, err
		}
	}

	// Condition.
	if p.cur().Type != lexer.SEMICOLON {
		stmt.Cond, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.SEMICOLON, "';'"); err != nil {
		return nil, err
	}

	// Step.
	if p.cur().Type != lexer.RPAREN {
		stmt.Step, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}

	stmt.Body, err = p.parseBlockOrStatement()
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseReturnStatement parses `return expr?;`.
func (p *Parser) parseReturnStatement() (StatementNode, error) {
	p.advance() // 'return'
	stmt := &ReturnStatement{}
	if p.cur().Type != lexer.SEMICOLON && p.cur().Type != lexer.RBRACE && p.cur().Type != lexer.EOF {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Value = value
	}
	if err := p.expectStatementEnd(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseIfStatement parses `if cond body (else (if ... | body))?`.
// The condition needs no parentheses.
func (p *Parser) parseIfStatement() (StatementNode, error) {
	p.advance() // 'if'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlockOrStatement()
	if err != nil {
		return nil, err
	}
	stmt := &IfStatement{Cond: cond, Then: then}
	if p.match(lexer.ELSE) {
		if p.cur().Type == lexer.IF {
			stmt.Else, err = p.parseIfStatement()
		} else {
			stmt.Else, err = p.parseBlockOrStatement()
		}
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// parseBlockOrStatement parses either a braced block or a single statement.
func (p *Parser) parseBlockOrStatement() (StatementNode, error) {
	if p.cur().Type == lexer.LBRACE {
		return p.parseBlock()
	}
	return p.parseStatement()
}

// parseBlock parses `{ statements }`.
func (p *Parser) parseBlock() (StatementNode, error) {
	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	block := &BlockStatement{Statements: make([]StatementNode, 0)}
	for p.cur().Type != lexer.RBRACE && p.cur().Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return block, nil
}
