package parser

import (
	"github.com/t14raptor/classprops/ast"
	"github.com/t14raptor/classprops/token"
)

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	node := &ast.BlockStatement{}
	node.LeftBrace = p.expect(token.LeftBrace)
	node.List = p.parseStatementList()
	node.RightBrace = p.expect(token.RightBrace)

	return node
}

func (p *parser) parseEmptyStatement() ast.Stmt {
	idx := p.expect(token.Semicolon)
	return &ast.EmptyStatement{Semicolon: idx}
}

func (p *parser) parseStatementList() (list ast.Statements) {
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		list = append(list, ast.Statement{Stmt: p.parseStatement()})
	}

	return list
}

func (p *parser) parseStatement() ast.Stmt {
	if p.currentKind() == token.Eof {
		p.errorUnexpectedToken(p.currentKind())
		return &ast.BadStatement{From: p.currentOffset(), To: p.currentOffset() + 1}
	}

	switch p.currentKind() {
	case token.Semicolon:
		return p.parseEmptyStatement()
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.If:
		return p.parseIfStatement()
	case token.Var, token.Const:
		return p.parseLexicalDeclaration(p.currentKind())
	case token.Let:
		// an expression statement may not start with "let ["
		if tok := p.peek().Kind; p.isBindingId(tok) || tok == token.LeftBracket {
			return p.parseLexicalDeclaration(token.Let)
		}
	case token.Async:
		if next := p.peek(); next.Kind == token.Function && !next.OnNewLine {
			idx := p.currentOffset()
			p.next()
			return &ast.FunctionDeclaration{
				Function: p.parseFunction(true, true, idx),
			}
		}
	case token.Function:
		return &ast.FunctionDeclaration{
			Function: p.parseFunction(true, false, p.currentOffset()),
		}
	case token.Class:
		return &ast.ClassDeclaration{
			Class: p.parseClass(true),
		}
	case token.Return:
		return p.parseReturnStatement()
	}

	start := p.currentOffset()
	expression := p.parseExpression()
	if _, bad := expression.Expr.(*ast.InvalidExpression); bad {
		return &ast.BadStatement{From: start, To: p.currentOffset()}
	}

	p.semicolon()

	return &ast.ExpressionStatement{
		Expression: expression,
	}
}

func (p *parser) parseFunctionParameterList() *ast.ParameterList {
	list := &ast.ParameterList{
		Opening: p.expect(token.LeftParenthesis),
	}
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		if p.currentKind() == token.Ellipsis {
			p.next()
			if !p.isBindingId(p.currentKind()) {
				p.errorUnexpectedToken(p.currentKind())
				return list
			}
			list.Rest = p.parseIdentifier()
			break
		}
		if !p.isBindingId(p.currentKind()) {
			p.errorUnexpectedToken(p.currentKind())
			return list
		}
		param := ast.VariableDeclarator{Target: p.parseIdentifier()}
		if p.currentKind() == token.Assign {
			p.next()
			param.Initializer = p.parseAssignmentExpression()
		}
		list.List = append(list.List, param)
		if p.currentKind() != token.RightParenthesis {
			if p.currentKind() != token.Comma {
				p.errorUnexpectedToken(p.currentKind())
				return list
			}
			p.next()
		}
	}
	list.Closing = p.expect(token.RightParenthesis)

	return list
}

func (p *parser) parseFunction(declaration, async bool, start ast.Idx) *ast.FunctionLiteral {
	node := &ast.FunctionLiteral{
		Function: start,
		Async:    async,
	}
	p.expect(token.Function)

	if p.currentKind() == token.Multiply {
		node.Generator = true
		p.next()
	}

	if p.isBindingId(p.currentKind()) {
		node.Name = p.parseIdentifier()
	} else if declaration {
		// Use expect error handling
		p.expect(token.Identifier)
	}

	savedAwait := p.scope.allowAwait
	p.scope.allowAwait = async
	node.ParameterList = p.parseFunctionParameterList()
	p.scope.allowAwait = savedAwait

	node.Body = p.parseFunctionBlock(async, node.Generator)

	return node
}

func (p *parser) parseFunctionBlock(async, generator bool) (body *ast.BlockStatement) {
	p.openScope()
	p.scope.inFunction = true
	p.scope.inAsync = async
	p.scope.allowAwait = async
	p.scope.allowYield = generator
	defer p.closeScope()
	body = p.parseBlockStatement()
	return
}

func (p *parser) parseArrowFunctionBody(async bool) *ast.ConciseBody {
	if p.currentKind() == token.LeftBrace {
		return &ast.ConciseBody{Body: p.parseFunctionBlock(async, false)}
	}

	inAsync, allowAwait := p.scope.inAsync, p.scope.allowAwait
	p.scope.inAsync, p.scope.allowAwait = async, async
	defer func() {
		p.scope.inAsync, p.scope.allowAwait = inAsync, allowAwait
	}()

	return &ast.ConciseBody{
		Body: p.parseAssignmentExpression(),
	}
}

func (p *parser) parseClass(declaration bool) *ast.ClassLiteral {
	node := &ast.ClassLiteral{
		Class: p.expect(token.Class),
	}

	if p.isBindingId(p.currentKind()) && p.currentKind() != token.Await {
		node.Name = p.parseIdentifier()
	} else if declaration {
		// Use expect error handling
		p.expect(token.Identifier)
	}

	if p.currentKind() == token.Extends {
		p.next()
		node.SuperClass = p.parseLeftHandSideExpressionAllowCall()
	}

	p.expect(token.LeftBrace)

	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		if p.currentKind() == token.Semicolon {
			p.next()
			continue
		}
		if element, ok := p.parseClassElement(); ok {
			node.Body = append(node.Body, element)
		}
	}

	node.RightBrace = p.expect(token.RightBrace)

	return node
}

// isClassKeyEnd reports whether tok directly after a modifier such as static
// or get means the modifier itself is the member name.
func isClassKeyEnd(tok token.Token) bool {
	switch tok {
	case token.Assign, token.Semicolon, token.RightBrace, token.LeftParenthesis:
		return true
	}
	return false
}

func (p *parser) parseClassElement() (ast.ClassElement, bool) {
	start := p.currentOffset()
	static := false
	if p.currentKind() == token.Static && !isClassKeyEnd(p.peek().Kind) {
		p.next()
		if p.currentKind() == token.LeftBrace {
			return ast.ClassElement{Element: &ast.ClassStaticBlock{
				Static: start,
				Block:  p.parseFunctionBlock(false, false),
			}}, true
		}
		static = true
	}

	var kind ast.PropertyKind
	async, generator := false, false
	methodStart := p.currentOffset()
	switch p.currentKind() {
	case token.Get, token.Set:
		if !isClassKeyEnd(p.peek().Kind) {
			kind = ast.PropertyKindGet
			if p.currentKind() == token.Set {
				kind = ast.PropertyKindSet
			}
			p.next()
		}
	case token.Async:
		if next := p.peek(); !isClassKeyEnd(next.Kind) && !next.OnNewLine {
			async = true
			kind = ast.PropertyKindMethod
			p.next()
		}
	}
	if p.currentKind() == token.Multiply && (kind == "" || kind == ast.PropertyKindMethod) {
		generator = true
		kind = ast.PropertyKindMethod
		p.next()
	}

	key, keyName, computed, ok := p.parseObjectPropertyKey()
	if !ok {
		return ast.ClassElement{}, false
	}
	_, private := key.Expr.(*ast.PrivateIdentifier)

	if static && !private && !computed && keyName == "prototype" {
		p.errorf("Classes may not have a static property named 'prototype'")
	}

	if kind == "" && p.currentKind() == token.LeftParenthesis {
		kind = ast.PropertyKindMethod
	}

	if kind != "" {
		if keyName == "constructor" && !computed && !static {
			switch {
			case kind != ast.PropertyKindMethod:
				p.errorf("Class constructor may not be an accessor")
			case async:
				p.errorf("Class constructor may not be an async method")
			case generator:
				p.errorf("Class constructor may not be a generator")
			}
		}
		return ast.ClassElement{Element: &ast.MethodDefinition{
			Idx:      start,
			Key:      key,
			Kind:     kind,
			Body:     p.parseMethodDefinition(methodStart, kind, generator, async),
			Static:   static,
			Computed: computed,
		}}, true
	}

	if !computed && (keyName == "constructor" || keyName == "#constructor") {
		p.errorf("Classes may not have a field named 'constructor'")
	}
	field := &ast.FieldDefinition{
		Idx:      start,
		Key:      key,
		Static:   static,
		Computed: computed,
	}
	if p.currentKind() == token.Assign {
		p.next()
		// initializers are evaluated like a method body without await
		p.openScope()
		field.Initializer = p.parseAssignmentExpression()
		p.closeScope()
	}
	p.semicolon()

	return ast.ClassElement{Element: field}, true
}

func (p *parser) parseReturnStatement() ast.Stmt {
	idx := p.expect(token.Return)

	if !p.scope.inFunction {
		p.scanner.Errorf(idx, "Illegal return statement")
		p.nextStatement()
		return &ast.BadStatement{From: idx, To: p.currentOffset()}
	}

	node := &ast.ReturnStatement{
		Return: idx,
	}

	if !p.canInsertSemicolon() {
		node.Argument = p.parseExpression()
	}

	p.semicolon()

	return node
}

func (p *parser) parseLexicalDeclaration(tok token.Token) *ast.VariableDeclaration {
	idx := p.expect(tok)

	node := &ast.VariableDeclaration{
		Idx:   idx,
		Token: tok,
	}
	for {
		if !p.isBindingId(p.currentKind()) {
			p.errorUnexpectedToken(p.currentKind())
			p.nextStatement()
			return node
		}
		decl := ast.VariableDeclarator{Target: p.parseIdentifier()}
		if p.currentKind() == token.Assign {
			p.next()
			decl.Initializer = p.parseAssignmentExpression()
		} else if tok == token.Const {
			p.errorf("Missing initializer in const declaration")
		}
		node.List = append(node.List, decl)
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}
	p.semicolon()

	return node
}

func (p *parser) parseIfStatement() ast.Stmt {
	node := &ast.IfStatement{
		If: p.expect(token.If),
	}
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)

	node.Consequent = &ast.Statement{Stmt: p.parseStatement()}

	if p.currentKind() == token.Else {
		p.next()
		node.Alternate = &ast.Statement{Stmt: p.parseStatement()}
	}

	return node
}

func (p *parser) parseSourceElements() (body ast.Statements) {
	for p.currentKind() != token.Eof {
		body = append(body, ast.Statement{Stmt: p.parseStatement()})
	}

	return body
}

func (p *parser) parseProgram() *ast.Program {
	return &ast.Program{
		Body: p.parseSourceElements(),
	}
}

// nextStatement skips to the next statement after an error.
func (p *parser) nextStatement() {
	for {
		switch p.currentKind() {
		case token.If, token.Return, token.Var, token.Const,
			token.Class, token.Function:
			// Return only if parser made some progress since last
			// sync or if it has not reached 10 next calls without
			// progress. Otherwise consume at least one token to
			// avoid an endless parser loop
			if p.currentOffset() == p.recover.idx && p.recover.count < 10 {
				p.recover.count++
				return
			}
			if p.currentOffset() > p.recover.idx {
				p.recover.idx = p.currentOffset()
				p.recover.count = 0
				return
			}
		case token.Eof:
			return
		}
		p.next()
	}
}
