package parser

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/t14raptor/classprops/ast"
	"github.com/t14raptor/classprops/token"
)

func (p *parser) parseIdentifier() *ast.Identifier {
	literal := p.currentString()
	idx := p.currentOffset()
	p.next()
	return &ast.Identifier{Idx: idx, Name: literal}
}

func (p *parser) isBindingId(tok token.Token) bool {
	if tok == token.Identifier {
		return true
	}
	if tok == token.Await {
		return !p.scope.allowAwait
	}
	return token.Contextual(tok)
}

func (p *parser) invalid(from ast.Idx) *ast.Expression {
	return &ast.Expression{Expr: &ast.InvalidExpression{From: from, To: p.currentOffset()}}
}

func (p *parser) parsePrimaryExpression() *ast.Expression {
	idx := p.currentOffset()
	switch p.currentKind() {
	case token.Identifier:
		return &ast.Expression{Expr: p.parseIdentifier()}
	case token.Null:
		p.next()
		return &ast.Expression{Expr: &ast.NullLiteral{Idx: idx}}
	case token.Boolean:
		value := p.currentString() == "true"
		p.next()
		return &ast.Expression{Expr: &ast.BooleanLiteral{Idx: idx, Value: value}}
	case token.String:
		return &ast.Expression{Expr: p.parseStringLiteral()}
	case token.Number:
		return &ast.Expression{Expr: p.parseNumberLiteral()}
	case token.LeftBrace:
		return &ast.Expression{Expr: p.parseObjectLiteral()}
	case token.LeftBracket:
		return &ast.Expression{Expr: p.parseArrayLiteral()}
	case token.LeftParenthesis:
		return p.parseParenthesisedExpression()
	case token.This:
		p.next()
		return &ast.Expression{Expr: &ast.ThisExpression{Idx: idx}}
	case token.Super:
		return p.parseSuperExpression()
	case token.Async:
		if next := p.peek(); next.Kind == token.Function && !next.OnNewLine {
			p.next()
			return &ast.Expression{Expr: p.parseFunction(false, true, idx)}
		}
	case token.Function:
		return &ast.Expression{Expr: p.parseFunction(false, false, idx)}
	case token.Class:
		return &ast.Expression{Expr: p.parseClass(false)}
	}

	if p.isBindingId(p.currentKind()) {
		return &ast.Expression{Expr: p.parseIdentifier()}
	}

	p.errorUnexpectedToken(p.currentKind())
	p.nextStatement()
	return p.invalid(idx)
}

func (p *parser) parseStringLiteral() *ast.StringLiteral {
	idx := p.currentOffset()
	value := p.currentString()
	raw := p.token.Raw(p.scanner)
	p.next()
	return &ast.StringLiteral{Idx: idx, Value: value, Raw: &raw}
}

func (p *parser) parseNumberLiteral() *ast.NumberLiteral {
	idx := p.currentOffset()
	raw := p.token.Raw(p.scanner)
	p.next()
	value, err := parseNumberLiteral(raw)
	if err != nil {
		p.scanner.Errorf(idx, "%s", err.Error())
	}
	return &ast.NumberLiteral{Idx: idx, Value: value, Raw: &raw}
}

// parseNumberLiteral converts a numeric literal to its value. Separators
// and the BigInt suffix are ignored.
func parseNumberLiteral(literal string) (float64, error) {
	literal = strings.ReplaceAll(literal, "_", "")
	literal = strings.TrimSuffix(literal, "n")

	if len(literal) > 1 && literal[0] == '0' {
		base := 0
		digits := literal[2:]
		switch literal[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		default:
			if strings.IndexFunc(literal, func(r rune) bool { return r < '0' || r > '7' }) < 0 {
				base, digits = 8, literal[1:]
			}
		}
		if base != 0 {
			i, ok := new(big.Int).SetString(digits, base)
			if !ok {
				return 0, strconv.ErrSyntax
			}
			f, _ := new(big.Float).SetInt(i).Float64()
			return f, nil
		}
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			// out of range literals are Infinity or 0, as in JS
			return f, nil
		}
		return math.NaN(), err
	}
	return f, nil
}

func (p *parser) parseSuperExpression() *ast.Expression {
	idx := p.expect(token.Super)
	switch p.currentKind() {
	case token.Period, token.LeftBracket, token.LeftParenthesis:
		return &ast.Expression{Expr: &ast.SuperExpression{Idx: idx}}
	}
	p.errorf("'super' keyword unexpected here")
	p.nextStatement()
	return p.invalid(idx)
}

func (p *parser) parseParenthesisedExpression() *ast.Expression {
	opening := p.expect(token.LeftParenthesis)
	if p.currentKind() == token.RightParenthesis {
		p.errorUnexpectedToken(token.RightParenthesis)
		p.next()
		return p.invalid(opening)
	}
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	expr := p.parseExpression()
	p.scope.allowIn = allowIn
	p.expect(token.RightParenthesis)
	return expr
}

func (p *parser) parseObjectPropertyKey() (key *ast.Expression, name string, computed bool, ok bool) {
	idx := p.currentOffset()
	switch kind := p.currentKind(); {
	case kind == token.LeftBracket:
		p.next()
		allowIn := p.scope.allowIn
		p.scope.allowIn = true
		key = p.parseAssignmentExpression()
		p.scope.allowIn = allowIn
		p.expect(token.RightBracket)
		return key, "", true, true
	case kind == token.String:
		lit := p.parseStringLiteral()
		return &ast.Expression{Expr: lit}, lit.Value, false, true
	case kind == token.Number:
		lit := p.parseNumberLiteral()
		return &ast.Expression{Expr: lit}, *lit.Raw, false, true
	case kind == token.PrivateIdentifier:
		name = p.currentString()
		p.next()
		return &ast.Expression{Expr: &ast.PrivateIdentifier{
			Identifier: &ast.Identifier{Idx: idx + 1, Name: name},
		}}, "#" + name, false, true
	case token.ID(kind):
		id := p.parseIdentifier()
		return &ast.Expression{Expr: id}, id.Name, false, true
	}
	p.errorUnexpectedToken(p.currentKind())
	p.next()
	return nil, "", false, false
}

func (p *parser) parseObjectProperty() (ast.Property, bool) {
	if p.currentKind() == token.Ellipsis {
		idx := p.currentOffset()
		p.next()
		return ast.Property{Prop: &ast.SpreadElement{Ellipsis: idx, Argument: p.parseAssignmentExpression()}}, true
	}

	start := p.currentOffset()
	if p.currentKind() == token.Multiply {
		p.next()
		key, _, computed, ok := p.parseObjectPropertyKey()
		if !ok {
			return ast.Property{}, false
		}
		return ast.Property{Prop: &ast.PropertyKeyed{
			Key:      key,
			Kind:     ast.PropertyKindMethod,
			Value:    &ast.Expression{Expr: p.parseMethodDefinition(start, ast.PropertyKindMethod, true, false)},
			Computed: computed,
		}}, true
	}

	keyKind := p.currentKind()
	key, name, computed, ok := p.parseObjectPropertyKey()
	if !ok {
		return ast.Property{}, false
	}
	if _, private := key.Expr.(*ast.PrivateIdentifier); private {
		p.errorf("Unexpected private name #%s", name[1:])
		return ast.Property{}, false
	}

	switch {
	case p.currentKind() == token.LeftParenthesis:
		return ast.Property{Prop: &ast.PropertyKeyed{
			Key:      key,
			Kind:     ast.PropertyKindMethod,
			Value:    &ast.Expression{Expr: p.parseMethodDefinition(start, ast.PropertyKindMethod, false, false)},
			Computed: computed,
		}}, true
	case !computed && (p.currentKind() == token.Comma || p.currentKind() == token.RightBrace || p.currentKind() == token.Assign):
		id, isIdent := key.Expr.(*ast.Identifier)
		if !isIdent || !p.isBindingId(keyKind) {
			p.errorUnexpectedToken(p.currentKind())
			return ast.Property{}, false
		}
		var initializer *ast.Expression
		if p.currentKind() == token.Assign {
			p.next()
			initializer = p.parseAssignmentExpression()
		}
		return ast.Property{Prop: &ast.PropertyShort{Name: id, Initializer: initializer}}, true
	case !computed && (keyKind == token.Get || keyKind == token.Set || keyKind == token.Async) && p.currentKind() != token.Colon:
		kind := ast.PropertyKindMethod
		async, generator := false, false
		switch keyKind {
		case token.Get:
			kind = ast.PropertyKindGet
		case token.Set:
			kind = ast.PropertyKindSet
		default:
			async = true
			if p.currentKind() == token.Multiply {
				generator = true
				p.next()
			}
		}
		key, _, computed, ok := p.parseObjectPropertyKey()
		if !ok {
			return ast.Property{}, false
		}
		return ast.Property{Prop: &ast.PropertyKeyed{
			Key:      key,
			Kind:     kind,
			Value:    &ast.Expression{Expr: p.parseMethodDefinition(start, kind, generator, async)},
			Computed: computed,
		}}, true
	}

	p.expect(token.Colon)
	return ast.Property{Prop: &ast.PropertyKeyed{
		Key:      key,
		Kind:     ast.PropertyKindValue,
		Value:    p.parseAssignmentExpression(),
		Computed: computed,
	}}, true
}

func (p *parser) parseMethodDefinition(start ast.Idx, kind ast.PropertyKind, generator, async bool) *ast.FunctionLiteral {
	savedAwait := p.scope.allowAwait
	p.scope.allowAwait = async
	parameterList := p.parseFunctionParameterList()
	p.scope.allowAwait = savedAwait

	switch kind {
	case ast.PropertyKindGet:
		if len(parameterList.List) > 0 || parameterList.Rest != nil {
			p.errorf("Getter must not have any formal parameters.")
		}
	case ast.PropertyKindSet:
		if len(parameterList.List) != 1 || parameterList.Rest != nil {
			p.errorf("Setter must have exactly one formal parameter.")
		}
	}
	return &ast.FunctionLiteral{
		Function:      start,
		ParameterList: parameterList,
		Body:          p.parseFunctionBlock(async, generator),
		Async:         async,
		Generator:     generator,
	}
}

func (p *parser) parseObjectLiteral() *ast.ObjectLiteral {
	idx0 := p.expect(token.LeftBrace)
	var value ast.Properties
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		if property, ok := p.parseObjectProperty(); ok {
			value = append(value, property)
		}
		if p.currentKind() != token.RightBrace {
			if p.currentKind() != token.Comma {
				p.errorUnexpectedToken(p.currentKind())
				p.nextStatement()
				break
			}
			p.next()
		}
	}
	idx1 := p.expect(token.RightBrace)

	return &ast.ObjectLiteral{LeftBrace: idx0, RightBrace: idx1, Value: value}
}

func (p *parser) parseArrayLiteral() *ast.ArrayLiteral {
	idx0 := p.expect(token.LeftBracket)
	var value ast.Expressions
	for p.currentKind() != token.RightBracket && p.currentKind() != token.Eof {
		if p.currentKind() == token.Comma {
			// hole
			p.next()
			value = append(value, ast.Expression{})
			continue
		}
		if p.currentKind() == token.Ellipsis {
			idx := p.currentOffset()
			p.next()
			value = append(value, ast.Expression{Expr: &ast.SpreadElement{Ellipsis: idx, Argument: p.parseAssignmentExpression()}})
		} else {
			value = append(value, *p.parseAssignmentExpression())
		}
		if p.currentKind() != token.RightBracket {
			if p.currentKind() != token.Comma {
				p.errorUnexpectedToken(p.currentKind())
				p.nextStatement()
				break
			}
			p.next()
		}
	}
	idx1 := p.expect(token.RightBracket)

	return &ast.ArrayLiteral{LeftBracket: idx0, RightBracket: idx1, Value: value}
}

func (p *parser) parseArgumentList() (argumentList ast.Expressions, idx0, idx1 ast.Idx) {
	idx0 = p.expect(token.LeftParenthesis)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		if p.currentKind() == token.Ellipsis {
			idx := p.currentOffset()
			p.next()
			argumentList = append(argumentList, ast.Expression{Expr: &ast.SpreadElement{Ellipsis: idx, Argument: p.parseAssignmentExpression()}})
		} else {
			argumentList = append(argumentList, *p.parseAssignmentExpression())
		}
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}
	p.scope.allowIn = allowIn
	idx1 = p.expect(token.RightParenthesis)
	return
}

func (p *parser) parseCallExpression(left *ast.Expression) *ast.Expression {
	argumentList, idx0, idx1 := p.parseArgumentList()
	return &ast.Expression{Expr: &ast.CallExpression{
		Callee:           left,
		LeftParenthesis:  idx0,
		ArgumentList:     argumentList,
		RightParenthesis: idx1,
	}}
}

func (p *parser) parseDotMember(left *ast.Expression) *ast.Expression {
	period := p.expect(token.Period)

	idx := p.currentOffset()
	if p.currentKind() == token.PrivateIdentifier {
		name := p.currentString()
		p.next()
		return &ast.Expression{Expr: &ast.MemberExpression{
			Object: left,
			Property: &ast.MemberProperty{Prop: &ast.PrivateIdentifier{
				Identifier: &ast.Identifier{Idx: idx + 1, Name: name},
			}},
		}}
	}

	if !token.ID(p.currentKind()) {
		p.errorUnexpectedToken(p.currentKind())
		p.nextStatement()
		return p.invalid(period)
	}

	return &ast.Expression{Expr: &ast.MemberExpression{
		Object:   left,
		Property: &ast.MemberProperty{Prop: p.parseIdentifier()},
	}}
}

func (p *parser) parseBracketMember(left *ast.Expression) *ast.Expression {
	p.expect(token.LeftBracket)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	member := p.parseExpression()
	p.scope.allowIn = allowIn
	p.expect(token.RightBracket)
	return &ast.Expression{Expr: &ast.MemberExpression{
		Object:   left,
		Property: &ast.MemberProperty{Prop: &ast.ComputedProperty{Expr: member}},
	}}
}

func (p *parser) parseNewExpression() *ast.Expression {
	idx := p.expect(token.New)
	callee := p.parseLeftHandSideExpression()
	if _, bad := callee.Expr.(*ast.InvalidExpression); bad {
		return callee
	}
	node := &ast.NewExpression{New: idx, Callee: callee}
	if p.currentKind() == token.LeftParenthesis {
		node.ArgumentList, node.LeftParenthesis, node.RightParenthesis = p.parseArgumentList()
	}
	return &ast.Expression{Expr: node}
}

// parseLeftHandSideExpression parses a member expression without calls, the
// callee of a new expression.
func (p *parser) parseLeftHandSideExpression() *ast.Expression {
	var left *ast.Expression
	if p.currentKind() == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}
L:
	for {
		switch p.currentKind() {
		case token.Period:
			left = p.parseDotMember(left)
		case token.LeftBracket:
			left = p.parseBracketMember(left)
		default:
			break L
		}
	}

	return left
}

func (p *parser) parseLeftHandSideExpressionAllowCall() *ast.Expression {
	var left *ast.Expression
	if p.currentKind() == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}

L:
	for {
		switch p.currentKind() {
		case token.Period:
			left = p.parseDotMember(left)
		case token.LeftBracket:
			left = p.parseBracketMember(left)
		case token.LeftParenthesis:
			left = p.parseCallExpression(left)
		default:
			break L
		}
	}

	return left
}

func isSimpleAssignTarget(e *ast.Expression) bool {
	switch e.Expr.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	}
	return false
}

func (p *parser) parseUpdateExpression() *ast.Expression {
	switch p.currentKind() {
	case token.Increment, token.Decrement:
		tkn := p.currentKind()
		idx := p.currentOffset()
		p.next()
		operand := p.parseUnaryExpression()
		if !isSimpleAssignTarget(operand) {
			p.errorf("Invalid left-hand side in assignment")
			p.nextStatement()
			return p.invalid(idx)
		}
		return &ast.Expression{Expr: &ast.UpdateExpression{Operator: tkn, Idx: idx, Operand: operand}}
	default:
		operand := p.parseLeftHandSideExpressionAllowCall()
		if p.currentKind() == token.Increment || p.currentKind() == token.Decrement {
			if p.token.OnNewLine {
				return operand
			}
			tkn := p.currentKind()
			idx := p.currentOffset()
			p.next()
			if !isSimpleAssignTarget(operand) {
				p.errorf("Invalid left-hand side in assignment")
				p.nextStatement()
				return p.invalid(idx)
			}
			return &ast.Expression{Expr: &ast.UpdateExpression{Operator: tkn, Idx: idx, Operand: operand, Postfix: true}}
		}
		return operand
	}
}

func (p *parser) parseUnaryExpression() *ast.Expression {
	switch p.currentKind() {
	case token.Plus, token.Minus, token.Not, token.BitwiseNot, token.Delete, token.Void, token.Typeof:
		tkn := p.currentKind()
		idx := p.currentOffset()
		p.next()
		return &ast.Expression{Expr: &ast.UnaryExpression{Operator: tkn, Idx: idx, Operand: p.parseUnaryExpression()}}
	case token.Await:
		if p.scope.allowAwait {
			idx := p.currentOffset()
			p.next()
			return &ast.Expression{Expr: &ast.AwaitExpression{Await: idx, Argument: p.parseUnaryExpression()}}
		}
	}

	return p.parseUpdateExpression()
}

func (p *parser) parseBinaryExpressionOrHigher(minPrecedence token.Precedence) *ast.Expression {
	lhsParenthesized := p.currentKind() == token.LeftParenthesis

	var lhs *ast.Expression
	if p.scope.allowIn && p.currentKind() == token.PrivateIdentifier {
		lhs = p.parsePrivateInExpression(minPrecedence)
	} else {
		lhs = p.parseUnaryExpression()
	}

	return p.parseBinaryExpressionRest(lhs, lhsParenthesized, minPrecedence)
}

func (p *parser) parseBinaryExpressionRest(lhs *ast.Expression, lhsParenthesized bool, minPrecedence token.Precedence) *ast.Expression {
	for {
		kind := p.currentKind()

		lbp := token.BinaryPrecedence(kind)
		if lbp <= minPrecedence {
			break
		}
		if kind == token.In && !p.scope.allowIn {
			break
		}

		p.next()

		rhsParenthesized := p.currentKind() == token.LeftParenthesis
		rhs := p.parseBinaryExpressionOrHigher(lbp ^ 1)

		if kind == token.Coalesce {
			if isAndOr(rhs) && !rhsParenthesized || isAndOr(lhs) && !lhsParenthesized {
				p.errorf("Logical expressions and coalesce expressions cannot be mixed. Wrap either by parentheses")
			}
		}
		if kind == token.Exponent && !lhsParenthesized {
			switch lhs.Expr.(type) {
			case *ast.UnaryExpression, *ast.AwaitExpression:
				p.errorf("Unary operator used immediately before exponentiation expression. Parenthesis must be used to disambiguate operator precedence")
			}
		}
		lhs = &ast.Expression{Expr: &ast.BinaryExpression{Operator: kind, Left: lhs, Right: rhs}}

		lhsParenthesized = false
	}

	return lhs
}

func isAndOr(e *ast.Expression) bool {
	b, ok := e.Expr.(*ast.BinaryExpression)
	return ok && (b.Operator == token.LogicalAnd || b.Operator == token.LogicalOr)
}

func (p *parser) parsePrivateInExpression(minPrecedence token.Precedence) *ast.Expression {
	idx := p.currentOffset()
	left := &ast.Expression{Expr: &ast.PrivateIdentifier{
		Identifier: &ast.Identifier{Idx: idx + 1, Name: p.currentString()},
	}}
	p.next()

	if p.currentKind() != token.In || token.PrecedenceCompare <= minPrecedence {
		p.errorf("Unexpected private name")
		return left
	}

	p.next()
	rhs := p.parseBinaryExpressionOrHigher(token.PrecedenceCompare)
	return &ast.Expression{Expr: &ast.BinaryExpression{Operator: token.In, Left: left, Right: rhs}}
}

func (p *parser) parseConditionalExpression() *ast.Expression {
	left := p.parseBinaryExpressionOrHigher(token.PrecedenceLowest)

	if p.currentKind() == token.QuestionMark {
		p.next()
		allowIn := p.scope.allowIn
		p.scope.allowIn = true
		consequent := p.parseAssignmentExpression()
		p.scope.allowIn = allowIn
		p.expect(token.Colon)
		return &ast.Expression{Expr: &ast.ConditionalExpression{
			Test:       left,
			Consequent: consequent,
			Alternate:  p.parseAssignmentExpression(),
		}}
	}

	return left
}

func (p *parser) parseArrowFunction(start ast.Idx, paramList *ast.ParameterList, async bool) *ast.Expression {
	p.expect(token.Arrow)
	return &ast.Expression{Expr: &ast.ArrowFunctionLiteral{
		Start:         start,
		ParameterList: paramList,
		Body:          p.parseArrowFunctionBody(async),
		Async:         async,
	}}
}

func (p *parser) parseSingleArgArrowFunction(start ast.Idx, async bool) *ast.Expression {
	id := p.parseIdentifier()
	paramList := &ast.ParameterList{
		Opening: id.Idx,
		Closing: id.Idx1(),
		List:    ast.VariableDeclarators{{Target: id}},
	}
	return p.parseArrowFunction(start, paramList, async)
}

// tryParseArrowFunction parses (params) => body at the current opening
// parenthesis. It rewinds and returns nil when the parenthesis does not start
// an arrow function.
func (p *parser) tryParseArrowFunction(start ast.Idx, async bool) *ast.Expression {
	state := p.mark()
	errs := p.errors

	savedAwait := p.scope.allowAwait
	p.scope.allowAwait = async
	paramList := p.parseFunctionParameterList()
	p.scope.allowAwait = savedAwait

	if p.errors != errs || p.currentKind() != token.Arrow || p.token.OnNewLine {
		p.restore(state)
		return nil
	}
	return p.parseArrowFunction(start, paramList, async)
}

func (p *parser) parseAssignmentExpression() *ast.Expression {
	start := p.currentOffset()
	switch kind := p.currentKind(); {
	case kind == token.LeftParenthesis:
		if arrow := p.tryParseArrowFunction(start, false); arrow != nil {
			return arrow
		}
	case kind == token.Async:
		state := p.mark()
		p.next()
		if !p.token.OnNewLine {
			if p.isBindingId(p.currentKind()) && p.peek().Kind == token.Arrow {
				return p.parseSingleArgArrowFunction(start, true)
			}
			if p.currentKind() == token.LeftParenthesis {
				if arrow := p.tryParseArrowFunction(start, true); arrow != nil {
					return arrow
				}
			}
		}
		p.restore(state)
	case p.isBindingId(kind):
		if p.peek().Kind == token.Arrow {
			return p.parseSingleArgArrowFunction(start, false)
		}
	}

	left := p.parseConditionalExpression()

	if operator := p.currentKind(); token.IsAssign(operator) {
		idx := p.currentOffset()
		if !isSimpleAssignTarget(left) {
			p.errorf("Invalid left-hand side in assignment")
			p.nextStatement()
			return p.invalid(idx)
		}
		p.next()
		return &ast.Expression{Expr: &ast.AssignExpression{
			Operator: operator,
			Left:     left,
			Right:    p.parseAssignmentExpression(),
		}}
	}

	return left
}

func (p *parser) parseExpression() *ast.Expression {
	left := p.parseAssignmentExpression()

	if p.currentKind() == token.Comma {
		sequence := ast.Expressions{*left}
		for p.currentKind() == token.Comma {
			p.next()
			sequence = append(sequence, *p.parseAssignmentExpression())
		}
		return &ast.Expression{Expr: &ast.SequenceExpression{Sequence: sequence}}
	}

	return left
}
