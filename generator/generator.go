package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/classprops/ast"
	"github.com/t14raptor/classprops/token"
)

// Generate prints node as JavaScript source. Statements of a program are
// each followed by a newline and nested blocks are indented with four
// spaces. Literals keep their raw text when they have one.
func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		if n != nil {
			for _, b := range n.Body {
				gen(s.wrap(b.Stmt))
				s.line()
			}
		}
	case *ast.Statement:
		gen(s.wrap(n.Stmt))
	case *ast.Expression:
		s.expr(n, token.PrecedenceLowest)
	case ast.Expr:
		genExpr(s, n)
	case ast.Stmt:
		genStmt(s, n)
	case *ast.ClassElement:
		genClassElement(s, n.Element)
	case ast.Element:
		genClassElement(s, n)
	case *ast.Property:
		genProperty(s, n.Prop)
	case *ast.VariableDeclarator:
		genDeclarator(s, n)
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

func genStmt(s *state, stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.BadStatement:
	case *ast.BlockStatement:
		if len(n.List) == 0 {
			s.write("{}")
			return
		}
		s.write("{")
		s.indent++
		for _, st := range n.List {
			s.lineAndPad()
			gen(s.wrap(st.Stmt))
		}
		s.indent--
		s.lineAndPad()
		s.write("}")
	case *ast.EmptyStatement:
		s.write(";")
	case *ast.ExpressionStatement:
		if startsAmbiguously(n.Expression) {
			s.write("(")
			s.expr(n.Expression, token.PrecedenceLowest)
			s.write(")")
		} else {
			s.expr(n.Expression, token.PrecedenceLowest)
		}
		s.write(";")
	case *ast.IfStatement:
		s.write("if (")
		s.expr(n.Test, token.PrecedenceLowest)
		s.write(") ")

		consequent := n.Consequent.Stmt
		switch consequent.(type) {
		case *ast.BlockStatement:
		default:
			consequent = &ast.BlockStatement{List: ast.Statements{*n.Consequent}}
		}
		gen(s.wrap(consequent))

		if n.Alternate != nil {
			s.write(" else ")

			alternate := n.Alternate.Stmt
			switch alternate.(type) {
			case *ast.BlockStatement, *ast.IfStatement:
			default:
				alternate = &ast.BlockStatement{List: ast.Statements{*n.Alternate}}
			}
			gen(s.wrap(alternate))
		}
	case *ast.ReturnStatement:
		s.write("return")
		if n.Argument != nil {
			s.write(" ")
			s.expr(n.Argument, token.PrecedenceLowest)
		}
		s.write(";")
	case *ast.VariableDeclaration:
		s.write(n.Token.String())
		s.write(" ")
		for i := range n.List {
			if i > 0 {
				s.write(", ")
			}
			genDeclarator(s, &n.List[i])
		}
		s.write(";")
	case *ast.FunctionDeclaration:
		genFunction(s, n.Function)
	case *ast.ClassDeclaration:
		genClass(s, n.Class)
	default:
		panic(fmt.Sprintf("gen: unexpected statement type %T", n))
	}
}

func genDeclarator(s *state, n *ast.VariableDeclarator) {
	if n.Target != nil {
		s.write(n.Target.Name)
	}
	if n.Initializer != nil {
		s.write(" = ")
		s.expr(n.Initializer, token.PrecedenceAssign)
	}
}

// expr prints e, in parentheses when it binds looser than min.
func (s *state) expr(e *ast.Expression, min token.Precedence) {
	if e == nil || e.Expr == nil {
		return
	}
	if precedence(e.Expr) < min {
		s.write("(")
		gen(s.wrap(e.Expr))
		s.write(")")
		return
	}
	gen(s.wrap(e.Expr))
}

// list prints comma separated elements. Spread elements are printed in
// place; nil elements are array holes.
func (s *state) list(list ast.Expressions) {
	for i := range list {
		if i > 0 {
			s.write(", ")
		}
		e := &list[i]
		if spread, ok := e.Expr.(*ast.SpreadElement); ok {
			s.write("...")
			s.expr(spread.Argument, token.PrecedenceAssign)
			continue
		}
		s.expr(e, token.PrecedenceAssign)
	}
}

func genExpr(s *state, expr ast.Expr) {
	switch n := expr.(type) {
	case *ast.InvalidExpression:
	case *ast.Identifier:
		if n != nil {
			s.write(n.Name)
		}
	case *ast.PrivateIdentifier:
		s.write("#")
		s.write(n.Identifier.Name)
	case *ast.NullLiteral:
		s.write("null")
	case *ast.BooleanLiteral:
		s.write(strconv.FormatBool(n.Value))
	case *ast.NumberLiteral:
		if n.Raw != nil {
			s.write(*n.Raw)
		} else {
			s.write(formatNumber(n.Value))
		}
	case *ast.StringLiteral:
		if n.Raw != nil {
			s.write(*n.Raw)
		} else {
			s.write(quoteJS(n.Value))
		}
	case *ast.ThisExpression:
		s.write("this")
	case *ast.SuperExpression:
		s.write("super")
	case *ast.ArrayLiteral:
		s.write("[")
		s.list(n.Value)
		if len(n.Value) > 0 && n.Value[len(n.Value)-1].Expr == nil {
			// a trailing hole needs its own comma
			s.write(",")
		}
		s.write("]")
	case *ast.ObjectLiteral:
		if len(n.Value) == 0 {
			s.write("{}")
			return
		}
		s.write("{")
		s.indent++
		for i := range n.Value {
			s.lineAndPad()
			genProperty(s, n.Value[i].Prop)
			if i < len(n.Value)-1 {
				s.write(",")
			}
		}
		s.indent--
		s.lineAndPad()
		s.write("}")
	case *ast.SpreadElement:
		s.write("...")
		s.expr(n.Argument, token.PrecedenceAssign)
	case *ast.AssignExpression:
		s.expr(n.Left, token.PrecedencePostfix)
		s.write(" ")
		s.write(n.Operator.String())
		s.write(" ")
		s.expr(n.Right, token.PrecedenceAssign)
	case *ast.BinaryExpression:
		genBinary(s, n)
	case *ast.ConditionalExpression:
		s.expr(n.Test, token.PrecedenceNullishCoalescing)
		s.write(" ? ")
		s.expr(n.Consequent, token.PrecedenceAssign)
		s.write(" : ")
		s.expr(n.Alternate, token.PrecedenceAssign)
	case *ast.UnaryExpression:
		op := n.Operator.String()
		s.write(op)
		if len(op) > 1 || needsSpaceAfterSign(n.Operator, n.Operand) {
			s.write(" ")
		}
		s.expr(n.Operand, token.PrecedencePrefix)
	case *ast.AwaitExpression:
		s.write("await ")
		s.expr(n.Argument, token.PrecedencePrefix)
	case *ast.UpdateExpression:
		if n.Postfix {
			s.expr(n.Operand, token.PrecedencePostfix)
			s.write(n.Operator.String())
		} else {
			s.write(n.Operator.String())
			s.expr(n.Operand, token.PrecedencePrefix)
		}
	case *ast.SequenceExpression:
		for i := range n.Sequence {
			if i > 0 {
				s.write(", ")
			}
			s.expr(&n.Sequence[i], token.PrecedenceAssign)
		}
	case *ast.MemberExpression:
		if _, ok := n.Object.Expr.(*ast.NumberLiteral); ok {
			s.write("(")
			gen(s.wrap(n.Object.Expr))
			s.write(")")
		} else {
			s.expr(n.Object, token.PrecedenceCall)
		}
		switch prop := n.Property.Prop.(type) {
		case *ast.ComputedProperty:
			s.write("[")
			s.expr(prop.Expr, token.PrecedenceLowest)
			s.write("]")
		default:
			s.write(".")
			gen(s.wrap(prop))
		}
	case *ast.CallExpression:
		switch n.Callee.Expr.(type) {
		case *ast.FunctionLiteral, *ast.ClassLiteral:
			s.write("(")
			gen(s.wrap(n.Callee.Expr))
			s.write(")")
		default:
			s.expr(n.Callee, token.PrecedenceCall)
		}
		s.write("(")
		s.list(n.ArgumentList)
		s.write(")")
	case *ast.NewExpression:
		s.write("new ")
		if containsCall(n.Callee) {
			s.write("(")
			gen(s.wrap(n.Callee.Expr))
			s.write(")")
		} else {
			s.expr(n.Callee, token.PrecedenceMember)
		}
		s.write("(")
		s.list(n.ArgumentList)
		s.write(")")
	case *ast.ArrowFunctionLiteral:
		if n.Async {
			s.write("async ")
		}
		genParams(s, n.ParameterList)
		s.write(" => ")
		switch body := n.Body.Body.(type) {
		case *ast.BlockStatement:
			gen(s.wrap(body))
		case *ast.Expression:
			if startsAmbiguously(body) {
				s.write("(")
				s.expr(body, token.PrecedenceLowest)
				s.write(")")
			} else {
				s.expr(body, token.PrecedenceAssign)
			}
		}
	case *ast.FunctionLiteral:
		genFunction(s, n)
	case *ast.ClassLiteral:
		genClass(s, n)
	case *ast.PropertyKeyed, *ast.PropertyShort:
		genProperty(s, n.(ast.Prop))
	default:
		panic(fmt.Sprintf("gen: unexpected expression type %T", n))
	}
}

func genBinary(s *state, n *ast.BinaryExpression) {
	p := token.BinaryPrecedence(n.Operator)

	leftMin, rightMin := p, p+1
	if p.IsRightAssociative() {
		leftMin, rightMin = p+1, p
	}

	switch {
	case n.Operator == token.Exponent && isUnaryLike(n.Left):
		s.write("(")
		gen(s.wrap(n.Left.Expr))
		s.write(")")
	case mixesCoalesce(n.Operator, n.Left):
		s.write("(")
		gen(s.wrap(n.Left.Expr))
		s.write(")")
	default:
		s.expr(n.Left, leftMin)
	}

	s.write(" ")
	s.write(n.Operator.String())
	s.write(" ")

	if mixesCoalesce(n.Operator, n.Right) {
		s.write("(")
		gen(s.wrap(n.Right.Expr))
		s.write(")")
	} else {
		s.expr(n.Right, rightMin)
	}
}

func genParams(s *state, params *ast.ParameterList) {
	s.write("(")
	if params != nil {
		for i := range params.List {
			if i > 0 {
				s.write(", ")
			}
			genDeclarator(s, &params.List[i])
		}
		if params.Rest != nil {
			if len(params.List) > 0 {
				s.write(", ")
			}
			s.write("...")
			s.write(params.Rest.Name)
		}
	}
	s.write(")")
}

func genFunction(s *state, n *ast.FunctionLiteral) {
	if n.Async {
		s.write("async ")
	}
	s.write("function")
	if n.Generator {
		s.write("*")
	}
	if n.Name != nil {
		s.write(" ")
		s.write(n.Name.Name)
	}
	genParams(s, n.ParameterList)
	s.write(" ")
	gen(s.wrap(n.Body))
}

// genMethod prints the part of a method after its modifiers: key,
// parameters and body.
func genMethod(s *state, key *ast.Expression, computed bool, kind ast.PropertyKind, fn *ast.FunctionLiteral) {
	switch kind {
	case ast.PropertyKindGet:
		s.write("get ")
	case ast.PropertyKindSet:
		s.write("set ")
	default:
		if fn.Async {
			s.write("async ")
		}
		if fn.Generator {
			s.write("*")
		}
	}
	genKey(s, key, computed)
	genParams(s, fn.ParameterList)
	s.write(" ")
	gen(s.wrap(fn.Body))
}

func genKey(s *state, key *ast.Expression, computed bool) {
	if computed {
		s.write("[")
		s.expr(key, token.PrecedenceAssign)
		s.write("]")
		return
	}
	gen(s.wrap(key.Expr))
}

func genProperty(s *state, prop ast.Prop) {
	switch n := prop.(type) {
	case *ast.PropertyShort:
		s.write(n.Name.Name)
		if n.Initializer != nil {
			s.write(" = ")
			s.expr(n.Initializer, token.PrecedenceAssign)
		}
	case *ast.PropertyKeyed:
		if fn, ok := n.Value.Expr.(*ast.FunctionLiteral); ok && n.Kind != ast.PropertyKindValue {
			genMethod(s, n.Key, n.Computed, n.Kind, fn)
			return
		}
		genKey(s, n.Key, n.Computed)
		s.write(": ")
		s.expr(n.Value, token.PrecedenceAssign)
	case *ast.SpreadElement:
		s.write("...")
		s.expr(n.Argument, token.PrecedenceAssign)
	}
}

func genClass(s *state, n *ast.ClassLiteral) {
	s.write("class")
	if n.Name != nil {
		s.write(" ")
		s.write(n.Name.Name)
	}
	if n.SuperClass != nil {
		s.write(" extends ")
		s.expr(n.SuperClass, token.PrecedenceCall)
	}
	if len(n.Body) == 0 {
		s.write(" {}")
		return
	}
	s.write(" {")
	s.indent++
	for i := range n.Body {
		s.lineAndPad()
		genClassElement(s, n.Body[i].Element)
	}
	s.indent--
	s.lineAndPad()
	s.write("}")
}

func genClassElement(s *state, element ast.Element) {
	switch n := element.(type) {
	case *ast.FieldDefinition:
		if n.Static {
			s.write("static ")
		}
		genKey(s, n.Key, n.Computed)
		if n.Initializer != nil {
			s.write(" = ")
			s.expr(n.Initializer, token.PrecedenceAssign)
		}
		s.write(";")
	case *ast.MethodDefinition:
		if n.Static {
			s.write("static ")
		}
		genMethod(s, n.Key, n.Computed, n.Kind, n.Body)
	case *ast.ClassStaticBlock:
		s.write("static ")
		gen(s.wrap(n.Block))
	default:
		panic(fmt.Sprintf("gen: unexpected class element type %T", n))
	}
}

// precedence returns the binding power of an expression node as an operand.
func precedence(e ast.Expr) token.Precedence {
	switch n := e.(type) {
	case *ast.SequenceExpression:
		return token.PrecedenceComma
	case *ast.SpreadElement:
		return token.PrecedenceSpread
	case *ast.ArrowFunctionLiteral, *ast.AssignExpression:
		return token.PrecedenceAssign
	case *ast.ConditionalExpression:
		return token.PrecedenceConditional
	case *ast.BinaryExpression:
		return token.BinaryPrecedence(n.Operator)
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return token.PrecedencePrefix
	case *ast.UpdateExpression:
		if n.Postfix {
			return token.PrecedencePostfix
		}
		return token.PrecedencePrefix
	case *ast.NewExpression, *ast.CallExpression:
		return token.PrecedenceCall
	case *ast.MemberExpression:
		return token.PrecedenceMember
	case *ast.NumberLiteral:
		if n.Raw == nil && n.Value < 0 {
			// printed with a leading minus sign
			return token.PrecedencePrefix
		}
	}
	return token.PrecedencePrimary
}

func isUnaryLike(e *ast.Expression) bool {
	switch e.Expr.(type) {
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return true
	}
	return precedence(e.Expr) == token.PrecedencePrefix
}

// mixesCoalesce reports whether child must be parenthesized because ?? is
// mixed with && or || without parentheses.
func mixesCoalesce(op token.Token, child *ast.Expression) bool {
	b, ok := child.Expr.(*ast.BinaryExpression)
	if !ok {
		return false
	}
	if op == token.Coalesce {
		return b.Operator == token.LogicalAnd || b.Operator == token.LogicalOr
	}
	if op == token.LogicalAnd || op == token.LogicalOr {
		return b.Operator == token.Coalesce
	}
	return false
}

// needsSpaceAfterSign keeps - -a and + +a from printing as a decrement or
// increment.
func needsSpaceAfterSign(op token.Token, operand *ast.Expression) bool {
	if op != token.Minus && op != token.Plus {
		return false
	}
	switch n := operand.Expr.(type) {
	case *ast.UnaryExpression:
		return n.Operator == op
	case *ast.UpdateExpression:
		return !n.Postfix && (op == token.Minus && n.Operator == token.Decrement || op == token.Plus && n.Operator == token.Increment)
	case *ast.NumberLiteral:
		return op == token.Minus && precedence(n) == token.PrecedencePrefix
	}
	return false
}

// containsCall reports whether the member chain of a new callee contains a
// call, which would otherwise be taken as the arguments of new.
func containsCall(e *ast.Expression) bool {
	switch n := e.Expr.(type) {
	case *ast.CallExpression:
		return true
	case *ast.MemberExpression:
		return containsCall(n.Object)
	}
	return false
}

// startsAmbiguously reports whether the printed expression would begin with
// a token that statement context reads as a block, a declaration or a
// lexical binding.
func startsAmbiguously(e *ast.Expression) bool {
	for e != nil && e.Expr != nil {
		switch n := e.Expr.(type) {
		case *ast.ObjectLiteral, *ast.FunctionLiteral, *ast.ClassLiteral:
			return true
		case *ast.Identifier:
			return n.Name == "let"
		case *ast.BinaryExpression:
			if precedence(n.Left.Expr) < token.BinaryPrecedence(n.Operator) {
				return false
			}
			e = n.Left
		case *ast.AssignExpression:
			e = n.Left
		case *ast.ConditionalExpression:
			if precedence(n.Test.Expr) < token.PrecedenceNullishCoalescing {
				return false
			}
			e = n.Test
		case *ast.SequenceExpression:
			if len(n.Sequence) == 0 {
				return false
			}
			e = &n.Sequence[0]
		case *ast.CallExpression:
			switch n.Callee.Expr.(type) {
			case *ast.FunctionLiteral, *ast.ClassLiteral:
				return false
			}
			e = n.Callee
		case *ast.MemberExpression:
			e = n.Object
		case *ast.UpdateExpression:
			if !n.Postfix {
				return false
			}
			e = n.Operand
		default:
			return false
		}
	}
	return false
}

// formatNumber prints a number the way JavaScript's Number#toString does.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	if abs := math.Abs(v); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	str := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(str, "e")
	sign := exp[0]
	exp = strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + string(sign) + exp
}

// quoteJS returns value as a double-quoted JavaScript string literal.
func quoteJS(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('"')
	for i, r := range value {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(value[i:]); size == 1 {
				fmt.Fprintf(&b, `\x%02x`, value[i])
				continue
			}
		}
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
