package ast

// Idx is a compact encoding of a source position within JS code. It is the
// byte offset plus one, so the zero value marks a synthesized node.
type Idx int

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
}

type Program struct {
	Body Statements
}

func (n *Program) Idx0() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[0].Idx0()
}

func (n *Program) Idx1() Idx {
	if len(n.Body) == 0 {
		return 0
	}
	return n.Body[len(n.Body)-1].Idx1()
}

func (n *Expression) Idx0() Idx { return n.Expr.Idx0() }
func (n *Expression) Idx1() Idx { return n.Expr.Idx1() }
func (n *Statement) Idx0() Idx  { return n.Stmt.Idx0() }
func (n *Statement) Idx1() Idx  { return n.Stmt.Idx1() }

func (a *ArrayLiteral) Idx0() Idx          { return a.LeftBracket }
func (a *AssignExpression) Idx0() Idx      { return a.Left.Idx0() }
func (a *AwaitExpression) Idx0() Idx       { return a.Await }
func (b *BinaryExpression) Idx0() Idx      { return b.Left.Idx0() }
func (b *BooleanLiteral) Idx0() Idx        { return b.Idx }
func (n *CallExpression) Idx0() Idx        { return n.Callee.Idx0() }
func (n *ConditionalExpression) Idx0() Idx { return n.Test.Idx0() }
func (f *FunctionLiteral) Idx0() Idx       { return f.Function }
func (c *ClassLiteral) Idx0() Idx          { return c.Class }
func (a *ArrowFunctionLiteral) Idx0() Idx  { return a.Start }
func (i *Identifier) Idx0() Idx            { return i.Idx }
func (n *PrivateIdentifier) Idx0() Idx     { return n.Identifier.Idx - 1 }
func (n *InvalidExpression) Idx0() Idx     { return n.From }
func (n *MemberExpression) Idx0() Idx      { return n.Object.Idx0() }
func (n *NewExpression) Idx0() Idx         { return n.New }
func (n *NullLiteral) Idx0() Idx           { return n.Idx }
func (n *NumberLiteral) Idx0() Idx         { return n.Idx }
func (n *ObjectLiteral) Idx0() Idx         { return n.LeftBrace }
func (n *SequenceExpression) Idx0() Idx    { return n.Sequence[0].Idx0() }
func (n *SpreadElement) Idx0() Idx         { return n.Ellipsis }
func (n *StringLiteral) Idx0() Idx         { return n.Idx }
func (n *ThisExpression) Idx0() Idx        { return n.Idx }
func (n *SuperExpression) Idx0() Idx       { return n.Idx }
func (n *UnaryExpression) Idx0() Idx       { return n.Idx }
func (n *UpdateExpression) Idx0() Idx {
	if n.Postfix {
		return n.Operand.Idx0()
	}
	return n.Idx
}

func (n *ComputedProperty) Idx0() Idx { return n.Expr.Idx0() - 1 }
func (n *MemberProperty) Idx0() Idx   { return n.Prop.Idx0() }
func (n *PropertyShort) Idx0() Idx    { return n.Name.Idx }
func (n *PropertyKeyed) Idx0() Idx    { return n.Key.Idx0() }
func (n *Property) Idx0() Idx         { return n.Prop.Idx0() }

func (n *BadStatement) Idx0() Idx        { return n.From }
func (n *BlockStatement) Idx0() Idx      { return n.LeftBrace }
func (n *EmptyStatement) Idx0() Idx      { return n.Semicolon }
func (n *ExpressionStatement) Idx0() Idx { return n.Expression.Idx0() }
func (n *IfStatement) Idx0() Idx         { return n.If }
func (n *ReturnStatement) Idx0() Idx     { return n.Return }
func (n *VariableDeclaration) Idx0() Idx { return n.Idx }
func (n *FunctionDeclaration) Idx0() Idx { return n.Function.Idx0() }
func (n *ClassDeclaration) Idx0() Idx    { return n.Class.Idx0() }
func (n *VariableDeclarator) Idx0() Idx  { return n.Target.Idx0() }
func (n *ParameterList) Idx0() Idx       { return n.Opening }
func (n *ConciseBody) Idx0() Idx         { return n.Body.Idx0() }

func (n *ClassElement) Idx0() Idx     { return n.Element.Idx0() }
func (n *FieldDefinition) Idx0() Idx  { return n.Idx }
func (n *MethodDefinition) Idx0() Idx { return n.Idx }
func (n *ClassStaticBlock) Idx0() Idx { return n.Static }

func (a *ArrayLiteral) Idx1() Idx          { return a.RightBracket + 1 }
func (a *AssignExpression) Idx1() Idx      { return a.Right.Idx1() }
func (a *AwaitExpression) Idx1() Idx       { return a.Argument.Idx1() }
func (b *BinaryExpression) Idx1() Idx      { return b.Right.Idx1() }
func (b *BooleanLiteral) Idx1() Idx        { return b.Idx + Idx(len(b.literal())) }
func (n *CallExpression) Idx1() Idx        { return n.RightParenthesis + 1 }
func (n *ConditionalExpression) Idx1() Idx { return n.Alternate.Idx1() }
func (f *FunctionLiteral) Idx1() Idx       { return f.Body.Idx1() }
func (c *ClassLiteral) Idx1() Idx          { return c.RightBrace + 1 }
func (a *ArrowFunctionLiteral) Idx1() Idx  { return a.Body.Idx1() }
func (i *Identifier) Idx1() Idx            { return i.Idx + Idx(len(i.Name)) }
func (n *PrivateIdentifier) Idx1() Idx     { return n.Identifier.Idx1() }
func (n *InvalidExpression) Idx1() Idx     { return n.To }
func (n *MemberExpression) Idx1() Idx      { return n.Property.Idx1() }
func (n *NewExpression) Idx1() Idx {
	if n.ArgumentList != nil {
		return n.RightParenthesis + 1
	}
	return n.Callee.Idx1()
}
func (n *NullLiteral) Idx1() Idx        { return n.Idx + 4 } // "null"
func (n *NumberLiteral) Idx1() Idx      { return n.Idx + Idx(len(n.raw())) }
func (n *ObjectLiteral) Idx1() Idx      { return n.RightBrace + 1 }
func (n *SequenceExpression) Idx1() Idx { return n.Sequence[len(n.Sequence)-1].Idx1() }
func (n *SpreadElement) Idx1() Idx      { return n.Argument.Idx1() }
func (n *StringLiteral) Idx1() Idx      { return n.Idx + Idx(len(n.raw())) }
func (n *ThisExpression) Idx1() Idx     { return n.Idx + 4 }
func (n *SuperExpression) Idx1() Idx    { return n.Idx + 5 }
func (n *UnaryExpression) Idx1() Idx    { return n.Operand.Idx1() }
func (n *UpdateExpression) Idx1() Idx {
	if n.Postfix {
		return n.Idx + 2 // x++ x--
	}
	return n.Operand.Idx1()
}

func (n *ComputedProperty) Idx1() Idx { return n.Expr.Idx1() + 1 }
func (n *MemberProperty) Idx1() Idx   { return n.Prop.Idx1() }
func (n *PropertyShort) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Name.Idx1()
}
func (n *PropertyKeyed) Idx1() Idx { return n.Value.Idx1() }
func (n *Property) Idx1() Idx      { return n.Prop.Idx1() }

func (n *BadStatement) Idx1() Idx        { return n.To }
func (n *BlockStatement) Idx1() Idx      { return n.RightBrace + 1 }
func (n *EmptyStatement) Idx1() Idx      { return n.Semicolon + 1 }
func (n *ExpressionStatement) Idx1() Idx { return n.Expression.Idx1() }
func (n *IfStatement) Idx1() Idx {
	if n.Alternate != nil {
		return n.Alternate.Idx1()
	}
	return n.Consequent.Idx1()
}
func (n *ReturnStatement) Idx1() Idx {
	if n.Argument != nil {
		return n.Argument.Idx1()
	}
	return n.Return + 6
}
func (n *VariableDeclaration) Idx1() Idx { return n.List[len(n.List)-1].Idx1() }
func (n *FunctionDeclaration) Idx1() Idx { return n.Function.Idx1() }
func (n *ClassDeclaration) Idx1() Idx    { return n.Class.Idx1() }
func (n *VariableDeclarator) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Target.Idx1()
}
func (n *ParameterList) Idx1() Idx { return n.Closing + 1 }
func (n *ConciseBody) Idx1() Idx   { return n.Body.Idx1() }

func (n *ClassElement) Idx1() Idx { return n.Element.Idx1() }
func (n *FieldDefinition) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Key.Idx1()
}
func (n *MethodDefinition) Idx1() Idx { return n.Body.Idx1() }
func (n *ClassStaticBlock) Idx1() Idx { return n.Block.Idx1() }
