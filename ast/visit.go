package ast

type VisitableNode interface {
	Node
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

type Visitor interface {
	VisitProgram(n *Program)
	VisitArrayLiteral(n *ArrayLiteral)
	VisitAssignExpression(n *AssignExpression)
	VisitAwaitExpression(n *AwaitExpression)
	VisitInvalidExpression(n *InvalidExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitMemberExpression(n *MemberExpression)
	VisitMemberProperty(n *MemberProperty)
	VisitComputedProperty(n *ComputedProperty)
	VisitCallExpression(n *CallExpression)
	VisitConditionalExpression(n *ConditionalExpression)
	VisitArrowFunctionLiteral(n *ArrowFunctionLiteral)
	VisitConciseBody(n *ConciseBody)
	VisitPrivateIdentifier(n *PrivateIdentifier)
	VisitNewExpression(n *NewExpression)
	VisitObjectLiteral(n *ObjectLiteral)
	VisitProperties(n *Properties)
	VisitProperty(n *Property)
	VisitPropertyShort(n *PropertyShort)
	VisitPropertyKeyed(n *PropertyKeyed)
	VisitSpreadElement(n *SpreadElement)
	VisitSequenceExpression(n *SequenceExpression)
	VisitThisExpression(n *ThisExpression)
	VisitSuperExpression(n *SuperExpression)
	VisitUnaryExpression(n *UnaryExpression)
	VisitUpdateExpression(n *UpdateExpression)
	VisitIdentifier(n *Identifier)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitNullLiteral(n *NullLiteral)
	VisitNumberLiteral(n *NumberLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitFunctionLiteral(n *FunctionLiteral)
	VisitParameterList(n *ParameterList)
	VisitClassLiteral(n *ClassLiteral)
	VisitClassElements(n *ClassElements)
	VisitClassElement(n *ClassElement)
	VisitFieldDefinition(n *FieldDefinition)
	VisitMethodDefinition(n *MethodDefinition)
	VisitClassStaticBlock(n *ClassStaticBlock)
	VisitExpressions(n *Expressions)
	VisitExpression(n *Expression)
	VisitStatements(n *Statements)
	VisitStatement(n *Statement)
	VisitBadStatement(n *BadStatement)
	VisitBlockStatement(n *BlockStatement)
	VisitEmptyStatement(n *EmptyStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitIfStatement(n *IfStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitVariableDeclarators(n *VariableDeclarators)
	VisitVariableDeclarator(n *VariableDeclarator)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitClassDeclaration(n *ClassDeclaration)
}

// NoopVisitor visits every node without doing anything. Embed it and set V
// to the embedding visitor so children are dispatched to the overrides.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(n *Program) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrayLiteral(n *ArrayLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAssignExpression(n *AssignExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAwaitExpression(n *AwaitExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitInvalidExpression(n *InvalidExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBinaryExpression(n *BinaryExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMemberExpression(n *MemberExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMemberProperty(n *MemberProperty) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitComputedProperty(n *ComputedProperty) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCallExpression(n *CallExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitConditionalExpression(n *ConditionalExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrowFunctionLiteral(n *ArrowFunctionLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitConciseBody(n *ConciseBody) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPrivateIdentifier(n *PrivateIdentifier) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNewExpression(n *NewExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitObjectLiteral(n *ObjectLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperties(n *Properties) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperty(n *Property) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyShort(n *PropertyShort) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyKeyed(n *PropertyKeyed) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSpreadElement(n *SpreadElement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSequenceExpression(n *SequenceExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThisExpression(n *ThisExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSuperExpression(n *SuperExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUnaryExpression(n *UnaryExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUpdateExpression(n *UpdateExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIdentifier(n *Identifier) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBooleanLiteral(n *BooleanLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNullLiteral(n *NullLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNumberLiteral(n *NumberLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStringLiteral(n *StringLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionLiteral(n *FunctionLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitParameterList(n *ParameterList) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassLiteral(n *ClassLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassElements(n *ClassElements) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassElement(n *ClassElement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFieldDefinition(n *FieldDefinition) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMethodDefinition(n *MethodDefinition) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassStaticBlock(n *ClassStaticBlock) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressions(n *Expressions) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpression(n *Expression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatements(n *Statements) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatement(n *Statement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBadStatement(n *BadStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBlockStatement(n *BlockStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitEmptyStatement(n *EmptyStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressionStatement(n *ExpressionStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIfStatement(n *IfStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitReturnStatement(n *ReturnStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclaration(n *VariableDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclarators(n *VariableDeclarators) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclarator(n *VariableDeclarator) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassDeclaration(n *ClassDeclaration) { n.VisitChildrenWith(nv.V) }

func (n *Program) VisitWith(v Visitor) { v.VisitProgram(n) }
func (n *ArrayLiteral) VisitWith(v Visitor) { v.VisitArrayLiteral(n) }
func (n *AssignExpression) VisitWith(v Visitor) { v.VisitAssignExpression(n) }
func (n *AwaitExpression) VisitWith(v Visitor) { v.VisitAwaitExpression(n) }
func (n *InvalidExpression) VisitWith(v Visitor) { v.VisitInvalidExpression(n) }
func (n *BinaryExpression) VisitWith(v Visitor) { v.VisitBinaryExpression(n) }
func (n *MemberExpression) VisitWith(v Visitor) { v.VisitMemberExpression(n) }
func (n *MemberProperty) VisitWith(v Visitor) { v.VisitMemberProperty(n) }
func (n *ComputedProperty) VisitWith(v Visitor) { v.VisitComputedProperty(n) }
func (n *CallExpression) VisitWith(v Visitor) { v.VisitCallExpression(n) }
func (n *ConditionalExpression) VisitWith(v Visitor) { v.VisitConditionalExpression(n) }
func (n *ArrowFunctionLiteral) VisitWith(v Visitor) { v.VisitArrowFunctionLiteral(n) }
func (n *ConciseBody) VisitWith(v Visitor) { v.VisitConciseBody(n) }
func (n *PrivateIdentifier) VisitWith(v Visitor) { v.VisitPrivateIdentifier(n) }
func (n *NewExpression) VisitWith(v Visitor) { v.VisitNewExpression(n) }
func (n *ObjectLiteral) VisitWith(v Visitor) { v.VisitObjectLiteral(n) }
func (n *Properties) VisitWith(v Visitor) { v.VisitProperties(n) }
func (n *Property) VisitWith(v Visitor) { v.VisitProperty(n) }
func (n *PropertyShort) VisitWith(v Visitor) { v.VisitPropertyShort(n) }
func (n *PropertyKeyed) VisitWith(v Visitor) { v.VisitPropertyKeyed(n) }
func (n *SpreadElement) VisitWith(v Visitor) { v.VisitSpreadElement(n) }
func (n *SequenceExpression) VisitWith(v Visitor) { v.VisitSequenceExpression(n) }
func (n *ThisExpression) VisitWith(v Visitor) { v.VisitThisExpression(n) }
func (n *SuperExpression) VisitWith(v Visitor) { v.VisitSuperExpression(n) }
func (n *UnaryExpression) VisitWith(v Visitor) { v.VisitUnaryExpression(n) }
func (n *UpdateExpression) VisitWith(v Visitor) { v.VisitUpdateExpression(n) }
func (n *Identifier) VisitWith(v Visitor) { v.VisitIdentifier(n) }
func (n *BooleanLiteral) VisitWith(v Visitor) { v.VisitBooleanLiteral(n) }
func (n *NullLiteral) VisitWith(v Visitor) { v.VisitNullLiteral(n) }
func (n *NumberLiteral) VisitWith(v Visitor) { v.VisitNumberLiteral(n) }
func (n *StringLiteral) VisitWith(v Visitor) { v.VisitStringLiteral(n) }
func (n *FunctionLiteral) VisitWith(v Visitor) { v.VisitFunctionLiteral(n) }
func (n *ParameterList) VisitWith(v Visitor) { v.VisitParameterList(n) }
func (n *ClassLiteral) VisitWith(v Visitor) { v.VisitClassLiteral(n) }
func (n *ClassElements) VisitWith(v Visitor) { v.VisitClassElements(n) }
func (n *ClassElement) VisitWith(v Visitor) { v.VisitClassElement(n) }
func (n *FieldDefinition) VisitWith(v Visitor) { v.VisitFieldDefinition(n) }
func (n *MethodDefinition) VisitWith(v Visitor) { v.VisitMethodDefinition(n) }
func (n *ClassStaticBlock) VisitWith(v Visitor) { v.VisitClassStaticBlock(n) }
func (n *Expressions) VisitWith(v Visitor) { v.VisitExpressions(n) }
func (n *Expression) VisitWith(v Visitor) { v.VisitExpression(n) }
func (n *Statements) VisitWith(v Visitor) { v.VisitStatements(n) }
func (n *Statement) VisitWith(v Visitor) { v.VisitStatement(n) }
func (n *BadStatement) VisitWith(v Visitor) { v.VisitBadStatement(n) }
func (n *BlockStatement) VisitWith(v Visitor) { v.VisitBlockStatement(n) }
func (n *EmptyStatement) VisitWith(v Visitor) { v.VisitEmptyStatement(n) }
func (n *ExpressionStatement) VisitWith(v Visitor) { v.VisitExpressionStatement(n) }
func (n *IfStatement) VisitWith(v Visitor) { v.VisitIfStatement(n) }
func (n *ReturnStatement) VisitWith(v Visitor) { v.VisitReturnStatement(n) }
func (n *VariableDeclaration) VisitWith(v Visitor) { v.VisitVariableDeclaration(n) }
func (n *VariableDeclarators) VisitWith(v Visitor) { v.VisitVariableDeclarators(n) }
func (n *VariableDeclarator) VisitWith(v Visitor) { v.VisitVariableDeclarator(n) }
func (n *FunctionDeclaration) VisitWith(v Visitor) { v.VisitFunctionDeclaration(n) }
func (n *ClassDeclaration) VisitWith(v Visitor) { v.VisitClassDeclaration(n) }

func (n *Program) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
}

func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	n.Value.VisitWith(v)
}

func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *AwaitExpression) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *InvalidExpression) VisitChildrenWith(v Visitor) {}

func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *MemberProperty) VisitChildrenWith(v Visitor) {
	if n.Prop != nil {
		n.Prop.VisitWith(v)
	}
}

func (n *ComputedProperty) VisitChildrenWith(v Visitor) {
	n.Expr.VisitWith(v)
}

func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	n.Alternate.VisitWith(v)
}

func (n *ArrowFunctionLiteral) VisitChildrenWith(v Visitor) {
	n.ParameterList.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ConciseBody) VisitChildrenWith(v Visitor) {
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}

func (n *PrivateIdentifier) VisitChildrenWith(v Visitor) {
	n.Identifier.VisitWith(v)
}

func (n *NewExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	n.Value.VisitWith(v)
}

func (n *Properties) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Property) VisitChildrenWith(v Visitor) {
	if n.Prop != nil {
		n.Prop.VisitWith(v)
	}
}

func (n *PropertyShort) VisitChildrenWith(v Visitor) {
	n.Name.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *PropertyKeyed) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Value.VisitWith(v)
}

func (n *SpreadElement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	n.Sequence.VisitWith(v)
}

func (n *ThisExpression) VisitChildrenWith(v Visitor)  {}
func (n *SuperExpression) VisitChildrenWith(v Visitor) {}

func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *Identifier) VisitChildrenWith(v Visitor)     {}
func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}
func (n *NullLiteral) VisitChildrenWith(v Visitor)    {}
func (n *NumberLiteral) VisitChildrenWith(v Visitor)  {}
func (n *StringLiteral) VisitChildrenWith(v Visitor)  {}

func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	n.ParameterList.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ParameterList) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *ClassLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *ClassElements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *ClassElement) VisitChildrenWith(v Visitor) {
	if n.Element != nil {
		n.Element.VisitWith(v)
	}
}

func (n *FieldDefinition) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *MethodDefinition) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ClassStaticBlock) VisitChildrenWith(v Visitor) {
	n.Block.VisitWith(v)
}

func (n *Expressions) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Expression) VisitChildrenWith(v Visitor) {
	if n.Expr != nil {
		n.Expr.VisitWith(v)
	}
}

func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Statement) VisitChildrenWith(v Visitor) {
	if n.Stmt != nil {
		n.Stmt.VisitWith(v)
	}
}

func (n *BadStatement) VisitChildrenWith(v Visitor) {}

func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *VariableDeclarators) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	n.Target.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Function.VisitWith(v)
}

func (n *ClassDeclaration) VisitChildrenWith(v Visitor) {
	n.Class.VisitWith(v)
}
