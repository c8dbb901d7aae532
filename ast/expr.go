package ast

import "github.com/t14raptor/classprops/token"

type (
	Expressions []Expression

	// Expression is a struct to allow defining methods on it.
	Expression struct {
		Expr `optional:"true"`
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		VisitableNode
		_expr()
	}

	AwaitExpression struct {
		Await    Idx
		Argument *Expression
	}

	ArrayLiteral struct {
		LeftBracket  Idx
		RightBracket Idx
		Value        Expressions
	}

	AssignExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	InvalidExpression struct {
		From Idx
		To   Idx
	}

	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	MemberExpression struct {
		Object   *Expression
		Property *MemberProperty
	}

	// MemberProperty is the part after the object of a member expression:
	// an *Identifier (a.b), a *PrivateIdentifier (a.#b) or a
	// *ComputedProperty (a[b]).
	MemberProperty struct {
		Prop MemberProp
	}

	MemberProp interface {
		VisitableNode
		_memberProperty()
	}

	ComputedProperty struct {
		Expr *Expression
	}

	CallExpression struct {
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ConditionalExpression struct {
		Test       *Expression
		Consequent *Expression
		Alternate  *Expression
	}

	ConciseBody struct {
		Body Body
	}

	// Body is either a *BlockStatement or an *Expression.
	Body interface {
		VisitableNode
		_conciseBody()
	}

	ArrowFunctionLiteral struct {
		Start         Idx
		ParameterList *ParameterList
		Body          *ConciseBody
		Async         bool
	}

	PrivateIdentifier struct {
		Identifier *Identifier
	}

	NewExpression struct {
		New              Idx
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ObjectLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Value      Properties
	}

	SpreadElement struct {
		Ellipsis Idx
		Argument *Expression
	}

	SequenceExpression struct {
		Sequence Expressions
	}

	ThisExpression struct {
		Idx Idx
	}

	SuperExpression struct {
		Idx Idx
	}

	UnaryExpression struct {
		Operator token.Token
		Idx      Idx
		Operand  *Expression
	}

	UpdateExpression struct {
		Operator token.Token
		Idx      Idx // Operator position
		Operand  *Expression
		Postfix  bool
	}
)

func (*BlockStatement) _conciseBody() {}
func (*Expression) _conciseBody()     {}

func (*Identifier) _memberProperty()        {}
func (*PrivateIdentifier) _memberProperty() {}
func (*ComputedProperty) _memberProperty()  {}

func (*ArrayLiteral) _expr()          {}
func (*AssignExpression) _expr()      {}
func (*AwaitExpression) _expr()       {}
func (*InvalidExpression) _expr()     {}
func (*BinaryExpression) _expr()      {}
func (*CallExpression) _expr()        {}
func (*ConditionalExpression) _expr() {}
func (*MemberExpression) _expr()      {}
func (*ArrowFunctionLiteral) _expr()  {}
func (*NewExpression) _expr()         {}
func (*ObjectLiteral) _expr()         {}
func (*SequenceExpression) _expr()    {}
func (*ThisExpression) _expr()        {}
func (*SuperExpression) _expr()       {}
func (*UnaryExpression) _expr()       {}
func (*UpdateExpression) _expr()      {}
func (*SpreadElement) _expr()         {}
func (*PrivateIdentifier) _expr()     {}
