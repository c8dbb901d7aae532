package ast

import "github.com/t14raptor/classprops/token"

// Factory builds synthesized nodes. Synthesized nodes carry no source
// positions and no raw text, so the generator prints them canonically.
type Factory struct{}

// Wrap wraps an expression node into an *Expression.
func (Factory) Wrap(e Expr) *Expression {
	return &Expression{Expr: e}
}

func (f Factory) StringLiteral(value string) *Expression {
	return f.Wrap(&StringLiteral{Value: value})
}

func (f Factory) NumberLiteral(value float64) *Expression {
	return f.Wrap(&NumberLiteral{Value: value})
}

func (f Factory) BooleanLiteral(value bool) *Expression {
	return f.Wrap(&BooleanLiteral{Value: value})
}

func (f Factory) NullLiteral() *Expression {
	return f.Wrap(&NullLiteral{})
}

func (f Factory) Identifier(name string) *Expression {
	return f.Wrap(&Identifier{Name: name})
}

func (f Factory) This() *Expression {
	return f.Wrap(&ThisExpression{})
}

// Member builds object.name, or object.#name when name starts with '#'.
func (f Factory) Member(object *Expression, name string) *Expression {
	var prop MemberProp = &Identifier{Name: name}
	if len(name) > 1 && name[0] == '#' {
		prop = &PrivateIdentifier{Identifier: &Identifier{Name: name[1:]}}
	}
	return f.Wrap(&MemberExpression{Object: object, Property: &MemberProperty{Prop: prop}})
}

// Index builds object[index].
func (f Factory) Index(object, index *Expression) *Expression {
	return f.Wrap(&MemberExpression{Object: object, Property: &MemberProperty{Prop: &ComputedProperty{Expr: index}}})
}

func (f Factory) Call(callee *Expression, args ...*Expression) *Expression {
	return f.Wrap(&CallExpression{Callee: callee, ArgumentList: derefAll(args)})
}

func (f Factory) New(callee *Expression, args ...*Expression) *Expression {
	return f.Wrap(&NewExpression{Callee: callee, ArgumentList: derefAll(args)})
}

func (f Factory) Array(elements ...*Expression) *Expression {
	return f.Wrap(&ArrayLiteral{Value: derefAll(elements)})
}

// Object builds an object literal with one keyed property per entry, in
// the given order.
func (f Factory) Object(entries ...KeyValue) *Expression {
	props := make(Properties, 0, len(entries))
	for _, e := range entries {
		props = append(props, Property{Prop: &PropertyKeyed{
			Key:   f.StringLiteral(e.Key),
			Kind:  PropertyKindValue,
			Value: e.Value,
		}})
	}
	return f.Wrap(&ObjectLiteral{Value: props})
}

// KeyValue is an object literal entry for Factory.Object.
type KeyValue struct {
	Key   string
	Value *Expression
}

func (f Factory) Binary(op token.Token, left, right *Expression) *Expression {
	return f.Wrap(&BinaryExpression{Operator: op, Left: left, Right: right})
}

func (f Factory) Unary(op token.Token, operand *Expression) *Expression {
	return f.Wrap(&UnaryExpression{Operator: op, Operand: operand})
}

// Arrow builds (params) => body.
func (f Factory) Arrow(params []string, body *Expression) *Expression {
	list := make(VariableDeclarators, 0, len(params))
	for _, p := range params {
		list = append(list, VariableDeclarator{Target: &Identifier{Name: p}})
	}
	return f.Wrap(&ArrowFunctionLiteral{
		ParameterList: &ParameterList{List: list},
		Body:          &ConciseBody{Body: body},
	})
}

func derefAll(exprs []*Expression) Expressions {
	if len(exprs) == 0 {
		return nil
	}
	out := make(Expressions, len(exprs))
	for i, e := range exprs {
		out[i] = *e
	}
	return out
}
