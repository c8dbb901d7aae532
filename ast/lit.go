package ast

type (
	BooleanLiteral struct {
		Idx   Idx
		Value bool
	}

	NullLiteral struct {
		Idx Idx
	}

	NumberLiteral struct {
		Value float64

		Raw *string

		Idx Idx
	}

	StringLiteral struct {
		Value string

		// Raw is the literal as written, quotes included. It is nil for
		// synthesized literals.
		Raw *string

		Idx Idx
	}
)

func (*BooleanLiteral) _expr() {}
func (*NullLiteral) _expr()    {}
func (*NumberLiteral) _expr()  {}
func (*StringLiteral) _expr()  {}

func (b *BooleanLiteral) literal() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (n *NumberLiteral) raw() string {
	if n.Raw != nil {
		return *n.Raw
	}
	return ""
}

func (n *StringLiteral) raw() string {
	if n.Raw != nil {
		return *n.Raw
	}
	return ""
}
