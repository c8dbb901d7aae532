package ast

import (
	"strings"
	"unicode"
)

// ClassName returns the class's own binding name.
func (c *ClassLiteral) ClassName() (string, bool) {
	if c.Name == nil || c.Name.Name == "" {
		return "", false
	}
	return c.Name.Name, true
}

// SuperClassName returns the name of the class in the extends clause. An
// identifier yields its name and a chain of non-computed member accesses on
// an identifier yields the dotted path (React.Component). Any other
// expression has no name.
func (c *ClassLiteral) SuperClassName() (string, bool) {
	if c.SuperClass == nil {
		return "", false
	}
	return dottedName(c.SuperClass.Expr)
}

func dottedName(e Expr) (string, bool) {
	switch n := e.(type) {
	case *Identifier:
		return n.Name, n.Name != ""
	case *MemberExpression:
		prop, ok := n.Property.Prop.(*Identifier)
		if !ok {
			return "", false
		}
		object, ok := dottedName(n.Object.Expr)
		if !ok {
			return "", false
		}
		return object + "." + prop.Name, true
	}
	return "", false
}

// IsIdentifierName reports whether s can be written as a bare identifier
// name. Reserved words are allowed: they are valid as property and field
// names.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !IsIdentifierStart(r) {
				return false
			}
		} else if !IsIdentifierPart(r) {
			return false
		}
	}
	return true
}

// IsPrivateName reports whether s is a private name such as #count.
func IsPrivateName(s string) bool {
	return strings.HasPrefix(s, "#") && IsIdentifierName(s[1:])
}

// IsIdentifierStart reports whether r may start an identifier.
func IsIdentifierStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

// IsIdentifierPart reports whether r may continue an identifier.
func IsIdentifierPart(r rune) bool {
	return IsIdentifierStart(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc) || r == '\u200c' || r == '\u200d'
}
