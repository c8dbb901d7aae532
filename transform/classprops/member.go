package classprops

import (
	"github.com/t14raptor/classprops/ast"
	"github.com/t14raptor/classprops/parser"
)

// BuildMember creates the field described by spec for class. An initializer
// that cannot be resolved leaves the field without one; BuildMember never
// fails.
func BuildMember(spec MemberSpec, f *ast.Factory, class *ast.ClassLiteral) *ast.FieldDefinition {
	if f == nil {
		f = &ast.Factory{}
	}
	return &ast.FieldDefinition{
		Key:         memberKey(f, spec.Key),
		Static:      spec.Static,
		Initializer: resolveValue(spec.Value, f, class),
	}
}

func memberKey(f *ast.Factory, key string) *ast.Expression {
	switch {
	case ast.IsIdentifierName(key):
		return f.Identifier(key)
	case ast.IsPrivateName(key):
		return f.Wrap(&ast.PrivateIdentifier{Identifier: &ast.Identifier{Name: key[1:]}})
	}
	return f.StringLiteral(key)
}

func resolveValue(v Value, f *ast.Factory, class *ast.ClassLiteral) *ast.Expression {
	switch v := v.(type) {
	case Snippet:
		return parseSnippet(string(v))
	case Func:
		if v == nil {
			return nil
		}
		return v(f)
	case ClassName:
		if class == nil {
			return nil
		}
		if name, ok := class.ClassName(); ok {
			return f.StringLiteral(name)
		}
	}
	return nil
}

// parseSnippet returns the expression of a snippet consisting of exactly
// one expression statement.
func parseSnippet(src string) *ast.Expression {
	program, err := parser.ParseFile(src)
	if err != nil || program == nil || len(program.Body) != 1 {
		return nil
	}
	stmt, ok := program.Body[0].Stmt.(*ast.ExpressionStatement)
	if !ok || stmt.Expression == nil {
		return nil
	}
	return stmt.Expression
}
