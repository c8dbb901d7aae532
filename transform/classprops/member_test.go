package classprops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/classprops/ast"
	"github.com/t14raptor/classprops/generator"
	"github.com/t14raptor/classprops/transform/classprops"
)

func TestSnippetValues(t *testing.T) {
	tests := []struct {
		snippet string
		want    string // empty when no initializer is expected
	}{
		{snippet: `"hello"`, want: `"hello"`},
		{snippet: `'single'`, want: `'single'`},
		{snippet: `42`, want: `42`},
		{snippet: `a + b * c`, want: `a + b * c`},
		{snippet: `x => x * 2`, want: `(x) => x * 2`},
		{snippet: `(1, 2)`, want: `1, 2`},
		{snippet: `new Map()`, want: `new Map()`},
		{snippet: `({ a: 1 })`, want: "{\n    a: 1\n}"},
		{snippet: `  [1, 2];  `, want: `[1, 2]`},
		{snippet: `a;b;`},
		{snippet: ``},
		{snippet: `;`},
		{snippet: `{}`},
		{snippet: `let x = 1`},
		{snippet: `let [a] = b`},
		{snippet: `let`, want: `let`},
		{snippet: `function f() {}`},
		{snippet: `1 +`},
		{snippet: `"unterminated`},
		{snippet: "`template`"},
	}

	for _, test := range tests {
		field := classprops.BuildMember(classprops.MemberSpec{
			Key:   "value",
			Value: classprops.Snippet(test.snippet),
		}, &ast.Factory{}, nil)

		if test.want == "" {
			assert.Nil(t, field.Initializer, "snippet %q", test.snippet)
			continue
		}
		if assert.NotNil(t, field.Initializer, "snippet %q", test.snippet) {
			assert.Equal(t, test.want, generator.Generate(field.Initializer), "snippet %q", test.snippet)
		}
	}
}

func TestBuildMember(t *testing.T) {
	class := &ast.ClassLiteral{Name: &ast.Identifier{Name: "Foo"}}
	anonymous := &ast.ClassLiteral{}

	t.Run("static flag and key", func(t *testing.T) {
		field := classprops.BuildMember(classprops.MemberSpec{Key: "count", Static: true}, nil, class)
		assert.True(t, field.Static)
		assert.False(t, field.Computed)
		assert.Nil(t, field.Initializer)
		require.IsType(t, &ast.Identifier{}, field.Key.Expr)
		assert.Equal(t, "count", field.Key.Expr.(*ast.Identifier).Name)
	})

	t.Run("private key", func(t *testing.T) {
		field := classprops.BuildMember(classprops.MemberSpec{Key: "#count"}, nil, class)
		require.IsType(t, &ast.PrivateIdentifier{}, field.Key.Expr)
		assert.Equal(t, "count", field.Key.Expr.(*ast.PrivateIdentifier).Identifier.Name)
	})

	t.Run("string key", func(t *testing.T) {
		for _, key := range []string{"", "#", "a b", "1st"} {
			field := classprops.BuildMember(classprops.MemberSpec{Key: key}, nil, class)
			require.IsType(t, &ast.StringLiteral{}, field.Key.Expr, "key %q", key)
			assert.Equal(t, key, field.Key.Expr.(*ast.StringLiteral).Value)
		}
	})

	t.Run("func value", func(t *testing.T) {
		var got *ast.Factory
		f := &ast.Factory{}
		field := classprops.BuildMember(classprops.MemberSpec{
			Key: "value",
			Value: classprops.Func(func(factory *ast.Factory) *ast.Expression {
				got = factory
				return factory.Call(factory.Identifier("make"), factory.NumberLiteral(1))
			}),
		}, f, class)
		assert.Same(t, f, got)
		assert.Equal(t, "make(1)", generator.Generate(field.Initializer))
	})

	t.Run("nil func results", func(t *testing.T) {
		var nilFunc classprops.Func
		for _, v := range []classprops.Value{
			nilFunc,
			classprops.Func(func(*ast.Factory) *ast.Expression { return nil }),
		} {
			field := classprops.BuildMember(classprops.MemberSpec{Key: "value", Value: v}, nil, class)
			assert.Nil(t, field.Initializer)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		for _, raw := range []any{nil, map[string]any{}, 3, []any{"a"}, true} {
			field := classprops.BuildMember(classprops.MemberSpec{
				Key:   "value",
				Value: classprops.Unsupported{Raw: raw},
			}, nil, class)
			assert.Nil(t, field.Initializer, "raw %#v", raw)
		}
	})

	t.Run("class name", func(t *testing.T) {
		field := classprops.BuildMember(classprops.MemberSpec{Key: "name", Value: classprops.ClassName{}}, nil, class)
		assert.Equal(t, `"Foo"`, generator.Generate(field.Initializer))

		field = classprops.BuildMember(classprops.MemberSpec{Key: "name", Value: classprops.ClassName{}}, nil, anonymous)
		assert.Nil(t, field.Initializer)

		field = classprops.BuildMember(classprops.MemberSpec{Key: "name", Value: classprops.ClassName{}}, nil, nil)
		assert.Nil(t, field.Initializer)
	})
}
