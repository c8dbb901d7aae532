package classprops_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/classprops/ast"
	"github.com/t14raptor/classprops/generator"
	"github.com/t14raptor/classprops/parser"
	"github.com/t14raptor/classprops/transform/classprops"
)

func inject(t *testing.T, in string, opts *classprops.Options) (string, classprops.Result) {
	t.Helper()
	p, err := parser.ParseFile(in)
	require.NoError(t, err)
	res := classprops.Transform(p, opts)
	return generator.Generate(p), res
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts *classprops.Options
		want string
	}{
		{
			name: "class name",
			in:   `class Foo {}`,
			opts: &classprops.Options{
				Classes: []string{"Foo"},
				Props:   []classprops.MemberSpec{{Key: "name", Static: true}},
			},
			want: "class Foo {\n    static name;\n}\n",
		},
		{
			name: "superclass name",
			in:   "class Foo extends Node {}\nclass Bar {}",
			opts: &classprops.Options{
				SuperClasses: []string{"Node"},
				Props:        []classprops.MemberSpec{{Key: "name", Static: true}},
			},
			want: "class Foo extends Node {\n    static name;\n}\nclass Bar {}\n",
		},
		{
			name: "snippet values",
			in:   `class Foo {}`,
			opts: &classprops.Options{
				All: true,
				Props: []classprops.MemberSpec{
					{Key: "name", Value: classprops.Snippet(`"Bar"`)},
					{Key: "getName", Value: classprops.Snippet(`() => this.name;`)},
				},
			},
			want: "class Foo {\n    name = \"Bar\";\n    getName = () => this.name;\n}\n",
		},
		{
			name: "unusable values",
			in:   `class Foo {}`,
			opts: &classprops.Options{
				All: true,
				Props: []classprops.MemberSpec{
					{Key: "notExpression", Value: classprops.Snippet(`a;b;`)},
					{Key: "wrongType", Value: classprops.Unsupported{Raw: map[string]any{}}},
				},
			},
			want: "class Foo {\n    notExpression;\n    wrongType;\n}\n",
		},
		{
			name: "func value",
			in:   `class Foo {}`,
			opts: &classprops.Options{
				Classes: []string{"Foo"},
				Props: []classprops.MemberSpec{{
					Key: "name",
					Value: classprops.Func(func(f *ast.Factory) *ast.Expression {
						return f.StringLiteral("hello")
					}),
				}},
			},
			want: "class Foo {\n    name = \"hello\";\n}\n",
		},
		{
			name: "class name value",
			in:   `class Foo {}`,
			opts: &classprops.Options{
				All:   true,
				Props: []classprops.MemberSpec{{Key: "name", Static: true, Value: classprops.ClassName{}}},
			},
			want: "class Foo {\n    static name = \"Foo\";\n}\n",
		},
		{
			name: "appended after existing members",
			in:   `class Foo { a = 1; b() {} }`,
			opts: &classprops.Options{
				All:   true,
				Props: []classprops.MemberSpec{{Key: "x"}, {Key: "y", Static: true}},
			},
			want: "class Foo {\n    a = 1;\n    b() {}\n    x;\n    static y;\n}\n",
		},
		{
			name: "key shapes",
			in:   `class Foo {}`,
			opts: &classprops.Options{
				All:   true,
				Props: []classprops.MemberSpec{{Key: "#secret"}, {Key: "data-id"}, {Key: "class"}},
			},
			want: "class Foo {\n    #secret;\n    \"data-id\";\n    class;\n}\n",
		},
		{
			name: "dotted superclass",
			in:   `class View extends React.Component {}`,
			opts: &classprops.Options{
				SuperClasses: []string{"React.Component"},
				Props:        []classprops.MemberSpec{{Key: "state", Value: classprops.Snippet(`{}`)}},
			},
			want: "class View extends React.Component {\n    state;\n}\n",
		},
		{
			name: "class expressions are not visited",
			in:   `const A = class Foo {};`,
			opts: &classprops.Options{
				All:   true,
				Props: []classprops.MemberSpec{{Key: "name"}},
			},
			want: "const A = class Foo {};\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, _ := inject(t, test.in, test.opts)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestNoOp(t *testing.T) {
	const src = `class Foo extends Bar {
    static x = 1;
    get y() {
        return this.x;
    }
}
class Baz {}
const q = new Foo();
`
	for name, opts := range map[string]*classprops.Options{
		"nil options":  nil,
		"no props":     {All: true, Classes: []string{"Foo"}},
		"no selector":  {Props: []classprops.MemberSpec{{Key: "name"}}},
		"no match":     {Classes: []string{"Missing"}, Props: []classprops.MemberSpec{{Key: "name"}}},
		"empty props":  {All: true, Props: []classprops.MemberSpec{}},
		"superclasses": {SuperClasses: []string{"Foo"}, Props: []classprops.MemberSpec{{Key: "name"}}},
	} {
		t.Run(name, func(t *testing.T) {
			want, err := parser.ParseFile(src)
			require.NoError(t, err)
			got, err := parser.ParseFile(src)
			require.NoError(t, err)

			res := classprops.Transform(got, opts)
			assert.Zero(t, res.Injected)
			assert.Empty(t, cmp.Diff(want, got))
			assert.Equal(t, generator.Generate(want), generator.Generate(got))
		})
	}
}

func TestIndependence(t *testing.T) {
	p, err := parser.ParseFile(`class Outer { m() { class Inner {} return Inner; } }`)
	require.NoError(t, err)

	res := classprops.New(&classprops.Options{
		Classes: []string{"Inner"},
		Props:   []classprops.MemberSpec{{Key: "tag", Value: classprops.ClassName{}}},
	}).Apply(p)
	assert.Equal(t, classprops.Result{Visited: 2, Injected: 1}, res)

	outer := p.Body[0].Stmt.(*ast.ClassDeclaration).Class
	require.Len(t, outer.Body, 1)

	method := outer.Body[0].Element.(*ast.MethodDefinition)
	inner := method.Body.Body.List[0].Stmt.(*ast.ClassDeclaration).Class
	require.Len(t, inner.Body, 1)
	field := inner.Body[0].Element.(*ast.FieldDefinition)
	assert.Equal(t, `"Inner"`, generator.Generate(field.Initializer))
}

func TestSharedPlugin(t *testing.T) {
	plugin := classprops.New(&classprops.Options{
		All:   true,
		Props: []classprops.MemberSpec{{Key: "id", Value: classprops.ClassName{}}},
	})

	for _, name := range []string{"A", "B", "C"} {
		p, err := parser.ParseFile("class " + name + " {}")
		require.NoError(t, err)
		p.VisitWith(plugin.Visitor())
		assert.Equal(t, "class "+name+" {\n    id = \""+name+"\";\n}\n", generator.Generate(p))
	}
}

func TestPluginAccessors(t *testing.T) {
	opts := &classprops.Options{
		Classes:      []string{"b", "a", "b"},
		SuperClasses: []string{"Node"},
		Props:        []classprops.MemberSpec{{Key: "x"}},
	}
	plugin := classprops.New(opts)
	opts.Props[0].Key = "changed"

	assert.False(t, plugin.All())
	assert.Equal(t, []string{"a", "b"}, plugin.Classes())
	assert.Equal(t, []string{"Node"}, plugin.SuperClasses())
	assert.Equal(t, "x", plugin.Props()[0].Key)

	empty := classprops.New(nil)
	assert.Empty(t, empty.Classes())
	assert.Empty(t, empty.Props())
}
