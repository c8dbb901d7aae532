package generator

import (
	"math"
	"strings"
	"testing"

	"github.com/t14raptor/classprops/ast"
	"github.com/t14raptor/classprops/parser"
	"github.com/t14raptor/classprops/token"
)

func generateNoIndent(t *testing.T, src string) string {
	t.Helper()
	p, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile(%q) failed: %v", src, err)
	}
	out := Generate(p)
	return strings.ReplaceAll(strings.ReplaceAll(out, "\n", ""), "    ", "")
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-1, "-1"},
		{1.5, "1.5"},
		{0.1, "0.1"},
		{123456789, "123456789"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e300, "1.5e+300"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{-2.5e-8, "-2.5e-8"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, test := range tests {
		if got := formatNumber(test.in); got != test.want {
			t.Errorf("formatNumber(%v) = %q; want %q", test.in, got, test.want)
		}
	}
}

func TestQuoteJS(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"hello", `"hello"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"a\nb\rc\td", `"a\nb\rc\td"`},
		{"\b\f\v", `"\b\f\v"`},
		{"\x00\x1f\x7f", `"\x00\x1f\x7f"`},
		{"\u2028\u2029", `"\u2028\u2029"`},
		{"a\xffb", `"a\xffb"`},
		{"\xe2\x80", `"\xe2\x80"`},
		{"\ufffd", "\"\ufffd\""},
		{"it's", `"it's"`},
		{"café \U0001F600", "\"café \U0001F600\""},
	}
	for _, test := range tests {
		if got := quoteJS(test.in); got != test.want {
			t.Errorf("quoteJS(%q) = %s; want %s", test.in, got, test.want)
		}
	}
}

func TestSynthesized(t *testing.T) {
	f := ast.Factory{}

	tests := []struct {
		name string
		node *ast.Expression
		want string
	}{
		{"string", f.StringLiteral("Bar"), `"Bar"`},
		{"number", f.NumberLiteral(2.5), `2.5`},
		{"negative number operand", f.Binary(token.Minus, f.Identifier("a"), f.NumberLiteral(-1)), `a - -1`},
		{"negative number member", f.Member(f.NumberLiteral(-1), "toFixed"), `(-1).toFixed`},
		{"boolean", f.BooleanLiteral(true), `true`},
		{"null", f.NullLiteral(), `null`},
		{"this member", f.Member(f.This(), "name"), `this.name`},
		{"private member", f.Member(f.This(), "#secret"), `this.#secret`},
		{"index", f.Index(f.Identifier("a"), f.StringLiteral("b")), `a["b"]`},
		{"call", f.Call(f.Identifier("f"), f.NumberLiteral(1), f.Identifier("x")), `f(1, x)`},
		{"new", f.New(f.Member(f.Identifier("a"), "B")), `new a.B()`},
		{"new of call", f.New(f.Call(f.Identifier("make"))), `new (make())()`},
		{"array", f.Array(f.NumberLiteral(1), f.NumberLiteral(2)), `[1, 2]`},
		{"empty array", f.Array(), `[]`},
		{"empty object", f.Object(), `{}`},
		{"object", f.Object(ast.KeyValue{Key: "a", Value: f.NumberLiteral(1)}), "{\n    \"a\": 1\n}"},
		{"arrow", f.Arrow([]string{"a", "b"}, f.Binary(token.Plus, f.Identifier("a"), f.Identifier("b"))), `(a, b) => a + b`},
		{"arrow returning object", f.Arrow(nil, f.Object()), `() => ({})`},
		{"grouping", f.Binary(token.Multiply, f.Binary(token.Plus, f.Identifier("a"), f.Identifier("b")), f.Identifier("c")), `(a + b) * c`},
		{"left associative", f.Binary(token.Minus, f.Identifier("a"), f.Binary(token.Minus, f.Identifier("b"), f.Identifier("c"))), `a - (b - c)`},
		{"right associative", f.Binary(token.Exponent, f.Binary(token.Exponent, f.Identifier("a"), f.Identifier("b")), f.Identifier("c")), `(a ** b) ** c`},
		{"unary before exponent", f.Binary(token.Exponent, f.Unary(token.Minus, f.Identifier("a")), f.NumberLiteral(2)), `(-a) ** 2`},
		{"coalesce with or", f.Binary(token.Coalesce, f.Identifier("a"), f.Binary(token.LogicalOr, f.Identifier("b"), f.Identifier("c"))), `a ?? (b || c)`},
		{"and with coalesce", f.Binary(token.LogicalAnd, f.Binary(token.Coalesce, f.Identifier("a"), f.Identifier("b")), f.Identifier("c")), `(a ?? b) && c`},
		{"unary of binary", f.Unary(token.Not, f.Binary(token.LogicalAnd, f.Identifier("a"), f.Identifier("b"))), `!(a && b)`},
		{"typeof", f.Unary(token.Typeof, f.Identifier("a")), `typeof a`},
		{"double minus", f.Unary(token.Minus, f.Unary(token.Minus, f.Identifier("a"))), `- -a`},
		{"member of binary", f.Member(f.Binary(token.Plus, f.Identifier("a"), f.Identifier("b")), "c"), `(a + b).c`},
	}
	for _, test := range tests {
		if got := Generate(test.node); got != test.want {
			t.Errorf("%s: Generate = %q; want %q", test.name, got, test.want)
		}
	}
}

func TestClassPrinting(t *testing.T) {
	f := ast.Factory{}

	class := &ast.ClassLiteral{
		Name:       &ast.Identifier{Name: "Foo"},
		SuperClass: f.Member(f.Identifier("React"), "Component"),
	}
	decl := &ast.ClassDeclaration{Class: class}
	program := &ast.Program{Body: ast.Statements{{Stmt: decl}}}

	if got, want := Generate(program), "class Foo extends React.Component {}\n"; got != want {
		t.Errorf("empty class = %q; want %q", got, want)
	}

	class.Body = append(class.Body,
		ast.ClassElement{Element: &ast.FieldDefinition{Key: f.Identifier("name"), Static: true}},
		ast.ClassElement{Element: &ast.FieldDefinition{Key: f.StringLiteral("data-id"), Initializer: f.NumberLiteral(1)}},
		ast.ClassElement{Element: &ast.FieldDefinition{Key: f.Identifier("k"), Computed: true, Initializer: f.Arrow(nil, f.This())}},
		ast.ClassElement{Element: &ast.FieldDefinition{
			Key:         f.Wrap(&ast.PrivateIdentifier{Identifier: &ast.Identifier{Name: "n"}}),
			Initializer: f.Binary(token.Plus, f.NumberLiteral(1), f.NumberLiteral(2)),
		}},
	)
	want := `class Foo extends React.Component {
    static name;
    "data-id" = 1;
    [k] = () => this;
    #n = 1 + 2;
}
`
	if got := Generate(program); got != want {
		t.Errorf("class with fields\n  got:  %q\n  want: %q", got, want)
	}
}

func TestSuperClassParens(t *testing.T) {
	f := ast.Factory{}
	class := &ast.ClassLiteral{
		Name:       &ast.Identifier{Name: "A"},
		SuperClass: f.Binary(token.LogicalOr, f.Identifier("B"), f.Identifier("C")),
	}
	if got, want := Generate(class), "class A extends (B || C) {}"; got != want {
		t.Errorf("Generate = %q; want %q", got, want)
	}
}

func TestStatementStart(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `({}).toString()`, want: `({}.toString());`},
		{in: `({} + a)`, want: `({} + a);`},
		{in: `(function () {}).call(this)`, want: `(function() {}.call(this));`},
		{in: `(class {}).name`, want: `(class {}.name);`},
		{in: `a = {}`, want: `a = {};`},
		{in: `(a, {})`, want: `a, {};`},
		{in: `f({})`, want: `f({});`},
	}
	for _, test := range tests {
		if got := generateNoIndent(t, test.in); got != test.want {
			t.Errorf("Generate(%q) = %q; want %q", test.in, got, test.want)
		}
	}
}

func TestIfBranchesAreNotMutated(t *testing.T) {
	p, err := parser.ParseFile(`if (a) b(); else c();`)
	if err != nil {
		t.Fatal(err)
	}
	Generate(p)

	n := p.Body[0].Stmt.(*ast.IfStatement)
	if _, ok := n.Consequent.Stmt.(*ast.ExpressionStatement); !ok {
		t.Errorf("consequent became %T", n.Consequent.Stmt)
	}
	if _, ok := n.Alternate.Stmt.(*ast.ExpressionStatement); !ok {
		t.Errorf("alternate became %T", n.Alternate.Stmt)
	}
}
