package parser_test

import (
	"strings"
	"testing"

	"github.com/t14raptor/classprops/ast"
	"github.com/t14raptor/classprops/generator"
	"github.com/t14raptor/classprops/parser"
	"github.com/t14raptor/classprops/token"
)

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// roundTrip parses code, regenerates it, and returns the output.
func roundTrip(t *testing.T, code string) string {
	t.Helper()
	p := mustParse(t, code)
	return strings.TrimSpace(generator.Generate(p))
}

func assertRoundTrip(t *testing.T, code, want string) {
	t.Helper()
	got := roundTrip(t, code)
	if got != want {
		t.Errorf("roundTrip(%q)\n  got:  %s\n  want: %s", code, got, want)
	}
}

// firstStmt returns the concrete statement node of the i-th top-level
// statement.
func firstStmt(p *ast.Program, i int) ast.Stmt {
	return p.Body[i].Stmt
}

func exprOf(s ast.Stmt) ast.Expr {
	return s.(*ast.ExpressionStatement).Expression.Expr
}

func TestExpressions(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `a = 1`, want: `a = 1;`},
		{in: `x = y = z`, want: `x = y = z;`},
		{in: `a += 1, b`, want: `a += 1, b;`},
		{in: `a ??= b`, want: `a ??= b;`},
		{in: `var a = b ? c : d`, want: `var a = b ? c : d;`},
		{in: `a ? b : c ? d : e`, want: `a ? b : c ? d : e;`},
		{in: `(a ? b : c) ? d : e`, want: `(a ? b : c) ? d : e;`},
		{in: `a + b * c`, want: `a + b * c;`},
		{in: `(a + b) * c`, want: `(a + b) * c;`},
		{in: `a - (b - c)`, want: `a - (b - c);`},
		{in: `(a - b) - c`, want: `a - b - c;`},
		{in: `a ** b ** c`, want: `a ** b ** c;`},
		{in: `(a ** b) ** c`, want: `(a ** b) ** c;`},
		{in: `(-a) ** 2`, want: `(-a) ** 2;`},
		{in: `a ?? (b || c)`, want: `a ?? (b || c);`},
		{in: `(a && b) ?? c`, want: `(a && b) ?? c;`},
		{in: `a || b && c`, want: `a || b && c;`},
		{in: `a instanceof B && "k" in o`, want: `a instanceof B && "k" in o;`},
		{in: `typeof a === "string"`, want: `typeof a === "string";`},
		{in: `!a`, want: `!a;`},
		{in: `void 0`, want: `void 0;`},
		{in: `delete a.b`, want: `delete a.b;`},
		{in: `- -a`, want: `- -a;`},
		{in: `-(-a)`, want: `- -a;`},
		{in: `+ ++a`, want: `+ ++a;`},
		{in: `a++ + ++b`, want: `a++ + ++b;`},
		{in: `f(a, ...b)`, want: `f(a, ...b);`},
		{in: `f()()`, want: `f()();`},
		{in: `new Foo`, want: `new Foo();`},
		{in: `new a.b.C(1)`, want: `new a.b.C(1);`},
		{in: `new (a.b())()`, want: `new (a.b())();`},
		{in: `new new X()()`, want: `new (new X())();`},
		{in: `a[0].b`, want: `a[0].b;`},
		{in: `a[b, c]`, want: `a[b, c];`},
		{in: `(1).toString()`, want: `(1).toString();`},
		{in: `this.#x`, want: `this.#x;`},
		{in: `#x in this`, want: `#x in this;`},
		{in: `[1, , 2, ]`, want: `[1, , 2];`},
		{in: `[a, ,]`, want: `[a, ,];`},
		{in: `[...a, b]`, want: `[...a, b];`},
		{in: `x => x`, want: `(x) => x;`},
		{in: `(a, b = 1, ...c) => a`, want: `(a, b = 1, ...c) => a;`},
		{in: `async x => await x`, want: `async (x) => await x;`},
		{in: `() => ({})`, want: `() => ({});`},
		{in: `() => {}`, want: `() => {};`},
		{in: `f(() => a, b)`, want: `f(() => a, b);`},
		{in: `(a, b)`, want: `a, b;`},
		{in: `(function () {})()`, want: `(function() {})();`},
		{in: `(class {})`, want: `(class {});`},
		{in: `async function () {}`, want: ``},
		{in: `null; true; false`, want: "null;\ntrue;\nfalse;"},
		{in: `0x10; 1_000; .5; 1e3; 10n`, want: "0x10;\n1_000;\n.5;\n1e3;\n10n;"},
		{in: `"a\"b"; 'c'`, want: "\"a\\\"b\";\n'c';"},
		{in: `super.x`, want: `super.x;`},
	}

	for _, test := range tests {
		p, err := parser.ParseFile(test.in)
		if test.want == "" {
			if err == nil {
				t.Errorf("ParseFile(%q) succeeded; want an error", test.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFile(%q) failed: %v", test.in, err)
			continue
		}
		if got := strings.TrimSpace(generator.Generate(p)); got != test.want {
			t.Errorf("roundTrip(%q)\n  got:  %s\n  want: %s", test.in, got, test.want)
		}
	}
}

func TestObjectLiteral(t *testing.T) {
	assertRoundTrip(t,
		`({ a: 1, b, [c]: 2, ...d, "e": 3, 4: f, m() {}, get g() { return 1; }, set g(v) {}, async *h() {} })`,
		`({
    a: 1,
    b,
    [c]: 2,
    ...d,
    "e": 3,
    4: f,
    m() {},
    get g() {
        return 1;
    },
    set g(v) {},
    async *h() {}
});`)

	assertRoundTrip(t, `x = {}`, `x = {};`)
	assertRoundTrip(t, `x = { get: 1, set: 2, async: 3 }`, "x = {\n    get: 1,\n    set: 2,\n    async: 3\n};")
}

func TestStatements(t *testing.T) {
	assertRoundTrip(t, "a\nb", "a;\nb;")
	assertRoundTrip(t, "a // line\n/* block */ b", "a;\nb;")
	assertRoundTrip(t, `;`, `;`)
	assertRoundTrip(t, `{}`, `{}`)
	assertRoundTrip(t, `{ a; { b; } }`, "{\n    a;\n    {\n        b;\n    }\n}")
	assertRoundTrip(t, `let x = 1, y`, `let x = 1, y;`)
	assertRoundTrip(t, `const f = function* gen() {}`, `const f = function* gen() {};`)
	assertRoundTrip(t, `async function f(a, ...rest) { return await a; }`,
		"async function f(a, ...rest) {\n    return await a;\n}")
	assertRoundTrip(t, `function f(a, b = 2) { if (a) return b; else { return; } }`, `function f(a, b = 2) {
    if (a) {
        return b;
    } else {
        return;
    }
}`)
	assertRoundTrip(t, `if (a) b(); else if (c) d();`, "if (a) {\n    b();\n} else if (c) {\n    d();\n}")
	assertRoundTrip(t, "function f() {\n  return\n  a\n}", "function f() {\n    return;\n    a;\n}")
}

func TestClass(t *testing.T) {
	assertRoundTrip(t, `class Foo {}`, `class Foo {}`)
	assertRoundTrip(t, `class Foo extends mixin(A, B) {}`, `class Foo extends mixin(A, B) {}`)
	assertRoundTrip(t, `class View extends React.Component {}`, `class View extends React.Component {}`)
	assertRoundTrip(t, `class A extends B {
  static #x = 1; 'quoted' = 2; 3; [k] = 4;;
  static { init(); }
  constructor(a) { super(a); }
  static async *gen() {}
  get v() { return this.#x; }
  set v(n) {}
  static = 1
  get;
  async
}`, `class A extends B {
    static #x = 1;
    'quoted' = 2;
    3;
    [k] = 4;
    static {
        init();
    }
    constructor(a) {
        super(a);
    }
    static async *gen() {}
    get v() {
        return this.#x;
    }
    set v(n) {}
    static = 1;
    get;
    async;
}`)
	assertRoundTrip(t, `class A { static static; static get get() {} }`,
		"class A {\n    static static;\n    static get get() {}\n}")
	assertRoundTrip(t, `class A { x = () => this; y = class B {}; }`,
		"class A {\n    x = () => this;\n    y = class B {};\n}")
}

func TestClassAST(t *testing.T) {
	p := mustParse(t, `class A extends B.C { static x = 1; #y; m() {} }`)

	decl, ok := firstStmt(p, 0).(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("got %T; want *ast.ClassDeclaration", firstStmt(p, 0))
	}
	class := decl.Class
	if class.Class != 1 {
		t.Errorf("class.Class = %d; want 1", class.Class)
	}
	if name, _ := class.ClassName(); name != "A" {
		t.Errorf("ClassName() = %q; want A", name)
	}
	if name, _ := class.SuperClassName(); name != "B.C" {
		t.Errorf("SuperClassName() = %q; want B.C", name)
	}
	if len(class.Body) != 3 {
		t.Fatalf("len(Body) = %d; want 3", len(class.Body))
	}

	x := class.Body[0].Element.(*ast.FieldDefinition)
	if !x.Static || x.Idx != 23 || x.Key.Expr.(*ast.Identifier).Name != "x" {
		t.Errorf("unexpected static field %+v", x)
	}
	if lit, ok := x.Initializer.Expr.(*ast.NumberLiteral); !ok || lit.Value != 1 {
		t.Errorf("x initializer = %#v; want 1", x.Initializer.Expr)
	}

	y := class.Body[1].Element.(*ast.FieldDefinition)
	if y.Static || y.Initializer != nil {
		t.Errorf("unexpected instance field %+v", y)
	}
	if priv, ok := y.Key.Expr.(*ast.PrivateIdentifier); !ok || priv.Identifier.Name != "y" {
		t.Errorf("y key = %#v; want #y", y.Key.Expr)
	}

	m := class.Body[2].Element.(*ast.MethodDefinition)
	if m.Kind != ast.PropertyKindMethod || m.Static || m.Body == nil {
		t.Errorf("unexpected method %+v", m)
	}
}

func TestBinaryAST(t *testing.T) {
	p := mustParse(t, `a - b - c; a ** b ** c`)

	left := exprOf(firstStmt(p, 0)).(*ast.BinaryExpression)
	if left.Operator != token.Minus {
		t.Fatalf("operator = %v; want -", left.Operator)
	}
	if _, ok := left.Left.Expr.(*ast.BinaryExpression); !ok {
		t.Errorf("a - b - c should group to the left, got %T on the left", left.Left.Expr)
	}

	right := exprOf(firstStmt(p, 1)).(*ast.BinaryExpression)
	if _, ok := right.Right.Expr.(*ast.BinaryExpression); !ok {
		t.Errorf("a ** b ** c should group to the right, got %T on the right", right.Right.Expr)
	}
}

func TestLiteralValues(t *testing.T) {
	numbers := map[string]float64{
		`0`:      0,
		`42`:     42,
		`1.5`:    1.5,
		`.5`:     0.5,
		`1e3`:    1000,
		`0x1F`:   31,
		`0o17`:   15,
		`0b101`:  5,
		`017`:    15,
		`019`:    19,
		`1_000`:  1000,
		`10n`:    10,
		`1e400`:  0, // checked separately
		`0.1e-1`: 0.01,
	}
	for src, want := range numbers {
		p := mustParse(t, src)
		lit := exprOf(firstStmt(p, 0)).(*ast.NumberLiteral)
		if *lit.Raw != src {
			t.Errorf("Raw = %q; want %q", *lit.Raw, src)
		}
		if src == `1e400` {
			if lit.Value <= 1e308 {
				t.Errorf("1e400 = %v; want +Inf", lit.Value)
			}
			continue
		}
		if lit.Value != want {
			t.Errorf("value of %s = %v; want %v", src, lit.Value, want)
		}
	}

	strs := map[string]string{
		`"plain"`:         "plain",
		`'single'`:        "single",
		`"a\nb"`:          "a\nb",
		`"\x41B\u{43}"`:   "ABC",
		`"\uD83D\uDE00"`:  "\U0001F600",
		"\"\U0001F600\"": "\U0001F600",
		`"\0"`:            "\x00",
		`"\101"`:          "A",
		`"\q"`:            "q",
		"\"line\\\ncontinued\"": "linecontinued",
	}
	for src, want := range strs {
		p := mustParse(t, src)
		lit := exprOf(firstStmt(p, 0)).(*ast.StringLiteral)
		if lit.Value != want {
			t.Errorf("value of %s = %q; want %q", src, lit.Value, want)
		}
		if *lit.Raw != src {
			t.Errorf("Raw = %q; want %q", *lit.Raw, src)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	p := mustParse(t, `abc; café; $_; let; async; of`)
	want := []string{"abc", "café", "$_", "let", "async", "of"}
	for i, name := range want {
		id, ok := exprOf(firstStmt(p, i)).(*ast.Identifier)
		if !ok || id.Name != name {
			t.Errorf("statement %d = %#v; want identifier %s", i, exprOf(firstStmt(p, i)), name)
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `return 1;`, want: "1:1: Illegal return statement"},
		{in: "return 1;\nreturn 2;", want: "1:1: Illegal return statement\n2:1: Illegal return statement"},
		{in: `const a;`, want: "1:8: Missing initializer in const declaration"},
		{in: `a b`, want: "1:3: Unexpected identifier"},
		{in: `let [a] = b`, want: "1:5: Unexpected token ["},
		{in: `class A { constructor = 1 }`, want: "1:23: Classes may not have a field named 'constructor'"},
	}
	for _, test := range tests {
		_, err := parser.ParseFile(test.in)
		if err == nil {
			t.Errorf("ParseFile(%q) succeeded; want %q", test.in, test.want)
			continue
		}
		if err.Error() != test.want {
			t.Errorf("ParseFile(%q) error\n  got:  %s\n  want: %s", test.in, err, test.want)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `class A { static prototype = 1 }`, want: "Classes may not have a static property named 'prototype'"},
		{in: `class A { get constructor() {} }`, want: "Class constructor may not be an accessor"},
		{in: `class A { async constructor() {} }`, want: "Class constructor may not be an async method"},
		{in: `class A { *constructor() {} }`, want: "Class constructor may not be a generator"},
		{in: `class A { get x(a) {} }`, want: "Getter must not have any formal parameters."},
		{in: `class A { set x() {} }`, want: "Setter must have exactly one formal parameter."},
		{in: `class { }`, want: "Unexpected token {"},
		{in: `-a ** 2`, want: "Unary operator used immediately before exponentiation expression"},
		{in: `a ?? b || c`, want: "Logical expressions and coalesce expressions cannot be mixed"},
		{in: `1 = 2`, want: "Invalid left-hand side in assignment"},
		{in: `a() = 2`, want: "Invalid left-hand side in assignment"},
		{in: `++a()`, want: "Invalid left-hand side in assignment"},
		{in: "`tpl`", want: "Template literals are not supported"},
		{in: `"abc`, want: "Unterminated string"},
		{in: `/* open`, want: "Unterminated multiline comment"},
		{in: `a @ b`, want: "Invalid character `@`"},
		{in: `x => {`, want: "Unexpected end of input"},
		{in: `super`, want: "'super' keyword unexpected here"},
		{in: `({ #a: 1 })`, want: "Unexpected private name #a"},
		{in: `"\x4"`, want: "Invalid escape sequence"},
		{in: `3in x`, want: "1:1"},
		{in: `let x = (1, 2) => 3`, want: "1:"},
	}
	for _, test := range tests {
		_, err := parser.ParseFile(test.in)
		if err == nil {
			t.Errorf("ParseFile(%q) succeeded; want %q", test.in, test.want)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("ParseFile(%q) error = %q; want it to contain %q", test.in, err, test.want)
		}
	}
}

func TestRecovery(t *testing.T) {
	inputs := []string{
		`)`, `}`, `]`, `(`, `[`, `{`, `=>`, `...`, `?`, `:`,
		`class`, `class A {`, `class A { static`, `class A { get`, `class A extends {}`,
		`function`, `function (`, `function f(a,`, `if (`, `if (a`, `const`,
		`a.`, `a[`, `new`, `new.target`, `f(`, `f(a`, `({`, `({ a:`, `[1, 2`,
		`a ? b`, `async (`, `(a, b`, `(a, b) =>`, `x = `, `#`, `#x`, `a.#`,
		"\\u00", `"\u{}"`, `0x`, `1e`, `0b2`, `1_`, `.`, `?.`,
		"class A { x = 1 y = 2 }", "{ return }",
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("ParseFile(%q) panicked: %v", in, r)
				}
			}()
			p, err := parser.ParseFile(in)
			if err == nil {
				t.Errorf("ParseFile(%q) succeeded; want an error", in)
			}
			if p == nil {
				t.Errorf("ParseFile(%q) returned no program", in)
			}
		}()
	}
}

func TestRoundTripStable(t *testing.T) {
	sources := []string{
		`class Foo extends Bar { static name = "Foo"; #count = 0; inc() { return ++this.#count; } }`,
		`const greet = async (name = "you", ...rest) => { return await fetch(name, ...rest); };`,
		`let o = { a, b: [1, , 3], [k]: v ?? (w || z), get x() { return this.a; } };`,
		`if (a && !b) { f(a ? b : c, -(-d), typeof e); } else if (g) h(); else { i = j = k; }`,
		`new (f())(new g.h(), (a, b)); (function () {})();`,
		`x = a ** -b; y = (-a) ** b; z = a - (b + c) * d % e;`,
		`class A { static { this.x = () => ({ y: 1 }); } }`,
	}
	for _, src := range sources {
		first, err := parser.ParseFile(src)
		if err != nil {
			t.Errorf("ParseFile(%q) failed: %v", src, err)
			continue
		}
		once := generator.Generate(first)
		second, err := parser.ParseFile(once)
		if err != nil {
			t.Errorf("reparse of %q failed: %v\n%s", src, err, once)
			continue
		}
		if twice := generator.Generate(second); twice != once {
			t.Errorf("unstable round trip for %q\n  first:  %s\n  second: %s", src, once, twice)
		}
	}
}
