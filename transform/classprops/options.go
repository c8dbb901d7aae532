package classprops

import "github.com/t14raptor/classprops/ast"

// Options selects the classes to rewrite and lists the members to add to
// them.
type Options struct {
	// All matches every class declaration.
	All bool
	// Classes matches classes by their own name.
	Classes []string
	// SuperClasses matches classes by the name of the class they extend.
	// Dotted names such as React.Component are matched as written.
	SuperClasses []string
	// Props are appended to each matching class, in order.
	Props []MemberSpec
}

// MemberSpec describes one field to append to a class body.
type MemberSpec struct {
	Key    string
	Static bool
	// Value is the field initializer. A nil Value declares the field
	// without one.
	Value Value
}

// Value is the source of a field initializer. It is one of Snippet, Func,
// Unsupported or ClassName.
type Value interface {
	_value()
}

// Snippet is JavaScript text parsed on its own. Only a snippet made of a
// single expression statement yields an initializer.
type Snippet string

// Func builds the initializer directly. A nil result declares the field
// without one.
type Func func(f *ast.Factory) *ast.Expression

// Unsupported holds an option value of any other shape. It never yields an
// initializer.
type Unsupported struct {
	Raw any
}

// ClassName initializes the field with the visited class's own name as a
// string literal. Anonymous classes get no initializer.
type ClassName struct{}

func (Snippet) _value()     {}
func (Func) _value()        {}
func (Unsupported) _value() {}
func (ClassName) _value()   {}
