package classprops

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/t14raptor/classprops/ast"
)

// Plugin is a compiled, read-only set of Options. It may be shared by
// concurrent traversals of different programs.
type Plugin struct {
	all          bool
	classes      map[string]struct{}
	superClasses map[string]struct{}
	props        []MemberSpec
	factory      *ast.Factory
}

// Result counts the class declarations seen and rewritten by one traversal.
type Result struct {
	Visited  int
	Injected int
}

// New compiles opts. A nil opts yields a plugin that never rewrites
// anything.
func New(opts *Options) *Plugin {
	p := &Plugin{
		classes:      make(map[string]struct{}),
		superClasses: make(map[string]struct{}),
		factory:      &ast.Factory{},
	}
	if opts == nil {
		return p
	}
	p.all = opts.All
	for _, name := range opts.Classes {
		p.classes[name] = struct{}{}
	}
	for _, name := range opts.SuperClasses {
		p.superClasses[name] = struct{}{}
	}
	p.props = slices.Clone(opts.Props)
	return p
}

// All reports whether the plugin matches every class.
func (p *Plugin) All() bool { return p.all }

// Classes returns the matched class names, sorted.
func (p *Plugin) Classes() []string { return sortedKeys(p.classes) }

// SuperClasses returns the matched superclass names, sorted.
func (p *Plugin) SuperClasses() []string { return sortedKeys(p.superClasses) }

// Props returns a copy of the members appended to matching classes.
func (p *Plugin) Props() []MemberSpec { return slices.Clone(p.props) }

func sortedKeys(set map[string]struct{}) []string {
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}

// Inject appends the plugin's members to decl when it matches, and reports
// whether it did. Only the class body is modified.
func (p *Plugin) Inject(decl *ast.ClassDeclaration) bool {
	if len(p.props) == 0 || !p.Matches(decl) {
		return false
	}
	class := decl.Class
	for _, spec := range p.props {
		field := BuildMember(spec, p.factory, class)
		class.Body = append(class.Body, ast.ClassElement{Element: field})
	}
	return true
}

// Apply rewrites every matching class declaration in program.
func (p *Plugin) Apply(program *ast.Program) Result {
	visitor := p.newInjector()
	program.VisitWith(visitor)
	return visitor.result
}

// Visitor returns a visitor that rewrites the class declarations it is
// dispatched to, for use with another traversal.
func (p *Plugin) Visitor() ast.Visitor {
	return p.newInjector()
}

// Transform rewrites program with opts. Nil opts or opts without props
// leave program untouched.
func Transform(program *ast.Program, opts *Options) Result {
	return New(opts).Apply(program)
}
