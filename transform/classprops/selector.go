package classprops

import "github.com/t14raptor/classprops/ast"

// Matches reports whether decl is selected: every class when All is set,
// otherwise a class whose own name is listed in Classes or whose superclass
// name is listed in SuperClasses.
func (p *Plugin) Matches(decl *ast.ClassDeclaration) bool {
	if decl == nil || decl.Class == nil {
		return false
	}
	if p.all {
		return true
	}
	if name, ok := decl.Class.ClassName(); ok {
		if _, found := p.classes[name]; found {
			return true
		}
	}
	if name, ok := decl.Class.SuperClassName(); ok {
		if _, found := p.superClasses[name]; found {
			return true
		}
	}
	return false
}
