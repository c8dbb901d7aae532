package classprops

import "github.com/t14raptor/classprops/ast"

type injector struct {
	ast.NoopVisitor
	plugin *Plugin
	result Result
}

func (p *Plugin) newInjector() *injector {
	visitor := &injector{plugin: p}
	visitor.V = visitor
	return visitor
}

// VisitClassDeclaration handles nested declarations first, each on its own.
func (v *injector) VisitClassDeclaration(n *ast.ClassDeclaration) {
	n.VisitChildrenWith(v)

	v.result.Visited++
	if v.plugin.Inject(n) {
		v.result.Injected++
	}
}
