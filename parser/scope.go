package parser

type scope struct {
	outer      *scope
	allowIn    bool
	inFunction bool
	inAsync    bool
	allowAwait bool
	allowYield bool
}

func (p *parser) openScope() {
	p.scope = &scope{
		outer:   p.scope,
		allowIn: true,
	}
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}
