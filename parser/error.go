package parser

import (
	"github.com/t14raptor/classprops/token"
)

const (
	errUnexpectedToken      = "Unexpected token %v"
	errUnexpectedEndOfInput = "Unexpected end of input"
)

// errorf reports an error at the current token.
func (p *parser) errorf(msg string, msgValues ...any) {
	p.scanner.Errorf(p.currentOffset(), msg, msgValues...)
}

func (p *parser) errorUnexpectedToken(tkn token.Token) {
	switch tkn {
	case token.Eof:
		p.errorf(errUnexpectedEndOfInput)
		return
	case token.Illegal:
		// already reported by the scanner
		return
	case token.Identifier:
		p.errorf("Unexpected identifier")
		return
	case token.Keyword:
		p.errorf("Unexpected reserved word %s", p.currentString())
		return
	case token.Number:
		p.errorf("Unexpected number")
		return
	case token.String:
		p.errorf("Unexpected string")
		return
	}
	p.errorf(errUnexpectedToken, tkn.String())
}
