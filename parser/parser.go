package parser

import (
	"github.com/t14raptor/classprops/ast"
	"github.com/t14raptor/classprops/parser/scanner"
	"github.com/t14raptor/classprops/token"
)

type parser struct {
	token scanner.Token

	scanner *scanner.Scanner

	scope *scope

	errors error

	recover struct {
		// Scratch when trying to seek to the next statement, etc.
		idx   ast.Idx
		count int
	}
}

func newParser(src string) *parser {
	p := &parser{}
	p.scanner = scanner.NewScanner(src, &p.errors)
	return p
}

// ParseFile parses the source code of a single JavaScript source file and
// returns the corresponding ast.Program node. Syntax errors are joined into
// the returned error; the program is returned even when it is incomplete.
func ParseFile(src string) (*ast.Program, error) {
	return newParser(src).parse()
}

func (p *parser) parse() (*ast.Program, error) {
	p.openScope()
	p.next()
	program := p.parseProgram()
	p.closeScope()
	return program, p.errors
}

func (p *parser) next() {
	p.scanner.Next()
	p.token = p.scanner.Token
}

type parserState struct {
	c   scanner.Checkpoint
	tok scanner.Token

	recoverIdx   ast.Idx
	recoverCount int
}

// mark saves the parser state, including the errors reported so far.
func (p *parser) mark() parserState {
	return parserState{
		c:            p.scanner.Checkpoint(),
		tok:          p.token,
		recoverIdx:   p.recover.idx,
		recoverCount: p.recover.count,
	}
}

func (p *parser) restore(state parserState) {
	p.scanner.Rewind(state.c)
	p.token = state.tok
	p.recover.idx = state.recoverIdx
	p.recover.count = state.recoverCount
}

func (p *parser) peek() scanner.Token {
	st := p.mark()
	p.next()
	tok := p.token
	p.restore(st)
	return tok
}

func (p *parser) currentString() string {
	return p.token.String(p.scanner)
}

func (p *parser) currentKind() token.Token {
	return p.token.Kind
}

func (p *parser) currentOffset() ast.Idx {
	return p.token.Idx0
}

func (p *parser) canInsertSemicolon() bool {
	switch p.currentKind() {
	case token.Semicolon, token.RightBrace, token.Eof:
		return true
	}
	return p.token.OnNewLine
}

// semicolon consumes an explicit semicolon or accepts an inserted one.
func (p *parser) semicolon() {
	if p.currentKind() == token.Semicolon {
		p.next()
		return
	}
	if !p.canInsertSemicolon() {
		p.errorUnexpectedToken(p.currentKind())
		p.nextStatement()
	}
}

func (p *parser) expect(value token.Token) ast.Idx {
	idx := p.currentOffset()
	if p.currentKind() != value {
		p.errorUnexpectedToken(p.currentKind())
	}
	p.next()
	return idx
}
