package scanner

import (
	"github.com/t14raptor/classprops/ast"
	"github.com/t14raptor/classprops/token"
)

type Token struct {
	Kind token.Token

	OnNewLine bool
	HasEscape bool

	Idx0, Idx1 ast.Idx
}

// String returns the token's value: string literals without quotes and with
// escapes applied, private identifiers without the leading '#'.
func (t Token) String(s *Scanner) string {
	if t.HasEscape {
		return s.EscapedStr
	}

	raw := s.src.Slice(t.Idx0, t.Idx1)
	switch t.Kind {
	case token.String:
		return raw[1 : len(raw)-1]
	case token.PrivateIdentifier:
		return raw[1:]
	}
	return raw
}

// Raw returns the token as written.
func (t Token) Raw(s *Scanner) string {
	return s.src.Slice(t.Idx0, t.Idx1)
}
