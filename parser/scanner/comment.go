package scanner

import (
	"unicode"

	"github.com/t14raptor/classprops/ast"
)

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return true
	}
	return false
}

func isIrregularWhitespace(chr rune) bool {
	return chr == '\ufeff' || chr == '\u00a0' || unicode.Is(unicode.Zs, chr)
}

// skipSingleLineComment stops before the line terminator so the next call to
// Next marks the following token as being on a new line.
func (s *Scanner) skipSingleLineComment() {
	for {
		p, ok := s.PeekRune()
		if !ok || isLineTerminator(p) {
			return
		}
		s.ConsumeRune()
	}
}

func (s *Scanner) skipMultiLineComment(start ast.Idx) {
	for {
		p, ok := s.NextRune()
		if !ok {
			s.report(unterminatedMultiLineComment(start, s.Offset()))
			return
		}
		if isLineTerminator(p) {
			s.Token.OnNewLine = true
		}
		if p == '*' && s.AdvanceIfByteEquals('/') {
			return
		}
	}
}
