package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/classprops/ast"
	"github.com/t14raptor/classprops/token"
)

// Lookup tables for ASCII identifier characters.
var asciiStart, asciiContinue [utf8.RuneSelf]bool

func init() {
	for i := 0; i < utf8.RuneSelf; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return ast.IsIdentifierStart(chr)
}

func isIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	return ast.IsIdentifierPart(chr)
}

// scanIdentifier scans an identifier or keyword. Identifiers written with
// unicode escapes never match a keyword.
func (s *Scanner) scanIdentifier() token.Token {
	name := s.scanIdentifierName()
	if s.Token.HasEscape {
		return token.Identifier
	}
	return token.MatchKeyword(name)
}

// scanIdentifierName consumes an identifier name starting at the cursor and
// returns its cooked value.
func (s *Scanner) scanIdentifierName() string {
	start := s.src.Offset()
	first := true
	for {
		c, ok := s.PeekRune()
		if !ok {
			break
		}
		if c == '\\' {
			return s.scanIdentifierBackslash(start, first)
		}
		if first && !isIdentifierStart(c) || !first && !isIdentifierPart(c) {
			break
		}
		s.ConsumeRune()
		first = false
	}
	return s.src.FromPositionToCurrent(start)
}

func (s *Scanner) scanIdentifierBackslash(startPos ast.Idx, start bool) string {
	soFar := s.src.FromPositionToCurrent(startPos)

	str := &strings.Builder{}
	str.Grow(max(len(soFar)*2, 16))
	str.WriteString(soFar)

outer:
	for {
		escapeStart := s.src.Offset()
		s.ConsumeByte()

		r, ok := s.identifierUnicodeEscapeSequence()
		valid := ok && (start && isIdentifierStart(r) || !start && isIdentifierPart(r))
		if !valid {
			s.report(invalidUnicodeEscapeSequence(escapeStart, s.Offset()))
		} else {
			str.WriteRune(r)
		}
		start = false

		for {
			c, ok := s.PeekRune()
			if ok && isIdentifierPart(c) {
				str.WriteRune(s.ConsumeRune())
				continue
			}
			if ok && c == '\\' {
				continue outer
			}
			break outer
		}
	}

	s.EscapedStr = str.String()
	s.Token.HasEscape = true
	return s.EscapedStr
}

// identifierUnicodeEscapeSequence reads the part of \uXXXX or \u{X...} after
// the backslash.
func (s *Scanner) identifierUnicodeEscapeSequence() (rune, bool) {
	if !s.AdvanceIfByteEquals('u') {
		return 0, false
	}
	return s.readUnicodeEscape()
}
