package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/classprops/ast"
	"github.com/t14raptor/classprops/token"
)

func (s *Scanner) scanStringLiteral(delim byte) token.Token {
	start := s.src.Offset()
	s.ConsumeByte()
	afterOpen := s.src.Offset()

	for {
		b, ok := s.PeekByte()
		if !ok || b == '\r' || b == '\n' {
			s.report(unterminatedString(start, s.Offset()))
			return token.Illegal
		}
		switch b {
		case delim:
			s.ConsumeByte()
			return token.String
		case '\\':
			return s.scanStringLiteralEscaped(delim, start, afterOpen)
		}
		s.ConsumeByte()
	}
}

func (s *Scanner) scanStringLiteralEscaped(delim byte, start, afterOpen ast.Idx) token.Token {
	soFar := s.src.FromPositionToCurrent(afterOpen)
	str := &strings.Builder{}
	str.Grow(max(len(soFar)*2, 16))
	str.WriteString(soFar)

	for {
		b, ok := s.PeekByte()
		if !ok || b == '\r' || b == '\n' {
			s.report(unterminatedString(start, s.Offset()))
			return token.Illegal
		}
		switch b {
		case delim:
			s.ConsumeByte()
			s.EscapedStr = str.String()
			s.Token.HasEscape = true
			return token.String
		case '\\':
			escapeStart := s.src.Offset()
			s.ConsumeByte()
			if !s.readStringEscapeSequence(str) {
				s.report(invalidEscapeSequence(escapeStart, s.Offset()))
			}
		default:
			if b < utf8.RuneSelf {
				str.WriteByte(s.ConsumeByte())
			} else {
				str.WriteRune(s.ConsumeRune())
			}
		}
	}
}

// readStringEscapeSequence reads the escape after a backslash and writes its
// value to str.
func (s *Scanner) readStringEscapeSequence(str *strings.Builder) bool {
	c, ok := s.NextRune()
	if !ok {
		return false
	}

	switch c {
	case '\n', '\u2028', '\u2029':
		// line continuation
	case '\r':
		s.AdvanceIfByteEquals('\n')
	case 'n':
		str.WriteByte('\n')
	case 't':
		str.WriteByte('\t')
	case 'r':
		str.WriteByte('\r')
	case 'b':
		str.WriteByte('\b')
	case 'f':
		str.WriteByte('\f')
	case 'v':
		str.WriteByte('\v')
	case '0':
		if b, ok := s.PeekByte(); ok && isDecimalDigit(b) {
			return s.readLegacyOctalEscape(str, 0)
		}
		str.WriteByte(0)
	case '1', '2', '3', '4', '5', '6', '7':
		return s.readLegacyOctalEscape(str, int(c-'0'))
	case 'x':
		hi, ok1 := s.NextByte()
		lo, ok2 := s.NextByte()
		if !ok1 || !ok2 || digitValue(hi) >= 16 || digitValue(lo) >= 16 {
			return false
		}
		str.WriteRune(rune(digitValue(hi)<<4 | digitValue(lo)))
	case 'u':
		r, ok := s.readUnicodeEscape()
		if !ok {
			return false
		}
		if isHighSurrogate(r) {
			r = s.readLowSurrogate(r)
		}
		str.WriteRune(r)
	default:
		str.WriteRune(c)
	}
	return true
}

func (s *Scanner) readLegacyOctalEscape(str *strings.Builder, value int) bool {
	for i := 0; i < 2; i++ {
		b, ok := s.PeekByte()
		if !ok || b < '0' || b > '7' || value*8+int(b-'0') > 0xff {
			break
		}
		s.ConsumeByte()
		value = value*8 + int(b-'0')
	}
	str.WriteRune(rune(value))
	return true
}

// readUnicodeEscape reads XXXX or {X...} after \u.
func (s *Scanner) readUnicodeEscape() (rune, bool) {
	if s.AdvanceIfByteEquals('{') {
		var value rune
		digits := 0
		for {
			b, ok := s.NextByte()
			if !ok {
				return 0, false
			}
			if b == '}' {
				break
			}
			if digitValue(b) >= 16 {
				return 0, false
			}
			value = value<<4 | rune(digitValue(b))
			if value > utf8.MaxRune {
				return 0, false
			}
			digits++
		}
		return value, digits > 0
	}

	var value rune
	for i := 0; i < 4; i++ {
		b, ok := s.NextByte()
		if !ok || digitValue(b) >= 16 {
			return 0, false
		}
		value = value<<4 | rune(digitValue(b))
	}
	return value, true
}

func isHighSurrogate(r rune) bool {
	return r >= 0xd800 && r <= 0xdbff
}

// readLowSurrogate combines a high surrogate with a directly following
// \uXXXX low surrogate. A lone surrogate becomes utf8.RuneError.
func (s *Scanner) readLowSurrogate(high rune) rune {
	cp := s.Checkpoint()
	if s.AdvanceIfByteEquals('\\') && s.AdvanceIfByteEquals('u') {
		if low, ok := s.readUnicodeEscape(); ok && low >= 0xdc00 && low <= 0xdfff {
			return (high-0xd800)<<10 + (low - 0xdc00) + 0x10000
		}
	}
	s.Rewind(cp)
	return utf8.RuneError
}
