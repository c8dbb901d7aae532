package scanner

import "github.com/t14raptor/classprops/token"

func isDecimalDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// digitValue returns the value of a hex digit, or 16 for any other byte.
func digitValue(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'f':
		return int(b - 'a' + 10)
	case 'A' <= b && b <= 'F':
		return int(b - 'A' + 10)
	}
	return 16
}

func (s *Scanner) readZero() token.Token {
	b, ok := s.PeekByte()
	if !ok {
		return token.Number
	}

	switch b {
	case 'b', 'B':
		return s.readNonDecimal(2)
	case 'o', 'O':
		return s.readNonDecimal(8)
	case 'x', 'X':
		return s.readNonDecimal(16)
	case 'e', 'E':
		s.ConsumeByte()
		s.readDecExp()
		return s.checkAfterNumericLiteral(token.Number)
	case '.':
		s.ConsumeByte()
		return s.decLitAfterDecPointAfterDigits()
	case 'n':
		s.ConsumeByte()
		return s.checkAfterNumericLiteral(token.Number)
	}

	if isDecimalDigit(b) {
		// legacy octal such as 017
		s.decimalDigitsAfterFirstDigit()
	}
	return s.checkAfterNumericLiteral(token.Number)
}

func (s *Scanner) decimalLiteralAfterFirstDigit() token.Token {
	s.decimalDigitsAfterFirstDigit()
	if s.AdvanceIfByteEquals('.') {
		return s.decLitAfterDecPointAfterDigits()
	}
	if s.AdvanceIfByteEquals('n') {
		return s.checkAfterNumericLiteral(token.Number)
	}
	if b, ok := s.PeekByte(); ok && (b == 'e' || b == 'E') {
		s.ConsumeByte()
		s.readDecExp()
	}
	return s.checkAfterNumericLiteral(token.Number)
}

func (s *Scanner) readNonDecimal(base int) token.Token {
	start := s.Offset()
	s.ConsumeByte()

	if b, ok := s.PeekByte(); !ok || digitValue(b) >= base {
		s.report(invalidNumberEnd(start, s.Offset()))
		return token.Illegal
	}
	s.readDigits(base)
	s.AdvanceIfByteEquals('n')
	return s.checkAfterNumericLiteral(token.Number)
}

// readDigits consumes digits of the given base with optional numeric
// separators between them.
func (s *Scanner) readDigits(base int) {
	for {
		b, ok := s.PeekByte()
		if !ok {
			return
		}
		if b == '_' {
			next, ok := s.src.PeekByteAt(1)
			if !ok || digitValue(next) >= base {
				return
			}
			s.ConsumeByte()
			continue
		}
		if digitValue(b) >= base {
			return
		}
		s.ConsumeByte()
	}
}

func (s *Scanner) decimalDigitsAfterFirstDigit() {
	s.readDigits(10)
}

// decLitAfterDecPoint handles .5 where the dot was already consumed.
func (s *Scanner) decLitAfterDecPoint() token.Token {
	s.readDigits(10)
	s.optionalExponent()
	return s.checkAfterNumericLiteral(token.Number)
}

// decLitAfterDecPointAfterDigits handles 1.5 and 1. where the dot was
// already consumed.
func (s *Scanner) decLitAfterDecPointAfterDigits() token.Token {
	if b, ok := s.PeekByte(); ok && isDecimalDigit(b) {
		s.readDigits(10)
	}
	s.optionalExponent()
	return s.checkAfterNumericLiteral(token.Number)
}

func (s *Scanner) optionalExponent() {
	if b, ok := s.PeekByte(); ok && (b == 'e' || b == 'E') {
		s.ConsumeByte()
		s.readDecExp()
	}
}

func (s *Scanner) readDecExp() {
	if b, ok := s.PeekByte(); ok && (b == '+' || b == '-') {
		s.ConsumeByte()
	}
	if b, ok := s.PeekByte(); !ok || !isDecimalDigit(b) {
		s.report(invalidNumberEnd(s.Token.Idx0, s.Offset()))
		return
	}
	s.readDigits(10)
}

// checkAfterNumericLiteral rejects numbers directly followed by an
// identifier character, such as 3in or 1_.
func (s *Scanner) checkAfterNumericLiteral(kind token.Token) token.Token {
	c, ok := s.PeekRune()
	if !ok || !isIdentifierPart(c) {
		return kind
	}
	for {
		c, ok := s.PeekRune()
		if !ok || !isIdentifierPart(c) {
			break
		}
		s.ConsumeRune()
	}
	s.report(invalidNumberEnd(s.Token.Idx0, s.Offset()))
	return token.Illegal
}
