package scanner

import "github.com/t14raptor/classprops/token"

// !
func exl(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('=') {
		if s.AdvanceIfByteEquals('=') {
			return token.StrictNotEqual
		}
		return token.NotEqual
	}
	return token.Not
}

// %
func prc(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('=') {
		return token.RemainderAssign
	}
	return token.Remainder
}

// &
func amp(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('&') {
		if s.AdvanceIfByteEquals('=') {
			return token.LogicalAndAssign
		}
		return token.LogicalAnd
	}
	if s.AdvanceIfByteEquals('=') {
		return token.AndAssign
	}
	return token.And
}

// *
func atr(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('*') {
		if s.AdvanceIfByteEquals('=') {
			return token.ExponentAssign
		}
		return token.Exponent
	}
	if s.AdvanceIfByteEquals('=') {
		return token.MultiplyAssign
	}
	return token.Multiply
}

// +
func pls(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('+') {
		return token.Increment
	}
	if s.AdvanceIfByteEquals('=') {
		return token.AddAssign
	}
	return token.Plus
}

// -
func mns(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('-') {
		return token.Decrement
	}
	if s.AdvanceIfByteEquals('=') {
		return token.SubtractAssign
	}
	return token.Minus
}

// .
func prd(s *Scanner) token.Token {
	s.ConsumeByte()
	if b, ok := s.PeekByte(); ok && isDecimalDigit(b) {
		return s.decLitAfterDecPoint()
	}
	if b, ok := s.PeekByte(); ok && b == '.' {
		if b, ok := s.src.PeekByteAt(1); ok && b == '.' {
			s.ConsumeByte()
			s.ConsumeByte()
			return token.Ellipsis
		}
	}
	return token.Period
}

// /
// Regular expression literals are not supported, a slash is always a
// division operator unless it starts a comment.
func slh(s *Scanner) token.Token {
	start := s.Offset()
	s.ConsumeByte()
	switch {
	case s.AdvanceIfByteEquals('/'):
		s.skipSingleLineComment()
		return token.Skip
	case s.AdvanceIfByteEquals('*'):
		s.skipMultiLineComment(start)
		return token.Skip
	case s.AdvanceIfByteEquals('='):
		return token.QuotientAssign
	}
	return token.Slash
}

// <
func lss(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('<') {
		if s.AdvanceIfByteEquals('=') {
			return token.ShiftLeftAssign
		}
		return token.ShiftLeft
	}
	if s.AdvanceIfByteEquals('=') {
		return token.LessOrEqual
	}
	return token.Less
}

// =
func eql(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('>') {
		return token.Arrow
	}
	if s.AdvanceIfByteEquals('=') {
		if s.AdvanceIfByteEquals('=') {
			return token.StrictEqual
		}
		return token.Equal
	}
	return token.Assign
}

// >
func gtr(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('>') {
		if s.AdvanceIfByteEquals('>') {
			if s.AdvanceIfByteEquals('=') {
				return token.UnsignedShiftRightAssign
			}
			return token.UnsignedShiftRight
		}
		if s.AdvanceIfByteEquals('=') {
			return token.ShiftRightAssign
		}
		return token.ShiftRight
	}
	if s.AdvanceIfByteEquals('=') {
		return token.GreaterOrEqual
	}
	return token.Greater
}

// ?
func qst(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('?') {
		if s.AdvanceIfByteEquals('=') {
			return token.CoalesceAssign
		}
		return token.Coalesce
	}
	// a?.5:b is a conditional, not an optional chain
	if b, ok := s.PeekByte(); ok && b == '.' {
		if next, ok := s.src.PeekByteAt(1); !ok || !isDecimalDigit(next) {
			s.ConsumeByte()
			return token.QuestionDot
		}
	}
	return token.QuestionMark
}

// ^
func crt(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('=') {
		return token.ExclusiveOrAssign
	}
	return token.ExclusiveOr
}

// |
func pip(s *Scanner) token.Token {
	s.ConsumeByte()
	if s.AdvanceIfByteEquals('|') {
		if s.AdvanceIfByteEquals('=') {
			return token.LogicalOrAssign
		}
		return token.LogicalOr
	}
	if s.AdvanceIfByteEquals('=') {
		return token.OrAssign
	}
	return token.Or
}
