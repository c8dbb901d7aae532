package scanner

import "github.com/t14raptor/classprops/token"

type byteHandler func(s *Scanner) token.Token

var byteHandlers [128]byteHandler

func init() {
	for i := range byteHandlers {
		byteHandlers[i] = errHandler
	}
	for c := 'a'; c <= 'z'; c++ {
		byteHandlers[c] = idt
	}
	for c := 'A'; c <= 'Z'; c++ {
		byteHandlers[c] = idt
	}
	for c := '1'; c <= '9'; c++ {
		byteHandlers[c] = dig
	}

	byteHandlers['\t'] = sps
	byteHandlers[' '] = sps
	byteHandlers['\v'] = sps
	byteHandlers['\f'] = sps
	byteHandlers['\n'] = lin
	byteHandlers['\r'] = lin
	byteHandlers['$'] = idt
	byteHandlers['_'] = idt
	byteHandlers['\\'] = esc
	byteHandlers['0'] = zer
	byteHandlers['"'] = qod
	byteHandlers['\''] = qos
	byteHandlers['`'] = tpl
	byteHandlers['#'] = has
	byteHandlers['!'] = exl
	byteHandlers['%'] = prc
	byteHandlers['&'] = amp
	byteHandlers['('] = punct(token.LeftParenthesis)
	byteHandlers[')'] = punct(token.RightParenthesis)
	byteHandlers['['] = punct(token.LeftBracket)
	byteHandlers[']'] = punct(token.RightBracket)
	byteHandlers['{'] = punct(token.LeftBrace)
	byteHandlers['}'] = punct(token.RightBrace)
	byteHandlers[','] = punct(token.Comma)
	byteHandlers[';'] = punct(token.Semicolon)
	byteHandlers[':'] = punct(token.Colon)
	byteHandlers['~'] = punct(token.BitwiseNot)
	byteHandlers['*'] = atr
	byteHandlers['+'] = pls
	byteHandlers['-'] = mns
	byteHandlers['.'] = prd
	byteHandlers['/'] = slh
	byteHandlers['<'] = lss
	byteHandlers['='] = eql
	byteHandlers['>'] = gtr
	byteHandlers['?'] = qst
	byteHandlers['^'] = crt
	byteHandlers['|'] = pip
}

func errHandler(s *Scanner) token.Token {
	start := s.Offset()
	c := s.ConsumeRune()
	s.report(invalidCharacter(c, start, s.Offset()))
	return token.Illegal
}

// <SPACE> <TAB> <VT> <FF>
func sps(s *Scanner) token.Token {
	s.ConsumeByte()
	return token.Skip
}

// '\r' '\n'
func lin(s *Scanner) token.Token {
	s.ConsumeByte()
	s.Token.OnNewLine = true
	return token.Skip
}

func idt(s *Scanner) token.Token {
	return s.scanIdentifier()
}

// \uXXXX at the start of an identifier
func esc(s *Scanner) token.Token {
	return s.scanIdentifier()
}

func dig(s *Scanner) token.Token {
	s.ConsumeByte()
	return s.decimalLiteralAfterFirstDigit()
}

func zer(s *Scanner) token.Token {
	s.ConsumeByte()
	return s.readZero()
}

// "
func qod(s *Scanner) token.Token {
	return s.scanStringLiteral('"')
}

// '
func qos(s *Scanner) token.Token {
	return s.scanStringLiteral('\'')
}

// `
func tpl(s *Scanner) token.Token {
	start := s.Offset()
	s.ConsumeByte()
	for {
		b, ok := s.NextByte()
		if !ok || b == '`' {
			break
		}
		if b == '\\' {
			s.NextByte()
		}
	}
	s.report(unsupportedTemplateLiteral(start, s.Offset()))
	return token.Illegal
}

// #
func has(s *Scanner) token.Token {
	start := s.Offset()
	s.ConsumeByte()
	if c, ok := s.PeekRune(); !ok || !(isIdentifierStart(c) || c == '\\') {
		s.report(invalidPrivateName(start, s.Offset()))
		return token.Illegal
	}
	s.scanIdentifierName()
	return token.PrivateIdentifier
}

func (s *Scanner) handleUnicode() token.Token {
	c, _ := s.PeekRune()
	switch {
	case isIdentifierStart(c):
		return s.scanIdentifier()
	case c == '\u2028' || c == '\u2029':
		s.ConsumeRune()
		s.Token.OnNewLine = true
		return token.Skip
	case isIrregularWhitespace(c):
		s.ConsumeRune()
		return token.Skip
	}
	return errHandler(s)
}

func punct(kind token.Token) byteHandler {
	return func(s *Scanner) token.Token {
		s.ConsumeByte()
		return kind
	}
}
