package scanner

import (
	"unicode/utf8"

	"github.com/t14raptor/classprops/ast"
)

// Source is a cursor over the program text.
type Source struct {
	str string
	pos int
}

func NewSource(src string) Source {
	return Source{str: src}
}

func (s *Source) EOF() bool {
	return s.pos >= len(s.str)
}

// Offset returns the index of the next unread character.
func (s *Source) Offset() ast.Idx {
	return ast.Idx(s.pos + 1)
}

func (s *Source) NextRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	if b := s.str[s.pos]; b < utf8.RuneSelf {
		s.pos++
		return rune(b), true
	}
	r, size := utf8.DecodeRuneInString(s.str[s.pos:])
	s.pos += size
	return r, true
}

func (s *Source) PeekRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	if b := s.str[s.pos]; b < utf8.RuneSelf {
		return rune(b), true
	}
	r, _ := utf8.DecodeRuneInString(s.str[s.pos:])
	return r, true
}

func (s *Source) NextByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	b := s.str[s.pos]
	s.pos++
	return b, true
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.str[s.pos], true
}

// PeekByteAt returns the byte n positions after the cursor.
func (s *Source) PeekByteAt(n int) (byte, bool) {
	if s.pos+n >= len(s.str) {
		return 0, false
	}
	return s.str[s.pos+n], true
}

func (s *Source) AdvanceIfByteEquals(b byte) bool {
	if next, ok := s.PeekByte(); ok && next == b {
		s.pos++
		return true
	}
	return false
}

func (s *Source) FromPositionToCurrent(pos ast.Idx) string {
	return s.str[int(pos)-1 : s.pos]
}

func (s *Source) Slice(from, to ast.Idx) string {
	return s.str[int(from)-1 : int(to)-1]
}
