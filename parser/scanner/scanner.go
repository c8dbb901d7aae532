package scanner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/t14raptor/classprops/ast"
	"github.com/t14raptor/classprops/token"
)

type Scanner struct {
	Token Token

	// EscapedStr holds the cooked value of the current token when
	// Token.HasEscape is set.
	EscapedStr string

	src  Source
	errs *error
}

// NewScanner returns a scanner over src. Lexical errors are joined into errs.
func NewScanner(src string, errs *error) *Scanner {
	return &Scanner{
		src:  NewSource(src),
		errs: errs,
	}
}

// Next advances to the next token and stores it in s.Token.
func (s *Scanner) Next() {
	s.Token.OnNewLine = false
	s.Token.HasEscape = false
	s.EscapedStr = ""

	for {
		s.Token.Idx0 = s.src.Offset()

		b, ok := s.PeekByte()
		if !ok {
			s.Token.Kind = token.Eof
			break
		}

		var kind token.Token
		if b < 128 {
			kind = byteHandlers[b](s)
		} else {
			kind = s.handleUnicode()
		}
		if kind != token.Skip {
			s.Token.Kind = kind
			break
		}
	}
	s.Token.Idx1 = s.src.Offset()
}

// Checkpoint is a saved scanner state.
type Checkpoint struct {
	pos     int
	tok     Token
	escaped string
	errs    error
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{
		pos:     s.src.pos,
		tok:     s.Token,
		escaped: s.EscapedStr,
		errs:    *s.errs,
	}
}

// Rewind restores a checkpoint, discarding errors reported after it.
func (s *Scanner) Rewind(c Checkpoint) {
	s.src.pos = c.pos
	s.Token = c.tok
	s.EscapedStr = c.escaped
	*s.errs = c.errs
}

func (s *Scanner) Offset() ast.Idx {
	return s.src.Offset()
}

func (s *Scanner) Slice(from, to ast.Idx) string {
	return s.src.Slice(from, to)
}

func (s *Scanner) NextRune() (rune, bool) {
	return s.src.NextRune()
}

func (s *Scanner) NextByte() (byte, bool) {
	return s.src.NextByte()
}

func (s *Scanner) ConsumeRune() rune {
	r, _ := s.src.NextRune()
	return r
}

func (s *Scanner) ConsumeByte() byte {
	b, _ := s.src.NextByte()
	return b
}

func (s *Scanner) PeekRune() (rune, bool) {
	return s.src.PeekRune()
}

func (s *Scanner) PeekByte() (byte, bool) {
	return s.src.PeekByte()
}

func (s *Scanner) AdvanceIfByteEquals(b byte) bool {
	return s.src.AdvanceIfByteEquals(b)
}

// Position converts an index into a 1-based line and column.
func (s *Scanner) Position(idx ast.Idx) (line, column int) {
	offset := int(idx) - 1
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.src.str) {
		offset = len(s.src.str)
	}
	before := s.src.str[:offset]
	line = strings.Count(before, "\n") + 1
	column = offset - strings.LastIndexByte(before, '\n')
	return line, column
}

// Errorf reports an error at idx.
func (s *Scanner) Errorf(idx ast.Idx, format string, args ...any) {
	line, column := s.Position(idx)
	*s.errs = errors.Join(*s.errs, fmt.Errorf("%d:%d: %s", line, column, fmt.Sprintf(format, args...)))
}

func (s *Scanner) report(err Error) {
	s.Errorf(err.Start, "%s", err.Message)
}
