package parser

import (
	"fmt"
	"strings"
)

// Scanner provides the token-level interface expression nodes are built
// from: pull the next token, match an expected delimiter, and report the
// current lexical position. It is consumed at construction time only; nothing
// touches it once the tree exists.
type Scanner struct {
	src string
	pos int
}

// NewScanner wraps a source string.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Pos returns the current byte offset into the source.
func (s *Scanner) Pos() int { return s.pos }

// LineCol converts a byte offset into 1-based line and column numbers.
func (s *Scanner) LineCol(pos int) (line, col int) {
	if pos > len(s.src) {
		pos = len(s.src)
	}
	before := s.src[:pos]
	line = strings.Count(before, "\n") + 1
	if idx := strings.LastIndexByte(before, '\n'); idx >= 0 {
		col = pos - idx
	} else {
		col = pos + 1
	}
	return line, col
}

// SkipSpace advances past whitespace and line comments.
func (s *Scanner) SkipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		case '#':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

// EOF reports whether all input has been consumed (ignoring trailing space).
func (s *Scanner) EOF() bool {
	s.SkipSpace()
	return s.pos >= len(s.src)
}

// Peek returns the next significant byte without consuming it.
func (s *Scanner) Peek() (byte, bool) {
	s.SkipSpace()
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

// Next consumes and returns the next significant byte.
func (s *Scanner) Next() (byte, bool) {
	c, ok := s.Peek()
	if ok {
		s.pos++
	}
	return c, ok
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', '"', '#':
		return true
	}
	return false
}

// Token pulls the next atom token: a maximal run of non-delimiter bytes.
// Numbers, identifiers and operator symbols all arrive through here.
func (s *Scanner) Token() (string, error) {
	s.SkipSpace()
	start := s.pos
	for s.pos < len(s.src) && !isDelimiter(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return "", s.errorf(start, "expected a token")
	}
	return s.src[start:s.pos], nil
}

// Match consumes bytes up to and including the expected closing delimiter
// and returns the content between, honoring backslash escapes.
func (s *Scanner) Match(c byte) (string, error) {
	start := s.pos
	var b strings.Builder
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		s.pos++
		switch ch {
		case c:
			return b.String(), nil
		case '\\':
			if s.pos >= len(s.src) {
				return "", s.errorf(start, "unterminated escape")
			}
			esc := s.src[s.pos]
			s.pos++
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(esc)
			}
		default:
			b.WriteByte(ch)
		}
	}
	return "", s.errorf(start, "expected closing '%c'", c)
}

// SyntaxError carries the lexical position a parse failure was detected at.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse: line %d col %d: %s", e.Line, e.Col, e.Msg)
}

func (s *Scanner) errorf(pos int, format string, args ...any) error {
	line, col := s.LineCol(pos)
	return &SyntaxError{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}
