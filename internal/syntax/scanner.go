package syntax

import (
	"fmt"
	"unicode/utf8"
)

// Scanner performs lexical analysis on a type-list expression.
// Expressions are single-line; positions are 1-based columns.
type Scanner struct {
	src string
	off int  // byte offset of the next character
	ch  rune // current character, -1 at end of input

	// Current token info
	tok    Token  // token type
	lit    string // token literal (identifier name)
	tokCol int    // token start column, 1-based

	errh func(col int, msg string) // error handler, never nil
}

// NewScanner creates a new Scanner for the given expression.
// The errh function is called for each lexical error; if nil, errors are
// silently ignored.
func NewScanner(src string, errh func(col int, msg string)) *Scanner {
	if errh == nil {
		errh = func(int, string) {}
	}
	s := &Scanner{src: src, errh: errh}
	s.nextch()
	return s
}

// nextch advances to the next input character.
func (s *Scanner) nextch() {
	if s.off >= len(s.src) {
		s.ch = -1
		return
	}
	r, w := utf8.DecodeRuneInString(s.src[s.off:])
	s.ch = r
	s.off += w
}

// col returns the 1-based column of the current character.
func (s *Scanner) col() int {
	if s.ch < 0 {
		return len(s.src) + 1
	}
	return s.off - utf8.RuneLen(s.ch) + 1
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	for s.ch == ' ' || s.ch == '\t' {
		s.nextch()
	}

	s.tokCol = s.col()
	s.lit = ""

	switch {
	case s.ch < 0:
		s.tok = _EOF

	case isLetter(s.ch):
		s.scanIdent()

	case s.ch == '*':
		s.tok = _Star
		s.nextch()

	case s.ch == '&':
		s.nextch()
		if s.ch == '&' {
			s.tok = _AmpAmp
			s.nextch()
		} else {
			s.tok = _Amp
		}

	case s.ch == ',':
		s.tok = _Comma
		s.nextch()

	case s.ch == '(':
		s.tok = _Lparen
		s.nextch()

	case s.ch == ')':
		s.tok = _Rparen
		s.nextch()

	default:
		s.errh(s.tokCol, fmt.Sprintf("unexpected character %q", s.ch))
		s.nextch()
		goto redo
	}
}

// scanIdent scans an identifier starting at the current character.
func (s *Scanner) scanIdent() {
	start := s.off - 1
	for isLetter(s.ch) || isDigit(s.ch) {
		s.nextch()
	}
	end := s.off
	if s.ch >= 0 {
		end -= utf8.RuneLen(s.ch)
	}
	s.tok = _Name
	s.lit = s.src[start:end]
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// Col returns the current token's start column, 1-based.
func (s *Scanner) Col() int {
	return s.tokCol
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
