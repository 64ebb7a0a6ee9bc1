package syntax

import (
	"fmt"
	"strings"

	"github.com/typepack/typepack/token"
)

// Parse parses a comma-separated type-list expression into tokens:
//
//	list := [ type { "," type } ]
//	type := name { name } { "*" } [ "&" | "&&" ]
//	name := identifier        // multi-word names: "long long", "unsigned int"
//
// An optional outer pair of parentheses is accepted, so the output of
// (*pack.Pack).String parses back to the same token list. An empty
// expression (or "()") yields an empty list.
func Parse(src string) ([]token.Type, error) {
	p := newParser(src)
	ts := p.parseList()
	if len(p.errs) > 0 {
		return nil, fmt.Errorf("parse %q: %s", src, strings.Join(p.errs, "; "))
	}
	return ts, nil
}

type parser struct {
	s    *Scanner
	errs []string
}

func newParser(src string) *parser {
	p := &parser{}
	p.s = NewScanner(src, func(col int, msg string) {
		p.errs = append(p.errs, fmt.Sprintf("col %d: %s", col, msg))
	})
	p.s.Next()
	return p
}

func (p *parser) errorf(col int, format string, args ...any) {
	p.errs = append(p.errs, fmt.Sprintf("col %d: %s", col, fmt.Sprintf(format, args...)))
}

func (p *parser) parseList() []token.Type {
	wrapped := false
	if p.s.Token() == _Lparen {
		wrapped = true
		p.s.Next()
	}

	var ts []token.Type
	if p.s.Token() != _EOF && p.s.Token() != _Rparen {
		for {
			if t := p.parseType(); t != nil {
				ts = append(ts, t)
			}
			if p.s.Token() != _Comma {
				break
			}
			p.s.Next()
		}
	}

	if wrapped {
		if p.s.Token() == _Rparen {
			p.s.Next()
		} else {
			p.errorf(p.s.Col(), "missing closing parenthesis")
		}
	}
	if p.s.Token() != _EOF {
		p.errorf(p.s.Col(), "unexpected %s", p.s.Token())
	}
	return ts
}

// parseType parses a single type: a possibly multi-word name followed by
// pointer stars and at most one reference qualifier.
func (p *parser) parseType() token.Type {
	if p.s.Token() != _Name {
		p.errorf(p.s.Col(), "expected type name, found %s", p.s.Token())
		p.skipType()
		return nil
	}

	col := p.s.Col()
	words := []string{p.s.Literal()}
	p.s.Next()
	for p.s.Token() == _Name {
		words = append(words, p.s.Literal())
		p.s.Next()
	}

	name := strings.Join(words, " ")
	base := token.Lookup(name)
	if base == nil {
		p.errorf(col, "unknown type name %q", name)
		p.skipType()
		return nil
	}

	var t token.Type = base
	for p.s.Token() == _Star {
		t = token.NewPointer(t)
		p.s.Next()
	}
	switch p.s.Token() {
	case _Amp:
		t = token.NewRef(t)
		p.s.Next()
	case _AmpAmp:
		t = token.NewRRef(t)
		p.s.Next()
	}
	return t
}

// skipType advances past the rest of a malformed type, stopping at the next
// comma or list terminator so later types can still be reported on.
func (p *parser) skipType() {
	for {
		switch p.s.Token() {
		case _Comma, _Rparen, _EOF:
			return
		}
		p.s.Next()
	}
}
