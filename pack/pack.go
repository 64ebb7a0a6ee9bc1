package pack

import (
	"strings"

	"github.com/typepack/typepack/token"
)

// Pack is an immutable ordered list of type tokens, decomposed recursively
// into a head token and a tail pack. The zero-length pack is Empty; every
// non-empty pack's tail chain ends in Empty.
type Pack struct {
	head token.Type
	tail *Pack
}

// Empty is the empty pack. It is the unique base case of the recursive
// structure: it has size zero and no head or tail.
var Empty = &Pack{}

// New builds a pack from an ordered list of tokens. With no arguments it
// returns Empty. Any token list is valid, including repeated tokens and
// qualified variants.
func New(ts ...token.Type) *Pack {
	if len(ts) == 0 {
		return Empty
	}
	return &Pack{head: ts[0], tail: New(ts[1:]...)}
}

// IsEmpty reports whether p is the empty pack.
func (p *Pack) IsEmpty() bool {
	return p.tail == nil
}

// Head returns the first token of the pack.
// Head of the empty pack is a contract violation and panics.
func (p *Pack) Head() token.Type {
	if p.IsEmpty() {
		panic("pack: Head of empty pack")
	}
	return p.head
}

// Tail returns the pack without its first token.
// Tail of the empty pack is a contract violation and panics.
func (p *Pack) Tail() *Pack {
	if p.IsEmpty() {
		panic("pack: Tail of empty pack")
	}
	return p.tail
}

// Types returns the tokens of the pack in order. The returned slice is
// freshly allocated; the pack itself is never exposed for mutation.
func (p *Pack) Types() []token.Type {
	if p.IsEmpty() {
		return nil
	}
	var ts []token.Type
	for q := p; !q.IsEmpty(); q = q.tail {
		ts = append(ts, q.head)
	}
	return ts
}

// String implements fmt.Stringer, rendering the pack as "(t0, t1, ...)".
func (p *Pack) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, t := range p.Types() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteString(")")
	return b.String()
}

// IsPack reports whether x is a pack built by this package, including the
// empty pack. Any other value, nil, or a superficially similar container
// is not a pack.
func IsPack(x any) bool {
	p, ok := x.(*Pack)
	return ok && p != nil
}
