package pack

import (
	"fmt"

	"github.com/typepack/typepack/token"
)

// NotFound is the index sentinel returned by Find when the queried token
// does not occur in the sequence. It is the maximum representable index.
const NotFound = ^uint(0)

// Size returns the number of tokens in the list.
func Size(ts ...token.Type) uint {
	if len(ts) == 0 {
		return 0
	}
	return 1 + Size(ts[1:]...)
}

// Size returns the number of tokens in the pack.
func (p *Pack) Size() uint {
	return Size(p.Types()...)
}

// At returns the token at index n. An index outside the list is a contract
// violation: At panics rather than returning a sentinel, and the bound is
// asserted at every recursive step so the violation surfaces as early as
// possible.
func At(n uint, ts ...token.Type) token.Type {
	if n >= uint(len(ts)) {
		panic(fmt.Sprintf("pack: index %d out of bounds for pack of size %d", n, len(ts)))
	}
	if n == 0 {
		return ts[0]
	}
	return At(n-1, ts[1:]...)
}

// At returns the token at index n in the pack, panicking when n is out of
// range.
func (p *Pack) At(n uint) token.Type {
	return At(n, p.Types()...)
}

// Has reports whether x occurs at least once in the list, compared by exact
// token identity. The recursion short-circuits on the first match.
func Has(x token.Type, ts ...token.Type) bool {
	if len(ts) == 0 {
		return false
	}
	if token.Identical(x, ts[0]) {
		return true
	}
	return Has(x, ts[1:]...)
}

// Has reports whether x occurs at least once in the pack.
func (p *Pack) Has(x token.Type) bool {
	return Has(x, p.Types()...)
}

// Find returns the smallest index at which x occurs in the list, or NotFound
// if x does not occur. Find is total: absence is an answer, not a failure.
func Find(x token.Type, ts ...token.Type) uint {
	return find(x, 0, ts)
}

// find threads the running position counter through the recursion,
// short-circuiting on the first identity match.
func find(x token.Type, counter uint, ts []token.Type) uint {
	if len(ts) == 0 {
		return NotFound
	}
	if token.Identical(x, ts[0]) {
		return counter
	}
	return find(x, counter+1, ts[1:])
}

// Find returns the smallest index at which x occurs in the pack, or
// NotFound if x does not occur.
func (p *Pack) Find(x token.Type) uint {
	return Find(x, p.Types()...)
}

// Unique reports whether no token occurs more than once in the list.
// Empty and single-token lists are trivially unique.
//
// The check is the pairwise structural recursion: the list is unique iff its
// first two tokens differ, neither recurs in the remaining tail, and the
// tail without the first token is itself unique. The overlapping sub-checks
// make this worst-case quadratic, which is acceptable for the short
// sequences this package is used on.
func Unique(ts ...token.Type) bool {
	if len(ts) < 2 {
		return true
	}
	first, second, rest := ts[0], ts[1], ts[2:]
	if token.Identical(first, second) {
		return false
	}
	return !Has(first, rest...) && !Has(second, rest...) && Unique(ts[1:]...)
}

// Unique reports whether no token occurs more than once in the pack.
func (p *Pack) Unique() bool {
	return Unique(p.Types()...)
}
