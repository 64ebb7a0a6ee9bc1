package pack

import (
	"fmt"

	"github.com/typepack/typepack/token"
)

// Element is a positional reference into a pack: the pairing of an index
// with the sub-pack that starts at that index. It has no storage of its own;
// it is a computed projection that exists only for the duration of a lookup.
type Element struct {
	pack  *Pack
	index uint
}

// Element returns the positional reference for index n, obtained by peeling
// n head layers off the pack. An index outside the pack is a contract
// violation and panics, like At.
func (p *Pack) Element(n uint) Element {
	q := p
	for i := uint(0); i < n; i++ {
		if q.IsEmpty() {
			break
		}
		q = q.tail
	}
	if q.IsEmpty() {
		panic(fmt.Sprintf("pack: index %d out of bounds for pack of size %d", n, p.Size()))
	}
	return Element{pack: q, index: n}
}

// Index returns the position this element refers to.
func (e Element) Index() uint {
	return e.index
}

// Pack returns the sub-pack beginning at the referenced position.
func (e Element) Pack() *Pack {
	return e.pack
}

// Type returns the token at the referenced position, the head of the
// element's sub-pack.
func (e Element) Type() token.Type {
	return e.pack.Head()
}
