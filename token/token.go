// Package token implements the type tokens inspected by typepack.
// A token is an immutable, opaque identity standing for one type slot;
// tokens carry no values and are compared only for exact identity.
package token

// Type is the interface implemented by all type tokens.
type Type interface {
	// String returns a human-readable, C-style representation of the token.
	String() string

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// typ is a base struct for all token implementations.
type typ struct{}

func (typ) aType() {}
