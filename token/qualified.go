package token

// Pointer represents a pointer token T*.
// A pointer token is distinct from the token it points to.
type Pointer struct {
	typ
	base Type
}

// NewPointer creates a new pointer token.
func NewPointer(base Type) *Pointer {
	return &Pointer{base: base}
}

// Elem returns the base token that the pointer points to.
func (p *Pointer) Elem() Type {
	return p.base
}

// String implements Type.
func (p *Pointer) String() string {
	return p.base.String() + "*"
}

// Ref represents an lvalue reference token T&.
// A reference token is distinct from the token it refers to.
type Ref struct {
	typ
	base Type
}

// NewRef creates a new lvalue reference token.
func NewRef(base Type) *Ref {
	return &Ref{base: base}
}

// Elem returns the base token that the reference refers to.
func (r *Ref) Elem() Type {
	return r.base
}

// String implements Type.
func (r *Ref) String() string {
	return r.base.String() + "&"
}

// RRef represents an rvalue reference token T&&.
type RRef struct {
	typ
	base Type
}

// NewRRef creates a new rvalue reference token.
func NewRRef(base Type) *RRef {
	return &RRef{base: base}
}

// Elem returns the base token that the reference refers to.
func (r *RRef) Elem() Type {
	return r.base
}

// String implements Type.
func (r *RRef) String() string {
	return r.base.String() + "&&"
}
