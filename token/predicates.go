package token

// Identical reports whether x and y are identical tokens.
// Identity is exact: there is no subtyping, no coercion, and no structural
// equivalence weaker than identity. In particular a token and a qualified
// variant of the same underlying token (int vs int& vs int*) are distinct.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return identical(x, y)
}

func identical(x, y Type) bool {
	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind
		}
	case *Pointer:
		if y, ok := y.(*Pointer); ok {
			return Identical(x.base, y.base)
		}
	case *Ref:
		if y, ok := y.(*Ref); ok {
			return Identical(x.base, y.base)
		}
	case *RRef:
		if y, ok := y.(*RRef); ok {
			return Identical(x.base, y.base)
		}
	}
	return false
}

// IsVoidType reports whether t is the void token.
func IsVoidType(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b.kind == Void
}

// IsIntegerType reports whether t is an integer token.
func IsIntegerType(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b.info&IsInteger != 0
}

// IsFloating reports whether t is a floating-point token.
func IsFloating(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b.info&IsFloat != 0
}

// IsPointer reports whether t is a pointer token (T*).
func IsPointer(t Type) bool {
	_, ok := t.(*Pointer)
	return ok
}

// IsRRef reports whether t is an rvalue reference token (T&&).
func IsRRef(t Type) bool {
	_, ok := t.(*RRef)
	return ok
}

// IsRef reports whether t is a reference token (T& or T&&).
func IsRef(t Type) bool {
	switch t.(type) {
	case *Ref, *RRef:
		return true
	}
	return false
}

// IsQualified reports whether t is a pointer or reference token.
func IsQualified(t Type) bool {
	return IsPointer(t) || IsRef(t)
}
