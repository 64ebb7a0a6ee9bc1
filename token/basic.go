package token

// BasicKind describes the kind of basic type token.
type BasicKind int

const (
	Invalid BasicKind = iota // invalid token

	Void
	Bool

	// Signed integer tokens
	Char
	Short
	Int
	Long
	LongLong

	// Unsigned integer tokens
	UChar
	UShort
	UInt
	ULong
	ULongLong

	// Floating-point tokens
	Float
	Double
)

// BasicInfo describes properties of a basic type token.
type BasicInfo int

const (
	IsVoid BasicInfo = 1 << iota
	IsBoolean
	IsInteger
	IsUnsigned
	IsFloat
	IsNumeric = IsInteger | IsFloat
)

// Basic represents a basic type token: void, bool, the integer tokens,
// and the floating-point tokens.
type Basic struct {
	typ
	kind BasicKind
	info BasicInfo
	name string
}

// Kind returns the kind of the basic token.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Info returns information about the basic token.
func (b *Basic) Info() BasicInfo {
	return b.info
}

// Name returns the name of the basic token.
func (b *Basic) Name() string {
	return b.name
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the predeclared basic tokens, indexed by BasicKind.
// Typ[Invalid] is nil, representing an invalid token.
var Typ = []*Basic{
	Invalid:   nil,
	Void:      {kind: Void, info: IsVoid, name: "void"},
	Bool:      {kind: Bool, info: IsBoolean, name: "bool"},
	Char:      {kind: Char, info: IsInteger, name: "char"},
	Short:     {kind: Short, info: IsInteger, name: "short"},
	Int:       {kind: Int, info: IsInteger, name: "int"},
	Long:      {kind: Long, info: IsInteger, name: "long"},
	LongLong:  {kind: LongLong, info: IsInteger, name: "long long"},
	UChar:     {kind: UChar, info: IsInteger | IsUnsigned, name: "unsigned char"},
	UShort:    {kind: UShort, info: IsInteger | IsUnsigned, name: "unsigned short"},
	UInt:      {kind: UInt, info: IsInteger | IsUnsigned, name: "unsigned int"},
	ULong:     {kind: ULong, info: IsInteger | IsUnsigned, name: "unsigned long"},
	ULongLong: {kind: ULongLong, info: IsInteger | IsUnsigned, name: "unsigned long long"},
	Float:     {kind: Float, info: IsFloat, name: "float"},
	Double:    {kind: Double, info: IsFloat, name: "double"},
}
