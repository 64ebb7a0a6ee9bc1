// Package syntax implements lexical analysis and parsing of type-list
// expressions such as "char, short, int*, long long&".
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	_EOF Token = iota // end of input

	_Name // identifier: char, long, unsigned

	// Qualifiers and delimiters
	_Star   // *
	_Amp    // &
	_AmpAmp // &&
	_Comma  // ,
	_Lparen // (
	_Rparen // )

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:  "EOF",
	_Name: "NAME",

	_Star:   "*",
	_Amp:    "&",
	_AmpAmp: "&&",
	_Comma:  ",",
	_Lparen: "(",
	_Rparen: ")",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// IsQualifier reports whether t qualifies the preceding type name.
func (t Token) IsQualifier() bool {
	return t == _Star || t == _Amp || t == _AmpAmp
}
