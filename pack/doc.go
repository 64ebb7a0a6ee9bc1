/*
Package pack implements an ordered, immutable sequence of type tokens and a
family of query algorithms over it.

A Pack is decomposed recursively: it is either the empty pack or a head token
followed by a tail pack. Every algorithm is defined by structural recursion
over that shape, with a base case on the empty pack:

	(char, short, int)  ->  head: char,  tail: (short, int)
	(short, int)        ->  head: short, tail: (int)
	(int)               ->  head: int,   tail: ()

Each query algorithm exists in two equivalent forms: a native form taking the
token list inline (Size, At, Has, Find, Unique) and a wrapped form as a method
on *Pack, implemented by forwarding to the native form. The two forms agree
for the same effective sequence.

Queries split into two failure classes. At and Element have no sensible
result for an out-of-range index and panic; such a violation must halt the
analysis or generation pass that issued it. Has, Find and Unique are total:
absence is an expected outcome, reported as false or as the NotFound index
sentinel, never as a panic.

Tokens are compared by exact identity (see the token package); a pack may
freely contain duplicate or qualified tokens.
*/
package pack
