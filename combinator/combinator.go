// Package combinator implements the generic repetition, choice and
// bracketing combinators from spec.md §4.6, built entirely from the
// primitives in package parsec.
package combinator

import (
	"github.com/parsec-go/parsec/parsec"
)

// Choice tries each parser in order, in the manner of Alt folded over the
// list; Choice of an empty slice always fails.
func Choice[Tok any, U any, T any](ps ...parsec.Parser[Tok, U, T]) parsec.Parser[Tok, U, T] {
	if len(ps) == 0 {
		return parsec.Fail[Tok, U, T]("no alternatives")
	}
	acc := ps[len(ps)-1]
	for i := len(ps) - 2; i >= 0; i-- {
		acc = parsec.Alt(ps[i], acc)
	}
	return acc
}

// Option runs p, falling back to def (consuming nothing) if p fails
// without consuming input.
func Option[Tok any, U any, T any](def T, p parsec.Parser[Tok, U, T]) parsec.Parser[Tok, U, T] {
	return parsec.Alt(p, parsec.Return[Tok, U, T](def))
}

// Optional runs p for effect, succeeding either way.
func Optional[Tok any, U any, T any](p parsec.Parser[Tok, U, T]) parsec.Parser[Tok, U, parsec.Unit] {
	asUnit := parsec.Map(p, func(T) parsec.Unit { return parsec.Unit{} })
	return parsec.Alt(asUnit, parsec.Return[Tok, U, parsec.Unit](parsec.Unit{}))
}

// Between parses open, then p, then close, returning p's value.
func Between[Tok any, U any, O any, T any, C any](open parsec.Parser[Tok, U, O], close parsec.Parser[Tok, U, C], p parsec.Parser[Tok, U, T]) parsec.Parser[Tok, U, T] {
	return parsec.Bind(open, func(O) parsec.Parser[Tok, U, T] {
		return parsec.ThenDiscard(p, close)
	})
}

// Count runs p exactly n times, collecting its results; fails if any one
// of the n runs fails. Built as a Bind chain (goparsec's Many1/SepBy1 idiom)
// rather than a hand-rolled loop, so consumed-tracking and error carry-over
// fall out of Bind's contract instead of being re-derived here.
func Count[Tok any, U any, T any](n int, p parsec.Parser[Tok, U, T]) parsec.Parser[Tok, U, []T] {
	if n <= 0 {
		return parsec.Return[Tok, U, []T](nil)
	}
	return parsec.Bind(p, func(x T) parsec.Parser[Tok, U, []T] {
		return parsec.Map(Count[Tok, U, T](n-1, p), func(rest []T) []T {
			return append([]T{x}, rest...)
		})
	})
}
