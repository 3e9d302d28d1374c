package combinator

import "github.com/parsec-go/parsec/parsec"

// SepBy1 matches one or more p, separated by sep. Does not consume a
// trailing separator.
func SepBy1[Tok any, U any, A any, S any](p parsec.Parser[Tok, U, A], sep parsec.Parser[Tok, U, S]) parsec.Parser[Tok, U, []A] {
	return parsec.Bind(p, func(x A) parsec.Parser[Tok, U, []A] {
		rest := Many(parsec.Try(parsec.Then(sep, p)))
		return parsec.Map(rest, func(xs []A) []A { return append([]A{x}, xs...) })
	})
}

// SepBy matches zero or more p, separated by sep.
func SepBy[Tok any, U any, A any, S any](p parsec.Parser[Tok, U, A], sep parsec.Parser[Tok, U, S]) parsec.Parser[Tok, U, []A] {
	return Option[Tok, U, []A](nil, SepBy1(p, sep))
}

// EndBy1 matches one or more p, each followed by sep.
func EndBy1[Tok any, U any, A any, S any](p parsec.Parser[Tok, U, A], sep parsec.Parser[Tok, U, S]) parsec.Parser[Tok, U, []A] {
	return Some(parsec.ThenDiscard(p, sep))
}

// EndBy matches zero or more p, each followed by sep.
func EndBy[Tok any, U any, A any, S any](p parsec.Parser[Tok, U, A], sep parsec.Parser[Tok, U, S]) parsec.Parser[Tok, U, []A] {
	return Many(parsec.ThenDiscard(p, sep))
}

// SepEndBy1 matches one or more p separated by sep, with an optional
// trailing sep.
func SepEndBy1[Tok any, U any, A any, S any](p parsec.Parser[Tok, U, A], sep parsec.Parser[Tok, U, S]) parsec.Parser[Tok, U, []A] {
	return parsec.Bind(p, func(x A) parsec.Parser[Tok, U, []A] {
		return parsec.Alt(
			parsec.Bind(sep, func(S) parsec.Parser[Tok, U, []A] {
				return parsec.Map(SepEndBy(p, sep), func(xs []A) []A { return append([]A{x}, xs...) })
			}),
			parsec.Return[Tok, U, []A]([]A{x}),
		)
	})
}

// SepEndBy matches zero or more p separated by sep, with an optional
// trailing sep.
func SepEndBy[Tok any, U any, A any, S any](p parsec.Parser[Tok, U, A], sep parsec.Parser[Tok, U, S]) parsec.Parser[Tok, U, []A] {
	return parsec.Alt(SepEndBy1(p, sep), parsec.Return[Tok, U, []A](nil))
}
