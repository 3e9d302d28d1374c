package combinator

import "github.com/parsec-go/parsec/parsec"

// Chainl1 parses one or more p, separated by op, and folds the results
// left-associatively using the function each op match returns. This and
// Chainr1 are the single combinators a full expression-precedence parser
// (an out-of-scope collaborator per spec.md §1) would be built from; they
// do not themselves implement precedence climbing (SPEC_FULL C.2).
func Chainl1[Tok any, U any, A any](p parsec.Parser[Tok, U, A], op parsec.Parser[Tok, U, func(A, A) A]) parsec.Parser[Tok, U, A] {
	return parsec.Bind(p, func(x A) parsec.Parser[Tok, U, A] {
		return chainl1Rest(x, p, op)
	})
}

func chainl1Rest[Tok any, U any, A any](x A, p parsec.Parser[Tok, U, A], op parsec.Parser[Tok, U, func(A, A) A]) parsec.Parser[Tok, U, A] {
	return parsec.Alt(
		parsec.Bind(op, func(f func(A, A) A) parsec.Parser[Tok, U, A] {
			return parsec.Bind(p, func(y A) parsec.Parser[Tok, U, A] {
				return chainl1Rest(f(x, y), p, op)
			})
		}),
		parsec.Return[Tok, U, A](x),
	)
}

// Chainr1 is Chainl1's right-associative counterpart.
func Chainr1[Tok any, U any, A any](p parsec.Parser[Tok, U, A], op parsec.Parser[Tok, U, func(A, A) A]) parsec.Parser[Tok, U, A] {
	return parsec.Bind(p, func(x A) parsec.Parser[Tok, U, A] {
		return parsec.Alt(
			parsec.Bind(op, func(f func(A, A) A) parsec.Parser[Tok, U, A] {
				return parsec.Bind(Chainr1(p, op), func(y A) parsec.Parser[Tok, U, A] {
					return parsec.Return[Tok, U, A](f(x, y))
				})
			}),
			parsec.Return[Tok, U, A](x),
		)
	})
}
