package combinator

import (
	"github.com/pkg/errors"

	"github.com/parsec-go/parsec/parsec"
	"github.com/parsec-go/parsec/perr"
)

// Many matches p zero or more times, collecting its results. If p ever
// succeeds without consuming input, Many panics: looping it would never
// terminate, and spec.md §4.6 treats that as a programmer error in the
// grammar, not an input-dependent failure.
func Many[Tok any, U any, T any](p parsec.Parser[Tok, U, T]) parsec.Parser[Tok, U, []T] {
	return func(s parsec.State[Tok, U]) parsec.Reply[Tok, U, []T] {
		var out []T
		cur := s
		consumedAny := false
		accErr := perr.Unknown(s.Pos)
		for {
			r := p(cur)
			if !r.OK {
				accErr = perr.Merge(accErr, r.Err)
				if r.Consumed {
					return parsec.Reply[Tok, U, []T]{Consumed: true, OK: false, State: r.State, Err: accErr}
				}
				break
			}
			if !r.Consumed {
				panic(errors.Errorf(
					"combinator.Many: inner parser succeeded without consuming input at %s (would loop forever)",
					cur.Pos))
			}
			out = append(out, r.Value)
			consumedAny = true
			accErr = r.Err
			cur = r.State
		}
		return parsec.Reply[Tok, U, []T]{Consumed: consumedAny, OK: true, Value: out, State: cur, Err: accErr}
	}
}

// Some matches p one or more times: Some(p) = p *> Many(p) per spec.md §4.6.
func Some[Tok any, U any, T any](p parsec.Parser[Tok, U, T]) parsec.Parser[Tok, U, []T] {
	return parsec.Bind(p, func(x T) parsec.Parser[Tok, U, []T] {
		return parsec.Map(Many(p), func(rest []T) []T {
			return append([]T{x}, rest...)
		})
	})
}

// SkipMany is Many discarding its results, without ever allocating the
// intermediate slice; used heavily by the lexer's whitespace skipper.
func SkipMany[Tok any, U any, T any](p parsec.Parser[Tok, U, T]) parsec.Parser[Tok, U, parsec.Unit] {
	return func(s parsec.State[Tok, U]) parsec.Reply[Tok, U, parsec.Unit] {
		cur := s
		consumedAny := false
		accErr := perr.Unknown(s.Pos)
		for {
			r := p(cur)
			if !r.OK {
				accErr = perr.Merge(accErr, r.Err)
				if r.Consumed {
					return parsec.Reply[Tok, U, parsec.Unit]{Consumed: true, OK: false, State: r.State, Err: accErr}
				}
				break
			}
			if !r.Consumed {
				panic(errors.Errorf(
					"combinator.SkipMany: inner parser succeeded without consuming input at %s (would loop forever)",
					cur.Pos))
			}
			consumedAny = true
			accErr = r.Err
			cur = r.State
		}
		return parsec.Reply[Tok, U, parsec.Unit]{Consumed: consumedAny, OK: true, Value: parsec.Unit{}, State: cur, Err: accErr}
	}
}

// SkipSome is Some discarding its results.
func SkipSome[Tok any, U any, T any](p parsec.Parser[Tok, U, T]) parsec.Parser[Tok, U, parsec.Unit] {
	return parsec.Then(p, SkipMany(p))
}
