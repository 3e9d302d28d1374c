package parsec

import (
	"sync"

	"github.com/parsec-go/parsec/perr"
)

// Return succeeds with x, consuming nothing (EO).
func Return[Tok any, U any, T any](x T) Parser[Tok, U, T] {
	return func(s State[Tok, U]) Reply[Tok, U, T] {
		return ok[Tok, U, T](false, x, s, perr.Unknown(s.Pos))
	}
}

// Fail always fails with msg, consuming nothing (EE).
func Fail[Tok any, U any, T any](msg string) Parser[Tok, U, T] {
	return func(s State[Tok, U]) Reply[Tok, U, T] {
		return failure[Tok, U, T](false, s, perr.NewMessage(s.Pos, perr.Msg(msg)))
	}
}

// Bind runs p; on success it runs f at the resulting value and state.
// Consumed propagates: once p has consumed input, the combined parser is
// considered consumed regardless of what f(x) does, and f(x)'s error (on
// either branch) is merged with p's carried error per spec.md §4.4.
func Bind[Tok any, U any, A any, B any](p Parser[Tok, U, A], f func(A) Parser[Tok, U, B]) Parser[Tok, U, B] {
	return func(s State[Tok, U]) Reply[Tok, U, B] {
		r1 := p(s)
		if !r1.OK {
			return failure[Tok, U, B](r1.Consumed, r1.State, r1.Err)
		}
		r2 := f(r1.Value)(r1.State)
		consumed := r1.Consumed || r2.Consumed
		merged := perr.Merge(r1.Err, r2.Err)
		if !r2.OK {
			return failure[Tok, U, B](consumed, r2.State, merged)
		}
		return ok[Tok, U, B](consumed, r2.Value, r2.State, merged)
	}
}

// Then runs p then q, discarding p's value.
func Then[Tok any, U any, A any, B any](p Parser[Tok, U, A], q Parser[Tok, U, B]) Parser[Tok, U, B] {
	return Bind(p, func(A) Parser[Tok, U, B] { return q })
}

// ThenDiscard runs p then q, discarding q's value and keeping p's.
func ThenDiscard[Tok any, U any, A any, B any](p Parser[Tok, U, A], q Parser[Tok, U, B]) Parser[Tok, U, A] {
	return Bind(p, func(x A) Parser[Tok, U, A] {
		return Bind(q, func(B) Parser[Tok, U, A] { return Return[Tok, U, A](x) })
	})
}

// Map applies a pure function to p's result without paying for an extra
// Bind closure capturing a constant continuation (SPEC_FULL C.1).
func Map[Tok any, U any, A any, B any](p Parser[Tok, U, A], f func(A) B) Parser[Tok, U, B] {
	return func(s State[Tok, U]) Reply[Tok, U, B] {
		r := p(s)
		if !r.OK {
			return failure[Tok, U, B](r.Consumed, r.State, r.Err)
		}
		return ok[Tok, U, B](r.Consumed, f(r.Value), r.State, r.Err)
	}
}

// Alt ("<|>") tries p; if it fails without consuming, tries q at the same
// state, merging p's error into q's resulting error either way. Any
// consumed outcome from p (success or failure) commits: q is never tried.
// This is the central predictive-parsing invariant from spec.md §3/§4.4.2.
func Alt[Tok any, U any, T any](p, q Parser[Tok, U, T]) Parser[Tok, U, T] {
	return func(s State[Tok, U]) Reply[Tok, U, T] {
		r1 := p(s)
		if r1.Consumed || r1.OK {
			return r1
		}
		r2 := q(s)
		merged := perr.Merge(r1.Err, r2.Err)
		if !r2.OK {
			return failure[Tok, U, T](r2.Consumed, r2.State, merged)
		}
		return ok[Tok, U, T](r2.Consumed, r2.Value, r2.State, merged)
	}
}

// Try runs p; if p fails having consumed input, Try rewinds to the
// pre-p state and reports an empty failure instead, without touching the
// error's own position (so it still wins a Merge against anything closer
// to the start). This is the engine's only source of unbounded
// backtracking. Successes pass through unchanged.
func Try[Tok any, U any, T any](p Parser[Tok, U, T]) Parser[Tok, U, T] {
	return func(s State[Tok, U]) Reply[Tok, U, T] {
		r := p(s)
		if r.OK || !r.Consumed {
			return r
		}
		return failure[Tok, U, T](false, s, r.Err)
	}
}

// LookAhead runs p; on success it restores the pre-p state (reporting an
// empty success) so p's match can be inspected without consuming it. On
// failure it passes the failure through unchanged (including Consumed).
func LookAhead[Tok any, U any, T any](p Parser[Tok, U, T]) Parser[Tok, U, T] {
	return func(s State[Tok, U]) Reply[Tok, U, T] {
		r := p(s)
		if !r.OK {
			return r
		}
		return ok[Tok, U, T](false, r.Value, s, r.Err)
	}
}

// Label ("<?>") replaces the Expected messages of p's empty outcomes with
// the single Expected(name); consumed outcomes are untouched, per the
// rationale in spec.md §4.4 that once input is consumed the low-level
// expectation is more informative than the user-level label.
func Label[Tok any, U any, T any](p Parser[Tok, U, T], name string) Parser[Tok, U, T] {
	return relabel(p, name, false)
}

// Hidden is Label(p, "") except the Expected set is cleared entirely
// rather than replaced with an empty-string expectation.
func Hidden[Tok any, U any, T any](p Parser[Tok, U, T]) Parser[Tok, U, T] {
	return relabel(p, "", true)
}

func relabel[Tok any, U any, T any](p Parser[Tok, U, T], name string, hide bool) Parser[Tok, U, T] {
	return func(s State[Tok, U]) Reply[Tok, U, T] {
		r := p(s)
		if r.Consumed {
			return r
		}
		err := perr.ClearExpected(r.Err)
		if !hide {
			err = perr.AddMessage(err, perr.Expected(name))
		}
		if !r.OK {
			return failure[Tok, U, T](false, r.State, err)
		}
		return ok[Tok, U, T](false, r.Value, r.State, err)
	}
}

// Lazy defers construction of a recursive grammar's parser until first
// use, so a top-level var initializer referencing itself (directly or
// through other symbols) can terminate (spec.md §9's "no cyclic data").
// The built Parser is memoized: build runs exactly once even if the
// returned Parser is invoked concurrently from multiple runs.
func Lazy[Tok any, U any, T any](build func() Parser[Tok, U, T]) Parser[Tok, U, T] {
	var once sync.Once
	var cached Parser[Tok, U, T]
	return func(s State[Tok, U]) Reply[Tok, U, T] {
		once.Do(func() { cached = build() })
		return cached(s)
	}
}
