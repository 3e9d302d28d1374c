package combinator

import (
	"github.com/parsec-go/parsec/parsec"
	"github.com/parsec-go/parsec/perr"
)

// ManyTill repeats p, non-greedily, until end succeeds. end is tried first
// on every iteration under an implicit Try, so a partially-consumed failed
// attempt at end never corrupts the subsequent attempt at p. If both end
// and p fail at the same point, ManyTill fails with their merged error.
func ManyTill[Tok any, U any, A any, E any](p parsec.Parser[Tok, U, A], end parsec.Parser[Tok, U, E]) parsec.Parser[Tok, U, []A] {
	return func(s parsec.State[Tok, U]) parsec.Reply[Tok, U, []A] {
		return manyTillStep(p, end, s)
	}
}

func manyTillStep[Tok any, U any, A any, E any](p parsec.Parser[Tok, U, A], end parsec.Parser[Tok, U, E], s parsec.State[Tok, U]) parsec.Reply[Tok, U, []A] {
	te := parsec.Try(end)(s)
	if te.OK {
		return parsec.Reply[Tok, U, []A]{Consumed: te.Consumed, OK: true, Value: nil, State: te.State, Err: te.Err}
	}

	pe := p(s)
	if !pe.OK {
		merged := perr.Merge(te.Err, pe.Err)
		return parsec.Reply[Tok, U, []A]{Consumed: pe.Consumed, OK: false, State: pe.State, Err: merged}
	}

	rest := manyTillStep(p, end, pe.State)
	consumed := pe.Consumed || rest.Consumed
	if !rest.OK {
		return parsec.Reply[Tok, U, []A]{Consumed: consumed, OK: false, State: rest.State, Err: rest.Err}
	}
	return parsec.Reply[Tok, U, []A]{
		Consumed: consumed,
		OK:       true,
		Value:    append([]A{pe.Value}, rest.Value...),
		State:    rest.State,
		Err:      rest.Err,
	}
}
