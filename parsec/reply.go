package parsec

import "github.com/parsec-go/parsec/perr"

// Reply collapses the four CO/CE/EO/EE outcomes from spec.md §3/§9 into a
// pair of flags plus payload: Consumed records whether the parser read at
// least one token, OK records success. Every Reply carries an Err, even on
// success — Parsec's "hidden" error accumulator (spec.md §4.4's bind
// contract) needed so Alt can merge the road not taken's expectations into
// whichever branch it commits to.
type Reply[Tok any, UserState any, T any] struct {
	Consumed bool
	OK       bool
	Value    T
	State    State[Tok, UserState]
	Err      perr.ParseError
}

// Parser is a value that, run against a State, produces one Reply.
// Defunctionalized as a plain function type rather than a four-continuation
// interface (spec.md §9): Go's generic funcs give us the same dispatch
// without the allocation of a four-field continuation object on the hot
// path, at the cost of one tagged-struct return per call.
type Parser[Tok any, UserState any, T any] func(State[Tok, UserState]) Reply[Tok, UserState, T]

func ok[Tok any, U any, T any](consumed bool, v T, s State[Tok, U], err perr.ParseError) Reply[Tok, U, T] {
	return Reply[Tok, U, T]{Consumed: consumed, OK: true, Value: v, State: s, Err: err}
}

func failure[Tok any, U any, T any](consumed bool, s State[Tok, U], err perr.ParseError) Reply[Tok, U, T] {
	return Reply[Tok, U, T]{Consumed: consumed, OK: false, State: s, Err: err}
}
