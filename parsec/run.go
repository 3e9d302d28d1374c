package parsec

import (
	"github.com/parsec-go/parsec/pos"
	"github.com/parsec-go/parsec/stream"
)

// Run is the core's single entry point (spec.md §6): build the initial
// state at (sourceName, 1, 1), run parser, and return its value or the
// final ParseError as a standard Go error.
func Run[Tok any, U any, T any](parser Parser[Tok, U, T], sourceName string, userState U, input stream.Stream[Tok]) (T, error) {
	s := State[Tok, U]{
		Input:    input,
		Pos:      pos.New(sourceName),
		User:     userState,
		TabWidth: pos.TabWidth,
	}
	r := parser(s)
	if r.OK {
		return r.Value, nil
	}
	var zero T
	return zero, r.Err
}
