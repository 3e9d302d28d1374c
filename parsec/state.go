// Package parsec is the core combinator engine: the primitive Parser
// abstraction, its four-outcome (consumed/empty × ok/error) dispatch, and
// the handful of primitives (Return, Fail, Bind, Alt, Try, LookAhead,
// Label, Hidden, TokenPrim, Tokens, NotFollowedBy, Eof, the state
// accessors, and Run) that everything else in this module is built from.
package parsec

import (
	"github.com/parsec-go/parsec/pos"
	"github.com/parsec-go/parsec/stream"
)

// Unit is the value of parsers that succeed without producing anything
// meaningful (NotFollowedBy, Eof, the state-mutating accessors).
type Unit struct{}

// State is the quadruple (stream, position, user_state, tab_width) a
// parser threads through a run (spec.md §3). UserState is an opaque
// generic parameter never inspected by the engine itself.
type State[Tok any, UserState any] struct {
	Input    stream.Stream[Tok]
	Pos      pos.Position
	User     UserState
	TabWidth uint32
}
