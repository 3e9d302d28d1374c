package parsec

import (
	"github.com/parsec-go/parsec/perr"
	"github.com/parsec-go/parsec/pos"
)

// TokenPrim is the engine's one atomic token consumer: peek one token,
// apply match, and either fail (EE, showTok describing what was seen) or
// succeed consuming it (CO, position advanced by nextPos).
func TokenPrim[Tok any, U any, T any](
	showTok func(Tok) string,
	nextPos func(pos.Position, Tok) pos.Position,
	match func(Tok) (T, bool),
) Parser[Tok, U, T] {
	return func(s State[Tok, U]) Reply[Tok, U, T] {
		tok, rest, more := s.Input.Uncons()
		if !more {
			return failure[Tok, U, T](false, s, perr.NewMessage(s.Pos, perr.Unexpected("end of input")))
		}
		v, matched := match(tok)
		if !matched {
			return failure[Tok, U, T](false, s, perr.NewMessage(s.Pos, perr.Unexpected(showTok(tok))))
		}
		newPos := nextPos(s.Pos, tok)
		newState := State[Tok, U]{Input: rest, Pos: newPos, User: s.User, TabWidth: s.TabWidth}
		return ok[Tok, U, T](true, v, newState, perr.Unknown(newPos))
	}
}

// Tokens matches a fixed sequence of tokens (used for char.String): all or
// nothing on an empty prefix, but commits (Consumed-Error) once at least
// one token of the sequence has matched, per spec.md §4.4.
func Tokens[Tok any, U any](
	showChunk func([]Tok) string,
	nextPos func(pos.Position, []Tok) pos.Position,
	equal func(a, b Tok) bool,
	expected []Tok,
) Parser[Tok, U, []Tok] {
	return func(s State[Tok, U]) Reply[Tok, U, []Tok] {
		cur := s
		matched := make([]Tok, 0, len(expected))
		for i, want := range expected {
			tok, rest, more := cur.Input.Uncons()
			if !more || !equal(tok, want) {
				consumed := i > 0
				errState := s
				if consumed {
					errState = cur
				}
				err := perr.NewMessage(cur.Pos, perr.Expected(showChunk(expected)))
				if more {
					err = perr.AddMessage(err, perr.Unexpected(showChunk([]Tok{tok})))
				} else {
					err = perr.AddMessage(err, perr.Unexpected("end of input"))
				}
				return failure[Tok, U, []Tok](consumed, errState, err)
			}
			matched = append(matched, tok)
			cur = State[Tok, U]{Input: rest, Pos: cur.Pos, User: cur.User, TabWidth: cur.TabWidth}
		}
		newPos := nextPos(s.Pos, expected)
		cur.Pos = newPos
		return ok[Tok, U, []Tok](len(expected) > 0, matched, cur, perr.Unknown(newPos))
	}
}

// NotFollowedBy succeeds (consuming nothing) only if p fails at the current
// position; if p succeeds, NotFollowedBy fails reporting the matched value
// as unexpected. p is run under an implicit Try so a consuming partial
// match of p does not leave the stream advanced.
func NotFollowedBy[Tok any, U any, T any](p Parser[Tok, U, T], show func(T) string) Parser[Tok, U, Unit] {
	return func(s State[Tok, U]) Reply[Tok, U, Unit] {
		r := Try(p)(s)
		if r.OK {
			return failure[Tok, U, Unit](false, s, perr.NewMessage(s.Pos, perr.Unexpected(show(r.Value))))
		}
		return ok[Tok, U, Unit](false, Unit{}, s, perr.Unknown(s.Pos))
	}
}

// Eof succeeds (EO) only at the end of the input stream.
func Eof[Tok any, U any](showTok func(Tok) string) Parser[Tok, U, Unit] {
	return func(s State[Tok, U]) Reply[Tok, U, Unit] {
		tok, _, more := s.Input.Uncons()
		if !more {
			return ok[Tok, U, Unit](false, Unit{}, s, perr.Unknown(s.Pos))
		}
		err := perr.AddMessage(perr.NewMessage(s.Pos, perr.Unexpected(showTok(tok))), perr.Expected("end of input"))
		return failure[Tok, U, Unit](false, s, err)
	}
}
