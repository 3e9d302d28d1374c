package parsec

import (
	"github.com/parsec-go/parsec/perr"
	"github.com/parsec-go/parsec/pos"
	"github.com/parsec-go/parsec/stream"
)

// GetState returns the current user state. Always EO.
func GetState[Tok any, U any]() Parser[Tok, U, U] {
	return func(s State[Tok, U]) Reply[Tok, U, U] {
		return ok[Tok, U, U](false, s.User, s, perr.Unknown(s.Pos))
	}
}

// PutState replaces the user state. Always EO.
func PutState[Tok any, U any](u U) Parser[Tok, U, Unit] {
	return func(s State[Tok, U]) Reply[Tok, U, Unit] {
		s.User = u
		return ok[Tok, U, Unit](false, Unit{}, s, perr.Unknown(s.Pos))
	}
}

// ModifyState applies f to the user state. Always EO.
func ModifyState[Tok any, U any](f func(U) U) Parser[Tok, U, Unit] {
	return func(s State[Tok, U]) Reply[Tok, U, Unit] {
		s.User = f(s.User)
		return ok[Tok, U, Unit](false, Unit{}, s, perr.Unknown(s.Pos))
	}
}

// GetPosition returns the current position. Always EO.
func GetPosition[Tok any, U any]() Parser[Tok, U, pos.Position] {
	return func(s State[Tok, U]) Reply[Tok, U, pos.Position] {
		return ok[Tok, U, pos.Position](false, s.Pos, s, perr.Unknown(s.Pos))
	}
}

// SetPosition overrides the current position without touching the stream.
// Always EO.
func SetPosition[Tok any, U any](p pos.Position) Parser[Tok, U, Unit] {
	return func(s State[Tok, U]) Reply[Tok, U, Unit] {
		s.Pos = p
		return ok[Tok, U, Unit](false, Unit{}, s, perr.Unknown(p))
	}
}

// GetInput returns the current input stream. Always EO.
func GetInput[Tok any, U any]() Parser[Tok, U, stream.Stream[Tok]] {
	return func(s State[Tok, U]) Reply[Tok, U, stream.Stream[Tok]] {
		return ok[Tok, U, stream.Stream[Tok]](false, s.Input, s, perr.Unknown(s.Pos))
	}
}

// SetInput overrides the current input stream without touching position.
// Always EO.
func SetInput[Tok any, U any](in stream.Stream[Tok]) Parser[Tok, U, Unit] {
	return func(s State[Tok, U]) Reply[Tok, U, Unit] {
		s.Input = in
		return ok[Tok, U, Unit](false, Unit{}, s, perr.Unknown(s.Pos))
	}
}
