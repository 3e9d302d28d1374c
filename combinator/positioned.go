package combinator

import (
	"github.com/parsec-go/parsec/parsec"
	"github.com/parsec-go/parsec/pos"
)

// Positioned pairs a parsed value with the position at which parsing it
// began, for AST nodes that need a source location (SPEC_FULL C.3).
type Positioned[T any] struct {
	Pos   pos.Position
	Value T
}

// WithPosition wraps p so its result also carries the starting position.
func WithPosition[Tok any, U any, T any](p parsec.Parser[Tok, U, T]) parsec.Parser[Tok, U, Positioned[T]] {
	return parsec.Bind(parsec.GetPosition[Tok, U](), func(start pos.Position) parsec.Parser[Tok, U, Positioned[T]] {
		return parsec.Map(p, func(v T) Positioned[T] { return Positioned[T]{Pos: start, Value: v} })
	})
}
