package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parsec-go/parsec/pos"
)

func advanceRune(p pos.Position, r rune) pos.Position {
	return pos.Advance(p, r, pos.TabWidth)
}

func digit() Parser[rune, struct{}, rune] {
	return TokenPrim[rune, struct{}, rune](
		func(r rune) string { return string(r) },
		advanceRune,
		func(r rune) (rune, bool) {
			if r >= '0' && r <= '9' {
				return r, true
			}
			return 0, false
		},
	)
}

func tokens(s string) Parser[rune, struct{}, []rune] {
	return Tokens[rune, struct{}](
		func(rs []rune) string { return string(rs) },
		func(p pos.Position, rs []rune) pos.Position { return pos.Update(p, rs, pos.TabWidth) },
		func(a, b rune) bool { return a == b },
		[]rune(s),
	)
}

func TestTokenPrimConsumesMatchingToken(t *testing.T) {
	r := run[rune](digit(), "7x")
	assert.True(t, r.OK)
	assert.True(t, r.Consumed)
	assert.Equal(t, '7', r.Value)
	assert.Equal(t, "x", remaining(r.State.Input))
}

func TestTokenPrimFailsWithoutConsumingOnMismatch(t *testing.T) {
	r := run[rune](digit(), "x7")
	assert.False(t, r.OK)
	assert.False(t, r.Consumed)
	u, ok := r.Err.Unexpected()
	assert.True(t, ok)
	assert.Equal(t, "x", u)
}

func TestTokenPrimFailsOnEndOfInput(t *testing.T) {
	r := run[rune](digit(), "")
	assert.False(t, r.OK)
	assert.False(t, r.Consumed)
}

func TestTokensSucceedsOnFullMatch(t *testing.T) {
	r := run[[]rune](tokens("let"), "let x")
	assert.True(t, r.OK)
	assert.True(t, r.Consumed)
	assert.Equal(t, []rune("let"), r.Value)
	assert.Equal(t, " x", remaining(r.State.Input))
}

func TestTokensCommitsAfterPartialMatch(t *testing.T) {
	// "letrec" matches "let" up to the 't' but then diverges: having
	// consumed "let" already, Tokens must report a Consumed-Error rather
	// than letting a caller backtrack for free.
	r := run[[]rune](tokens("letx"), "letrec")
	assert.False(t, r.OK)
	assert.True(t, r.Consumed)
}

func TestTokensFailsEmptyOnImmediateMismatch(t *testing.T) {
	r := run[[]rune](tokens("let"), "var x")
	assert.False(t, r.OK)
	assert.False(t, r.Consumed)
}

func TestTokensOfEmptySequenceAlwaysSucceedsWithoutConsuming(t *testing.T) {
	r := run[[]rune](tokens(""), "anything")
	assert.True(t, r.OK)
	assert.False(t, r.Consumed)
	assert.Empty(t, r.Value)
}

func TestNotFollowedBySucceedsWhenInnerParserFails(t *testing.T) {
	p := NotFollowedBy(digit(), func(r rune) string { return string(r) })
	r := run[Unit](p, "x")
	assert.True(t, r.OK)
	assert.False(t, r.Consumed)
	assert.Equal(t, "x", remaining(r.State.Input))
}

func TestNotFollowedByFailsWhenInnerParserSucceeds(t *testing.T) {
	p := NotFollowedBy(digit(), func(r rune) string { return string(r) })
	r := run[Unit](p, "7")
	assert.False(t, r.OK)
	assert.False(t, r.Consumed)
	u, ok := r.Err.Unexpected()
	assert.True(t, ok)
	assert.Equal(t, "7", u)
}

func TestNotFollowedByDoesNotLeaveInnerConsumptionBehind(t *testing.T) {
	// The inner parser is run under an implicit Try, so a partial, consuming
	// match of p leaves the stream untouched either way.
	p := NotFollowedBy(tokens("letrec"), func(rs []rune) string { return string(rs) })
	r := run[Unit](p, "let x")
	assert.True(t, r.OK)
	assert.False(t, r.Consumed)
	assert.Equal(t, "let x", remaining(r.State.Input))
}

func TestEofSucceedsAtEndOfInput(t *testing.T) {
	r := run[Unit](Eof[rune, struct{}](func(r rune) string { return string(r) }), "")
	assert.True(t, r.OK)
	assert.False(t, r.Consumed)
}

func TestEofFailsWhenInputRemains(t *testing.T) {
	r := run[Unit](Eof[rune, struct{}](func(r rune) string { return string(r) }), "x")
	assert.False(t, r.OK)
	assert.False(t, r.Consumed)
	assert.Equal(t, []string{"end of input"}, r.Err.Expected())
}
