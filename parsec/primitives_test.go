package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parsec-go/parsec/perr"
	"github.com/parsec-go/parsec/pos"
	"github.com/parsec-go/parsec/stream"
)

func remaining(s stream.Stream[rune]) string {
	return s.(*stream.Runes).Remaining()
}

// run builds the initial state for src and runs p against it directly,
// bypassing Run so tests can also inspect Reply.Consumed/Err rather than
// just the collapsed (T, error) pair.
func run[T any](p Parser[rune, struct{}, T], src string) Reply[rune, struct{}, T] {
	s := State[rune, struct{}]{Input: stream.NewRunes(src), Pos: pos.New("test"), TabWidth: pos.TabWidth}
	return p(s)
}

func char(c rune) Parser[rune, struct{}, rune] {
	return TokenPrim[rune, struct{}, rune](
		func(r rune) string { return string(r) },
		func(p pos.Position, r rune) pos.Position { return pos.Advance(p, r, pos.TabWidth) },
		func(r rune) (rune, bool) {
			if r == c {
				return r, true
			}
			return 0, false
		},
	)
}

// lchar is char labelled with its own rune, mirroring how char.Char wraps
// Satisfy with Label so a failed match reports an Expected entry.
func lchar(c rune) Parser[rune, struct{}, rune] {
	return Label(char(c), string(c))
}

func TestReturnIsEmptyOK(t *testing.T) {
	r := run[int](Return[rune, struct{}, int](7), "abc")
	assert.True(t, r.OK)
	assert.False(t, r.Consumed)
	assert.Equal(t, 7, r.Value)
	assert.Equal(t, "abc", remaining(r.State.Input))
}

func TestFailIsEmptyError(t *testing.T) {
	r := run[int](Fail[rune, struct{}, int]("nope"), "abc")
	assert.False(t, r.OK)
	assert.False(t, r.Consumed)
	assert.Contains(t, r.Err.Messages(), "nope")
}

func TestBindPropagatesConsumedAndMergesErrorOnSuccess(t *testing.T) {
	// Both p and f(x) succeed without consuming, but each carries a
	// "hidden" Expected error attached via Label; Bind must merge both into
	// the overall result even though the whole thing is OK.
	p := Label(Return[rune, struct{}, rune]('a'), "p-label")
	q := func(rune) Parser[rune, struct{}, rune] {
		return Label(Return[rune, struct{}, rune]('b'), "q-label")
	}
	r := run[rune](Bind(p, q), "xy")
	assert.True(t, r.OK)
	assert.False(t, r.Consumed)
	assert.Equal(t, 'b', r.Value)
	assert.ElementsMatch(t, []string{"p-label", "q-label"}, r.Err.Expected())
}

func TestBindFailurePropagatesConsumedFromFirstParser(t *testing.T) {
	p := char('a')
	q := func(rune) Parser[rune, struct{}, rune] { return char('x') }
	r := run[rune](Bind(p, q), "ay")
	assert.False(t, r.OK)
	assert.True(t, r.Consumed)
}

func TestThenDiscardsFirstValue(t *testing.T) {
	r := run[rune](Then(char('a'), char('b')), "ab")
	assert.True(t, r.OK)
	assert.Equal(t, 'b', r.Value)
}

func TestThenDiscardKeepsFirstValue(t *testing.T) {
	r := run[rune](ThenDiscard(char('a'), char('b')), "ab")
	assert.True(t, r.OK)
	assert.Equal(t, 'a', r.Value)
}

func TestMapTransformsValueAndPreservesOutcome(t *testing.T) {
	p := Map(char('a'), func(r rune) string { return string(r) + "!" })
	r := run[string](p, "a")
	assert.True(t, r.OK)
	assert.True(t, r.Consumed)
	assert.Equal(t, "a!", r.Value)

	fr := run[string](p, "b")
	assert.False(t, fr.OK)
	assert.False(t, fr.Consumed)
}

func TestAltFallsThroughOnEmptyFailure(t *testing.T) {
	r := run[rune](Alt(lchar('a'), lchar('b')), "b")
	assert.True(t, r.OK)
	assert.Equal(t, 'b', r.Value)
}

func TestAltCommitsOnConsumedFailureWithoutTryingSecondBranch(t *testing.T) {
	// p consumes 'a' then fails on the second char; Alt must not try q at
	// all, even though q would otherwise match at the original position.
	called := false
	p := Then(char('a'), char('x'))
	q := func(s State[rune, struct{}]) Reply[rune, struct{}, rune] {
		called = true
		return ok[rune, struct{}, rune](false, 'z', s, perr.Unknown(s.Pos))
	}
	r := run[rune](Alt(p, Parser[rune, struct{}, rune](q)), "ay")
	assert.False(t, r.OK)
	assert.True(t, r.Consumed)
	assert.False(t, called)
}

func TestAltCommitsOnConsumedSuccessWithoutTryingSecondBranch(t *testing.T) {
	called := false
	p := Then(char('a'), char('b'))
	q := func(s State[rune, struct{}]) Reply[rune, struct{}, rune] {
		called = true
		return ok[rune, struct{}, rune](false, 'z', s, perr.Unknown(s.Pos))
	}
	r := run[rune](Alt(p, Parser[rune, struct{}, rune](q)), "ab")
	assert.True(t, r.OK)
	assert.Equal(t, 'b', r.Value)
	assert.False(t, called)
}

func TestAltMergesErrorsOnEmptyFailure(t *testing.T) {
	r := run[rune](Alt(lchar('a'), lchar('b')), "c")
	assert.False(t, r.OK)
	assert.False(t, r.Consumed)
	assert.ElementsMatch(t, []string{"a", "b"}, r.Err.Expected())
}

func TestTryRewindsStateOnConsumedFailure(t *testing.T) {
	p := Then(char('a'), char('x'))
	r := run[rune](Try(p), "ay")
	assert.False(t, r.OK)
	assert.False(t, r.Consumed)
	assert.Equal(t, "ay", remaining(r.State.Input))
}

func TestTryPassesSuccessThroughUnchanged(t *testing.T) {
	p := Then(char('a'), char('b'))
	r := run[rune](Try(p), "ab")
	assert.True(t, r.OK)
	assert.True(t, r.Consumed)
}

func TestTryPassesEmptyFailureThroughUnchanged(t *testing.T) {
	r := run[rune](Try(char('a')), "b")
	assert.False(t, r.OK)
	assert.False(t, r.Consumed)
}

func TestLookAheadRestoresStateOnSuccess(t *testing.T) {
	p := Then(char('a'), char('b'))
	r := run[rune](LookAhead(p), "ab")
	assert.True(t, r.OK)
	assert.False(t, r.Consumed)
	assert.Equal(t, 'b', r.Value)
	assert.Equal(t, "ab", remaining(r.State.Input))
}

func TestLookAheadPassesFailureThroughUnchanged(t *testing.T) {
	// A consumed failure inside LookAhead stays consumed: callers that want
	// a side-effect-free peek on both outcomes must wrap p in Try first.
	p := Then(char('a'), char('x'))
	r := run[rune](LookAhead(p), "ay")
	assert.False(t, r.OK)
	assert.True(t, r.Consumed)
}

func TestLabelReplacesExpectedOnEmptyOutcome(t *testing.T) {
	r := run[rune](Label(char('a'), "letter a"), "b")
	assert.False(t, r.OK)
	assert.Equal(t, []string{"letter a"}, r.Err.Expected())
}

func TestLabelLeavesConsumedOutcomeUntouched(t *testing.T) {
	p := Then(char('a'), char('x'))
	r := run[rune](Label(p, "irrelevant"), "ay")
	assert.False(t, r.OK)
	assert.True(t, r.Consumed)
	assert.NotContains(t, r.Err.Expected(), "irrelevant")
}

func TestHiddenClearsExpectedEntirely(t *testing.T) {
	r := run[rune](Hidden(char('a')), "b")
	assert.False(t, r.OK)
	assert.Empty(t, r.Err.Expected())
}

func TestLazyMemoizesBuildExactlyOnce(t *testing.T) {
	calls := 0
	p := Lazy(func() Parser[rune, struct{}, rune] {
		calls++
		return char('a')
	})

	r1 := run[rune](p, "a")
	r2 := run[rune](p, "a")
	assert.True(t, r1.OK)
	assert.True(t, r2.OK)
	assert.Equal(t, 1, calls)
}
