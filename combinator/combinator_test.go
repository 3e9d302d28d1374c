package combinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parsec-go/parsec/char"
	"github.com/parsec-go/parsec/combinator"
	"github.com/parsec-go/parsec/parsec"
	"github.com/parsec-go/parsec/stream"
)

func run[T any](p parsec.Parser[rune, struct{}, T], input string) (T, error) {
	return parsec.Run[rune, struct{}, T](p, "test", struct{}{}, stream.NewRunes(input))
}

func TestManyDigits(t *testing.T) {
	// S1: many(digit_char), "123abc" -> ['1','2','3'].
	v, err := run[[]rune](combinator.Many(char.DigitChar[struct{}]()), "123abc")
	assert.NoError(t, err)
	assert.Equal(t, []rune{'1', '2', '3'}, v)
}

func TestManyZeroMatches(t *testing.T) {
	v, err := run[[]rune](combinator.Many(char.DigitChar[struct{}]()), "abc")
	assert.NoError(t, err)
	assert.Empty(t, v)
}

func TestSomeRequiresOne(t *testing.T) {
	_, err := run[[]rune](combinator.Some(char.DigitChar[struct{}]()), "abc")
	assert.Error(t, err)

	v, err := run[[]rune](combinator.Some(char.DigitChar[struct{}]()), "9x")
	assert.NoError(t, err)
	assert.Equal(t, []rune{'9'}, v)
}

func TestManyPanicsOnNonConsumingInner(t *testing.T) {
	nonConsuming := combinator.Optional(char.Char[struct{}]('z'))
	assert.Panics(t, func() {
		_, _ = run[[]parsec.Unit](combinator.Many(nonConsuming), "abc")
	})
}

func TestChoice(t *testing.T) {
	p := combinator.Choice(char.Char[struct{}]('a'), char.Char[struct{}]('b'), char.Char[struct{}]('c'))
	v, err := run[rune](p, "b")
	assert.NoError(t, err)
	assert.Equal(t, 'b', v)
}

func TestOption(t *testing.T) {
	v, err := run[rune](combinator.Option[rune, struct{}]('z', char.Char[struct{}]('a')), "x")
	assert.NoError(t, err)
	assert.Equal(t, 'z', v)
}

func TestBetween(t *testing.T) {
	p := combinator.Between(char.Char[struct{}]('('), char.Char[struct{}](')'), char.DigitChar[struct{}]())
	v, err := run[rune](p, "(4)")
	assert.NoError(t, err)
	assert.Equal(t, '4', v)
}

func TestSepBy(t *testing.T) {
	p := combinator.SepBy[rune, struct{}](char.DigitChar[struct{}](), char.Char[struct{}](','))
	v, err := run[[]rune](p, "1,2,3")
	assert.NoError(t, err)
	assert.Equal(t, []rune{'1', '2', '3'}, v)

	v, err = run[[]rune](p, "")
	assert.NoError(t, err)
	assert.Empty(t, v)
}

func TestSepBy1RequiresOne(t *testing.T) {
	p := combinator.SepBy1[rune, struct{}](char.DigitChar[struct{}](), char.Char[struct{}](','))
	_, err := run[[]rune](p, "")
	assert.Error(t, err)
}

func TestSepByDoesNotConsumeTrailingSeparator(t *testing.T) {
	p := combinator.SepBy[rune, struct{}](char.DigitChar[struct{}](), char.Char[struct{}](','))
	v, err := run[[]rune](parsec.ThenDiscard(p, char.Char[struct{}](',')), "1,2,")
	assert.NoError(t, err)
	assert.Equal(t, []rune{'1', '2'}, v)
}

func TestEndBy(t *testing.T) {
	p := combinator.EndBy[rune, struct{}](char.DigitChar[struct{}](), char.Char[struct{}](';'))
	v, err := run[[]rune](p, "1;2;3;")
	assert.NoError(t, err)
	assert.Equal(t, []rune{'1', '2', '3'}, v)
}

func TestSepEndByAllowsOptionalTrailing(t *testing.T) {
	p := combinator.SepEndBy[rune, struct{}](char.DigitChar[struct{}](), char.Char[struct{}](','))
	v, err := run[[]rune](p, "1,2,3")
	assert.NoError(t, err)
	assert.Equal(t, []rune{'1', '2', '3'}, v)

	v, err = run[[]rune](p, "1,2,3,")
	assert.NoError(t, err)
	assert.Equal(t, []rune{'1', '2', '3'}, v)
}

func TestManyTillNonGreedy(t *testing.T) {
	p := combinator.ManyTill(char.AnyChar[struct{}](), char.Char[struct{}]('"'))
	v, err := run[[]rune](p, `abc"def`)
	assert.NoError(t, err)
	assert.Equal(t, []rune("abc"), v)
}

func TestManyTillFailsWhenNeitherMatches(t *testing.T) {
	p := combinator.ManyTill(char.DigitChar[struct{}](), char.Char[struct{}]('"'))
	_, err := run[[]rune](p, "abc")
	assert.Error(t, err)
}

func TestCount(t *testing.T) {
	v, err := run[[]rune](combinator.Count[rune, struct{}](3, char.DigitChar[struct{}]()), "123abc")
	assert.NoError(t, err)
	assert.Equal(t, []rune{'1', '2', '3'}, v)

	_, err = run[[]rune](combinator.Count[rune, struct{}](3, char.DigitChar[struct{}]()), "12a")
	assert.Error(t, err)
}

func TestSkipManySkipSome(t *testing.T) {
	v, err := run[parsec.Unit](combinator.SkipMany(char.Char[struct{}](' ')), "   x")
	assert.NoError(t, err)
	assert.Equal(t, parsec.Unit{}, v)

	_, err = run[parsec.Unit](combinator.SkipSome(char.Char[struct{}](' ')), "x")
	assert.Error(t, err)
}

func TestChainl1LeftAssociative(t *testing.T) {
	minus := parsec.Map(char.Char[struct{}]('-'), func(rune) func(int, int) int {
		return func(a, b int) int { return a - b }
	})
	digit := parsec.Map(char.DigitChar[struct{}](), func(r rune) int { return int(r - '0') })
	p := combinator.Chainl1(digit, minus)
	v, err := run[int](p, "9-3-2")
	assert.NoError(t, err)
	assert.Equal(t, 4, v) // (9-3)-2, not 9-(3-2)
}

func TestChainr1RightAssociative(t *testing.T) {
	caret := parsec.Map(char.Char[struct{}]('^'), func(rune) func(int, int) int {
		return func(a, b int) int { return a - b }
	})
	digit := parsec.Map(char.DigitChar[struct{}](), func(r rune) int { return int(r - '0') })
	p := combinator.Chainr1(digit, caret)
	v, err := run[int](p, "9^3^2")
	assert.NoError(t, err)
	assert.Equal(t, 8, v) // 9-(3-2), not (9-3)-2
}

func TestWithPosition(t *testing.T) {
	p := combinator.WithPosition[rune, struct{}](char.String[struct{}]("ab"))
	v, err := run[combinator.Positioned[string]](p, "ab")
	assert.NoError(t, err)
	assert.Equal(t, "ab", v.Value)
	assert.Equal(t, uint32(1), v.Pos.Column)
}
