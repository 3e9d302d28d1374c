package lexer

import (
	"strconv"

	"github.com/parsec-go/parsec/char"
	"github.com/parsec-go/parsec/combinator"
	"github.com/parsec-go/parsec/parsec"
)

// Number is the result of number/number' (spec.md §4.7.5): Parsec's own
// naturalOrFloat is a sum type (Either Integer Double); Go has no sum
// type cheap enough to justify here, so Number is a small tagged struct.
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}

func mustParseUint(ds []rune, base int) uint64 {
	v, _ := strconv.ParseUint(string(ds), base, 64)
	return v
}

func rawDecimal[U any]() char.Parser[U, uint64] {
	return parsec.Map(combinator.Some(char.DigitChar[U]()), func(ds []rune) uint64 { return mustParseUint(ds, 10) })
}

func rawHexadecimal[U any]() char.Parser[U, uint64] {
	prefix := parsec.Then(char.Char[U]('0'), char.OneOf[U]("xX"))
	return parsec.Then(prefix, parsec.Map(combinator.Some(char.HexDigitChar[U]()), func(ds []rune) uint64 { return mustParseUint(ds, 16) }))
}

func rawOctal[U any]() char.Parser[U, uint64] {
	prefix := parsec.Then(char.Char[U]('0'), char.OneOf[U]("oO"))
	return parsec.Then(prefix, parsec.Map(combinator.Some(char.OctDigitChar[U]()), func(ds []rune) uint64 { return mustParseUint(ds, 8) }))
}

func optionalSign[U any]() char.Parser[U, int64] {
	neg := parsec.Map(char.Char[U]('-'), func(rune) int64 { return -1 })
	pos := parsec.Map(char.Char[U]('+'), func(rune) int64 { return 1 })
	return combinator.Option[rune, U, int64](1, parsec.Alt(neg, pos))
}

func exponentPart[U any]() char.Parser[U, string] {
	return parsec.Bind(char.OneOf[U]("eE"), func(rune) parsec.Parser[rune, U, string] {
		sign := combinator.Option[rune, U, rune]('+', char.OneOf[U]("+-"))
		return parsec.Bind(sign, func(sgn rune) parsec.Parser[rune, U, string] {
			return parsec.Map(combinator.Some(char.DigitChar[U]()), func(ds []rune) string {
				return "e" + string(sgn) + string(ds)
			})
		})
	})
}

func mustParseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// rawFloat implements spec.md §4.7.5's float grammar: digits '.' digits
// [exponent], or digits exponent (exponent mandatory in the second form).
// The first form is tried under Try so "12" backtracks cleanly into the
// second form; Float itself always commits to this whole grammar (a bare
// "12" is a Float error), while Number decides first via floatAhead.
func rawFloat[U any]() char.Parser[U, float64] {
	digits := combinator.Some(char.DigitChar[U]())
	exp := exponentPart[U]()

	withFraction := parsec.Bind(digits, func(whole []rune) parsec.Parser[rune, U, float64] {
		return parsec.Bind(char.Char[U]('.'), func(rune) parsec.Parser[rune, U, float64] {
			return parsec.Bind(combinator.Some(char.DigitChar[U]()), func(frac []rune) parsec.Parser[rune, U, float64] {
				optExp := combinator.Option[rune, U, string]("", exp)
				return parsec.Map(optExp, func(e string) float64 {
					return mustParseFloat(string(whole) + "." + string(frac) + e)
				})
			})
		})
	})

	withExponent := parsec.Bind(digits, func(whole []rune) parsec.Parser[rune, U, float64] {
		return parsec.Map(exp, func(e string) float64 { return mustParseFloat(string(whole) + e) })
	})

	return parsec.Alt(parsec.Try(withFraction), withExponent)
}

// floatTail matches whatever would make a run of digits float-shaped: a
// '.' followed by at least one digit, or an exponent. It only needs to
// confirm the shape exists, not fully consume it — floatAhead below peeks
// with this and lets the real rawFloat scanner do the actual parse.
func floatTail[U any]() parsec.Parser[rune, U, parsec.Unit] {
	fraction := parsec.Map(parsec.Then(char.Char[U]('.'), char.DigitChar[U]()), func(rune) parsec.Unit { return parsec.Unit{} })
	exponent := parsec.Map(exponentPart[U](), func(string) parsec.Unit { return parsec.Unit{} })
	return combinator.Choice(fraction, exponent)
}

// floatAhead peeks, without consuming any input, whether the digits at
// the current position continue into a float shape. Number/SignedNumber
// use this to commit to the float branch predictively instead of running
// rawFloat speculatively and backtracking out of a partial match with
// Try — the same shape of decision LookAhead exists for (spec.md §4.4's
// "inspect without consuming").
func floatAhead[U any]() parsec.Parser[rune, U, parsec.Unit] {
	return parsec.LookAhead(parsec.Try(parsec.Then(combinator.Some(char.DigitChar[U]()), floatTail[U]())))
}

// buildNumberFields wires Decimal/Hexadecimal/Octal/Integer[']/Float[']/
// Number['] from the raw, unlexed scanners above: every field is exactly
// one Lexeme application around a (possibly signed) raw scanner so the
// trailing whitespace skip happens once, at the outermost level, matching
// Parsec's own natural/integer/float/naturalOrFloat/integerOrFloat.
func buildNumberFields[U any](lx *Lexer[U]) {
	lx.Decimal = Lexeme[U, uint64](lx, rawDecimal[U]())
	lx.Hexadecimal = Lexeme[U, uint64](lx, rawHexadecimal[U]())
	lx.Octal = Lexeme[U, uint64](lx, rawOctal[U]())

	lx.Integer = Lexeme[U, int64](lx, parsec.Map(rawDecimal[U](), func(n uint64) int64 { return int64(n) }))

	signedInt := parsec.Bind(optionalSign[U](), func(sgn int64) parsec.Parser[rune, U, int64] {
		return parsec.Map(rawDecimal[U](), func(n uint64) int64 { return sgn * int64(n) })
	})
	lx.SignedInteger = Lexeme[U, int64](lx, signedInt)

	lx.Float = Lexeme[U, float64](lx, rawFloat[U]())

	signedFloat := parsec.Bind(optionalSign[U](), func(sgn int64) parsec.Parser[rune, U, float64] {
		return parsec.Map(rawFloat[U](), func(f float64) float64 { return float64(sgn) * f })
	})
	lx.SignedFloat = Lexeme[U, float64](lx, signedFloat)

	rawNumber := parsec.Alt(
		parsec.Bind(floatAhead[U](), func(parsec.Unit) parsec.Parser[rune, U, Number] {
			return parsec.Map(rawFloat[U](), func(f float64) Number { return Number{IsFloat: true, Float: f} })
		}),
		parsec.Map(rawDecimal[U](), func(n uint64) Number { return Number{Int: int64(n)} }),
	)
	lx.Number = Lexeme[U, Number](lx, rawNumber)

	signedNumber := parsec.Bind(optionalSign[U](), func(sgn int64) parsec.Parser[rune, U, Number] {
		return parsec.Map(rawNumber, func(n Number) Number {
			if n.IsFloat {
				return Number{IsFloat: true, Float: float64(sgn) * n.Float}
			}
			return Number{Int: sgn * n.Int}
		})
	})
	lx.SignedNumber = Lexeme[U, Number](lx, signedNumber)
}
