package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/parsec-go/parsec/char"
	"github.com/parsec-go/parsec/combinator"
	"github.com/parsec-go/parsec/parsec"
)

// letterEscapes implements the single-letter half of spec.md §4.7.4's
// escape table.
var letterEscapes = map[rune]rune{
	'a': '\a', 'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t', 'v': '\v',
	'\\': '\\', '"': '"', '\'': '\'',
}

type asciiMnemonic struct {
	name string
	code rune
}

// asciiMnemonics lists the three-letter mnemonics before the two-letter
// ones so "SOH" is tried before its prefix "SO" — the same ordering
// Text.Parsec.Token's own asciiMap uses to resolve the ambiguity.
var asciiMnemonics = []asciiMnemonic{
	{"NUL", 0}, {"SOH", 1}, {"STX", 2}, {"ETX", 3}, {"EOT", 4}, {"ENQ", 5}, {"ACK", 6}, {"BEL", 7},
	{"DLE", 16}, {"DC1", 17}, {"DC2", 18}, {"DC3", 19}, {"DC4", 20}, {"NAK", 21}, {"SYN", 22}, {"ETB", 23},
	{"CAN", 24}, {"SUB", 26}, {"ESC", 27}, {"DEL", 127},
	{"BS", 8}, {"HT", 9}, {"LF", 10}, {"VT", 11}, {"FF", 12}, {"CR", 13}, {"SO", 14}, {"SI", 15},
	{"EM", 25}, {"FS", 28}, {"GS", 29}, {"RS", 30}, {"US", 31}, {"SP", 32},
}

func letterEscape[U any]() char.Parser[U, rune] {
	return parsec.Map(char.Satisfy[U](func(r rune) bool { _, ok := letterEscapes[r]; return ok }),
		func(r rune) rune { return letterEscapes[r] })
}

func caretEscape[U any]() char.Parser[U, rune] {
	return parsec.Then(char.Char[U]('^'),
		parsec.Map(char.Satisfy[U](func(r rune) bool { return r >= 'A' && r <= 'Z' }), func(r rune) rune { return r - 64 }))
}

func digitsToRune(ds []rune, base int) rune {
	v, _ := strconv.ParseInt(string(ds), base, 32)
	return rune(v)
}

func numericEscape[U any]() char.Parser[U, rune] {
	decimalVal := parsec.Map(combinator.Some(char.DigitChar[U]()), func(ds []rune) rune { return digitsToRune(ds, 10) })
	octalVal := parsec.Then(char.Char[U]('o'),
		parsec.Map(combinator.Some(char.OctDigitChar[U]()), func(ds []rune) rune { return digitsToRune(ds, 8) }))
	hexVal := parsec.Then(char.Char[U]('x'),
		parsec.Map(combinator.Some(char.HexDigitChar[U]()), func(ds []rune) rune { return digitsToRune(ds, 16) }))
	return combinator.Choice(decimalVal, octalVal, hexVal)
}

func asciiEscape[U any]() char.Parser[U, rune] {
	alts := make([]char.Parser[U, rune], 0, len(asciiMnemonics))
	for _, m := range asciiMnemonics {
		code := m.code
		alts = append(alts, parsec.Map(parsec.Try(char.String[U](m.name)), func(string) rune { return code }))
	}
	return combinator.Choice(alts...)
}

// escapeCode parses the body of a `\...` escape sequence, after the
// backslash has already been consumed (spec.md §4.7.4).
func escapeCode[U any]() char.Parser[U, rune] {
	return combinator.Choice(letterEscape[U](), caretEscape[U](), numericEscape[U](), asciiEscape[U]())
}

// literalChar matches a direct character (not quote, not '\', code point
// above 26) or a '\' escape, used by both char_literal and string_literal.
func literalChar[U any](quote rune) char.Parser[U, rune] {
	direct := char.Satisfy[U](func(r rune) bool { return r != quote && r != '\\' && r > 26 })
	escaped := parsec.Then(char.Char[U]('\\'), escapeCode[U]())
	return combinator.Choice(direct, escaped)
}

// buildCharLiteral implements spec.md §4.7.4's char_literal.
func buildCharLiteral[U any](lx *Lexer[U]) parsec.Parser[rune, U, rune] {
	body := combinator.Between(char.Char[U]('\''), char.Char[U]('\''), literalChar[U]('\''))
	return Lexeme[U, rune](lx, parsec.Label(body, "character"))
}

// stringPiece is one string_char's contribution to the literal's value;
// ok is false for the empty escape \& and for a string gap, both of
// which consume input but contribute no rune.
type stringPiece struct {
	r  rune
	ok bool
}

func stringGap[U any]() char.Parser[U, parsec.Unit] {
	ws := combinator.Some(char.Satisfy[U](unicode.IsSpace))
	return parsec.Map(parsec.ThenDiscard(ws, char.Char[U]('\\')), func([]rune) parsec.Unit { return parsec.Unit{} })
}

func stringCharPiece[U any]() char.Parser[U, stringPiece] {
	direct := parsec.Map(char.Satisfy[U](func(r rune) bool { return r != '"' && r != '\\' && r > 26 }),
		func(r rune) stringPiece { return stringPiece{r: r, ok: true} })

	emptyEscape := parsec.Map(char.Char[U]('&'), func(rune) stringPiece { return stringPiece{} })
	gap := parsec.Map(stringGap[U](), func(parsec.Unit) stringPiece { return stringPiece{} })
	code := parsec.Map(escapeCode[U](), func(r rune) stringPiece { return stringPiece{r: r, ok: true} })

	escaped := parsec.Then(char.Char[U]('\\'), combinator.Choice(emptyEscape, gap, code))

	return combinator.Choice(direct, escaped)
}

// buildStringLiteral implements spec.md §4.7.4's string_literal.
func buildStringLiteral[U any](lx *Lexer[U]) parsec.Parser[rune, U, string] {
	body := parsec.Map(combinator.Many(stringCharPiece[U]()), func(pieces []stringPiece) string {
		var b strings.Builder
		for _, p := range pieces {
			if p.ok {
				b.WriteRune(p.r)
			}
		}
		return b.String()
	})
	wrapped := combinator.Between(char.Char[U]('"'), char.Char[U]('"'), body)
	return Lexeme[U, string](lx, parsec.Label(wrapped, "string"))
}
