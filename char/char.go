// Package char provides the character-level primitives from spec.md §4.5:
// satisfy, literal characters and strings, character classes, and the
// set-membership combinators, all built on parsec.TokenPrim/Tokens over a
// rune token stream (spec.md §4.3: "in practice the token is a character").
package char

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/parsec-go/parsec/parsec"
	"github.com/parsec-go/parsec/pos"
)

// Parser is the rune-token specialization of parsec.Parser used throughout
// this package and the lexer built on top of it.
type Parser[U any, T any] = parsec.Parser[rune, U, T]

func showRune(r rune) string {
	if r == '\n' {
		return "newline"
	}
	return fmt.Sprintf("%q", r)
}

// Satisfy succeeds with any rune for which pred holds.
func Satisfy[U any](pred func(rune) bool) Parser[U, rune] {
	return parsec.TokenPrim[rune, U, rune](showRune, advance, func(r rune) (rune, bool) {
		if pred(r) {
			return r, true
		}
		return 0, false
	})
}

func advance(p pos.Position, r rune) pos.Position {
	return pos.Advance(p, r, pos.TabWidth)
}

// Char matches exactly one rune c, labelled with its rendered form.
func Char[U any](c rune) Parser[U, rune] {
	return parsec.Label(Satisfy[U](func(r rune) bool { return r == c }), showRune(c))
}

// OneOf succeeds with any rune contained in cs.
func OneOf[U any](cs string) Parser[U, rune] {
	return Satisfy[U](func(r rune) bool { return strings.ContainsRune(cs, r) })
}

// NoneOf succeeds with any rune not contained in cs.
func NoneOf[U any](cs string) Parser[U, rune] {
	return Satisfy[U](func(r rune) bool { return !strings.ContainsRune(cs, r) })
}

// AnyChar succeeds with any single rune.
func AnyChar[U any]() Parser[U, rune] {
	return Satisfy[U](func(rune) bool { return true })
}

// Eof succeeds only at the end of the rune stream; a thin specialization
// of parsec.Eof so callers over a rune stream don't have to supply their
// own showRune function at every call site.
func Eof[U any]() Parser[U, parsec.Unit] {
	return parsec.Eof[rune, U](showRune)
}

// String matches the exact rune sequence s, committing (Consumed-Error)
// once any prefix has matched (spec.md §4.5).
func String[U any](s string) Parser[U, string] {
	target := []rune(s)
	inner := parsec.Tokens[rune, U](
		func(rs []rune) string { return fmt.Sprintf("%q", string(rs)) },
		func(p pos.Position, rs []rune) pos.Position { return pos.Update(p, rs, pos.TabWidth) },
		func(a, b rune) bool { return a == b },
		target,
	)
	return parsec.Map(inner, func(rs []rune) string { return string(rs) })
}

// Eol matches "\n" or "\r\n", returning the matched text.
func Eol[U any]() Parser[U, string] {
	return parsec.Alt(String[U]("\r\n"), String[U]("\n"))
}

// DigitChar matches a Unicode decimal digit.
func DigitChar[U any]() Parser[U, rune] {
	return parsec.Label(Satisfy[U](unicode.IsDigit), "digit")
}

// HexDigitChar matches a hexadecimal digit (0-9, a-f, A-F).
func HexDigitChar[U any]() Parser[U, rune] {
	return parsec.Label(Satisfy[U](func(r rune) bool {
		return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	}), "hexadecimal digit")
}

// OctDigitChar matches an octal digit (0-7).
func OctDigitChar[U any]() Parser[U, rune] {
	return parsec.Label(Satisfy[U](func(r rune) bool { return r >= '0' && r <= '7' }), "octal digit")
}

// LetterChar matches a Unicode letter.
func LetterChar[U any]() Parser[U, rune] {
	return parsec.Label(Satisfy[U](unicode.IsLetter), "letter")
}

// AlphaNumChar matches a Unicode letter or digit.
func AlphaNumChar[U any]() Parser[U, rune] {
	return parsec.Label(Satisfy[U](func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}), "alphanumeric character")
}

// SpaceChar matches a Unicode whitespace character.
func SpaceChar[U any]() Parser[U, rune] {
	return parsec.Label(Satisfy[U](unicode.IsSpace), "whitespace")
}

// UpperChar matches a Unicode uppercase letter.
func UpperChar[U any]() Parser[U, rune] {
	return parsec.Label(Satisfy[U](unicode.IsUpper), "uppercase letter")
}

// LowerChar matches a Unicode lowercase letter.
func LowerChar[U any]() Parser[U, rune] {
	return parsec.Label(Satisfy[U](unicode.IsLower), "lowercase letter")
}
