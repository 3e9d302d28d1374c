package lexer

import (
	"github.com/parsec-go/parsec/char"
	"github.com/parsec-go/parsec/combinator"
	"github.com/parsec-go/parsec/parsec"
)

// Lexeme implements spec.md §4.7.6: lexeme(p) = p <* white_space.
func Lexeme[U any, T any](lx *Lexer[U], p parsec.Parser[rune, U, T]) parsec.Parser[rune, U, T] {
	return parsec.ThenDiscard(p, lx.WhiteSpace)
}

// Symbol implements symbol(s) = lexeme(string(s)).
func (lx *Lexer[U]) Symbol(s string) parsec.Parser[rune, U, string] {
	return Lexeme[U, string](lx, char.String[U](s))
}

func bracket[U any, T any](lx *Lexer[U], open, close string, p parsec.Parser[rune, U, T]) parsec.Parser[rune, U, T] {
	return combinator.Between(lx.Symbol(open), lx.Symbol(close), p)
}

// Parens, Braces, Angles and Brackets are spec.md §4.7.6's
// between(symbol(open), symbol(close), p) family.
func Parens[U any, T any](lx *Lexer[U], p parsec.Parser[rune, U, T]) parsec.Parser[rune, U, T] {
	return bracket(lx, "(", ")", p)
}

func Braces[U any, T any](lx *Lexer[U], p parsec.Parser[rune, U, T]) parsec.Parser[rune, U, T] {
	return bracket(lx, "{", "}", p)
}

func Angles[U any, T any](lx *Lexer[U], p parsec.Parser[rune, U, T]) parsec.Parser[rune, U, T] {
	return bracket(lx, "<", ">", p)
}

func Brackets[U any, T any](lx *Lexer[U], p parsec.Parser[rune, U, T]) parsec.Parser[rune, U, T] {
	return bracket(lx, "[", "]", p)
}

// CommaSep / CommaSep1 / SemicolonSep / SemicolonSep1 implement
// spec.md §4.7.6's sep_by/sep_by1 built from the lexer's own Comma and
// Semicolon tokens.
func CommaSep[U any, T any](lx *Lexer[U], p parsec.Parser[rune, U, T]) parsec.Parser[rune, U, []T] {
	return combinator.SepBy[rune, U](p, lx.Comma)
}

func CommaSep1[U any, T any](lx *Lexer[U], p parsec.Parser[rune, U, T]) parsec.Parser[rune, U, []T] {
	return combinator.SepBy1[rune, U](p, lx.Comma)
}

func SemicolonSep[U any, T any](lx *Lexer[U], p parsec.Parser[rune, U, T]) parsec.Parser[rune, U, []T] {
	return combinator.SepBy[rune, U](p, lx.Semicolon)
}

func SemicolonSep1[U any, T any](lx *Lexer[U], p parsec.Parser[rune, U, T]) parsec.Parser[rune, U, []T] {
	return combinator.SepBy1[rune, U](p, lx.Semicolon)
}
