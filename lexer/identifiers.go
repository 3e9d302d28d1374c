package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hashicorp/go-set/v3"

	"github.com/parsec-go/parsec/char"
	"github.com/parsec-go/parsec/combinator"
	"github.com/parsec-go/parsec/parsec"
	"github.com/parsec-go/parsec/perr"
)

func showLetter(r rune) string { return fmt.Sprintf("%q", r) }

func foldName(caseSensitive bool, name string) string {
	if caseSensitive {
		return name
	}
	return strings.ToUpper(name)
}

func reservedSet(caseSensitive bool, names []string) *set.Set[string] {
	s := set.New[string](len(names))
	for _, n := range names {
		s.Insert(foldName(caseSensitive, n))
	}
	return s
}

func showWord(s string) string { return "\"" + s + "\"" }

func rejectReserved[U any](reserved *set.Set[string], fold func(string) string, label string) func(string) parsec.Parser[rune, U, string] {
	return func(n string) parsec.Parser[rune, U, string] {
		if reserved.Contains(fold(n)) {
			return func(s parsec.State[rune, U]) parsec.Reply[rune, U, string] {
				return parsec.Reply[rune, U, string]{
					OK:    false,
					State: s,
					Err:   perr.NewMessage(s.Pos, perr.Unexpected(label+" "+showWord(n))),
				}
			}
		}
		return parsec.Return[rune, U, string](n)
	}
}

// buildIdentifier implements spec.md §4.7.2: lexeme(try(ident_start ·
// many(ident_letter))); a name found in the reserved-name set fails with
// unexpected("reserved word NAME"). The whole scan-then-check is wrapped
// in a single Try so a reserved-word rejection backtracks cleanly to the
// start of the identifier, exactly like Parsec's own `identifier`.
func buildIdentifier[U any](lx *Lexer[U]) parsec.Parser[rune, U, string] {
	rawName := parsec.Bind(lx.def.IdentStart, func(first rune) parsec.Parser[rune, U, string] {
		return parsec.Map(combinator.Many(lx.def.IdentLetter), func(rest []rune) string {
			return string(append([]rune{first}, rest...))
		})
	})

	fold := func(n string) string { return foldName(lx.def.CaseSensitive, n) }
	checked := parsec.Bind(rawName, rejectReserved[U](lx.reservedNames, fold, "reserved word"))
	return Lexeme[U, string](lx, parsec.Try(checked))
}

// Reserved implements spec.md §4.7.2: lexeme(try(case_string(name) <*
// not_followed_by(ident_letter))).
func (lx *Lexer[U]) Reserved(name string) parsec.Parser[rune, U, parsec.Unit] {
	matched := parsec.Try(parsec.ThenDiscard(
		caseString[U](lx.def.CaseSensitive, name),
		parsec.NotFollowedBy(lx.def.IdentLetter, showLetter),
	))
	return Lexeme[U, parsec.Unit](lx, parsec.Map(matched, func(string) parsec.Unit { return parsec.Unit{} }))
}

// buildOperator implements spec.md §4.7.3, symmetric to buildIdentifier
// using op_start/op_letter and reserved_op_names.
func buildOperator[U any](lx *Lexer[U]) parsec.Parser[rune, U, string] {
	rawOp := parsec.Bind(lx.def.OpStart, func(first rune) parsec.Parser[rune, U, string] {
		return parsec.Map(combinator.Many(lx.def.OpLetter), func(rest []rune) string {
			return string(append([]rune{first}, rest...))
		})
	})

	identity := func(n string) string { return n }
	checked := parsec.Bind(rawOp, rejectReserved[U](lx.reservedOpNames, identity, "reserved operator"))
	return Lexeme[U, string](lx, parsec.Try(checked))
}

// ReservedOp implements spec.md §4.7.3's reserved_op: not_followed_by(op_letter).
func (lx *Lexer[U]) ReservedOp(name string) parsec.Parser[rune, U, parsec.Unit] {
	matched := parsec.Try(parsec.ThenDiscard(
		char.String[U](name),
		parsec.NotFollowedBy(lx.def.OpLetter, showLetter),
	))
	return Lexeme[U, parsec.Unit](lx, parsec.Map(matched, func(string) parsec.Unit { return parsec.Unit{} }))
}

// caseString matches name case-sensitively or case-insensitively per the
// LanguageDef's CaseSensitive flag, returning the input's own spelling.
func caseString[U any](caseSensitive bool, name string) parsec.Parser[rune, U, string] {
	if caseSensitive {
		return char.String[U](name)
	}
	target := []rune(name)
	p := parsec.Return[rune, U, []rune](nil)
	for _, want := range target {
		w := want
		p = parsec.Bind(p, func(acc []rune) parsec.Parser[rune, U, []rune] {
			return parsec.Map(char.Satisfy[U](func(r rune) bool { return unicode.ToUpper(r) == unicode.ToUpper(w) }), func(r rune) []rune {
				return append(acc, r)
			})
		})
	}
	return parsec.Label(parsec.Map(p, func(rs []rune) string { return string(rs) }), showWord(name))
}
