package lexer

import (
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"

	"github.com/parsec-go/parsec/parsec"
)

// Lexer is the record of lexeme parsers produced by New from a
// LanguageDef (spec.md §4.7). Fields are plain parser values rather than
// methods so call sites stay monomorphic (spec.md §9's "operator
// records" note); the few operations that need their own type parameter
// (Parens, CommaSep, Lexeme, ...) are package-level functions taking a
// *Lexer as their first argument instead, since Go methods cannot carry
// additional type parameters beyond the receiver's.
type Lexer[U any] struct {
	WhiteSpace parsec.Parser[rune, U, parsec.Unit]

	Identifier parsec.Parser[rune, U, string]
	Operator   parsec.Parser[rune, U, string]

	CharLiteral   parsec.Parser[rune, U, rune]
	StringLiteral parsec.Parser[rune, U, string]

	Decimal     parsec.Parser[rune, U, uint64]
	Hexadecimal parsec.Parser[rune, U, uint64]
	Octal       parsec.Parser[rune, U, uint64]

	Integer       parsec.Parser[rune, U, int64]
	SignedInteger parsec.Parser[rune, U, int64]
	Float         parsec.Parser[rune, U, float64]
	SignedFloat   parsec.Parser[rune, U, float64]
	Number        parsec.Parser[rune, U, Number]
	SignedNumber  parsec.Parser[rune, U, Number]

	Semicolon parsec.Parser[rune, U, string]
	Comma     parsec.Parser[rune, U, string]
	Colon     parsec.Parser[rune, U, string]
	Dot       parsec.Parser[rune, U, string]

	def             LanguageDef[U]
	reservedNames   *set.Set[string]
	reservedOpNames *set.Set[string]
}

// New compiles def into a Lexer, validating it first (SPEC_FULL A.4).
// logger receives Debug records about the compiled grammar (e.g. a
// reserved-name list combined with case-insensitivity); pass nil to get
// a no-op logger (SPEC_FULL A.1).
func New[U any](def LanguageDef[U], logger hclog.Logger) (*Lexer[U], error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if err := def.Validate(); err != nil {
		return nil, errors.Wrap(err, "lexer: invalid LanguageDef")
	}

	logger.Debug("compiling lexer", "reserved_names", len(def.ReservedNames), "reserved_ops", len(def.ReservedOpNames), "case_sensitive", def.CaseSensitive)
	if def.NestedComments {
		logger.Debug("nested block comments enabled")
	}
	if len(def.ReservedNames) > 0 && !def.CaseSensitive {
		logger.Debug("case-insensitive reserved-name matching enabled", "count", len(def.ReservedNames))
	}

	lx := &Lexer[U]{
		def:             def,
		reservedNames:   reservedSet(def.CaseSensitive, def.ReservedNames),
		reservedOpNames: reservedSet(true, def.ReservedOpNames),
	}

	lx.WhiteSpace = buildWhiteSpace(def)
	lx.Identifier = buildIdentifier(lx)
	lx.Operator = buildOperator(lx)
	lx.CharLiteral = buildCharLiteral(lx)
	lx.StringLiteral = buildStringLiteral(lx)
	buildNumberFields(lx)

	lx.Semicolon = lx.Symbol(";")
	lx.Comma = lx.Symbol(",")
	lx.Colon = lx.Symbol(":")
	lx.Dot = lx.Symbol(".")

	logger.Debug("lexer compiled")
	return lx, nil
}
