// Package lexer implements the lexical tokenizer generator from
// spec.md §4.7: a declarative LanguageDef compiles to a Lexer, a record
// of lexeme parsers for identifiers, reserved words/operators, numeric
// and character/string literals, and bracket/separator helpers.
package lexer

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/parsec-go/parsec/char"
)

// LanguageDef describes a language's lexical grammar, mirroring Parsec's
// own Text.Parsec.Language / GenLanguageDef record (SPEC_FULL C.4). All
// fields are required inputs to New; the two presets below (EmptyDef,
// StyleDef) exist so callers don't have to populate every field by hand.
type LanguageDef[U any] struct {
	CommentStart   string // "" disables block comments
	CommentEnd     string
	CommentLine    string // "" disables line comments
	NestedComments bool

	IdentStart  char.Parser[U, rune] // first char of an identifier
	IdentLetter char.Parser[U, rune] // subsequent chars
	OpStart     char.Parser[U, rune] // first char of an operator
	OpLetter    char.Parser[U, rune] // subsequent chars

	ReservedNames   []string
	ReservedOpNames []string
	CaseSensitive   bool
}

// Validate reports every problem with def at once (SPEC_FULL A.2/A.4),
// rather than stopping at the first, via hashicorp/go-multierror -- the
// same aggregation idiom hashicorp/nomad uses for config validation.
func (def LanguageDef[U]) Validate() error {
	var result *multierror.Error

	if def.IdentStart == nil {
		result = multierror.Append(result, errors.New("lexer: LanguageDef.IdentStart is nil"))
	}
	if def.IdentLetter == nil {
		result = multierror.Append(result, errors.New("lexer: LanguageDef.IdentLetter is nil"))
	}
	if def.OpStart == nil {
		result = multierror.Append(result, errors.New("lexer: LanguageDef.OpStart is nil"))
	}
	if def.OpLetter == nil {
		result = multierror.Append(result, errors.New("lexer: LanguageDef.OpLetter is nil"))
	}
	if def.CommentStart == "" && def.CommentEnd != "" {
		result = multierror.Append(result, errors.New("lexer: LanguageDef.CommentEnd set without CommentStart"))
	}
	if def.CommentStart != "" && def.CommentEnd == "" {
		result = multierror.Append(result, errors.New("lexer: LanguageDef.CommentStart set without CommentEnd"))
	}
	if def.NestedComments && def.CommentStart == "" {
		result = multierror.Append(result, errors.New("lexer: LanguageDef.NestedComments set but block comments are disabled"))
	}
	for _, name := range def.ReservedNames {
		if name == "" {
			result = multierror.Append(result, errors.New("lexer: LanguageDef.ReservedNames contains an empty name"))
			break
		}
	}
	for _, op := range def.ReservedOpNames {
		if op == "" {
			result = multierror.Append(result, errors.New("lexer: LanguageDef.ReservedOpNames contains an empty operator"))
			break
		}
	}

	return result.ErrorOrNil()
}

// EmptyDef is Parsec's emptyDef: no comments, no reserved names or
// operators, identifiers and operators built from letters/symbol chars.
func EmptyDef[U any]() LanguageDef[U] {
	return LanguageDef[U]{
		IdentStart:    char.LetterChar[U](),
		IdentLetter:   char.AlphaNumChar[U](),
		OpStart:       char.OneOf[U](opChars),
		OpLetter:      char.OneOf[U](opChars),
		CaseSensitive: true,
	}
}

const opChars = ":!#$%&*+./<=>?@\\^|-~"

// StyleDef returns a copy of base with the given reserved names and
// operators installed; a small builder so callers don't have to restate
// every LanguageDef field just to add a keyword list (SPEC_FULL C.4).
func StyleDef[U any](base LanguageDef[U], reservedNames, reservedOpNames []string) LanguageDef[U] {
	out := base
	out.ReservedNames = append([]string(nil), reservedNames...)
	out.ReservedOpNames = append([]string(nil), reservedOpNames...)
	return out
}
