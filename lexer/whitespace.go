package lexer

import (
	"unicode"

	"github.com/parsec-go/parsec/char"
	"github.com/parsec-go/parsec/combinator"
	"github.com/parsec-go/parsec/parsec"
	"github.com/parsec-go/parsec/perr"
)

// buildWhiteSpace implements spec.md §4.7.1: skip zero or more of plain
// whitespace, a line comment, or a block comment, in any order, as each
// form is enabled by def. Grounded on kapacitor/tick/lex.go's lexComment
// state-function shape, expressed here as ordinary combinators plus a
// hand-recursed comment-body scanner (see blockCommentBody below).
func buildWhiteSpace[U any](def LanguageDef[U]) parsec.Parser[rune, U, parsec.Unit] {
	simpleSpace := parsec.Map(char.Satisfy[U](unicode.IsSpace), func(rune) parsec.Unit { return parsec.Unit{} })

	// Each alternative is Hidden: a failed attempt at a space/comment/
	// comment-start is internal to whitespace-skipping and shouldn't leave
	// its low-level Expected text (e.g. "expecting '/'") in a caller's
	// error message once SkipMany gives up and control passes on to
	// whatever lexeme actually failed.
	alternatives := []parsec.Parser[rune, U, parsec.Unit]{parsec.Hidden(simpleSpace)}
	if def.CommentLine != "" {
		alternatives = append(alternatives, parsec.Hidden(lineComment[U](def.CommentLine)))
	}
	if def.CommentStart != "" {
		alternatives = append(alternatives, parsec.Hidden(blockComment(def)))
	}

	return combinator.SkipMany(combinator.Choice(alternatives...))
}

func lineComment[U any](prefix string) parsec.Parser[rune, U, parsec.Unit] {
	notNewline := char.Satisfy[U](func(r rune) bool { return r != '\n' })
	return parsec.Then(parsec.Try(char.String[U](prefix)), combinator.SkipMany(notNewline))
}

// blockComment matches def.CommentStart, delegating the body to
// blockCommentBody, a plain recursive function rather than a
// self-referencing Parser value: each recursive call happens while a
// parse is in progress (bounded by the remaining input), not while the
// Parser tree is being constructed, so it needs no Lazy indirection.
func blockComment[U any](def LanguageDef[U]) parsec.Parser[rune, U, parsec.Unit] {
	start := parsec.Try(char.String[U](def.CommentStart))
	return func(s parsec.State[rune, U]) parsec.Reply[rune, U, parsec.Unit] {
		r := start(s)
		if !r.OK {
			return parsec.Reply[rune, U, parsec.Unit]{Consumed: r.Consumed, OK: false, State: r.State, Err: r.Err}
		}
		body := blockCommentBody(def, r.State)
		return parsec.Reply[rune, U, parsec.Unit]{
			Consumed: true,
			OK:       body.OK,
			Value:    parsec.Unit{},
			State:    body.State,
			Err:      perr.Merge(r.Err, body.Err),
		}
	}
}

func blockCommentBody[U any](def LanguageDef[U], s parsec.State[rune, U]) parsec.Reply[rune, U, parsec.Unit] {
	end := parsec.Try(char.String[U](def.CommentEnd))(s)
	if end.OK {
		return parsec.Reply[rune, U, parsec.Unit]{Consumed: end.Consumed, OK: true, State: end.State, Err: end.Err}
	}
	if end.Consumed {
		return parsec.Reply[rune, U, parsec.Unit]{Consumed: true, OK: false, State: end.State, Err: end.Err}
	}

	if def.NestedComments {
		nested := blockComment(def)(s)
		if nested.OK {
			rest := blockCommentBody(def, nested.State)
			return parsec.Reply[rune, U, parsec.Unit]{
				Consumed: true,
				OK:       rest.OK,
				State:    rest.State,
				Err:      perr.Merge(nested.Err, rest.Err),
			}
		}
		if nested.Consumed {
			return parsec.Reply[rune, U, parsec.Unit]{Consumed: true, OK: false, State: nested.State, Err: nested.Err}
		}
	}

	any := char.AnyChar[U]()(s)
	if !any.OK {
		return parsec.Reply[rune, U, parsec.Unit]{
			Consumed: any.Consumed,
			OK:       false,
			State:    any.State,
			Err:      perr.NewMessage(s.Pos, perr.Msg("end of comment")),
		}
	}
	rest := blockCommentBody(def, any.State)
	return parsec.Reply[rune, U, parsec.Unit]{Consumed: true, OK: rest.OK, State: rest.State, Err: rest.Err}
}
