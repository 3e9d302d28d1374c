// Package perr implements the parse-error representation and merging
// algebra described in spec.md §3/§4.2: a position plus a deduplicated set
// of Expected/Message entries and a single last-write-wins Unexpected slot,
// merged by "further position wins, equal position unions".
package perr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v3"

	"github.com/parsec-go/parsec/pos"
)

// ParseError is immutable after construction; every mutating operation
// (AddMessage, SetPosition, Merge) returns a new value.
type ParseError struct {
	position      pos.Position
	unexpected    string
	hasUnexpected bool
	expected      *set.Set[string]
	messages      *set.Set[string]
}

// Unknown returns an empty ParseError at p, used when a primitive fails
// without any more specific complaint to offer.
func Unknown(p pos.Position) ParseError {
	return ParseError{position: p, expected: set.New[string](0), messages: set.New[string](0)}
}

// NewMessage returns a ParseError at p carrying exactly msg.
func NewMessage(p pos.Position, msg Message) ParseError {
	return AddMessage(Unknown(p), msg)
}

// Position returns the error's position.
func (e ParseError) Position() pos.Position { return e.position }

// Expected returns the sorted, de-duplicated list of "expected" texts.
func (e ParseError) Expected() []string { return sortedSlice(e.expected) }

// Messages returns the sorted, de-duplicated list of free-form messages.
func (e ParseError) Messages() []string { return sortedSlice(e.messages) }

// Unexpected returns the current "unexpected" text and whether one is set.
func (e ParseError) Unexpected() (string, bool) { return e.unexpected, e.hasUnexpected }

// IsUnknown reports whether e carries no messages at all.
func (e ParseError) IsUnknown() bool {
	return !e.hasUnexpected && (e.expected == nil || e.expected.Empty()) &&
		(e.messages == nil || e.messages.Empty())
}

// AddMessage installs msg into e per the merge discipline in spec.md §3:
// Unexpected replaces (last write wins), Expected and Message accumulate.
func AddMessage(e ParseError, msg Message) ParseError {
	out := e.clone()
	switch msg.Kind {
	case KindUnexpected:
		out.unexpected = msg.Text
		out.hasUnexpected = true
	case KindExpected:
		out.expected.Insert(msg.Text)
	case KindMessage:
		out.messages.Insert(msg.Text)
	}
	return out
}

// SetPosition returns a copy of e positioned at p, messages unchanged.
func SetPosition(e ParseError, p pos.Position) ParseError {
	out := e.clone()
	out.position = p
	return out
}

func (e ParseError) clone() ParseError {
	out := e
	if e.expected != nil {
		out.expected = e.expected.Copy()
	} else {
		out.expected = set.New[string](0)
	}
	if e.messages != nil {
		out.messages = e.messages.Copy()
	} else {
		out.messages = set.New[string](0)
	}
	return out
}

// ClearExpected returns a copy of e with its Expected set emptied; used by
// Label/Hidden to replace or drop low-level expectations on empty outcomes.
func ClearExpected(e ParseError) ParseError {
	out := e.clone()
	out.expected = set.New[string](0)
	return out
}

// Merge combines e1 and e2 per spec.md §4.2: the error at the greater
// (further-into-input) position wins outright; at equal positions the
// Expected/Message sets are unioned and the Unexpected slot is taken from
// e2 if present, else e1.
func Merge(e1, e2 ParseError) ParseError {
	switch pos.Compare(e1.position, e2.position) {
	case 1:
		return e1
	case -1:
		return e2
	}

	out := ParseError{position: e1.position}
	out.expected = unionOf(e1.expected, e2.expected)
	out.messages = unionOf(e1.messages, e2.messages)
	if e2.hasUnexpected {
		out.unexpected, out.hasUnexpected = e2.unexpected, true
	} else if e1.hasUnexpected {
		out.unexpected, out.hasUnexpected = e1.unexpected, true
	}
	return out
}

func unionOf(a, b *set.Set[string]) *set.Set[string] {
	if a == nil {
		a = set.New[string](0)
	}
	if b == nil {
		return a.Copy()
	}
	return a.Union(b)
}

func sortedSlice(s *set.Set[string]) []string {
	if s == nil || s.Empty() {
		return nil
	}
	out := s.Slice()
	sort.Strings(out)
	return out
}

// Render formats e as Parsec does: "pos:\nunexpected X\nexpecting A, B or
// C\nmsg1\nmsg2", omitting any section that is empty and falling back to
// "pos: unknown parse error" when everything is empty.
func Render(e ParseError) string {
	var lines []string
	if e.hasUnexpected {
		lines = append(lines, "unexpected "+e.unexpected)
	}
	if exp := e.Expected(); len(exp) > 0 {
		lines = append(lines, "expecting "+joinOxford(exp))
	}
	lines = append(lines, e.Messages()...)

	if len(lines) == 0 {
		return fmt.Sprintf("%s: unknown parse error", e.position)
	}
	return fmt.Sprintf("%s:\n%s", e.position, strings.Join(lines, "\n"))
}

// joinOxford joins items with ", " except the last two, which are joined
// with " or ".
func joinOxford(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}

// Error implements the standard error interface so a ParseError can escape
// Run into idiomatic Go error-handling code (errors.Is/As, %w wrapping).
func (e ParseError) Error() string { return Render(e) }
