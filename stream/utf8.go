package stream

import "unicode/utf8"

// UTF8 is a lazily-decoding stream over a UTF-8 byte string. It never
// copies: slicing a Go string is O(1) since the new header shares the
// backing array, so Uncons is O(1) amortized per spec.md §4.3.
//
// Invalid encodings decode as utf8.RuneError, one byte at a time, matching
// the standard library's own recovery behavior rather than failing closed.
type UTF8 struct {
	s string
}

// NewUTF8 wraps raw UTF-8 bytes (as a string) as a rune stream.
func NewUTF8(s string) Stream[rune] {
	return &UTF8{s: s}
}

// NewUTF8Bytes wraps a byte slice as a rune stream. The bytes are copied
// once into a string up front; Uncons itself never copies.
func NewUTF8Bytes(b []byte) Stream[rune] {
	return &UTF8{s: string(b)}
}

func (u *UTF8) Uncons() (rune, Stream[rune], bool) {
	if len(u.s) == 0 {
		return 0, nil, false
	}
	r, size := utf8.DecodeRuneInString(u.s)
	return r, &UTF8{s: u.s[size:]}, true
}
