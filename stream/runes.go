package stream

// Runes is an owned, already-decoded []rune sequence. Tail() sharing
// (here, advancing an index over one shared backing array) is what the
// teacher's stringPS does for bytes; Runes does the same for runes so
// O(1) amortized Uncons never copies the backing array.
type Runes struct {
	data []rune
	idx  int
}

// NewRunes decodes s once and returns a Stream over its runes.
func NewRunes(s string) Stream[rune] {
	return &Runes{data: []rune(s)}
}

// NewRuneSlice wraps an already-decoded slice directly, without copying.
func NewRuneSlice(data []rune) Stream[rune] {
	return &Runes{data: data}
}

func (r *Runes) Uncons() (rune, Stream[rune], bool) {
	if r.idx >= len(r.data) {
		return 0, nil, false
	}
	return r.data[r.idx], &Runes{data: r.data, idx: r.idx + 1}, true
}

// Remaining returns the not-yet-consumed runes as a string, mainly for
// tests and diagnostics.
func (r *Runes) Remaining() string {
	return string(r.data[r.idx:])
}
