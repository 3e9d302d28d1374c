package stream

import "sync"

// Rope is a chunked, lazily-produced rune sequence: a leaf []rune plus a
// thunk for the next leaf. It exists for sources too large or too slow to
// decode eagerly (SPEC_FULL C.5), and because its chunk boundaries are
// explicit, a consumed chunk becomes unreachable (and collectible) the
// moment the last Stream value referencing it is dropped — heavy
// backtracking via Try never pins more than the chunks between the
// try-point and the current position (spec.md §5).
type Rope struct {
	data []rune
	idx  int
	next func() *Rope
}

// ChunkProducer yields successive chunks of runes; ok is false once the
// source is exhausted.
type ChunkProducer func() (chunk []rune, ok bool)

// NewLazyRope builds a Stream that pulls chunks from produce on demand.
func NewLazyRope(produce ChunkProducer) Stream[rune] {
	var pull func() *Rope
	pull = func() *Rope {
		chunk, ok := produce()
		if !ok {
			return nil
		}
		return &Rope{data: chunk, next: sync.OnceValue(pull)}
	}
	return &Rope{next: sync.OnceValue(pull)}
}

// NewRope builds an eager rope over pre-split chunks; useful for tests and
// for callers who already have their input chunked (e.g. by file block).
func NewRope(chunks ...[]rune) Stream[rune] {
	var build func(i int) *Rope
	build = func(i int) *Rope {
		if i >= len(chunks) {
			return nil
		}
		return &Rope{data: chunks[i], next: func() *Rope { return build(i + 1) }}
	}
	return &Rope{next: func() *Rope { return build(0) }}
}

func (r *Rope) Uncons() (rune, Stream[rune], bool) {
	if r == nil {
		return 0, nil, false
	}
	if r.idx < len(r.data) {
		return r.data[r.idx], &Rope{data: r.data, idx: r.idx + 1, next: r.next}, true
	}
	if r.next == nil {
		return 0, nil, false
	}
	nr := r.next()
	if nr == nil {
		return 0, nil, false
	}
	return nr.Uncons()
}
