package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceNewline(t *testing.T) {
	p := New("f")
	p = Advance(p, 'a', TabWidth)
	p = Advance(p, '\n', TabWidth)
	assert.Equal(t, Position{"f", 2, 1}, p)
}

func TestAdvanceTab(t *testing.T) {
	p := Position{"f", 1, 1}
	p = Advance(p, '\t', TabWidth)
	assert.Equal(t, uint32(9), p.Column)

	p = Position{"f", 1, 3}
	p = Advance(p, '\t', TabWidth)
	assert.Equal(t, uint32(9), p.Column)
}

func TestAdvanceOther(t *testing.T) {
	p := New("f")
	p = Advance(p, 'x', TabWidth)
	assert.Equal(t, Position{"f", 1, 2}, p)
}

func TestUpdate(t *testing.T) {
	p := New("f")
	p = Update(p, []rune("ab\ncd"), TabWidth)
	assert.Equal(t, Position{"f", 2, 3}, p)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, Compare(Position{"f", 1, 1}, Position{"f", 1, 1}))
	assert.Equal(t, -1, Compare(Position{"f", 1, 1}, Position{"f", 1, 2}))
	assert.Equal(t, 1, Compare(Position{"f", 2, 1}, Position{"f", 1, 9}))
}

func TestString(t *testing.T) {
	assert.Equal(t, "f:3:4", Position{"f", 3, 4}.String())
}
