package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyBuffer(t *testing.T) {
	b := NewBuffer()
	assert.Equal(t, uint64(0), b.ByteLen())
	assert.Equal(t, "", b.String())
}

func TestEditInsertAndDelete(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Edit(Span{0, 0}, "let x = 5"))
	assert.Equal(t, "let x = 5", b.String())

	require.NoError(t, b.Edit(Span{5, 5}, "1"))
	assert.Equal(t, "let x1 = 5", b.String())

	require.NoError(t, b.Edit(Span{3, 6}, ""))
	assert.Equal(t, "let = 5", b.String())
}

func TestEditReplaceLonger(t *testing.T) {
	b := NewBufferFromString("let x = 5")
	require.NoError(t, b.Edit(Span{4, 5}, "name"))
	assert.Equal(t, "let name = 5", b.String())
}

func TestReadAt(t *testing.T) {
	b := NewBufferFromString("a£b")
	r, ok := b.ReadAt(0)
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	r, ok = b.ReadAt(1)
	require.True(t, ok)
	assert.Equal(t, '£', r)

	_, ok = b.ReadAt(b.ByteLen())
	assert.False(t, ok)
}

func TestEditInvalidSpan(t *testing.T) {
	b := NewBufferFromString("abc")
	err := b.Edit(Span{2, 1}, "")
	assert.ErrorIs(t, err, ErrInvalidSpan)

	err = b.Edit(Span{0, 10}, "")
	assert.ErrorIs(t, err, ErrInvalidSpan)

	assert.Equal(t, "abc", b.String(), "failed edit must not modify the buffer")
}

func TestEditNonScalarOffset(t *testing.T) {
	b := NewBufferFromString("£bc") // '£' is a 2-byte rune
	err := b.Edit(Span{1, 1}, "")
	assert.ErrorIs(t, err, ErrNonScalarOffset)
}
