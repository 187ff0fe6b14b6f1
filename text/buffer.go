// Package text implements the document's text buffer: an edit-replaceable
// byte sequence addressed by byte offset.
package text

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidSpan is returned when an edit's span is out of range or
// inverted (lo > hi, or hi > ByteLen()).
var ErrInvalidSpan = errors.New("text: invalid span")

// ErrNonScalarOffset is returned when an edit's span does not fall on
// UTF-8 scalar boundaries.
var ErrNonScalarOffset = errors.New("text: offset is not on a scalar boundary")

// Span is a half-open byte range [Lo, Hi) into a Buffer.
type Span struct {
	Lo, Hi uint64
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint64 {
	return s.Hi - s.Lo
}

// Buffer is an edit-replaceable sequence of bytes. Its contents are not
// validated as UTF-8; Edit only checks that the span's endpoints fall on
// scalar boundaries of the current contents.
type Buffer struct {
	data []byte
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferFromString returns a buffer initialized with s.
func NewBufferFromString(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// ByteLen returns the current length of the buffer in bytes.
func (b *Buffer) ByteLen() uint64 {
	return uint64(len(b.data))
}

// ReadAt returns the rune starting at the given byte offset, or false if
// the offset is out of range.
func (b *Buffer) ReadAt(offset uint64) (rune, bool) {
	if offset >= b.ByteLen() {
		return 0, false
	}
	r, _ := utf8.DecodeRune(b.data[offset:])
	return r, true
}

// Edit replaces the half-open byte range [span.Lo, span.Hi) with replacement.
// It fails without modifying the buffer if the span is invalid or not on
// scalar boundaries.
func (b *Buffer) Edit(span Span, replacement string) error {
	n := b.ByteLen()
	if span.Lo > span.Hi || span.Hi > n {
		return ErrInvalidSpan
	}
	if !b.onScalarBoundary(span.Lo) || !b.onScalarBoundary(span.Hi) {
		return ErrNonScalarOffset
	}

	next := make([]byte, 0, span.Lo+uint64(len(replacement))+(n-span.Hi))
	next = append(next, b.data[:span.Lo]...)
	next = append(next, replacement...)
	next = append(next, b.data[span.Hi:]...)
	b.data = next
	return nil
}

// String returns the buffer's contents as a string.
func (b *Buffer) String() string {
	return string(b.data)
}

func (b *Buffer) onScalarBoundary(offset uint64) bool {
	n := b.ByteLen()
	if offset == n {
		return true
	}
	if offset > n {
		return false
	}
	return isStartByte(b.data[offset])
}
