package render

import (
	"unicode/utf8"
)

// Buffer is the growable byte buffer a render pass accumulates output into.
// It is exclusively owned by one render pass at a time: there is no internal
// locking, and the caller must not share a Buffer between goroutines while
// writing. Contents are valid UTF-8 at every observable boundary as long as
// callers only write valid UTF-8, which every renderable in this package does.
type Buffer struct {
	buf []byte
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferCapacity returns an empty buffer with room for n bytes before the
// first growth.
func NewBufferCapacity(n int) *Buffer {
	return &Buffer{buf: make([]byte, 0, n)}
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the current capacity. Len() <= Cap() always holds.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Reserve guarantees at least n bytes of free capacity, growing the buffer
// if needed. It never shrinks and never changes Len.
func (b *Buffer) Reserve(n int) {
	if n <= cap(b.buf)-len(b.buf) {
		return
	}
	need := len(b.buf) + n
	newCap := 2 * cap(b.buf)
	if newCap < need {
		newCap = need
	}
	nb := make([]byte, len(b.buf), newCap)
	copy(nb, b.buf)
	b.buf = nb
}

// Write appends p to the buffer. It never fails; the error return exists so
// *Buffer satisfies io.Writer. p must be valid UTF-8 text.
func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString appends s to the buffer. It never fails; the error return
// exists so *Buffer satisfies io.StringWriter.
func (b *Buffer) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// WriteByte appends a single byte. c must be ASCII or part of a UTF-8
// sequence the caller completes.
func (b *Buffer) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// WriteRune appends the UTF-8 encoding of r.
func (b *Buffer) WriteRune(r rune) (int, error) {
	n := len(b.buf)
	b.buf = utf8.AppendRune(b.buf, r)
	return len(b.buf) - n, nil
}

// Bytes returns the written bytes. The slice aliases the buffer's storage
// and is invalidated by the next write, Clear, or release to the pool.
func (b *Buffer) Bytes() []byte { return b.buf }

// String returns a copy of the written bytes as a string.
func (b *Buffer) String() string { return string(b.buf) }

// Clear resets the length to zero, keeping capacity for reuse.
func (b *Buffer) Clear() { b.buf = b.buf[:0] }

// spare returns the write window [Len, Len+n) inside already reserved
// capacity. Callers must have called Reserve(n) first; the reslice bounds
// check enforces the contract.
func (b *Buffer) spare(n int) []byte {
	return b.buf[len(b.buf) : len(b.buf)+n]
}

// advance commits n bytes previously written into the spare window.
func (b *Buffer) advance(n int) {
	b.buf = b.buf[:len(b.buf)+n]
}
