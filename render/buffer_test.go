package render

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ io.Writer       = (*Buffer)(nil)
	_ io.StringWriter = (*Buffer)(nil)
	_ io.ByteWriter   = (*Buffer)(nil)
)

func TestBufferWrites(t *testing.T) {
	b := NewBuffer()
	assert.Equal(t, 0, b.Len())

	n, err := b.WriteString("hello")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = b.Write([]byte(", "))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, b.WriteByte('w'))

	n, err = b.WriteRune('ö')
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, "hello, wö", b.String())
	assert.Equal(t, []byte("hello, wö"), b.Bytes())
	assert.Equal(t, len("hello, wö"), b.Len())
}

func TestBufferReserve(t *testing.T) {
	b := NewBuffer()
	b.Reserve(10)
	assert.GreaterOrEqual(t, b.Cap(), 10)
	assert.Equal(t, 0, b.Len())

	b.WriteString("abc")
	capBefore := b.Cap()
	b.Reserve(1)
	assert.Equal(t, capBefore, b.Cap(), "reserve within free capacity must not grow")

	b.Reserve(capBefore)
	assert.GreaterOrEqual(t, b.Cap()-b.Len(), capBefore)
	assert.Equal(t, "abc", b.String(), "growth must preserve contents")
}

func TestBufferLenNeverExceedsCap(t *testing.T) {
	b := NewBufferCapacity(4)
	for i := 0; i < 100; i++ {
		b.WriteString("xy")
		require.LessOrEqual(t, b.Len(), b.Cap())
	}
	assert.Equal(t, 200, b.Len())
}

func TestBufferClearKeepsCapacity(t *testing.T) {
	b := NewBufferCapacity(64)
	b.WriteString("some output")
	capBefore := b.Cap()

	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, capBefore, b.Cap())
	assert.Equal(t, "", b.String())
}

func TestBufferSpareAdvance(t *testing.T) {
	b := NewBuffer()
	b.WriteString("n=")
	b.Reserve(4)

	dst := b.spare(4)
	dst[0] = '4'
	dst[1] = '2'
	b.advance(2)

	assert.Equal(t, "n=42", b.String())
	assert.LessOrEqual(t, b.Len(), b.Cap())
}

func TestAcquireReleaseBuffer(t *testing.T) {
	b := AcquireBuffer()
	assert.Equal(t, 0, b.Len())
	b.WriteString("leftovers")
	ReleaseBuffer(b)

	again := AcquireBuffer()
	assert.Equal(t, 0, again.Len(), "pooled buffers must come back empty")
	ReleaseBuffer(again)

	ReleaseBuffer(nil) // must not panic
}
