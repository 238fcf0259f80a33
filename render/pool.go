package render

import "sync"

// maxPooledCap bounds the capacity of buffers returned to the pool. Render
// passes that produced unusually large output would otherwise pin their
// allocation for the lifetime of the pool.
const maxPooledCap = 64 * 1024

var bufferPool = sync.Pool{
	New: func() any { return &Buffer{} },
}

// AcquireBuffer returns an empty buffer from the pool.
func AcquireBuffer() *Buffer {
	return bufferPool.Get().(*Buffer)
}

// ReleaseBuffer clears b and returns it to the pool. The caller must not
// touch b, or any slice obtained from Bytes, after release.
func ReleaseBuffer(b *Buffer) {
	if b == nil || cap(b.buf) > maxPooledCap {
		return
	}
	b.Clear()
	bufferPool.Put(b)
}
