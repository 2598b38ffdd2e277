package pool

import (
	"bytes"
	"sync"
)

// maxRetainedCap caps the capacity of buffers returned to the pool, so one
// huge block encode does not pin memory for the process lifetime.
const maxRetainedCap = 1 << 16

var bufferPool sync.Pool

// GetBuffer returns an empty buffer from the pool.
//
// Return back the buffer to the pool with PutBuffer.
func GetBuffer() *bytes.Buffer {
	if v := bufferPool.Get(); v != nil {
		buf, _ := v.(*bytes.Buffer) // Type assertion is safe here since we only put *bytes.Buffer into the pool
		buf.Reset()
		return buf
	}

	return new(bytes.Buffer)
}

// PutBuffer returns buf to the pool.
//
// buf cannot be accessed after returning to the pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxRetainedCap {
		return
	}
	bufferPool.Put(buf)
}
