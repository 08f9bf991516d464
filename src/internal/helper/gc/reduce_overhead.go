// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	WriteTo(w io.Writer) (int64, error)
	ReadFrom(r io.Reader) (int64, error)
	Bytes() []byte
	String() string
	Len() int
	Set(p []byte)
	SetString(s string)
	Reset()
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Region resizes b to exactly n bytes and returns its backing slice.
//
// The bytes are NOT cleared. When b came from a pool, the returned region
// holds whatever the previous user of that buffer left behind, which is the
// point: callers that overwrite every byte before reading skip the cost of
// zeroing. The region stays owned by b, so it must not be used after b is
// handed back with [Pool.Put].
//
// Negative n is treated as zero.
func Region(b Buffer, n int) []byte {
	if n < 0 {
		n = 0
	}
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		if cap(buf.B) < n {
			buf.B = make([]byte, n)
		} else {
			buf.B = buf.B[:n]
		}
		return buf.B
	}

	// Other implementations only expose the append API.
	if d := n - b.Len(); d > 0 {
		b.Write(make([]byte, d))
	} else if d < 0 {
		b.Set(b.Bytes()[:n])
	}
	return b.Bytes()
}

// Default is the default buffer pool shared by the buffer, frame and logger packages.
//
// Example usage for a scratch region that is overwritten before it is read:
//
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
//	region := gc.Region(buf, 13)
//	region[0] = msgType
//	binary.BigEndian.PutUint32(region[1:], id)
//
// Example usage for reading a stream in chunks:
//
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()
//		gc.Default.Put(buf)
//	}()
//
//	if _, err := buf.ReadFrom(r); err != nil {
//		return fmt.Errorf("error reading input: %w", err)
//	}
//
//	process(buf.Bytes())
//
// Note: a region obtained through [Region] aliases the pooled buffer. Copy it
// out, or keep the buffer checked out, for as long as the bytes are needed.
var Default Pool = &pool{p: &bytebufferpool.Pool{}}
