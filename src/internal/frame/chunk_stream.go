// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package frame

import (
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/bytebuffer/src/bytebuffer"
)

// ErrNotEnoughData is returned by ChunkStream when fewer bytes are buffered than requested.
var ErrNotEnoughData = errors.New("frame: not enough buffered data")

// ChunkStream queues incoming chunks and hands out exact-length reads that may
// span chunk boundaries.
//
// Chunks are kept by reference: the caller must not modify a chunk after
// passing it to AcceptChunk. A ChunkStream is not safe for concurrent use.
type ChunkStream struct {
	chunks []*bytebuffer.ByteBuffer
	length int
}

// ByteLength returns the number of buffered bytes.
func (s *ChunkStream) ByteLength() int { return s.length }

// AcceptChunk appends b to the stream. Empty chunks are ignored.
func (s *ChunkStream) AcceptChunk(b *bytebuffer.ByteBuffer) {
	if b.Len() == 0 {
		return
	}
	s.chunks = append(s.chunks, b)
	s.length += b.Len()
}

// Read removes and returns the next n bytes.
//
// When the bytes lie inside the first chunk the result is a slice of it;
// otherwise they are copied into a new buffer.
func (s *ChunkStream) Read(n int) (*bytebuffer.ByteBuffer, error) {
	return s.read(n, true)
}

// Peek returns the next n bytes without consuming them.
func (s *ChunkStream) Peek(n int) (*bytebuffer.ByteBuffer, error) {
	return s.read(n, false)
}

func (s *ChunkStream) read(n int, advance bool) (*bytebuffer.ByteBuffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", bytebuffer.ErrNegativeLength, n)
	}
	if n > s.length {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughData, n, s.length)
	}
	if n == 0 {
		return bytebuffer.Wrap([]byte{}), nil
	}

	first := s.chunks[0]
	if first.Len() >= n {
		out := first.Slice(0, n)
		if advance {
			s.consumeFirst(n)
		}
		return out, nil
	}

	out, err := bytebuffer.AllocZeroed(n)
	if err != nil {
		return nil, err
	}
	offset := 0
	for i := 0; offset < n; i++ {
		chunk := s.chunks[i]
		want := min(chunk.Len(), n-offset)
		offset += out.CopyAt(chunk.Slice(0, want), offset)
	}
	if advance {
		for n > 0 {
			take := min(s.chunks[0].Len(), n)
			s.consumeFirst(take)
			n -= take
		}
	}
	return out, nil
}

// consumeFirst drops n bytes from the front of the first chunk.
func (s *ChunkStream) consumeFirst(n int) {
	first := s.chunks[0]
	if n == first.Len() {
		s.chunks[0] = nil
		s.chunks = s.chunks[1:]
	} else {
		s.chunks[0] = first.SliceFrom(n)
	}
	s.length -= n
}
