// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package frame

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/bytebuffer/src/bytebuffer"
	"github.com/H0llyW00dzZ/bytebuffer/src/internal/helper/gc"
)

const (
	// DefaultMaxPayload is the payload limit used by NewReader.
	DefaultMaxPayload = 64 << 20

	readChunkSize = 32 << 10

	// maxConsecutiveEmptyReads bounds how many (0, nil) reads fill tolerates.
	maxConsecutiveEmptyReads = 100
)

// Reader decodes messages from an io.Reader.
type Reader struct {
	r          io.Reader
	stream     ChunkStream
	header     *Header
	maxPayload int
	// err is the sticky error from the underlying reader.
	err error
	// bad is set once the stream can no longer be framed, such as after an
	// oversized header. Every later Next returns it.
	bad error
}

// Option configures a Reader.
type Option func(*Reader)

// WithMaxPayload sets the largest payload the reader accepts.
func WithMaxPayload(n int) Option {
	return func(r *Reader) { r.maxPayload = n }
}

// NewReader returns a Reader that reads frames from r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	fr := &Reader{r: r, maxPayload: DefaultMaxPayload}
	for _, opt := range opts {
		opt(fr)
	}
	return fr
}

// Next returns the next complete message.
//
// It returns io.EOF when the input ends on a frame boundary and
// io.ErrUnexpectedEOF when it ends inside a frame. The context is checked
// before every read from the underlying reader. A payload over the limit
// leaves the reader unusable: this and every later call fail with
// ErrPayloadTooLarge.
func (r *Reader) Next(ctx context.Context) (Message, error) {
	if r.bad != nil {
		return Message{}, r.bad
	}
	for {
		if r.header == nil && r.stream.ByteLength() >= HeaderLength {
			raw, err := r.stream.Read(HeaderLength)
			if err != nil {
				return Message{}, err
			}
			h, err := DecodeHeader(raw)
			if err != nil {
				return Message{}, err
			}
			if int64(h.Length) > int64(r.maxPayload) {
				r.bad = fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, h.Length, r.maxPayload)
				return Message{}, r.bad
			}
			r.header = &h
		}

		if r.header != nil && r.stream.ByteLength() >= int(r.header.Length) {
			data, err := r.stream.Read(int(r.header.Length))
			if err != nil {
				return Message{}, err
			}
			h := r.header
			r.header = nil
			return Message{Type: h.Type, ID: h.ID, Ack: h.Ack, Data: data}, nil
		}

		if err := ctx.Err(); err != nil {
			return Message{}, err
		}
		if err := r.fill(); err != nil {
			if errors.Is(err, io.EOF) {
				if r.header == nil && r.stream.ByteLength() == 0 {
					return Message{}, io.EOF
				}
				return Message{}, io.ErrUnexpectedEOF
			}
			return Message{}, fmt.Errorf("frame: read: %w", err)
		}
	}
}

// fill reads from the underlying reader into pooled scratch space and queues
// a private copy of what arrived. Data that arrives together with an error is
// queued first; the error is reported by the following call. Reads returning
// (0, nil) are retried, up to maxConsecutiveEmptyReads in a row.
func (r *Reader) fill() error {
	if r.err != nil {
		return r.err
	}

	scratch := gc.Default.Get()
	defer func() {
		scratch.Reset()
		gc.Default.Put(scratch)
	}()

	region := gc.Region(scratch, readChunkSize)
	for range maxConsecutiveEmptyReads {
		n, err := r.r.Read(region)
		if err != nil {
			r.err = err
		}
		if n > 0 {
			r.stream.AcceptChunk(bytebuffer.Wrap(region[:n]).Clone())
			return nil
		}
		if err != nil {
			return err
		}
	}
	r.err = io.ErrNoProgress
	return r.err
}

// Writer encodes messages onto an io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer that writes frames to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteMessage encodes m and writes it as one frame.
func (w *Writer) WriteMessage(m Message) error {
	b, err := Encode(m)
	if err != nil {
		return err
	}
	defer b.Release()

	if _, err := b.WriteTo(w.w); err != nil {
		return fmt.Errorf("frame: write: %w", err)
	}
	return nil
}
