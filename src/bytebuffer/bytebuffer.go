// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bytebuffer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/bytebuffer/src/internal/helper/gc"
	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrNegativeLength is returned when a buffer is requested with a negative length.
	ErrNegativeLength = errors.New("bytebuffer: negative length")
	// ErrTooLarge is returned when a requested length exceeds MaxLength.
	ErrTooLarge = errors.New("bytebuffer: length exceeds maximum")
	// ErrOutOfBounds is returned when an access falls outside the buffer.
	ErrOutOfBounds = errors.New("bytebuffer: access out of bounds")
)

// MaxLength is the largest length Alloc, AllocZeroed, Concat and ConcatN will satisfy.
var MaxLength = math.MaxInt32

// ByteBuffer is a fixed-length region of bytes.
//
// The zero value is an empty buffer.
type ByteBuffer struct {
	region []byte
	// pooled is the pool buffer that owns region, set only by Alloc.
	pooled gc.Buffer
}

func checkLength(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	if n > MaxLength {
		return fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxLength)
	}
	return nil
}

// Alloc returns a buffer of n bytes whose contents are unspecified.
//
// The region is drawn from [gc.Default] and may still hold bytes written by a
// previous user of the pooled memory. Callers must write every byte before
// reading it; use [AllocZeroed] when that is not the case. Calling
// [ByteBuffer.Release] once the buffer and all of its slices are dead hands
// the region back to the pool, otherwise the garbage collector reclaims it.
func Alloc(n int) (*ByteBuffer, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	buf := gc.Default.Get()
	return &ByteBuffer{region: gc.Region(buf, n), pooled: buf}, nil
}

// AllocZeroed returns a buffer of n zero bytes.
func AllocZeroed(n int) (*ByteBuffer, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	return &ByteBuffer{region: make([]byte, n)}, nil
}

// Wrap returns a buffer over region without copying it.
//
// The buffer and the caller share the same bytes from now on.
func Wrap(region []byte) *ByteBuffer {
	return &ByteBuffer{region: region}
}

// FromString returns a buffer holding the UTF-8 encoding of s.
//
// Ill-formed UTF-8 in s is replaced with U+FFFD.
func FromString(s string) *ByteBuffer {
	if utf8.ValidString(s) {
		return &ByteBuffer{region: []byte(s)}
	}
	encoded, err := unicode.UTF8.NewEncoder().String(s)
	if err != nil {
		// The replacing encoder does not fail; keep the stdlib fallback anyway.
		encoded = string(bytes.ToValidUTF8([]byte(s), []byte(string(utf8.RuneError))))
	}
	return &ByteBuffer{region: []byte(encoded)}
}

// Concat returns a new buffer holding the contents of buffers in order.
//
// Nil entries count as empty buffers.
func Concat(buffers ...*ByteBuffer) (*ByteBuffer, error) {
	total := 0
	for _, b := range buffers {
		total += b.Len()
		if total > MaxLength {
			return nil, fmt.Errorf("%w: concatenated length exceeds %d", ErrTooLarge, MaxLength)
		}
	}
	return ConcatN(buffers, total)
}

// ConcatN is Concat with an explicit result length.
//
// When totalLength is larger than the combined length of buffers, the bytes
// past the copied data are zero. When it is smaller, ConcatN fails with an
// error wrapping [ErrOutOfBounds] instead of truncating the copy.
func ConcatN(buffers []*ByteBuffer, totalLength int) (*ByteBuffer, error) {
	ret, err := Alloc(totalLength)
	if err != nil {
		return nil, err
	}

	offset := 0
	for i, b := range buffers {
		if offset+b.Len() > totalLength {
			ret.Release()
			return nil, fmt.Errorf("%w: concat input %d needs %d bytes at offset %d, total length is %d",
				ErrOutOfBounds, i, b.Len(), offset, totalLength)
		}
		offset += ret.CopyAt(b, offset)
	}
	clear(ret.region[offset:])

	return ret, nil
}

// Len returns the number of bytes in the buffer.
func (b *ByteBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.region)
}

// String decodes the whole buffer as UTF-8.
//
// Invalid byte sequences are replaced with U+FFFD; decoding never fails.
func (b *ByteBuffer) String() string {
	if b == nil {
		return ""
	}
	if utf8.Valid(b.region) {
		return string(b.region)
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(b.region)
	if err != nil {
		return string(bytes.ToValidUTF8(b.region, []byte(string(utf8.RuneError))))
	}
	return string(decoded)
}

// Slice returns a buffer over bytes [start, end) that shares this buffer's region.
//
// Negative indices count back from the end. Indices past either end are
// clamped, and start >= end yields an empty buffer. The result has no spare
// capacity, so appending to its UnsafeBytes never overwrites the bytes that
// follow it in the parent.
func (b *ByteBuffer) Slice(start, end int) *ByteBuffer {
	n := b.Len()
	start = clampIndex(start, n)
	end = clampIndex(end, n)
	if start >= end {
		return &ByteBuffer{region: []byte{}}
	}
	return &ByteBuffer{region: b.region[start:end:end]}
}

// SliceFrom returns Slice(start, Len()).
func (b *ByteBuffer) SliceFrom(start int) *ByteBuffer {
	return b.Slice(start, b.Len())
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}

// Set copies src into the buffer at offset.
//
// Nothing is written and an error wrapping [ErrOutOfBounds] is returned when
// src does not fit. src may alias the receiver.
func (b *ByteBuffer) Set(src *ByteBuffer, offset int) error {
	if err := b.checkRange("set", offset, src.Len()); err != nil {
		return err
	}
	copy(b.UnsafeBytes()[offset:], src.UnsafeBytes())
	return nil
}

// CopyAt copies as much of src as fits starting at offset and returns the
// number of bytes copied. It panics if offset is outside [0, Len()].
func (b *ByteBuffer) CopyAt(src *ByteBuffer, offset int) int {
	return copy(b.UnsafeBytes()[offset:], src.UnsafeBytes())
}

func (b *ByteBuffer) checkRange(op string, offset, width int) error {
	if offset < 0 || width > b.Len()-offset {
		return fmt.Errorf("%w: %s of %d bytes at offset %d, length %d", ErrOutOfBounds, op, width, offset, b.Len())
	}
	return nil
}

// UnsafeBytes returns the buffer's backing region itself.
//
// Writes through the returned slice change the buffer and every slice that
// shares its region. Prefer Bytes unless the caller needs to hand the region
// to code that only speaks []byte.
func (b *ByteBuffer) UnsafeBytes() []byte {
	if b == nil {
		return nil
	}
	return b.region
}

// Bytes returns a copy of the buffer's contents.
func (b *ByteBuffer) Bytes() []byte {
	c := make([]byte, b.Len())
	copy(c, b.UnsafeBytes())
	return c
}

// Clone returns a new buffer that owns a copy of the contents.
func (b *ByteBuffer) Clone() *ByteBuffer {
	return &ByteBuffer{region: b.Bytes()}
}

// Equal reports whether both buffers hold the same bytes.
func (b *ByteBuffer) Equal(other *ByteBuffer) bool {
	return bytes.Equal(b.UnsafeBytes(), other.UnsafeBytes())
}

// WriteTo writes the buffer's contents to w.
func (b *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.UnsafeBytes())
	return int64(n), err
}

// Release hands a region obtained from Alloc back to the pool and empties the buffer.
//
// It is a no-op for any other buffer. Neither the buffer's old region nor any
// slice taken from it may be used afterwards.
func (b *ByteBuffer) Release() {
	if b == nil || b.pooled == nil {
		return
	}
	buf := b.pooled
	b.pooled = nil
	b.region = nil
	buf.Reset()
	gc.Default.Put(buf)
}
