// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package bytebuffer provides ByteBuffer, a fixed-length region of bytes used
// as the building block for serializing messages, protocol frames and string
// payloads.
//
// A ByteBuffer's length is set when it is created and never changes. Its
// bytes may be overwritten in place through [ByteBuffer.Set],
// [ByteBuffer.WriteUint32BE] and [ByteBuffer.WriteUint8] (or their panicking
// fast-path twins).
//
// # Ownership and aliasing
//
// A buffer either owns a freshly allocated region ([Alloc], [AllocZeroed],
// [FromString], [Concat], [ConcatN], [ByteBuffer.Clone]), takes over a
// caller-supplied slice without copying ([Wrap]), or aliases part of another
// buffer's region ([ByteBuffer.Slice], [ByteBuffer.SliceFrom]). Writes through
// any alias are visible through every other alias of the same region. The
// package does no locking; callers sharing a region between goroutines must
// synchronize themselves.
//
// [ByteBuffer.UnsafeBytes] exposes the region itself for interoperation with
// code that needs a plain []byte. [ByteBuffer.Bytes] returns a copy.
//
// # Bounds
//
// Checked operations return an error wrapping [ErrOutOfBounds] and leave the
// buffer untouched when an access falls outside [0, Len()). The fast-path
// accessors ([ByteBuffer.Uint32BE], [ByteBuffer.PutUint32BE],
// [ByteBuffer.Uint8], [ByteBuffer.PutUint8], [ByteBuffer.CopyAt]) skip the
// explicit check and rely on the Go runtime, so a bad offset panics rather
// than corrupting memory.
//
// Integers are big-endian. Text is UTF-8 with no length prefix or terminator.
package bytebuffer
