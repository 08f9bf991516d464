// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package frame implements a length-prefixed message framing protocol on top
// of [bytebuffer.ByteBuffer].
//
// Each frame is a 13-byte header followed by the payload:
//
//	offset  width  field
//	0       1      type    (uint8)
//	1       4      id      (uint32, big-endian)
//	5       4      ack     (uint32, big-endian)
//	9       4      length  (uint32, big-endian, payload bytes)
//	13      n      payload
//
// [Encode] and [DecodeHeader] convert single frames. [ChunkStream] reassembles
// a byte stream that arrives in arbitrary pieces, and [Reader] / [Writer]
// move whole messages over an io.Reader / io.Writer.
package frame
