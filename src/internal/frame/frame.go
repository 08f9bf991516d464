// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package frame

import (
	"errors"
	"fmt"
	"math"

	"github.com/H0llyW00dzZ/bytebuffer/src/bytebuffer"
)

// HeaderLength is the size of a frame header in bytes.
const HeaderLength = 13

const (
	offsetType   = 0
	offsetID     = 1
	offsetAck    = 5
	offsetLength = 9
)

var (
	// ErrShortHeader is returned when fewer than HeaderLength bytes are available.
	ErrShortHeader = errors.New("frame: short header")
	// ErrPayloadTooLarge is returned when a payload exceeds the configured limit.
	ErrPayloadTooLarge = errors.New("frame: payload too large")
)

// MessageType identifies what a frame carries.
type MessageType uint8

// Known message types. Values not listed here are carried through unchanged.
const (
	TypeNone       MessageType = 0
	TypeRegular    MessageType = 1
	TypeControl    MessageType = 2
	TypeAck        MessageType = 3
	TypeDisconnect MessageType = 5
	TypeKeepAlive  MessageType = 9
)

func (t MessageType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeRegular:
		return "regular"
	case TypeControl:
		return "control"
	case TypeAck:
		return "ack"
	case TypeDisconnect:
		return "disconnect"
	case TypeKeepAlive:
		return "keepalive"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// Header is the fixed part of a frame.
type Header struct {
	Type   MessageType
	ID     uint32
	Ack    uint32
	Length uint32
}

// Message is a decoded frame. Data may alias the stream it was read from.
type Message struct {
	Type MessageType
	ID   uint32
	Ack  uint32
	Data *bytebuffer.ByteBuffer
}

// Encode serializes m into a single buffer holding the header and payload.
//
// The result comes from [bytebuffer.Concat]; callers may Release it once written.
func Encode(m Message) (*bytebuffer.ByteBuffer, error) {
	if uint64(m.Data.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, m.Data.Len())
	}

	header, err := bytebuffer.AllocZeroed(HeaderLength)
	if err != nil {
		return nil, fmt.Errorf("frame: allocate header: %w", err)
	}
	if err := writeHeader(header, Header{
		Type:   m.Type,
		ID:     m.ID,
		Ack:    m.Ack,
		Length: uint32(m.Data.Len()),
	}); err != nil {
		return nil, err
	}

	out, err := bytebuffer.Concat(header, m.Data)
	if err != nil {
		return nil, fmt.Errorf("frame: assemble: %w", err)
	}
	return out, nil
}

func writeHeader(b *bytebuffer.ByteBuffer, h Header) error {
	if err := b.WriteUint8(uint64(h.Type), offsetType); err != nil {
		return fmt.Errorf("frame: write type: %w", err)
	}
	if err := b.WriteUint32BE(uint64(h.ID), offsetID); err != nil {
		return fmt.Errorf("frame: write id: %w", err)
	}
	if err := b.WriteUint32BE(uint64(h.Ack), offsetAck); err != nil {
		return fmt.Errorf("frame: write ack: %w", err)
	}
	if err := b.WriteUint32BE(uint64(h.Length), offsetLength); err != nil {
		return fmt.Errorf("frame: write length: %w", err)
	}
	return nil
}

// DecodeHeader reads the header at the start of b.
func DecodeHeader(b *bytebuffer.ByteBuffer) (Header, error) {
	if b.Len() < HeaderLength {
		return Header{}, fmt.Errorf("%w: have %d bytes, need %d", ErrShortHeader, b.Len(), HeaderLength)
	}

	// Length was checked above, so the fast-path accessors cannot panic.
	return Header{
		Type:   MessageType(b.Uint8(offsetType)),
		ID:     b.Uint32BE(offsetID),
		Ack:    b.Uint32BE(offsetAck),
		Length: b.Uint32BE(offsetLength),
	}, nil
}

// Decode splits a complete frame held in b into its message.
// Bytes after the payload are ignored. The returned Data aliases b.
func Decode(b *bytebuffer.ByteBuffer) (Message, error) {
	h, err := DecodeHeader(b)
	if err != nil {
		return Message{}, err
	}
	end := HeaderLength + int(h.Length)
	if b.Len() < end {
		return Message{}, fmt.Errorf("%w: payload needs %d bytes, have %d",
			bytebuffer.ErrOutOfBounds, h.Length, b.Len()-HeaderLength)
	}
	return Message{
		Type: h.Type,
		ID:   h.ID,
		Ack:  h.Ack,
		Data: b.Slice(HeaderLength, end),
	}, nil
}
