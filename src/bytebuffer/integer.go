// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bytebuffer

import "encoding/binary"

// ReadUint32BE returns the big-endian uint32 stored at offset.
func (b *ByteBuffer) ReadUint32BE(offset int) (uint32, error) {
	if err := b.checkRange("read uint32", offset, 4); err != nil {
		return 0, err
	}
	return b.Uint32BE(offset), nil
}

// WriteUint32BE stores the low 32 bits of value at offset, most significant byte first.
//
// Higher bits are discarded, so 0x1_0000_0001 is stored as 1.
func (b *ByteBuffer) WriteUint32BE(value uint64, offset int) error {
	if err := b.checkRange("write uint32", offset, 4); err != nil {
		return err
	}
	b.PutUint32BE(offset, uint32(value))
	return nil
}

// ReadUint8 returns the byte at offset.
func (b *ByteBuffer) ReadUint8(offset int) (uint8, error) {
	if err := b.checkRange("read uint8", offset, 1); err != nil {
		return 0, err
	}
	return b.region[offset], nil
}

// WriteUint8 stores the low 8 bits of value at offset.
func (b *ByteBuffer) WriteUint8(value uint64, offset int) error {
	if err := b.checkRange("write uint8", offset, 1); err != nil {
		return err
	}
	b.region[offset] = uint8(value)
	return nil
}

// Uint32BE is the unchecked form of ReadUint32BE. It panics when
// [offset, offset+4) is not inside the buffer.
func (b *ByteBuffer) Uint32BE(offset int) uint32 {
	return binary.BigEndian.Uint32(b.region[offset:])
}

// PutUint32BE is the unchecked form of WriteUint32BE.
func (b *ByteBuffer) PutUint32BE(offset int, v uint32) {
	binary.BigEndian.PutUint32(b.region[offset:], v)
}

// Uint8 is the unchecked form of ReadUint8.
func (b *ByteBuffer) Uint8(offset int) uint8 { return b.region[offset] }

// PutUint8 is the unchecked form of WriteUint8.
func (b *ByteBuffer) PutUint8(offset int, v uint8) { b.region[offset] = v }
