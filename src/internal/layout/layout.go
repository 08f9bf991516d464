// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package layout

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/bytebuffer/src/bytebuffer"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// FieldType selects how a field's bytes are interpreted.
type FieldType string

// Supported field types.
const (
	TypeUint8    FieldType = "uint8"
	TypeUint32BE FieldType = "uint32be"
	TypeBytes    FieldType = "bytes"
	TypeString   FieldType = "string"
)

// Field is one named, fixed-width slot of a record.
type Field struct {
	// Name: Label shown in output and used as the key for Encode
	Name string `json:"name" yaml:"name"`
	// Offset: Byte offset of the field from the start of the record
	Offset int `json:"offset" yaml:"offset"`
	// Type: One of uint8, uint32be, bytes, string
	Type FieldType `json:"type" yaml:"type"`
	// Length: Width in bytes; fixed for integer types
	Length int `json:"length,omitempty" yaml:"length,omitempty"`
}

// Layout describes a fixed-width record.
type Layout struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Value is a decoded field.
type Value struct {
	Field Field
	// Uint holds the value of integer fields.
	Uint uint32
	// Raw holds the field's bytes. It aliases the decoded buffer.
	Raw *bytebuffer.ByteBuffer
}

// String formats the value for display.
func (v Value) String() string {
	switch v.Field.Type {
	case TypeUint8:
		return fmt.Sprintf("%d (0x%02x)", v.Uint, v.Uint)
	case TypeUint32BE:
		return fmt.Sprintf("%d (0x%08x)", v.Uint, v.Uint)
	case TypeString:
		return strconv.Quote(v.Raw.String())
	default:
		return hex.EncodeToString(v.Raw.UnsafeBytes())
	}
}

// Size returns the number of bytes a record occupies.
func (l *Layout) Size() int {
	size := 0
	for _, f := range l.Fields {
		size = max(size, f.Offset+f.Length)
	}
	return size
}

// Decode reads every field of the layout from b.
//
// A field that does not fit inside b fails with an error wrapping
// bytebuffer.ErrOutOfBounds.
func (l *Layout) Decode(b *bytebuffer.ByteBuffer) ([]Value, error) {
	values := make([]Value, 0, len(l.Fields))
	for _, f := range l.Fields {
		v := Value{Field: f}
		switch f.Type {
		case TypeUint8:
			u, err := b.ReadUint8(f.Offset)
			if err != nil {
				return nil, fmt.Errorf("layout: field %q: %w", f.Name, err)
			}
			v.Uint = uint32(u)
		case TypeUint32BE:
			u, err := b.ReadUint32BE(f.Offset)
			if err != nil {
				return nil, fmt.Errorf("layout: field %q: %w", f.Name, err)
			}
			v.Uint = u
		}
		if f.Offset+f.Length > b.Len() {
			return nil, fmt.Errorf("layout: field %q: %w: needs bytes [%d, %d), length %d",
				f.Name, bytebuffer.ErrOutOfBounds, f.Offset, f.Offset+f.Length, b.Len())
		}
		v.Raw = b.Slice(f.Offset, f.Offset+f.Length)
		values = append(values, v)
	}
	return values, nil
}

// Encode builds a zero-filled record and writes the given values into it.
//
// Integer values accept any base strconv.ParseUint understands ("42", "0x2a").
// bytes values are hex and string values are UTF-8 text; both may be shorter
// than the field, in which case the remainder stays zero. Fields without a
// value stay zero. Unknown keys are an error.
func (l *Layout) Encode(values map[string]string) (*bytebuffer.ByteBuffer, error) {
	b, err := bytebuffer.AllocZeroed(l.Size())
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(l.Fields))
	for _, f := range l.Fields {
		known[f.Name] = true
		raw, ok := values[f.Name]
		if !ok {
			continue
		}
		if err := encodeField(b, f, raw); err != nil {
			return nil, fmt.Errorf("layout: field %q: %w", f.Name, err)
		}
	}
	for name := range values {
		if !known[name] {
			return nil, fmt.Errorf("%w: no field named %q", ErrInvalidLayout, name)
		}
	}
	return b, nil
}

func encodeField(b *bytebuffer.ByteBuffer, f Field, raw string) error {
	switch f.Type {
	case TypeUint8:
		u, err := strconv.ParseUint(raw, 0, 8)
		if err != nil {
			return err
		}
		return b.WriteUint8(u, f.Offset)
	case TypeUint32BE:
		u, err := strconv.ParseUint(raw, 0, 32)
		if err != nil {
			return err
		}
		return b.WriteUint32BE(u, f.Offset)
	case TypeBytes:
		decoded, err := hex.DecodeString(raw)
		if err != nil {
			return err
		}
		return setWithin(b, f, bytebuffer.Wrap(decoded))
	default:
		return setWithin(b, f, bytebuffer.FromString(raw))
	}
}

// setWithin copies src into the field's slot, refusing values wider than the field.
func setWithin(b *bytebuffer.ByteBuffer, f Field, src *bytebuffer.ByteBuffer) error {
	if src.Len() > f.Length {
		return fmt.Errorf("%w: %d bytes do not fit in a %d-byte field", bytebuffer.ErrOutOfBounds, src.Len(), f.Length)
	}
	return b.Set(src, f.Offset)
}

// RenderTable renders decoded values as a markdown table.
func RenderTable(values []Value) string {
	if len(values) == 0 {
		return "No fields to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Field", "Offset", "Type", "Width", "Value"})

	var rows [][]string
	for _, v := range values {
		rows = append(rows, []string{
			v.Field.Name,
			strconv.Itoa(v.Field.Offset),
			string(v.Field.Type),
			strconv.Itoa(v.Field.Length),
			v.String(),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
