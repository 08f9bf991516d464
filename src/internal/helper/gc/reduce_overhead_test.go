// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or use this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBufferInterface verifies that bytebufferpool.ByteBuffer satisfies Buffer interface
func TestBufferInterface(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		check func(t *testing.T, buf Buffer)
	}{
		{
			name: "Write and WriteByte",
			setup: func(buf Buffer) {
				buf.Write([]byte{0x00, 0x01})
				buf.WriteByte(0xff)
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, []byte{0x00, 0x01, 0xff}, buf.Bytes())
				assert.Equal(t, 3, buf.Len())
			},
		},
		{
			name: "Set replaces content",
			setup: func(buf Buffer) {
				buf.WriteString("header")
				buf.Set([]byte("payload"))
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "payload", buf.String())
			},
		},
		{
			name: "ReadFrom appends",
			setup: func(buf Buffer) {
				buf.WriteString("a")
				buf.ReadFrom(strings.NewReader("bc"))
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "abc", buf.String())
			},
		},
		{
			name:  "Empty buffer",
			setup: func(buf Buffer) {},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, 0, buf.Len())
				assert.Equal(t, "", buf.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			tt.setup(buf)
			tt.check(t, buf)
		})
	}
}

func TestRegion(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		n       int
		wantLen int
	}{
		{name: "Grow empty buffer", initial: "", n: 16, wantLen: 16},
		{name: "Shrink within capacity", initial: "0123456789", n: 4, wantLen: 4},
		{name: "Zero length", initial: "abc", n: 0, wantLen: 0},
		{name: "Negative clamps to zero", initial: "abc", n: -5, wantLen: 0},
		{name: "Large region", initial: "x", n: 1 << 16, wantLen: 1 << 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			buf.WriteString(tt.initial)
			region := Region(buf, tt.n)

			assert.Len(t, region, tt.wantLen)
			assert.Equal(t, tt.wantLen, buf.Len(), "buffer length follows region")
		})
	}
}

func TestRegionKeepsStaleBytes(t *testing.T) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	buf.WriteString("stale")
	buf.Reset()

	region := Region(buf, 5)
	assert.Equal(t, "stale", string(region), "Region must not clear previous contents")
}

func TestRegionAliasesBuffer(t *testing.T) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	region := Region(buf, 4)
	copy(region, "abcd")
	assert.Equal(t, "abcd", buf.String())
}

func TestRegionNonPoolBuffer(t *testing.T) {
	mock := &mockBuffer{buf: bytes.NewBufferString("ab")}

	region := Region(mock, 6)
	require.Len(t, region, 6)
	assert.Equal(t, []byte{'a', 'b', 0, 0, 0, 0}, region)

	region = Region(mock, 1)
	assert.Equal(t, []byte{'a'}, region)
}

// TestPoolGetPut verifies pool Get/Put operations
func TestPoolGetPut(t *testing.T) {
	buf1 := Default.Get()
	require.NotNil(t, buf1, "Get() returned nil buffer")

	buf1.WriteString("test data")
	assert.Equal(t, 9, buf1.Len(), "WriteString() length")
	buf1.Reset()
	Default.Put(buf1)

	buf2 := Default.Get()
	require.NotNil(t, buf2, "Get() returned nil buffer after Put()")
	assert.Equal(t, 0, buf2.Len(), "Buffer from pool should be empty")

	buf2.Reset()
	Default.Put(buf2)
}

// TestPoolPutNonByteBuffer verifies Put handles non-ByteBuffer types gracefully
func TestPoolPutNonByteBuffer(t *testing.T) {
	mockBuf := &mockBuffer{buf: bytes.NewBuffer(nil)}
	assert.NotPanics(t, func() { Default.Put(mockBuf) })
}

func TestPoolConcurrentRegions(t *testing.T) {
	const goroutines = 64
	const iterations = 500

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := range goroutines {
		go func(id int) {
			defer wg.Done()
			for j := range iterations {
				buf := Default.Get()
				region := Region(buf, 8+j%8)
				for k := range region {
					region[k] = byte(id)
				}
				for _, c := range region {
					if c != byte(id) {
						assert.Fail(t, "region shared between goroutines")
						break
					}
				}
				buf.Reset()
				Default.Put(buf)
			}
		}(i)
	}

	wg.Wait()
}

func TestBufferWriteTo(t *testing.T) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	buf.WriteString("frame bytes")

	var output bytes.Buffer
	n, err := buf.WriteTo(&output)
	require.NoError(t, err)
	assert.Equal(t, int64(11), n)
	assert.Equal(t, "frame bytes", output.String())
}

func TestPoolInterfaceImplementation(t *testing.T) {
	var _ Pool = &pool{}
	var _ Pool = Default
	var _ Buffer = &mockBuffer{}
}
