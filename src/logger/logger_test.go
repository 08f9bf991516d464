// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/bytebuffer/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLILogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Printf("wrote %d bytes", 13)

				assert.Equal(t, "wrote 13 bytes\n", buf.String())
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Println("frame", "decoded")

				assert.Contains(t, buf.String(), "frame decoded")
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewCLILogger()

				log.SetOutput(&buf1)
				log.Println("first")

				log.SetOutput(&buf2)
				log.Println("second")

				assert.Contains(t, buf1.String(), "first")
				assert.Contains(t, buf2.String(), "second")
				assert.NotContains(t, buf1.String(), "second", "buf1 should not contain 'second'")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func decodeEntries(t *testing.T, out string) []map[string]string {
	t.Helper()
	var entries []map[string]string
	for line := range strings.SplitSeq(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]string
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q is not valid JSON", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Silent",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, true)

				log.Printf("test message: %s", "hello")
				log.Println("another message")

				assert.Equal(t, 0, buf.Len(), "expected no output in silent mode")
			},
		},
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Printf("read uint32 %#x at offset %d", 0xCAFE, 4)

				entries := decodeEntries(t, buf.String())
				require.Len(t, entries, 1)
				assert.Equal(t, "info", entries[0]["level"])
				assert.Equal(t, "read uint32 0xcafe at offset 4", entries[0]["message"])
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Println("concat", "done")

				entries := decodeEntries(t, buf.String())
				require.Len(t, entries, 1)
				assert.Equal(t, "concatdone", entries[0]["message"])
			},
		},
		{
			name: "Escaping",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				msg := "quote \" backslash \\ newline \n tab \t héllo"
				log.Printf("%s", msg)

				entries := decodeEntries(t, buf.String())
				require.Len(t, entries, 1)
				assert.Equal(t, msg, entries[0]["message"])
			},
		},
		{
			name: "InvalidUTF8",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Println("bad \xff byte")

				entries := decodeEntries(t, buf.String())
				require.Len(t, entries, 1)
				assert.Equal(t, "bad \uFFFD byte", entries[0]["message"])
			},
		},
		{
			name: "NilWriter",
			testFunc: func(t *testing.T) {
				log := logger.NewJSONLogger(nil, false)
				assert.NotPanics(t, func() { log.Printf("dropped") })

				log.SetOutput(nil)
				assert.NotPanics(t, func() { log.Println("dropped") })
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewJSONLogger(&buf1, false)

				log.Println("first")
				log.SetOutput(&buf2)
				log.Println("second")

				assert.Len(t, decodeEntries(t, buf1.String()), 1)
				assert.Len(t, decodeEntries(t, buf2.String()), 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

// syncBuffer guards a bytes.Buffer so the test can read it while writers finish.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestJSONLogger_Concurrent(t *testing.T) {
	const goroutines = 50
	const perGoroutine = 20

	var out syncBuffer
	log := logger.NewJSONLogger(&out, false)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func(id int) {
			defer wg.Done()
			for j := range perGoroutine {
				if j%2 == 0 {
					log.Printf("goroutine %d message %d", id, j)
				} else {
					log.Println("goroutine", id, "message", j)
				}
			}
		}(i)
	}
	wg.Wait()

	entries := decodeEntries(t, out.String())
	assert.Len(t, entries, goroutines*perGoroutine, "every line must be a whole JSON object")
}

func TestJSONLogger_WriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bytebuffer.log")
	f, err := os.Create(path)
	require.NoError(t, err)

	log := logger.NewJSONLogger(f, false)
	for i := range 5 {
		log.Printf("entry %d", i)
	}
	require.NoError(t, f.Close())

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]string
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, 5, lines)
}

func TestLoggerInterface(t *testing.T) {
	var _ logger.Logger = logger.NewCLILogger()
	var _ logger.Logger = logger.NewJSONLogger(nil, true)
}
