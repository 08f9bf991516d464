// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/bytebuffer/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted and plain output.
//
// This interface lets the CLI switch between human-readable output and
// one-JSON-object-per-line output without touching the command code.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger writing to stderr with timestamps disabled.
// Stdout is left free for command output such as hex dumps and frame bytes.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger with structured output: every message is a
// single JSON object `{"level":"info","message":"..."}` followed by a newline.
// A silent JSONLogger drops everything.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewJSONLogger creates a new JSON logger. A nil writer discards output.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs a structured message.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.emit(fmt.Sprintf(format, v...))
}

// Println logs a structured message built with fmt.Sprint semantics.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.emit(fmt.Sprint(v...))
}

// emit renders the entry into a pooled buffer so the lock is only held for the write.
func (j *JSONLogger) emit(msg string) {
	// Marshal never fails for a string; invalid UTF-8 becomes U+FFFD.
	quoted, _ := json.Marshal(msg)

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString(`{"level":"info","message":`)
	buf.Write(quoted)
	buf.WriteString("}\n")

	j.mu.Lock()
	buf.WriteTo(j.writer)
	j.mu.Unlock()
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
