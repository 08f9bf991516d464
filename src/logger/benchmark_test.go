// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"io"
	"testing"

	"github.com/H0llyW00dzZ/bytebuffer/src/logger"
)

func BenchmarkJSONLogger_Printf(b *testing.B) {
	log := logger.NewJSONLogger(io.Discard, false)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Printf("decoded frame %d with %d payload bytes", i, i*13)
	}
}

func BenchmarkJSONLogger_PrintfConcurrent(b *testing.B) {
	log := logger.NewJSONLogger(io.Discard, false)

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			log.Printf("concurrent message %d", i)
			i++
		}
	})
}

func BenchmarkJSONLogger_Silent(b *testing.B) {
	log := logger.NewJSONLogger(io.Discard, true)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Printf("silent message %d", i)
	}
}

func BenchmarkCLILogger_Printf(b *testing.B) {
	log := logger.NewCLILogger()
	log.SetOutput(io.Discard)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Printf("benchmark message %d", i)
	}
}
