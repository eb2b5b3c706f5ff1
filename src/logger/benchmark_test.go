// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"io"
	"testing"

	"github.com/H0llyW00dzZ/pem-outline/src/logger"
)

func BenchmarkMCPLogger_Printf(b *testing.B) {
	log := logger.NewMCPLogger(io.Discard, false)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Printf("Benchmark message %d", i)
	}
}

func BenchmarkMCPLogger_PrintfConcurrent(b *testing.B) {
	log := logger.NewMCPLogger(io.Discard, false)

	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			log.Printf("Concurrent benchmark message")
		}
	})
}

func BenchmarkMCPLogger_Silent(b *testing.B) {
	log := logger.NewMCPLogger(io.Discard, true)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Debugf("Silent message %d", i)
	}
}

func BenchmarkCLILogger_Debugf(b *testing.B) {
	log := logger.NewCLILogger()
	log.SetOutput(io.Discard)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Debugf("Suppressed message %d", i)
	}
}
