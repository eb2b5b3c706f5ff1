// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
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
	"sync/atomic"

	"github.com/H0llyW00dzZ/pem-outline/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
//
// This interface supports both CLI and [MCP] server modes, allowing the
// analysis packages to log without knowing which front end runs them.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// Debugf formats and prints a diagnostic message. Implementations may
	// drop it.
	Debugf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// Nop returns a Logger that discards everything.
func Nop() Logger { return NewMCPLogger(io.Discard, true) }

// CLILogger implements Logger using the standard log package.
// It writes human-readable lines to stderr so that command output on stdout
// stays machine readable.
type CLILogger struct {
	logger *log.Logger
	debug  atomic.Bool
}

// NewCLILogger creates a new CLI logger with timestamps disabled and debug
// messages suppressed.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// SetDebug enables or disables [CLILogger.Debugf] output.
func (c *CLILogger) SetDebug(enabled bool) { c.debug.Store(enabled) }

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Debugf prints a message prefixed with "debug: " when debug output is on.
func (c *CLILogger) Debugf(format string, v ...any) {
	if !c.debug.Load() {
		return
	}
	c.logger.Printf("debug: "+format, v...)
}

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// MCPLogger implements Logger for [MCP] server mode.
// It suppresses output by default since MCP communication happens over stdio,
// but can be configured to write structured logs to a separate destination.
//
// MCPLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type MCPLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewMCPLogger creates a new [MCP] logger.
// By default, it's silent (output suppressed) to avoid interfering with [MCP] stdio protocol.
// Set silent=false and provide a writer to enable structured logging to a file or stderr.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewMCPLogger(writer io.Writer, silent bool) *MCPLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &MCPLogger{
		writer: writer,
		silent: silent,
	}
}

type entry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Printf formats and logs an info entry.
// Output is suppressed if silent mode is enabled.
func (m *MCPLogger) Printf(format string, v ...any) {
	if m.silent {
		return
	}
	m.write("info", fmt.Sprintf(format, v...))
}

// Println logs an info entry built with fmt.Sprint.
// Output is suppressed if silent mode is enabled.
func (m *MCPLogger) Println(v ...any) {
	if m.silent {
		return
	}
	m.write("info", fmt.Sprint(v...))
}

// Debugf formats and logs a debug entry.
// Output is suppressed if silent mode is enabled.
func (m *MCPLogger) Debugf(format string, v ...any) {
	if m.silent {
		return
	}
	m.write("debug", fmt.Sprintf(format, v...))
}

// write encodes one JSON line into a pooled buffer and hands it to the
// writer in a single call, so concurrent entries never interleave.
func (m *MCPLogger) write(level, msg string) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	// Encode appends the newline; an entry of two strings cannot fail
	_ = json.NewEncoder(buf).Encode(entry{Level: level, Message: msg})

	m.mu.Lock()
	defer m.mu.Unlock()
	_, _ = buf.WriteTo(m.writer)
}

// SetOutput sets the output destination for the MCP logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (m *MCPLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}
