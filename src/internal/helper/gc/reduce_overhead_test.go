// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
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

func TestBufferInterface(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		check func(t *testing.T, buf Buffer)
	}{
		{
			name: "Write byte slice",
			setup: func(buf Buffer) {
				buf.Write([]byte("hello"))
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "hello", buf.String())
				assert.Equal(t, 5, buf.Len())
			},
		},
		{
			name: "Multiple operations",
			setup: func(buf Buffer) {
				buf.Write([]byte("MIIB"))
				buf.WriteString("AAAA")
				buf.WriteByte('=')
			},
			check: func(t *testing.T, buf Buffer) {
				expected := "MIIBAAAA="
				assert.Equal(t, expected, buf.String())
				assert.Equal(t, []byte(expected), buf.Bytes())
			},
		},
		{
			name: "SetString replaces content",
			setup: func(buf Buffer) {
				buf.WriteString("initial")
				buf.SetString("replaced")
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "replaced", buf.String())
			},
		},
		{
			name: "ReadFrom",
			setup: func(buf Buffer) {
				buf.ReadFrom(strings.NewReader("from reader"))
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "from reader", buf.String())
			},
		},
		{
			name: "WriteTo",
			setup: func(buf Buffer) {
				buf.WriteString("to writer")
			},
			check: func(t *testing.T, buf Buffer) {
				var out bytes.Buffer
				n, err := buf.WriteTo(&out)
				require.NoError(t, err)
				assert.Equal(t, int64(9), n)
				assert.Equal(t, "to writer", out.String())
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

func TestPoolReuseAfterReset(t *testing.T) {
	buf := Default.Get()
	buf.WriteString("stale")
	buf.Reset()
	Default.Put(buf)

	again := Default.Get()
	defer func() {
		again.Reset()
		Default.Put(again)
	}()
	assert.Equal(t, 0, again.Len(), "pooled buffer must come back empty")
}

// foreignBuffer satisfies Buffer without being a bytebufferpool buffer.
type foreignBuffer struct{ bytes.Buffer }

func (f *foreignBuffer) Set(p []byte)       { f.Buffer.Reset(); f.Buffer.Write(p) }
func (f *foreignBuffer) SetString(s string) { f.Buffer.Reset(); f.Buffer.WriteString(s) }

func TestPoolPutForeignBuffer(t *testing.T) {
	assert.NotPanics(t, func() { Default.Put(&foreignBuffer{}) })
}

func TestPoolConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := Default.Get()
			buf.WriteString("concurrent")
			assert.Equal(t, "concurrent", buf.String())
			buf.Reset()
			Default.Put(buf)
		}()
	}
	wg.Wait()
}
