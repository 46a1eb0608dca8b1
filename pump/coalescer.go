// File: pump/coalescer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Write-side batching: many small writes become one stream write once
// enough bytes accumulate. NOT thread-safe; it belongs to the single
// producer goroutine, like the stream's write half itself.

package pump

import (
	"io"

	"github.com/eapache/queue"

	"github.com/momentics/bytering/api"
)

const defaultFlushSize = 4 * 1024

// Ensure compile-time interface compliance.
var _ io.WriteCloser = (*Coalescer)(nil)

// Coalescer accumulates small writes in a FIFO of chunks and forwards
// them to the stream as one write once flushSize bytes are pending.
// Blocking happens only inside Flush, when the batched write meets the
// stream's backpressure.
type Coalescer struct {
	dst       api.ByteStream
	flushSize int
	pending   *queue.Queue // of []byte, oldest first
	buffered  int
}

// NewCoalescer wraps dst with write-side batching. Non-positive
// flushSize falls back to a 4 KiB default.
func NewCoalescer(dst api.ByteStream, flushSize int) *Coalescer {
	if flushSize <= 0 {
		flushSize = defaultFlushSize
	}
	return &Coalescer{
		dst:       dst,
		flushSize: flushSize,
		pending:   queue.New(),
	}
}

// Buffered returns the number of bytes pending, not yet written to the
// stream.
func (c *Coalescer) Buffered() int { return c.buffered }

// Write queues p and flushes to the stream once the pending total
// reaches the flush threshold. p is copied; the caller may reuse it.
func (c *Coalescer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	chunk := make([]byte, len(p))
	copy(chunk, p)
	c.pending.Add(chunk)
	c.buffered += len(chunk)
	if c.buffered >= c.flushSize {
		if err := c.Flush(); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// Flush writes all pending chunks to the stream as a single write.
func (c *Coalescer) Flush() error {
	if c.buffered == 0 {
		return nil
	}
	out := make([]byte, 0, c.buffered)
	for c.pending.Length() > 0 {
		out = append(out, c.pending.Remove().([]byte)...)
	}
	c.buffered = 0
	_, err := c.dst.Write(out)
	return err
}

// Close flushes pending bytes and declares end-of-stream on the
// underlying ByteStream.
func (c *Coalescer) Close() error {
	if err := c.Flush(); err != nil {
		return err
	}
	c.dst.DoneWriting()
	return nil
}
