// Package api
// Author: momentics <momentics@gmail.com>
//
// Blocking byte stream contract for cross-goroutine producer/consumer.

package api

import "io"

// ByteStream is a bounded FIFO byte pipe shared between producer and
// consumer goroutines. Write blocks while the stream is full, Read
// blocks while it is empty; bytes are delivered strictly in write
// order.
//
// Read reports end-of-data as io.EOF once the producer has called
// DoneWriting and all buffered bytes are drained. An error injected
// with RelayError is sticky: once recorded it is returned by every
// subsequent Read, even ahead of buffered data. Dispose is a hard
// stop that wakes all blocked callers with ErrDisposed.
type ByteStream interface {
	io.Reader
	io.Writer
	io.ByteReader
	io.ByteWriter

	// DoneWriting declares a clean end-of-stream. Idempotent.
	DoneWriting()

	// RelayError surfaces a producer-side failure to the consumer.
	// Only the first error is retained.
	RelayError(err error)

	// Dispose permanently tears down the stream, waking both
	// directions. Idempotent.
	Dispose()

	// Cap returns the fixed capacity in bytes.
	Cap() int

	// Len returns the number of unread bytes currently buffered.
	Len() int
}
