// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values used across the bytering library.

package api

import "fmt"

// Errors returned by ByteStream implementations. Match with errors.Is.
var (
	// ErrInvalidCapacity indicates a non-positive capacity at construction.
	ErrInvalidCapacity = fmt.Errorf("capacity must be positive")

	// ErrWriterDone indicates a write was attempted after DoneWriting.
	ErrWriterDone = fmt.Errorf("writer already marked done")

	// ErrDisposed indicates the stream was disposed; it is returned to
	// every blocked or future Read/Write call after Dispose.
	ErrDisposed = fmt.Errorf("byte stream is disposed")
)
