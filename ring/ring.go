// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer is a fixed-capacity circular byte buffer shared between
// producer and consumer goroutines. Monitor discipline throughout:
// every waiter re-checks its predicate after wake, wakeups are never
// delivered by interrupting a goroutine.

package ring

import (
	"context"
	"io"
	"sync"

	"github.com/momentics/bytering/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.ByteStream = (*Buffer)(nil)
	_ io.ReadWriter  = (*Buffer)(nil)
)

// Buffer is a bounded FIFO byte pipe. Writers block while the ring is
// full until a reader frees space; readers block while it is empty
// until a writer supplies data, the producer declares end-of-stream,
// an error is relayed, or the buffer is disposed.
//
// Safe for any number of concurrent producers and consumers. FIFO byte
// order is guaranteed; servicing order between concurrent waiters is
// not.
type Buffer struct {
	mu         sync.Mutex
	dataAvail  *sync.Cond // wakes readers: bytes written, done, relay, dispose
	spaceAvail *sync.Cond // wakes writers: bytes read, dispose

	buf      []byte
	readPos  int // next byte to read, in [0, cap)
	writePos int // next free slot, in [0, cap)
	count    int // unread bytes; tracked explicitly since full == empty by cursors alone

	doneWriting bool
	relayed     error
	disposed    bool
}

// New creates a Buffer with the given capacity in bytes.
func New(capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, api.ErrInvalidCapacity
	}
	b := &Buffer{buf: make([]byte, capacity)}
	b.dataAvail = sync.NewCond(&b.mu)
	b.spaceAvail = sync.NewCond(&b.mu)
	return b, nil
}

// Cap returns the fixed capacity. Immutable, safe without the lock.
func (b *Buffer) Cap() int { return len(b.buf) }

// Len returns the number of unread bytes currently buffered.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Write copies all of p into the ring, blocking whenever the ring is
// full. Writes larger than the capacity are consumed in chunks as
// readers free space. Returns len(p) on success. Writing an empty
// slice is a successful no-op.
//
// Returns api.ErrWriterDone after DoneWriting and api.ErrDisposed
// after Dispose; in either case the count of bytes already copied is
// reported.
func (b *Buffer) Write(p []byte) (int, error) {
	return b.write(context.Background(), p)
}

func (b *Buffer) write(ctx context.Context, p []byte) (int, error) {
	written := 0
	for {
		b.mu.Lock()
		if b.disposed {
			b.mu.Unlock()
			return written, api.ErrDisposed
		}
		if b.doneWriting {
			b.mu.Unlock()
			return written, api.ErrWriterDone
		}
		if err := ctx.Err(); err != nil {
			b.mu.Unlock()
			return written, err
		}
		if written == len(p) {
			b.mu.Unlock()
			return written, nil
		}
		for b.count == len(b.buf) && !b.disposed {
			if err := ctx.Err(); err != nil {
				b.mu.Unlock()
				return written, err
			}
			b.spaceAvail.Wait()
		}
		if b.disposed {
			b.mu.Unlock()
			return written, api.ErrDisposed
		}
		if b.doneWriting {
			b.mu.Unlock()
			return written, api.ErrWriterDone
		}

		// Cap the chunk at free space, then at the array boundary; a
		// later iteration picks up the wrapped remainder.
		chunk := len(p) - written
		if free := len(b.buf) - b.count; chunk > free {
			chunk = free
		}
		if tail := len(b.buf) - b.writePos; chunk > tail {
			chunk = tail
		}
		copy(b.buf[b.writePos:b.writePos+chunk], p[written:written+chunk])
		b.writePos = (b.writePos + chunk) % len(b.buf)
		b.count += chunk
		written += chunk

		b.dataAvail.Signal()
		b.mu.Unlock()
	}
}

// Read copies up to len(p) bytes out of the ring, blocking while it is
// empty and no terminal condition holds. Partial reads are normal: a
// single call never loops to fill p.
//
// Returns io.EOF once DoneWriting was called and the ring is drained.
// A relayed error is returned on every call, ahead of buffered data.
// After Dispose every call returns api.ErrDisposed.
func (b *Buffer) Read(p []byte) (int, error) {
	return b.read(context.Background(), p)
}

func (b *Buffer) read(ctx context.Context, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.count == 0 && !b.doneWriting && b.relayed == nil && !b.disposed {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		b.dataAvail.Wait()
	}
	switch {
	case b.disposed:
		return 0, api.ErrDisposed
	case b.relayed != nil:
		return 0, b.relayed
	case b.count == 0:
		// doneWriting with the ring drained.
		return 0, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	chunk := len(p)
	if chunk > b.count {
		chunk = b.count
	}
	if tail := len(b.buf) - b.readPos; chunk > tail {
		chunk = tail
	}
	copy(p, b.buf[b.readPos:b.readPos+chunk])
	b.readPos = (b.readPos + chunk) % len(b.buf)
	b.count -= chunk

	b.spaceAvail.Signal()
	return chunk, nil
}

// ReadByte reads a single byte, blocking like Read. End-of-data is
// reported as io.EOF.
func (b *Buffer) ReadByte() (byte, error) {
	var one [1]byte
	n, err := b.Read(one[:])
	if n == 1 {
		return one[0], nil
	}
	return 0, err
}

// WriteByte writes a single byte, blocking like Write.
func (b *Buffer) WriteByte(c byte) error {
	one := [1]byte{c}
	_, err := b.Write(one[:])
	return err
}

// DoneWriting declares a clean end-of-stream: no further writes are
// accepted and readers observe io.EOF once the ring drains. Wakes any
// reader blocked waiting for more bytes. Idempotent.
func (b *Buffer) DoneWriting() {
	b.mu.Lock()
	if !b.doneWriting {
		b.doneWriting = true
		b.dataAvail.Broadcast()
	}
	b.mu.Unlock()
}

// RelayError records a producer-side failure so it surfaces on the
// consumer side instead of silently truncating the stream. The error
// is sticky: every subsequent Read returns it. Only the first error is
// retained; later calls are ignored. A nil error is a no-op.
func (b *Buffer) RelayError(err error) {
	if err == nil {
		return
	}
	b.mu.Lock()
	if b.relayed == nil {
		b.relayed = err
		b.dataAvail.Broadcast()
	}
	b.mu.Unlock()
}

// Dispose permanently tears down the buffer. All blocked producers and
// consumers wake and fail with api.ErrDisposed, regardless of buffered
// data still in flight. Dispose never blocks and is idempotent.
func (b *Buffer) Dispose() {
	b.mu.Lock()
	if !b.disposed {
		b.disposed = true
		b.dataAvail.Broadcast()
		b.spaceAvail.Broadcast()
	}
	b.mu.Unlock()
}
