// File: ring/ctx.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Context-aware Read/Write variants. Cancellation wakes the blocked
// wait and fails with ctx.Err() without disposing the buffer, so it
// stays usable by other goroutines.

package ring

import "context"

// WriteContext behaves like Write but also unblocks when ctx is
// cancelled or its deadline passes, returning ctx.Err(). Bytes copied
// before cancellation stay in the ring; the returned count reports
// them.
func (b *Buffer) WriteContext(ctx context.Context, p []byte) (int, error) {
	if ctx.Done() != nil {
		stop := context.AfterFunc(ctx, b.wake)
		defer stop()
	}
	return b.write(ctx, p)
}

// ReadContext behaves like Read but also unblocks when ctx is
// cancelled or its deadline passes, returning ctx.Err().
func (b *Buffer) ReadContext(ctx context.Context, p []byte) (int, error) {
	if ctx.Done() != nil {
		stop := context.AfterFunc(ctx, b.wake)
		defer stop()
	}
	return b.read(ctx, p)
}

// wake broadcasts both conditions so cancelled waiters re-check their
// predicates. Taking the lock closes the race between a waiter's last
// ctx check and its Wait.
func (b *Buffer) wake() {
	b.mu.Lock()
	b.dataAvail.Broadcast()
	b.spaceAvail.Broadcast()
	b.mu.Unlock()
}
