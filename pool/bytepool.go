// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "sync"

// BytePool recycles fixed-size byte slices. All methods are safe for
// concurrent use.
type BytePool struct {
	size int
	p    sync.Pool
}

// NewBytePool creates a pool handing out slices of exactly size bytes.
// Non-positive sizes fall back to a 32 KiB default.
func NewBytePool(size int) *BytePool {
	if size <= 0 {
		size = 32 * 1024
	}
	bp := &BytePool{size: size}
	bp.p.New = func() any { return make([]byte, bp.size) }
	return bp
}

// Size returns the length of slices this pool hands out.
func (b *BytePool) Size() int { return b.size }

// GetBuffer returns a buffer from the pool.
func (b *BytePool) GetBuffer() []byte {
	return b.p.Get().([]byte)
}

// PutBuffer returns a buffer to the pool. Slices of the wrong size are
// dropped so a resliced buffer cannot poison the pool.
func (b *BytePool) PutBuffer(buf []byte) {
	if len(buf) != b.size {
		return
	}
	b.p.Put(buf) //nolint:staticcheck // SA6002: slices here are uniform in size
}
