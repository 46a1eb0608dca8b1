// File: pump/options.go
// Package pump defines functional options for pump loops.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pump

import "github.com/momentics/bytering/pool"

const defaultChunkSize = 32 * 1024

// Option customizes a pump loop.
type Option func(*options)

type options struct {
	chunkSize int
	pool      *pool.BytePool
	pinCPU    int // -1 means no pinning
}

func newOptions(opts []Option) options {
	o := options{chunkSize: defaultChunkSize, pinCPU: -1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithChunkSize sets the copy chunk size in bytes. Ignored when a
// BytePool is attached (the pool's slice size wins).
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithBytePool recycles copy chunks through the given pool instead of
// allocating one per pump call.
func WithBytePool(p *pool.BytePool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithPinnedCPU binds the pump's OS thread to the given CPU core for
// the duration of the loop. Pinning failures are ignored; the pump
// runs unpinned.
func WithPinnedCPU(cpu int) Option {
	return func(o *options) {
		o.pinCPU = cpu
	}
}

// scratch returns the copy buffer and its release function.
func (o *options) scratch() ([]byte, func([]byte)) {
	if o.pool != nil {
		return o.pool.GetBuffer(), o.pool.PutBuffer
	}
	return make([]byte, o.chunkSize), func([]byte) {}
}
