// File: pool/bytepool_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytePoolHandsOutRequestedSize(t *testing.T) {
	bp := NewBytePool(1024)
	buf := bp.GetBuffer()
	require.Len(t, buf, 1024)
	assert.Equal(t, 1024, bp.Size())
	bp.PutBuffer(buf)
}

func TestBytePoolDefaultSize(t *testing.T) {
	bp := NewBytePool(0)
	assert.Equal(t, 32*1024, bp.Size())
	require.Len(t, bp.GetBuffer(), 32*1024)
}

func TestBytePoolRejectsWrongSize(t *testing.T) {
	bp := NewBytePool(64)
	bp.PutBuffer(make([]byte, 32)) // silently dropped
	require.Len(t, bp.GetBuffer(), 64)
}

func TestBytePoolReuse(t *testing.T) {
	bp := NewBytePool(128)
	buf := bp.GetBuffer()
	buf[0] = 0xAA
	bp.PutBuffer(buf)
	// Reused or fresh, the slice must always have the pool's size.
	again := bp.GetBuffer()
	require.Len(t, again, 128)
}
