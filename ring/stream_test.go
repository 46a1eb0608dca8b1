// File: ring/stream_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/bytering/api"
)

func TestWriterCloseMeansEndOfStream(t *testing.T) {
	b, err := New(16)
	require.NoError(t, err)

	w := b.Writer()
	_, err = w.Write([]byte("tail"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := io.ReadAll(b.Reader())
	require.NoError(t, err)
	require.Equal(t, "tail", string(data))
}

func TestReaderCloseDisposes(t *testing.T) {
	b, err := New(16)
	require.NoError(t, err)
	_, err = b.Write([]byte("stranded"))
	require.NoError(t, err)

	require.NoError(t, b.Reader().Close())

	_, err = b.Write([]byte{1})
	require.ErrorIs(t, err, api.ErrDisposed)
	_, err = b.Read(make([]byte, 1))
	require.ErrorIs(t, err, api.ErrDisposed)
}

func TestIoCopyThroughBuffer(t *testing.T) {
	src := make([]byte, 512*1024)
	rand.New(rand.NewSource(5)).Read(src)

	b, err := New(4096)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w := b.Writer()
		if _, err := io.Copy(w, bytes.NewReader(src)); err != nil {
			t.Errorf("copy in: %v", err)
		}
		_ = w.Close()
	}()

	var dst bytes.Buffer
	_, err = io.Copy(&dst, b.Reader())
	require.NoError(t, err)
	wg.Wait()

	require.True(t, bytes.Equal(src, dst.Bytes()), "round trip corrupted data")
}

func TestRelayedErrorReachesStreamReader(t *testing.T) {
	boom := errors.New("upstream failed")
	b, err := New(16)
	require.NoError(t, err)

	b.RelayError(boom)
	_, err = io.ReadAll(b.Reader())
	require.ErrorIs(t, err, boom)
}
