// File: ring/stream.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// io.WriteCloser / io.ReadCloser views over a Buffer, mirroring the
// two halves of io.Pipe: the producer holds the write half, the
// consumer the read half.

package ring

import "io"

// Writer returns the producer's view of the buffer. Close declares a
// clean end-of-stream (DoneWriting); it never fails.
func (b *Buffer) Writer() io.WriteCloser { return writerView{b} }

// Reader returns the consumer's view of the buffer. Close disposes
// the buffer, unblocking any stuck producer.
func (b *Buffer) Reader() io.ReadCloser { return readerView{b} }

type writerView struct{ b *Buffer }

func (w writerView) Write(p []byte) (int, error) { return w.b.Write(p) }

func (w writerView) Close() error {
	w.b.DoneWriting()
	return nil
}

type readerView struct{ b *Buffer }

func (r readerView) Read(p []byte) (int, error) { return r.b.Read(p) }

func (r readerView) Close() error {
	r.b.Dispose()
	return nil
}
