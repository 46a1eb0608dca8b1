// File: pump/pump.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Blocking copy loops between a ByteStream and io endpoints. Each loop
// is meant to run on its own goroutine, one side of the stream per
// goroutine.

package pump

import (
	"io"

	"github.com/momentics/bytering/api"
	"github.com/momentics/bytering/internal/concurrency"
)

// FromReader copies src into dst until EOF, then declares end-of-
// stream. A source failure is relayed to dst so the consumer observes
// the same error instead of a silent truncation. Returns the number of
// bytes written into dst and the first error encountered.
func FromReader(dst api.ByteStream, src io.Reader, opts ...Option) (int64, error) {
	o := newOptions(opts)
	if o.pinCPU >= 0 {
		if err := concurrency.PinCurrentThread(o.pinCPU); err == nil {
			defer concurrency.UnpinCurrentThread()
		}
	}
	buf, release := o.scratch()
	defer release(buf)

	var total int64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			total += int64(w)
			if werr != nil {
				return total, werr
			}
		}
		if err == io.EOF {
			dst.DoneWriting()
			return total, nil
		}
		if err != nil {
			dst.RelayError(err)
			dst.DoneWriting()
			return total, err
		}
	}
}

// ToWriter drains src into dst until end-of-data. A relayed producer
// error or disposal surfaces as the returned error. Returns the number
// of bytes written to dst.
func ToWriter(dst io.Writer, src api.ByteStream, opts ...Option) (int64, error) {
	o := newOptions(opts)
	if o.pinCPU >= 0 {
		if err := concurrency.PinCurrentThread(o.pinCPU); err == nil {
			defer concurrency.UnpinCurrentThread()
		}
	}
	buf, release := o.scratch()
	defer release(buf)

	var total int64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			total += int64(w)
			if werr != nil {
				return total, werr
			}
			if w < n {
				return total, io.ErrShortWrite
			}
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
