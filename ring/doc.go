// Package ring
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Blocking bounded circular byte buffer with stream semantics.
// A single mutex guards all cursor and flag state; two condition
// variables implement the producer/consumer wait protocol with
// backpressure. See ring.go for the core, ctx.go for cancellable
// variants, stream.go for io.ReadCloser/io.WriteCloser views.
package ring
