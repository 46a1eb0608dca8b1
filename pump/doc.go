// Package pump
// Author: momentics <momentics@gmail.com>
//
// Producer/consumer glue between a ByteStream and ordinary io
// endpoints. FromReader feeds a stream from an io.Reader and relays
// source failures to the consumer side; ToWriter drains a stream into
// an io.Writer. Coalescer batches small writes into larger chunks
// before they hit the stream.
package pump
