// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for concurrency helpers.

package concurrency

import "errors"

var (
	// ErrAffinityNotSupported indicates CPU affinity is not supported on this platform
	ErrAffinityNotSupported = errors.New("CPU affinity not supported")

	// ErrInvalidCPU indicates a negative or out-of-range CPU index
	ErrInvalidCPU = errors.New("invalid CPU index")
)
