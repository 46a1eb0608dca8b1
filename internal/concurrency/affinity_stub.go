// File: internal/concurrency/affinity_stub.go
//go:build !linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub affinity implementation for platforms without sched_setaffinity.

package concurrency

// PinCurrentThread reports affinity as unsupported on this platform.
func PinCurrentThread(cpu int) error {
	return ErrAffinityNotSupported
}

// UnpinCurrentThread is a no-op on this platform.
func UnpinCurrentThread() {}
