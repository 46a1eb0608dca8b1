// File: internal/concurrency/affinity_linux.go
//go:build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pure-Go Linux affinity via sched_setaffinity. No CGO required.

package concurrency

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// PinCurrentThread locks the calling goroutine to its OS thread and
// binds that thread to the given CPU core. On success the caller must
// pair it with UnpinCurrentThread.
func PinCurrentThread(cpu int) error {
	if cpu < 0 || cpu >= runtime.NumCPU() {
		return ErrInvalidCPU
	}
	runtime.LockOSThread()
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// UnpinCurrentThread restores the full CPU mask and releases the OS
// thread back to the scheduler.
func UnpinCurrentThread() {
	var set unix.CPUSet
	set.Zero()
	for i := 0; i < runtime.NumCPU(); i++ {
		set.Set(i)
	}
	_ = unix.SchedSetaffinity(0, &set)
	runtime.UnlockOSThread()
}
