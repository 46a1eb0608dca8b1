// Package concurrency
// Author: momentics <momentics@gmail.com>
//
// OS-thread affinity helpers used by pinned pump loops. Linux gets a
// pure-Go sched_setaffinity implementation; other platforms report
// affinity as unsupported.
package concurrency
