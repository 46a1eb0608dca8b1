// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public contracts for the bytering library: the blocking byte stream
// interface implemented by ring.Buffer, and the sentinel errors shared
// across packages.
package api
