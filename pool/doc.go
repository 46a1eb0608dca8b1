// Package pool
// Author: momentics <momentics@gmail.com>
//
// Scratch-buffer pooling for copy loops. BytePool hands out fixed-size
// []byte chunks so steady-state pumping allocates nothing.
package pool
