//go:build !mempool
// +build !mempool

package memkit

import (
	"sync/atomic"
)

// Allocate returns a block of size bytes from the Go runtime, the ownership
// transfers to the caller. If the allocation cannot be satisfied, the
// out-of-memory handler runs and Allocate does not return.
func Allocate(size int) []byte {
	buf := sysAllocate(size)
	atomic.AddInt64(&numBytes, int64(size))
	return buf
}

// Free releases a block obtained from Allocate back to the garbage collector.
func Free(buf []byte) {
	if buf == nil {
		return
	}
	atomic.AddInt64(&numBytes, -int64(len(buf)))
}
