package memkit

import (
	"sync/atomic"
)

var numBytes int64

// NumAllocBytes returns the number of bytes currently allocated using calls to
// Allocate. The blocks could be owned by the size-class pools or by the Go
// runtime, depending upon the build flags.
func NumAllocBytes() int64 {
	return atomic.LoadInt64(&numBytes)
}

// Copy copies size bytes from src to dst and returns dst. dst and src must not
// overlap, and both must have at least size bytes. Violations are not checked
// beyond what the runtime enforces.
func Copy(dst, src []byte, size int) []byte {
	if size == 0 {
		return dst
	}
	copy(dst, src[:size])
	return dst
}

// HandleOutOfMemory terminates the process when an allocation request cannot
// be satisfied. It never returns.
func HandleOutOfMemory() {
	logger.Fatal("out of memory")
	// not reached unless a fatal hook suppressed the exit
	panic("memkit: out of memory")
}

// sysAllocate allocates from the Go runtime, routing failures to the
// out-of-memory handler.
func sysAllocate(size int) []byte {
	buf, ok := tryAllocate(size)
	if !ok {
		HandleOutOfMemory()
	}
	return buf
}

func tryAllocate(size int) (buf []byte, ok bool) {
	defer func() {
		if recover() != nil {
			buf, ok = nil, false
		}
	}()
	return make([]byte, size), true
}
