package buf

import (
	"github.com/fagongzi/memkit"
)

// Allocator memory allocation for ByteBuf
type Allocator interface {
	// Allocate allocate a []byte with len(data) >= size, and the returned []byte cannot
	// be expanded in use.
	Allocate(capacity int) []byte
	// Free free the allocated memory
	Free([]byte)
}

// boundAllocator delegates to the build-selected allocation backend.
type boundAllocator struct {
}

func newBoundAllocator() Allocator {
	return &boundAllocator{}
}

func (ba *boundAllocator) Allocate(size int) []byte {
	return memkit.Allocate(size)
}

func (ba *boundAllocator) Free(buf []byte) {
	memkit.Free(buf)
}
