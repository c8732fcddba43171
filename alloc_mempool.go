//go:build mempool
// +build mempool

package memkit

import (
	"sync"
	"sync/atomic"
)

const (
	// minClassShift smallest pooled block, 32 bytes
	minClassShift = 5
	// maxClassShift largest pooled block, 128KB
	maxClassShift = 17
	numClasses    = maxClassShift - minClassShift + 1
)

// classes are the size-class pools, classes[i] holds blocks of
// 1<<(minClassShift+i) bytes.
var classes = func() [numClasses]*sync.Pool {
	var ps [numClasses]*sync.Pool
	for i := range ps {
		size := 1 << (minClassShift + i)
		ps[i] = &sync.Pool{New: func() any {
			return sysAllocate(size)
		}}
	}
	return ps
}()

func classIndex(size int) int {
	for i := 0; i < numClasses; i++ {
		if size <= 1<<(minClassShift+i) {
			return i
		}
	}
	return -1
}

// Allocate returns a block of at least size bytes, recycled from the
// size-class pools when possible, the ownership transfers to the caller. If
// the allocation cannot be satisfied, the out-of-memory handler runs and
// Allocate does not return.
func Allocate(size int) []byte {
	atomic.AddInt64(&numBytes, int64(size))
	idx := classIndex(size)
	if idx < 0 {
		return sysAllocate(size)
	}
	return classes[idx].Get().([]byte)[:size]
}

// Free returns a block obtained from Allocate to its size-class pool. Blocks
// above the largest class are dropped for the garbage collector to reclaim.
func Free(buf []byte) {
	if buf == nil {
		return
	}
	atomic.AddInt64(&numBytes, -int64(len(buf)))
	c := cap(buf)
	idx := classIndex(c)
	if idx < 0 || 1<<(minClassShift+idx) != c {
		return
	}
	classes[idx].Put(buf[:c])
}
