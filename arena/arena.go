package arena

import (
	"github.com/fagongzi/memkit"
)

const (
	// defaultBlockSize size of the standard arena block
	defaultBlockSize = 8 * 1024
	// mmapThreshold requests at least this large are mapped directly from the
	// OS on platforms that support it
	mmapThreshold = 1 << 20
)

// Option arena option
type Option func(*Arena)

// WithBlockSize set the size of the blocks the arena carves chunks from.
// Requests larger than the block size get a dedicated block.
func WithBlockSize(blockSize int) Option {
	return func(a *Arena) {
		a.options.blockSize = blockSize
	}
}

// Arena carves many small chunks out of large blocks and releases them all at
// once. Chunks must not be freed individually, they live until Reset or Close.
// An Arena is not safe for concurrent use.
type Arena struct {
	current []byte
	offset  int
	blocks  [][]byte // full blocks and dedicated blocks, excluding current
	mapped  [][]byte // blocks mapped directly from the OS

	options struct {
		blockSize int
	}
}

// New create an arena with options
func New(opts ...Option) *Arena {
	a := &Arena{}
	for _, opt := range opts {
		opt(a)
	}
	a.adjust()
	return a
}

func (a *Arena) adjust() {
	if a.options.blockSize == 0 {
		a.options.blockSize = defaultBlockSize
	}
}

// Alloc returns a chunk of n bytes that lives until Reset or Close is called
// on the arena. The contents of the chunk are unspecified, blocks may be
// reused.
func (a *Arena) Alloc(n int) []byte {
	if n > a.options.blockSize {
		return a.allocLarge(n)
	}
	if a.current == nil || a.options.blockSize-a.offset < n {
		a.grow()
	}
	buf := a.current[a.offset : a.offset+n : a.offset+n]
	a.offset += n
	return buf
}

func (a *Arena) allocLarge(n int) []byte {
	if n >= mmapThreshold {
		if buf, ok := mmapBlock(n); ok {
			a.mapped = append(a.mapped, buf)
			return buf[:n:n]
		}
	}
	buf := memkit.Allocate(n)
	a.blocks = append(a.blocks, buf)
	return buf
}

func (a *Arena) grow() {
	if a.current != nil {
		a.blocks = append(a.blocks, a.current)
	}
	var buf []byte
	if a.options.blockSize == defaultBlockSize {
		buf = getCachedBlock()
	}
	if buf == nil {
		buf = memkit.Allocate(a.options.blockSize)
	}
	a.current = buf
	a.offset = 0
}

// Reset drops all allocations. The current block is kept for reuse, all other
// blocks return to the block cache or the allocator.
func (a *Arena) Reset() {
	for _, buf := range a.blocks {
		releaseBlock(buf)
	}
	a.blocks = a.blocks[:0]
	for _, buf := range a.mapped {
		munmapBlock(buf)
	}
	a.mapped = a.mapped[:0]
	a.offset = 0
}

// Close drops all allocations and releases every block held by the arena. The
// arena can be reused after Close, it will allocate fresh blocks.
func (a *Arena) Close() {
	a.Reset()
	if a.current != nil {
		releaseBlock(a.current)
		a.current = nil
	}
}

func releaseBlock(buf []byte) {
	if cap(buf) == defaultBlockSize && putCachedBlock(buf[:cap(buf)]) {
		return
	}
	memkit.Free(buf)
}
