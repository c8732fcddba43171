package buf

import (
	"io"

	"github.com/fagongzi/memkit"
	"github.com/fagongzi/util/hack"
)

const (
	defaultMinGrowSize = 256
)

// Option bytebuf option
type Option func(*ByteBuf)

// WithAllocator set the memory allocator. When ByteBuf is initialized, it
// allocates a []byte of the size specified by capacity from the allocator.
// When ByteBuf.Close is called, the memory is freed back to the allocator.
func WithAllocator(alloc Allocator) Option {
	return func(bb *ByteBuf) {
		bb.options.alloc = alloc
	}
}

// WithMinGrowSize set minimum grow size. When there is not enough space left
// in the ByteBuf, write data needs to be expanded.
func WithMinGrowSize(minGrowSize int) Option {
	return func(bb *ByteBuf) {
		bb.options.minGrowSize = minGrowSize
	}
}

var (
	_ io.Writer = (*ByteBuf)(nil)
	_ io.Reader = (*ByteBuf)(nil)
)

// ByteBuf is a reusable buffer that holds an internal []byte and maintains 2
// indexes for read and write data.
//
// | discardable bytes  |   readable bytes   |   writeable bytes  |
// |                    |                    |                    |
// 0      <=       readerIndex    <=     writerIndex    <=     capacity
type ByteBuf struct {
	buf         []byte
	readerIndex int
	writerIndex int

	options struct {
		alloc       Allocator
		minGrowSize int
	}
}

// NewByteBuf create bytebuf with options
func NewByteBuf(capacity int, opts ...Option) *ByteBuf {
	b := &ByteBuf{}
	for _, opt := range opts {
		opt(b)
	}
	b.adjust()
	b.buf = b.options.alloc.Allocate(capacity)
	return b
}

func (b *ByteBuf) adjust() {
	if b.options.alloc == nil {
		b.options.alloc = newBoundAllocator()
	}
	if b.options.minGrowSize == 0 {
		b.options.minGrowSize = defaultMinGrowSize
	}
}

// Close close the ByteBuf, the backing memory returns to the allocator
func (b *ByteBuf) Close() {
	b.options.alloc.Free(b.buf)
	b.buf = nil
	b.readerIndex = 0
	b.writerIndex = 0
}

// Reset reset the read and write indexes, the data in the buffer is dropped
func (b *ByteBuf) Reset() {
	b.readerIndex = 0
	b.writerIndex = 0
}

// Readable returns the number of bytes available for read
func (b *ByteBuf) Readable() int {
	return b.writerIndex - b.readerIndex
}

// Writeable returns the number of bytes that can be written without growing
func (b *ByteBuf) Writeable() int {
	return len(b.buf) - b.writerIndex
}

// Grow ensure that the buffer has at least n writeable bytes, the readable
// bytes move to the front of the new block
func (b *ByteBuf) Grow(n int) {
	if b.Writeable() >= n {
		return
	}
	grow := n
	if grow < b.options.minGrowSize {
		grow = b.options.minGrowSize
	}
	readable := b.Readable()
	newBuf := b.options.alloc.Allocate(len(b.buf) + grow)
	memkit.Copy(newBuf, b.buf[b.readerIndex:], readable)
	b.options.alloc.Free(b.buf)
	b.buf = newBuf
	b.readerIndex = 0
	b.writerIndex = readable
}

// Write implements io.Writer
func (b *ByteBuf) Write(p []byte) (int, error) {
	b.Grow(len(p))
	copy(b.buf[b.writerIndex:], p)
	b.writerIndex += len(p)
	return len(p), nil
}

// WriteString write the string into the buffer without an extra copy of the
// string data
func (b *ByteBuf) WriteString(v string) {
	b.Write(hack.StringToSlice(v))
}

// WriteByte implements io.ByteWriter
func (b *ByteBuf) WriteByte(v byte) error {
	b.Grow(1)
	b.buf[b.writerIndex] = v
	b.writerIndex++
	return nil
}

// Read implements io.Reader
func (b *ByteBuf) Read(p []byte) (int, error) {
	if b.Readable() == 0 {
		return 0, io.EOF
	}
	n := copy(p, b.buf[b.readerIndex:b.writerIndex])
	b.readerIndex += n
	return n, nil
}

// ReadByte implements io.ByteReader
func (b *ByteBuf) ReadByte() (byte, error) {
	if b.Readable() == 0 {
		return 0, io.EOF
	}
	v := b.buf[b.readerIndex]
	b.readerIndex++
	return v, nil
}

// ReadBytes read n bytes from the buffer, the returned slice aliases the
// internal storage and is only valid until the next write or Close
func (b *ByteBuf) ReadBytes(n int) ([]byte, error) {
	if b.Readable() < n {
		return nil, io.ErrShortBuffer
	}
	v := b.buf[b.readerIndex : b.readerIndex+n]
	b.readerIndex += n
	return v, nil
}
