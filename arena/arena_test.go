package arena

import (
	"testing"

	"github.com/lni/goutils/leaktest"
	"github.com/stretchr/testify/assert"
)

func TestAlloc(t *testing.T) {
	defer leaktest.AfterTest(t)()

	a := New()
	defer a.Close()

	v1 := a.Alloc(8)
	v2 := a.Alloc(8)
	assert.Equal(t, 8, len(v1))
	assert.Equal(t, 8, len(v2))

	for i := range v1 {
		v1[i] = 1
	}
	for i := range v2 {
		v2[i] = 2
	}
	for i := range v1 {
		assert.Equal(t, byte(1), v1[i])
	}
}

func TestAllocSpansBlocks(t *testing.T) {
	a := New(WithBlockSize(64))
	defer a.Close()

	for i := 0; i < 100; i++ {
		v := a.Alloc(48)
		assert.Equal(t, 48, len(v))
	}
	assert.True(t, len(a.blocks) > 0)
}

func TestAllocLarge(t *testing.T) {
	a := New()
	defer a.Close()

	v := a.Alloc(defaultBlockSize * 2)
	assert.Equal(t, defaultBlockSize*2, len(v))

	v[0] = 1
	v[len(v)-1] = 2
	assert.Equal(t, byte(1), v[0])
	assert.Equal(t, byte(2), v[len(v)-1])
}

func TestAllocMapped(t *testing.T) {
	a := New()
	defer a.Close()

	v := a.Alloc(mmapThreshold)
	assert.Equal(t, mmapThreshold, len(v))

	v[0] = 1
	v[len(v)-1] = 2
	assert.Equal(t, byte(1), v[0])
	assert.Equal(t, byte(2), v[len(v)-1])
}

func TestReset(t *testing.T) {
	a := New(WithBlockSize(64))
	defer a.Close()

	for i := 0; i < 10; i++ {
		a.Alloc(48)
	}
	a.Alloc(1024)
	a.Reset()

	assert.Equal(t, 0, len(a.blocks))
	assert.Equal(t, 0, len(a.mapped))
	assert.Equal(t, 0, a.offset)
	assert.NotNil(t, a.current)

	v := a.Alloc(48)
	assert.Equal(t, 48, len(v))
}

func TestClose(t *testing.T) {
	a := New()
	a.Alloc(16)
	a.Close()

	assert.Nil(t, a.current)
	assert.Equal(t, 0, len(a.blocks))

	// the arena allocates fresh blocks after Close
	v := a.Alloc(16)
	assert.Equal(t, 16, len(v))
	a.Close()
}

func TestBlockCacheReuse(t *testing.T) {
	for blockCache.blocks.Length() > 0 {
		blockCache.blocks.Remove()
	}

	a := New()
	a.Alloc(16)
	a.Close()
	assert.Equal(t, 1, blockCache.blocks.Length())

	b := New()
	b.Alloc(16)
	assert.Equal(t, 0, blockCache.blocks.Length())
	b.Close()
}
