package arena

import (
	"sync"

	"github.com/eapache/queue"
)

// maxCachedBlocks bound of the shared block cache
const maxCachedBlocks = 64

// blockCache holds released standard-size blocks for reuse across arenas.
var blockCache = struct {
	sync.Mutex
	blocks *queue.Queue
}{blocks: queue.New()}

func getCachedBlock() []byte {
	blockCache.Lock()
	defer blockCache.Unlock()
	if blockCache.blocks.Length() == 0 {
		return nil
	}
	return blockCache.blocks.Remove().([]byte)
}

func putCachedBlock(buf []byte) bool {
	blockCache.Lock()
	defer blockCache.Unlock()
	if blockCache.blocks.Length() >= maxCachedBlocks {
		return false
	}
	blockCache.blocks.Add(buf)
	return true
}
