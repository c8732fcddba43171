package arena

import (
	"golang.org/x/sys/unix"
)

func mmapBlock(size int) ([]byte, bool) {
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, false
	}
	return buf, true
}

func munmapBlock(buf []byte) {
	// munmap of a mapping returned by mmapBlock cannot fail
	_ = unix.Munmap(buf)
}
