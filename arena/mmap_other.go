//go:build !linux
// +build !linux

package arena

func mmapBlock(size int) ([]byte, bool) {
	return nil, false
}

func munmapBlock(buf []byte) {
}
