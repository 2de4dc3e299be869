//go:build !windows

package tabtok

import (
	"os"
	"syscall"
)

// platformHandle carries no extra state on unix: syscall.Munmap only
// needs the mapped slice itself to unmap it.
type platformHandle struct{}

func mapFile(f *os.File, size int64) ([]byte, platformHandle, error) {
	data, err := syscall.Mmap(int(f.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, platformHandle{}, err
	}
	return data, platformHandle{}, nil
}

func unmapFile(data []byte, _ platformHandle) error {
	return syscall.Munmap(data)
}
