//go:build windows

package tabtok

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// platformHandle retains the CreateFileMapping handle alongside the file
// handle, per the reference implementation's Windows-specific note: the
// mapping handle must outlive MapViewOfFile and be closed separately from
// the file handle.
type platformHandle struct {
	mapping windows.Handle
}

func mapFile(f *os.File, size int64) ([]byte, platformHandle, error) {
	mapping, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		return nil, platformHandle{}, err
	}

	addr, err := windows.MapViewOfFile(mapping, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		_ = windows.CloseHandle(mapping)
		return nil, platformHandle{}, err
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(size))
	return data, platformHandle{mapping: mapping}, nil
}

func unmapFile(data []byte, ph platformHandle) error {
	addr := uintptr(unsafe.Pointer(&data[0]))
	if err := windows.UnmapViewOfFile(addr); err != nil {
		return err
	}
	return windows.CloseHandle(ph.mapping)
}
