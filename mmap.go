package tabtok

import "os"

// MappedFile memory-maps a file read-only and exposes the mapping as a
// byte slice suitable for Tokenizer.SetSource. It is a convenience for
// the caller, not part of the core state machine: the tokenizer never
// knows or cares whether its source came from a mapping, a string, or an
// in-memory buffer.
type MappedFile struct {
	Data []byte

	file *os.File
	ph   platformHandle
}

// OpenMappedFile opens name and maps its full contents read-only. An
// empty file maps to a nil Data slice rather than erroring.
func OpenMappedFile(name string) (*MappedFile, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if info.Size() == 0 {
		return &MappedFile{file: f}, nil
	}

	data, ph, err := mapFile(f, info.Size())
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &MappedFile{Data: data, file: f, ph: ph}, nil
}

// Close unmaps the file (if mapped) and releases the OS file handle. On
// Windows this also releases the retained mapping handle.
func (m *MappedFile) Close() error {
	var err error
	if len(m.Data) > 0 {
		err = unmapFile(m.Data, m.ph)
	}
	if cerr := m.file.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
