// Package mmap provides read-only memory mapping of files, with a plain
// read fallback on platforms without mmap support.
package mmap

import "os"

// Mapping is a read-only view of a file's contents.
type Mapping struct {
	data   []byte
	mapped bool
}

// Bytes returns the underlying byte slice.
// The slice is valid until the Mapping is closed.
func (m *Mapping) Bytes() []byte { return m.data }

// Open maps the file at path for reading.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if st.Size() == 0 {
		return &Mapping{}, nil
	}

	return openMapping(f, int(st.Size()))
}

// Close releases the mapping. The slice returned by Bytes must not be used
// afterwards.
func (m *Mapping) Close() error {
	if !m.mapped {
		m.data = nil
		return nil
	}
	data := m.data
	m.data = nil
	m.mapped = false
	return munmap(data)
}
