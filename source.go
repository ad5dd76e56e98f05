package wad

import (
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// loadFile maps filename read-only and copies it into a buffer owned by the caller.
// The mapping is released before returning.
func loadFile(filename string) ([]byte, error) {
	m, err := mmap.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer m.Close()

	data := make([]byte, m.Len())
	n, err := m.ReadAt(data, 0)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("read %s: truncated", filename)
	}
	return data, nil
}
