//go:build !unix

package mmfile

import "io"

// Map reads the entire file when mmap is not available.
func Map(path string, limit int64) ([]byte, func() error, error) {
	f, size, err := statLimit(path, limit)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, nil, err
	}
	return data, noop, nil
}
