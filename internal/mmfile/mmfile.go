// Package mmfile loads capture files (raw property blobs saved to disk) for
// parsing. On unix the file is mapped read-only; elsewhere it is read whole.
package mmfile

import (
	"errors"
	"fmt"
	"os"
)

// ErrTooLarge is returned when a file exceeds the caller's size cap.
var ErrTooLarge = errors.New("mmfile: file exceeds size limit")

func noop() error { return nil }

// statLimit opens path and checks its size against limit (0 = no limit).
func statLimit(path string, limit int64) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	size := info.Size()
	if limit > 0 && size > limit {
		f.Close()
		return nil, 0, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrTooLarge, path, size, limit)
	}
	return f, size, nil
}
