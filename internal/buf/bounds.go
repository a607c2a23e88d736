package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative values, returning ok = false when
// either operand is negative or the product would overflow int.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// Fits reports whether count elements of elemSize bytes fit in avail bytes.
// The returned total is the implied consumption, or math.MaxInt when the
// product overflows, so callers can report what a corrupt count asked for.
//
//	total, ok := buf.Fits(remaining, int(count), entrySize)
//	if !ok {
//	    // count is inconsistent with the buffer
//	}
func Fits(avail, count, elemSize int) (int, bool) {
	total, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return math.MaxInt, false
	}
	return total, total <= avail
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}
