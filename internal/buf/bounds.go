// Package buf holds overflow-safe index arithmetic shared by the span and
// arena code. Everything here works on plain ints so callers can stay in
// offset space instead of holding sub-slices.
package buf

import (
	"fmt"
	"math"
)

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

// MulOverflowSafe multiplies two non-negative ints, returning ok = false on
// overflow or when either operand is negative.
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

// CheckBlock validates that count elements of elemSize bytes, preceded by pad
// bytes, fit in avail bytes. It returns the total bytes consumed.
//
//	n, err := buf.CheckBlock(end-beg, count, size, pad)
//	if err != nil {
//	    return 0, false
//	}
func CheckBlock(avail, count, elemSize, pad int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elemSize <= 0 {
		return 0, fmt.Errorf("non-positive element size: %d", elemSize)
	}
	if pad < 0 {
		return 0, fmt.Errorf("negative pad: %d", pad)
	}
	size, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}
	total, ok := AddOverflowSafe(size, pad)
	if !ok {
		return 0, fmt.Errorf("overflow: size=%d + pad=%d", size, pad)
	}
	if total > avail {
		return 0, fmt.Errorf("bounds: need=%d > avail=%d", total, avail)
	}
	return total, nil
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

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
