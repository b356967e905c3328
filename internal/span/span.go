// Package span implements the borrowed-view primitives the scanners use.
//
// A span never owns memory. Every helper takes the source buffer the span
// indexes into and returns new spans; none of them allocate.
package span

import (
	"bytes"

	"github.com/joshuapare/tscnkit/pkg/types"
)

// Span is re-exported so scanner code can stay terse.
type Span = types.Span

// None is the absent span.
var None = Span{Off: -1}

// New returns the span [beg, end). A negative beg yields None regardless of end.
func New(beg, end int) Span {
	if beg < 0 {
		return None
	}
	return Span{Off: beg, Len: end - beg}
}

// Whole spans all of src.
func Whole(src []byte) Span {
	return Span{Off: 0, Len: len(src)}
}

// Substring advances s by i bytes. i must lie in [0, s.Len]; it is not checked.
func Substring(s Span, i int) Span {
	if i != 0 {
		s.Off += i
		s.Len -= i
	}
	return s
}

// TrimLeft drops leading bytes <= ' '.
func TrimLeft(src []byte, s Span) Span {
	for s.Len > 0 && src[s.Off] <= ' ' {
		s.Off++
		s.Len--
	}
	return s
}

// TrimRight drops trailing bytes <= ' '.
func TrimRight(src []byte, s Span) Span {
	for s.Len > 0 && src[s.Off+s.Len-1] <= ' ' {
		s.Len--
	}
	return s
}

// Trim applies TrimLeft then TrimRight.
func Trim(src []byte, s Span) Span {
	return TrimRight(src, TrimLeft(src, s))
}

// Equal compares two spans of the same buffer byte for byte. Zero-length
// spans are equal wherever they point.
func Equal(src []byte, a, b Span) bool {
	if a.Len != b.Len {
		return false
	}
	if a.Len == 0 {
		return true
	}
	return bytes.Equal(src[a.Off:a.End()], src[b.Off:b.End()])
}

// EqualString compares s against a literal.
func EqualString(src []byte, s Span, lit string) bool {
	if s.Len != len(lit) {
		return false
	}
	if s.Len == 0 {
		return true
	}
	return string(src[s.Off:s.End()]) == lit
}

// Bytes returns the bytes s covers, or nil for an absent span.
func Bytes(src []byte, s Span) []byte {
	return s.Bytes(src)
}

// First returns the first byte of s and whether s is non-empty.
func First(src []byte, s Span) (byte, bool) {
	if s.Len <= 0 {
		return 0, false
	}
	return src[s.Off], true
}

// Parts is the result of a cut. Tail excludes the separator.
type Parts struct {
	Head Span
	Tail Span
	OK   bool
}

// Cut splits s at the first c. OK reports whether c was found; when it was
// not, Head is all of s and Tail is empty. A zero-length s returns absent
// Head and Tail without touching src.
func Cut(src []byte, s Span, c byte) Parts {
	if s.Len == 0 {
		return Parts{Head: None, Tail: None}
	}
	beg, end := s.Off, s.End()
	at := bytes.IndexByte(src[beg:end], c)
	if at < 0 {
		return Parts{Head: New(beg, end), Tail: New(end, end)}
	}
	at += beg
	return Parts{Head: New(beg, at), Tail: New(at+1, end), OK: true}
}

// CutEither splits s at the first byte equal to c0 or c1. Unlike Cut, a miss
// returns absent Head and Tail.
func CutEither(src []byte, s Span, c0, c1 byte) Parts {
	if s.Len == 0 {
		return Parts{Head: None, Tail: None}
	}
	beg, end := s.Off, s.End()
	for i := beg; i < end; i++ {
		if src[i] == c0 || src[i] == c1 {
			return Parts{Head: New(beg, i), Tail: New(i+1, end), OK: true}
		}
	}
	return Parts{Head: None, Tail: None}
}
