package alloc

import (
	"unsafe"

	"github.com/joshuapare/tscnkit/internal/buf"
)

// Region is a fixed-capacity bump allocator over the byte offsets [beg, end).
// It never grows and never frees individual blocks.
type Region struct {
	beg int
	end int
}

// NewRegion returns a region covering [beg, end).
func NewRegion(beg, end int) Region {
	if end < beg {
		end = beg
	}
	return Region{beg: beg, end: end}
}

// Alloc reserves count elements of size bytes aligned to align and returns
// the offset of the block. Padding is derived from the region end, not the
// cursor, so a region whose end is aligned never pads.
func (r *Region) Alloc(count, size, align int) (int, bool) {
	off, err := r.alloc(count, size, align)
	return off, err == nil
}

func (r *Region) alloc(count, size, align int) (int, error) {
	if align <= 0 || align&(align-1) != 0 {
		return 0, ErrBadAlign
	}
	pad := r.end & (align - 1)
	n, err := buf.CheckBlock(r.end-r.beg, count, size, pad)
	if err != nil {
		return 0, ErrNoSpace
	}
	off := r.beg + pad
	r.beg += n
	return off, nil
}

// Remaining returns the bytes left between the cursor and the end.
func (r *Region) Remaining() int { return r.end - r.beg }

// Slab carves zeroed []T blocks out of a caller-owned backing slice.
type Slab[T any] struct {
	items  []T
	region Region
	size   int
	align  int
	used   int
}

// NewSlab returns a slab over items. The slab never reallocates items.
func NewSlab[T any](items []T) *Slab[T] {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		size = 1
	}
	return &Slab[T]{
		items:  items,
		region: NewRegion(0, len(items)*size),
		size:   size,
		align:  int(unsafe.Alignof(zero)),
	}
}

// Take reserves n consecutive elements. The returned block has length and
// capacity n and is zeroed. It fails without side effects when the slab
// cannot fit n more elements.
func (s *Slab[T]) Take(n int) ([]T, bool) {
	off, ok := s.region.Alloc(n, s.size, s.align)
	if !ok {
		return nil, false
	}
	i := off / s.size
	block := s.items[i : i+n : i+n]
	clear(block)
	s.used = i + n
	return block, true
}

// New reserves a single zeroed element.
func (s *Slab[T]) New() (*T, bool) {
	block, ok := s.Take(1)
	if !ok {
		return nil, false
	}
	return &block[0], true
}

// Used returns the prefix of the backing slice handed out so far.
func (s *Slab[T]) Used() []T { return s.items[:s.used:s.used] }

// Len returns the number of elements handed out so far.
func (s *Slab[T]) Len() int { return s.used }

// Cap returns the number of elements the slab was built over.
func (s *Slab[T]) Cap() int { return len(s.items) }
