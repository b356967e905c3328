package alloc

import "errors"

var (
	// ErrNoSpace indicates the region cannot fit the requested block.
	ErrNoSpace = errors.New("alloc: region exhausted")

	// ErrBadAlign indicates an alignment that is not a positive power of two.
	ErrBadAlign = errors.New("alloc: alignment must be a power of two")
)
