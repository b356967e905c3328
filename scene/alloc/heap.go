package alloc

import "github.com/joshuapare/tscnkit/pkg/types"

// Heap allocates from the Go heap. It is the allocator used when a load is
// given none.
type Heap struct{}

// Default is the allocator selected for a nil types.Allocator.
var Default types.Allocator = Heap{}

func (Heap) AllocChunks(n int) []types.Chunk {
	if n < 0 {
		return nil
	}
	return make([]types.Chunk, n)
}

func (Heap) AllocPairs(n int) []types.Pair {
	if n < 0 {
		return nil
	}
	return make([]types.Pair, n)
}

func (Heap) FreeChunks([]types.Chunk) {}

func (Heap) FreePairs([]types.Pair) {}
