package alloc

import "github.com/joshuapare/tscnkit/pkg/types"

// Fixed serves allocations from chunk and pair pools reserved once up front.
// Frees are ignored; Reset reclaims both pools at once.
type Fixed struct {
	chunks []types.Chunk
	pairs  []types.Pair

	chunkSlab *Slab[types.Chunk]
	pairSlab  *Slab[types.Pair]
}

// NewFixed reserves room for maxChunks chunks and maxPairs pairs.
func NewFixed(maxChunks, maxPairs int) *Fixed {
	if maxChunks < 0 {
		maxChunks = 0
	}
	if maxPairs < 0 {
		maxPairs = 0
	}
	f := &Fixed{
		chunks: make([]types.Chunk, maxChunks),
		pairs:  make([]types.Pair, maxPairs),
	}
	f.Reset()
	return f
}

// AllocChunks carves n chunks from the chunk pool, or returns nil.
func (f *Fixed) AllocChunks(n int) []types.Chunk {
	block, ok := f.chunkSlab.Take(n)
	if !ok {
		return nil
	}
	return block
}

// AllocPairs carves n pairs from the pair pool, or returns nil.
func (f *Fixed) AllocPairs(n int) []types.Pair {
	block, ok := f.pairSlab.Take(n)
	if !ok {
		return nil
	}
	return block
}

func (f *Fixed) FreeChunks([]types.Chunk) {}

func (f *Fixed) FreePairs([]types.Pair) {}

// Reset makes both pools fully available again. Documents loaded earlier
// must not be used afterwards.
func (f *Fixed) Reset() {
	f.chunkSlab = NewSlab(f.chunks)
	f.pairSlab = NewSlab(f.pairs)
}

// Available returns how many chunks and pairs can still be handed out.
func (f *Fixed) Available() (chunks, pairs int) {
	return f.chunkSlab.Cap() - f.chunkSlab.Len(), f.pairSlab.Cap() - f.pairSlab.Len()
}
