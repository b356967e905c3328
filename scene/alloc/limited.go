package alloc

import (
	"unsafe"

	"github.com/joshuapare/tscnkit/internal/buf"
	"github.com/joshuapare/tscnkit/pkg/types"
)

var (
	chunkSize = int(unsafe.Sizeof(types.Chunk{}))
	pairSize  = int(unsafe.Sizeof(types.Pair{}))
)

// Limited forwards to Inner while the bytes outstanding stay within Budget.
type Limited struct {
	Inner  types.Allocator
	Budget int

	used int
}

// NewLimited wraps inner (Default when nil) with a byte budget.
func NewLimited(inner types.Allocator, budget int) *Limited {
	if inner == nil {
		inner = Default
	}
	return &Limited{Inner: inner, Budget: budget}
}

// Used returns the bytes currently outstanding.
func (l *Limited) Used() int { return l.used }

func (l *Limited) reserve(n, size int) (int, bool) {
	need, ok := buf.MulOverflowSafe(n, size)
	if !ok {
		return 0, false
	}
	total, ok := buf.AddOverflowSafe(l.used, need)
	if !ok || total > l.Budget {
		return 0, false
	}
	return need, true
}

func (l *Limited) AllocChunks(n int) []types.Chunk {
	need, ok := l.reserve(n, chunkSize)
	if !ok {
		return nil
	}
	block := l.Inner.AllocChunks(n)
	if block != nil {
		l.used += need
	}
	return block
}

func (l *Limited) AllocPairs(n int) []types.Pair {
	need, ok := l.reserve(n, pairSize)
	if !ok {
		return nil
	}
	block := l.Inner.AllocPairs(n)
	if block != nil {
		l.used += need
	}
	return block
}

func (l *Limited) FreeChunks(b []types.Chunk) {
	l.used -= len(b) * chunkSize
	l.Inner.FreeChunks(b)
}

func (l *Limited) FreePairs(b []types.Pair) {
	l.used -= len(b) * pairSize
	l.Inner.FreePairs(b)
}
