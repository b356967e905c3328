package scene

import (
	"bytes"
	"context"

	"pkt.systems/pslog"

	"github.com/joshuapare/tscnkit/internal/scan"
	"github.com/joshuapare/tscnkit/internal/span"
	"github.com/joshuapare/tscnkit/internal/textenc"
	"github.com/joshuapare/tscnkit/pkg/types"
	"github.com/joshuapare/tscnkit/scene/alloc"
)

// Load parses src with allocator a (nil selects the heap). Quoted body
// values are unescaped in place in src.
//
// The returned document is never nil. Its OK flag is false exactly when err
// is non-nil, and a document that is not OK holds no chunks.
func Load(src []byte, a types.Allocator) (*types.Document, error) {
	opts := DefaultOptions()
	opts.Allocator = a
	return LoadContext(context.Background(), src, opts)
}

// LoadWithOptions parses src with explicit options.
func LoadWithOptions(src []byte, opts Options) (*types.Document, error) {
	return LoadContext(context.Background(), src, opts)
}

// LoadContext parses src, taking the logger from ctx when opts has none.
// The context is checked between passes; a load has no other suspension
// points.
func LoadContext(ctx context.Context, src []byte, opts Options) (*types.Document, error) {
	log := opts.Logger
	if log == nil {
		log = pslog.BCtx(ctx)
	}
	a := opts.Allocator
	if a == nil {
		a = alloc.Default
	}

	text, err := textenc.Decode(src, opts.InputEncoding)
	if err != nil {
		log.Warn("scene.load.decode", "encoding", opts.InputEncoding, "error", err)
		return &types.Document{Source: src}, err
	}
	if opts.CopySource {
		text = bytes.Clone(text)
		if text == nil {
			text = []byte{}
		}
	}

	l := &loader{ctx: ctx, src: text, sc: scan.New(text), alloc: a, log: log}
	return l.run()
}

type loader struct {
	ctx   context.Context
	src   []byte
	sc    *scan.Scanner
	alloc types.Allocator
	log   pslog.Base

	chunks []types.Chunk
	pairs  []types.Pair
	stats  types.Stats
}

func (l *loader) run() (*types.Document, error) {
	doc := &types.Document{Source: l.src}

	if err := l.count(); err != nil {
		return l.fail(doc, "count", err)
	}
	if err := l.ctx.Err(); err != nil {
		return l.fail(doc, "count", err)
	}
	if err := l.allocate(); err != nil {
		return l.fail(doc, "allocate", err)
	}
	if err := l.populate(); err != nil {
		l.release()
		return l.fail(doc, "populate", err)
	}

	doc.OK = true
	doc.Chunks = l.chunks
	doc.AllPairs = l.pairs
	doc.Stats = l.stats
	l.log.Debug("scene.load.done",
		"chunks", len(l.chunks),
		"heading_pairs", l.stats.PopulatedHeadingPairs,
		"pairs", l.stats.PopulatedPairs,
	)
	return doc, nil
}

func (l *loader) fail(doc *types.Document, phase string, err error) (*types.Document, error) {
	l.log.Warn("scene.load.failed", "phase", phase, "error", err)
	doc.Stats = l.stats
	return doc, err
}

// count sizes the two blocks. Header attributes are counted inside each
// chunk's header view as the headings are found, the same views population
// scans, so a '[' inside a body value can never skew the reservation. Body
// attributes are counted over the whole buffer, which covers every body view.
// None of the passes decodes, so population sees the same bytes.
func (l *loader) count() error {
	attrs := scan.New(l.src)
	for {
		c, ok := l.sc.NextHeading()
		if !ok {
			break
		}
		l.stats.Headings++
		n, err := drain(attrs, l.headerView(c.Source), attrs.NextHeadingPair)
		l.stats.HeadingPairs += n
		if err != nil {
			return err
		}
	}
	if l.sc.Unrecognized() {
		l.stats.Truncated = true
		l.log.Debug("scene.load.truncated", "at", l.sc.Remaining().Off, "headings", l.stats.Headings)
	}

	n, err := drain(l.sc, span.Whole(l.src), func() (types.Pair, bool) { return l.sc.NextPair(false) })
	l.stats.Pairs = n
	if err != nil {
		return err
	}

	l.log.Debug("scene.load.counted",
		"headings", l.stats.Headings,
		"heading_pairs", l.stats.HeadingPairs,
		"pairs", l.stats.Pairs,
	)
	return nil
}

// drain resets sc to view and counts what next yields before it stops.
func drain(sc *scan.Scanner, view types.Span, next func() (types.Pair, bool)) (int, error) {
	sc.Reset(view)
	n := 0
	for {
		if _, ok := next(); !ok {
			break
		}
		n++
	}
	return n, sc.Err()
}

func (l *loader) allocate() error {
	nChunks, nPairs := l.stats.Headings, l.stats.HeadingPairs+l.stats.Pairs
	l.chunks = l.alloc.AllocChunks(nChunks)
	l.pairs = l.alloc.AllocPairs(nPairs)
	// A short block is as unusable as none.
	if l.chunks != nil && l.pairs != nil && len(l.chunks) >= nChunks && len(l.pairs) >= nPairs {
		return nil
	}
	l.release()
	return types.ErrAllocation
}

func (l *loader) release() {
	if l.chunks != nil {
		l.alloc.FreeChunks(l.chunks)
	}
	if l.pairs != nil {
		l.alloc.FreePairs(l.pairs)
	}
	l.chunks, l.pairs = nil, nil
}

// populate repeats the scans, carving chunks and pairs out of the two
// counted blocks. Heading pairs of every chunk come first in the pair block,
// followed by body pairs.
func (l *loader) populate() error {
	chunkSlab := alloc.NewSlab(l.chunks)
	pairSlab := alloc.NewSlab(l.pairs)

	l.sc.Reset(span.Whole(l.src))
	for {
		c, ok := l.sc.NextHeading()
		if !ok {
			break
		}
		slot, ok := chunkSlab.New()
		if !ok {
			return types.ErrCountMismatch
		}
		*slot = c
	}
	chunks := chunkSlab.Used()

	for i := range chunks {
		l.sc.Reset(l.headerView(chunks[i].Source))
		block, err := collect(pairSlab, l.sc.NextHeadingPair)
		if err != nil {
			return err
		}
		chunks[i].HeadingPairs = block
		l.stats.PopulatedHeadingPairs += len(block)
	}
	if err := l.sc.Err(); err != nil {
		return err
	}

	for i := range chunks {
		next := -1
		if i+1 < len(chunks) {
			next = chunks[i+1].Source.Off
		}
		l.sc.Reset(l.bodyView(chunks[i].Source, next))
		block, err := collect(pairSlab, func() (types.Pair, bool) { return l.sc.NextPair(true) })
		if err != nil {
			return err
		}
		chunks[i].Pairs = block
		l.stats.PopulatedPairs += len(block)
	}
	if err := l.sc.Err(); err != nil {
		return err
	}

	// Keep the counted capacity so Release hands back whole blocks.
	l.chunks = l.chunks[:len(chunks)]
	l.pairs = l.pairs[:pairSlab.Len()]
	return nil
}

// collect drains next into consecutive slab slots and returns them as one
// block.
func collect(slab *alloc.Slab[types.Pair], next func() (types.Pair, bool)) ([]types.Pair, error) {
	first := slab.Len()
	for {
		p, ok := next()
		if !ok {
			break
		}
		slot, ok := slab.New()
		if !ok {
			return nil, types.ErrCountMismatch
		}
		*slot = p
	}
	used := slab.Used()
	return used[first:len(used):len(used)], nil
}

// headerView spans from the '[' before kw to just past the first ']' after
// it, or to the end of the source when the bracket never closes.
func (l *loader) headerView(kw types.Span) types.Span {
	end := len(l.src)
	if i := bytes.IndexByte(l.src[kw.Off:], scan.HeaderClose); i >= 0 {
		end = kw.Off + i + 1
	}
	return span.New(kw.Off-1, end)
}

// bodyView spans from the '[' before kw to the '[' before the next chunk's
// keyword, or to the end of the source for the last chunk.
func (l *loader) bodyView(kw types.Span, next int) types.Span {
	end := len(l.src)
	if next > 0 {
		end = next - 1
	}
	return span.New(kw.Off-1, end)
}
