package types

import "github.com/joshuapare/tscnkit/internal/buf"

// Span is a borrowed view into a source buffer: Len bytes starting at Off.
// Off == -1 marks an absent span; a zero-length span with Off >= 0 is present.
type Span struct {
	Off int
	Len int
}

// Absent reports whether the span carries no position at all.
func (s Span) Absent() bool { return s.Off < 0 }

// End returns the offset one past the last byte of the span.
func (s Span) End() int {
	if s.Off < 0 {
		return 0
	}
	return s.Off + s.Len
}

// Bytes returns the bytes of src covered by s. Absent or out-of-range spans
// yield nil.
func (s Span) Bytes(src []byte) []byte {
	b, _ := buf.Slice(src, s.Off, s.Len)
	return b
}

// String copies the bytes of s out of src.
func (s Span) String(src []byte) string { return string(s.Bytes(src)) }

// Pair is one key/value attribute.
type Pair struct {
	Key   Span
	Value Span
}

// Heading is the classified kind of a chunk's bracketed header keyword.
type Heading int

const (
	HeadingNothing Heading = iota
	HeadingFileDescriptor
	HeadingExtResource
	HeadingSubResource
	HeadingNode
	HeadingConnection
)

func (h Heading) String() string {
	switch h {
	case HeadingNothing:
		return "Nothing"
	case HeadingFileDescriptor:
		return "FileDescriptor"
	case HeadingExtResource:
		return "ExtResource"
	case HeadingSubResource:
		return "SubResource"
	case HeadingNode:
		return "Node"
	case HeadingConnection:
		return "Connection"
	default:
		return "Unknown"
	}
}

// Chunk is one bracketed section plus the body attributes that follow it.
// HeadingPairs and Pairs alias consecutive ranges of Document.AllPairs.
type Chunk struct {
	Heading      Heading
	Source       Span // header keyword text, without the leading '['
	HeadingPairs []Pair
	Pairs        []Pair
}

// Keyword returns the raw header keyword as written in src. A chunk
// classified as HeadingNode may have been written as "connection".
func (c *Chunk) Keyword(src []byte) string { return c.Source.String(src) }

// Stats records what the counting passes saw and what population produced.
type Stats struct {
	Headings     int // heading scanner successes in the counting pass
	HeadingPairs int // header attributes counted per chunk over its header view
	Pairs        int // whole-buffer body-attribute count

	PopulatedHeadingPairs int
	PopulatedPairs        int

	// Truncated is set when heading discovery stopped at a bracketed line
	// whose keyword is outside the vocabulary.
	Truncated bool
}

// Document is the result of a load. OK is false whenever the loader also
// returned an error; in that case Chunks and AllPairs must not be used.
type Document struct {
	OK       bool
	Source   []byte
	Chunks   []Chunk
	AllPairs []Pair
	Stats    Stats
}

// ChunksLen returns the number of populated chunks.
func (d *Document) ChunksLen() int { return len(d.Chunks) }

// AllPairsLen returns the number of populated heading and body pairs.
func (d *Document) AllPairsLen() int { return len(d.AllPairs) }

// Release hands both top-level blocks back to a. A nil allocator is a no-op.
func (d *Document) Release(a Allocator) {
	if d == nil || a == nil {
		return
	}
	if d.Chunks != nil {
		a.FreeChunks(d.Chunks[:cap(d.Chunks)])
	}
	if d.AllPairs != nil {
		a.FreePairs(d.AllPairs[:cap(d.AllPairs)])
	}
	d.Chunks = nil
	d.AllPairs = nil
	d.OK = false
}

// Allocator supplies the two top-level blocks a load needs. Both Alloc
// methods return nil when the request cannot be satisfied; returned blocks
// must be zeroed and have length n, and a request for zero items must
// succeed with a non-nil empty block. Implementations carry their own context
// in the receiver and make no thread-safety promise.
type Allocator interface {
	AllocChunks(n int) []Chunk
	AllocPairs(n int) []Pair
	FreeChunks(b []Chunk)
	FreePairs(b []Pair)
}
