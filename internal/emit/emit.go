// Package emit writes loaded scenes back out as text.
//
// Values are written from the document's source buffer. Header values are
// still escaped there, so they are copied through verbatim. Body values
// were decoded in place during the load and are re-escaped when they were
// quoted originally or now hold a newline.
package emit

import (
	"bytes"

	"github.com/joshuapare/tscnkit/internal/scan"
	"github.com/joshuapare/tscnkit/pkg/types"
)

const (
	LF   = "\n"
	CRLF = "\r\n"
)

// Options controls layout of emitted text.
type Options struct {
	LineEnding             string // LF when empty
	BlankLineBetweenChunks bool
}

// DefaultOptions matches the layout the editor writes.
func DefaultOptions() Options {
	return Options{LineEnding: LF, BlankLineBetweenChunks: true}
}

func (o Options) eol() string {
	if o.LineEnding == "" {
		return LF
	}
	return o.LineEnding
}

// AppendDocument appends every chunk of doc to dst.
func AppendDocument(dst []byte, doc *types.Document, opts Options) []byte {
	for i := range doc.Chunks {
		if i > 0 && opts.BlankLineBetweenChunks {
			dst = append(dst, opts.eol()...)
		}
		dst = AppendChunk(dst, doc.Source, &doc.Chunks[i], opts)
	}
	return dst
}

// AppendChunk appends one header line followed by the chunk's body lines.
func AppendChunk(dst, src []byte, c *types.Chunk, opts Options) []byte {
	dst = AppendHeader(dst, src, c)
	dst = append(dst, opts.eol()...)
	for _, p := range c.Pairs {
		dst = AppendPair(dst, src, p)
		dst = append(dst, opts.eol()...)
	}
	return dst
}

// AppendHeader appends `[keyword k=v ...]` without a line ending. The
// keyword is taken from src when present so "connection" survives a round
// trip even though it classifies as a node.
func AppendHeader(dst, src []byte, c *types.Chunk) []byte {
	dst = append(dst, scan.HeaderOpen)
	if kw := c.Source.Bytes(src); len(kw) > 0 {
		dst = append(dst, kw...)
	} else {
		dst = append(dst, scan.KeywordFor(c.Heading)...)
	}
	for _, p := range c.HeadingPairs {
		dst = append(dst, scan.Space)
		dst = append(dst, p.Key.Bytes(src)...)
		dst = append(dst, scan.Assign)
		if scan.WasQuoted(src, p.Value) {
			dst = append(dst, scan.Quote)
			dst = append(dst, p.Value.Bytes(src)...)
			dst = append(dst, scan.Quote)
		} else {
			dst = append(dst, p.Value.Bytes(src)...)
		}
	}
	return append(dst, scan.HeaderClose)
}

// AppendPair appends `key = value` without a line ending. A pair read from
// a line without '=' has no value and is written as the bare key.
func AppendPair(dst, src []byte, p types.Pair) []byte {
	dst = append(dst, p.Key.Bytes(src)...)
	if p.Value.Absent() {
		return dst
	}
	dst = append(dst, " = "...)
	v := p.Value.Bytes(src)
	if scan.WasQuoted(src, p.Value) || bytes.IndexByte(v, scan.Newline) >= 0 {
		return scan.AppendQuoted(dst, v)
	}
	return append(dst, v...)
}
