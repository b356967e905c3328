package scene

import (
	"pkt.systems/pslog"

	"github.com/joshuapare/tscnkit/internal/emit"
	"github.com/joshuapare/tscnkit/internal/textenc"
	"github.com/joshuapare/tscnkit/pkg/types"
)

// Options controls a load.
type Options struct {
	// Allocator supplies the chunk and pair blocks. Nil selects alloc.Default.
	Allocator types.Allocator

	// Logger receives debug traces of the counting passes and warnings on
	// failure. Nil falls back to the logger attached to the context, which
	// is a no-op when none is attached.
	Logger pslog.Base

	// InputEncoding names the encoding of the source bytes.
	// Supported values: "UTF-8" (default), "UTF-16LE", "WINDOWS-1252".
	// A byte order mark in the input overrides this setting.
	InputEncoding string

	// CopySource loads from a private copy so the caller's buffer is not
	// modified by in-place unescaping.
	CopySource bool
}

// DefaultOptions returns heap allocation, UTF-8 input and in-place decoding.
func DefaultOptions() Options {
	return Options{InputEncoding: textenc.EncodingUTF8}
}

// SaveOptions controls Save and SaveFile.
type SaveOptions struct {
	// OutputEncoding specifies output encoding.
	// Supported values: "UTF-8" (default), "UTF-16LE", "WINDOWS-1252".
	OutputEncoding string

	// WithBOM prefixes a byte order mark for UTF-8 and UTF-16LE output.
	WithBOM bool

	// LineEnding is written after every line. Empty means "\n".
	LineEnding string

	// BlankLineBetweenChunks separates chunks with an empty line.
	BlankLineBetweenChunks bool
}

// DefaultSaveOptions matches the layout the editor writes.
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{
		OutputEncoding:         textenc.EncodingUTF8,
		LineEnding:             emit.LF,
		BlankLineBetweenChunks: true,
	}
}

func (o SaveOptions) emitOptions() emit.Options {
	return emit.Options{
		LineEnding:             o.LineEnding,
		BlankLineBetweenChunks: o.BlankLineBetweenChunks,
	}
}
