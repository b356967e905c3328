package scene

import (
	"fmt"

	"github.com/joshuapare/tscnkit/internal/emit"
	"github.com/joshuapare/tscnkit/internal/textenc"
	"github.com/joshuapare/tscnkit/internal/writer"
	"github.com/joshuapare/tscnkit/pkg/types"
)

// Save renders doc as scene text in opts.OutputEncoding.
//
// Headers are written as `[keyword k=v ...]` using each chunk's keyword as
// it appeared in the source. Body values that were quoted, or that now hold
// a newline, are quoted and escaped again. Continuation lines the loader
// skipped are not part of the document and are not written.
func Save(doc *types.Document, opts SaveOptions) ([]byte, error) {
	if doc == nil || !doc.OK {
		return nil, types.ErrNotLoaded
	}
	text := emit.AppendDocument(nil, doc, opts.emitOptions())
	return textenc.Encode(text, opts.OutputEncoding, opts.WithBOM)
}

// AppendSave appends the UTF-8 rendering of doc to dst.
func AppendSave(dst []byte, doc *types.Document, opts SaveOptions) ([]byte, error) {
	if doc == nil || !doc.OK {
		return dst, types.ErrNotLoaded
	}
	return emit.AppendDocument(dst, doc, opts.emitOptions()), nil
}

// Sink receives rendered scene bytes. *writer.FileWriter and
// *writer.MemWriter implement it.
type Sink = writer.Sink

// SaveFile renders doc and replaces path atomically.
func SaveFile(path string, doc *types.Document, opts SaveOptions) error {
	return SaveTo(&writer.FileWriter{Path: path}, doc, opts)
}

// SaveTo renders doc and hands the bytes to sink.
func SaveTo(sink Sink, doc *types.Document, opts SaveOptions) error {
	out, err := Save(doc, opts)
	if err != nil {
		return err
	}
	if err := sink.WriteScene(out); err != nil {
		return types.Wrap(types.ErrIO, fmt.Errorf("write scene: %w", err))
	}
	return nil
}
