package printer

import (
	"github.com/joshuapare/tscnkit/internal/emit"
	"github.com/joshuapare/tscnkit/pkg/types"
)

func (p *Printer) printDocumentTSCN(doc *types.Document) error {
	_, err := p.writer.Write(emit.AppendDocument(nil, doc, emit.DefaultOptions()))
	return err
}

func (p *Printer) printChunkTSCN(doc *types.Document, i int) error {
	_, err := p.writer.Write(emit.AppendChunk(nil, doc.Source, &doc.Chunks[i], emit.DefaultOptions()))
	return err
}
