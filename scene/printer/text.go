package printer

import (
	"fmt"

	"github.com/joshuapare/tscnkit/internal/emit"
	"github.com/joshuapare/tscnkit/internal/scan"
	"github.com/joshuapare/tscnkit/pkg/types"
)

func (p *Printer) printDocumentText(doc *types.Document) error {
	for i := range doc.Chunks {
		if err := p.printChunkText(doc, i); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(p.writer); err != nil {
			return err
		}
	}
	if p.opts.ShowStats {
		return p.printStatsText(doc.Stats)
	}
	return nil
}

// printChunkText mirrors the layout of a loaded chunk. The header is printed
// as a save would write it, quotes included; body values are decoded.
func (p *Printer) printChunkText(doc *types.Document, i int) error {
	src := doc.Source
	c := &doc.Chunks[i]

	if p.opts.ShowKinds {
		fmt.Fprintf(p.writer, "; #%d %s\n", i, c.Heading)
	}

	header := emit.AppendHeader(nil, src, c)
	if _, err := p.writer.Write(append(header, scan.Newline)); err != nil {
		return err
	}

	for _, pair := range c.Pairs {
		if _, err := fmt.Fprintf(p.writer, "%s = %s\n", pair.Key.Bytes(src), pair.Value.Bytes(src)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printStatsText(s types.Stats) error {
	fmt.Fprintf(p.writer, "; headings: %d, heading pairs: %d, pairs: %d\n", s.Headings, s.HeadingPairs, s.Pairs)
	_, err := fmt.Fprintf(p.writer, "; populated heading pairs: %d, populated pairs: %d, truncated: %t\n",
		s.PopulatedHeadingPairs, s.PopulatedPairs, s.Truncated)
	return err
}
