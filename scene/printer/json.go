package printer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joshuapare/tscnkit/internal/scan"
	"github.com/joshuapare/tscnkit/pkg/types"
)

// jsonPair keeps attribute order and duplicates, which a map would lose.
type jsonPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// jsonChunk represents one chunk in JSON format.
type jsonChunk struct {
	Index        int        `json:"index"`
	Keyword      string     `json:"keyword"`
	Heading      string     `json:"heading,omitempty"`
	HeadingPairs []jsonPair `json:"heading_pairs"`
	Pairs        []jsonPair `json:"pairs"`
}

// jsonStats represents the load statistics in JSON format.
type jsonStats struct {
	Headings              int  `json:"headings"`
	HeadingPairs          int  `json:"heading_pairs"`
	Pairs                 int  `json:"pairs"`
	PopulatedHeadingPairs int  `json:"populated_heading_pairs"`
	PopulatedPairs        int  `json:"populated_pairs"`
	Truncated             bool `json:"truncated"`
}

// jsonDocument represents a loaded scene in JSON format.
type jsonDocument struct {
	Chunks []jsonChunk `json:"chunks"`
	Stats  *jsonStats  `json:"stats,omitempty"`
}

func (p *Printer) chunkJSON(doc *types.Document, i int) jsonChunk {
	src := doc.Source
	c := &doc.Chunks[i]
	out := jsonChunk{
		Index:        i,
		Keyword:      c.Keyword(src),
		HeadingPairs: pairsJSON(src, c.HeadingPairs),
		Pairs:        pairsJSON(src, c.Pairs),
	}
	if out.Keyword == "" {
		out.Keyword = scan.KeywordFor(c.Heading)
	}
	if p.opts.ShowKinds {
		out.Heading = c.Heading.String()
	}
	return out
}

func pairsJSON(src []byte, ps []types.Pair) []jsonPair {
	out := make([]jsonPair, 0, len(ps))
	for _, pair := range ps {
		out = append(out, jsonPair{Key: pair.Key.String(src), Value: pair.Value.String(src)})
	}
	return out
}

func (p *Printer) printDocumentJSON(doc *types.Document) error {
	out := jsonDocument{Chunks: make([]jsonChunk, 0, len(doc.Chunks))}
	for i := range doc.Chunks {
		out.Chunks = append(out.Chunks, p.chunkJSON(doc, i))
	}
	if p.opts.ShowStats {
		s := doc.Stats
		out.Stats = &jsonStats{
			Headings:              s.Headings,
			HeadingPairs:          s.HeadingPairs,
			Pairs:                 s.Pairs,
			PopulatedHeadingPairs: s.PopulatedHeadingPairs,
			PopulatedPairs:        s.PopulatedPairs,
			Truncated:             s.Truncated,
		}
	}
	return p.writeJSON(out)
}

func (p *Printer) printChunkJSON(doc *types.Document, i int) error {
	return p.writeJSON(p.chunkJSON(doc, i))
}

func (p *Printer) writeJSON(v any) error {
	var (
		data []byte
		err  error
	)
	if p.opts.IndentSize > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", p.opts.IndentSize))
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
