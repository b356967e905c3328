package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/tscnkit/pkg/types"
)

const (
	DefaultIndentSize = 2
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the loader's view of each chunk: the header with
	// its attributes, then `key = value` lines with decoded values.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"

	// FormatTSCN outputs re-quoted scene text that loads back to the same
	// document.
	FormatTSCN Format = "tscn"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatTSCN:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or tscn)", s)
	}
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, tscn).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per JSON nesting level.
	// Zero prints compact JSON.
	// Default: 2
	IndentSize int

	// ShowKinds annotates each chunk with its classified heading.
	// Default: false
	ShowKinds bool

	// ShowStats appends the counting-pass totals.
	// Default: false
	ShowStats bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
	}
}

// Printer handles formatted output of loaded scenes.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	doc, _ := scene.Load(src, nil)
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(doc)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// Print writes every chunk of doc.
func (p *Printer) Print(doc *types.Document) error {
	if doc == nil || !doc.OK {
		return types.ErrNotLoaded
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printDocumentJSON(doc)
	case FormatTSCN:
		return p.printDocumentTSCN(doc)
	case FormatText:
		return p.printDocumentText(doc)
	default:
		return p.printDocumentText(doc)
	}
}

// PrintChunk writes the chunk at index i.
func (p *Printer) PrintChunk(doc *types.Document, i int) error {
	if doc == nil || !doc.OK {
		return types.ErrNotLoaded
	}
	if i < 0 || i >= len(doc.Chunks) {
		return fmt.Errorf("chunk %d out of range [0, %d)", i, len(doc.Chunks))
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printChunkJSON(doc, i)
	case FormatTSCN:
		return p.printChunkTSCN(doc, i)
	case FormatText:
		return p.printChunkText(doc, i)
	default:
		return p.printChunkText(doc, i)
	}
}
