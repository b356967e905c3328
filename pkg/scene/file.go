package scene

import (
	"context"
	"fmt"
	"io"

	"github.com/joshuapare/tscnkit/internal/mmfile"
	"github.com/joshuapare/tscnkit/internal/textenc"
	"github.com/joshuapare/tscnkit/pkg/types"
)

// LoadFile maps path copy-on-write and loads it. In-place unescaping never
// reaches the file. The returned close function releases the mapping; the
// document must not be used after it runs. It is safe to call more than once.
func LoadFile(path string, opts Options) (*types.Document, func() error, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return &types.Document{}, noClose, types.Wrap(types.ErrIO, fmt.Errorf("map %s: %w", path, err))
	}
	// The mapping is already private.
	opts.CopySource = false

	doc, err := LoadWithOptions(data, opts)
	if err != nil {
		_ = cleanup()
		return doc, noClose, err
	}
	return doc, cleanup, nil
}

// LoadReader reads r to the end, decoding opts.InputEncoding while
// streaming, and loads the result.
func LoadReader(ctx context.Context, r io.Reader, opts Options) (*types.Document, error) {
	dec, err := textenc.NewReader(r, opts.InputEncoding)
	if err != nil {
		return &types.Document{}, err
	}
	data, err := io.ReadAll(dec)
	if err != nil {
		return &types.Document{}, types.Wrap(types.ErrIO, err)
	}
	opts.InputEncoding = textenc.EncodingUTF8
	opts.CopySource = false
	return LoadContext(ctx, data, opts)
}

func noClose() error { return nil }
