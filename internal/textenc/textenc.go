// Package textenc converts scene text between its on-disk encoding and the
// byte-oriented form the scanners read.
package textenc

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/tscnkit/pkg/types"
)

const (
	// EncodingUTF8 is the identifier for UTF-8 encoding
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian encoding
	EncodingUTF16LE = "UTF-16LE"

	// EncodingWindows1252 is the identifier for the Windows-1252 code page
	EncodingWindows1252 = "WINDOWS-1252"
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF8BOM is the byte order mark for UTF-8
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)

// Normalize maps accepted aliases onto the canonical encoding names and
// reports whether the name is supported. The empty string means UTF-8.
func Normalize(enc string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(enc)) {
	case "", EncodingUTF8, "UTF8":
		return EncodingUTF8, true
	case EncodingUTF16LE, "UTF16LE", "UTF-16":
		return EncodingUTF16LE, true
	case EncodingWindows1252, "CP1252", "LATIN1", "ISO-8859-1":
		return EncodingWindows1252, true
	default:
		return "", false
	}
}

func lookup(name string, withBOM bool) encoding.Encoding {
	switch name {
	case EncodingUTF16LE:
		if withBOM {
			return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
		}
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case EncodingWindows1252:
		return charmap.Windows1252
	default:
		return nil
	}
}

// Decode returns data as UTF-8 bytes ready for scanning. A leading BOM wins
// over enc. UTF-8 input is returned without copying (minus any BOM), so the
// result still aliases data.
func Decode(data []byte, enc string) ([]byte, error) {
	if bytes.HasPrefix(data, UTF16LEBOM) {
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), data)
	}
	if bytes.HasPrefix(data, UTF8BOM) {
		return data[len(UTF8BOM):], nil
	}
	name, ok := Normalize(enc)
	if !ok {
		return nil, types.ErrUnsupportedEncoding
	}
	if name == EncodingUTF8 {
		return data, nil
	}
	return decodeWith(lookup(name, false), data)
}

func decodeWith(e encoding.Encoding, data []byte) ([]byte, error) {
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return nil, types.Wrap(types.ErrUnsupportedEncoding, err)
	}
	return out, nil
}

// Encode converts UTF-8 text to enc, prefixing a BOM when withBOM is set.
func Encode(text []byte, enc string, withBOM bool) ([]byte, error) {
	name, ok := Normalize(enc)
	if !ok {
		return nil, types.ErrUnsupportedEncoding
	}
	switch name {
	case EncodingUTF8:
		if !withBOM {
			return text, nil
		}
		out := make([]byte, 0, len(UTF8BOM)+len(text))
		out = append(out, UTF8BOM...)
		return append(out, text...), nil
	case EncodingWindows1252:
		withBOM = false
	}
	out, err := lookup(name, withBOM).NewEncoder().Bytes(text)
	if err != nil {
		return nil, types.Wrap(types.ErrUnsupportedEncoding, err)
	}
	return out, nil
}

// NewReader wraps r so reads yield UTF-8. Non-UTF-8 encodings are decoded
// while streaming.
func NewReader(r io.Reader, enc string) (io.Reader, error) {
	name, ok := Normalize(enc)
	if !ok {
		return nil, types.ErrUnsupportedEncoding
	}
	if name == EncodingUTF8 {
		return r, nil
	}
	if name == EncodingUTF16LE {
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	}
	return transform.NewReader(r, lookup(name, false).NewDecoder()), nil
}
