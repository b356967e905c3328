package scan

import (
	"github.com/joshuapare/tscnkit/internal/span"
	"github.com/joshuapare/tscnkit/pkg/types"
)

const (
	// ============================================================================
	// Structural Tokens
	// ============================================================================

	// HeaderOpen starts a header line
	HeaderOpen = '['

	// HeaderClose ends a header attribute list
	HeaderClose = ']'

	// Assign separates attribute keys from values
	Assign = '='

	// Quote delimits quoted values
	Quote = '"'

	// Backslash starts an escape sequence inside a quoted value
	Backslash = '\\'

	// Space separates the header keyword and header attributes
	Space = ' '

	// Newline terminates every line
	Newline = '\n'

	// CR is skipped as a body line lead byte
	CR = '\r'

	// Tab is skipped as a body line lead byte
	Tab = '\t'
)

// Header keywords, matched exactly and case-sensitively.
const (
	KeywordFileDescriptor = "gd_scene"
	KeywordExtResource    = "ext_resource"
	KeywordSubResource    = "sub_resource"
	KeywordNode           = "node"
	KeywordConnection     = "connection"
)

type keyword struct {
	text    string
	heading types.Heading
}

// connection classifies as Node, not Connection.
var vocabulary = [...]keyword{
	{KeywordFileDescriptor, types.HeadingFileDescriptor},
	{KeywordExtResource, types.HeadingExtResource},
	{KeywordSubResource, types.HeadingSubResource},
	{KeywordNode, types.HeadingNode},
	{KeywordConnection, types.HeadingNode},
}

// Classify maps a header keyword span to its heading.
func Classify(src []byte, kw span.Span) (types.Heading, bool) {
	for _, k := range vocabulary {
		if span.EqualString(src, kw, k.text) {
			return k.heading, true
		}
	}
	return types.HeadingNothing, false
}

// Keywords returns the recognized header keywords in vocabulary order.
func Keywords() []string {
	out := make([]string, len(vocabulary))
	for i, k := range vocabulary {
		out[i] = k.text
	}
	return out
}

// KeywordFor returns the canonical keyword written for h, or "" for
// HeadingNothing and unknown values.
func KeywordFor(h types.Heading) string {
	switch h {
	case types.HeadingFileDescriptor:
		return KeywordFileDescriptor
	case types.HeadingExtResource:
		return KeywordExtResource
	case types.HeadingSubResource:
		return KeywordSubResource
	case types.HeadingNode:
		return KeywordNode
	case types.HeadingConnection:
		return KeywordConnection
	default:
		return ""
	}
}
