package scan

import (
	"github.com/joshuapare/tscnkit/internal/span"
	"github.com/joshuapare/tscnkit/pkg/types"
)

// bodyLead reports whether a line starting with b can hold a body attribute.
// Header lines and indented or blank continuation lines cannot.
func bodyLead(b byte) bool {
	return b != HeaderOpen && b != Space && b != CR && b != Tab
}

// NextPair returns the next `key = value` body attribute. Key and value are
// trimmed. A value wrapped in quotes is reported without them; with decode
// set, its escapes are collapsed in place in the source buffer and the value
// span shrinks to the decoded length.
//
// A value that opens a quote it never closes sets the sticky error. A final
// quote escaped by a backslash does not close it.
func (s *Scanner) NextPair(decode bool) (types.Pair, bool) {
	if s.err != nil {
		return types.Pair{}, false
	}

	line, ok := s.nextLine(bodyLead)
	if !ok {
		return types.Pair{}, false
	}

	kv := span.Cut(s.src, line, Assign)
	key := span.Trim(s.src, kv.Head)
	val := span.Trim(s.src, span.Cut(s.src, kv.Tail, Newline).Head)

	if b, ok := span.First(s.src, val); ok && b == Quote {
		if val.Len < 2 || !closedAt(s.src[val.Off+1:val.End()], val.Len-2) {
			s.fail(types.ErrUnterminatedString)
			return types.Pair{}, false
		}
		val = types.Span{Off: val.Off + 1, Len: val.Len - 2}
		if decode {
			val.Len = Unquote(s.src[val.Off:val.End()])
		}
	}

	return types.Pair{Key: key, Value: val}, true
}
