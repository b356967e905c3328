package scan

import (
	"github.com/joshuapare/tscnkit/internal/span"
	"github.com/joshuapare/tscnkit/pkg/types"
)

// NextHeading finds the next line starting with '[' and classifies its
// keyword. Empty lines and lines with any other lead byte are skipped.
//
// When the bracketed line carries a keyword outside the vocabulary the call
// fails with the line already consumed, and Unrecognized reports true. Loops
// driven by "while NextHeading succeeds" therefore stop at that line.
func (s *Scanner) NextHeading() (types.Chunk, bool) {
	s.unknown = false
	if s.err != nil {
		return types.Chunk{}, false
	}

	line, ok := s.nextLine(func(lead byte) bool { return lead == HeaderOpen })
	if !ok {
		return types.Chunk{}, false
	}

	line = span.Substring(line, 1)
	kw := span.Cut(s.src, line, Space).Head
	heading, ok := Classify(s.src, kw)
	if !ok {
		s.unknown = true
		return types.Chunk{}, false
	}
	return types.Chunk{Heading: heading, Source: kw}, true
}

// Unrecognized reports whether the last NextHeading call stopped on a
// bracketed line with an unknown keyword rather than at the end of input.
func (s *Scanner) Unrecognized() bool { return s.unknown }
