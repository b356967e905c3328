// Package scan implements the three line scanners of the text scene format.
//
// A Scanner carries a cursor over a window of the source buffer. The same
// Scanner is reused across passes with Reset; its error is sticky so a
// failure in one pass aborts every later pass.
package scan

import (
	"github.com/joshuapare/tscnkit/internal/span"
	"github.com/joshuapare/tscnkit/pkg/types"
)

// Scanner is the shared cursor state of the heading, heading-attribute and
// body-attribute scanners.
type Scanner struct {
	src       []byte
	cur       span.Span
	inBracket bool
	unknown   bool
	err       error
}

// New returns a scanner over all of src.
func New(src []byte) *Scanner {
	return &Scanner{src: src, cur: span.Whole(src)}
}

// Reset moves the cursor to view and leaves bracket mode. The sticky error
// survives a reset.
func (s *Scanner) Reset(view span.Span) {
	s.cur = view
	s.inBracket = false
	s.unknown = false
}

// Err returns the sticky error, if any.
func (s *Scanner) Err() error { return s.err }

// Remaining returns the unconsumed part of the current view.
func (s *Scanner) Remaining() span.Span { return s.cur }

// InBracket reports whether the heading-attribute scanner is between a '['
// and its ']'.
func (s *Scanner) InBracket() bool { return s.inBracket }

func (s *Scanner) fail(err *types.Error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *Scanner) advance(n int) {
	s.cur = span.Substring(s.cur, n)
}

func (s *Scanner) peek() (byte, bool) {
	return span.First(s.src, s.cur)
}

func (s *Scanner) skipSpaces() {
	for s.cur.Len > 0 && s.src[s.cur.Off] == Space {
		s.advance(1)
	}
}

// nextLine returns the next line of the view for which keep reports true,
// consuming every line up to and including it.
func (s *Scanner) nextLine(keep func(lead byte) bool) (span.Span, bool) {
	rest := s.cur
	for rest.Len > 0 {
		c := span.Cut(s.src, rest, Newline)
		rest = c.Tail
		lead, ok := span.First(s.src, c.Head)
		if !ok {
			continue
		}
		if keep(lead) {
			s.cur = rest
			return c.Head, true
		}
	}
	s.cur = rest
	return span.None, false
}
