package scan

import (
	"github.com/joshuapare/tscnkit/internal/span"
	"github.com/joshuapare/tscnkit/pkg/types"
)

// NextHeadingPair returns the next key=value attribute written inside a
// header's brackets.
//
// Outside bracket mode it seeks the next '[' and drops everything up to the
// first space, which is the keyword NextHeading already classified. Inside,
// it reads one attribute per call. Reaching ']' leaves bracket mode in the
// same call that returns the last attribute. A token without '=' ends the
// attribute list without an error.
func (s *Scanner) NextHeadingPair() (types.Pair, bool) {
	if s.err != nil {
		return types.Pair{}, false
	}

	if !s.inBracket {
		s.seekBracket()
	}
	if !s.inBracket {
		return types.Pair{}, false
	}

	s.skipSpaces()

	var pair types.Pair
	found := false
	key := span.CutEither(s.src, s.cur, Assign, Space)
	if key.OK && s.src[key.Head.End()] == Assign {
		pair.Key = key.Head
		s.advance(key.Head.Len + 1)
		if b, ok := s.peek(); ok && b == Quote {
			s.advance(1)
			end := closingQuote(s.src[s.cur.Off:s.cur.End()])
			if end < 0 {
				s.fail(types.ErrUnterminatedString)
				return types.Pair{}, false
			}
			pair.Value = types.Span{Off: s.cur.Off, Len: end}
			s.advance(end + 1)
		} else {
			valOff, valLen := s.cur.Off, 0
			for valLen < s.cur.Len && s.src[valOff+valLen] != Space && s.src[valOff+valLen] != HeaderClose {
				valLen++
			}
			pair.Value = types.Span{Off: valOff, Len: valLen}
			s.advance(valLen)
		}
		found = true
	}

	s.skipSpaces()
	if b, ok := s.peek(); ok && b == HeaderClose {
		s.advance(1)
		s.inBracket = false
	}
	return pair, found
}

func (s *Scanner) seekBracket() {
	for s.cur.Len > 0 && s.src[s.cur.Off] != HeaderOpen {
		s.advance(1)
	}
	if s.cur.Len > 0 {
		s.advance(1)
		s.inBracket = true
	}
	s.cur = cutTail(s.src, s.cur, Space)
}
