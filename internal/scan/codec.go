package scan

import (
	"github.com/joshuapare/tscnkit/internal/span"
)

// Unquote collapses backslash escapes in b in place and returns the decoded
// length. \n, \t, \" and \\ map to newline, tab, quote and backslash; any
// other escaped byte is kept literally. A trailing lone backslash is dropped.
func Unquote(b []byte) int {
	dst := 0
	escaped := false
	for _, ch := range b {
		switch {
		case escaped:
			switch ch {
			case 'n':
				ch = '\n'
			case 't':
				ch = '\t'
			}
			b[dst] = ch
			dst++
			escaped = false
		case ch == Backslash:
			escaped = true
		default:
			b[dst] = ch
			dst++
		}
	}
	return dst
}

// AppendQuoted appends v wrapped in quotes with \n, \t, \" and \\ escaped.
// It is the inverse of Unquote.
func AppendQuoted(dst, v []byte) []byte {
	dst = append(dst, Quote)
	for _, ch := range v {
		switch ch {
		case '\n':
			dst = append(dst, Backslash, 'n')
		case '\t':
			dst = append(dst, Backslash, 't')
		case Quote, Backslash:
			dst = append(dst, Backslash, ch)
		default:
			dst = append(dst, ch)
		}
	}
	return append(dst, Quote)
}

// closingQuote finds the first quote in line not preceded by an odd number
// of backslashes. It returns -1 when there is none.
func closingQuote(line []byte) int {
	for i := range line {
		if closedAt(line, i) {
			return i
		}
	}
	return -1
}

// closedAt reports whether line[i] is a quote that is not escaped.
func closedAt(line []byte, i int) bool {
	if i < 0 || i >= len(line) || line[i] != Quote {
		return false
	}
	n := 0
	for j := i - 1; j >= 0 && line[j] == Backslash; j-- {
		n++
	}
	return n%2 == 0
}

func cutTail(src []byte, s span.Span, c byte) span.Span {
	return span.Cut(src, s, c).Tail
}

// WasQuoted reports whether val was read from a quoted value. Scanned
// values start right after their opening quote, while unquoted values follow
// '=' or whitespace.
func WasQuoted(src []byte, val span.Span) bool {
	return val.Off > 0 && val.Off <= len(src) && src[val.Off-1] == Quote
}
