package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindSyntax   ErrKind = iota // malformed input the scanners cannot recover from
	ErrKindAlloc                   // allocator returned no memory or a sub-arena overflowed
	ErrKindEncoding                // unsupported or undecodable text encoding
	ErrKindIO                      // file helpers failed to read or write
)

// String returns a short lowercase name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindSyntax:
		return "syntax"
	case ErrKindAlloc:
		return "alloc"
	case ErrKindEncoding:
		return "encoding"
	case ErrKindIO:
		return "io"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same kind and message, so copies made with
// Wrap still satisfy errors.Is against the sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e == t || (e.Kind == t.Kind && e.Msg == t.Msg)
}

// Wrap returns a copy of sentinel carrying cause as its underlying error.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Msg: sentinel.Msg, Err: cause}
}

// Sentinels returned by the loader, the save path and the file helpers.
var (
	// ErrUnterminatedString indicates a quoted header or body value without
	// its closing quote.
	ErrUnterminatedString = &Error{Kind: ErrKindSyntax, Msg: "unterminated quoted string"}
	// ErrAllocation indicates the allocator could not supply a top-level block.
	ErrAllocation = &Error{Kind: ErrKindAlloc, Msg: "allocation failed"}
	// ErrCountMismatch indicates population produced more items than the
	// counting passes reserved. This is a scanner inconsistency, not bad input.
	ErrCountMismatch = &Error{Kind: ErrKindAlloc, Msg: "populated items exceed counted capacity"}
	// ErrUnsupportedEncoding indicates an unknown input or output encoding name.
	ErrUnsupportedEncoding = &Error{Kind: ErrKindEncoding, Msg: "unsupported encoding"}
	// ErrNotLoaded is returned when saving or printing a document whose load
	// failed.
	ErrNotLoaded = &Error{Kind: ErrKindSyntax, Msg: "document did not load"}
	// ErrIO wraps file-system failures from the file helpers.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "i/o failure"}
)
