// Package types defines the data model shared by the tscnkit packages: spans
// into a source buffer, key/value pairs, classified chunks, the loaded
// document, the pluggable allocator contract, and the typed errors.
//
// Nothing in this package owns text. A Span is an offset window into the
// buffer the document was loaded from, so every accessor takes that buffer
// (usually Document.Source).
package types
