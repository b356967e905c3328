// Package printer renders loaded scenes for inspection.
//
// Three formats are supported: a plain text view that shows decoded body
// values, JSON for tooling, and tscn which re-quotes values so the output
// can be loaded again.
package printer
