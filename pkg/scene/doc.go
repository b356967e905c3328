// Package scene loads text scene files into a flat, offset-based document.
//
// A load makes three counting passes over the source (headings, header
// attributes, body attributes), requests exactly two blocks from the
// allocator, then repeats the scans to populate them. Nothing grows after
// the allocation, and every Span in the result indexes Document.Source.
//
// Quoted body values are unescaped in place, so the source buffer is
// modified by a load. Set Options.CopySource to keep the caller's bytes
// intact.
//
// Example:
//
//	doc, err := scene.Load(src, nil)
//	if err != nil {
//		return err
//	}
//	for _, c := range doc.Chunks {
//		fmt.Println(c.Heading, c.Keyword(doc.Source))
//	}
package scene
