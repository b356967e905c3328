package scene

import (
	"github.com/joshuapare/tscnkit/internal/scan"
	"github.com/joshuapare/tscnkit/internal/span"
	"github.com/joshuapare/tscnkit/pkg/types"
)

// Keywords returns the header keywords a load recognizes, in match order.
func Keywords() []string { return scan.Keywords() }

// Classify reports the heading a header keyword loads as. Keywords outside
// the vocabulary stop heading discovery and report false.
func Classify(keyword string) (types.Heading, bool) {
	src := []byte(keyword)
	return scan.Classify(src, span.Whole(src))
}
