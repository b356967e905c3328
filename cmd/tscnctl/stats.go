package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/tscnkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <scene>",
		Short: "Show load statistics",
		Long: `The stats command shows how many headings and attributes the counting
passes found, how many were populated, whether heading discovery stopped at an
unrecognized header, and how the chunks break down by heading.

Example:
  tscnctl stats main.tscn
  tscnctl stats main.tscn --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

// SceneStats is the stats command's report.
type SceneStats struct {
	File                  string         `json:"file"`
	Bytes                 int            `json:"bytes"`
	Chunks                int            `json:"chunks"`
	Headings              int            `json:"headings"`
	HeadingPairs          int            `json:"heading_pairs"`
	Pairs                 int            `json:"pairs"`
	PopulatedHeadingPairs int            `json:"populated_heading_pairs"`
	PopulatedPairs        int            `json:"populated_pairs"`
	Truncated             bool           `json:"truncated"`
	ByHeading             map[string]int `json:"by_heading"`
	ByKeyword             map[string]int `json:"by_keyword"`
}

func collectStats(path string, doc *types.Document) SceneStats {
	s := doc.Stats
	st := SceneStats{
		File:                  path,
		Bytes:                 len(doc.Source),
		Chunks:                doc.ChunksLen(),
		Headings:              s.Headings,
		HeadingPairs:          s.HeadingPairs,
		Pairs:                 s.Pairs,
		PopulatedHeadingPairs: s.PopulatedHeadingPairs,
		PopulatedPairs:        s.PopulatedPairs,
		Truncated:             s.Truncated,
		ByHeading:             make(map[string]int),
		ByKeyword:             make(map[string]int),
	}
	for i := range doc.Chunks {
		c := &doc.Chunks[i]
		st.ByHeading[c.Heading.String()]++
		st.ByKeyword[c.Keyword(doc.Source)]++
	}
	return st
}

func runStats(args []string) error {
	path := args[0]
	doc, closeFn, err := loadScene(path)
	defer closeFn()
	if err != nil {
		return err
	}
	st := collectStats(path, doc)

	if currentSettings().JSON {
		return printJSON(st)
	}

	printInfo("%s\n", paint(headerStyle, "Scene: "+path))
	printInfo("  Size:                    %d bytes\n", st.Bytes)
	printInfo("  Chunks:                  %d\n", st.Chunks)
	printInfo("  Headings counted:        %d\n", st.Headings)
	printInfo("  Heading pairs counted:   %d (populated %d)\n", st.HeadingPairs, st.PopulatedHeadingPairs)
	printInfo("  Body pairs counted:      %d (populated %d)\n", st.Pairs, st.PopulatedPairs)
	if st.Truncated {
		printInfo("  %s\n", paint(warnStyle, "Truncated at an unrecognized header"))
	}
	printInfo("\n  By heading:\n")
	for _, h := range []types.Heading{
		types.HeadingFileDescriptor,
		types.HeadingExtResource,
		types.HeadingSubResource,
		types.HeadingNode,
	} {
		if n := st.ByHeading[h.String()]; n > 0 {
			printInfo("    %-16s %d\n", h.String(), n)
		}
	}
	return nil
}
