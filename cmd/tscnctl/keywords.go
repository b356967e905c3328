package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tscnkit/pkg/scene"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "keywords",
		Short: "List the header keywords the loader recognizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeywords()
		},
	})
}

// KeywordInfo pairs a header keyword with the heading it loads as.
type KeywordInfo struct {
	Keyword string `json:"keyword"`
	Heading string `json:"heading"`
}

func keywordTable() []KeywordInfo {
	kws := scene.Keywords()
	out := make([]KeywordInfo, 0, len(kws))
	for _, kw := range kws {
		h, _ := scene.Classify(kw)
		out = append(out, KeywordInfo{Keyword: kw, Heading: h.String()})
	}
	return out
}

func runKeywords() error {
	table := keywordTable()
	if currentSettings().JSON {
		return printJSON(table)
	}
	for _, k := range table {
		printInfo("%s %s\n", paint(keyStyle, fmt.Sprintf("%-14s", k.Keyword)), k.Heading)
	}
	return nil
}
