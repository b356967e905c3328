package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tscnkit/scene/printer"
)

var (
	dumpFormat string
	dumpKinds  bool
	dumpStats  bool
	dumpChunk  int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpFormat, "format", "text", "Output format (text, json, tscn)")
	cmd.Flags().BoolVar(&dumpKinds, "kinds", false, "Annotate chunks with their classified heading")
	cmd.Flags().BoolVar(&dumpStats, "stats", false, "Append counting-pass statistics")
	cmd.Flags().IntVar(&dumpChunk, "chunk", -1, "Dump only the chunk at this index")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <scene>",
		Short: "Print the chunks of a scene as the loader sees them",
		Long: `The dump command loads a scene and prints every chunk with its header
attributes and body attributes. Body values are shown decoded.

Example:
  tscnctl dump main.tscn
  tscnctl dump main.tscn --kinds --stats
  tscnctl dump main.tscn --chunk 3 --format tscn
  tscnctl dump main.tscn --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	doc, closeFn, err := loadScene(args[0])
	defer closeFn()
	if err != nil {
		return err
	}

	format, err := printer.ParseFormat(dumpFormat)
	if err != nil {
		return err
	}
	if currentSettings().JSON {
		format = printer.FormatJSON
	}
	opts := printer.DefaultOptions()
	opts.Format = format
	opts.ShowKinds = dumpKinds
	opts.ShowStats = dumpStats

	var buf bytes.Buffer
	p := printer.New(&buf, opts)
	if dumpChunk >= 0 {
		err = p.PrintChunk(doc, dumpChunk)
	} else {
		err = p.Print(doc)
	}
	if err != nil {
		return err
	}

	out := buf.String()
	if format == printer.FormatText {
		out = colorizeScene(out)
	}
	if !currentSettings().Quiet {
		_, err = os.Stdout.WriteString(out)
	}
	return err
}
