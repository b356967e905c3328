package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkStrict bool

func init() {
	cmd := newCheckCmd()
	cmd.Flags().BoolVar(&checkStrict, "strict", false, "Treat truncation at an unrecognized header as a failure")
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <scene>...",
		Short: "Check that scenes load",
		Long: `The check command loads each scene and reports whether it loaded. It exits
non-zero when any scene fails.

Example:
  tscnctl check main.tscn
  tscnctl check scenes/*.tscn --strict
  tscnctl check scenes/*.tscn --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
	return cmd
}

// CheckResult is the outcome for one file.
type CheckResult struct {
	File      string `json:"file"`
	OK        bool   `json:"ok"`
	Chunks    int    `json:"chunks"`
	Truncated bool   `json:"truncated"`
	Error     string `json:"error,omitempty"`
}

func checkOne(path string) CheckResult {
	res := CheckResult{File: path}
	doc, closeFn, err := loadScene(path)
	defer closeFn()
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Chunks = doc.ChunksLen()
	res.Truncated = doc.Stats.Truncated
	res.OK = !(checkStrict && res.Truncated)
	if !res.OK {
		res.Error = "truncated at an unrecognized header"
	}
	return res
}

func runCheck(args []string) error {
	results := make([]CheckResult, 0, len(args))
	failed := 0
	for _, path := range args {
		res := checkOne(path)
		if !res.OK {
			failed++
		}
		results = append(results, res)
	}

	if currentSettings().JSON {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			switch {
			case !res.OK:
				printInfo("%s %s: %s\n", paint(failStyle, "FAIL"), res.File, res.Error)
			case res.Truncated:
				printInfo("%s %s (%d chunks, truncated)\n", paint(warnStyle, "WARN"), res.File, res.Chunks)
			default:
				printInfo("%s %s (%d chunks)\n", paint(okStyle, "ok  "), res.File, res.Chunks)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scene(s) failed to load", failed, len(args))
	}
	return nil
}
