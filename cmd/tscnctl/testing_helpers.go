package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// resetSettings puts global and per-command flags back to their defaults
func resetSettings(t *testing.T) {
	t.Helper()
	viper.Set("verbose", false)
	viper.Set("quiet", false)
	viper.Set("json", false)
	viper.Set("no_color", true)
	viper.Set("encoding", "UTF-8")
	viper.Set("arena_chunks", 0)
	viper.Set("arena_pairs", 0)
	viper.Set("max_bytes", 0)

	dumpFormat, dumpKinds, dumpStats, dumpChunk = "text", false, false, -1
	checkStrict = false
	fmtOutput, fmtWrite, fmtCRLF, fmtNoBlankLines, fmtOutEncoding, fmtBOM = "", false, false, false, "UTF-8", false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.String()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return <-done, fnErr
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
