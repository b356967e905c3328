package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// debugLog discards everything unless --debug opens a file, since the
// terminal belongs to the UI.
var debugLog = slog.New(slog.NewTextHandler(io.Discard, nil))

// openDebugLog points debugLog at dir/debug.log, truncated per run. dir
// defaults to ~/.tscnexplorer. The returned func closes the file.
func openDebugLog(dir string) (func() error, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".tscnexplorer")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(filepath.Join(dir, "debug.log"))
	if err != nil {
		return nil, err
	}
	debugLog = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return f.Close, nil
}
