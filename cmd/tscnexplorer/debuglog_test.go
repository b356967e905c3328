package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugLog_DiscardsByDefault(t *testing.T) {
	assert.False(t, debugLog.Enabled(t.Context(), slog.LevelError))
}

func TestOpenDebugLog_WritesJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	closeFn, err := openDebugLog(dir)
	require.NoError(t, err)
	t.Cleanup(func() { debugLog = slog.New(slog.NewTextHandler(io.Discard, nil)) })

	debugLog.Debug("scene loaded", "chunks", 3)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"scene loaded"`)
	assert.Contains(t, string(data), `"chunks":3`)
}
