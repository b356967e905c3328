package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter_Atomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tscn")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	var sink Sink = &FileWriter{Path: path}
	require.NoError(t, sink.WriteScene([]byte("[node name=\"A\"]\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[node name=\"A\"]\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "mode of the replaced file is kept")
}

func TestFileWriter_Perm(t *testing.T) {
	dir := t.TempDir()

	fresh := filepath.Join(dir, "fresh.tscn")
	require.NoError(t, (&FileWriter{Path: fresh}).WriteScene([]byte("x")))
	info, err := os.Stat(fresh)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	explicit := filepath.Join(dir, "explicit.tscn")
	require.NoError(t, os.WriteFile(explicit, []byte("old"), 0o600))
	require.NoError(t, (&FileWriter{Path: explicit, Perm: 0o640}).WriteScene([]byte("x")))
	info, err = os.Stat(explicit)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestFileWriter_MissingDir(t *testing.T) {
	w := &FileWriter{Path: filepath.Join(t.TempDir(), "nope", "main.tscn")}
	require.Error(t, w.WriteScene([]byte("x")))
}

func TestMemWriter(t *testing.T) {
	src := []byte("abc")
	var w MemWriter
	require.NoError(t, w.WriteScene(src))
	src[0] = 'z'
	assert.Equal(t, "abc", string(w.Buf))
}
