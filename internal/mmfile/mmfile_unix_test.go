//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_PrivateWritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.tscn")
	want := []byte("[node name=\"Root\"]\ntext = \"a\\nb\"\n")
	require.NoError(t, os.WriteFile(path, want, 0o644))

	data, cleanup, err := Map(path)
	require.NoError(t, err)
	require.Equal(t, want, data)

	data[0] = '#'
	require.NoError(t, cleanup())
	require.NoError(t, cleanup(), "second cleanup is a no-op")

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, onDisk, "writes through the mapping must not reach the file")
}

func TestMap_ZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.tscn")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	data, cleanup, err := Map(path)
	require.NoError(t, err)
	assert.Empty(t, data)
	require.NotNil(t, cleanup)
	assert.NoError(t, cleanup())
}

func TestMap_Missing(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "nope.tscn"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
