package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteScene(t *testing.T) {
	path := WriteScene(t, "main.tscn", PlayerScene)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, PlayerScene, string(data))
}

func TestLoadScene_PlayerScene(t *testing.T) {
	doc := LoadScene(t, PlayerScene)

	assert.True(t, doc.OK)
	assert.Equal(t, 6, doc.ChunksLen())
	assert.False(t, doc.Stats.Truncated)
}

func TestLoadScene_LevelScene(t *testing.T) {
	doc := LoadScene(t, LevelScene)

	assert.Equal(t, 7, doc.ChunksLen())
	assert.Equal(t, doc.Stats.HeadingPairs, doc.Stats.PopulatedHeadingPairs)
	assert.Equal(t, doc.Stats.Pairs, doc.Stats.PopulatedPairs)
}
