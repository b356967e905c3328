package emit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/tscnkit/internal/emit"
	"github.com/joshuapare/tscnkit/pkg/scene"
	"github.com/joshuapare/tscnkit/pkg/types"
)

func TestAppendHeader_FallsBackToHeadingKeyword(t *testing.T) {
	src := []byte("name=Root")
	c := &types.Chunk{
		Heading: types.HeadingSubResource,
		Source:  types.Span{Off: -1},
		HeadingPairs: []types.Pair{
			{Key: types.Span{Off: 0, Len: 4}, Value: types.Span{Off: 5, Len: 4}},
		},
	}
	assert.Equal(t, "[sub_resource name=Root]", string(emit.AppendHeader(nil, src, c)))

	c.Heading = types.HeadingNothing
	c.HeadingPairs = nil
	assert.Equal(t, "[]", string(emit.AppendHeader(nil, src, c)))
}

func TestAppendPair(t *testing.T) {
	doc, err := scene.Load([]byte("[node name=\"A\"]\nplain = 1\nquoted = \"x\"\nmulti = \"a\\nb\"\n}\n"), nil)
	require.NoError(t, err)
	src := doc.Source
	ps := doc.Chunks[0].Pairs
	require.Len(t, ps, 4)

	got := make([]string, 0, len(ps))
	for _, p := range ps {
		got = append(got, string(emit.AppendPair(nil, src, p)))
	}
	assert.Equal(t, []string{
		"plain = 1",
		"quoted = \"x\"",
		"multi = \"a\\nb\"",
		"}",
	}, got)
}

func TestAppendDocument_Options(t *testing.T) {
	doc, err := scene.Load([]byte("[node name=\"A\"]\nx = 1\n[node name=\"B\"]\n"), nil)
	require.NoError(t, err)

	out := emit.AppendDocument(nil, doc, emit.DefaultOptions())
	assert.Equal(t, "[node name=\"A\"]\nx = 1\n\n[node name=\"B\"]\n", string(out))

	out = emit.AppendDocument(nil, doc, emit.Options{})
	assert.Equal(t, "[node name=\"A\"]\nx = 1\n[node name=\"B\"]\n", string(out))

	out = emit.AppendDocument(nil, doc, emit.Options{LineEnding: emit.CRLF})
	assert.Equal(t, "[node name=\"A\"]\r\nx = 1\r\n[node name=\"B\"]\r\n", string(out))
}
