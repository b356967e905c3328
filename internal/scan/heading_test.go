package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/tscnkit/pkg/types"
)

func collectHeadings(s *Scanner) []types.Chunk {
	var out []types.Chunk
	for {
		c, ok := s.NextHeading()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

func TestNextHeading_Vocabulary(t *testing.T) {
	src := []byte(`[gd_scene load_steps=2 format=3]
[ext_resource type="Script" path="res://a.gd" id="1"]
[sub_resource type="RectangleShape2D" id="2"]
[node name="Root" type="Node2D"]
[connection signal="pressed" from="Button" to="." method="_on_pressed"]
`)
	s := New(src)
	chunks := collectHeadings(s)
	require.Len(t, chunks, 5)
	assert.False(t, s.Unrecognized())

	want := []struct {
		heading types.Heading
		keyword string
	}{
		{types.HeadingFileDescriptor, "gd_scene"},
		{types.HeadingExtResource, "ext_resource"},
		{types.HeadingSubResource, "sub_resource"},
		{types.HeadingNode, "node"},
		{types.HeadingNode, "connection"},
	}
	for i, w := range want {
		assert.Equal(t, w.heading, chunks[i].Heading, "chunk %d", i)
		assert.Equal(t, w.keyword, chunks[i].Source.String(src), "chunk %d", i)
		assert.Equal(t, byte('['), src[chunks[i].Source.Off-1])
	}
}

func TestNextHeading_SkipsBodyAndBlankLines(t *testing.T) {
	src := []byte("\n\nstray = 1\n[node name=\"A\"]\n\nposition = Vector2( 0, 0 )\n\n\n[node name=\"B\"]")
	chunks := collectHeadings(New(src))
	require.Len(t, chunks, 2)
	assert.Equal(t, "node", chunks[1].Source.String(src))
}

func TestNextHeading_UnrecognizedStops(t *testing.T) {
	src := []byte("[node name=\"A\"]\n[editable path=\"x\"]\n[node name=\"B\"]\n")
	s := New(src)

	c, ok := s.NextHeading()
	require.True(t, ok)
	assert.Equal(t, types.HeadingNode, c.Heading)

	_, ok = s.NextHeading()
	require.False(t, ok)
	assert.True(t, s.Unrecognized())
	assert.NoError(t, s.Err(), "an unknown keyword is not an error")

	// The line was consumed, so a caller that kept going would see B.
	c, ok = s.NextHeading()
	require.True(t, ok)
	assert.False(t, s.Unrecognized())
	assert.Equal(t, 37, c.Source.Off)
}

func TestNextHeading_KeywordNeedsSpace(t *testing.T) {
	// The keyword is everything before the first space, so "node]" is unknown.
	s := New([]byte("[node]\n"))
	_, ok := s.NextHeading()
	assert.False(t, ok)
	assert.True(t, s.Unrecognized())
}

func TestNextHeading_CaseSensitive(t *testing.T) {
	s := New([]byte("[Node name=\"A\"]\n"))
	_, ok := s.NextHeading()
	assert.False(t, ok)
	assert.True(t, s.Unrecognized())
}

func TestNextHeading_Empty(t *testing.T) {
	s := New(nil)
	_, ok := s.NextHeading()
	assert.False(t, ok)
	assert.False(t, s.Unrecognized())

	s = New([]byte("["))
	_, ok = s.NextHeading()
	assert.False(t, ok)
	assert.True(t, s.Unrecognized())
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"gd_scene", "ext_resource", "sub_resource", "node", "connection"}, Keywords())
	assert.Equal(t, "connection", KeywordFor(types.HeadingConnection))
	assert.Equal(t, "node", KeywordFor(types.HeadingNode))
	assert.Equal(t, "", KeywordFor(types.HeadingNothing))
}
