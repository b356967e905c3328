package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/tscnkit/internal/span"
	"github.com/joshuapare/tscnkit/pkg/types"
)

func collectPairs(src []byte, s *Scanner, decode bool) []kv {
	var out []kv
	for {
		p, ok := s.NextPair(decode)
		if !ok {
			return out
		}
		out = append(out, kv{p.Key.String(src), p.Value.String(src)})
	}
}

func TestNextPair_TrimsKeyAndValue(t *testing.T) {
	src := []byte("[node name=\"Root\"]\nposition   =   Vector2( 0, 0 )   \r\nvisible=false\n")
	got := collectPairs(src, New(src), true)
	assert.Equal(t, []kv{{"position", "Vector2( 0, 0 )"}, {"visible", "false"}}, got)
}

func TestNextPair_SkipsHeaderIndentedAndBlankLines(t *testing.T) {
	src := []byte("[gd_scene format=3]\n\n  indented = 1\n\tTabbed = 2\n\r\nreal = 3\n[node name=\"A\"]\nother = 4")
	got := collectPairs(src, New(src), true)
	assert.Equal(t, []kv{{"real", "3"}, {"other", "4"}}, got)
}

func TestNextPair_LineWithoutAssign(t *testing.T) {
	src := []byte("orphan\n")
	s := New(src)
	p, ok := s.NextPair(true)
	require.True(t, ok)
	assert.Equal(t, "orphan", p.Key.String(src))
	assert.Zero(t, p.Value.Len)
}

func TestNextPair_ValueKeepsLaterAssigns(t *testing.T) {
	src := []byte("expr = a == b\n")
	got := collectPairs(src, New(src), true)
	assert.Equal(t, []kv{{"expr", "a == b"}}, got)
}

func TestNextPair_DecodesInPlace(t *testing.T) {
	src := []byte(`text = "a\nb\t\"c\"\\d\qe"` + "\n")
	raw := len(`a\nb\t\"c\"\\d\qe`)
	s := New(src)

	p, ok := s.NextPair(true)
	require.True(t, ok)
	assert.Equal(t, "a\nb\t\"c\"\\dqe", p.Value.String(src))
	assert.Less(t, p.Value.Len, raw)
	assert.True(t, WasQuoted(src, p.Value))

	// The source buffer itself now holds the decoded prefix.
	assert.Equal(t, "a\nb\t\"c\"\\dqe", string(src[p.Value.Off:p.Value.Off+p.Value.Len]))
}

func TestNextPair_NoDecodeLeavesSource(t *testing.T) {
	src := []byte(`text = "a\nb"`)
	orig := string(src)
	s := New(src)

	p, ok := s.NextPair(false)
	require.True(t, ok)
	assert.Equal(t, `a\nb`, p.Value.String(src))
	assert.Equal(t, orig, string(src))
}

func TestNextPair_EmptyQuoted(t *testing.T) {
	src := []byte(`name = ""`)
	s := New(src)
	p, ok := s.NextPair(true)
	require.True(t, ok)
	assert.Zero(t, p.Value.Len)
	assert.False(t, p.Value.Absent())
	assert.True(t, WasQuoted(src, p.Value))
}

func TestNextPair_Unterminated(t *testing.T) {
	tests := []string{
		"text = \"open\n",
		"text = \"\n",
		"text = \"multi\nline\"\n",
		"text = \"abc\\\"\n",
		"text = \"\\\"\n",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			s := New([]byte(in))
			_, ok := s.NextPair(false)
			assert.False(t, ok)
			assert.ErrorIs(t, s.Err(), types.ErrUnterminatedString)
		})
	}
}

func TestNextPair_EscapedBackslashBeforeClose(t *testing.T) {
	src := []byte("path = \"C:\\\\\"\n")
	s := New(src)
	p, ok := s.NextPair(true)
	require.True(t, ok)
	require.NoError(t, s.Err())
	assert.Equal(t, `C:\`, p.Value.String(src))
}

func TestNextPair_NarrowedToChunk(t *testing.T) {
	src := []byte("[node name=\"A\"]\na = 1\n[node name=\"B\"]\nb = 2\n")
	s := New(src)
	// From A's '[' up to B's '['.
	s.Reset(span.New(0, 22))
	got := collectPairs(src, s, true)
	assert.Equal(t, []kv{{"a", "1"}}, got)
}

func TestWasQuoted(t *testing.T) {
	src := []byte(`a = 1`)
	assert.False(t, WasQuoted(src, types.Span{Off: 4, Len: 1}))
	assert.False(t, WasQuoted(src, span.None))
	assert.False(t, WasQuoted(src, types.Span{Off: 0, Len: 1}))
}
