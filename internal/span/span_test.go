package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New(2, 5)
	assert.Equal(t, Span{Off: 2, Len: 3}, s)
	assert.False(t, s.Absent())

	absent := New(-1, 10)
	assert.True(t, absent.Absent())
	assert.Zero(t, absent.Len)

	empty := New(4, 4)
	assert.False(t, empty.Absent(), "zero-length span is distinct from absent")
	assert.Zero(t, empty.Len)
}

func TestSubstring(t *testing.T) {
	s := Span{Off: 3, Len: 5}
	assert.Equal(t, s, Substring(s, 0))
	assert.Equal(t, Span{Off: 5, Len: 3}, Substring(s, 2))
	assert.Equal(t, Span{Off: 8, Len: 0}, Substring(s, 5))
}

func TestTrim(t *testing.T) {
	src := []byte("\t  key = value \r\n")
	s := Whole(src)

	left := TrimLeft(src, s)
	assert.Equal(t, "key = value \r\n", string(Bytes(src, left)))

	right := TrimRight(src, s)
	assert.Equal(t, "\t  key = value", string(Bytes(src, right)))

	assert.Equal(t, "key = value", string(Bytes(src, Trim(src, s))))

	blank := []byte("   ")
	trimmed := Trim(blank, Whole(blank))
	assert.Zero(t, trimmed.Len)
	assert.False(t, trimmed.Absent())

	assert.Equal(t, None, TrimLeft(nil, None))
}

func TestEqual(t *testing.T) {
	src := []byte("node node nodes")
	a := New(0, 4)
	b := New(5, 9)
	c := New(10, 15)
	assert.True(t, Equal(src, a, b))
	assert.False(t, Equal(src, a, c))

	assert.True(t, Equal(src, New(1, 1), New(7, 7)), "empty spans compare equal")
	assert.True(t, Equal(src, None, New(3, 3)))

	assert.True(t, EqualString(src, a, "node"))
	assert.False(t, EqualString(src, a, "nod"))
	assert.True(t, EqualString(src, None, ""))
}

func TestFirst(t *testing.T) {
	src := []byte("[node]")
	b, ok := First(src, Whole(src))
	require.True(t, ok)
	assert.Equal(t, byte('['), b)

	_, ok = First(src, New(2, 2))
	assert.False(t, ok)
	_, ok = First(src, None)
	assert.False(t, ok)
}

func TestCut(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		sep      byte
		wantOK   bool
		wantHead string
		wantTail string
	}{
		{name: "found", in: "key=value", sep: '=', wantOK: true, wantHead: "key", wantTail: "value"},
		{name: "first occurrence", in: "a=b=c", sep: '=', wantOK: true, wantHead: "a", wantTail: "b=c"},
		{name: "at end", in: "line\n", sep: '\n', wantOK: true, wantHead: "line", wantTail: ""},
		{name: "at start", in: "\nrest", sep: '\n', wantOK: true, wantHead: "", wantTail: "rest"},
		{name: "missing", in: "no separator", sep: '=', wantOK: false, wantHead: "no separator", wantTail: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := []byte(tt.in)
			p := Cut(src, Whole(src), tt.sep)
			assert.Equal(t, tt.wantOK, p.OK)
			assert.Equal(t, tt.wantHead, string(Bytes(src, p.Head)))
			assert.Equal(t, tt.wantTail, string(Bytes(src, p.Tail)))
			assert.False(t, p.Tail.Absent())
		})
	}
}

func TestCutEmptyShortCircuits(t *testing.T) {
	p := Cut(nil, None, '\n')
	assert.False(t, p.OK)
	assert.True(t, p.Head.Absent())
	assert.True(t, p.Tail.Absent())
	assert.Zero(t, p.Head.Len)
	assert.Zero(t, p.Tail.Len)

	src := []byte("abc")
	p = Cut(src, New(3, 3), 'c')
	assert.False(t, p.OK)
	assert.True(t, p.Head.Absent())
}

func TestCutWithinWindow(t *testing.T) {
	src := []byte("a=b|c=d")
	p := Cut(src, New(4, 7), '=')
	require.True(t, p.OK)
	assert.Equal(t, Span{Off: 4, Len: 1}, p.Head)
	assert.Equal(t, Span{Off: 6, Len: 1}, p.Tail)

	p = Cut(src, New(0, 1), '=')
	assert.False(t, p.OK, "separator outside the window is not seen")
}

func TestCutEither(t *testing.T) {
	src := []byte("key value]")
	p := CutEither(src, Whole(src), ' ', ']')
	require.True(t, p.OK)
	assert.Equal(t, "key", string(Bytes(src, p.Head)))
	assert.Equal(t, "value]", string(Bytes(src, p.Tail)))

	src = []byte("value]")
	p = CutEither(src, Whole(src), ' ', ']')
	require.True(t, p.OK)
	assert.Equal(t, "value", string(Bytes(src, p.Head)))
	assert.Equal(t, "", string(Bytes(src, p.Tail)))

	src = []byte("plain")
	p = CutEither(src, Whole(src), ' ', ']')
	assert.False(t, p.OK)
	assert.True(t, p.Head.Absent())
	assert.True(t, p.Tail.Absent())

	p = CutEither(nil, None, ' ', ']')
	assert.False(t, p.OK)
}
