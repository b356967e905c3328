package main

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/tscnkit/internal/testutil"
)

const testScene = `[gd_scene load_steps=2 format=3]

[ext_resource type="Script" path="res://player.gd" id="1"]

[node name="Player" type="CharacterBody2D"]
speed = 200
label = "say \"hi\""
`

func newTestModel(t *testing.T) (Model, *[]string) {
	t.Helper()
	doc := testutil.LoadScene(t, testScene)

	m := NewModel("player.tscn", doc, nil)
	copied := &[]string{}
	m.copyFn = func(s string) error {
		*copied = append(*copied, s)
		return nil
	}
	return m, copied
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModel_ListsChunks(t *testing.T) {
	m, _ := newTestModel(t)

	items := m.list.Items()
	require.Len(t, items, 3)
	node := items[2].(chunkItem)
	assert.Equal(t, "node", node.keyword)
	assert.Equal(t, 2, node.header)
	assert.Equal(t, 2, node.body)
	assert.Equal(t, "#2 [node]", node.Title())
	assert.Contains(t, node.Description(), "Node")
	assert.Equal(t, 0, m.selected())
}

func TestUpdate_EnterOpensDetail(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 2, m.selected())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.showDetail)
	assert.Contains(t, m.detailText, "; #2 Node")
	assert.Contains(t, m.detailText, `[node name="Player" type="CharacterBody2D"]`)
	assert.Contains(t, m.detailText, "speed = 200")
	assert.Contains(t, m.detailText, `label = say "hi"`)
	assert.Contains(t, m.View(), "speed = 200")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showDetail)
}

func TestUpdate_CopyChunk(t *testing.T) {
	m, copied := newTestModel(t)

	m, cmd := send(t, m, keyRune('y'))
	require.Len(t, *copied, 1)
	assert.Contains(t, (*copied)[0], "[gd_scene load_steps=2 format=3]")
	assert.Equal(t, "Chunk #0 copied to clipboard", m.statusMessage)
	assert.False(t, m.statusIsError)
	assert.NotNil(t, cmd)

	m, _ = send(t, m, clearStatusMsg{})
	assert.Empty(t, m.statusMessage)
}

func TestUpdate_CopyKeepsEscapes(t *testing.T) {
	m, copied := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	_, _ = send(t, m, keyRune('y'))

	require.Len(t, *copied, 1)
	assert.Contains(t, (*copied)[0], `label = "say \"hi\""`)
}

func TestUpdate_CopyFailure(t *testing.T) {
	m, _ := newTestModel(t)
	m.copyFn = func(string) error { return errors.New("no clipboard") }

	m, _ = send(t, m, keyRune('y'))
	assert.True(t, m.statusIsError)
	assert.Contains(t, m.statusMessage, "no clipboard")
	assert.Contains(t, m.View(), "no clipboard")
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := send(t, m, keyRune('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 120-paneFrameWidth, m.detail.Width)
	assert.Equal(t, 40-chromeHeight-paneFrameLines, m.detail.Height)
}

func TestView_Footer(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "player.tscn")
	assert.Contains(t, view, "3 chunks")
	assert.Contains(t, view, "y copy chunk")
}

func TestView_TruncatedNotice(t *testing.T) {
	doc := testutil.LoadScene(t, "[gd_scene format=3]\n[editable path=\"x\"]\n")
	require.True(t, doc.Stats.Truncated)

	m := NewModel("t.tscn", doc, nil)
	assert.Contains(t, m.View(), "unrecognized header")
}

func TestModel_Close(t *testing.T) {
	m, _ := newTestModel(t)
	assert.NoError(t, m.Close())

	calls := 0
	m.closeFn = func() error { calls++; return nil }
	assert.NoError(t, m.Close())
	assert.Equal(t, 1, calls)
}
