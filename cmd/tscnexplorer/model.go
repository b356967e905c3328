package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/tscnkit/pkg/types"
	"github.com/joshuapare/tscnkit/scene/printer"
)

// Layout constants
const (
	defaultWidth   = 80
	defaultHeight  = 24
	chromeHeight   = 2 // header line plus footer line
	paneFrameWidth = 4 // rounded border plus horizontal padding
	paneFrameLines = 2
	statusLifetime = 2 * time.Second
)

// chunkItem is one entry of the chunk list.
type chunkItem struct {
	index   int
	heading types.Heading
	keyword string
	header  int
	body    int
}

func (c chunkItem) Title() string {
	return fmt.Sprintf("#%d [%s]", c.index, c.keyword)
}

func (c chunkItem) Description() string {
	return fmt.Sprintf("%s · %d header attrs · %d pairs", c.heading, c.header, c.body)
}

func (c chunkItem) FilterValue() string { return c.keyword }

// Model is the main application model
type Model struct {
	path    string
	doc     *types.Document
	closeFn func() error
	keys    KeyMap

	list   list.Model
	detail viewport.Model

	showDetail bool
	detailText string
	width      int
	height     int

	// Status message for temporary feedback
	statusMessage string
	statusIsError bool

	// copyFn writes text to the system clipboard.
	copyFn func(string) error
}

type clearStatusMsg struct{}

// NewModel builds the explorer for a loaded document. closeFn releases the
// document's backing file and may be nil.
func NewModel(path string, doc *types.Document, closeFn func() error) Model {
	items := make([]list.Item, 0, doc.ChunksLen())
	for i := range doc.Chunks {
		c := &doc.Chunks[i]
		items = append(items, chunkItem{
			index:   i,
			heading: c.Heading,
			keyword: c.Keyword(doc.Source),
			header:  len(c.HeadingPairs),
			body:    len(c.Pairs),
		})
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, defaultWidth, defaultHeight-chromeHeight)
	l.Title = "Chunks"
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	m := Model{
		path:    path,
		doc:     doc,
		closeFn: closeFn,
		keys:    DefaultKeyMap(),
		list:    l,
		detail:  viewport.New(defaultWidth-paneFrameWidth, defaultHeight-chromeHeight-paneFrameLines),
		width:   defaultWidth,
		height:  defaultHeight,
		copyFn:  clipboard.WriteAll,
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the document's backing file.
func (m Model) Close() error {
	if m.closeFn == nil {
		return nil
	}
	return m.closeFn()
}

// selected returns the index of the highlighted chunk, or -1.
func (m Model) selected() int {
	item, ok := m.list.SelectedItem().(chunkItem)
	if !ok {
		return -1
	}
	return item.index
}

// renderChunk formats chunk i with the printer.
func (m Model) renderChunk(i int, opts printer.Options) (string, error) {
	var buf bytes.Buffer
	if err := printer.New(&buf, opts).PrintChunk(m.doc, i); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (m Model) openDetail() (Model, tea.Cmd) {
	i := m.selected()
	if i < 0 {
		return m, nil
	}
	opts := printer.DefaultOptions()
	opts.ShowKinds = true
	text, err := m.renderChunk(i, opts)
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	debugLog.Debug("open chunk", "index", i)
	m.detailText = text
	m.detail.SetContent(text)
	m.detail.GotoTop()
	m.showDetail = true
	return m, nil
}

func (m Model) copyChunk() (Model, tea.Cmd) {
	i := m.selected()
	if i < 0 {
		return m, nil
	}
	opts := printer.DefaultOptions()
	opts.Format = printer.FormatTSCN
	text, err := m.renderChunk(i, opts)
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	if err := m.copyFn(text); err != nil {
		debugLog.Warn("clipboard write failed", "error", err)
		return m.setStatus("Copy failed: "+err.Error(), true)
	}
	return m.setStatus(fmt.Sprintf("Chunk #%d copied to clipboard", i), false)
}

func (m Model) setStatus(msg string, isErr bool) (Model, tea.Cmd) {
	m.statusMessage = msg
	m.statusIsError = isErr
	return m, tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height
	bodyHeight := max(height-chromeHeight, 1)
	m.list.SetSize(width, bodyHeight)
	m.detail.Width = max(width-paneFrameWidth, 1)
	m.detail.Height = max(bodyHeight-paneFrameLines, 1)
	return m
}
