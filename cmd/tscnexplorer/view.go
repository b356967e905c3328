package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := headerStyle.Render("tscnexplorer")
	info := pathStyle.Render(fmt.Sprintf("%s  %d chunks, %d pairs",
		m.path, m.doc.ChunksLen(), m.doc.AllPairsLen()))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, title, " ", info))
	b.WriteString("\n")

	if m.showDetail {
		b.WriteString(m.renderDetail())
	} else {
		b.WriteString(m.list.View())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderDetail() string {
	border := borderColor
	if item, ok := m.list.SelectedItem().(chunkItem); ok {
		border = headingColor(item.heading)
	}
	return paneStyle.
		BorderForeground(border).
		Width(max(m.width-2, 1)).
		Render(m.detail.View())
}

func (m Model) renderFooter() string {
	if m.statusMessage != "" {
		if m.statusIsError {
			return errorStyle.Render(m.statusMessage)
		}
		return statusStyle.Render(m.statusMessage)
	}
	if m.doc.Stats.Truncated {
		return errorStyle.Render("chunk list stopped at an unrecognized header")
	}

	parts := make([]string, 0, 4)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
