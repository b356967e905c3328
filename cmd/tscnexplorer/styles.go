package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/joshuapare/tscnkit/pkg/types"
)

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D7FF")
	successColor   = lipgloss.Color("#04B575")
	warningColor   = lipgloss.Color("#FFA500")
	errorColor     = lipgloss.Color("#FF4B4B")
	mutedColor     = lipgloss.Color("#666666")
	borderColor    = lipgloss.Color("#383838")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// headingColor picks the list accent for a chunk kind.
func headingColor(h types.Heading) lipgloss.Color {
	switch h {
	case types.HeadingFileDescriptor:
		return primaryColor
	case types.HeadingExtResource, types.HeadingSubResource:
		return warningColor
	case types.HeadingNode, types.HeadingConnection:
		return successColor
	default:
		return mutedColor
	}
}
