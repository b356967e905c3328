package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	keyColor     = lipgloss.Color("#00D7FF")
	successColor = lipgloss.Color("#04B575")
	warningColor = lipgloss.Color("#FFA500")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	keyStyle     = lipgloss.NewStyle().Foreground(keyColor)
	commentStyle = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(successColor)
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(warningColor)
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
)

// paint renders s with style unless color is disabled.
func paint(style lipgloss.Style, s string) string {
	if currentSettings().NoColor {
		return s
	}
	return style.Render(s)
}

// colorizeScene styles printer text output line by line: headers, comment
// lines and the key of each body line.
func colorizeScene(text string) string {
	if currentSettings().NoColor {
		return text
	}
	lines := strings.SplitAfter(text, "\n")
	var sb strings.Builder
	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]
		switch {
		case body == "":
		case strings.HasPrefix(body, "["):
			body = headerStyle.Render(body)
		case strings.HasPrefix(body, ";"):
			body = commentStyle.Render(body)
		default:
			if k, v, ok := strings.Cut(body, " = "); ok {
				body = keyStyle.Render(k) + " = " + v
			}
		}
		sb.WriteString(body)
		sb.WriteString(nl)
	}
	return sb.String()
}
