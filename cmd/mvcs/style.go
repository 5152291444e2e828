package main

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("39")
	colorAdd    = lipgloss.Color("42")
	colorDel    = lipgloss.Color("196")
	colorMuted  = lipgloss.Color("245")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	addStyle    = lipgloss.NewStyle().Foreground(colorAdd)
	delStyle    = lipgloss.NewStyle().Foreground(colorDel)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

func styled(s lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return s.Render(text)
}
