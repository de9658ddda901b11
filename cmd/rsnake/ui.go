package main

import "github.com/charmbracelet/lipgloss"

var (
	// errorStyle is the style for startup error messages
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))

	// errorPrefix labels every error line
	errorPrefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000")).Render("rsnake:")
)

func formatError(err error) string {
	return errorPrefix + " " + errorStyle.Render(err.Error())
}
