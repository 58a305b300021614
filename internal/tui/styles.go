package tui

import "github.com/charmbracelet/lipgloss"

var (
	errorStyle = lipgloss.NewStyle().Bold(true)
)
