package ui

import "github.com/charmbracelet/lipgloss"

// Styles defines the lipgloss styles shared across the CLI
var Styles = struct {
	Bold      lipgloss.Style
	Title     lipgloss.Style
	Key       lipgloss.Style
	Value     lipgloss.Style
	Highlight lipgloss.Style
	Dim       lipgloss.Style
	ErrorBox  lipgloss.Style
	DetailBox lipgloss.Style
}{
	Bold: lipgloss.NewStyle().Bold(true),

	Title: lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")).
		Bold(true).
		MarginTop(1).
		MarginBottom(1),

	Key:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
	Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

	ErrorBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(0, 1).
		Width(60),

	DetailBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86")).
		Padding(0, 1),
}
