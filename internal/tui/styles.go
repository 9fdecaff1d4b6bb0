package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("205")
	Secondary = lipgloss.Color("86")
	Subtle    = lipgloss.Color("241")
	Success   = lipgloss.Color("46")
	Warning   = lipgloss.Color("214")
	Error     = lipgloss.Color("196")

	// Header styles
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(Primary).
		Padding(0, 2)

	// Section styles
	SectionStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	SectionTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	// Preview box around the built command
	PreviewStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Secondary).
		Padding(0, 1)

	// Label and value styles
	LabelStyle = lipgloss.NewStyle().
		Width(24)

	FlagStyle = lipgloss.NewStyle().
		Foreground(Subtle).
		Width(24)

	ValueStyle = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	SelectedStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success)

	WarningStyle = lipgloss.NewStyle().
		Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	// Dim style
	DimStyle = lipgloss.NewStyle().
		Foreground(Subtle).
		Italic(true)

	// Help style
	HelpStyle = lipgloss.NewStyle().
		Foreground(Subtle).
		MarginTop(1)
)

// RenderStatus returns a styled status indicator.
func RenderStatus(ok bool, okText, failText string) string {
	if ok {
		return SuccessStyle.Render("✓ " + okText)
	}
	return ErrorStyle.Render("✗ " + failText)
}
