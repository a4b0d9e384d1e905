// Package styles provides shared lipgloss styles for CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/issuectl/internal/core/notify"
)

var (
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	Error   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	Info    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	Muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	Header  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// icons per notification level, matching the level colors above.
var icons = map[notify.Level]string{
	notify.LevelSuccess: "✓",
	notify.LevelError:   "✗",
	notify.LevelInfo:    "•",
}

// RenderNotification formats a notification as a single styled line.
func RenderNotification(n notify.Notification) string {
	switch n.Level {
	case notify.LevelSuccess:
		return Success.Render(icons[n.Level]) + " " + n.Message
	case notify.LevelError:
		return Error.Render(icons[n.Level]) + " " + n.Message
	default:
		return Info.Render(icons[notify.LevelInfo]) + " " + n.Message
	}
}
