package styles

import (
	"github.com/allbin/ttynamed/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Header styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Background(colors.Surface0).
			Padding(0, 1)

	// Table styles
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colors.Text)

	TableBaseStyle = lipgloss.NewStyle().
			BorderForeground(colors.Surface1)

	// Listing states
	PresentStyle = lipgloss.NewStyle().
			Foreground(colors.Green) // alias bound and attached

	PartialStyle = lipgloss.NewStyle().
			Foreground(colors.Yellow) // attached, identity incomplete

	MissingStyle = lipgloss.NewStyle().
			Foreground(colors.Red) // alias bound, device absent

	// Help styles
	HelpStyle = lipgloss.NewStyle().
			Foreground(colors.Overlay0)
)
