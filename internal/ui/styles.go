package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	ColorRed     = lipgloss.Color("#EF4444")
	ColorGreen   = lipgloss.Color("#22C55E")
	ColorBlue    = lipgloss.Color("#3B82F6")
	ColorYellow  = lipgloss.Color("#EAB308")
	ColorPurple  = lipgloss.Color("#A855F7")
	ColorIndigo  = lipgloss.Color("#6366F1")
	ColorCyan    = lipgloss.Color("#00FFFF")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
	ColorWhite   = lipgloss.Color("#FFFFFF")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			MarginBottom(1)

	NavItemStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	NavItemActiveStyle = lipgloss.NewStyle().
				Foreground(ColorCyan).
				Underline(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	// Sign-in form.
	FormStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimGray).
			Padding(1, 3)

	FormTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			MarginBottom(1)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorDimGray).
			Width(30)

	InputFocusedStyle = InputStyle.
				BorderForeground(ColorCyan)

	// Status readout.
	AlertStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCyan).
			Padding(0, 1)

	AlertTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)
)

// ButtonStyle renders an action button in color. The selected button is
// drawn with a heavier border.
func ButtonStyle(color lipgloss.Color, selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(color).
		Padding(0, 2).
		MarginRight(2).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorDimGray)
	if selected {
		s = s.Bold(true).
			Border(lipgloss.ThickBorder()).
			BorderForeground(color)
	}
	return s
}
