package dialog

import "github.com/charmbracelet/lipgloss"

// Colors shared by the dialog and the content rendered inside it.
var (
	MainColor       = lipgloss.Color("212")
	SecondaryColor  = lipgloss.Color("245")
	BorderColor     = lipgloss.Color("240")
	BackgroundColor = lipgloss.Color("235")
	CardColor       = lipgloss.Color("238")
	OverlayColor    = lipgloss.Color("233")
)

var (
	// Box is the content container.
	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(MainColor)

	TitleCount = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	HeaderRule = lipgloss.NewStyle().
			Foreground(BorderColor)
)
