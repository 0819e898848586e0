package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
//
//nolint:gochecknoglobals // Style values are immutable after init.
var (
	ColorHeader   = lipgloss.Color("12")
	ColorLabel    = lipgloss.Color("245")
	ColorValue    = lipgloss.Color("15")
	ColorCritical = lipgloss.Color("196")
	ColorSpinner  = lipgloss.Color("205")
	ColorBorder   = lipgloss.Color("240")
)

// Styles.
//
//nolint:gochecknoglobals // Style values are immutable after init.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCritical)
	InfoStyle     = lipgloss.NewStyle().Italic(true).Foreground(ColorLabel)
	BoxStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	ErrorBoxStyle = BoxStyle.BorderForeground(ColorCritical)
)
