package cli

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the symbols listing and the preview TUI.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary accents
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
	styleSecondary = lipgloss.NewStyle().Foreground(colorGray)
	styleFrame     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
