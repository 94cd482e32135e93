package teaview

import "github.com/charmbracelet/lipgloss"

const (
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorRed      lipgloss.Color = "#f38ba8"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(colorLavender)
	styleHeader   = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	styleFocused  = styleHeader.Underline(true).Foreground(colorLavender)
	styleItem     = lipgloss.NewStyle().Foreground(colorText)
	styleSelected = lipgloss.NewStyle().Foreground(colorGreen)
	styleExpanded = lipgloss.NewStyle().Foreground(colorBlue)
	styleDisabled = lipgloss.NewStyle().Foreground(colorOverlay1).Faint(true)
	styleCursor   = lipgloss.NewStyle().Background(colorSurface1).Bold(true)
	styleStatus   = lipgloss.NewStyle().Foreground(colorOverlay1)
	styleError    = lipgloss.NewStyle().Foreground(colorRed)
)
