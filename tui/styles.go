// tui/styles.go
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yackko/astro-tools/internal/optics"
)

var (
	FocusedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	BlurredStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5733"))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(lipgloss.Color("69"))
	LabelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(32)
	ValueStyle     = lipgloss.NewStyle().Bold(true)
	SecondaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	GoodStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71"))
	WarnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	docStyle       = lipgloss.NewStyle().Margin(1, 2)
)

// samplingStyle colours a sampling verdict: green when the scale matches
// the seeing, orange when it is off in either direction.
func samplingStyle(s optics.Sampling) lipgloss.Style {
	switch s {
	case optics.SamplingGood:
		return GoodStyle
	case optics.SamplingOver, optics.SamplingUnder:
		return WarnStyle
	}
	return ValueStyle
}

// samplingIcon is the glyph shown in front of a sampling verdict.
func samplingIcon(s optics.Sampling) string {
	switch s {
	case optics.SamplingOver:
		return "▲"
	case optics.SamplingGood:
		return "✔"
	case optics.SamplingUnder:
		return "▼"
	}
	return ""
}
