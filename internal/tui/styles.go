package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	okFg      = lipgloss.Color("#22C55E")
	failFg    = lipgloss.Color("#EF4444")
	infoFg    = lipgloss.Color("#3B82F6")
	warnFg    = lipgloss.Color("#EAB308")
	borderCol = lipgloss.Color("#243141")
)

// palette holds the styles bound to one output's renderer, so colors are
// dropped when that output is not a terminal.
type palette struct {
	accent lipgloss.Style
	ok     lipgloss.Style
	fail   lipgloss.Style
	info   lipgloss.Style
	warn   lipgloss.Style
	dim    lipgloss.Style
	box    lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		accent: r.NewStyle().Foreground(accentFg),
		ok:     r.NewStyle().Foreground(okFg),
		fail:   r.NewStyle().Foreground(failFg),
		info:   r.NewStyle().Foreground(infoFg),
		warn:   r.NewStyle().Foreground(warnFg),
		dim:    r.NewStyle().Foreground(baseDimFg),
		box:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1),
	}
}
