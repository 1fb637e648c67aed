package preview

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header   lipgloss.Style
	text     lipgloss.Style
	bold     lipgloss.Style
	italic   lipgloss.Style
	code     lipgloss.Style
	field    lipgloss.Style
	context  lipgloss.Style
	divider  lipgloss.Style
	button   lipgloss.Style
	primary  lipgloss.Style
	overflow lipgloss.Style
	image    lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		text:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		bold:     lipgloss.NewStyle().Bold(true),
		italic:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		code:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		field:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(2),
		context:  lipgloss.NewStyle().Faint(true),
		divider:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		button:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Border(lipgloss.NormalBorder(), false, true).BorderForeground(lipgloss.Color("244")),
		primary:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("29")).Padding(0, 1),
		overflow: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		image:    lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
