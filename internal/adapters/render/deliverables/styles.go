package deliverables

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	group     lipgloss.Style
	count     lipgloss.Style
	item      lipgloss.Style
	meta      lipgloss.Style
	overdue   lipgloss.Style
	dueToday  lipgloss.Style
	empty     lipgloss.Style
	section   lipgloss.Style
	pageFoot  lipgloss.Style
	noDueDate lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		group:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		count:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		item:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:      lipgloss.NewStyle().Faint(true),
		overdue:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		dueToday:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		empty:     lipgloss.NewStyle().Faint(true),
		section:   lipgloss.NewStyle().MarginTop(1),
		pageFoot:  lipgloss.NewStyle().Faint(true).MarginTop(1),
		noDueDate: lipgloss.NewStyle().Faint(true),
	}
}
