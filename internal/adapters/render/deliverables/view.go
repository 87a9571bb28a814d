// Package deliverables renders grouped deliverable listings for the
// terminal.
package deliverables

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"studiohub/internal/aggregate"
	"studiohub/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

// Render formats the summary line, each group with its items, and the
// pagination footer.
func Render(groups []aggregate.Group, summary aggregate.Summary, page aggregate.PageResult, opts RenderOptions) string {
	return renderView(groups, summary, page, opts, newStyles())
}

func renderView(groups []aggregate.Group, summary aggregate.Summary, page aggregate.PageResult, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Deliverables"),
		s.header.Render(fmt.Sprintf("total: %d  overdue: %d  due today: %d  upcoming: %d",
			summary.Total, summary.Overdue, summary.DueToday, summary.Upcoming)),
	}

	if len(groups) == 0 {
		lines = append(lines, s.empty.Render("No deliverables match the current filters."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, group := range groups {
		lines = append(lines, s.section.Render(renderGroup(group, opts, s)))
	}

	if page.PageSize > 0 && page.Total > page.PageSize {
		totalPages := (page.Total + page.PageSize - 1) / page.PageSize
		lines = append(lines, s.pageFoot.Render(fmt.Sprintf("page %d of %d (%d records)", page.Page, totalPages, page.Total)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderGroup(group aggregate.Group, opts RenderOptions, s styles) string {
	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.group.Render(group.Name),
			s.count.Render(fmt.Sprintf(" (%d)", len(group.Items))),
		),
	}

	for _, item := range group.Items {
		parts = append(parts, renderItem(item, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderItem(item domain.Deliverable, opts RenderOptions, s styles) string {
	line := "  " + s.item.Render(item.Title)

	line += " " + s.meta.Render(dueLabel(item, opts, s))

	details := item.Assignee
	if details == "" {
		details = "unassigned"
	}
	if item.ClientName != "" {
		details += " · " + item.ClientName
	}
	if item.ProjectName != "" {
		details += " · " + item.ProjectName
	}
	line += " " + s.meta.Render("["+details+"]")

	return line
}

func dueLabel(item domain.Deliverable, opts RenderOptions, s styles) string {
	if item.DueDate.IsZero() {
		return s.noDueDate.Render("no due date")
	}

	label := "due " + item.DueDate.Format("Jan 2")
	today := opts.Now
	switch {
	case sameDay(item.DueDate, today):
		return s.dueToday.Render(label + " (today)")
	case item.DueDate.Before(today) && !item.IsComplete():
		return s.overdue.Render(label)
	default:
		return label
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
