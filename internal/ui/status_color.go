package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tiagokriok/taskflow/internal/domain"
	"github.com/tiagokriok/taskflow/internal/engine"
)

var tagColors = map[domain.TagColor]lipgloss.Color{
	domain.TagRed:    lipgloss.Color("#e5484d"),
	domain.TagOrange: lipgloss.Color("#f76b15"),
	domain.TagYellow: lipgloss.Color("#ffc53d"),
	domain.TagGreen:  lipgloss.Color("#30a46c"),
	domain.TagBlue:   lipgloss.Color("#0090ff"),
	domain.TagPurple: lipgloss.Color("#8e4ec6"),
	domain.TagPink:   lipgloss.Color("#d6409f"),
	domain.TagGray:   lipgloss.Color("#8b8d98"),
}

func colorForTag(c domain.TagColor) lipgloss.Color {
	if color, ok := tagColors[c]; ok {
		return color
	}
	return lipgloss.Color("252")
}

func priorityColor(p domain.Priority) lipgloss.Color {
	switch p {
	case domain.PriorityHigh:
		return lipgloss.Color("203")
	case domain.PriorityMedium:
		return lipgloss.Color("214")
	case domain.PriorityLow:
		return lipgloss.Color("114")
	default:
		return lipgloss.Color("245")
	}
}

// renderTagChips renders the task's resolvable labels as colored chips.
// Labels without a board tag are skipped.
func (m Model) renderTagChips(task domain.Task) string {
	tags := engine.ResolveTags(m.board, task)
	chips := make([]string, 0, len(tags))
	for _, tag := range tags {
		chips = append(chips, lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(colorForTag(tag.Color)).
			Padding(0, 1).
			Render(tag.Label))
	}
	return strings.Join(chips, " ")
}
