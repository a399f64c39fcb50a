package ui

import (
	"github.com/charmbracelet/lipgloss"
	liptable "github.com/charmbracelet/lipgloss/table"
)

func (m Model) renderListView(width, height int) string {
	items := m.listItems()
	if len(items) == 0 {
		msg := "No tasks yet.\nPress n to create one."
		if m.titleFilter != "" {
			msg = "No tasks match the search."
		}
		empty := lipgloss.NewStyle().
			Width(max(1, width-4)).
			Height(max(1, height-4)).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("245")).
			Render(msg)
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("250")).
			Render(empty)
	}

	innerWidth := max(12, width-4)
	visibleRows := max(2, height-4) // Includes table header row.
	visibleTaskRows := max(1, visibleRows-1)

	offset := 0
	if m.selected >= visibleTaskRows {
		offset = m.selected - visibleTaskRows + 1
	}
	maxOffset := max(0, len(items)-visibleTaskRows)
	if offset > maxOffset {
		offset = maxOffset
	}

	taskColWidth := max(16, innerWidth-41)
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		due, _ := m.dueDisplay(item.Task)
		rows = append(rows, []string{
			truncate(item.Task.Title, taskColWidth),
			truncate(item.ColumnTitle, 12),
			truncate(due, 12),
			item.Task.Priority.String(),
		})
	}

	selectedTableRow := m.selected - offset
	t := liptable.New().
		Headers("Task", "Column", "Due", "Priority").
		Rows(rows...).
		Border(lipgloss.HiddenBorder()).
		Width(innerWidth).
		Offset(offset).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252"))
			if row == liptable.HeaderRow {
				style = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("245"))
			} else if row == selectedTableRow {
				style = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
			}
			switch col {
			case 0:
				return style.MaxWidth(taskColWidth)
			case 1:
				return style.Width(12)
			case 2:
				return style.Width(12)
			case 3:
				return style.Width(8)
			default:
				return style
			}
		})

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250")).
		Render(t.String())
}
