package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderKanbanView(height int) string {
	if len(m.board.Columns) == 0 {
		return "No columns. Press C to add one."
	}

	columnWidth := max(24, (m.mainWidth()-4)/max(1, len(m.board.Columns)))
	cards := make([]string, 0, len(m.board.Columns))
	for ci, col := range m.board.Columns {
		headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("221")).Padding(0, 1)
		if ci == m.activeColumn {
			headerStyle = headerStyle.Background(lipgloss.Color("58")).Foreground(lipgloss.Color("230"))
		}

		rows := []string{headerStyle.Width(columnWidth - 2).Render(fmt.Sprintf("%s (%d)", col.Title, len(col.TaskIDs)))}
		colTasks := m.board.TasksInColumn(col.ID)
		if len(colTasks) == 0 {
			rows = append(rows, lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1).Render("(empty)"))
		}
		for ri, task := range colTasks {
			marker := lipgloss.NewStyle().Foreground(priorityColor(task.Priority)).Render("●")
			line := marker + " " + truncate(task.Title, columnWidth-8)
			style := lipgloss.NewStyle().Padding(0, 1)
			if ci == m.activeColumn && ri == m.row {
				style = style.Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
			}
			rows = append(rows, style.Render(line))
			if chips := m.renderTagChips(task); chips != "" {
				rows = append(rows, lipgloss.NewStyle().Padding(0, 1).MaxWidth(columnWidth-2).Render(chips))
			}
		}

		panel := lipgloss.NewStyle().Width(columnWidth).Height(height).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Render(strings.Join(rows, "\n"))
		cards = append(cards, panel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
