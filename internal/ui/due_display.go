package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tiagokriok/taskflow/internal/domain"
)

var (
	dueColorToday    = lipgloss.Color("220")
	dueColorOverdue  = lipgloss.Color("203")
	dueColorDefault  = lipgloss.Color("252")
	dueColorNoDueSet = lipgloss.Color("245")
)

// dueDisplay describes a task's end date relative to today.
func (m Model) dueDisplay(task domain.Task) (string, lipgloss.Color) {
	if task.EndDate == nil {
		if task.StartDate != nil {
			return "from " + m.formatDate(*task.StartDate), dueColorDefault
		}
		return "-", dueColorNoDueSet
	}
	today := domain.DateOnly(m.now())
	due := domain.DateOnly(*task.EndDate)
	deltaDays := int(due.Sub(today).Hours() / 24)

	switch {
	case deltaDays == 0:
		return "Today", dueColorToday
	case deltaDays == 1:
		return "Tomorrow", dueColorDefault
	case deltaDays < 0:
		overdueDays := -deltaDays
		if overdueDays <= 7 {
			return fmt.Sprintf("%dd late", overdueDays), dueColorOverdue
		}
		return m.formatDate(due), dueColorOverdue
	default:
		return m.formatDate(due), dueColorDefault
	}
}
