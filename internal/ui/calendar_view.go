package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tiagokriok/taskflow/internal/application"
)

var weekdayHeaders = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// renderCalendarView draws the month as a Monday-first grid; each cell shows
// the day number, the task count and the first task title.
func (m Model) renderCalendarView(width, height int) string {
	days := application.CalendarMonth(m.board, m.month.Year(), m.month.Month())
	cellWidth := max(8, (width-2)/7)
	cellHeight := max(3, (height-4)/6)

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("221")).Render(m.month.Format("January 2006"))
	header := make([]string, 0, 7)
	for _, d := range weekdayHeaders {
		header = append(header, lipgloss.NewStyle().Width(cellWidth).Foreground(lipgloss.Color("245")).Render(d))
	}

	lead := (int(m.month.Weekday()) + 6) % 7
	cells := make([]string, 0, lead+len(days))
	blank := lipgloss.NewStyle().Width(cellWidth).Height(cellHeight).Render("")
	for i := 0; i < lead; i++ {
		cells = append(cells, blank)
	}
	today := m.now().UTC()
	for i, day := range days {
		cells = append(cells, m.renderCalendarCell(i, day, cellWidth, cellHeight, sameDay(day.Date, today)))
	}

	rows := []string{title, lipgloss.JoinHorizontal(lipgloss.Top, header...)}
	for start := 0; start < len(cells); start += 7 {
		end := min(start+7, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("250")).
		Render(strings.Join(rows, "\n"))
}

func (m Model) renderCalendarCell(index int, day application.CalendarDay, width, height int, today bool) string {
	style := lipgloss.NewStyle().Width(width).Height(height).Foreground(lipgloss.Color("252"))
	if today {
		style = style.Foreground(dueColorToday)
	}
	if index == m.day {
		style = style.Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	}
	lines := []string{fmt.Sprintf("%2d", day.Date.Day())}
	if n := len(day.Tasks); n > 0 {
		lines = append(lines, truncate(day.Tasks[0].Title, width-1))
		if n > 1 {
			lines = append(lines, fmt.Sprintf("+%d more", n-1))
		}
	}
	return style.Render(strings.Join(lines, "\n"))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
