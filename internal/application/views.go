package application

import (
	"sort"
	"strings"
	"time"

	"github.com/tiagokriok/taskflow/internal/domain"
)

type ListTaskFilters struct {
	TitleQuery string
	ColumnID   string
	Tag        string
	Priority   domain.Priority
	MemberID   string
}

// ListItem is one row of the flat list view.
type ListItem struct {
	Task        domain.Task
	ColumnID    string
	ColumnTitle string
	Position    int
}

// ListTasks flattens the board in column order then position, keeping only
// tasks that match every non-empty filter.
func ListTasks(b domain.Board, f ListTaskFilters) []ListItem {
	query := strings.ToLower(strings.TrimSpace(f.TitleQuery))
	items := make([]ListItem, 0, len(b.Tasks))
	for _, col := range b.Columns {
		if f.ColumnID != "" && col.ID != f.ColumnID {
			continue
		}
		for pos, id := range col.TaskIDs {
			task, ok := b.Tasks[id]
			if !ok {
				continue
			}
			if query != "" && !strings.Contains(strings.ToLower(task.Title), query) {
				continue
			}
			if f.Tag != "" && !task.HasTag(f.Tag) {
				continue
			}
			if f.Priority != "" && task.Priority != f.Priority {
				continue
			}
			if f.MemberID != "" && !contains(task.AssignedMembers, f.MemberID) {
				continue
			}
			items = append(items, ListItem{Task: task, ColumnID: col.ID, ColumnTitle: col.Title, Position: pos})
		}
	}
	return items
}

type CalendarDay struct {
	Date  time.Time
	Tasks []domain.Task
}

// CalendarMonth returns one entry per day of the month. A task appears on
// every day from its start date through its end date; a task with a single
// date appears on that day only. Tasks without dates are left out.
func CalendarMonth(b domain.Board, year int, month time.Month) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	days := make([]CalendarDay, last.Day())
	for i := range days {
		days[i] = CalendarDay{Date: first.AddDate(0, 0, i), Tasks: []domain.Task{}}
	}

	for _, task := range b.Tasks {
		start, end := task.StartDate, task.EndDate
		if start == nil && end == nil {
			continue
		}
		if start == nil {
			start = end
		}
		if end == nil {
			end = start
		}
		from, to := domain.DateOnly(*start), domain.DateOnly(*end)
		if to.Before(first) || from.After(last) {
			continue
		}
		if from.Before(first) {
			from = first
		}
		if to.After(last) {
			to = last
		}
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			idx := d.Day() - 1
			days[idx].Tasks = append(days[idx].Tasks, task)
		}
	}

	for i := range days {
		sort.Slice(days[i].Tasks, func(a, b int) bool {
			ta, tb := days[i].Tasks[a], days[i].Tasks[b]
			if ta.Title != tb.Title {
				return ta.Title < tb.Title
			}
			return ta.ID < tb.ID
		})
	}
	return days
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
