package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/tiagokriok/taskflow/internal/application"
	"github.com/tiagokriok/taskflow/internal/domain"
	"github.com/tiagokriok/taskflow/internal/engine"
)

type recordedPrefs struct {
	saved []domain.Preferences
}

func (r *recordedPrefs) Remember(_ context.Context, prefs domain.Preferences) error {
	r.saved = append(r.saved, prefs)
	return nil
}

func newTestModel(t *testing.T, titles ...string) (Model, *application.BoardSession, *recordedPrefs) {
	t.Helper()
	eng := engine.New()
	board, err := eng.NewBoard("u1", "Sprint", []string{"Todo", "Doing", "Done"})
	if err != nil {
		t.Fatalf("new board: %v", err)
	}
	for _, title := range titles {
		board, _, err = eng.AddTask(board, board.Columns[0].ID, title)
		if err != nil {
			t.Fatalf("add task: %v", err)
		}
	}
	log, _ := test.NewNullLogger()
	session := application.NewBoardSession(board, eng, nil)
	prefs := &recordedPrefs{}
	m := NewModel(session, prefs, domain.Preferences{ViewMode: domain.ViewBoard}, log)
	m.dateFormat = dateFormatYMD()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model), session, prefs
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestMoveRightDropsTaskOnNextColumn(t *testing.T) {
	m, session, _ := newTestModel(t, "A", "B")

	m = press(t, m, "L")

	board := session.Snapshot()
	if len(board.Columns[0].TaskIDs) != 1 || len(board.Columns[1].TaskIDs) != 1 {
		t.Fatalf("unexpected columns: %+v", board.Columns)
	}
	moved := board.Tasks[board.Columns[1].TaskIDs[0]]
	if moved.Title != "A" || moved.ColumnID != board.Columns[1].ID {
		t.Fatalf("expected A in Doing, got %+v", moved)
	}
	if last := moved.ActivityLog[len(moved.ActivityLog)-1]; last.Action != domain.ActionColumnChanged {
		t.Fatalf("expected column_changed entry, got %s", last.Action)
	}
	if m.activeColumn != 1 || m.row != 0 {
		t.Fatalf("selection should follow the task, got column %d row %d", m.activeColumn, m.row)
	}
}

func TestMoveDownReordersWithinColumn(t *testing.T) {
	m, session, _ := newTestModel(t, "A", "B", "C")

	m = press(t, m, "J", "J")

	ids := session.Snapshot().Columns[0].TaskIDs
	board := session.Snapshot()
	got := []string{board.Tasks[ids[0]].Title, board.Tasks[ids[1]].Title, board.Tasks[ids[2]].Title}
	if got[0] != "B" || got[1] != "C" || got[2] != "A" {
		t.Fatalf("expected [B C A], got %v", got)
	}
	if m.row != 2 {
		t.Fatalf("expected row 2, got %d", m.row)
	}
	// Moving past the end is a no-op.
	m = press(t, m, "J")
	if m.row != 2 {
		t.Fatalf("row should stay at 2, got %d", m.row)
	}
}

func TestNewTaskFromInput(t *testing.T) {
	m, session, _ := newTestModel(t)

	m = press(t, m, "n", "Write docs", "enter")

	board := session.Snapshot()
	if len(board.Columns[0].TaskIDs) != 1 {
		t.Fatalf("expected one task, got %v", board.Columns[0].TaskIDs)
	}
	if task := board.Tasks[board.Columns[0].TaskIDs[0]]; task.Title != "Write docs" {
		t.Fatalf("unexpected title %q", task.Title)
	}
	if m.inputMode != inputNone {
		t.Fatal("input should be closed after enter")
	}
}

func TestBlankTaskTitleShowsError(t *testing.T) {
	m, session, _ := newTestModel(t)

	m = press(t, m, "n", "enter")

	if len(session.Snapshot().Tasks) != 0 {
		t.Fatal("blank title must not create a task")
	}
	if m.statusLine == "" {
		t.Fatal("expected an error in the status line")
	}
}

func TestCyclePriorityAndDelete(t *testing.T) {
	m, session, _ := newTestModel(t, "A")

	m = press(t, m, "p", "p")
	task, _ := m.currentTask()
	if task.Priority != domain.PriorityMedium {
		t.Fatalf("expected medium, got %q", task.Priority)
	}

	press(t, m, "x")
	if len(session.Snapshot().Tasks) != 0 {
		t.Fatal("task should be deleted")
	}
}

func TestToggleTagCreatesBoardTag(t *testing.T) {
	m, session, _ := newTestModel(t, "A")

	m = press(t, m, "g", "bug:red", "enter")
	board := session.Snapshot()
	if board.GlobalTags["bug"].Color != domain.TagRed {
		t.Fatalf("expected red bug tag, got %+v", board.GlobalTags)
	}
	task, _ := m.currentTask()
	if !task.HasTag("bug") {
		t.Fatalf("task should carry bug, got %v", task.Tags)
	}

	m = press(t, m, "g", "bug", "enter")
	task, _ = m.currentTask()
	if task.HasTag("bug") {
		t.Fatalf("second toggle should remove bug, got %v", task.Tags)
	}
}

func TestEditDates(t *testing.T) {
	m, _, _ := newTestModel(t, "A")

	m = press(t, m, "t", "2024-03-01 - 2024-03-05", "enter")
	task, _ := m.currentTask()
	if task.StartDate == nil || task.EndDate == nil {
		t.Fatalf("dates not set: %+v", task)
	}
	if got := task.EndDate.Format("2006-01-02"); got != "2024-03-05" {
		t.Fatalf("unexpected end date %s", got)
	}

	m, session, _ := newTestModel(t, "B")
	m = press(t, m, "t", "2024-03-09 - 2024-03-01", "enter")
	if m.statusLine == "" {
		t.Fatal("end before start should be reported")
	}
	for _, task := range session.Snapshot().Tasks {
		if task.StartDate != nil {
			t.Fatalf("rejected dates must not be stored: %+v", task)
		}
	}
}

func TestToggleViewRemembersPreference(t *testing.T) {
	m, _, prefs := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	m = updated.(Model)
	if m.viewMode != domain.ViewList {
		t.Fatalf("expected list view, got %s", m.viewMode)
	}
	if cmd == nil {
		t.Fatal("expected a command persisting the preference")
	}
	cmd()
	if len(prefs.saved) != 1 || prefs.saved[0].ViewMode != domain.ViewList {
		t.Fatalf("unexpected saved prefs: %+v", prefs.saved)
	}
	if m.View() == "" {
		t.Fatal("list view should render")
	}
}

func TestParseDateRange(t *testing.T) {
	m := Model{dateFormat: dateFormatDMY()}

	start, end, err := m.parseDateRange("01/03/2024 - 05/03/2024")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if start.Month() != time.March || start.Day() != 1 || end.Day() != 5 {
		t.Fatalf("unexpected range %v - %v", start, end)
	}

	start, end, err = m.parseDateRange("07/03/2024")
	if err != nil || !start.Equal(*end) {
		t.Fatalf("single date should set both ends: %v %v %v", start, end, err)
	}

	start, end, err = m.parseDateRange("- 07/03/2024")
	if err != nil || start != nil || end == nil {
		t.Fatalf("open start: %v %v %v", start, end, err)
	}

	if _, _, err := m.parseDateRange("soon"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestDueDisplay(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	m := Model{dateFormat: dateFormatYMD(), now: func() time.Time { return now }}
	day := func(d int) *time.Time {
		v := time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	tests := []struct {
		name string
		task domain.Task
		want string
	}{
		{"no dates", domain.Task{}, "-"},
		{"today", domain.Task{EndDate: day(10)}, "Today"},
		{"tomorrow", domain.Task{EndDate: day(11)}, "Tomorrow"},
		{"overdue", domain.Task{EndDate: day(7)}, "3d late"},
		{"later", domain.Task{EndDate: day(20)}, "2024-03-20"},
		{"start only", domain.Task{StartDate: day(12)}, "from 2024-03-12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := m.dueDisplay(tt.task); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
