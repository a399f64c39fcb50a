package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/tiagokriok/taskflow/internal/domain"
)

func TestAddTask(t *testing.T) {
	e := newTestEngine()
	b := fixtureBoard(map[string][]string{"Doing": {"A"}}, "Doing")

	got, task, err := e.AddTask(b, "Doing", "  Write tests  ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	mustCheck(t, got)
	if task.Title != "Write tests" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	if ids := columnIDs(t, got, "Doing"); !equalIDs(ids, []string{"A", task.ID}) {
		t.Fatalf("new task should be appended, got %v", ids)
	}
	if !task.CreatedAt.Equal(testNow) {
		t.Fatalf("unexpected created at %v", task.CreatedAt)
	}
	if len(b.Tasks) != 1 {
		t.Fatalf("input board gained a task")
	}

	if _, _, err := e.AddTask(b, "Doing", "   "); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for blank title, got %v", err)
	}
	if _, _, err := e.AddTask(b, "Nope", "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for unknown column, got %v", err)
	}
}

func TestUpdateTaskLogsOneEntryPerCategory(t *testing.T) {
	e := newTestEngine()
	b := fixtureBoard(map[string][]string{"Doing": {"A"}, "Done": {}}, "Doing", "Done")

	changes := domain.TaskChanges{
		Title:       domain.Some("Renamed"),
		Description: domain.Some("Some notes"),
		StartDate:   domain.Some(datePtr(2024, time.March, 1)),
		EndDate:     domain.Some(datePtr(2024, time.March, 5)),
		ColumnID:    domain.Some("Done"),
		Tags:        domain.Some([]string{"urgent", "bug", "urgent"}),
		Priority:    domain.Some(domain.PriorityHigh),
	}
	got, err := e.UpdateTask(b, "A", changes)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	mustCheck(t, got)

	task := got.Tasks["A"]
	wantActions := []domain.ActivityAction{
		domain.ActionTitleChanged,
		domain.ActionDescriptionChanged,
		domain.ActionDatesChanged,
		domain.ActionColumnChanged,
		domain.ActionTagsChanged,
		domain.ActionPriorityChanged,
	}
	if len(task.ActivityLog) != len(wantActions) {
		t.Fatalf("expected %d entries, got %d: %+v", len(wantActions), len(task.ActivityLog), task.ActivityLog)
	}
	for i, want := range wantActions {
		if task.ActivityLog[i].Action != want {
			t.Fatalf("entry %d: expected %s, got %s", i, want, task.ActivityLog[i].Action)
		}
	}
	if d := task.ActivityLog[2].Details; d != "Dates changed from none - none to 01/03/2024 - 05/03/2024" {
		t.Fatalf("unexpected dates details %q", d)
	}
	if d := task.ActivityLog[4].Details; d != "Tags: added urgent, bug" {
		t.Fatalf("unexpected tags details %q", d)
	}
	if !equalIDs(task.Tags, []string{"urgent", "bug"}) {
		t.Fatalf("tags should be deduplicated, got %v", task.Tags)
	}
	if ids := columnIDs(t, got, "Done"); !equalIDs(ids, []string{"A"}) {
		t.Fatalf("task should have moved to Done, got %v", ids)
	}
	if len(b.Tasks["A"].ActivityLog) != 0 || b.Tasks["A"].Title != "Task A" {
		t.Fatalf("input task was modified")
	}
}

func TestUpdateTaskOnlyEndDate(t *testing.T) {
	e := newTestEngine()
	b := fixtureBoard(map[string][]string{"Doing": {"A"}}, "Doing")
	task := b.Tasks["A"]
	task.StartDate = datePtr(2024, time.January, 10)
	b.Tasks["A"] = task

	got, err := e.UpdateTask(b, "A", domain.TaskChanges{EndDate: domain.Some(datePtr(2024, time.January, 12))})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	log := got.Tasks["A"].ActivityLog
	if len(log) != 1 || log[0].Details != "Dates changed from 10/01/2024 - none to 10/01/2024 - 12/01/2024" {
		t.Fatalf("unexpected log %+v", log)
	}

	_, err = e.UpdateTask(b, "A", domain.TaskChanges{EndDate: domain.Some(datePtr(2024, time.January, 1))})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for end before start, got %v", err)
	}
}

func TestUpdateTaskClearsField(t *testing.T) {
	e := newTestEngine()
	b := fixtureBoard(map[string][]string{"Doing": {"A"}}, "Doing")
	task := b.Tasks["A"]
	task.Description = "old notes"
	task.Priority = domain.PriorityLow
	b.Tasks["A"] = task

	got, err := e.UpdateTask(b, "A", domain.TaskChanges{
		Description: domain.Some(""),
		Priority:    domain.Some(domain.PriorityNone),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	updated := got.Tasks["A"]
	if updated.Description != "" || updated.Priority != domain.PriorityNone {
		t.Fatalf("fields not cleared: %+v", updated)
	}
	if updated.ActivityLog[0].Details != "Description removed" {
		t.Fatalf("unexpected details %q", updated.ActivityLog[0].Details)
	}
	if updated.ActivityLog[1].Details != "Priority changed from low to none" {
		t.Fatalf("unexpected details %q", updated.ActivityLog[1].Details)
	}
}

func TestUpdateTaskMembersUseNames(t *testing.T) {
	teams := []domain.Team{{
		ID: "team-1",
		Members: []domain.TeamMember{
			{ID: "u1", Name: "Ana"},
			{ID: "u2", Name: "Bruno"},
		},
	}}
	e := newTestEngine().WithMembers(teams)
	b := fixtureBoard(map[string][]string{"Doing": {"A"}}, "Doing")
	task := b.Tasks["A"]
	task.AssignedMembers = []string{"u2"}
	b.Tasks["A"] = task

	got, err := e.UpdateTask(b, "A", domain.TaskChanges{AssignedMembers: domain.Some([]string{"u1", "ghost"})})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	entry := got.Tasks["A"].ActivityLog[0]
	if entry.Action != domain.ActionTagsChanged {
		t.Fatalf("member changes are logged as tags_changed, got %s", entry.Action)
	}
	if entry.Details != "Members: added Ana, ghost, removed Bruno" {
		t.Fatalf("unexpected details %q", entry.Details)
	}
}

func TestUpdateTaskWithoutEffect(t *testing.T) {
	e := newTestEngine()
	b := fixtureBoard(map[string][]string{"Doing": {"A"}}, "Doing")

	got, err := e.UpdateTask(b, "A", domain.TaskChanges{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if len(got.Tasks["A"].ActivityLog) != 0 {
		t.Fatalf("empty update must not log")
	}

	got, err = e.UpdateTask(b, "A", domain.TaskChanges{Title: domain.Some("Task A"), ColumnID: domain.Some("Doing")})
	if err != nil {
		t.Fatalf("same-value update: %v", err)
	}
	if len(got.Tasks["A"].ActivityLog) != 0 {
		t.Fatalf("unchanged values must not log, got %+v", got.Tasks["A"].ActivityLog)
	}
}

func TestUpdateTaskErrors(t *testing.T) {
	e := newTestEngine()
	b := fixtureBoard(map[string][]string{"Doing": {"A"}}, "Doing")

	tests := []struct {
		name    string
		task    string
		changes domain.TaskChanges
		wantErr error
	}{
		{name: "unknown task", task: "Z", changes: domain.TaskChanges{Title: domain.Some("x")}, wantErr: domain.ErrNotFound},
		{name: "blank title", task: "A", changes: domain.TaskChanges{Title: domain.Some(" ")}, wantErr: domain.ErrInvalidArgument},
		{name: "bad priority", task: "A", changes: domain.TaskChanges{Priority: domain.Some(domain.Priority("urgent"))}, wantErr: domain.ErrInvalidArgument},
		{name: "unknown column", task: "A", changes: domain.TaskChanges{ColumnID: domain.Some("Nope")}, wantErr: domain.ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := e.UpdateTask(b, tc.task, tc.changes); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDeleteTaskIsIdempotent(t *testing.T) {
	e := newTestEngine()
	b := fixtureBoard(map[string][]string{"Doing": {"A", "B"}}, "Doing")

	once, err := e.DeleteTask(b, "A")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	twice, err := e.DeleteTask(once, "A")
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	mustCheck(t, twice)
	if !equalIDs(columnIDs(t, once, "Doing"), columnIDs(t, twice, "Doing")) || len(once.Tasks) != len(twice.Tasks) {
		t.Fatalf("second delete changed the board")
	}
	if _, ok := b.Tasks["A"]; !ok {
		t.Fatalf("input board lost the task")
	}
}
