package engine

import (
	"testing"

	"github.com/tiagokriok/taskflow/internal/domain"
)

func TestBoardScenarios(t *testing.T) {
	e := newTestEngine()
	b := fixtureBoard(map[string][]string{"Backlog": {}, "Doing": {}, "Done": {}}, "Backlog", "Doing", "Done")

	// Add to Doing, then drop onto Done.
	b, task, err := e.AddTask(b, "Doing", "Write brief")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if ids := columnIDs(t, b, "Doing"); len(ids) != 1 {
		t.Fatalf("expected one task in Doing, got %v", ids)
	}
	created := b.Tasks[task.ID]
	if created.ColumnID != "Doing" || len(created.ActivityLog) != 1 || created.ActivityLog[0].Action != domain.ActionCreated {
		t.Fatalf("unexpected created task %+v", created)
	}

	b, err = e.MoveTask(b, task.ID, ToColumn("Done"))
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	mustCheck(t, b)
	if ids := columnIDs(t, b, "Doing"); len(ids) != 0 {
		t.Fatalf("expected Doing empty, got %v", ids)
	}
	if ids := columnIDs(t, b, "Done"); !equalIDs(ids, []string{task.ID}) {
		t.Fatalf("expected Done=[%s], got %v", task.ID, ids)
	}
	if b.Tasks[task.ID].ColumnID != "Done" {
		t.Fatalf("task column not updated")
	}
}

func TestRenameScenario(t *testing.T) {
	e := newTestEngine()
	b := fixtureBoard(map[string][]string{"Doing": {"T"}}, "Doing")
	task := b.Tasks["T"]
	task.Title = "Old"
	b.Tasks["T"] = task

	b, err := e.UpdateTask(b, "T", domain.TaskChanges{Title: domain.Some("New")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	log := b.Tasks["T"].ActivityLog
	if b.Tasks["T"].Title != "New" || len(log) != 1 {
		t.Fatalf("unexpected task %+v", b.Tasks["T"])
	}
	if log[0].Action != domain.ActionTitleChanged || *log[0].OldValue != "Old" || *log[0].NewValue != "New" {
		t.Fatalf("unexpected entry %+v", log[0])
	}
}

func TestDeleteTagScenario(t *testing.T) {
	e := newTestEngine()
	b := fixtureBoard(map[string][]string{"Doing": {"A", "B", "C"}}, "Doing")
	b.GlobalTags["urgent"] = domain.Tag{Label: "urgent", Color: domain.TagRed}
	for _, id := range []string{"A", "B"} {
		task := b.Tasks[id]
		task.Tags = []string{"bug", "urgent"}
		b.Tasks[id] = task
	}

	got, err := e.DeleteGlobalTag(b, "urgent")
	if err != nil {
		t.Fatalf("delete tag: %v", err)
	}
	for _, id := range []string{"A", "B"} {
		if got.Tasks[id].HasTag("urgent") {
			t.Fatalf("task %s still tagged", id)
		}
		if !got.Tasks[id].HasTag("bug") {
			t.Fatalf("task %s lost an unrelated tag", id)
		}
	}
	if _, ok := got.GlobalTags["urgent"]; ok {
		t.Fatalf("tag still registered")
	}
	if !b.Tasks["A"].HasTag("urgent") {
		t.Fatalf("input board was modified")
	}
}

func TestDeleteColumnScenario(t *testing.T) {
	e := newTestEngine()
	b := fixtureBoard(map[string][]string{"Backlog": {"X", "Y"}, "Doing": {"Z"}}, "Backlog", "Doing")

	got, err := e.DeleteColumn(b, "Backlog")
	if err != nil {
		t.Fatalf("delete column: %v", err)
	}
	mustCheck(t, got)
	for _, id := range []string{"X", "Y"} {
		if _, ok := got.Tasks[id]; ok {
			t.Fatalf("task %s survived its column", id)
		}
	}
	if _, ok := got.Column("Backlog"); ok {
		t.Fatalf("column still present")
	}
	if _, ok := got.Tasks["Z"]; !ok {
		t.Fatalf("unrelated task removed")
	}
}

// Edits derived from the same snapshot never see each other, so committing
// either one drops the other. Callers serialize read-modify-write.
func TestStaleSnapshotLosesEdit(t *testing.T) {
	e := newTestEngine()
	base := fixtureBoard(map[string][]string{"Doing": {"A", "B"}}, "Doing")

	first, err := e.UpdateTask(base, "A", domain.TaskChanges{Title: domain.Some("first")})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := e.UpdateTask(base, "B", domain.TaskChanges{Title: domain.Some("second")})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if second.Tasks["A"].Title == "first" {
		t.Fatalf("snapshots should be independent")
	}
	if first.Tasks["B"].Title == "second" {
		t.Fatalf("snapshots should be independent")
	}
}
