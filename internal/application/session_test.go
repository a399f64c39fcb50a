package application

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/tiagokriok/taskflow/internal/domain"
	"github.com/tiagokriok/taskflow/internal/engine"
)

type recordingPersister struct {
	mu        sync.Mutex
	enqueued  []domain.Board
	discarded []string
}

func (r *recordingPersister) Enqueue(b domain.Board) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enqueued = append(r.enqueued, b)
}

func (r *recordingPersister) Discard(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.discarded = append(r.discarded, id)
}

func newSession(t *testing.T) (*BoardSession, *recordingPersister) {
	t.Helper()
	eng := engine.New()
	board, err := eng.NewBoard("u1", "Work", DefaultColumnTitles())
	if err != nil {
		t.Fatalf("new board: %v", err)
	}
	p := &recordingPersister{}
	return NewBoardSession(board, eng, p), p
}

func TestSessionSerializesConcurrentEdits(t *testing.T) {
	session, persister := newSession(t)
	colID := session.Snapshot().Columns[0].ID

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, _, err := session.AddTask(colID, fmt.Sprintf("task %d", i)); err != nil {
				t.Errorf("add task: %v", err)
			}
		}(i)
	}
	wg.Wait()

	board := session.Snapshot()
	if len(board.Tasks) != 50 || len(board.Columns[0].TaskIDs) != 50 {
		t.Fatalf("expected 50 tasks, got %d", len(board.Tasks))
	}
	if err := engine.Check(board); err != nil {
		t.Fatalf("invariant: %v", err)
	}
	if len(persister.enqueued) != 50 {
		t.Fatalf("expected every edit to be persisted, got %d", len(persister.enqueued))
	}
}

func TestSessionFailedEditKeepsSnapshot(t *testing.T) {
	session, persister := newSession(t)
	before := session.Snapshot()

	if _, err := session.MoveTask("missing", engine.ToColumn(before.Columns[1].ID)); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, _, err := session.AddColumn(""); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if len(persister.enqueued) != 0 {
		t.Fatalf("failed edits must not be persisted")
	}
	if len(session.Snapshot().Columns) != len(before.Columns) {
		t.Fatalf("snapshot changed after failed edit")
	}
}

func TestSessionOperations(t *testing.T) {
	session, _ := newSession(t)
	board := session.Snapshot()
	backlog, doing := board.Columns[0].ID, board.Columns[1].ID

	_, task, err := session.AddTask(backlog, "Write docs")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := session.MoveTask(task.ID, engine.ToColumn(doing)); err != nil {
		t.Fatalf("move: %v", err)
	}
	if _, err := session.UpsertTag("docs", domain.TagBlue); err != nil {
		t.Fatalf("tag: %v", err)
	}
	if _, err := session.UpdateTask(task.ID, domain.TaskChanges{Tags: domain.Some([]string{"docs"})}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := session.DeleteTag("docs"); err != nil {
		t.Fatalf("delete tag: %v", err)
	}
	_, col, err := session.AddColumn("Review")
	if err != nil {
		t.Fatalf("add column: %v", err)
	}
	if _, err := session.RenameColumn(col.ID, "QA"); err != nil {
		t.Fatalf("rename column: %v", err)
	}
	order := []string{col.ID, backlog, doing, board.Columns[2].ID}
	if _, err := session.ReorderColumns(order); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if _, err := session.DeleteColumn(doing); err != nil {
		t.Fatalf("delete column: %v", err)
	}

	final := session.Snapshot()
	if _, ok := final.Tasks[task.ID]; ok {
		t.Fatalf("task should be gone with its column")
	}
	if final.Columns[0].Title != "QA" || len(final.Columns) != 3 {
		t.Fatalf("unexpected columns %+v", final.Columns)
	}
	if final.UpdatedAt.IsZero() {
		t.Fatalf("session should stamp UpdatedAt")
	}
	if _, err := session.DeleteTask(task.ID); err != nil {
		t.Fatalf("delete task twice: %v", err)
	}
}
