package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/tiagokriok/taskflow/internal/domain"
)

var testNow = time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

func newTestEngine() *Engine {
	n := 0
	return New(
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
		WithClock(func() time.Time { return testNow }),
	)
}

// fixtureBoard returns a board whose column ids equal their titles, holding
// the given task ids in order.
func fixtureBoard(columns map[string][]string, order ...string) domain.Board {
	b := domain.Board{
		ID:         "board-1",
		Title:      "Fixture",
		Tasks:      map[string]domain.Task{},
		GlobalTags: map[string]domain.Tag{},
	}
	for _, colID := range order {
		ids := append([]string{}, columns[colID]...)
		b.Columns = append(b.Columns, domain.Column{ID: colID, Title: colID, TaskIDs: ids})
		for _, id := range ids {
			b.Tasks[id] = domain.Task{ID: id, Title: "Task " + id, ColumnID: colID}
		}
	}
	return b
}

func columnIDs(t *testing.T, b domain.Board, colID string) []string {
	t.Helper()
	col, ok := b.Column(colID)
	if !ok {
		t.Fatalf("column %q missing", colID)
	}
	return col.TaskIDs
}

func mustCheck(t *testing.T, b domain.Board) {
	t.Helper()
	if err := Check(b); err != nil {
		t.Fatalf("board invariant broken: %v", err)
	}
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func datePtr(y int, m time.Month, d int) *time.Time {
	v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &v
}
