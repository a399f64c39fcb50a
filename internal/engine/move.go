package engine

import (
	"github.com/tiagokriok/taskflow/internal/domain"
)

// Destination is where a dragged task was dropped: either directly on a
// column or on top of another task. Exactly one field must be set.
type Destination struct {
	ColumnID   string `json:"columnId,omitempty"`
	OverTaskID string `json:"overTaskId,omitempty"`
}

// ToColumn drops onto a column; the task is appended to its end.
func ToColumn(columnID string) Destination {
	return Destination{ColumnID: columnID}
}

// OverTask drops onto another task; the moved task takes that task's index.
func OverTask(taskID string) Destination {
	return Destination{OverTaskID: taskID}
}

// MoveTask relocates a task after a drag gesture.
//
// Cross-column moves insert the task at the reference task's index in the
// destination (or at the end for a column drop), update the task's column
// and log a column_changed entry. Same-column moves use array-move
// semantics: the anchor is the reference task's index in the sequence before
// the moved task is removed, so moving A over C in [A B C] yields [B C A]
// and moving C over A yields [C A B].
//
// Dropping a task on itself, on its own column, or on its current slot is a
// no-op and returns b unchanged.
func (e *Engine) MoveTask(b domain.Board, taskID string, dest Destination) (domain.Board, error) {
	if (dest.ColumnID == "") == (dest.OverTaskID == "") {
		return domain.Board{}, invalid("destination must name exactly one of column or task")
	}
	if _, ok := b.Tasks[taskID]; !ok {
		return domain.Board{}, notFound("task", taskID)
	}
	src := columnHolding(b, taskID)
	if src < 0 {
		return domain.Board{}, notFound("column holding task", taskID)
	}

	var dst, insertAt int
	if dest.OverTaskID != "" {
		if _, ok := b.Tasks[dest.OverTaskID]; !ok {
			return domain.Board{}, notFound("task", dest.OverTaskID)
		}
		dst = columnHolding(b, dest.OverTaskID)
		if dst < 0 {
			return domain.Board{}, notFound("column holding task", dest.OverTaskID)
		}
		if dest.OverTaskID == taskID {
			return b, nil
		}
		insertAt = b.Columns[dst].IndexOf(dest.OverTaskID)
	} else {
		dst = b.ColumnIndex(dest.ColumnID)
		if dst < 0 {
			return domain.Board{}, notFound("column", dest.ColumnID)
		}
		if dst == src {
			return b, nil
		}
		insertAt = len(b.Columns[dst].TaskIDs)
	}

	if dst == src {
		from := b.Columns[src].IndexOf(taskID)
		if from == insertAt {
			return b, nil
		}
		next := b.Clone()
		next.Columns[src].TaskIDs = arrayMove(next.Columns[src].TaskIDs, from, insertAt)
		return next, nil
	}

	next := b.Clone()
	next.Columns[src].TaskIDs = removeID(next.Columns[src].TaskIDs, taskID)
	next.Columns[dst].TaskIDs = insertID(next.Columns[dst].TaskIDs, insertAt, taskID)

	task := next.Tasks[taskID]
	oldColumn := b.Columns[src].ID
	task.ColumnID = next.Columns[dst].ID
	task.ActivityLog = append(task.ActivityLog, e.columnChangedEntry(b, oldColumn, task.ColumnID))
	next.Tasks[taskID] = task
	return next, nil
}

// relocate moves taskID from whatever column holds it to the end of the
// column at index dst. It mutates next, which must already be a clone.
func relocate(next *domain.Board, taskID string, dst int) {
	for i := range next.Columns {
		if next.Columns[i].IndexOf(taskID) >= 0 {
			next.Columns[i].TaskIDs = removeID(next.Columns[i].TaskIDs, taskID)
		}
	}
	next.Columns[dst].TaskIDs = append(next.Columns[dst].TaskIDs, taskID)
}

// columnHolding finds the column whose sequence contains taskID. The
// sequence, not Task.ColumnID, is the source of truth.
func columnHolding(b domain.Board, taskID string) int {
	for i, c := range b.Columns {
		if c.IndexOf(taskID) >= 0 {
			return i
		}
	}
	return -1
}

// arrayMove returns a copy of ids with the element at from moved to to.
func arrayMove(ids []string, from, to int) []string {
	out := make([]string, 0, len(ids))
	item := ids[from]
	for i, id := range ids {
		if i != from {
			out = append(out, id)
		}
	}
	if to > len(out) {
		to = len(out)
	}
	out = append(out, "")
	copy(out[to+1:], out[to:])
	out[to] = item
	return out
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func insertID(ids []string, at int, id string) []string {
	if at < 0 || at > len(ids) {
		at = len(ids)
	}
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids[:at]...)
	out = append(out, id)
	out = append(out, ids[at:]...)
	return out
}
