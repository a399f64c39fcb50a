package engine

import (
	"fmt"

	"github.com/tiagokriok/taskflow/internal/domain"
)

// Check verifies that column sequences and task back-references agree:
// every sequenced id exists in Tasks, no id is sequenced twice, and every
// task's ColumnID names the single column holding it.
func Check(b domain.Board) error {
	holder := make(map[string]string, len(b.Tasks))
	for _, col := range b.Columns {
		for _, id := range col.TaskIDs {
			if _, ok := b.Tasks[id]; !ok {
				return fmt.Errorf("column %q references missing task %q", col.ID, id)
			}
			if prev, dup := holder[id]; dup {
				return fmt.Errorf("task %q appears in column %q and column %q", id, prev, col.ID)
			}
			holder[id] = col.ID
		}
	}
	for id, t := range b.Tasks {
		colID, ok := holder[id]
		if !ok {
			return fmt.Errorf("task %q is not in any column", id)
		}
		if t.ColumnID != colID {
			return fmt.Errorf("task %q has column %q but is held by %q", id, t.ColumnID, colID)
		}
	}
	return nil
}
