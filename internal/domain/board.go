package domain

import "time"

// Board is the root aggregate. Columns hold ordering references only; Tasks is
// the authoritative store of task content.
type Board struct {
	ID         string
	OwnerID    string
	Title      string
	Columns    []Column
	Tasks      map[string]Task
	GlobalTags map[string]Tag
	TeamIDs    []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ColumnIndex returns the position of the column with the given id, or -1.
func (b Board) ColumnIndex(columnID string) int {
	for i, c := range b.Columns {
		if c.ID == columnID {
			return i
		}
	}
	return -1
}

// Column returns the column with the given id.
func (b Board) Column(columnID string) (Column, bool) {
	idx := b.ColumnIndex(columnID)
	if idx < 0 {
		return Column{}, false
	}
	return b.Columns[idx], true
}

// ColumnTitle resolves a column id to its title, falling back to the id.
func (b Board) ColumnTitle(columnID string) string {
	if c, ok := b.Column(columnID); ok {
		return c.Title
	}
	return columnID
}

// TasksInColumn returns the tasks of a column in on-screen order.
func (b Board) TasksInColumn(columnID string) []Task {
	col, ok := b.Column(columnID)
	if !ok {
		return nil
	}
	out := make([]Task, 0, len(col.TaskIDs))
	for _, id := range col.TaskIDs {
		if t, ok := b.Tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a deep copy that shares no slices or maps with b.
func (b Board) Clone() Board {
	out := b
	out.Columns = make([]Column, len(b.Columns))
	for i, c := range b.Columns {
		out.Columns[i] = c.Clone()
	}
	out.Tasks = make(map[string]Task, len(b.Tasks))
	for id, t := range b.Tasks {
		out.Tasks[id] = t.Clone()
	}
	out.GlobalTags = make(map[string]Tag, len(b.GlobalTags))
	for label, tag := range b.GlobalTags {
		out.GlobalTags[label] = tag
	}
	out.TeamIDs = cloneStrings(b.TeamIDs)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
