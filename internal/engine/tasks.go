package engine

import (
	"fmt"
	"time"

	"github.com/tiagokriok/taskflow/internal/domain"
)

// AddTask appends a new task to the end of a column and returns the new
// snapshot together with the created task.
func (e *Engine) AddTask(b domain.Board, columnID, title string) (domain.Board, domain.Task, error) {
	idx := b.ColumnIndex(columnID)
	if idx < 0 {
		return domain.Board{}, domain.Task{}, notFound("column", columnID)
	}
	title, err := requireTitle("task", title)
	if err != nil {
		return domain.Board{}, domain.Task{}, err
	}

	now := e.now()
	task := domain.Task{
		ID:              e.newID(),
		Title:           title,
		ColumnID:        columnID,
		Tags:            []string{},
		AssignedMembers: []string{},
		CreatedAt:       now,
	}
	task.ActivityLog = []domain.ActivityLogEntry{
		e.entry(domain.ActionCreated, nil, &title, fmt.Sprintf("Task created in %q", b.Columns[idx].Title)),
	}

	next := b.Clone()
	next.Tasks[task.ID] = task
	next.Columns[idx].TaskIDs = append(next.Columns[idx].TaskIDs, task.ID)
	return next, task.Clone(), nil
}

// UpdateTask applies a partial update. Each field category that actually
// changes appends exactly one activity entry; start and end dates share one
// dates_changed entry and assigned members reuse tags_changed. Changing the
// column moves the task to the end of the new column.
func (e *Engine) UpdateTask(b domain.Board, taskID string, changes domain.TaskChanges) (domain.Board, error) {
	old, ok := b.Tasks[taskID]
	if !ok {
		return domain.Board{}, notFound("task", taskID)
	}
	if changes.IsEmpty() {
		return b, nil
	}

	title := old.Title
	if changes.Title.Set {
		var err error
		if title, err = requireTitle("task", changes.Title.Value); err != nil {
			return domain.Board{}, err
		}
	}
	if changes.Priority.Set && !changes.Priority.Value.Valid() {
		return domain.Board{}, invalid("unknown priority %q", changes.Priority.Value)
	}
	start, end := copyTime(old.StartDate), copyTime(old.EndDate)
	if changes.StartDate.Set {
		start = dateOnly(changes.StartDate.Value)
	}
	if changes.EndDate.Set {
		end = dateOnly(changes.EndDate.Value)
	}
	if start != nil && end != nil && end.Before(*start) {
		return domain.Board{}, invalid("end date %s is before start date %s", formatDate(end), formatDate(start))
	}
	src := columnHolding(b, taskID)
	dst := src
	if changes.ColumnID.Set {
		dst = b.ColumnIndex(changes.ColumnID.Value)
		if dst < 0 {
			return domain.Board{}, notFound("column", changes.ColumnID.Value)
		}
	}

	next := b.Clone()
	task := next.Tasks[taskID]
	var entries []domain.ActivityLogEntry

	if title != old.Title {
		task.Title = title
		entries = append(entries, e.entry(domain.ActionTitleChanged, &old.Title, &title,
			fmt.Sprintf("Title changed from %q to %q", old.Title, title)))
	}
	if changes.Description.Set && changes.Description.Value != old.Description {
		desc := changes.Description.Value
		task.Description = desc
		entries = append(entries, e.entry(domain.ActionDescriptionChanged, &old.Description, &desc,
			describeDescriptionChange(old.Description, desc)))
	}
	if !sameDate(old.StartDate, start) || !sameDate(old.EndDate, end) {
		task.StartDate, task.EndDate = start, end
		oldRange, newRange := formatRange(old.StartDate, old.EndDate), formatRange(start, end)
		entries = append(entries, e.entry(domain.ActionDatesChanged, &oldRange, &newRange,
			fmt.Sprintf("Dates changed from %s to %s", oldRange, newRange)))
	}
	if dst != src {
		relocate(&next, taskID, dst)
		oldColumn := old.ColumnID
		if src >= 0 {
			oldColumn = b.Columns[src].ID
		}
		task.ColumnID = b.Columns[dst].ID
		entries = append(entries, e.columnChangedEntry(b, oldColumn, task.ColumnID))
	}
	if changes.Tags.Set {
		tags := normalizeSet(changes.Tags.Value)
		if added, removed := diffSets(old.Tags, tags); len(added)+len(removed) > 0 {
			task.Tags = tags
			oldV, newV := joinList(old.Tags), joinList(tags)
			entries = append(entries, e.entry(domain.ActionTagsChanged, &oldV, &newV,
				"Tags: "+describeDiff(added, removed, identity)))
		}
	}
	if changes.Priority.Set && changes.Priority.Value != old.Priority {
		p := changes.Priority.Value
		task.Priority = p
		oldV, newV := old.Priority.String(), p.String()
		entries = append(entries, e.entry(domain.ActionPriorityChanged, &oldV, &newV,
			fmt.Sprintf("Priority changed from %s to %s", oldV, newV)))
	}
	if changes.AssignedMembers.Set {
		members := normalizeSet(changes.AssignedMembers.Value)
		if added, removed := diffSets(old.AssignedMembers, members); len(added)+len(removed) > 0 {
			task.AssignedMembers = members
			oldV, newV := joinList(old.AssignedMembers), joinList(members)
			entries = append(entries, e.entry(domain.ActionTagsChanged, &oldV, &newV,
				"Members: "+describeDiff(added, removed, e.memberName)))
		}
	}

	if len(entries) == 0 {
		return b, nil
	}
	task.ActivityLog = append(task.ActivityLog, entries...)
	next.Tasks[taskID] = task
	return next, nil
}

// DeleteTask removes a task from the store and from every column sequence.
// Deleting an unknown task is a no-op.
func (e *Engine) DeleteTask(b domain.Board, taskID string) (domain.Board, error) {
	_, inStore := b.Tasks[taskID]
	if !inStore && columnHolding(b, taskID) < 0 {
		return b, nil
	}
	next := b.Clone()
	delete(next.Tasks, taskID)
	for i := range next.Columns {
		next.Columns[i].TaskIDs = removeID(next.Columns[i].TaskIDs, taskID)
	}
	return next, nil
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := domain.DateOnly(*t)
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// diffSets reports the labels present only in next (added) and only in prev
// (removed), each in the order they appear.
func diffSets(prev, next []string) (added, removed []string) {
	inPrev := make(map[string]struct{}, len(prev))
	for _, v := range prev {
		inPrev[v] = struct{}{}
	}
	inNext := make(map[string]struct{}, len(next))
	for _, v := range next {
		inNext[v] = struct{}{}
		if _, ok := inPrev[v]; !ok {
			added = append(added, v)
		}
	}
	for _, v := range prev {
		if _, ok := inNext[v]; !ok {
			removed = append(removed, v)
		}
	}
	return added, removed
}
