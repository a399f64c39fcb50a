package domain

import "time"

type ActivityAction string

const (
	ActionCreated            ActivityAction = "created"
	ActionTitleChanged       ActivityAction = "title_changed"
	ActionDescriptionChanged ActivityAction = "description_changed"
	ActionDatesChanged       ActivityAction = "dates_changed"
	ActionColumnChanged      ActivityAction = "column_changed"
	ActionTagsChanged        ActivityAction = "tags_changed"
	ActionPriorityChanged    ActivityAction = "priority_changed"
)

// ActivityLogEntry records one human-readable change to a task. Details is
// rendered when the entry is created so later renames do not rewrite history.
type ActivityLogEntry struct {
	ID        string
	Timestamp time.Time
	Action    ActivityAction
	OldValue  *string
	NewValue  *string
	Details   string
}
