package domain

import "time"

type Priority string

const (
	PriorityNone   Priority = ""
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (p Priority) String() string {
	if p == PriorityNone {
		return "none"
	}
	return string(p)
}

type Task struct {
	ID              string
	Title           string
	Description     string
	StartDate       *time.Time
	EndDate         *time.Time
	ColumnID        string
	Tags            []string
	Priority        Priority
	AssignedMembers []string
	ActivityLog     []ActivityLogEntry
	CreatedAt       time.Time
}

func (t Task) Clone() Task {
	t.StartDate = cloneTime(t.StartDate)
	t.EndDate = cloneTime(t.EndDate)
	t.Tags = cloneStrings(t.Tags)
	t.AssignedMembers = cloneStrings(t.AssignedMembers)
	if t.ActivityLog != nil {
		log := make([]ActivityLogEntry, len(t.ActivityLog))
		copy(log, t.ActivityLog)
		t.ActivityLog = log
	}
	return t
}

// HasTag reports whether the task references label.
func (t Task) HasTag(label string) bool {
	for _, l := range t.Tags {
		if l == label {
			return true
		}
	}
	return false
}

// TaskChanges is a partial update. Absent fields are left untouched; a present
// field with a zero value clears it.
type TaskChanges struct {
	Title           Field[string]     `json:"title"`
	Description     Field[string]     `json:"description"`
	StartDate       Field[*time.Time] `json:"startDate"`
	EndDate         Field[*time.Time] `json:"endDate"`
	ColumnID        Field[string]     `json:"columnId"`
	Tags            Field[[]string]   `json:"tags"`
	Priority        Field[Priority]   `json:"priority"`
	AssignedMembers Field[[]string]   `json:"assignedMembers"`
}

// IsEmpty reports whether no field is present.
func (c TaskChanges) IsEmpty() bool {
	return !c.Title.Set && !c.Description.Set && !c.StartDate.Set && !c.EndDate.Set &&
		!c.ColumnID.Set && !c.Tags.Set && !c.Priority.Set && !c.AssignedMembers.Set
}

// DateOnly truncates t to a UTC calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
