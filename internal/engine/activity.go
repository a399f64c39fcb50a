package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/tiagokriok/taskflow/internal/domain"
)

// DateLayout renders calendar dates in activity details as day/month/year.
const DateLayout = "02/01/2006"

func (e *Engine) entry(action domain.ActivityAction, oldValue, newValue *string, details string) domain.ActivityLogEntry {
	return domain.ActivityLogEntry{
		ID:        e.newID(),
		Timestamp: e.now(),
		Action:    action,
		OldValue:  copyString(oldValue),
		NewValue:  copyString(newValue),
		Details:   details,
	}
}

func (e *Engine) columnChangedEntry(b domain.Board, fromID, toID string) domain.ActivityLogEntry {
	from, to := b.ColumnTitle(fromID), b.ColumnTitle(toID)
	return e.entry(domain.ActionColumnChanged, &fromID, &toID, fmt.Sprintf("Moved from %q to %q", from, to))
}

func describeDescriptionChange(prev, next string) string {
	switch {
	case strings.TrimSpace(prev) == "":
		return "Description added"
	case strings.TrimSpace(next) == "":
		return "Description removed"
	default:
		return "Description updated"
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "none"
	}
	return t.Format(DateLayout)
}

func formatRange(start, end *time.Time) string {
	return formatDate(start) + " - " + formatDate(end)
}

func identity(s string) string { return s }

// describeDiff renders "added X, Y, removed Z" with names mapped through name.
func describeDiff(added, removed []string, name func(string) string) string {
	parts := make([]string, 0, 2)
	if len(added) > 0 {
		parts = append(parts, "added "+joinMapped(added, name))
	}
	if len(removed) > 0 {
		parts = append(parts, "removed "+joinMapped(removed, name))
	}
	return strings.Join(parts, ", ")
}

func joinMapped(in []string, name func(string) string) string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = name(v)
	}
	return strings.Join(out, ", ")
}

func joinList(in []string) string {
	return strings.Join(in, ", ")
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
