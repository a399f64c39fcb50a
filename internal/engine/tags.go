package engine

import (
	"strings"

	"github.com/tiagokriok/taskflow/internal/domain"
)

// UpsertGlobalTag inserts or replaces the tag registered under label. The
// stored tag always carries label as its identity.
func (e *Engine) UpsertGlobalTag(b domain.Board, label string, tag domain.Tag) (domain.Board, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return domain.Board{}, invalid("tag label is required")
	}
	if !tag.Color.Valid() {
		return domain.Board{}, invalid("tag color %q is not in the palette", tag.Color)
	}
	next := b.Clone()
	tag.Label = label
	next.GlobalTags[label] = tag
	return next, nil
}

// DeleteGlobalTag removes the tag definition and strips the label from every
// task in one pass. Unknown labels are a no-op.
func (e *Engine) DeleteGlobalTag(b domain.Board, label string) (domain.Board, error) {
	_, defined := b.GlobalTags[label]
	used := false
	for _, t := range b.Tasks {
		if t.HasTag(label) {
			used = true
			break
		}
	}
	if !defined && !used {
		return b, nil
	}
	next := b.Clone()
	delete(next.GlobalTags, label)
	for id, t := range next.Tasks {
		if t.HasTag(label) {
			t.Tags = removeID(t.Tags, label)
			next.Tasks[id] = t
		}
	}
	return next, nil
}

// ResolveTags returns the tag definitions for a task's labels in order,
// silently skipping orphaned labels.
func ResolveTags(b domain.Board, t domain.Task) []domain.Tag {
	out := make([]domain.Tag, 0, len(t.Tags))
	for _, label := range t.Tags {
		if tag, ok := b.GlobalTags[label]; ok {
			out = append(out, tag)
		}
	}
	return out
}
