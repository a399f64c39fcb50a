package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tiagokriok/taskflow/internal/domain"
	"github.com/tiagokriok/taskflow/internal/infrastructure/db/sqlc"
)

const dateLayout = "2006-01-02"

// persistence wraps a storage failure so callers can match ErrPersistence
// while keeping the driver error in the chain.
func persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
}

// notFoundOr maps sql.ErrNoRows to ErrNotFound and anything else to a
// persistence failure.
func notFoundOr(op, kind, id string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %q: %w", kind, id, domain.ErrNotFound)
	}
	return persistence(op, err)
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func fromNullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullableDate(v *time.Time) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: v.UTC().Format(dateLayout), Valid: true}
}

func parseOptionalDate(in sql.NullString) *time.Time {
	if !in.Valid || in.String == "" {
		return nil
	}
	parsed, err := time.ParseInLocation(dateLayout, in.String, time.UTC)
	if err != nil {
		return nil
	}
	return &parsed
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimeOrZero(in string) time.Time {
	if in == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339Nano, in)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func parseLabels(raw string) []string {
	if raw == "" {
		return []string{}
	}
	labels := make([]string, 0)
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		return []string{}
	}
	return labels
}

func marshalLabels(labels []string) string {
	if labels == nil {
		labels = []string{}
	}
	encoded, err := json.Marshal(labels)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

func toSQLTask(boardID string, position int, t domain.Task) sqlc.CreateTaskParams {
	return sqlc.CreateTaskParams{
		ID:          t.ID,
		BoardID:     boardID,
		ColumnID:    t.ColumnID,
		Position:    int64(position),
		Title:       t.Title,
		Description: t.Description,
		StartDate:   nullableDate(t.StartDate),
		EndDate:     nullableDate(t.EndDate),
		Priority:    string(t.Priority),
		TagsJSON:    marshalLabels(t.Tags),
		MembersJSON: marshalLabels(t.AssignedMembers),
		CreatedAt:   formatTime(t.CreatedAt),
	}
}

func fromSQLTask(t sqlc.Task) domain.Task {
	return domain.Task{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		StartDate:       parseOptionalDate(t.StartDate),
		EndDate:         parseOptionalDate(t.EndDate),
		ColumnID:        t.ColumnID,
		Tags:            parseLabels(t.TagsJSON),
		Priority:        domain.Priority(t.Priority),
		AssignedMembers: parseLabels(t.MembersJSON),
		ActivityLog:     []domain.ActivityLogEntry{},
		CreatedAt:       parseTimeOrZero(t.CreatedAt),
	}
}

func toSQLActivity(taskID string, seq int, e domain.ActivityLogEntry) sqlc.CreateActivityParams {
	return sqlc.CreateActivityParams{
		ID:       e.ID,
		TaskID:   taskID,
		Seq:      int64(seq),
		LoggedAt: formatTime(e.Timestamp),
		Action:   string(e.Action),
		OldValue: nullString(e.OldValue),
		NewValue: nullString(e.NewValue),
		Details:  e.Details,
	}
}

func fromSQLActivity(a sqlc.ActivityLog) domain.ActivityLogEntry {
	return domain.ActivityLogEntry{
		ID:        a.ID,
		Timestamp: parseTimeOrZero(a.LoggedAt),
		Action:    domain.ActivityAction(a.Action),
		OldValue:  fromNullString(a.OldValue),
		NewValue:  fromNullString(a.NewValue),
		Details:   a.Details,
	}
}

func fromSQLBoard(b sqlc.Board) domain.Board {
	return domain.Board{
		ID:         b.ID,
		OwnerID:    b.OwnerID,
		Title:      b.Title,
		Columns:    []domain.Column{},
		Tasks:      map[string]domain.Task{},
		GlobalTags: map[string]domain.Tag{},
		TeamIDs:    []string{},
		CreatedAt:  parseTimeOrZero(b.CreatedAt),
		UpdatedAt:  parseTimeOrZero(b.UpdatedAt),
	}
}

func fromSQLTeam(t sqlc.Team, members []sqlc.TeamMember) domain.Team {
	team := domain.Team{
		ID:      t.ID,
		OwnerID: t.OwnerID,
		Title:   t.Title,
		Members: make([]domain.TeamMember, 0, len(members)),
	}
	for _, m := range members {
		team.Members = append(team.Members, domain.TeamMember{
			ID:       m.MemberID,
			Name:     m.Name,
			Email:    m.Email,
			JoinedAt: parseTimeOrZero(m.JoinedAt),
		})
	}
	return team
}
