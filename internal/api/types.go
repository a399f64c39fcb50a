package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/tiagokriok/taskflow/internal/application"
	"github.com/tiagokriok/taskflow/internal/domain"
)

const dateLayout = "2006-01-02"

type boardResponse struct {
	ID         string                  `json:"id"`
	Title      string                  `json:"title"`
	Columns    []columnResponse        `json:"columns"`
	Tasks      map[string]taskResponse `json:"tasks"`
	GlobalTags map[string]tagResponse  `json:"globalTags"`
	TeamIDs    []string                `json:"teamIds"`
	UpdatedAt  time.Time               `json:"updatedAt"`
}

type columnResponse struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	TaskIDs []string `json:"taskIds"`
}

type tagResponse struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type taskResponse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	StartDate       *string            `json:"startDate"`
	EndDate         *string            `json:"endDate"`
	ColumnID        string             `json:"columnId"`
	Tags            []string           `json:"tags"`
	Priority        string             `json:"priority,omitempty"`
	AssignedMembers []string           `json:"assignedMembers"`
	ActivityLog     []activityResponse `json:"activityLog"`
	CreatedAt       time.Time          `json:"createdAt"`
}

type activityResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	OldValue  *string   `json:"oldValue,omitempty"`
	NewValue  *string   `json:"newValue,omitempty"`
	Details   string    `json:"details"`
}

type boardSummaryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type listItemResponse struct {
	Task        taskResponse `json:"task"`
	ColumnTitle string       `json:"columnTitle"`
	Position    int          `json:"position"`
}

type calendarDayResponse struct {
	Date    string   `json:"date"`
	TaskIDs []string `json:"taskIds"`
}

type teamResponse struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Members []memberResponse `json:"members"`
}

type memberResponse struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	JoinedAt time.Time `json:"joinedAt"`
}

type titleRequest struct {
	Title string `json:"title"`
}

type addTaskRequest struct {
	ColumnID string `json:"columnId"`
	Title    string `json:"title"`
}

type tagRequest struct {
	Color string `json:"color"`
}

type idsRequest struct {
	IDs []string `json:"ids"`
}

type memberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// taskChangesRequest is the wire form of a partial task update. Dates travel
// as YYYY-MM-DD strings; an explicit null clears them.
type taskChangesRequest struct {
	Title           domain.Field[string]          `json:"title"`
	Description     domain.Field[string]          `json:"description"`
	StartDate       domain.Field[*string]         `json:"startDate"`
	EndDate         domain.Field[*string]         `json:"endDate"`
	ColumnID        domain.Field[string]          `json:"columnId"`
	Tags            domain.Field[[]string]        `json:"tags"`
	Priority        domain.Field[domain.Priority] `json:"priority"`
	AssignedMembers domain.Field[[]string]        `json:"assignedMembers"`
}

func (r taskChangesRequest) toChanges() (domain.TaskChanges, error) {
	start, err := parseDateField("startDate", r.StartDate)
	if err != nil {
		return domain.TaskChanges{}, err
	}
	end, err := parseDateField("endDate", r.EndDate)
	if err != nil {
		return domain.TaskChanges{}, err
	}
	return domain.TaskChanges{
		Title:           r.Title,
		Description:     r.Description,
		StartDate:       start,
		EndDate:         end,
		ColumnID:        r.ColumnID,
		Tags:            r.Tags,
		Priority:        r.Priority,
		AssignedMembers: r.AssignedMembers,
	}, nil
}

func parseDateField(name string, f domain.Field[*string]) (domain.Field[*time.Time], error) {
	if !f.Set {
		return domain.Field[*time.Time]{}, nil
	}
	if f.Value == nil || strings.TrimSpace(*f.Value) == "" {
		return domain.Some[*time.Time](nil), nil
	}
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(*f.Value), time.UTC)
	if err != nil {
		return domain.Field[*time.Time]{}, fmt.Errorf("%s must be YYYY-MM-DD: %w", name, domain.ErrInvalidArgument)
	}
	return domain.Some(&t), nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toBoardResponse(b domain.Board) boardResponse {
	resp := boardResponse{
		ID:         b.ID,
		Title:      b.Title,
		Columns:    make([]columnResponse, 0, len(b.Columns)),
		Tasks:      make(map[string]taskResponse, len(b.Tasks)),
		GlobalTags: make(map[string]tagResponse, len(b.GlobalTags)),
		TeamIDs:    nonNil(b.TeamIDs),
		UpdatedAt:  b.UpdatedAt,
	}
	for _, c := range b.Columns {
		resp.Columns = append(resp.Columns, columnResponse{ID: c.ID, Title: c.Title, TaskIDs: nonNil(c.TaskIDs)})
	}
	for id, t := range b.Tasks {
		resp.Tasks[id] = toTaskResponse(t)
	}
	for label, tag := range b.GlobalTags {
		resp.GlobalTags[label] = tagResponse{Label: label, Color: string(tag.Color)}
	}
	return resp
}

func toTaskResponse(t domain.Task) taskResponse {
	resp := taskResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		StartDate:       formatDate(t.StartDate),
		EndDate:         formatDate(t.EndDate),
		ColumnID:        t.ColumnID,
		Tags:            nonNil(t.Tags),
		Priority:        string(t.Priority),
		AssignedMembers: nonNil(t.AssignedMembers),
		ActivityLog:     make([]activityResponse, 0, len(t.ActivityLog)),
		CreatedAt:       t.CreatedAt,
	}
	for _, e := range t.ActivityLog {
		resp.ActivityLog = append(resp.ActivityLog, activityResponse{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Action:    string(e.Action),
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			Details:   e.Details,
		})
	}
	return resp
}

func toListResponse(items []application.ListItem) []listItemResponse {
	out := make([]listItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, listItemResponse{
			Task:        toTaskResponse(item.Task),
			ColumnTitle: item.ColumnTitle,
			Position:    item.Position,
		})
	}
	return out
}

func toCalendarResponse(days []application.CalendarDay) []calendarDayResponse {
	out := make([]calendarDayResponse, 0, len(days))
	for _, d := range days {
		ids := make([]string, 0, len(d.Tasks))
		for _, t := range d.Tasks {
			ids = append(ids, t.ID)
		}
		out = append(out, calendarDayResponse{Date: d.Date.Format(dateLayout), TaskIDs: ids})
	}
	return out
}

func toTeamResponse(t domain.Team) teamResponse {
	resp := teamResponse{ID: t.ID, Title: t.Title, Members: make([]memberResponse, 0, len(t.Members))}
	for _, m := range t.Members {
		resp.Members = append(resp.Members, memberResponse{ID: m.ID, Name: m.Name, Email: m.Email, JoinedAt: m.JoinedAt})
	}
	return resp
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
