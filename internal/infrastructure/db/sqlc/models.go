package sqlc

import "database/sql"

type Board struct {
	ID        string
	OwnerID   string
	Title     string
	CreatedAt string
	UpdatedAt string
}

type Column struct {
	ID       string
	BoardID  string
	Title    string
	Position int64
}

type Task struct {
	ID          string
	BoardID     string
	ColumnID    string
	Position    int64
	Title       string
	Description string
	StartDate   sql.NullString
	EndDate     sql.NullString
	Priority    string
	TagsJSON    string
	MembersJSON string
	CreatedAt   string
}

type ActivityLog struct {
	ID       string
	TaskID   string
	Seq      int64
	LoggedAt string
	Action   string
	OldValue sql.NullString
	NewValue sql.NullString
	Details  string
}

type BoardTag struct {
	BoardID string
	Label   string
	Color   string
}

type Team struct {
	ID      string
	OwnerID string
	Title   string
}

type TeamMember struct {
	TeamID   string
	MemberID string
	Name     string
	Email    string
	JoinedAt string
	Position int64
}
