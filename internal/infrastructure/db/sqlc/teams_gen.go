package sqlc

import (
	"context"
)

const upsertTeam = `-- name: UpsertTeam :exec
INSERT INTO teams (id, owner_id, title)
VALUES (?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    owner_id = excluded.owner_id,
    title = excluded.title
`

type UpsertTeamParams struct {
	ID      string
	OwnerID string
	Title   string
}

func (q *Queries) UpsertTeam(ctx context.Context, arg UpsertTeamParams) error {
	_, err := q.db.ExecContext(ctx, upsertTeam, arg.ID, arg.OwnerID, arg.Title)
	return err
}

const getTeam = `-- name: GetTeam :one
SELECT id, owner_id, title
FROM teams
WHERE id = ?
`

func (q *Queries) GetTeam(ctx context.Context, id string) (Team, error) {
	row := q.db.QueryRowContext(ctx, getTeam, id)
	var i Team
	err := row.Scan(&i.ID, &i.OwnerID, &i.Title)
	return i, err
}

const listTeamsByOwner = `-- name: ListTeamsByOwner :many
SELECT id, owner_id, title
FROM teams
WHERE owner_id = ?
ORDER BY title ASC
`

func (q *Queries) ListTeamsByOwner(ctx context.Context, ownerID string) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx, listTeamsByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Team, 0)
	for rows.Next() {
		var i Team
		if err := rows.Scan(&i.ID, &i.OwnerID, &i.Title); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const renameTeam = `-- name: RenameTeam :execrows
UPDATE teams
SET title = ?
WHERE id = ?
`

type RenameTeamParams struct {
	Title string
	ID    string
}

func (q *Queries) RenameTeam(ctx context.Context, arg RenameTeamParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, renameTeam, arg.Title, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteTeam = `-- name: DeleteTeam :execrows
DELETE FROM teams
WHERE id = ?
`

func (q *Queries) DeleteTeam(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteTeam, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteTeamFromBoards = `-- name: DeleteTeamFromBoards :exec
DELETE FROM board_teams
WHERE team_id = ?
`

func (q *Queries) DeleteTeamFromBoards(ctx context.Context, teamID string) error {
	_, err := q.db.ExecContext(ctx, deleteTeamFromBoards, teamID)
	return err
}

const deleteTeamMembers = `-- name: DeleteTeamMembers :exec
DELETE FROM team_members
WHERE team_id = ?
`

func (q *Queries) DeleteTeamMembers(ctx context.Context, teamID string) error {
	_, err := q.db.ExecContext(ctx, deleteTeamMembers, teamID)
	return err
}

const createTeamMember = `-- name: CreateTeamMember :exec
INSERT INTO team_members (team_id, member_id, name, email, joined_at, position)
VALUES (?, ?, ?, ?, ?, ?)
`

type CreateTeamMemberParams struct {
	TeamID   string
	MemberID string
	Name     string
	Email    string
	JoinedAt string
	Position int64
}

func (q *Queries) CreateTeamMember(ctx context.Context, arg CreateTeamMemberParams) error {
	_, err := q.db.ExecContext(ctx, createTeamMember,
		arg.TeamID,
		arg.MemberID,
		arg.Name,
		arg.Email,
		arg.JoinedAt,
		arg.Position,
	)
	return err
}

const listTeamMembers = `-- name: ListTeamMembers :many
SELECT team_id, member_id, name, email, joined_at, position
FROM team_members
WHERE team_id = ?
ORDER BY position ASC
`

func (q *Queries) ListTeamMembers(ctx context.Context, teamID string) ([]TeamMember, error) {
	rows, err := q.db.QueryContext(ctx, listTeamMembers, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]TeamMember, 0)
	for rows.Next() {
		var i TeamMember
		if err := rows.Scan(&i.TeamID, &i.MemberID, &i.Name, &i.Email, &i.JoinedAt, &i.Position); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
