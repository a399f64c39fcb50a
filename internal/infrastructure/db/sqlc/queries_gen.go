package sqlc

import (
	"context"
	"database/sql"
)

const upsertBoard = `-- name: UpsertBoard :exec
INSERT INTO boards (id, owner_id, title, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    owner_id = excluded.owner_id,
    title = excluded.title,
    updated_at = excluded.updated_at
`

type UpsertBoardParams struct {
	ID        string
	OwnerID   string
	Title     string
	CreatedAt string
	UpdatedAt string
}

func (q *Queries) UpsertBoard(ctx context.Context, arg UpsertBoardParams) error {
	_, err := q.db.ExecContext(ctx, upsertBoard,
		arg.ID,
		arg.OwnerID,
		arg.Title,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getBoard = `-- name: GetBoard :one
SELECT id, owner_id, title, created_at, updated_at
FROM boards
WHERE id = ?
`

func (q *Queries) GetBoard(ctx context.Context, id string) (Board, error) {
	row := q.db.QueryRowContext(ctx, getBoard, id)
	var i Board
	err := row.Scan(&i.ID, &i.OwnerID, &i.Title, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listBoardsByOwner = `-- name: ListBoardsByOwner :many
SELECT id, owner_id, title, created_at, updated_at
FROM boards
WHERE owner_id = ?
ORDER BY created_at ASC, title ASC
`

func (q *Queries) ListBoardsByOwner(ctx context.Context, ownerID string) ([]Board, error) {
	rows, err := q.db.QueryContext(ctx, listBoardsByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Board, 0)
	for rows.Next() {
		var i Board
		if err := rows.Scan(&i.ID, &i.OwnerID, &i.Title, &i.CreatedAt, &i.UpdatedAt); err != nil {
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

const renameBoard = `-- name: RenameBoard :execrows
UPDATE boards
SET title = ?, updated_at = ?
WHERE id = ?
`

type RenameBoardParams struct {
	Title     string
	UpdatedAt string
	ID        string
}

func (q *Queries) RenameBoard(ctx context.Context, arg RenameBoardParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, renameBoard, arg.Title, arg.UpdatedAt, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteBoard = `-- name: DeleteBoard :execrows
DELETE FROM boards
WHERE id = ?
`

func (q *Queries) DeleteBoard(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteBoard, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteBoardActivity = `-- name: DeleteBoardActivity :exec
DELETE FROM activity_log
WHERE task_id IN (SELECT id FROM tasks WHERE board_id = ?)
`

func (q *Queries) DeleteBoardActivity(ctx context.Context, boardID string) error {
	_, err := q.db.ExecContext(ctx, deleteBoardActivity, boardID)
	return err
}

const deleteBoardTasks = `-- name: DeleteBoardTasks :exec
DELETE FROM tasks
WHERE board_id = ?
`

func (q *Queries) DeleteBoardTasks(ctx context.Context, boardID string) error {
	_, err := q.db.ExecContext(ctx, deleteBoardTasks, boardID)
	return err
}

const deleteBoardColumns = `-- name: DeleteBoardColumns :exec
DELETE FROM columns
WHERE board_id = ?
`

func (q *Queries) DeleteBoardColumns(ctx context.Context, boardID string) error {
	_, err := q.db.ExecContext(ctx, deleteBoardColumns, boardID)
	return err
}

const deleteBoardTags = `-- name: DeleteBoardTags :exec
DELETE FROM board_tags
WHERE board_id = ?
`

func (q *Queries) DeleteBoardTags(ctx context.Context, boardID string) error {
	_, err := q.db.ExecContext(ctx, deleteBoardTags, boardID)
	return err
}

const deleteBoardTeams = `-- name: DeleteBoardTeams :exec
DELETE FROM board_teams
WHERE board_id = ?
`

func (q *Queries) DeleteBoardTeams(ctx context.Context, boardID string) error {
	_, err := q.db.ExecContext(ctx, deleteBoardTeams, boardID)
	return err
}

const createColumn = `-- name: CreateColumn :exec
INSERT INTO columns (id, board_id, title, position)
VALUES (?, ?, ?, ?)
`

type CreateColumnParams struct {
	ID       string
	BoardID  string
	Title    string
	Position int64
}

func (q *Queries) CreateColumn(ctx context.Context, arg CreateColumnParams) error {
	_, err := q.db.ExecContext(ctx, createColumn, arg.ID, arg.BoardID, arg.Title, arg.Position)
	return err
}

const listColumns = `-- name: ListColumns :many
SELECT id, board_id, title, position
FROM columns
WHERE board_id = ?
ORDER BY position ASC
`

func (q *Queries) ListColumns(ctx context.Context, boardID string) ([]Column, error) {
	rows, err := q.db.QueryContext(ctx, listColumns, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Column, 0)
	for rows.Next() {
		var i Column
		if err := rows.Scan(&i.ID, &i.BoardID, &i.Title, &i.Position); err != nil {
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

const createTask = `-- name: CreateTask :exec
INSERT INTO tasks (
    id, board_id, column_id, position, title, description,
    start_date, end_date, priority, tags_json, members_json, created_at
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateTaskParams struct {
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

func (q *Queries) CreateTask(ctx context.Context, arg CreateTaskParams) error {
	_, err := q.db.ExecContext(ctx, createTask,
		arg.ID,
		arg.BoardID,
		arg.ColumnID,
		arg.Position,
		arg.Title,
		arg.Description,
		arg.StartDate,
		arg.EndDate,
		arg.Priority,
		arg.TagsJSON,
		arg.MembersJSON,
		arg.CreatedAt,
	)
	return err
}

const listTasksByBoard = `-- name: ListTasksByBoard :many
SELECT id, board_id, column_id, position, title, description,
       start_date, end_date, priority, tags_json, members_json, created_at
FROM tasks
WHERE board_id = ?
ORDER BY column_id ASC, position ASC
`

func (q *Queries) ListTasksByBoard(ctx context.Context, boardID string) ([]Task, error) {
	rows, err := q.db.QueryContext(ctx, listTasksByBoard, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Task, 0)
	for rows.Next() {
		var i Task
		if err := rows.Scan(
			&i.ID,
			&i.BoardID,
			&i.ColumnID,
			&i.Position,
			&i.Title,
			&i.Description,
			&i.StartDate,
			&i.EndDate,
			&i.Priority,
			&i.TagsJSON,
			&i.MembersJSON,
			&i.CreatedAt,
		); err != nil {
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

const createActivity = `-- name: CreateActivity :exec
INSERT INTO activity_log (id, task_id, seq, logged_at, action, old_value, new_value, details)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateActivityParams struct {
	ID       string
	TaskID   string
	Seq      int64
	LoggedAt string
	Action   string
	OldValue sql.NullString
	NewValue sql.NullString
	Details  string
}

func (q *Queries) CreateActivity(ctx context.Context, arg CreateActivityParams) error {
	_, err := q.db.ExecContext(ctx, createActivity,
		arg.ID,
		arg.TaskID,
		arg.Seq,
		arg.LoggedAt,
		arg.Action,
		arg.OldValue,
		arg.NewValue,
		arg.Details,
	)
	return err
}

const listActivityByBoard = `-- name: ListActivityByBoard :many
SELECT a.id, a.task_id, a.seq, a.logged_at, a.action, a.old_value, a.new_value, a.details
FROM activity_log a
JOIN tasks t ON t.id = a.task_id
WHERE t.board_id = ?
ORDER BY a.task_id ASC, a.seq ASC
`

func (q *Queries) ListActivityByBoard(ctx context.Context, boardID string) ([]ActivityLog, error) {
	rows, err := q.db.QueryContext(ctx, listActivityByBoard, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ActivityLog, 0)
	for rows.Next() {
		var i ActivityLog
		if err := rows.Scan(
			&i.ID,
			&i.TaskID,
			&i.Seq,
			&i.LoggedAt,
			&i.Action,
			&i.OldValue,
			&i.NewValue,
			&i.Details,
		); err != nil {
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

const createBoardTag = `-- name: CreateBoardTag :exec
INSERT INTO board_tags (board_id, label, color)
VALUES (?, ?, ?)
`

type CreateBoardTagParams struct {
	BoardID string
	Label   string
	Color   string
}

func (q *Queries) CreateBoardTag(ctx context.Context, arg CreateBoardTagParams) error {
	_, err := q.db.ExecContext(ctx, createBoardTag, arg.BoardID, arg.Label, arg.Color)
	return err
}

const listBoardTags = `-- name: ListBoardTags :many
SELECT board_id, label, color
FROM board_tags
WHERE board_id = ?
ORDER BY label ASC
`

func (q *Queries) ListBoardTags(ctx context.Context, boardID string) ([]BoardTag, error) {
	rows, err := q.db.QueryContext(ctx, listBoardTags, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]BoardTag, 0)
	for rows.Next() {
		var i BoardTag
		if err := rows.Scan(&i.BoardID, &i.Label, &i.Color); err != nil {
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

const createBoardTeam = `-- name: CreateBoardTeam :exec
INSERT INTO board_teams (board_id, team_id, position)
VALUES (?, ?, ?)
`

type CreateBoardTeamParams struct {
	BoardID  string
	TeamID   string
	Position int64
}

func (q *Queries) CreateBoardTeam(ctx context.Context, arg CreateBoardTeamParams) error {
	_, err := q.db.ExecContext(ctx, createBoardTeam, arg.BoardID, arg.TeamID, arg.Position)
	return err
}

const listBoardTeams = `-- name: ListBoardTeams :many
SELECT team_id
FROM board_teams
WHERE board_id = ?
ORDER BY position ASC
`

func (q *Queries) ListBoardTeams(ctx context.Context, boardID string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listBoardTeams, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]string, 0)
	for rows.Next() {
		var teamID string
		if err := rows.Scan(&teamID); err != nil {
			return nil, err
		}
		items = append(items, teamID)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
