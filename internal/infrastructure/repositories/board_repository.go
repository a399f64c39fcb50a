package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/tiagokriok/taskflow/internal/domain"
	"github.com/tiagokriok/taskflow/internal/infrastructure/db"
	"github.com/tiagokriok/taskflow/internal/infrastructure/db/sqlc"
)

// BoardRepository stores whole board snapshots. Save replaces every child row
// of the board inside one transaction, so a reader never sees half a board.
type BoardRepository struct {
	db      db.Adapter
	queries *sqlc.Queries
	now     func() time.Time
}

func NewBoardRepository(adapter db.Adapter) *BoardRepository {
	return &BoardRepository{
		db:      adapter,
		queries: adapter.Queries(),
		now:     time.Now,
	}
}

func (r *BoardRepository) Load(ctx context.Context, boardID string) (domain.Board, error) {
	row, err := r.queries.GetBoard(ctx, boardID)
	if err != nil {
		return domain.Board{}, notFoundOr("get board", "board", boardID, err)
	}
	board := fromSQLBoard(row)

	columns, err := r.queries.ListColumns(ctx, boardID)
	if err != nil {
		return domain.Board{}, persistence("list columns", err)
	}
	tasks, err := r.queries.ListTasksByBoard(ctx, boardID)
	if err != nil {
		return domain.Board{}, persistence("list tasks", err)
	}
	activity, err := r.queries.ListActivityByBoard(ctx, boardID)
	if err != nil {
		return domain.Board{}, persistence("list activity", err)
	}
	tags, err := r.queries.ListBoardTags(ctx, boardID)
	if err != nil {
		return domain.Board{}, persistence("list board tags", err)
	}
	teamIDs, err := r.queries.ListBoardTeams(ctx, boardID)
	if err != nil {
		return domain.Board{}, persistence("list board teams", err)
	}

	sequences := make(map[string][]string, len(columns))
	for _, item := range tasks {
		task := fromSQLTask(item)
		board.Tasks[task.ID] = task
		sequences[item.ColumnID] = append(sequences[item.ColumnID], task.ID)
	}
	for _, item := range activity {
		task, ok := board.Tasks[item.TaskID]
		if !ok {
			continue
		}
		task.ActivityLog = append(task.ActivityLog, fromSQLActivity(item))
		board.Tasks[item.TaskID] = task
	}
	for _, c := range columns {
		ids := sequences[c.ID]
		if ids == nil {
			ids = []string{}
		}
		board.Columns = append(board.Columns, domain.Column{ID: c.ID, Title: c.Title, TaskIDs: ids})
	}
	for _, t := range tags {
		board.GlobalTags[t.Label] = domain.Tag{Label: t.Label, Color: domain.TagColor(t.Color)}
	}
	board.TeamIDs = teamIDs
	return board, nil
}

func (r *BoardRepository) Save(ctx context.Context, board domain.Board) error {
	if board.ID == "" {
		return fmt.Errorf("board id is required: %w", domain.ErrInvalidArgument)
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return persistence("begin tx for save board", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	qtx := r.queries.WithTx(tx)
	createdAt := board.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}
	updatedAt := board.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.now()
	}
	err = qtx.UpsertBoard(ctx, sqlc.UpsertBoardParams{
		ID:        board.ID,
		OwnerID:   board.OwnerID,
		Title:     board.Title,
		CreatedAt: formatTime(createdAt),
		UpdatedAt: formatTime(updatedAt),
	})
	if err != nil {
		return persistence("upsert board", err)
	}
	if err := clearBoard(ctx, qtx, board.ID); err != nil {
		return err
	}

	for pos, col := range board.Columns {
		err := qtx.CreateColumn(ctx, sqlc.CreateColumnParams{
			ID:       col.ID,
			BoardID:  board.ID,
			Title:    col.Title,
			Position: int64(pos),
		})
		if err != nil {
			return persistence("create column", err)
		}
		for taskPos, taskID := range col.TaskIDs {
			task, ok := board.Tasks[taskID]
			if !ok {
				continue
			}
			task.ColumnID = col.ID
			if err := qtx.CreateTask(ctx, toSQLTask(board.ID, taskPos, task)); err != nil {
				return persistence("create task", err)
			}
			for seq, entry := range task.ActivityLog {
				if err := qtx.CreateActivity(ctx, toSQLActivity(task.ID, seq, entry)); err != nil {
					return persistence("create activity entry", err)
				}
			}
		}
	}
	for label, tag := range board.GlobalTags {
		err := qtx.CreateBoardTag(ctx, sqlc.CreateBoardTagParams{
			BoardID: board.ID,
			Label:   label,
			Color:   string(tag.Color),
		})
		if err != nil {
			return persistence("create board tag", err)
		}
	}
	for pos, teamID := range board.TeamIDs {
		err := qtx.CreateBoardTeam(ctx, sqlc.CreateBoardTeamParams{
			BoardID:  board.ID,
			TeamID:   teamID,
			Position: int64(pos),
		})
		if err != nil {
			return persistence("create board team", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return persistence("commit save board", err)
	}
	return nil
}

func (r *BoardRepository) List(ctx context.Context, ownerID string) ([]domain.BoardSummary, error) {
	items, err := r.queries.ListBoardsByOwner(ctx, ownerID)
	if err != nil {
		return nil, persistence("list boards", err)
	}
	result := make([]domain.BoardSummary, 0, len(items))
	for _, item := range items {
		result = append(result, domain.BoardSummary{ID: item.ID, OwnerID: item.OwnerID, Title: item.Title})
	}
	return result, nil
}

func (r *BoardRepository) Rename(ctx context.Context, boardID, title string) error {
	n, err := r.queries.RenameBoard(ctx, sqlc.RenameBoardParams{
		Title:     title,
		UpdatedAt: formatTime(r.now()),
		ID:        boardID,
	})
	if err != nil {
		return persistence("rename board", err)
	}
	if n == 0 {
		return fmt.Errorf("board %q: %w", boardID, domain.ErrNotFound)
	}
	return nil
}

func (r *BoardRepository) Delete(ctx context.Context, boardID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return persistence("begin tx for delete board", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	qtx := r.queries.WithTx(tx)
	if err := clearBoard(ctx, qtx, boardID); err != nil {
		return err
	}
	n, err := qtx.DeleteBoard(ctx, boardID)
	if err != nil {
		return persistence("delete board", err)
	}
	if n == 0 {
		return fmt.Errorf("board %q: %w", boardID, domain.ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return persistence("commit delete board", err)
	}
	return nil
}

// clearBoard removes every child row of a board, leaves first.
func clearBoard(ctx context.Context, q *sqlc.Queries, boardID string) error {
	steps := []struct {
		op string
		fn func(context.Context, string) error
	}{
		{"delete activity", q.DeleteBoardActivity},
		{"delete tasks", q.DeleteBoardTasks},
		{"delete columns", q.DeleteBoardColumns},
		{"delete board tags", q.DeleteBoardTags},
		{"delete board teams", q.DeleteBoardTeams},
	}
	for _, step := range steps {
		if err := step.fn(ctx, boardID); err != nil {
			return persistence(step.op, err)
		}
	}
	return nil
}
