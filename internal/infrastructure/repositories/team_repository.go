package repositories

import (
	"context"
	"fmt"

	"github.com/tiagokriok/taskflow/internal/domain"
	"github.com/tiagokriok/taskflow/internal/infrastructure/db"
	"github.com/tiagokriok/taskflow/internal/infrastructure/db/sqlc"
)

type TeamRepository struct {
	db      db.Adapter
	queries *sqlc.Queries
}

func NewTeamRepository(adapter db.Adapter) *TeamRepository {
	return &TeamRepository{
		db:      adapter,
		queries: adapter.Queries(),
	}
}

func (r *TeamRepository) Get(ctx context.Context, teamID string) (domain.Team, error) {
	row, err := r.queries.GetTeam(ctx, teamID)
	if err != nil {
		return domain.Team{}, notFoundOr("get team", "team", teamID, err)
	}
	members, err := r.queries.ListTeamMembers(ctx, teamID)
	if err != nil {
		return domain.Team{}, persistence("list team members", err)
	}
	return fromSQLTeam(row, members), nil
}

func (r *TeamRepository) Save(ctx context.Context, team domain.Team) error {
	if team.ID == "" {
		return fmt.Errorf("team id is required: %w", domain.ErrInvalidArgument)
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return persistence("begin tx for save team", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	qtx := r.queries.WithTx(tx)
	err = qtx.UpsertTeam(ctx, sqlc.UpsertTeamParams{ID: team.ID, OwnerID: team.OwnerID, Title: team.Title})
	if err != nil {
		return persistence("upsert team", err)
	}
	if err := qtx.DeleteTeamMembers(ctx, team.ID); err != nil {
		return persistence("delete team members", err)
	}
	for pos, m := range team.Members {
		err := qtx.CreateTeamMember(ctx, sqlc.CreateTeamMemberParams{
			TeamID:   team.ID,
			MemberID: m.ID,
			Name:     m.Name,
			Email:    m.Email,
			JoinedAt: formatTime(m.JoinedAt),
			Position: int64(pos),
		})
		if err != nil {
			return persistence("create team member", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return persistence("commit save team", err)
	}
	return nil
}

func (r *TeamRepository) List(ctx context.Context, ownerID string) ([]domain.Team, error) {
	items, err := r.queries.ListTeamsByOwner(ctx, ownerID)
	if err != nil {
		return nil, persistence("list teams", err)
	}
	result := make([]domain.Team, 0, len(items))
	for _, item := range items {
		members, err := r.queries.ListTeamMembers(ctx, item.ID)
		if err != nil {
			return nil, persistence("list team members", err)
		}
		result = append(result, fromSQLTeam(item, members))
	}
	return result, nil
}

func (r *TeamRepository) Rename(ctx context.Context, teamID, title string) error {
	n, err := r.queries.RenameTeam(ctx, sqlc.RenameTeamParams{Title: title, ID: teamID})
	if err != nil {
		return persistence("rename team", err)
	}
	if n == 0 {
		return fmt.Errorf("team %q: %w", teamID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the team, its members and every board assignment of it.
func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return persistence("begin tx for delete team", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	qtx := r.queries.WithTx(tx)
	if err := qtx.DeleteTeamFromBoards(ctx, teamID); err != nil {
		return persistence("delete team from boards", err)
	}
	if err := qtx.DeleteTeamMembers(ctx, teamID); err != nil {
		return persistence("delete team members", err)
	}
	n, err := qtx.DeleteTeam(ctx, teamID)
	if err != nil {
		return persistence("delete team", err)
	}
	if n == 0 {
		return fmt.Errorf("team %q: %w", teamID, domain.ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return persistence("commit delete team", err)
	}
	return nil
}
