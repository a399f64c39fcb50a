package engine

import (
	"strings"

	"github.com/tiagokriok/taskflow/internal/domain"
)

// NewBoard builds an empty board with the given column titles, in order.
// Blank column titles are skipped.
func (e *Engine) NewBoard(ownerID, title string, columnTitles []string) (domain.Board, error) {
	title, err := requireTitle("board", title)
	if err != nil {
		return domain.Board{}, err
	}
	now := e.now()
	b := domain.Board{
		ID:         e.newID(),
		OwnerID:    ownerID,
		Title:      title,
		Columns:    make([]domain.Column, 0, len(columnTitles)),
		Tasks:      map[string]domain.Task{},
		GlobalTags: map[string]domain.Tag{},
		TeamIDs:    []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, ct := range columnTitles {
		ct = strings.TrimSpace(ct)
		if ct == "" {
			continue
		}
		b.Columns = append(b.Columns, domain.Column{ID: e.newID(), Title: ct, TaskIDs: []string{}})
	}
	return b, nil
}

func (e *Engine) RenameBoard(b domain.Board, title string) (domain.Board, error) {
	title, err := requireTitle("board", title)
	if err != nil {
		return domain.Board{}, err
	}
	next := b.Clone()
	next.Title = title
	return next, nil
}

// SetBoardTeams replaces the set of teams assigned to the board.
func (e *Engine) SetBoardTeams(b domain.Board, teamIDs []string) (domain.Board, error) {
	next := b.Clone()
	next.TeamIDs = normalizeSet(teamIDs)
	return next, nil
}

// normalizeSet trims, drops blanks and removes duplicates while keeping the
// first-seen order.
func normalizeSet(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
