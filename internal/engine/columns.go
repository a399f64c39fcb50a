package engine

import (
	"github.com/tiagokriok/taskflow/internal/domain"
)

// AddColumn appends an empty column at the right end of the board and
// returns the new snapshot with the created column.
func (e *Engine) AddColumn(b domain.Board, title string) (domain.Board, domain.Column, error) {
	title, err := requireTitle("column", title)
	if err != nil {
		return domain.Board{}, domain.Column{}, err
	}
	col := domain.Column{ID: e.newID(), Title: title, TaskIDs: []string{}}
	next := b.Clone()
	next.Columns = append(next.Columns, col)
	return next, col.Clone(), nil
}

func (e *Engine) RenameColumn(b domain.Board, columnID, title string) (domain.Board, error) {
	idx := b.ColumnIndex(columnID)
	if idx < 0 {
		return domain.Board{}, notFound("column", columnID)
	}
	title, err := requireTitle("column", title)
	if err != nil {
		return domain.Board{}, err
	}
	next := b.Clone()
	next.Columns[idx].Title = title
	return next, nil
}

// DeleteColumn removes a column and every task referenced by its sequence.
func (e *Engine) DeleteColumn(b domain.Board, columnID string) (domain.Board, error) {
	idx := b.ColumnIndex(columnID)
	if idx < 0 {
		return domain.Board{}, notFound("column", columnID)
	}
	next := b.Clone()
	for _, taskID := range next.Columns[idx].TaskIDs {
		delete(next.Tasks, taskID)
	}
	next.Columns = append(next.Columns[:idx], next.Columns[idx+1:]...)
	return next, nil
}

// ReorderColumns sets the left-to-right column order. orderedIDs must be a
// permutation of the board's column ids.
func (e *Engine) ReorderColumns(b domain.Board, orderedIDs []string) (domain.Board, error) {
	if len(orderedIDs) != len(b.Columns) {
		return domain.Board{}, invalid("expected %d column ids, got %d", len(b.Columns), len(orderedIDs))
	}
	seen := make(map[string]struct{}, len(orderedIDs))
	columns := make([]domain.Column, 0, len(orderedIDs))
	for i, id := range orderedIDs {
		if _, dup := seen[id]; dup {
			return domain.Board{}, invalid("duplicate column id at position %d", i+1)
		}
		seen[id] = struct{}{}
		col, ok := b.Column(id)
		if !ok {
			return domain.Board{}, notFound("column", id)
		}
		columns = append(columns, col.Clone())
	}
	next := b.Clone()
	next.Columns = columns
	return next, nil
}
