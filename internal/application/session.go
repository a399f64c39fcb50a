package application

import (
	"fmt"
	"sync"
	"time"

	"github.com/tiagokriok/taskflow/internal/domain"
	"github.com/tiagokriok/taskflow/internal/engine"
)

// Persister accepts snapshots for asynchronous persistence.
type Persister interface {
	Enqueue(board domain.Board)
	Discard(boardID string)
}

// BoardSession owns the working snapshot of one open board. Every mutation
// runs read-modify-write under the session lock, so concurrent edits are
// applied one after another instead of overwriting each other.
type BoardSession struct {
	mu     sync.Mutex
	board  domain.Board
	engine *engine.Engine
	saver  Persister
	now    func() time.Time

	// retired is set once the board is deleted; every later edit fails.
	retired bool
}

func NewBoardSession(board domain.Board, eng *engine.Engine, saver Persister) *BoardSession {
	return &BoardSession{
		board:  board,
		engine: eng,
		saver:  saver,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Snapshot returns the current board. Treat it as read-only.
func (s *BoardSession) Snapshot() domain.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// Apply runs op against the current snapshot and, on success, installs the
// result and schedules it for saving.
func (s *BoardSession) Apply(op func(*engine.Engine, domain.Board) (domain.Board, error)) (domain.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.retired {
		return domain.Board{}, fmt.Errorf("board %q: %w", s.board.ID, domain.ErrNotFound)
	}
	next, err := op(s.engine, s.board)
	if err != nil {
		return domain.Board{}, err
	}
	next.UpdatedAt = s.now()
	s.board = next
	if s.saver != nil {
		s.saver.Enqueue(next)
	}
	return next, nil
}

// retire blocks until any running edit finishes, then rejects later ones.
func (s *BoardSession) retire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retired = true
}

// SetMembers refreshes the names used for member activity entries.
func (s *BoardSession) SetMembers(teams []domain.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine = s.engine.WithMembers(teams)
}

func (s *BoardSession) MoveTask(taskID string, dest engine.Destination) (domain.Board, error) {
	return s.Apply(func(e *engine.Engine, b domain.Board) (domain.Board, error) {
		return e.MoveTask(b, taskID, dest)
	})
}

func (s *BoardSession) AddTask(columnID, title string) (domain.Board, domain.Task, error) {
	var created domain.Task
	b, err := s.Apply(func(e *engine.Engine, b domain.Board) (domain.Board, error) {
		next, task, err := e.AddTask(b, columnID, title)
		created = task
		return next, err
	})
	if err != nil {
		return domain.Board{}, domain.Task{}, err
	}
	return b, created, nil
}

func (s *BoardSession) UpdateTask(taskID string, changes domain.TaskChanges) (domain.Board, error) {
	return s.Apply(func(e *engine.Engine, b domain.Board) (domain.Board, error) {
		return e.UpdateTask(b, taskID, changes)
	})
}

func (s *BoardSession) DeleteTask(taskID string) (domain.Board, error) {
	return s.Apply(func(e *engine.Engine, b domain.Board) (domain.Board, error) {
		return e.DeleteTask(b, taskID)
	})
}

func (s *BoardSession) AddColumn(title string) (domain.Board, domain.Column, error) {
	var created domain.Column
	b, err := s.Apply(func(e *engine.Engine, b domain.Board) (domain.Board, error) {
		next, col, err := e.AddColumn(b, title)
		created = col
		return next, err
	})
	if err != nil {
		return domain.Board{}, domain.Column{}, err
	}
	return b, created, nil
}

func (s *BoardSession) RenameColumn(columnID, title string) (domain.Board, error) {
	return s.Apply(func(e *engine.Engine, b domain.Board) (domain.Board, error) {
		return e.RenameColumn(b, columnID, title)
	})
}

func (s *BoardSession) DeleteColumn(columnID string) (domain.Board, error) {
	return s.Apply(func(e *engine.Engine, b domain.Board) (domain.Board, error) {
		return e.DeleteColumn(b, columnID)
	})
}

func (s *BoardSession) ReorderColumns(orderedIDs []string) (domain.Board, error) {
	return s.Apply(func(e *engine.Engine, b domain.Board) (domain.Board, error) {
		return e.ReorderColumns(b, orderedIDs)
	})
}

func (s *BoardSession) UpsertTag(label string, color domain.TagColor) (domain.Board, error) {
	return s.Apply(func(e *engine.Engine, b domain.Board) (domain.Board, error) {
		return e.UpsertGlobalTag(b, label, domain.Tag{Label: label, Color: color})
	})
}

func (s *BoardSession) DeleteTag(label string) (domain.Board, error) {
	return s.Apply(func(e *engine.Engine, b domain.Board) (domain.Board, error) {
		return e.DeleteGlobalTag(b, label)
	})
}
