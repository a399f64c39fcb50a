package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/tiagokriok/taskflow/internal/domain"
	"github.com/tiagokriok/taskflow/internal/engine"
)

// BoardService manages board lifecycle and hands out one BoardSession per
// open board.
type BoardService struct {
	boards domain.BoardRepository
	teams  domain.TeamRepository
	engine *engine.Engine
	saver  Persister
	log    logrus.FieldLogger

	mu       sync.Mutex
	sessions map[string]*BoardSession
}

func NewBoardService(
	boards domain.BoardRepository,
	teams domain.TeamRepository,
	eng *engine.Engine,
	saver Persister,
	log logrus.FieldLogger,
) *BoardService {
	return &BoardService{
		boards:   boards,
		teams:    teams,
		engine:   eng,
		saver:    saver,
		log:      log,
		sessions: map[string]*BoardSession{},
	}
}

func (s *BoardService) ListBoards(ctx context.Context, ownerID string) ([]domain.BoardSummary, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("owner id is required: %w", domain.ErrInvalidArgument)
	}
	return s.boards.List(ctx, ownerID)
}

// CreateBoard creates and synchronously stores a board with the default columns.
func (s *BoardService) CreateBoard(ctx context.Context, ownerID, title string) (domain.Board, error) {
	return s.CreateBoardWithColumns(ctx, ownerID, title, DefaultColumnTitles())
}

func (s *BoardService) CreateBoardWithColumns(ctx context.Context, ownerID, title string, columns []string) (domain.Board, error) {
	if strings.TrimSpace(ownerID) == "" {
		return domain.Board{}, fmt.Errorf("owner id is required: %w", domain.ErrInvalidArgument)
	}
	board, err := s.engine.NewBoard(ownerID, title, columns)
	if err != nil {
		return domain.Board{}, err
	}
	if err := s.boards.Save(ctx, board); err != nil {
		return domain.Board{}, fmt.Errorf("create board: %w", err)
	}
	s.log.WithFields(logrus.Fields{"board": board.ID, "owner": ownerID}).Info("board created")
	return board, nil
}

// Open returns the live session for boardID, loading it on first use.
func (s *BoardService) Open(ctx context.Context, boardID string) (*BoardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open(ctx, boardID, "")
}

// OpenOwned is Open on behalf of ownerID. A board owned by someone else is
// reported as not found and is not kept open.
func (s *BoardService) OpenOwned(ctx context.Context, boardID, ownerID string) (*BoardSession, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("owner id is required: %w", domain.ErrInvalidArgument)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open(ctx, boardID, ownerID)
}

func (s *BoardService) open(ctx context.Context, boardID, ownerID string) (*BoardSession, error) {
	if session, ok := s.sessions[boardID]; ok {
		if ownerID != "" && session.Snapshot().OwnerID != ownerID {
			return nil, fmt.Errorf("board %q: %w", boardID, domain.ErrNotFound)
		}
		return session, nil
	}

	board, err := s.boards.Load(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if ownerID != "" && board.OwnerID != ownerID {
		return nil, fmt.Errorf("board %q: %w", boardID, domain.ErrNotFound)
	}
	teams, err := s.loadTeams(ctx, board.TeamIDs)
	if err != nil {
		return nil, err
	}
	if len(teams) != len(board.TeamIDs) {
		board.TeamIDs = idsOf(teams)
		s.log.WithField("board", boardID).Info("dropped deleted teams from board")
	}
	session := NewBoardSession(board, s.engine.WithMembers(teams), s.saver)
	s.sessions[boardID] = session
	return session, nil
}

func (s *BoardService) RenameBoard(ctx context.Context, boardID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("board title is required: %w", domain.ErrInvalidArgument)
	}
	if session := s.session(boardID); session != nil {
		if _, err := session.Apply(func(e *engine.Engine, b domain.Board) (domain.Board, error) {
			return e.RenameBoard(b, title)
		}); err != nil {
			return err
		}
	}
	return s.boards.Rename(ctx, boardID, title)
}

// DeleteBoard removes a board. Its open session is retired first so late
// edits fail with ErrNotFound, and queued or running saves of the board are
// settled before the stored board is deleted.
func (s *BoardService) DeleteBoard(ctx context.Context, boardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[boardID]; ok {
		delete(s.sessions, boardID)
		session.retire()
	}
	if s.saver != nil {
		s.saver.Discard(boardID)
	}
	if err := s.boards.Delete(ctx, boardID); err != nil {
		return err
	}
	s.log.WithField("board", boardID).Info("board deleted")
	return nil
}

// AssignTeams sets the teams of a board and refreshes member names for its
// activity log. Every team must exist.
func (s *BoardService) AssignTeams(ctx context.Context, boardID string, teamIDs []string) (domain.Board, error) {
	session, err := s.Open(ctx, boardID)
	if err != nil {
		return domain.Board{}, err
	}
	teams, err := s.requireTeams(ctx, teamIDs)
	if err != nil {
		return domain.Board{}, err
	}
	board, err := session.Apply(func(e *engine.Engine, b domain.Board) (domain.Board, error) {
		return e.SetBoardTeams(b, teamIDs)
	})
	if err != nil {
		return domain.Board{}, err
	}
	session.SetMembers(teams)
	return board, nil
}

func (s *BoardService) session(boardID string) *BoardSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[boardID]
}

// TeamChanged refreshes member names in open boards that use teamID.
func (s *BoardService) TeamChanged(ctx context.Context, teamID string) {
	for _, session := range s.sessionsWithTeam(teamID) {
		s.refreshMembers(ctx, session)
	}
}

// TeamDeleted drops teamID from open boards that reference it. Boards that
// are not open drop the stale id when they are next opened.
func (s *BoardService) TeamDeleted(ctx context.Context, teamID string) {
	for _, session := range s.sessionsWithTeam(teamID) {
		_, err := session.Apply(func(e *engine.Engine, b domain.Board) (domain.Board, error) {
			kept := make([]string, 0, len(b.TeamIDs))
			for _, id := range b.TeamIDs {
				if id != teamID {
					kept = append(kept, id)
				}
			}
			return e.SetBoardTeams(b, kept)
		})
		if err != nil {
			s.log.WithError(err).WithField("team", teamID).Warn("drop deleted team from board")
			continue
		}
		s.refreshMembers(ctx, session)
	}
}

func (s *BoardService) sessionsWithTeam(teamID string) []*BoardSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*BoardSession
	for _, session := range s.sessions {
		if contains(session.Snapshot().TeamIDs, teamID) {
			out = append(out, session)
		}
	}
	return out
}

func (s *BoardService) refreshMembers(ctx context.Context, session *BoardSession) {
	teams, err := s.loadTeams(ctx, session.Snapshot().TeamIDs)
	if err != nil {
		s.log.WithError(err).WithField("board", session.Snapshot().ID).Warn("refresh member names")
		return
	}
	session.SetMembers(teams)
}

// loadTeams returns the teams that still exist; ids of deleted teams are skipped.
func (s *BoardService) loadTeams(ctx context.Context, ids []string) ([]domain.Team, error) {
	if s.teams == nil {
		return nil, nil
	}
	teams := make([]domain.Team, 0, len(ids))
	for _, id := range ids {
		team, err := s.teams.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load team %s: %w", id, err)
		}
		teams = append(teams, team)
	}
	return teams, nil
}

// requireTeams is loadTeams for explicit assignments, where every id must exist.
func (s *BoardService) requireTeams(ctx context.Context, ids []string) ([]domain.Team, error) {
	if s.teams == nil {
		return nil, nil
	}
	teams := make([]domain.Team, 0, len(ids))
	for _, id := range ids {
		team, err := s.teams.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load team %s: %w", id, err)
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func idsOf(teams []domain.Team) []string {
	out := make([]string, 0, len(teams))
	for _, t := range teams {
		out = append(out, t.ID)
	}
	return out
}
