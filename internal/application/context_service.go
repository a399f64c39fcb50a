package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tiagokriok/taskflow/internal/domain"
)

// ContextService remembers which board and view the user last worked with.
type ContextService struct {
	prefs     domain.PreferenceStore
	bootstrap *BootstrapService
	boards    *BoardService
	log       logrus.FieldLogger
}

func NewContextService(prefs domain.PreferenceStore, bootstrap *BootstrapService, boards *BoardService, log logrus.FieldLogger) *ContextService {
	return &ContextService{prefs: prefs, bootstrap: bootstrap, boards: boards, log: log}
}

// Resolve picks the board to open: the remembered one when it still belongs
// to the user, otherwise the default board.
func (s *ContextService) Resolve(ctx context.Context) (domain.BoardSummary, domain.Preferences, error) {
	prefs, err := s.prefs.Load(ctx)
	if err != nil {
		s.log.WithError(err).Warn("load preferences failed, using defaults")
		prefs = domain.Preferences{ViewMode: domain.ViewBoard}
	}

	result, err := s.bootstrap.EnsureDefaultBoard(ctx)
	if err != nil {
		return domain.BoardSummary{}, prefs, err
	}
	if prefs.LastBoardID != "" && prefs.LastBoardID != result.Board.ID {
		boards, err := s.boards.ListBoards(ctx, result.OwnerID)
		if err != nil {
			return domain.BoardSummary{}, prefs, fmt.Errorf("list boards: %w", err)
		}
		for _, b := range boards {
			if b.ID == prefs.LastBoardID {
				return b, prefs, nil
			}
		}
	}
	prefs.LastBoardID = result.Board.ID
	return result.Board, prefs, nil
}

func (s *ContextService) Remember(ctx context.Context, prefs domain.Preferences) error {
	if err := s.prefs.Save(ctx, prefs); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
