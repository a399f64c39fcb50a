package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/tiagokriok/taskflow/internal/domain"
)

var ErrSignedOut = errors.New("no signed-in user")

type BootstrapResult struct {
	OwnerID string
	Board   domain.BoardSummary
	Created bool
}

type BootstrapService struct {
	identity domain.Identity
	boards   *BoardService
}

func NewBootstrapService(identity domain.Identity, boards *BoardService) *BootstrapService {
	return &BootstrapService{identity: identity, boards: boards}
}

// EnsureDefaultBoard returns the user's first board, creating one with the
// default columns when the user has none.
func (s *BootstrapService) EnsureDefaultBoard(ctx context.Context) (BootstrapResult, error) {
	ownerID, ok := s.identity.CurrentUserID()
	if !ok {
		return BootstrapResult{}, ErrSignedOut
	}

	boards, err := s.boards.ListBoards(ctx, ownerID)
	if err != nil {
		return BootstrapResult{}, err
	}
	if len(boards) > 0 {
		return BootstrapResult{OwnerID: ownerID, Board: boards[0]}, nil
	}

	board, err := s.boards.CreateBoard(ctx, ownerID, defaultBoardTitle)
	if err != nil {
		return BootstrapResult{}, fmt.Errorf("bootstrap default board: %w", err)
	}
	return BootstrapResult{
		OwnerID: ownerID,
		Board:   domain.BoardSummary{ID: board.ID, OwnerID: board.OwnerID, Title: board.Title},
		Created: true,
	}, nil
}
