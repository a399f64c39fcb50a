package domain

import "context"

// BoardSummary is the lightweight listing entry for a board.
type BoardSummary struct {
	ID      string
	OwnerID string
	Title   string
}

type BoardRepository interface {
	Load(ctx context.Context, boardID string) (Board, error)
	Save(ctx context.Context, board Board) error
	List(ctx context.Context, ownerID string) ([]BoardSummary, error)
	Rename(ctx context.Context, boardID, title string) error
	Delete(ctx context.Context, boardID string) error
}

type TeamRepository interface {
	Get(ctx context.Context, teamID string) (Team, error)
	Save(ctx context.Context, team Team) error
	List(ctx context.Context, ownerID string) ([]Team, error)
	Rename(ctx context.Context, teamID, title string) error
	Delete(ctx context.Context, teamID string) error
}

// PreferenceStore is the injected key-value capability for UI state.
type PreferenceStore interface {
	Load(ctx context.Context) (Preferences, error)
	Save(ctx context.Context, prefs Preferences) error
}

// Identity exposes the signed-in user, if any.
type Identity interface {
	CurrentUserID() (string, bool)
}
